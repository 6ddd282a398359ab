package paths

import (
	"path/filepath"
	"testing"
)

func TestConfigHome(t *testing.T) {
	got := ConfigHome()
	if got == "" {
		t.Error("ConfigHome() returned empty string")
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ConfigHome() = %q, want absolute path", got)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv(ConfigDirEnv, "")
	want := filepath.Join(ConfigHome(), "validation")
	if got := ConfigDir(); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestConfigDir_Override(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)
	if got := ConfigDir(); got != dir {
		t.Errorf("ConfigDir() = %q, want %q", got, dir)
	}
}

func TestSearchPaths(t *testing.T) {
	got := SearchPaths()
	if len(got) != 2 || got[0] != "." || got[1] != ConfigDir() {
		t.Errorf("SearchPaths() = %v", got)
	}
}
