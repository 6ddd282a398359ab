package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-user configuration directory.
const AppName = "validation"

// ConfigFileName is the base name of the configuration file, without
// extension.
const ConfigFileName = "config"

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDirEnv overrides ConfigDir when set.
const ConfigDirEnv = "VALIDATION_CONFIG_DIR"

// ConfigDir returns $VALIDATION_CONFIG_DIR if set, otherwise
// <ConfigHome>/validation.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// SearchPaths returns the directories searched for config.yaml, in order
// of precedence.
func SearchPaths() []string {
	return []string{".", ConfigDir()}
}
