package commands

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/validation/internal/errors"
	"github.com/thoreinstein/validation/internal/user"
	"github.com/thoreinstein/validation/pkg/validator"
)

func TestUser_Valid(t *testing.T) {
	out, _, err := execute(t, "user",
		"--first-name", "Slavik", "--last-name", "XXX", "--email", "user@wp.pl")

	require.NoError(t, err)
	assert.Equal(t,
		"✓ user is valid\n  User{firstName='Slavik', lastName='XXX', email=Email{address='user@wp.pl'}}\n",
		out)
}

func TestUser_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErrs []string
	}{
		{
			name: "first name too long",
			args: []string{"--first-name", "Bartholomew", "--last-name", "XXX", "--email", "user@wp.pl"},
			wantErrs: []string{
				"firstName is too long (len(value) < 10)",
			},
		},
		{
			name: "missing last name",
			args: []string{"--first-name", "Slavik", "--email", "user@wp.pl"},
			wantErrs: []string{
				"lastName should not be null",
			},
		},
		{
			name: "nothing given",
			args: nil,
			wantErrs: []string{
				"firstName should not be null",
				"lastName should not be null",
				"email should not be null",
			},
		},
		{
			name: "bad email and long first name",
			args: []string{"--first-name", "Bartholomew", "--last-name", "XXX", "--email", "a@b@c"},
			wantErrs: []string{
				"firstName is too long (len(value) < 10)",
				"email: a@b@c is not a valid email",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"user", "-f", "json"}, tt.args...)...)

			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrValidationFailed))
			assert.Equal(t, errors.ExitUser, errors.ExitCode(err))

			var report validator.Report
			require.NoError(t, json.Unmarshal([]byte(out), &report))
			assert.False(t, report.Valid)
			assert.Equal(t, tt.wantErrs, report.Errors)
		})
	}
}

func TestUser_Formats(t *testing.T) {
	args := []string{"user", "--first-name", "Slavik", "--last-name", "XXX", "--email", "user@wp.pl", "-f"}

	t.Run("yaml", func(t *testing.T) {
		out, _, err := execute(t, append(args, "yaml")...)
		require.NoError(t, err)

		var report validator.Report
		require.NoError(t, yaml.Unmarshal([]byte(out), &report))
		assert.True(t, report.Valid)
		assert.Equal(t, "user", report.Name)
	})

	t.Run("toml", func(t *testing.T) {
		out, _, err := execute(t, append(args, "toml")...)
		require.NoError(t, err)

		var report validator.Report
		require.NoError(t, toml.Unmarshal([]byte(out), &report))
		assert.True(t, report.Valid)
		assert.Contains(t, report.Target, "firstName='Slavik'")
	})
}

func TestUser_Quiet(t *testing.T) {
	out, _, err := execute(t, "-q", "user",
		"--first-name", "Slavik", "--last-name", "XXX", "--email", "user@wp.pl")

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestUser_Preset(t *testing.T) {
	out, _, err := execute(t, "user", "--preset", "everything-wrong")

	require.Error(t, err)
	assert.Contains(t, out, "3 error(s)")
	assert.Contains(t, out, "  • firstName is too long (len(value) < 10)\n")
	assert.Contains(t, out, "  • lastName should not be null\n")
	assert.Contains(t, out, "  • email: no-at-sign is not a valid email\n")
}

func TestUser_UnknownPreset(t *testing.T) {
	_, _, err := execute(t, "user", "--preset", "nope")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownPreset))
	assert.False(t, errors.Is(err, errors.ErrValidationFailed))
}

func TestUser_Pick(t *testing.T) {
	t.Run("selected", func(t *testing.T) {
		var offered []user.Preset
		_, _, err := executeWithPicker(t, func(_ io.Writer, presets []user.Preset) (*user.Preset, error) {
			offered = presets
			p, _ := user.FindPreset("valid")
			return &p, nil
		})

		require.NoError(t, err)
		assert.Len(t, offered, len(user.Presets()))
	})

	t.Run("cancelled", func(t *testing.T) {
		out, _, err := executeWithPicker(t, func(io.Writer, []user.Preset) (*user.Preset, error) {
			return nil, nil
		})

		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func executeWithPicker(t *testing.T, pick func(io.Writer, []user.Preset) (*user.Preset, error)) (string, string, error) {
	t.Helper()
	orig := pickPreset
	pickPreset = pick
	defer func() { pickPreset = orig }()
	return execute(t, "user", "--pick")
}

func TestUser_InputAndOutputFiles(t *testing.T) {
	dir := t.TempDir()
	inPath := writeConfig(t, "first_name: Slavik\nemail: a@b@c\n")
	outPath := filepath.Join(dir, "report.json")

	out, _, err := execute(t, "user", "-i", inPath, "-o", outPath, "-f", "json")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidationFailed))
	assert.Empty(t, out, "report goes to the file")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report validator.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, []string{
		"lastName should not be null",
		"email: a@b@c is not a valid email",
	}, report.Errors)
}

func TestUser_InputFileMissing(t *testing.T) {
	_, _, err := execute(t, "user", "-i", filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.False(t, errors.Is(err, errors.ErrValidationFailed))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestUser_OutputDirectoryMissing(t *testing.T) {
	_, _, err := execute(t, "user", "--preset", "valid",
		"-o", filepath.Join(t.TempDir(), "missing", "report.txt"))

	require.Error(t, err)
	assert.Equal(t, errors.ExitSystem, errors.ExitCode(err))
}
