// Package config provides configuration management for the validation CLI using Viper.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/validation/internal/paths"
	"github.com/thoreinstein/validation/internal/user"
	"github.com/thoreinstein/validation/pkg/validator"
)

// EnvPrefix prefixes environment variable overrides, e.g.
// VALIDATION_FIRST_NAME_MAX_LENGTH.
const EnvPrefix = "VALIDATION"

// Config represents the top-level configuration structure.
type Config struct {
	Version            int    `mapstructure:"version" yaml:"version"`
	FirstNameMaxLength int    `mapstructure:"first_name_max_length" yaml:"first_name_max_length"`
	LastNameMaxLength  int    `mapstructure:"last_name_max_length" yaml:"last_name_max_length"`
	Format             string `mapstructure:"format" yaml:"format"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Calling it again discards any previously loaded state.
func Init() {
	viper.Reset()

	viper.SetConfigName(paths.ConfigFileName)
	viper.SetConfigType("yaml")

	for _, dir := range paths.SearchPaths() {
		viper.AddConfigPath(dir)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("version", d.Version)
	viper.SetDefault("first_name_max_length", d.FirstNameMaxLength)
	viper.SetDefault("last_name_max_length", d.LastNameMaxLength)
	viper.SetDefault("format", d.Format)
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	rules := user.DefaultRules()
	return &Config{
		Version:            1,
		FirstNameMaxLength: rules.FirstNameMaxLength,
		LastNameMaxLength:  rules.LastNameMaxLength,
		Format:             string(validator.FormatText),
	}
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load: defaults apply
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

// ConfigFileUsed returns the file Load read, or "" when defaults were used.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
