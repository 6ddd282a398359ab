// Package config loads the validation CLI's own configuration.
//
// # Configuration File
//
// config.yaml is searched in the current directory and then in
// ~/.config/validation (the XDG config home). Every key can be overridden
// with a VALIDATION_ prefixed environment variable:
//
//	version: 1
//	first_name_max_length: 10
//	last_name_max_length: 64
//	format: text   # text, json, yaml or toml
//
// # Validation
//
// [Config.Settings] runs the configuration through the same field
// validator the CLI uses for users and yields typed [Settings]:
//
//	settings := cfg.Settings()
//	if settings.IsError() {
//		for _, msg := range settings.Err() {
//			fmt.Println(msg)
//		}
//	}
package config
