// Package config loads and validates YAML configuration for the Tradeboard
// binaries. Values of the form ${VAR} are expanded from the environment
// before parsing; missing optional fields receive defaults.
package config
