package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadServer reads, defaults and validates a server config file.
// A missing file is not an error; defaults apply.
func LoadServer(path string) (*ServerConfig, error) {
	var cfg ServerConfig
	if err := load(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// LoadDashboard reads, defaults and validates a dashboard config file.
// A missing file is not an error; defaults apply.
func LoadDashboard(path string) (*DashboardConfig, error) {
	var cfg DashboardConfig
	if err := load(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// load reads a YAML config file and expands environment variables.
func load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return fmt.Errorf("read config file: %w", err)
	}

	// Expand ${VAR} environment variables
	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), out); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}
	return nil
}
