package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DefinitionsPath string // hcl files with variable and condition blocks
	PropertiesPath  string // optional yaml file seeding the store

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DefinitionsPath == "" {
		return nil, errors.New("DefinitionsPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
