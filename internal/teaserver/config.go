package teaserver

import "github.com/kelseyhightower/envconfig"

// Config holds server configuration loaded from STEEPER_* environment
// variables.
type Config struct {
	Port     int    `envconfig:"PORT" default:"8080"`
	DBPath   string `envconfig:"DB_PATH" default:"teas.db"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads server configuration from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("steeper", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
