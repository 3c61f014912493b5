// Config loading for the steeper CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configDirName  = ".steeper"
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyBackend = "backend"
	cfgKeyLocator = "locator"
)

// Supported backend names.
const (
	backendSQLite       = "sqlite"
	backendREST         = "rest"
	backendRESTEnvelope = "rest-envelope"
)

// Default locators per backend.
const (
	defaultDBPath  = "teas.db"
	defaultBaseURL = "http://localhost:8080/"
)

// defaultConfigYAML is written by `steeper init` when no config exists.
const defaultConfigYAML = `# Steeper CLI configuration

# Backend: sqlite, rest or rest-envelope
backend: sqlite

# Locator: database file path (sqlite) or base URL (rest backends)
# locator: teas.db
`

// cfg holds the loaded configuration for the running command.
var cfg = viper.New()

// loadConfig reads the config file if present. A missing file is not
// an error; flags override file values.
func loadConfig() error {
	cfg.SetDefault(cfgKeyBackend, backendSQLite)

	if flagConfig != "" {
		cfg.SetConfigFile(flagConfig)
	} else {
		cfg.SetConfigName(configFileName)
		cfg.SetConfigType(configFileType)
		cfg.AddConfigPath(configDirName)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// resolveBackend returns the backend name, flag over config file.
func resolveBackend() string {
	if flagBackend != "" {
		return flagBackend
	}
	return cfg.GetString(cfgKeyBackend)
}

// resolveLocator returns the locator: flag, then config file, then the
// backend's default.
func resolveLocator(backend string) string {
	if flagLocator != "" {
		return flagLocator
	}
	if loc := cfg.GetString(cfgKeyLocator); loc != "" {
		return loc
	}
	switch backend {
	case backendREST:
		return defaultBaseURL
	case backendRESTEnvelope:
		return defaultBaseURL + "envelope"
	default:
		return defaultDBPath
	}
}

// writeDefaultConfig creates .steeper/config.yaml with defaults if it
// does not already exist, reporting whether it was written.
func writeDefaultConfig() (bool, error) {
	path := filepath.Join(configDirName, configFileName+"."+configFileType)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(configDirName, 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return false, fmt.Errorf("write default config: %w", err)
	}
	return true, nil
}
