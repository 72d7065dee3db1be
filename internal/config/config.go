// Package config loads application settings from the environment.
package config

import "fmt"

// Config aggregates all application settings.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Notifier NotifierConfig
	// GinMode is one of debug, release, test.
	GinMode string
}

// LoadFromEnv assembles the full configuration from environment
// variables, applying defaults for anything unset.
func LoadFromEnv() Config {
	return Config{
		Server:   LoadServerConfigFromEnv(),
		Logger:   LoadLoggerConfigFromEnv(),
		Notifier: LoadNotifierConfigFromEnv(),
		GinMode:  GetEnv("GIN_MODE", "release"),
	}
}

// Validate checks every section and the gin mode.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}
	if err := c.Notifier.Validate(); err != nil {
		return fmt.Errorf("notifier config validation failed: %w", err)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}
	return nil
}
