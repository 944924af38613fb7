// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct. It is constructed once
// at startup and passed down to the pipeline stages; nothing reads the
// environment after Load returns.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Endpoint EndpointConfig `mapstructure:"endpoint"`
	Logging  LoggingConfig  `mapstructure:"logging"`

	// Secrets is populated from the environment, never from the yaml file.
	Secrets SecretsConfig `mapstructure:"-"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// EndpointConfig describes the single submission endpoint.
type EndpointConfig struct {
	URL     string `mapstructure:"url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// SecretsConfig holds the values sourced from required environment variables.
type SecretsConfig struct {
	SigningSecret string
	RunURL        string
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GetTimeout converts the configured millisecond timeout to a time.Duration.
func (e EndpointConfig) GetTimeout() time.Duration {
	return time.Duration(e.Timeout) * time.Millisecond
}
