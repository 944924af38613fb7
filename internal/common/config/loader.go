// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultEndpointURL is the fixed submission endpoint. The yaml config can
// point elsewhere only so tests can target a local server.
const DefaultEndpointURL = "https://b12.io/apply/submission"

const (
	EnvSigningSecret = "B12_SIGNING_SECRET"
	EnvRunURL        = "GITHUB_RUN_URL"
)

// RequiredEnvVars lists every environment variable that must be present
// before a submission is attempted.
var RequiredEnvVars = []string{
	EnvSigningSecret,
	EnvRunURL,
}

// MissingEnv returns the name of every required environment variable that is
// absent. An empty slice means the environment is complete.
func MissingEnv() []string {
	var missing []string
	for _, name := range RequiredEnvVars {
		if _, ok := os.LookupEnv(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like ENDPOINT_URL
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	cfg.Secrets = SecretsConfig{
		SigningSecret: os.Getenv(EnvSigningSecret),
		RunURL:        os.Getenv(EnvRunURL),
	}

	return &cfg, nil
}

// loadEnvFile loads .env from the working directory or the project root so the
// binary behaves the same when run from cmd/submitter or from the repo root.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "application-submitter"
	}

	if cfg.Endpoint.URL == "" {
		cfg.Endpoint.URL = DefaultEndpointURL
	}
	if cfg.Endpoint.Timeout == 0 {
		cfg.Endpoint.Timeout = 30000
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
