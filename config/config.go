// Package config reads the cra settings from the environment.
//
// A .env file in the working directory is loaded first when present; variables
// already set in the environment take precedence over it. Command line flags
// use these values as their defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvCatalogFile = "CRA_CATALOG_FILE"
	EnvCurrency    = "CRA_CURRENCY"
	EnvVerbose     = "CRA_VERBOSE"
	EnvLogLevel    = "CRA_LOG_LEVEL"
	EnvAddr        = "CRA_ADDR"
	EnvSessionTTL  = "CRA_SESSION_TTL"
)

// Config holds application configuration
type Config struct {
	CatalogFile string        // empty for the embedded catalog
	Currency    string        // display currency
	Verbose     bool          // pretty debug logs
	LogLevel    string        // debug, info, warn, error
	Addr        string        // web server listen address
	SessionTTL  time.Duration // idle time before a web session is forgotten
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Currency:   "USD",
		LogLevel:   "warn",
		Addr:       ":8080",
		SessionTTL: 30 * time.Minute,
	}
}

// Load reads configuration from the .env file and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	def := Default()
	cfg := &Config{
		CatalogFile: getEnv(EnvCatalogFile, def.CatalogFile),
		Currency:    getEnv(EnvCurrency, def.Currency),
		Verbose:     getEnvAsBool(EnvVerbose, def.Verbose),
		LogLevel:    getEnv(EnvLogLevel, def.LogLevel),
		Addr:        getEnv(EnvAddr, def.Addr),
		SessionTTL:  getEnvAsDuration(EnvSessionTTL, def.SessionTTL),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Currency == "" {
		return fmt.Errorf("%s must not be empty", EnvCurrency)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("%s must be positive, got %v", EnvSessionTTL, c.SessionTTL)
	}
	return nil
}

// Environ returns c as environment variables, the form passed to extensions.
func (c *Config) Environ() []string {
	return []string{
		EnvCatalogFile + "=" + c.CatalogFile,
		EnvCurrency + "=" + c.Currency,
		EnvVerbose + "=" + strconv.FormatBool(c.Verbose),
		EnvLogLevel + "=" + c.LogLevel,
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
