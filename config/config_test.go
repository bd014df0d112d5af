package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv unsets every CRA_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvCatalogFile, EnvCurrency, EnvVerbose, EnvLogLevel, EnvAddr, EnvSessionTTL} {
		t.Setenv(key, "") // restores the original value on cleanup
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(EnvCatalogFile, "my.yaml")
	t.Setenv(EnvCurrency, "PKR")
	t.Setenv(EnvVerbose, "true")
	t.Setenv(EnvSessionTTL, "5m")
	t.Setenv(EnvAddr, "not a duration is fine here")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	want := Config{
		CatalogFile: "my.yaml",
		Currency:    "PKR",
		Verbose:     true,
		LogLevel:    "warn",
		Addr:        "not a duration is fine here",
		SessionTTL:  5 * time.Minute,
	}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(EnvVerbose, "maybe")
	t.Setenv(EnvSessionTTL, "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Verbose || cfg.SessionTTL != 30*time.Minute {
		t.Errorf("Load() = %+v, want the defaults for unparsable values", *cfg)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("CRA_CURRENCY=PKR\nCRA_LOG_LEVEL=debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// the environment wins over the file
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Currency != "PKR" {
		t.Errorf("Load().Currency = %q, want %q from .env", cfg.Currency, "PKR")
	}
	if cfg.LogLevel != "error" {
		t.Errorf("Load().LogLevel = %q, want %q from the environment", cfg.LogLevel, "error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"no currency", func(c *Config) { c.Currency = "" }, true},
		{"zero ttl", func(c *Config) { c.SessionTTL = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
