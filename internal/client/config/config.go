// Package config assembles the client configuration from, in order of
// increasing precedence: built-in defaults, environment variables, an
// optional JSON file, and command-line flags.
package config

import "time"

// Config holds runtime settings for the skill-exchange CLI.
type Config struct {
	// ServerBaseURL is the backend origin, e.g. "http://localhost:5000".
	ServerBaseURL string `env:"SKILLEX_SERVER_URL"`
	// RequestTimeout bounds each API call.
	RequestTimeout time.Duration `env:"SKILLEX_REQUEST_TIMEOUT"`
	// DatabasePath is the SQLite file holding the persisted credential.
	DatabasePath string `env:"SKILLEX_DB_PATH"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"SKILLEX_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "skillex.db"
	c.LogLevel = "info"
}

// Load constructs a Config, applying the sources in precedence order.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
