package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config with SKILLEX_* environment variables. Unset
// variables leave the existing values alone.
func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
