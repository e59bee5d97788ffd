package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// duration lets JSON specify intervals either as strings like "15s" or as
// integer nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	}
	var ns int64
	if err := json.Unmarshal(data, &ns); err != nil {
		return err
	}
	d.Duration = time.Duration(ns)
	return nil
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields keep their current values.
type jsonConfig struct {
	ServerBaseURL  *string   `json:"server_base_url"`
	RequestTimeout *duration `json:"request_timeout"`
	DatabasePath   *string   `json:"database_path"`
	LogLevel       *string   `json:"log_level"`
}

// parseJSON overlays Config with values from the file named by the -c or
// -config flag. No flag, no file, no error.
func parseJSON(cfg *Config) error {
	path := jsonConfigPath()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
