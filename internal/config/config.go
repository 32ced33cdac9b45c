// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config is the Majel configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults, CLI flags, or the
// environment.
type Config struct {
	// Paths
	Bundle string `json:"bundle,omitempty"` // Path to the effect catalog bundle JSON
	Roster string `json:"roster,omitempty"` // Path to an offline roster JSON (CLI recommend/chat without a database)

	// Services
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Port        int    `json:"port,omitempty"`         // HTTP listen port

	// Behavior
	Verbose bool   `json:"verbose,omitempty"` // Print detailed score breakdowns
	Model   string `json:"model,omitempty"`   // Chat model override
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays environment variables onto empty fields. Explicit config
// file values win over the environment.
func (c *Config) ApplyEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Bundle == "" {
		c.Bundle = os.Getenv("MAJEL_BUNDLE")
	}
	if c.Roster == "" {
		c.Roster = os.Getenv("MAJEL_ROSTER")
	}
	if c.Port == 0 {
		if p, err := strconv.Atoi(os.Getenv("MAJEL_PORT")); err == nil {
			c.Port = p
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.Bundle != "" {
		if _, err := os.Stat(c.Bundle); os.IsNotExist(err) {
			return fmt.Errorf("config error: bundle file not found: %s", c.Bundle)
		}
	}
	if c.Roster != "" {
		if _, err := os.Stat(c.Roster); os.IsNotExist(err) {
			return fmt.Errorf("config error: roster file not found: %s", c.Roster)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Bundle == "" {
		result.Bundle = defaults.Bundle
	}
	if result.Roster == "" {
		result.Roster = defaults.Roster
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
