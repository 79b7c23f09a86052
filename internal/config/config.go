// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume PDF (grade command)

	// Grading Inputs
	Role string `json:"role,omitempty"` // Target role name

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	ListenAddr  string `json:"listen_addr,omitempty"`  // HTTP listen address (serve command)
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information

	// Retrieval Tuning
	MinExampleScore float64 `json:"min_example_score,omitempty"` // Similarity floor for example chunks (0.0-1.0)
	MaxTagGroups    int     `json:"max_tag_groups,omitempty"`    // Diversity cap on example tag groups
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MinExampleScore < 0 || c.MinExampleScore > 1 {
		return fmt.Errorf("config error: 'min_example_score' must be between 0.0 and 1.0")
	}
	if c.MaxTagGroups < 0 {
		return fmt.Errorf("config error: 'max_tag_groups' must be non-negative")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListenAddr == "" {
		if defaults.ListenAddr != "" {
			result.ListenAddr = defaults.ListenAddr
		} else {
			result.ListenAddr = ":8080"
		}
	}

	// Int fields: use default if zero
	if result.MaxTagGroups == 0 {
		result.MaxTagGroups = defaults.MaxTagGroups
	}

	// Float fields
	if result.MinExampleScore == 0 {
		result.MinExampleScore = defaults.MinExampleScore
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
