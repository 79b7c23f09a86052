package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"role": "Backend Engineer",
		"database_url": "postgres://localhost/grader",
		"listen_addr": ":9090",
		"min_example_score": 0.6,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Backend Engineer", cfg.Role)
	assert.Equal(t, "postgres://localhost/grader", cfg.DatabaseURL)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 0.6, cfg.MinExampleScore)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_ScoreOutOfRange(t *testing.T) {
	cfg := &Config{
		MinExampleScore: 1.5,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "min_example_score")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		MaxTagGroups: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_tag_groups")
}

func TestValidate_ResumeNotFound(t *testing.T) {
	cfg := &Config{
		Resume: "/nonexistent/resume.pdf",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Role:            "Frontend Engineer",
		MinExampleScore: 0.55,
		MaxTagGroups:    6,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Role:         "Backend Engineer",
		DatabaseURL:  "postgres://localhost/grader",
		MaxTagGroups: 6,
	}

	partial := Config{
		Role:   "Full Stack Engineer",
		APIKey: "test-key",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "Full Stack Engineer", merged.Role)
	assert.Equal(t, "test-key", merged.APIKey)

	// Default values should fill in empty fields
	assert.Equal(t, "postgres://localhost/grader", merged.DatabaseURL)
	assert.Equal(t, 6, merged.MaxTagGroups)
}

func TestMergeWithDefaults_ListenAddrFallback(t *testing.T) {
	cfg := Config{}
	merged := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, ":8080", merged.ListenAddr)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Role:   "Backend Engineer",
		APIKey: "test-key",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "Backend Engineer", merged.Role)
	assert.Equal(t, "test-key", merged.APIKey)
}
