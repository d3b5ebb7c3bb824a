// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/postpilot/postpilot/internal/validation"
)

// Config represents the CLI defaults that can be loaded from a JSON file.
// All fields are optional; CLI flags override them.
type Config struct {
	DatabaseURL string `json:"database_url,omitempty"`
	JobFeedURL  string `json:"job_feed_url,omitempty" validate:"omitempty,url"`
	APIKey      string `json:"api_key,omitempty"` // Gemini
	LogLevel    string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`

	// linkedin-post
	Tone     string `json:"tone,omitempty" validate:"omitempty,oneof=professional casual inspirational"`
	Audience string `json:"audience,omitempty"`

	// ad
	BusinessName string `json:"business_name,omitempty"`
	Category     string `json:"category,omitempty"`
	LandingURL   string `json:"landing_url,omitempty" validate:"omitempty,url"`

	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
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

// Validate reports every field with a value outside its allowed set.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a copy of c with empty string fields taken from
// defaults. Verbose is never merged.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&result.DatabaseURL, defaults.DatabaseURL)
	fill(&result.JobFeedURL, defaults.JobFeedURL)
	fill(&result.APIKey, defaults.APIKey)
	fill(&result.LogLevel, defaults.LogLevel)
	fill(&result.Tone, defaults.Tone)
	fill(&result.Audience, defaults.Audience)
	fill(&result.BusinessName, defaults.BusinessName)
	fill(&result.Category, defaults.Category)
	fill(&result.LandingURL, defaults.LandingURL)

	return result
}
