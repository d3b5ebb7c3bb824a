// Package llm wraps the Gemini API for generated content. Callers pick a
// model tier; Config maps tiers to model names.
package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ModelTier selects a model by cost and capability.
type ModelTier string

const (
	// TierLite is for short outputs such as captions.
	TierLite ModelTier = "lite"
	// TierStandard writes full posts with structured output.
	TierStandard ModelTier = "standard"
)

// Defaults
const (
	DefaultStandardModel         = "gemini-2.5-flash"
	DefaultLiteModel             = "gemini-2.5-flash-lite"
	DefaultTemperature   float32 = 0.7
	DefaultMaxTokens     int32   = 1024
	DefaultTimeout               = 30 * time.Second
)

// Config holds the model settings.
type Config struct {
	Models          map[ModelTier]string
	Temperature     float32
	MaxOutputTokens int32
	// Timeout bounds a single generation call. Zero means no bound beyond
	// the caller's context.
	Timeout time.Duration
}

// DefaultConfig returns the built-in Gemini settings.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     DefaultLiteModel,
			TierStandard: DefaultStandardModel,
		},
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxTokens,
		Timeout:         DefaultTimeout,
	}
}

// LoadConfig reads overrides from the environment.
func LoadConfig() (*Config, error) {
	return ConfigFrom(os.Getenv)
}

// ConfigFrom applies GEMINI_MODEL, GEMINI_LITE_MODEL, LLM_TEMPERATURE,
// LLM_MAX_TOKENS and LLM_TIMEOUT over DefaultConfig.
func ConfigFrom(getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()

	if v := getenv("GEMINI_MODEL"); v != "" {
		cfg.Models[TierStandard] = v
	}
	if v := getenv("GEMINI_LITE_MODEL"); v != "" {
		cfg.Models[TierLite] = v
	}
	if v := getenv("LLM_TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil || f < 0 || f > 2 {
			return nil, fmt.Errorf("config error: LLM_TEMPERATURE must be between 0 and 2, got %q", v)
		}
		cfg.Temperature = float32(f)
	}
	if v := getenv("LLM_MAX_TOKENS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config error: LLM_MAX_TOKENS must be a positive integer, got %q", v)
		}
		cfg.MaxOutputTokens = int32(n)
	}
	if v := getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("config error: invalid LLM_TIMEOUT %q", v)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

// Model returns the model for tier, falling back to the standard tier.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok && model != "" {
		return model
	}
	return c.Models[TierStandard]
}
