package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderNone       = "none"
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
	ProviderMock       = "mock"
)

// Config selects and tunes the LLM backend used by the coach.
// It is filled by the application config layer (viper keys under "llm").
type Config struct {
	// Provider is one of the Provider* constants. "none" disables the coach.
	Provider string `mapstructure:"provider" validate:"oneof=none anthropic openai openrouter gemini mock"`

	Anthropic  ProviderConfig `mapstructure:"anthropic"`
	OpenAI     ProviderConfig `mapstructure:"openai"`
	OpenRouter ProviderConfig `mapstructure:"openrouter"`
	Gemini     ProviderConfig `mapstructure:"gemini"`

	Retry     RetryConfig     `mapstructure:"retry"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Timeout bounds one coach call including retries.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// ProviderConfig holds the credentials and model of one backend.
type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" validate:"gte=0"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	Multiplier  float64       `mapstructure:"multiplier" validate:"gte=0"`
}

// RateLimitConfig throttles outgoing requests. A zero PerMinute disables it.
type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute" validate:"gte=0"`
	Burst     int `mapstructure:"burst" validate:"gte=0"`
}

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// DefaultConfig returns the coach defaults: disabled, cheap models.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderNone,
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.0-flash-001", BaseURL: defaultOpenRouterBaseURL},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		RateLimit: RateLimitConfig{PerMinute: 20, Burst: 2},
		Timeout:   30 * time.Second,
	}
}

// Enabled reports whether a coach backend is configured.
func (c Config) Enabled() bool {
	return c.Provider != "" && c.Provider != ProviderNone
}

// Discover fills in the provider from the vendors' standard API key
// variables when none was configured. It returns false when nothing was
// found and the config is unchanged.
func (c *Config) Discover() bool {
	if c.Enabled() {
		return false
	}
	probes := []struct {
		env      string
		provider string
		target   *ProviderConfig
	}{
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &c.Anthropic},
		{"OPENAI_API_KEY", ProviderOpenAI, &c.OpenAI},
		{"GEMINI_API_KEY", ProviderGemini, &c.Gemini},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &c.OpenRouter},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			c.Provider = p.provider
			if p.target.APIKey == "" {
				p.target.APIKey = k
			}
			return true
		}
	}
	return false
}

// Selected returns the settings of the configured provider.
func (c Config) Selected() ProviderConfig {
	switch c.Provider {
	case ProviderAnthropic:
		return c.Anthropic
	case ProviderOpenAI:
		return c.OpenAI
	case ProviderOpenRouter:
		return c.OpenRouter
	case ProviderGemini:
		return c.Gemini
	}
	return ProviderConfig{}
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "", ProviderNone, ProviderMock:
		return nil
	case ProviderAnthropic, ProviderOpenAI, ProviderOpenRouter, ProviderGemini:
		if c.Selected().APIKey == "" {
			return fmt.Errorf("llm.%s.api_key (PREPCOACH_LLM_%s_API_KEY) is required for the %s provider",
				c.Provider, strings.ToUpper(c.Provider), c.Provider)
		}
		return nil
	}
	return fmt.Errorf("unknown LLM provider: %q", c.Provider)
}
