package llm

import (
	"fmt"
	"os"
	"time"
)

// DefaultGeminiModel is the model the quiz was originally tuned against.
const DefaultGeminiModel = "gemini-3-flash-preview"

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "openai", "openrouter", "anthropic", "mock"
	Provider string

	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Anthropic  AnthropicConfig

	// Timeout bounds a single Generate call. There are no retries, so
	// this is the whole budget for a question or feedback request.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Any OpenAI-compatible endpoint.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: DefaultGeminiModel,
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies QUIZNEXUS_* variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides c with any QUIZNEXUS_* variables that are set.
// Unset variables leave the current value alone, which lets a config
// file sit underneath the environment.
func (c *Config) ApplyEnv() {
	if p := os.Getenv("QUIZNEXUS_LLM_PROVIDER"); p != "" {
		c.Provider = p
	}
	if t := os.Getenv("QUIZNEXUS_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			c.Timeout = d
		}
	}

	if k := os.Getenv("QUIZNEXUS_GEMINI_API_KEY"); k != "" {
		c.Gemini.APIKey = k
	}
	if m := os.Getenv("QUIZNEXUS_GEMINI_MODEL"); m != "" {
		c.Gemini.Model = m
	}

	if k := os.Getenv("QUIZNEXUS_OPENAI_API_KEY"); k != "" {
		c.OpenAI.APIKey = k
	}
	if m := os.Getenv("QUIZNEXUS_OPENAI_MODEL"); m != "" {
		c.OpenAI.Model = m
	}
	if u := os.Getenv("QUIZNEXUS_OPENAI_BASE_URL"); u != "" {
		c.OpenAI.BaseURL = u
	}

	if k := os.Getenv("QUIZNEXUS_OPENROUTER_API_KEY"); k != "" {
		c.OpenRouter.APIKey = k
	}
	if m := os.Getenv("QUIZNEXUS_OPENROUTER_MODEL"); m != "" {
		c.OpenRouter.Model = m
	}

	if k := os.Getenv("QUIZNEXUS_ANTHROPIC_API_KEY"); k != "" {
		c.Anthropic.APIKey = k
	}
	if m := os.Getenv("QUIZNEXUS_ANTHROPIC_MODEL"); m != "" {
		c.Anthropic.Model = m
	}
}

// DiscoverConfig probes the vendors' standard API key variables in order
// (Gemini, API_KEY, OpenAI, Anthropic, OpenRouter) and fills in the first
// key found on top of base. API_KEY is treated as a Gemini key.
// Returns (base, false) if no key is set.
func DiscoverConfig(base Config) (Config, bool) {
	cfg := base

	for _, name := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if k := os.Getenv(name); k != "" {
			cfg.Provider = "gemini"
			cfg.Gemini.APIKey = k
			return cfg, true
		}
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return base, false
}

// ApplyStandardKeys fills a missing key for the selected provider from the
// vendor's own variable. It never changes the provider.
func (c *Config) ApplyStandardKeys() {
	if c.HasKey() {
		return
	}
	switch c.Provider {
	case "gemini":
		c.Gemini.APIKey = firstEnv("GEMINI_API_KEY", "API_KEY")
	case "openai":
		c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case "openrouter":
		c.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	case "anthropic":
		c.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// HasKey reports whether the selected provider already has credentials.
func (c Config) HasKey() bool {
	switch c.Provider {
	case "gemini":
		return c.Gemini.APIKey != ""
	case "openai":
		return c.OpenAI.APIKey != ""
	case "openrouter":
		return c.OpenRouter.APIKey != ""
	case "anthropic":
		return c.Anthropic.APIKey != ""
	case "mock":
		return true
	}
	return false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("QUIZNEXUS_GEMINI_API_KEY (or GEMINI_API_KEY) is required for the gemini provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("QUIZNEXUS_OPENAI_API_KEY is required for the openai provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("QUIZNEXUS_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("QUIZNEXUS_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("LLM timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// ActiveModel returns the configured model name for the selected provider.
func (c Config) ActiveModel() string {
	switch c.Provider {
	case "gemini":
		return c.Gemini.Model
	case "openai":
		return c.OpenAI.Model
	case "openrouter":
		return c.OpenRouter.Model
	case "anthropic":
		return c.Anthropic.Model
	}
	return c.Provider
}

// SetModel overrides the model for the selected provider.
func (c *Config) SetModel(model string) {
	if model == "" {
		return
	}
	switch c.Provider {
	case "gemini":
		c.Gemini.Model = model
	case "openai":
		c.OpenAI.Model = model
	case "openrouter":
		c.OpenRouter.Model = model
	case "anthropic":
		c.Anthropic.Model = model
	}
}
