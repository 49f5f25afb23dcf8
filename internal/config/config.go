// Package config loads and saves the humanize configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// GroqModels is the fixed set of selectable Groq model identifiers.
var GroqModels = []string{
	"llama-3.3-70b-versatile",
	"llama-3.1-8b-instant",
	"mixtral-8x7b-32768",
}

// DefaultModel is the Groq model used when none is configured.
const DefaultModel = "llama-3.1-8b-instant"

// Config holds the session settings. The API key may live in the config
// file, but the environment always wins.
type Config struct {
	Provider    string  `json:"provider"`
	Model       string  `json:"model"`
	APIKey      string  `json:"api_key,omitempty"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider:    "groq",
		Model:       DefaultModel,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
}

// Load reads the config file if present and applies the environment
// credential override. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// no file, defaults + environment
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if key := os.Getenv(EnvKey(cfg.Provider)); key != "" {
		cfg.APIKey = key
	}
	return cfg, nil
}

// Save writes the config as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports fatal configuration problems. A missing credential is
// fatal before any UI starts.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider cannot be empty")
	}
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature %.2f out of range [0, 2]", c.Temperature)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s not set (add it to your environment or .env file)", EnvKey(c.Provider))
	}
	return nil
}

// EnvKey returns the environment variable holding the credential for a
// provider.
func EnvKey(provider string) string {
	if provider == "anthropic" {
		return "ANTHROPIC_API_KEY"
	}
	return "GROQ_API_KEY"
}

// DefaultModelFor returns the default model identifier for a provider.
func DefaultModelFor(provider string) string {
	if provider == "anthropic" {
		return "claude-sonnet-4-20250514"
	}
	return DefaultModel
}

// Models returns the selectable model identifiers for a provider.
func Models(provider string) []string {
	if provider == "anthropic" {
		return []string{"claude-sonnet-4-20250514"}
	}
	out := make([]string, len(GroqModels))
	copy(out, GroqModels)
	return out
}
