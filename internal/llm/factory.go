package llm

import "fmt"

// ProviderConfig holds what's needed to construct a chat client.
type ProviderConfig struct {
	Provider    string // "groq" or "anthropic"
	Model       string
	APIKey      string
	Temperature float64
}

// NewFromConfig creates the appropriate Client based on provider name.
func NewFromConfig(cfg ProviderConfig) (Client, error) {
	switch cfg.Provider {
	case "groq":
		return NewGroqClient(cfg.APIKey, cfg.Model, cfg.Temperature), nil

	case "anthropic":
		return NewAnthropicClient(cfg.APIKey, cfg.Model, cfg.Temperature), nil

	case "":
		return nil, fmt.Errorf("no LLM provider configured (set provider in humanize.json)")

	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
