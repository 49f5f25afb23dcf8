package llm

import (
	"strings"
	"testing"
)

func TestNewFromConfigGroq(t *testing.T) {
	c, err := NewFromConfig(ProviderConfig{
		Provider:    "groq",
		Model:       "mixtral-8x7b-32768",
		APIKey:      "key",
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	g, ok := c.(*GroqClient)
	if !ok {
		t.Fatalf("expected *GroqClient, got %T", c)
	}
	if g.model != "mixtral-8x7b-32768" || g.temperature != 0.7 {
		t.Fatalf("client not bound to config: %+v", g)
	}
}

func TestNewFromConfigAnthropic(t *testing.T) {
	c, err := NewFromConfig(ProviderConfig{Provider: "anthropic", APIKey: "key", Temperature: 0.7})
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	a, ok := c.(*AnthropicClient)
	if !ok {
		t.Fatalf("expected *AnthropicClient, got %T", c)
	}
	if a.model != "claude-sonnet-4-20250514" {
		t.Fatalf("expected default model, got %q", a.model)
	}
}

func TestNewFromConfigEmptyProvider(t *testing.T) {
	if _, err := NewFromConfig(ProviderConfig{}); err == nil {
		t.Fatal("expected error for empty provider")
	}
}

func TestNewFromConfigUnknownProvider(t *testing.T) {
	_, err := NewFromConfig(ProviderConfig{Provider: "openai"})
	if err == nil || !strings.Contains(err.Error(), "openai") {
		t.Fatalf("expected unknown provider error naming the provider, got %v", err)
	}
}
