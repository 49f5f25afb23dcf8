package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != "groq" || cfg.Model != DefaultModel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Temperature != 0.7 {
		t.Fatalf("default temperature = %v", cfg.Temperature)
	}
}

func TestEnvOverridesFileKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "humanize.json")

	cfg := DefaultConfig()
	cfg.APIKey = "file-key"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv("GROQ_API_KEY", "env-key")
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.APIKey != "env-key" {
		t.Fatalf("APIKey = %q, want the environment value", loaded.APIKey)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	path := filepath.Join(t.TempDir(), "humanize.json")

	cfg := DefaultConfig()
	cfg.Model = "llama-3.3-70b-versatile"
	cfg.Temperature = 0.5
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Model != cfg.Model || loaded.Temperature != cfg.Temperature {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing API key")
	}

	cfg.APIKey = "something"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate with key: %v", err)
	}
}

func TestValidateTemperatureRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = "key"
	cfg.Temperature = 3.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range temperature")
	}
}

func TestModels(t *testing.T) {
	groq := Models("groq")
	if len(groq) != 3 {
		t.Fatalf("expected 3 groq models, got %d", len(groq))
	}
	if groq[1] != DefaultModel {
		t.Fatalf("expected default model at index 1, got %q", groq[1])
	}

	// Callers must not be able to reorder the shared set.
	groq[0] = "mutated"
	if GroqModels[0] == "mutated" {
		t.Fatal("Models returned the shared backing array")
	}
}

func TestDefaultModelFor(t *testing.T) {
	// The groq default is the middle entry of the fixed set, not the
	// first one.
	if got := DefaultModelFor("groq"); got != DefaultModel {
		t.Fatalf("DefaultModelFor(groq) = %q, want %q", got, DefaultModel)
	}
	if got := DefaultModelFor("anthropic"); got != Models("anthropic")[0] {
		t.Fatalf("DefaultModelFor(anthropic) = %q", got)
	}
}

func TestEnvKey(t *testing.T) {
	if EnvKey("groq") != "GROQ_API_KEY" {
		t.Fatal("groq env key")
	}
	if EnvKey("anthropic") != "ANTHROPIC_API_KEY" {
		t.Fatal("anthropic env key")
	}
}
