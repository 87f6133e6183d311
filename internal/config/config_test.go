package config

import (
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/episodic")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEYS", "key-a,key-b")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("expected ServerPort=8080, got %q", cfg.ServerPort)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected Environment=development, got %q", cfg.Environment)
	}
	if cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
		t.Errorf("expected default OpenAI base URL, got %q", cfg.OpenAIBaseURL)
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("expected default OpenAI model gpt-4o, got %q", cfg.OpenAIModel)
	}
	if cfg.DefaultProvider != "gemini" {
		t.Errorf("expected DefaultProvider=gemini, got %q", cfg.DefaultProvider)
	}
	if cfg.MaxConcurrency != 8 {
		t.Errorf("expected MaxConcurrency=8, got %d", cfg.MaxConcurrency)
	}
	if cfg.ProviderTimeoutSecs != 60 {
		t.Errorf("expected ProviderTimeoutSecs=60, got %d", cfg.ProviderTimeoutSecs)
	}

	wantChain := []string{"gemini-2.0-flash", "gemini-1.5-pro", "gemini-1.5-flash"}
	if len(cfg.GeminiFallbackModels) != len(wantChain) {
		t.Fatalf("expected %d fallback models, got %d", len(wantChain), len(cfg.GeminiFallbackModels))
	}
	for i, m := range wantChain {
		if cfg.GeminiFallbackModels[i] != m {
			t.Errorf("fallback model %d: expected %q, got %q", i, m, cfg.GeminiFallbackModels[i])
		}
	}
}

func TestLoadConfig_RequiredVars(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"missing database url", "DATABASE_URL"},
		{"missing redis url", "REDIS_URL"},
		{"missing openai key", "OPENAI_API_KEY"},
		{"missing gemini keys", "GEMINI_API_KEYS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			if _, err := LoadConfig(); err == nil {
				t.Errorf("expected error when %s is empty", tt.unset)
			}
		})
	}
}

func TestLoadConfig_GeminiKeysSplit(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GEMINI_API_KEYS", " key-1 , key-2,,key-3 ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	want := []string{"key-1", "key-2", "key-3"}
	if len(cfg.GeminiAPIKeys) != len(want) {
		t.Fatalf("expected %d keys, got %d: %v", len(want), len(cfg.GeminiAPIKeys), cfg.GeminiAPIKeys)
	}
	for i, k := range want {
		if cfg.GeminiAPIKeys[i] != k {
			t.Errorf("key %d: expected %q, got %q", i, k, cfg.GeminiAPIKeys[i])
		}
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DEFAULT_PROVIDER", "openai")
	t.Setenv("MAX_CONCURRENCY", "32")
	t.Setenv("GEMINI_FALLBACK_MODELS", "gemini-2.0-flash")
	t.Setenv("ALLOWED_ORIGINS", "https://studio.example.com, https://app.example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.ServerPort != "9090" {
		t.Errorf("expected ServerPort=9090, got %q", cfg.ServerPort)
	}
	if cfg.DefaultProvider != "openai" {
		t.Errorf("expected DefaultProvider=openai, got %q", cfg.DefaultProvider)
	}
	if cfg.MaxConcurrency != 32 {
		t.Errorf("expected MaxConcurrency=32, got %d", cfg.MaxConcurrency)
	}
	if len(cfg.GeminiFallbackModels) != 1 || cfg.GeminiFallbackModels[0] != "gemini-2.0-flash" {
		t.Errorf("expected single fallback model, got %v", cfg.GeminiFallbackModels)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://app.example.com" {
		t.Errorf("unexpected AllowedOrigins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadConfig_InvalidNumericFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MAX_CONCURRENCY", "not-a-number")
	t.Setenv("PROVIDER_TIMEOUT_SECONDS", "-5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.MaxConcurrency != 8 {
		t.Errorf("expected MaxConcurrency default 8, got %d", cfg.MaxConcurrency)
	}
	if cfg.ProviderTimeoutSecs != 60 {
		t.Errorf("expected ProviderTimeoutSecs default 60, got %d", cfg.ProviderTimeoutSecs)
	}
}
