package config

import (
	"testing"
	"time"
)

func clearAIEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "AI_PROVIDER", "ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY", "Model",
		"GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY", "OPENAI_BASE_URL",
		"AI_EMOTION_LLM_ENABLED", "AI_REPLY_LLM_ENABLED", "AI_REMOTE_TIMEOUT",
		"ARK_TEMPERATURE", "ARK_TOP_P", "ARK_MAX_TOKENS", "CORS_ALLOWED_ORIGINS", "COMPANION_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultsWithoutCredentials(t *testing.T) {
	clearAIEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr %s", cfg.Server.Addr)
	}
	if cfg.AI.Enabled() {
		t.Fatal("expected remote path disabled without credentials")
	}
	if cfg.AI.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.AI.Timeout)
	}
	if !cfg.AI.EmotionLLMEnabled || !cfg.AI.ReplyLLMEnabled {
		t.Fatal("expected LLM features enabled by default")
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Fatalf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
	if cfg.CompanionID != "" {
		t.Fatalf("expected empty companion id, got %q", cfg.CompanionID)
	}
}

func TestLoadServerOverrides(t *testing.T) {
	clearAIEnv(t)
	t.Setenv("PORT", "127.0.0.1:9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://localhost:5173 , https://mood.example ")
	t.Setenv("COMPANION_ID", "coach")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Fatalf("unexpected addr %s", cfg.Server.Addr)
	}
	want := []string{"http://localhost:5173", "https://mood.example"}
	if len(cfg.Server.AllowedOrigins) != len(want) {
		t.Fatalf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
	for i, origin := range want {
		if cfg.Server.AllowedOrigins[i] != origin {
			t.Fatalf("origin %d: expected %s, got %s", i, origin, cfg.Server.AllowedOrigins[i])
		}
	}
	if cfg.CompanionID != "coach" {
		t.Fatalf("unexpected companion id %q", cfg.CompanionID)
	}
}

func TestLoadDetectsGeminiProvider(t *testing.T) {
	clearAIEnv(t)
	t.Setenv("GOOGLE_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Provider != ProviderGemini || !cfg.AI.Enabled() {
		t.Fatalf("expected gemini provider enabled, got %q", cfg.AI.Provider)
	}
}

func TestLoadExplicitProviderWithoutKey(t *testing.T) {
	clearAIEnv(t)
	t.Setenv("AI_PROVIDER", "openai")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Enabled() {
		t.Fatal("expected openai provider disabled without key")
	}
}

func TestLoadArkNeedsModel(t *testing.T) {
	clearAIEnv(t)
	t.Setenv("ARK_API_KEY", "ak")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Enabled() {
		t.Fatal("expected ark disabled without model")
	}

	t.Setenv("Model", "doubao-pro")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Provider != ProviderArk || !cfg.AI.Enabled() {
		t.Fatalf("expected ark provider enabled, got %q", cfg.AI.Provider)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"AI_PROVIDER":            "bedrock",
		"AI_REMOTE_TIMEOUT":      "soon",
		"AI_EMOTION_LLM_ENABLED": "maybe",
		"ARK_MAX_TOKENS":         "lots",
		"PORT":                   "80 80",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearAIEnv(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}
