package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/config"
)

var keys = []string{
	"HTTP_ADDR", "LOG_LEVEL", "STORE_BACKEND", "STORE_PATH", "WHEEL_OPTIONS_FILE",
	"SPIN_DURATION", "FRAME_INTERVAL", "LLM_MODEL", "LLM_FALLBACK_MODELS",
	"OPENROUTER_API_KEY", "OPENROUTER_BASE_URL", "LLM_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr: %s", c.HTTPAddr)
	}
	if c.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel: %v", c.LogLevel)
	}
	if c.StoreBackend != "sqlite" || c.StorePath != "data/wheel.db" {
		t.Errorf("store: %s %s", c.StoreBackend, c.StorePath)
	}
	if c.SpinDuration != 3*time.Second || c.FrameInterval != 16*time.Millisecond {
		t.Errorf("timing: %s %s", c.SpinDuration, c.FrameInterval)
	}
	if c.AdvisorEnabled() {
		t.Error("advisor should be disabled without an API key")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("SPIN_DURATION", "500ms")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OPENROUTER_API_KEY", "k")
	t.Setenv("LLM_FALLBACK_MODELS", " a, ,b ")

	c, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.StoreBackend != "memory" {
		t.Errorf("StoreBackend: %s", c.StoreBackend)
	}
	if c.SpinDuration != 500*time.Millisecond {
		t.Errorf("SpinDuration: %s", c.SpinDuration)
	}
	if c.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel: %v", c.LogLevel)
	}
	if !c.AdvisorEnabled() {
		t.Error("advisor should be enabled with an API key")
	}
	if len(c.LLMFallbackModels) != 2 || c.LLMFallbackModels[0] != "a" || c.LLMFallbackModels[1] != "b" {
		t.Errorf("LLMFallbackModels: %v", c.LLMFallbackModels)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"bad duration":    {"SPIN_DURATION", "soon"},
		"zero duration":   {"SPIN_DURATION", "0s"},
		"zero frame":      {"FRAME_INTERVAL", "0s"},
		"bad log level":   {"LOG_LEVEL", "chatty"},
		"bad backend":     {"STORE_BACKEND", "redis"},
		"bad llm timeout": {"LLM_TIMEOUT", "x"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			if _, err := config.Load(); err == nil {
				t.Errorf("expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}
