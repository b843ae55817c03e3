package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr          string
	LogLevel          slog.Level
	StoreBackend      string
	StorePath         string
	OptionsFile       string
	SpinDuration      time.Duration
	FrameInterval     time.Duration
	LLMModel          string
	LLMFallbackModels []string
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	LLMTimeout        time.Duration
}

// AdvisorEnabled reports whether spin advice should be elaborated by the LLM.
func (c Config) AdvisorEnabled() bool { return c.OpenRouterAPIKey != "" }

func Load() (Config, error) {
	c := Config{
		HTTPAddr:          envOr("HTTP_ADDR", ":8080"),
		StoreBackend:      strings.ToLower(envOr("STORE_BACKEND", "sqlite")),
		StorePath:         envOr("STORE_PATH", "data/wheel.db"),
		OptionsFile:       os.Getenv("WHEEL_OPTIONS_FILE"),
		LLMModel:          envOr("LLM_MODEL", "qwen/qwen3-4b:free"),
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL: envOr("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		LLMFallbackModels: parseList(os.Getenv("LLM_FALLBACK_MODELS")),
	}

	var err error
	if c.SpinDuration, err = durationOr("SPIN_DURATION", 3*time.Second); err != nil {
		return Config{}, err
	}
	if c.FrameInterval, err = durationOr("FRAME_INTERVAL", 16*time.Millisecond); err != nil {
		return Config{}, err
	}
	if c.LLMTimeout, err = durationOr("LLM_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if c.SpinDuration <= 0 {
		return Config{}, fmt.Errorf("SPIN_DURATION must be positive, got %s", c.SpinDuration)
	}
	if c.FrameInterval <= 0 {
		return Config{}, fmt.Errorf("FRAME_INTERVAL must be positive, got %s", c.FrameInterval)
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	switch c.StoreBackend {
	case "sqlite", "memory":
	default:
		return Config{}, fmt.Errorf("invalid STORE_BACKEND %q (want sqlite or memory)", c.StoreBackend)
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, m := range strings.Split(s, ",") {
		m = strings.TrimSpace(m)
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
