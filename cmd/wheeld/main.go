package main

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/adapters/clock"
	httpadapter "github.com/roksanalatawska-cloud/spin-wheel-game/internal/adapters/http"
	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/adapters/kv/memory"
	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/adapters/kv/sqlite"
	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/adapters/llm/openrouter"
	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/adapters/options"
	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/app"
	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/config"
	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/ports"
)

// stdRNG delegates to math/rand (auto-seeded).
type stdRNG struct{}

func (stdRNG) Float64() float64 { return rand.Float64() }

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var source ports.OptionSource = options.NewSource(cfg.OptionsFile)
	set, err := source.Options(ctx)
	if err != nil {
		logger.Error("failed to load options", "error", err)
		os.Exit(1)
	}

	store, closer, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to open store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	var advisor ports.Advisor
	if cfg.AdvisorEnabled() {
		advisor = openrouter.NewClient(
			&http.Client{Timeout: cfg.LLMTimeout},
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBaseURL,
			cfg.LLMModel,
			cfg.LLMFallbackModels,
			logger,
		)
	}

	svc, err := app.NewWheelService(ctx, set, store, clock.NewTicker(cfg.FrameInterval), stdRNG{}, advisor, cfg.SpinDuration, logger)
	if err != nil {
		logger.Error("failed to start wheel", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = httpadapter.NewTemplates()

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc)
	handler.Register(e)

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "store", cfg.StoreBackend, "options", len(set.Options), "advisor", cfg.AdvisorEnabled())
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	// Long enough for an in-flight spin to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (ports.KVStore, io.Closer, error) {
	if cfg.StoreBackend == "memory" {
		return memory.NewStore(), io.NopCloser(nil), nil
	}
	s, err := sqlite.Open(ctx, cfg.StorePath)
	if err != nil {
		return nil, nil, err
	}
	return s, s, nil
}
