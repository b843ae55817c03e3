package clock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/adapters/clock"
)

func TestTicker_NextFrameAdvances(t *testing.T) {
	c := clock.NewTicker(time.Millisecond)
	before := c.Now()

	got, err := c.NextFrame(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.After(before) {
		t.Errorf("expected frame time after %v, got %v", before, got)
	}
}

func TestTicker_NextFrameCancelled(t *testing.T) {
	c := clock.NewTicker(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.NextFrame(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
