package clock

import (
	"context"
	"time"
)

// DefaultFrameInterval is roughly one display refresh at 60Hz.
const DefaultFrameInterval = 16 * time.Millisecond

// Ticker is a FrameClock that paces frames at a fixed interval.
type Ticker struct {
	interval time.Duration
}

func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Ticker{interval: interval}
}

func (t *Ticker) Now() time.Time { return time.Now() }

// NextFrame waits one interval. Each call uses a fresh timer so that a spin
// never sees frames queued up from an earlier one.
func (t *Ticker) NextFrame(ctx context.Context) (time.Time, error) {
	timer := time.NewTimer(t.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	case now := <-timer.C:
		return now, nil
	}
}
