package ports

import (
	"context"
	"time"
)

// FrameClock drives the spin animation one frame at a time.
type FrameClock interface {
	Now() time.Time
	// NextFrame blocks until the next frame is due and returns its time.
	NextFrame(ctx context.Context) (time.Time, error)
}
