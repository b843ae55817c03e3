package ports

import (
	"context"

	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/domain"
)

// KVStore is the local key-value persistence the wheel keeps its history and theme in.
type KVStore interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// OptionSource provides the wheel's option table.
type OptionSource interface {
	Options(ctx context.Context) (domain.OptionSet, error)
}
