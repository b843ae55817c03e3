package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/adapters/kv/sqlite"
)

func openStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_GetMissing(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "wheel.db"))

	v, ok, err := s.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || v != "" {
		t.Errorf("expected missing key, got %q (ok=%v)", v, ok)
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, filepath.Join(t.TempDir(), "wheel.db"))

	if err := s.Set(ctx, "darkMode", "false"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "darkMode", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}

	v, ok, err := s.Get(ctx, "darkMode")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != "true" {
		t.Errorf("expected true, got %q (ok=%v)", v, ok)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "wheel.db")

	first, err := sqlite.Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Set(ctx, "wheelHistory", `[{"question":"q","result":"YES","timestamp":"1:00:00 PM"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second := openStore(t, path)
	v, ok, err := second.Get(ctx, "wheelHistory")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v == "" {
		t.Fatal("expected history to survive reopen")
	}
}
