package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/domain"
	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/ports"
)

// Store keys, shared with any client that reads the same store.
const (
	KeyHistory = "wheelHistory"
	KeyTheme   = "darkMode"
)

// FrameSink receives every animation frame of a running spin.
type FrameSink func(domain.Frame)

// Snapshot is a consistent view of the wheel for rendering.
type Snapshot struct {
	Rotation float64
	Spinning bool
	Theme    domain.Theme
	History  domain.History
	Last     *domain.SpinResult
}

// WheelService owns the single wheel: its rotation, history and theme.
type WheelService struct {
	options  domain.OptionSet
	store    ports.KVStore
	clock    ports.FrameClock
	rng      domain.RNG
	advisor  ports.Advisor
	duration time.Duration
	logger   *slog.Logger

	spinning atomic.Bool

	mu       sync.RWMutex
	rotation float64
	history  domain.History
	theme    domain.Theme
	last     *domain.SpinResult
}

// NewWheelService builds the service and restores history and theme from store.
// advisor may be nil, in which case the option table's advice is used as is.
func NewWheelService(
	ctx context.Context,
	options domain.OptionSet,
	store ports.KVStore,
	clock ports.FrameClock,
	rng domain.RNG,
	advisor ports.Advisor,
	duration time.Duration,
	logger *slog.Logger,
) (*WheelService, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &WheelService{
		options:  options,
		store:    store,
		clock:    clock,
		rng:      rng,
		advisor:  advisor,
		duration: duration,
		logger:   logger,
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *WheelService) load(ctx context.Context) error {
	raw, ok, err := s.store.Get(ctx, KeyHistory)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	if ok && raw != "" {
		var h domain.History
		if err := json.Unmarshal([]byte(raw), &h); err != nil {
			s.logger.WarnContext(ctx, "stored history is not valid JSON, starting empty", "error", err)
		} else {
			if len(h) > domain.HistoryLimit {
				h = h[:domain.HistoryLimit]
			}
			s.history = h
		}
	}

	raw, _, err = s.store.Get(ctx, KeyTheme)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	s.theme = domain.ParseTheme(raw)
	return nil
}

// Options returns the option table the wheel is drawn from.
func (s *WheelService) Options() domain.OptionSet { return s.options }

// Spinning reports whether a spin is currently animating.
func (s *WheelService) Spinning() bool { return s.spinning.Load() }

// Snapshot returns the current rotation, theme, history and last result.
func (s *WheelService) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Rotation: s.rotation,
		Spinning: s.spinning.Load(),
		Theme:    s.theme,
		History:  s.history.Clone(),
	}
	if s.last != nil {
		last := *s.last
		snap.Last = &last
	}
	return snap
}

// Spin animates the wheel for the configured duration and resolves the outcome.
// A spin already in flight makes this a no-op returning ErrSpinInProgress; a blank
// question returns ErrEmptyQuestion. Once started a spin runs to completion even
// if ctx is cancelled.
func (s *WheelService) Spin(ctx context.Context, question string, sink FrameSink) (domain.SpinResult, error) {
	if s.spinning.Load() {
		return domain.SpinResult{}, domain.ErrSpinInProgress
	}
	q, err := domain.ValidateQuestion(question)
	if err != nil {
		return domain.SpinResult{}, err
	}
	if !s.spinning.CompareAndSwap(false, true) {
		return domain.SpinResult{}, domain.ErrSpinInProgress
	}
	defer s.spinning.Store(false)

	ctx = context.WithoutCancel(ctx)

	s.mu.RLock()
	start := s.rotation
	s.mu.RUnlock()

	plan := domain.PlanSpin(s.rng, start, s.duration)
	s.logger.DebugContext(ctx, "spin started", "question", q, "total_rotation", plan.Total)

	begin := s.clock.Now()
	now := begin
	var rotation float64
	for {
		var progress float64
		rotation, progress = plan.RotationAt(now.Sub(begin))
		s.mu.Lock()
		s.rotation = rotation
		s.mu.Unlock()
		if sink != nil {
			sink(domain.Frame{Rotation: rotation, Progress: progress})
		}
		if progress >= 1 {
			break
		}
		now, err = s.clock.NextFrame(ctx)
		if err != nil {
			return domain.SpinResult{}, fmt.Errorf("next frame: %w", err)
		}
	}

	return s.complete(ctx, q, rotation), nil
}

func (s *WheelService) complete(ctx context.Context, question string, rotation float64) domain.SpinResult {
	idx := domain.ResolveIndex(rotation, len(s.options.Options))
	opt := s.options.Options[idx]

	res := domain.SpinResult{
		Question: question,
		Label:    opt.Label,
		Index:    idx,
		Emoji:    opt.Emoji,
		Advice:   s.advise(ctx, question, opt),
		Rotation: rotation,
	}

	s.mu.Lock()
	s.last = &res
	s.mu.Unlock()

	entry := domain.NewHistoryEntry(question, opt.Label, s.clock.Now())
	if err := s.AddHistory(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "failed to save history", "error", err)
	}

	s.logger.InfoContext(ctx, "spin completed", "result", res.Label, "index", idx)
	return res
}

func (s *WheelService) advise(ctx context.Context, question string, opt domain.Option) string {
	if s.advisor == nil {
		return opt.Advice
	}
	out, err := s.advisor.Advise(ctx, ports.AdviceInput{
		Question: question,
		Result:   opt.Label,
		Options:  s.options.Labels(),
		Advice:   opt.Advice,
	})
	if err != nil || out.Text == "" {
		s.logger.WarnContext(ctx, "advisor failed, using static advice", "result", opt.Label, "error", err)
		return opt.Advice
	}
	return out.Text
}

// AddHistory puts entry at the front of the history, keeps at most
// domain.HistoryLimit entries and persists the list.
func (s *WheelService) AddHistory(ctx context.Context, entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveHistoryLocked(ctx, s.history.Push(entry))
}

// History returns the remembered spins, most recent first.
func (s *WheelService) History() domain.History {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Clone()
}

// ClearHistory empties the history. Without confirmation nothing changes and
// ErrConfirmationRequired is returned.
func (s *WheelService) ClearHistory(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveHistoryLocked(ctx, domain.History{})
}

func (s *WheelService) saveHistoryLocked(ctx context.Context, h domain.History) error {
	raw, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	// The in-memory list is kept even when the write fails.
	s.history = h
	if err := s.store.Set(ctx, KeyHistory, string(raw)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Theme returns the current presentation theme.
func (s *WheelService) Theme() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleTheme flips between light and dark and persists the choice.
func (s *WheelService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = s.theme.Toggle()
	if err := s.store.Set(ctx, KeyTheme, s.theme.String()); err != nil {
		return s.theme, fmt.Errorf("save theme: %w", err)
	}
	return s.theme, nil
}
