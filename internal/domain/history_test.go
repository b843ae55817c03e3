package domain_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/domain"
)

func TestHistory_PushMostRecentFirst(t *testing.T) {
	var h domain.History
	h = h.Push(domain.HistoryEntry{Question: "first", Result: "YES"})
	h = h.Push(domain.HistoryEntry{Question: "second", Result: "NO"})

	if len(h) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(h))
	}
	if h[0].Question != "second" || h[1].Question != "first" {
		t.Errorf("unexpected order: %+v", h)
	}
}

func TestHistory_CappedAtLimit(t *testing.T) {
	var h domain.History
	for i := 0; i < 25; i++ {
		h = h.Push(domain.HistoryEntry{Question: "q" + strconv.Itoa(i), Result: "MAYBE"})
		if len(h) > domain.HistoryLimit {
			t.Fatalf("after %d pushes history has %d entries", i+1, len(h))
		}
	}
	if len(h) != domain.HistoryLimit {
		t.Fatalf("expected %d entries, got %d", domain.HistoryLimit, len(h))
	}
	if h[0].Question != "q24" || h[9].Question != "q15" {
		t.Errorf("unexpected window: first=%s last=%s", h[0].Question, h[9].Question)
	}
}

func TestHistory_PushDoesNotAliasInput(t *testing.T) {
	h := domain.History{{Question: "a"}}
	_ = h.Push(domain.HistoryEntry{Question: "b"})
	if h[0].Question != "a" {
		t.Errorf("original history mutated: %+v", h)
	}
}

func TestNewHistoryEntry_Timestamp(t *testing.T) {
	at := time.Date(2024, 5, 1, 14, 3, 9, 0, time.UTC)
	e := domain.NewHistoryEntry("Should I?", "YES", at)
	if e.Timestamp != "2:03:09 PM" {
		t.Errorf("unexpected timestamp: %s", e.Timestamp)
	}
}

func TestHistoryEntry_Line(t *testing.T) {
	e := domain.HistoryEntry{Question: "Lunch?", Result: "NO"}
	if got := e.Line("❌"); got != `❌ "Lunch?" → NO` {
		t.Errorf("unexpected line: %s", got)
	}
}

func TestTheme_DoubleToggleRestores(t *testing.T) {
	for _, start := range []domain.Theme{{Dark: false}, {Dark: true}} {
		if got := start.Toggle().Toggle(); got != start {
			t.Errorf("double toggle of %+v gave %+v", start, got)
		}
	}
}

func TestTheme_Presentation(t *testing.T) {
	dark := domain.ParseTheme("true")
	if !dark.Dark || dark.Class() != "dark-mode" || dark.Icon() != "☀️" || dark.String() != "true" {
		t.Errorf("unexpected dark theme: %+v %q %q", dark, dark.Class(), dark.Icon())
	}
	for _, raw := range []string{"false", "", "TRUE", "garbage"} {
		light := domain.ParseTheme(raw)
		if light.Dark || light.Class() != "" || light.Icon() != "🌙" {
			t.Errorf("raw %q: expected light theme, got %+v", raw, light)
		}
	}
}

func TestValidateQuestion(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		if _, err := domain.ValidateQuestion(q); !errors.Is(err, domain.ErrEmptyQuestion) {
			t.Errorf("q=%q: expected ErrEmptyQuestion, got %v", q, err)
		}
	}
	got, err := domain.ValidateQuestion("  Will it rain?  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Will it rain?" {
		t.Errorf("expected trimmed question, got %q", got)
	}
}

func TestOptionSet_Validate(t *testing.T) {
	valid := domain.OptionSet{
		Options: []domain.Option{{Label: "YES"}, {Label: "NO"}},
		Palette: []string{"#FF6B6B"},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid.Color(1) != "#FF6B6B" {
		t.Errorf("palette should cycle, got %s", valid.Color(1))
	}

	tests := []struct {
		name string
		set  domain.OptionSet
	}{
		{name: "no options", set: domain.OptionSet{Palette: []string{"#000000"}}},
		{name: "no palette", set: domain.OptionSet{Options: []domain.Option{{Label: "A"}}}},
		{name: "blank label", set: domain.OptionSet{Options: []domain.Option{{Label: " "}}, Palette: []string{"#000000"}}},
		{name: "duplicate", set: domain.OptionSet{Options: []domain.Option{{Label: "A"}, {Label: "A"}}, Palette: []string{"#000000"}}},
		{name: "bad colour", set: domain.OptionSet{Options: []domain.Option{{Label: "A"}}, Palette: []string{"red"}}},
	}
	for _, tt := range tests {
		if err := tt.set.Validate(); !errors.Is(err, domain.ErrInvalidOptionSet) {
			t.Errorf("%s: expected ErrInvalidOptionSet, got %v", tt.name, err)
		}
	}
}

func TestOptionSet_UnknownLabel(t *testing.T) {
	set := domain.OptionSet{Options: []domain.Option{{Label: "YES", Emoji: "✅", Advice: "go"}}}
	if set.Advice("NOPE") != "" || set.Emoji("NOPE") != "" {
		t.Error("unknown label should yield empty advice and emoji")
	}
	if set.Advice("YES") != "go" || set.Emoji("YES") != "✅" {
		t.Error("known label lookup failed")
	}
}
