package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Float64 returns a pseudo-random number in [0, 1).
	Float64() float64
}

// Option is one labeled outcome of the wheel.
type Option struct {
	Label  string `yaml:"label" json:"label"`
	Emoji  string `yaml:"emoji" json:"emoji"`
	Advice string `yaml:"advice" json:"advice"`
}

// OptionSet is the ordered list of outcomes plus the palette their slices cycle through.
type OptionSet struct {
	Options []Option `yaml:"options" json:"options"`
	Palette []string `yaml:"palette" json:"palette"`
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate reports whether the set can be drawn and resolved.
func (s OptionSet) Validate() error {
	if len(s.Options) == 0 {
		return fmt.Errorf("%w: no options", ErrInvalidOptionSet)
	}
	if len(s.Palette) == 0 {
		return fmt.Errorf("%w: empty palette", ErrInvalidOptionSet)
	}
	seen := make(map[string]bool, len(s.Options))
	for i, o := range s.Options {
		label := strings.TrimSpace(o.Label)
		if label == "" {
			return fmt.Errorf("%w: option %d has a blank label", ErrInvalidOptionSet, i)
		}
		if seen[label] {
			return fmt.Errorf("%w: duplicate label %q", ErrInvalidOptionSet, label)
		}
		seen[label] = true
	}
	for _, c := range s.Palette {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("%w: bad colour %q", ErrInvalidOptionSet, c)
		}
	}
	return nil
}

// Labels returns the option labels in wheel order.
func (s OptionSet) Labels() []string {
	out := make([]string, len(s.Options))
	for i, o := range s.Options {
		out[i] = o.Label
	}
	return out
}

// Color returns the palette colour of slice i.
func (s OptionSet) Color(i int) string {
	return s.Palette[i%len(s.Palette)]
}

// Lookup finds an option by label. Unknown labels yield the zero Option.
func (s OptionSet) Lookup(label string) (Option, bool) {
	for _, o := range s.Options {
		if o.Label == label {
			return o, true
		}
	}
	return Option{}, false
}

// Advice returns the advice text for label, or "" when unknown.
func (s OptionSet) Advice(label string) string {
	o, _ := s.Lookup(label)
	return o.Advice
}

// Emoji returns the emoji for label, or "" when unknown.
func (s OptionSet) Emoji(label string) string {
	o, _ := s.Lookup(label)
	return o.Emoji
}

// Frame is a single step of a running spin animation.
type Frame struct {
	Rotation float64 `json:"rotation"`
	Progress float64 `json:"progress"`
}

// SpinResult is the outcome of a completed spin.
type SpinResult struct {
	Question string  `json:"question"`
	Label    string  `json:"result"`
	Index    int     `json:"index"`
	Emoji    string  `json:"emoji"`
	Advice   string  `json:"advice"`
	Rotation float64 `json:"rotation"`
}

// ValidateQuestion trims q and rejects blank input.
func ValidateQuestion(q string) (string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", ErrEmptyQuestion
	}
	return q, nil
}
