package options

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/domain"
)

//go:embed data/options.yaml
var defaultOptionsYAML []byte

// Source loads the option table from a YAML file, or the embedded default
// when no path is given.
type Source struct {
	path string

	once sync.Once
	set  domain.OptionSet
	err  error
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) init() {
	raw := defaultOptionsYAML
	name := "embedded options"
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			s.err = fmt.Errorf("read options %s: %w", s.path, err)
			return
		}
		raw, name = b, s.path
	}
	s.set, s.err = Parse(raw)
	if s.err != nil {
		s.err = fmt.Errorf("parse %s: %w", name, s.err)
	}
}

func (s *Source) Options(_ context.Context) (domain.OptionSet, error) {
	s.once.Do(s.init)
	return s.set, s.err
}

// Parse decodes and validates an option table. Unknown fields are rejected.
func Parse(raw []byte) (domain.OptionSet, error) {
	var set domain.OptionSet
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil {
		return domain.OptionSet{}, fmt.Errorf("%w: %w", domain.ErrInvalidOptionSet, err)
	}
	if err := set.Validate(); err != nil {
		return domain.OptionSet{}, err
	}
	return set, nil
}

// Default returns the embedded option table.
func Default() domain.OptionSet {
	set, err := Parse(defaultOptionsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded options are invalid: %v", err))
	}
	return set
}
