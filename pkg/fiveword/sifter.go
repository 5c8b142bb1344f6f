package fiveword

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Sifter runs the five-letter extraction between two files.
// Use New() to create an instance, then Run() to perform the pass.
type Sifter struct {
	config Config
	logger zerolog.Logger
}

// New creates a Sifter with the given configuration.
// Returns an error wrapping ErrInvalidConfig if a path is missing.
func New(cfg Config, opts ...Option) (*Sifter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Sifter{
		config: cfg,
		logger: o.logger.With().Str("component", "sifter").Logger(),
	}, nil
}

// Config returns the configuration the Sifter was created with.
func (s *Sifter) Config() Config {
	return s.config
}

// Run opens the source, creates or truncates the destination and sifts one
// into the other. Both files are closed on every return path. The source is
// opened first so a missing source leaves the destination untouched.
func (s *Sifter) Run() (stats Stats, err error) {
	src, err := os.Open(s.config.Input)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: source %s: %w", ErrOpen, s.config.Input, err)
	}
	defer src.Close()

	dst, err := os.Create(s.config.Output)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: destination %s: %w", ErrOpen, s.config.Output, err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrWrite, s.config.Output, cerr)
		}
	}()

	s.logger.Debug().
		Str("input", s.config.Input).
		Str("output", s.config.Output).
		Msg("sifting")

	stats, err = Sift(src, dst)
	if err != nil {
		s.logger.Error().Err(err).
			Int("lines", stats.Lines).
			Int("accepted", stats.Accepted).
			Msg("sift aborted, partial output left on disk")
		return stats, err
	}

	s.logger.Debug().
		Int("lines", stats.Lines).
		Int("accepted", stats.Accepted).
		Int("rejected", stats.Rejected()).
		Msg("sift complete")
	return stats, nil
}
