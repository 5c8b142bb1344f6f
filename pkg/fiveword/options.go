package fiveword

import "github.com/rs/zerolog"

// Option configures optional behavior of a Sifter.
type Option func(*options)

// options holds the optional configuration for a Sifter instance.
type options struct {
	logger zerolog.Logger
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		logger: zerolog.Nop(),
	}
}

// WithLogger sets a logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
