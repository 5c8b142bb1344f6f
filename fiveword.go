// Package fiveword is a convenience entry point to the five-letter word
// extractor in pkg/fiveword.
//
// Example usage:
//
//	cfg := fiveword.DefaultConfig()
//	cfg.Input = "TDK_Sozluk_Kelime_Listesi.txt"
//	stats, err := fiveword.Run(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
package fiveword

import (
	lib "github.com/bft-labs/fiveword/pkg/fiveword"
	"github.com/rs/zerolog"
)

// Config holds the source and destination paths.
type Config = lib.Config

// Stats summarizes a pass.
type Stats = lib.Stats

// Run extracts the five-letter words of cfg.Input into cfg.Output.
func Run(cfg Config) (Stats, error) {
	return lib.Run(cfg)
}

// RunWithLogger is Run with structured logging to logger.
func RunWithLogger(cfg Config, logger zerolog.Logger) (Stats, error) {
	s, err := lib.New(cfg, lib.WithLogger(logger))
	if err != nil {
		return Stats{}, err
	}
	return s.Run()
}

// DefaultConfig returns a Config using alltrwords.txt and 5-letter-words.txt.
func DefaultConfig() Config {
	return lib.DefaultConfig()
}
