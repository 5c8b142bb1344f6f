package fiveword

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/fiveword/internal/domain"
)

const (
	// DefaultInput is the source word list read when no input is configured.
	DefaultInput = "alltrwords.txt"

	// DefaultOutput is the destination written when no output is configured.
	DefaultOutput = "5-letter-words.txt"
)

// Errors returned by Run and Sift. Check with errors.Is.
var (
	ErrOpen          = domain.ErrOpen
	ErrRead          = domain.ErrRead
	ErrWrite         = domain.ErrWrite
	ErrInvalidConfig = domain.ErrInvalidConfig
)

// Config holds the source and destination paths of a run.
// Use DefaultConfig() to get a Config with the default file names.
type Config struct {
	// Input is the path of the UTF-8 word list, one word per line.
	Input string `json:"input"`

	// Output is the path of the file to create or truncate.
	Output string `json:"output"`
}

// DefaultConfig returns a Config with the default file names.
func DefaultConfig() Config {
	return Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
	}
}

// Validate checks that both paths are set.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalidConfig)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidConfig)
	}
	return nil
}

// Stats summarizes a completed (or aborted) pass.
type Stats struct {
	// Lines is the number of source lines read.
	Lines int

	// Accepted is the number of words written to the destination.
	Accepted int
}

// Rejected returns the number of lines skipped by the predicate.
func (s Stats) Rejected() int {
	return s.Lines - s.Accepted
}

// Accept reports whether word is exactly five Unicode letters.
func Accept(word string) bool {
	return domain.Accept(word)
}

// Transform applies the Turkish dotless/dotted i mapping followed by a
// locale-neutral uppercase.
func Transform(word string) string {
	return domain.Transform(word)
}

// Sift reads r line by line and writes every accepted, transformed word to w
// followed by a newline, in source order. Lines end at \n, \r\n or a lone \r.
// The returned Stats reflect the lines handled before any failure.
func Sift(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	sc.Split(scanLines)
	bw := bufio.NewWriter(w)

	for sc.Scan() {
		stats.Lines++
		word, ok := domain.Normalize(sc.Text())
		if !ok {
			continue
		}
		if _, err := bw.WriteString(word); err != nil {
			return stats, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return stats, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		stats.Accepted++
	}
	if err := sc.Err(); err != nil {
		readErr := fmt.Errorf("%w: line %d: %w", ErrRead, stats.Lines+1, err)
		// Keep what was accepted so far.
		if ferr := bw.Flush(); ferr != nil {
			return stats, errors.Join(readErr, fmt.Errorf("%w: %w", ErrWrite, ferr))
		}
		return stats, readErr
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return stats, nil
}

// Run sifts cfg.Input into cfg.Output with no logging.
// It is shorthand for New(cfg) followed by Sifter.Run.
func Run(cfg Config) (Stats, error) {
	s, err := New(cfg)
	if err != nil {
		return Stats{}, err
	}
	return s.Run()
}
