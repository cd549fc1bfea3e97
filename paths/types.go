// Package paths types: sentinel errors and per-call options.
package paths

import (
	"errors"
	"log/slog"
)

// Sentinel errors for path and measurement extraction.
var (
	// ErrEmptyLattice is returned when the lattice has no states.
	ErrEmptyLattice = errors.New("paths: empty lattice")

	// ErrNotLinear is returned when word-alignment extraction meets a
	// state that breaks strict linearity.
	ErrNotLinear = errors.New("paths: lattice is not linear")

	// ErrNoPath is returned when no finite-cost complete path exists.
	ErrNoPath = errors.New("paths: no finite-cost path (infinite costs?)")

	// ErrNotTopSorted is returned when the input must already be sorted.
	ErrNotTopSorted = errors.New("paths: lattice must be topologically sorted")
)

// Option configures an extraction call.
type Option func(*Options)

// Options holds per-call configuration.
type Options struct {
	// Log receives warnings (approximate alignments on final weights).
	Log *slog.Logger
}

// DefaultOptions returns Options backed by slog.Default().
func DefaultOptions() Options {
	return Options{Log: slog.Default()}
}

// WithLogger routes warnings to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Log = l
		}
	}
}
