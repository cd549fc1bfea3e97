// Package times types: sentinel errors and per-call options.
package times

import (
	"errors"
	"log/slog"
)

// Sentinel errors for time annotation.
var (
	// ErrEmptyLattice is returned when the lattice has no states.
	ErrEmptyLattice = errors.New("times: empty lattice")

	// ErrNotTopSorted is returned when the lattice is not topologically sorted.
	ErrNotTopSorted = errors.New("times: lattice must be topologically sorted")

	// ErrInconsistent is returned when two inbound paths assign different
	// times to the same state.
	ErrInconsistent = errors.New("times: inconsistent state times")
)

// Option configures time annotation via functional arguments.
type Option func(*Options)

// Options holds per-call configuration.
type Options struct {
	// Log receives warnings about soft inconsistencies (utterance-length
	// disagreement across final states, missing final state).
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
