// Package fwdbwd types: combination modes, sentinel errors, options.
package fwdbwd

import (
	"errors"
	"log/slog"
)

// Sentinel errors for the forward-backward engine.
var (
	// ErrEmptyLattice is returned when the lattice has no states.
	ErrEmptyLattice = errors.New("fwdbwd: empty lattice")

	// ErrNotTopSorted is returned when the lattice is not topologically sorted.
	ErrNotTopSorted = errors.New("fwdbwd: lattice must be topologically sorted")
)

// Mode selects how alternatives combine across paths.
//
//   - BestPath  — max over negated costs (Viterbi / tropical).
//   - TotalProb — log-domain summation (total probability).
type Mode int

const (
	// BestPath combines alternatives by max: Viterbi alphas and betas.
	BestPath Mode = iota

	// TotalProb combines alternatives by log-add: posterior-style totals.
	TotalProb
)

// DefaultTolerance bounds the relative disagreement between the
// forward-derived and backward-derived totals before a warning is logged.
const DefaultTolerance = 1e-8

// Option configures a ForwardBackward call.
type Option func(*Options)

// Options holds per-call configuration.
type Options struct {
	// Tolerance is the relative forward/backward agreement bound.
	Tolerance float64

	// Log receives the disagreement warning.
	Log *slog.Logger
}

// DefaultOptions returns Options with DefaultTolerance and slog.Default().
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, Log: slog.Default()}
}

// WithTolerance overrides the forward/backward agreement tolerance.
// Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// WithLogger routes warnings to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Log = l
		}
	}
}
