// Package rescore types: the likelihood oracle contract, sentinel
// errors, and per-call options.
package rescore

import (
	"errors"
	"log/slog"

	"github.com/ostrodt/latt/core"
)

// Sentinel errors for rescoring.
var (
	// ErrEmptyLattice is returned when the lattice has no states.
	ErrEmptyLattice = errors.New("rescore: empty lattice")

	// ErrOracleHorizon indicates the oracle declares fewer frames than
	// the lattice spans.
	ErrOracleHorizon = errors.New("rescore: oracle frame horizon shorter than lattice")
)

// Oracle supplies per-frame log-likelihood scores for rescoring. It is
// queried synchronously and assumed cheap and pure; there is no retry
// logic around it.
type Oracle interface {
	// IsLastFrame reports whether t is the final frame the oracle can
	// score.
	IsLastFrame(t int32) bool

	// Score returns the log-likelihood of label at frame t. Higher is
	// more likely; the arc's acoustic cost becomes -score plus whatever
	// acoustic cost it already carried.
	Score(t int32, label core.Label) float64
}

// Option configures a rescoring call.
type Option func(*Options)

// Options holds per-call configuration.
type Options struct {
	// Log receives warnings (empty input, horizon mismatch detail).
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
