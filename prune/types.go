// Package prune types: sentinel errors and per-call options.
package prune

import (
	"errors"
	"log/slog"
)

// Sentinel errors for pruning operations.
var (
	// ErrNonPositiveBeam is returned when Prune is given beam <= 0.
	ErrNonPositiveBeam = errors.New("prune: beam must be positive")

	// ErrBadMaxDepth is returned when LimitDepth is given maxPerFrame < 1.
	ErrBadMaxDepth = errors.New("prune: max depth per frame must be at least 1")

	// ErrScoreOutOfRange indicates an arc scored measurably better than
	// the best path, which can only come from broken weights.
	ErrScoreOutOfRange = errors.New("prune: arc score exceeds best-path score")
)

// DefaultSlack is the tolerated positive excess of an arc's normalized
// best-path score above zero before LimitDepth declares the lattice
// numerically broken.
const DefaultSlack = 0.1

// Option configures a pruning call.
type Option func(*Options)

// Options holds per-call configuration.
type Options struct {
	// Slack is the LimitDepth score sanity margin.
	Slack float64

	// Log receives warnings (empty-lattice no-ops, forward/backward
	// disagreement surfaced by the underlying engine).
	Log *slog.Logger
}

// DefaultOptions returns Options with DefaultSlack and slog.Default().
func DefaultOptions() Options {
	return Options{Slack: DefaultSlack, Log: slog.Default()}
}

// WithSlack overrides the score sanity margin. Non-positive values are
// ignored.
func WithSlack(slack float64) Option {
	return func(o *Options) {
		if slack > 0 {
			o.Slack = slack
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
