package compose

import (
	"errors"
	"log/slog"
	"math"

	"github.com/ostrodt/latt/core"
)

// ErrEmptyLattice is returned when the input lattice has no states.
var ErrEmptyLattice = errors.New("compose: empty lattice")

// Deterministic is a lazily evaluated deterministic automaton: from any
// state there is at most one transition per label. Implementations are
// queried on demand during composition and may synthesize states as
// they are asked for (an on-the-fly language model, a biasing graph, a
// constraint acceptor).
type Deterministic interface {
	// Start returns the initial state.
	Start() core.StateID

	// Final returns the final cost of s, or math.Inf(1) when s is not
	// final.
	Final(s core.StateID) float64

	// Arc looks up the transition out of s on label l. It reports
	// ok=false when no such transition exists; labels are never
	// epsilon.
	Arc(s core.StateID, l core.Label) (dst core.StateID, cost float64, ok bool)
}

// Options carries the tunable knobs for Compose.
type Options struct {
	// Log receives diagnostics. Defaults to slog.Default().
	Log *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger routes diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Log = l }
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Log: slog.Default()}
}

func isFinalCost(c float64) bool { return !math.IsInf(c, 1) }
