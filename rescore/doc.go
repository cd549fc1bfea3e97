// Package rescore rewrites lattice costs in place.
//
// Rescore replaces the acoustic cost component of every word-bearing arc
// in an expanded lattice with a freshly queried score from an external
// likelihood Oracle, keyed by the frame the arc occurs at and its input
// label. The graph component is untouched, so language-model costs
// survive acoustic rescoring. The oracle's declared frame horizon must
// cover the lattice; a lattice referencing frames past the horizon fails
// the whole operation (ErrOracleHorizon) — a contract violation, not a
// recoverable condition.
//
// AddWordPenalty adds a fixed insertion penalty to the graph component
// of every word-bearing compact arc. It is additive: applying p1 then p2
// equals applying p1+p2, and a zero penalty is a no-op.
package rescore
