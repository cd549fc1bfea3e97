// Package fwdbwd runs the forward-backward dynamic program over a
// topologically sorted lattice, in either of the two combination modes
// the lattice semiring supports:
//
//   - BestPath  — combine alternatives by max (Viterbi); the total is the
//     negated best-path cost.
//   - TotalProb — combine alternatives by log-domain summation; the total
//     is the log of the summed path probabilities.
//
// Alphas and betas are negated costs (log-likelihoods), so the semiring
// zero appears as -Inf. The engine is generic over core.Automaton and
// therefore serves both the expanded and the compact form; it underlies
// both beam pruning and depth limiting.
//
// The forward-derived and backward-derived totals must agree up to
// floating-point noise; a divergence beyond the configured tolerance is
// logged as a warning (floating-point semirings tolerate minor drift) and
// the midpoint of the two is reported.
package fwdbwd
