package convert

import "errors"

// ErrNotLinear is returned by LinearToCompact when the input branches,
// dead-ends before a final state, or revisits a state.
var ErrNotLinear = errors.New("convert: lattice is not linear")
