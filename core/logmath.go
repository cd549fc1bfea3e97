package core

import "math"

// LogZero is the log-domain zero: the log-probability of an impossible
// event. It is the additive identity of LogAdd.
var LogZero = math.Inf(-1)

// LogAdd returns log(exp(a) + exp(b)) computed without overflow: the
// log-domain summation used by the total-probability combination rule.
// Either argument may be LogZero.
func LogAdd(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	// a >= b here; an impossible b contributes nothing.
	if math.IsInf(b, -1) {
		return a
	}

	return a + math.Log1p(math.Exp(b-a))
}
