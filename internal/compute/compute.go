package compute

import "math/rand/v2"

// Result is the outcome of one demo computation. It lives for a single
// invocation: created at program start, printed, then discarded.
type Result struct {
	Input  float64 `json:"input"`
	Sample float64 `json:"sample"`
	Total  float64 `json:"total"`
}

// Add adds a uniform sample in [0,1) drawn from rng to the supplied
// number. The generator is constructed by the caller; this package keeps
// no state of its own.
func Add(n float64, rng *rand.Rand) Result {
	s := rng.Float64()
	return Result{Input: n, Sample: s, Total: n + s}
}
