package util

import "math/rand/v2"

// NewRng returns a deterministic PCG-backed source for one planning run.
func NewRng(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
