package planner

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var ErrInvalidCommittee = errors.New("invalid committee")

// SampleCommittee draws k distinct world indices out of n: the first k
// entries of a random permutation of [0,n).
func SampleCommittee(n, k int, rng *rand.Rand) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil rng", ErrInvalidCommittee)
	}
	if n <= 0 || k <= 0 || k > n {
		return nil, fmt.Errorf("%w: k=%d n=%d", ErrInvalidCommittee, k, n)
	}
	perm := rng.Perm(n)
	return perm[:k:k], nil
}
