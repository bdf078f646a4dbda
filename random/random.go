// Package random constructs the explicit pseudo-random generators which are
// passed into shuffling and splitting operations. No global generator state is used.
package random

import (
	"math/rand/v2"
)

// New returns a generator initialized from seed. Generators created from the
// same seed produce identical sequences.
func New(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// NewUnseeded draws a fresh seed from the runtime's entropy source and returns
// a generator initialized from it, along with the seed so that the run can be reproduced.
func NewUnseeded() (*rand.Rand, int64) {
	seed := rand.Int64()
	return New(seed), seed
}

// FromOptionalSeed returns New(*seed) when seed is non-nil, or NewUnseeded() otherwise
func FromOptionalSeed(seed *int64) (*rand.Rand, int64) {
	if seed == nil {
		return NewUnseeded()
	}
	return New(*seed), *seed
}
