// Copyright (C) 2026. See AUTHORS.

package random

import "math/rand"

// Source adapts a Random to math/rand.Source so it can drive rand.New
// for distributions and operations the core does not provide. It
// shares the generator's state: draws through either advance the same
// sequence.
type Source struct {
	r *Random
}

// Make sure Source is a rand.Source
var _ rand.Source = (*Source)(nil)

// NewSource returns a Source drawing from r.
func NewSource(r *Random) *Source {
	return &Source{r: r}
}

// Int63 assembles a nonnegative 63 bit integer from two state
// advances, since a single state word carries at most 31 bits under
// the default modulus.
func (s *Source) Int63() int64 {
	hi := uint64(s.r.step())
	lo := uint64(s.r.step())
	return int64(hi<<32|lo&0xffffffff) & (1<<63 - 1)
}

// Seed resets the wrapped generator's state, keeping its parameters.
func (s *Source) Seed(seed int64) {
	s.r.seed = seed
}
