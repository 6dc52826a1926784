// Copyright (C) 2026. See AUTHORS.

// Package random implements a small seedable linear congruential
// generator for reproducible, non-cryptographic randomness.
package random

import "errors"

// ErrInvalidModulus is the value draw methods panic with when the
// generator was constructed with a zero modulus.
var ErrInvalidModulus = errors.New("random: modulus is zero")

// Default parameters: the Lehmer multiplier over the Mersenne prime
// 2^31 - 1.
const (
	defaultA = 16807
	defaultC = 0
	defaultM = 2147483647
)

// Random is a linear congruential generator. Every draw advances
//
//	seed = (a*seed + c) mod m
//
// and floats are derived by dividing the new state by the modulus
// captured at construction time. A Random has a single logical owner;
// it is unsafe to call draw methods from concurrent goroutines.
type Random struct {
	seed int64
	a    int64
	c    int64
	m    int64

	// startM is the modulus at construction time and stays the float
	// divisor for the generator's whole lifetime.
	startM int64
}

// New returns a generator with the default parameters and the given
// seed. Any seed is accepted; zero yields the all-zero sequence.
func New(seed int64) *Random {
	return &Random{
		seed:   seed,
		a:      defaultA,
		c:      defaultC,
		m:      defaultM,
		startM: defaultM,
	}
}

// NewCustom returns a generator with caller-supplied parameters, stored
// verbatim. No validation is performed; with m == 0 every draw panics
// with ErrInvalidModulus.
func NewCustom(seed, a, c, m int64) *Random {
	return &Random{
		seed:   seed,
		a:      a,
		c:      c,
		m:      m,
		startM: m,
	}
}

// step advances the state exactly once and returns the new state.
func (r *Random) step() int64 {
	if r.m == 0 {
		panic(ErrInvalidModulus)
	}
	r.seed = (r.a*r.seed + r.c) % r.m
	return r.seed
}

// NextFloat64 advances the state once and returns it scaled into
// [0, 1). The nominal range holds for the default parameters and any
// state in [0, m); exotic custom parameters can push results outside
// it, and no clamping is performed.
func (r *Random) NextFloat64() float64 {
	return float64(r.step()) / float64(r.startM)
}

// NextFloat32 is NextFloat64 narrowed to 32 bits. It advances the
// state exactly once.
func (r *Random) NextFloat32() float32 {
	return float32(r.NextFloat64())
}

// NextInt64 advances the state once and returns an integer in
// [min, max]. Callers must ensure min <= max; no validation is
// performed. The intermediate product is truncated toward zero, not
// floored.
func (r *Random) NextInt64(min, max int64) int64 {
	x := r.NextFloat64()
	return int64(x*float64(max-min+1) + float64(min))
}

// NextInt32 is the 32 bit variant of NextInt64. The mapping runs in
// float32, so results can differ from NextInt64 on identical state,
// and when the intermediate product rounds up to max-min+1 the result
// is max+1 even with the default parameters. Both behaviors match the
// reference sequence and are kept.
func (r *Random) NextInt32(min, max int32) int32 {
	x := r.NextFloat32()
	return int32(x*float32(max-min+1) + float32(min))
}

// Fill fills p with successive NextFloat64 draws, advancing the state
// once per element.
func (r *Random) Fill(p []float64) {
	for i := range p {
		p[i] = r.NextFloat64()
	}
}
