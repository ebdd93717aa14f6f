// Package xorshift provides the small non-cryptographic generator used to
// scatter mines across the board.
package xorshift

import "time"

// zeroSeed replaces a zero seed, which xorshift would never leave.
const zeroSeed uint64 = 0x9E3779B97F4A7C15

// Rand is a 64-bit xorshift generator. It is not safe for concurrent use
// and must not be used where unpredictability matters.
type Rand struct {
	state uint64
}

// New creates a generator with an explicit seed.
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = zeroSeed
	}
	return &Rand{state: seed}
}

// NewFromClock seeds a generator from the wall clock in milliseconds.
// Two generators created within the same millisecond yield the same stream.
func NewFromClock() *Rand {
	return New(uint64(time.Now().UnixMilli()))
}

// Next advances the generator and returns the state it held before the step.
func (r *Rand) Next() uint64 {
	before := r.state
	x := before ^ (before << 13)
	x ^= x >> 17
	r.state = x ^ (x << 5)
	return before
}
