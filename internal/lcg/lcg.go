// Package lcg implements the 64-bit linear congruential generator embedded
// in the jump consistent hash algorithm.
//
// The recurrence is state = state*Multiplier + Increment with modulo-2^64
// wraparound. The constants come from the "Numerical Recipes" family of
// 64-bit generators and are part of the algorithm's wire-level contract:
// every jump hash implementation, in any language, must use exactly these
// constants and exactly this wraparound behavior to produce matching bucket
// assignments. Do not swap in a faster or statistically stronger generator.
package lcg

const (
	// Multiplier is the LCG multiplier from the jump hash paper
	// (Lamping & Veach 2014, http://arxiv.org/abs/1406.2294).
	Multiplier uint64 = 2862933555777941757

	// Increment is the LCG additive constant.
	Increment uint64 = 1
)

// Next advances state by one step of the recurrence and returns the new
// state, which is also the next pseudo-random sample. Overflow wraps
// modulo 2^64; that wrapping is intentional and required. Total over all
// inputs, no failure modes.
func Next(state uint64) uint64 {
	return state*Multiplier + Increment
}

// Stream is a deterministic pseudo-random stream seeded from a 64-bit
// value. The zero value is a valid stream seeded with 0. A Stream is a
// plain value with no shared state; each copy advances independently.
type Stream struct {
	state uint64
}

// NewStream returns a stream seeded with the given value. Identical seeds
// always produce identical sequences, across runs and platforms.
func NewStream(seed uint64) Stream {
	return Stream{state: seed}
}

// Next advances the stream and returns the next 64-bit sample.
func (s *Stream) Next() uint64 {
	s.state = Next(s.state)
	return s.state
}

// State returns the current state without advancing the stream.
func (s *Stream) State() uint64 {
	return s.state
}
