// Package random provides a small deterministic pseudo-random stream.
//
// The generator is mulberry32: a 32-bit state advanced by a fixed odd
// increment and mixed by two xorshift-multiply rounds. Two streams created
// from the same seed yield the same sequence forever, on every platform,
// which is what lets a dataset row keep its rotation across frames and
// across reloads.
//
//	s := random.New(42)
//	a := s.Float64() // always the same value for seed 42
//
// Stream is not safe for concurrent use.
package random

// increment is the mulberry32 state step. It is odd, so the state walks
// the full 2^32 cycle.
const increment = 0x6d2b79f5

// Stream is a mulberry32 generator.
type Stream struct {
	state uint32
	seed  uint32
}

// New returns a stream seeded with seed. Every uint32, including 0, is valid.
func New(seed uint32) *Stream {
	return &Stream{state: seed, seed: seed}
}

// Seed returns the seed the stream was created with.
func (s *Stream) Seed() uint32 { return s.seed }

// Reset rewinds the stream to its initial seed.
func (s *Stream) Reset() { s.state = s.seed }

// Uint32 advances the stream and returns the next raw 32-bit output.
func (s *Stream) Uint32() uint32 {
	s.state += increment
	t := s.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 advances the stream and returns a value in [0, 1).
func (s *Stream) Float64() float64 {
	return float64(s.Uint32()) / (1 << 32)
}

// First returns the first Float64 draw of a fresh stream seeded with seed.
// It is equivalent to New(seed).Float64() without the allocation.
func First(seed uint32) float64 {
	s := Stream{state: seed, seed: seed}
	return s.Float64()
}
