// Package rng provides a seedable linear congruential generator.
// Map seeds are part of the user-facing contract, so the recurrence is
// fixed: the same seed must yield the same map on every build and platform.
package rng

const (
	multiplier = 1103515245
	increment  = 12345
	modulus    = 1 << 31
)

// Source is a deterministic pseudo-random source. The zero value is a
// valid source seeded with 0.
type Source struct {
	state int64
}

// New creates a source with the given seed. Negative seeds are folded
// into the modulus range so the recurrence stays well-defined.
func New(seed int64) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed resets the source state to the given seed.
func (s *Source) Seed(seed int64) {
	seed %= modulus
	if seed < 0 {
		seed += modulus
	}
	s.state = seed
}

// Next advances the generator and returns the next raw value in [0, 2^31).
func (s *Source) Next() int64 {
	s.state = (s.state*multiplier + increment) % modulus
	return s.state
}

// Intn returns a value in [0, bound). Panics if bound is not positive.
func (s *Source) Intn(bound int) int {
	if bound <= 0 {
		panic("rng: Intn bound must be positive")
	}
	return int(s.Next() % int64(bound))
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Next()) / float64(modulus)
}
