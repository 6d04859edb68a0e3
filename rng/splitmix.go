package rng

// SplitMix32 implements a seeded 32-bit pseudo-random number generator.
// Produces deterministic sequences for reproducible noise fields: every
// draw depends only on the seed and the number of prior draws, and all
// arithmetic wraps at 32 bits so the stream is bit-identical everywhere.
type SplitMix32 struct {
	state       uint32
	initialSeed uint32
}

// New creates a new seeded random number generator.
func New(seed uint32) *SplitMix32 {
	return &SplitMix32{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *SplitMix32) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Reset resets the generator to its initial seed.
func (r *SplitMix32) Reset() {
	r.state = r.initialSeed
}

// Random generates the next random number using the SplitMix32 algorithm.
// Returns a float64 between 0 (inclusive) and 1 (exclusive).
func (r *SplitMix32) Random() float64 {
	r.state += 0x9e3779b9
	t := r.state ^ (r.state >> 16)
	t *= 0x21f0aaad
	t ^= t >> 15
	t *= 0x735a2d97
	t ^= t >> 15
	return float64(t) / 4294967296.0
}

// RandomInt generates a random integer in the specified range [min, max).
func (r *SplitMix32) RandomInt(min, max int) int {
	return int(r.Random()*float64(max-min)) + min
}

// RandomFloat generates a random float in the specified range [min, max).
func (r *SplitMix32) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}
