package vmath

import "math"

// --- Scalars ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp performs linear interpolation between a and b
// t is not clamped, t=0 returns a, t=1 returns b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Oscillate returns sin(2π·tick/period), zero for non-positive period
func Oscillate(tick uint64, period int) float64 {
	if period <= 0 {
		return 0
	}
	phase := float64(tick%uint64(period)) / float64(period)
	return math.Sin(2 * math.Pi * phase)
}

// --- Randomness ---

// FastRand is a xorshift64 generator, not safe for concurrent use
// Seeded instances produce reproducible sequences for tests and -seed runs
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator, zero seed is remapped since xorshift has a zero fixed point
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	return &FastRand{state: seed}
}

// Next returns the next raw 64-bit value
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), zero for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Chance returns true with probability p
func (r *FastRand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.Float64() < p
}
