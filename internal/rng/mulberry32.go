// Package rng provides the seeded generator behind every daily puzzle.
// Outputs must match the browser implementation bit for bit, so the
// algorithm is fixed and all arithmetic wraps at 32 bits.
package rng

// Source yields floats in [0,1).
type Source interface {
	Float64() float64
}

// Mulberry32 is a constant-space generator seeded by a 32-bit integer.
// It is not safe for concurrent use.
type Mulberry32 struct {
	state uint32
}

// New returns a generator; the same seed always yields the same stream.
func New(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Uint32 advances the state and returns the next mixed 32-bit value.
func (m *Mulberry32) Uint32() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns the next value in [0,1).
func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / 4294967296.0
}

// IntN draws floor(src*n), an index in [0,n).
func IntN(src Source, n int) int {
	return int(src.Float64() * float64(n))
}
