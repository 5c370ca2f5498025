package object

import (
	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/chewxy/math32"
)

// Bob produces a sinusoidal offset from a precomputed sine table, advanced by a phase
// accumulator and linearly interpolated between adjacent samples.
type Bob struct {
	table     []float32
	phase     float32
	speed     float32
	amplitude float32
	base      float32
}

// BobOption is a functional option for configuring a Bob.
type BobOption func(*Bob)

// WithSamples sets the number of samples in the sine table. Values below 2 are raised to 2.
func WithSamples(n int) BobOption {
	return func(b *Bob) {
		b.table = sineTable(max(n, 2))
	}
}

// WithBobSpeed sets the number of full periods per second.
func WithBobSpeed(speed float32) BobOption {
	return func(b *Bob) {
		b.speed = speed
	}
}

// WithAmplitude sets the largest offset from the base value.
func WithAmplitude(amplitude float32) BobOption {
	return func(b *Bob) {
		b.amplitude = amplitude
	}
}

// WithBase sets the value the bob oscillates around.
func WithBase(base float32) BobOption {
	return func(b *Bob) {
		b.base = base
	}
}

// NewBob creates a Bob with 256 samples, 0.5 periods per second, amplitude 0.5 around 0.
//
// Parameters:
//   - options: functional options to configure the bob
//
// Returns:
//   - *Bob: the new bob
func NewBob(options ...BobOption) *Bob {
	b := &Bob{
		table:     sineTable(256),
		speed:     0.5,
		amplitude: 0.5,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func sineTable(n int) []float32 {
	t := make([]float32, n)
	for i := range t {
		t[i] = math32.Sin(float32(i) / float32(n-1) * 2 * math32.Pi)
	}
	return t
}

// Samples returns the table length.
func (b *Bob) Samples() int {
	return len(b.table)
}

// Phase returns the accumulator, always in [0, Samples()).
func (b *Bob) Phase() float32 {
	return b.phase
}

// Amplitude returns the largest offset from the base value.
func (b *Bob) Amplitude() float32 {
	return b.amplitude
}

// Base returns the value the bob oscillates around.
func (b *Bob) Base() float32 {
	return b.base
}

// Advance moves the phase by dt*speed*Samples() and returns base + amplitude*sample,
// where sample is interpolated between the two table entries around the phase.
//
// Parameters:
//   - dt: step length in seconds
//
// Returns:
//   - float32: the new value
func (b *Bob) Advance(dt float32) float32 {
	n := float32(len(b.table))
	b.phase = math32.Mod(b.phase+dt*b.speed*n, n)
	if b.phase < 0 {
		b.phase += n
	}
	// Adding n to a tiny negative remainder can round up to exactly n.
	if b.phase >= n {
		b.phase = 0
	}

	i0 := int(math32.Floor(b.phase)) % len(b.table)
	i1 := (i0 + 1) % len(b.table)
	frac := b.phase - math32.Floor(b.phase)
	return b.base + common.Lerp(b.table[i0], b.table[i1], frac)*b.amplitude
}
