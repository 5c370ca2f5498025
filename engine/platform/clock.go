package platform

import (
	"time"

	"github.com/Carmen-Shannon/oxy-viewport/engine/config"
)

// FrameClock paces frames to a target rate. Every backend embeds one.
type FrameClock struct {
	now      func() time.Time
	interval time.Duration
	last     time.Time
}

// FrameClockOption is a functional option for configuring a FrameClock.
type FrameClockOption func(c *FrameClock)

// WithNow replaces the time source.
//
// Parameters:
//   - now: returns the current time
//
// Returns:
//   - FrameClockOption: option function to apply
func WithNow(now func() time.Time) FrameClockOption {
	return func(c *FrameClock) {
		c.now = now
	}
}

// NewFrameClock creates a FrameClock whose first frame starts now.
//
// Parameters:
//   - targetFPS: frames per second, the config default is used when not positive
//   - options: functional options
//
// Returns:
//   - *FrameClock: the clock
func NewFrameClock(targetFPS int, options ...FrameClockOption) *FrameClock {
	c := &FrameClock{
		now:      time.Now,
		interval: config.Config{TargetFPS: targetFPS}.FrameInterval(),
	}
	for _, opt := range options {
		opt(c)
	}
	c.last = c.now()
	return c
}

// DeltaTime returns the seconds elapsed since the last Tick.
func (c *FrameClock) DeltaTime() float32 {
	return float32(c.now().Sub(c.last).Seconds())
}

// Tick marks the start of a new frame.
func (c *FrameClock) Tick() {
	c.last = c.now()
}

// NextWake returns when the next frame is due.
func (c *FrameClock) NextWake() time.Time {
	return c.last.Add(c.interval)
}

// Interval returns the target frame duration.
func (c *FrameClock) Interval() time.Duration {
	return c.interval
}

// ManualClock is a time source that only moves when told to.
type ManualClock struct {
	t time.Time
}

// NewManualClock creates a ManualClock at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the clock's current time.
func (m *ManualClock) Now() time.Time {
	return m.t
}

// Advance moves the clock forward by d.
func (m *ManualClock) Advance(d time.Duration) {
	m.t = m.t.Add(d)
}

// Set moves the clock to t.
func (m *ManualClock) Set(t time.Time) {
	m.t = t
}
