package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfilerReportsPerInterval(t *testing.T) {
	now := time.Unix(100, 0)
	p := NewProfiler(WithNow(func() time.Time { return now }), WithMemStats(false))

	for range 3 {
		now = now.Add(250 * time.Millisecond)
		assert.False(t, p.Tick())
	}
	p.Skip()
	now = now.Add(250 * time.Millisecond)
	assert.True(t, p.Tick())

	last := p.Last()
	assert.Equal(t, 4, last.Rendered)
	assert.Equal(t, 1, last.Skipped)
	assert.InDelta(t, 4.0, last.FPS, 1e-9)

	now = now.Add(100 * time.Millisecond)
	assert.False(t, p.Tick())
	rendered, skipped := p.Totals()
	assert.Equal(t, 5, rendered)
	assert.Equal(t, 1, skipped)
}
