// Package profiler logs frame pacing and memory statistics for the frame driver.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is one reporting window of the profiler.
type Stats struct {
	Rendered int
	Skipped  int
	FPS      float64
	HeapMB   float64
	GCCount  uint32
}

// Profiler counts rendered and skipped frames and reports once per interval.
type Profiler struct {
	now            func() time.Time
	interval       time.Duration
	windowStart    time.Time
	rendered       int
	skipped        int
	totalRendered  int
	totalSkipped   int
	readMem        bool
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(p *Profiler)

// WithInterval sets how often statistics are logged.
//
// Parameters:
//   - d: the reporting interval
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.interval = d
	}
}

// WithNow replaces the time source.
func WithNow(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// WithMemStats enables heap and GC figures in the report. Reading them stops the world briefly.
func WithMemStats(enabled bool) ProfilerOption {
	return func(p *Profiler) {
		p.readMem = enabled
	}
}

// NewProfiler creates a Profiler reporting every second with memory statistics.
//
// Parameters:
//   - options: functional options
//
// Returns:
//   - *Profiler: the newly created profiler
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		now:      time.Now,
		interval: time.Second,
		readMem:  true,
	}
	for _, opt := range options {
		opt(p)
	}
	p.windowStart = p.now()
	return p
}

// Tick records one rendered frame and logs when the interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick
func (p *Profiler) Tick() bool {
	p.rendered++
	p.totalRendered++
	return p.report()
}

// Skip records one frame that was dropped (for example on a lost surface).
func (p *Profiler) Skip() {
	p.skipped++
	p.totalSkipped++
}

// Totals returns the frame counts since creation.
func (p *Profiler) Totals() (rendered, skipped int) {
	return p.totalRendered, p.totalSkipped
}

// Last returns the most recently logged window.
func (p *Profiler) Last() Stats {
	return p.last
}

func (p *Profiler) report() bool {
	now := p.now()
	elapsed := now.Sub(p.windowStart)
	if elapsed < p.interval {
		return false
	}

	s := Stats{
		Rendered: p.rendered,
		Skipped:  p.skipped,
		FPS:      float64(p.rendered) / elapsed.Seconds(),
	}
	if p.readMem {
		runtime.ReadMemStats(&p.memStats)
		s.HeapMB = float64(p.memStats.Alloc) / 1024 / 1024
		s.GCCount = p.memStats.NumGC
		allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()
		log.Printf("[Profiler] FPS: %.2f | Skipped: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (+%d)",
			s.FPS, s.Skipped, s.HeapMB, allocRateMB, s.GCCount, s.GCCount-p.lastGCCount)
		p.lastGCCount = p.memStats.NumGC
		p.lastTotalAlloc = p.memStats.TotalAlloc
	} else {
		log.Printf("[Profiler] FPS: %.2f | Skipped: %d", s.FPS, s.Skipped)
	}

	p.last = s
	p.rendered = 0
	p.skipped = 0
	p.windowStart = now
	return true
}
