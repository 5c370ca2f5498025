package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-viewport/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewport/engine/viewport"
)

// DriverBuilderOption is a functional option for configuring a Driver.
// Use the With* functions to create options that are applied directly to the driver instance.
type DriverBuilderOption func(*driver)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, the profiler ticks once per rendered frame
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithProfiling(enabled bool) DriverBuilderOption {
	return func(d *driver) {
		d.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: the profiler to tick
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) DriverBuilderOption {
	return func(d *driver) {
		d.profiler = p
	}
}

// WithNow replaces the time source used while the backend is still being built.
// Once the backend is ready, frame timing comes from the backend.
//
// Parameters:
//   - now: returns the current time
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithNow(now func() time.Time) DriverBuilderOption {
	return func(d *driver) {
		d.now = now
	}
}

// WithViewPortOptions passes options to the view port built after construction.
//
// Parameters:
//   - options: view port options
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithViewPortOptions(options ...viewport.ViewPortBuilderOption) DriverBuilderOption {
	return func(d *driver) {
		d.viewOptions = append(d.viewOptions, options...)
	}
}

// WithOverlay registers a debug UI for the view port's panel. build is called once, when the
// backend is ready, and its result is handed to Backend.SetOverlay.
//
// Parameters:
//   - build: returns the per-frame UI function for a panel
//
// Returns:
//   - DriverBuilderOption: option function to apply
func WithOverlay(build func(p *viewport.Panel) func()) DriverBuilderOption {
	return func(d *driver) {
		d.overlay = build
	}
}
