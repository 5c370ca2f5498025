// Package platform defines what the frame driver needs from a windowing and graphics backend,
// and the hooks a platform event loop calls on the driver.
package platform

import (
	"context"
	"time"

	"github.com/Carmen-Shannon/oxy-viewport/engine/input"
	"github.com/Carmen-Shannon/oxy-viewport/engine/scene"
	"github.com/Carmen-Shannon/oxy-viewport/engine/viewport"
)

// DefaultClearColor is the clear color of every backend unless overridden.
var DefaultClearColor = [4]float64{0, 0, 0, 1}

// Constructor builds a Backend. It may block on device or adapter requests and is run off the
// loop goroutine.
type Constructor func(ctx context.Context) (Backend, error)

// Backend is one environment's graphics device, surface and frame pacing.
type Backend interface {
	// Device creates materials and uploads meshes.
	Device() scene.Device

	// DepthTarget returns the owner of the depth attachment.
	DepthTarget() viewport.DepthTarget

	// Cursor returns the window pointer control.
	Cursor() viewport.CursorController

	// Size returns the surface size in pixels.
	Size() (int, int)

	// Resize reconfigures the surface. Zero sizes are ignored.
	Resize(width, height int)

	// ClearColor returns the color each frame is cleared to.
	ClearColor() [4]float64

	// DeltaTime returns the seconds since the last Tick.
	DeltaTime() float32

	// Tick marks the start of a frame.
	Tick()

	// NextWake returns when the next frame is due: the last tick plus one target frame interval.
	NextWake() time.Time

	// SetOverlay registers a debug UI builder run inside every RenderFrame. Backends without an
	// overlay ignore it.
	SetOverlay(build func())

	// WantsInput reports whether the overlay is consuming pointer input.
	WantsInput() bool

	// RenderFrame acquires the next surface image, clears it, records draw and presents.
	//
	// Parameters:
	//   - clear: the clear color
	//   - draw: records the scene into the frame's pass
	//
	// Returns:
	//   - error: ErrSurfaceUnavailable (transient), ErrOutOfMemory (fatal), or another error
	RenderFrame(clear [4]float64, draw func(scene.Pass)) error

	// Release frees the device and surface.
	Release()
}

// StartCause is why the loop woke up.
type StartCause int

const (
	// CauseInit is the first wake-up of the loop.
	CauseInit StartCause = iota
	// CauseResumeTimeReached is a wake-up at the requested deadline.
	CauseResumeTimeReached
	// CauseWaitCancelled is a wake-up by an event before the deadline.
	CauseWaitCancelled
	// CausePoll is a wake-up of a loop that does not wait.
	CausePoll
)

func (c StartCause) String() string {
	switch c {
	case CauseInit:
		return "init"
	case CauseResumeTimeReached:
		return "resume_time_reached"
	case CauseWaitCancelled:
		return "wait_cancelled"
	case CausePoll:
		return "poll"
	default:
		return "unknown"
	}
}

// Loop is the event loop as seen by the driver.
type Loop interface {
	// RequestRedraw asks the loop to call RedrawRequested once before it next waits.
	RequestRedraw()

	// Exit asks the loop to stop.
	Exit()

	// SupportsExit reports whether Exit can stop the loop. A browser page cannot quit itself.
	SupportsExit() bool
}

// Handler receives the lifecycle hooks of a platform event loop. Every call happens on the
// loop goroutine.
type Handler interface {
	// Attach is called once, before any other hook, with the loop that drives the handler.
	Attach(loop Loop)

	// Input returns the accumulator the loop feeds window events into.
	Input() *input.State

	// NewEvents is called when the loop wakes up.
	NewEvents(cause StartCause)

	// AboutToWait is called when the loop has drained its events. It returns when the loop
	// should wake up next.
	AboutToWait() time.Time

	// RedrawRequested is called once per RequestRedraw.
	RedrawRequested()

	// Resized is called when the surface changes size.
	Resized(width, height int)

	// CloseRequested is called when the user closes the window.
	CloseRequested()

	// Exiting reports whether the handler has stopped.
	Exiting() bool
}
