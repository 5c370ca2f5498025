// Package window opens the native desktop window, forwards its input events and controls the pointer.
package window

import (
	"fmt"
	"time"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/viewport"
	"github.com/cogentcore/webgpu/wgpu"
)

// InputSink receives the window's input events. *input.State implements it.
type InputSink interface {
	KeyDown(k common.Key)
	KeyUp(k common.Key)
	MouseDown(b common.MouseButton)
	MouseUp(b common.MouseButton)
	CursorMoved(x, y float32)
	MouseMotion(dx, dy float32)
	Scrolled(dx, dy float32)
	ReleaseAll()
}

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	viewport.CursorController

	// SetInputSink sets where key, button, pointer and scroll events go.
	//
	// Parameters:
	//   - sink: the event receiver (or nil to drop events)
	SetInputSink(sink InputSink)

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetCloseCallback sets the function called when the user asks to close the window.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetCloseCallback(callback func())

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// WaitEvents dispatches pending events, blocking until one arrives or deadline passes.
	//
	// Parameters:
	//   - deadline: the latest time to return; a past deadline only polls
	//
	// Returns:
	//   - bool: true if any event was dispatched
	WaitEvents(deadline time.Time) bool

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	title string

	// width and height are the framebuffer size in pixels.
	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	sink     InputSink
	onResize func(width, height int)
	onClose  func()

	// eventFired is set by every callback and cleared by WaitEvents.
	eventFired bool

	// lastX and lastY are the previous pointer position, for motion deltas.
	lastX, lastY float64
	hasLast      bool
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a Window with the specified options.
// Applies default values first, then each option in order.
// Must be called on the main goroutine.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
//   - error: error if the platform window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:  "oxy viewport",
		width:  800,
		height: 600,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetInputSink(sink InputSink) {
	w.sink = sink
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetCloseCallback(callback func()) {
	w.onClose = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) WaitEvents(deadline time.Time) bool {
	w.eventFired = false
	platformWaitEvents(w, time.Until(deadline))
	return w.eventFired
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) SetGrab(mode viewport.GrabMode) error {
	return platformSetGrab(w, mode)
}

func (w *engineWindow) SetVisible(visible bool) {
	platformSetVisible(w, visible)
}

func (w *engineWindow) SetPosition(x, y float32) {
	w.lastX, w.lastY, w.hasLast = float64(x), float64(y), true
	platformSetCursorPos(w, float64(x), float64(y))
}

// The handle* methods are called from platform callbacks.

func (w *engineWindow) handleKey(k common.Key, pressed bool) {
	w.eventFired = true
	if w.sink == nil {
		return
	}
	if pressed {
		w.sink.KeyDown(k)
	} else {
		w.sink.KeyUp(k)
	}
}

func (w *engineWindow) handleMouseButton(b common.MouseButton, pressed bool) {
	w.eventFired = true
	if w.sink == nil {
		return
	}
	if pressed {
		w.sink.MouseDown(b)
	} else {
		w.sink.MouseUp(b)
	}
}

// handleCursorPos reports the new position and, after the first event, the motion since the last one.
func (w *engineWindow) handleCursorPos(x, y float64) {
	w.eventFired = true
	dx, dy := x-w.lastX, y-w.lastY
	moved := w.hasLast
	w.lastX, w.lastY, w.hasLast = x, y, true
	if w.sink == nil {
		return
	}
	w.sink.CursorMoved(float32(x), float32(y))
	if moved && (dx != 0 || dy != 0) {
		w.sink.MouseMotion(float32(dx), float32(dy))
	}
}

func (w *engineWindow) handleScroll(dx, dy float64) {
	w.eventFired = true
	if w.sink != nil {
		w.sink.Scrolled(float32(dx), float32(dy))
	}
}

func (w *engineWindow) handleFocus(focused bool) {
	w.eventFired = true
	if !focused && w.sink != nil {
		w.sink.ReleaseAll()
	}
}

func (w *engineWindow) handleResize(width, height int) {
	w.eventFired = true
	w.width = width
	w.height = height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

func (w *engineWindow) handleClose() {
	w.eventFired = true
	if w.onClose != nil {
		w.onClose()
	}
}
