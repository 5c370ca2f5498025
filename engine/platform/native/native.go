// Package native runs the frame driver in a desktop window: GLFW for the window and its events,
// WebGPU for drawing.
package native

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-viewport/engine/config"
	"github.com/Carmen-Shannon/oxy-viewport/engine/platform"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewport/engine/scene"
	"github.com/Carmen-Shannon/oxy-viewport/engine/viewport"
	"github.com/Carmen-Shannon/oxy-viewport/engine/window"
)

// Backend is the desktop platform.Backend: a window and the WebGPU renderer presenting into it.
type Backend struct {
	cursor   viewport.CursorController
	renderer renderer.Renderer
	clock    *platform.FrameClock
	clear    [4]float64

	overlayWarned bool
}

var _ platform.Backend = &Backend{}

// NewBackend wraps an already created renderer.
//
// Parameters:
//   - cursor: the window's pointer control
//   - r: the renderer presenting into the window
//   - cfg: the runtime configuration
//   - options: frame clock options
//
// Returns:
//   - *Backend: the backend
func NewBackend(cursor viewport.CursorController, r renderer.Renderer, cfg config.Config, options ...platform.FrameClockOption) *Backend {
	return &Backend{
		cursor:   cursor,
		renderer: r,
		clock:    platform.NewFrameClock(cfg.TargetFPS, options...),
		clear:    platform.DefaultClearColor,
	}
}

// Constructor returns a platform.Constructor that requests the WebGPU adapter and device for win.
//
// Parameters:
//   - win: the open window
//   - cfg: the runtime configuration
//   - options: renderer options
//
// Returns:
//   - platform.Constructor: the constructor
func Constructor(win window.Window, cfg config.Config, options ...renderer.RendererBuilderOption) platform.Constructor {
	return func(ctx context.Context) (platform.Backend, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := renderer.NewRenderer(win, options...)
		if err != nil {
			return nil, fmt.Errorf("native: %w", err)
		}
		if err := ctx.Err(); err != nil {
			r.Release()
			return nil, err
		}
		return NewBackend(win, r, cfg), nil
	}
}

func (b *Backend) Device() scene.Device {
	return b.renderer
}

func (b *Backend) DepthTarget() viewport.DepthTarget {
	return b.renderer
}

func (b *Backend) Cursor() viewport.CursorController {
	return b.cursor
}

func (b *Backend) Size() (int, int) {
	return b.renderer.Size()
}

func (b *Backend) Resize(width, height int) {
	b.renderer.Resize(width, height)
}

func (b *Backend) ClearColor() [4]float64 {
	return b.clear
}

func (b *Backend) DeltaTime() float32 {
	return b.clock.DeltaTime()
}

func (b *Backend) Tick() {
	b.clock.Tick()
}

func (b *Backend) NextWake() time.Time {
	return b.clock.NextWake()
}

// SetOverlay is not supported on the desktop backend; the debug UI runs in the ebiten backend.
func (b *Backend) SetOverlay(build func()) {
	if build != nil && !b.overlayWarned {
		b.overlayWarned = true
		log.Printf("[Native] Overlay is not available on this backend, ignoring")
	}
}

func (b *Backend) WantsInput() bool {
	return false
}

func (b *Backend) RenderFrame(clear [4]float64, draw func(scene.Pass)) error {
	err := b.renderer.RenderFrame(clear, draw)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, renderer.ErrOutOfMemory):
		return fmt.Errorf("%w: %w", platform.ErrOutOfMemory, err)
	case errors.Is(err, renderer.ErrSurfaceUnavailable):
		return fmt.Errorf("%w: %w", platform.ErrSurfaceUnavailable, err)
	default:
		return err
	}
}

func (b *Backend) Release() {
	b.renderer.Release()
}
