// Package headless is an offscreen backend. Nothing reaches a GPU: uploads are counted, frames are
// recorded and time only moves when the caller advances the clock. The frame driver runs on it in
// tests and CI.
package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/config"
	"github.com/Carmen-Shannon/oxy-viewport/engine/mesh"
	"github.com/Carmen-Shannon/oxy-viewport/engine/platform"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-viewport/engine/scene"
	"github.com/Carmen-Shannon/oxy-viewport/engine/viewport"
)

// Backend is the headless platform.Backend.
type Backend struct {
	clock   *platform.ManualClock
	frames  *platform.FrameClock
	device  *Device
	depth   *DepthTarget
	cursor  *Cursor
	width   int
	height  int
	clear   [4]float64
	overlay func()

	wantsInput bool
	failures   []error
	resizes    [][2]int
	rendered   []*Frame
	released   bool
}

var _ platform.Backend = &Backend{}

// BackendOption is a functional option for configuring a Backend.
type BackendOption func(b *Backend)

// WithClearColor overrides the clear color.
func WithClearColor(c [4]float64) BackendOption {
	return func(b *Backend) {
		b.clear = c
	}
}

// WithStart sets the manual clock's start time.
func WithStart(t time.Time) BackendOption {
	return func(b *Backend) {
		b.clock.Set(t)
	}
}

// New creates a headless backend sized from cfg.
//
// Parameters:
//   - cfg: the runtime configuration
//   - options: functional options
//
// Returns:
//   - *Backend: the backend
func New(cfg config.Config, options ...BackendOption) *Backend {
	b := &Backend{
		clock:  platform.NewManualClock(time.Unix(0, 0)),
		device: &Device{},
		depth:  &DepthTarget{},
		cursor: &Cursor{Visible: true},
		width:  cfg.Width,
		height: cfg.Height,
		clear:  platform.DefaultClearColor,
	}
	for _, opt := range options {
		opt(b)
	}
	b.frames = platform.NewFrameClock(cfg.TargetFPS, platform.WithNow(b.clock.Now))
	return b
}

// Constructor returns a platform.Constructor that yields b.
func Constructor(b *Backend) platform.Constructor {
	return func(ctx context.Context) (platform.Backend, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return b, nil
	}
}

// FailingConstructor returns a platform.Constructor that fails with err.
func FailingConstructor(err error) platform.Constructor {
	return func(context.Context) (platform.Backend, error) {
		return nil, fmt.Errorf("headless: construct: %w", err)
	}
}

// Clock returns the manual time source.
func (b *Backend) Clock() *platform.ManualClock {
	return b.clock
}

// FailNext queues errors returned by the next RenderFrame calls, one per call.
func (b *Backend) FailNext(errs ...error) {
	b.failures = append(b.failures, errs...)
}

// SetWantsInput sets what WantsInput reports.
func (b *Backend) SetWantsInput(v bool) {
	b.wantsInput = v
}

// Frames returns every recorded frame, oldest first.
func (b *Backend) Frames() []*Frame {
	return b.rendered
}

// Resizes returns every size passed to Resize.
func (b *Backend) Resizes() [][2]int {
	return b.resizes
}

// Released reports whether Release was called.
func (b *Backend) Released() bool {
	return b.released
}

func (b *Backend) Device() scene.Device {
	return b.device
}

// Uploads returns the labels of every uploaded mesh.
func (b *Backend) Uploads() []string {
	return b.device.uploads
}

func (b *Backend) DepthTarget() viewport.DepthTarget {
	return b.depth
}

func (b *Backend) Cursor() viewport.CursorController {
	return b.cursor
}

// CursorState returns the fake pointer.
func (b *Backend) CursorState() *Cursor {
	return b.cursor
}

func (b *Backend) Size() (int, int) {
	return b.width, b.height
}

func (b *Backend) Resize(width, height int) {
	b.resizes = append(b.resizes, [2]int{width, height})
	if width > 0 && height > 0 {
		b.width = width
		b.height = height
	}
}

func (b *Backend) ClearColor() [4]float64 {
	return b.clear
}

func (b *Backend) DeltaTime() float32 {
	return b.frames.DeltaTime()
}

func (b *Backend) Tick() {
	b.frames.Tick()
}

func (b *Backend) NextWake() time.Time {
	return b.frames.NextWake()
}

func (b *Backend) SetOverlay(build func()) {
	b.overlay = build
}

func (b *Backend) WantsInput() bool {
	return b.wantsInput
}

func (b *Backend) RenderFrame(clear [4]float64, draw func(scene.Pass)) error {
	if len(b.failures) > 0 {
		err := b.failures[0]
		b.failures = b.failures[1:]
		return err
	}
	f := &Frame{Clear: clear}
	draw(f)
	if b.overlay != nil {
		b.overlay()
		f.Overlay = true
	}
	b.rendered = append(b.rendered, f)
	return nil
}

func (b *Backend) Release() {
	b.released = true
}

// Device counts mesh uploads and hands out CPU-only materials.
type Device struct {
	uploads []string
}

var _ scene.Device = &Device{}

// Buffers is the GPU state of an uploaded headless mesh.
type Buffers struct {
	Label       string
	VertexBytes int
	IndexBytes  int
	Indices     int
}

func (b *Buffers) IndexCount() int {
	return b.Indices
}

func (d *Device) UploadMesh(label string, vertexData, indexData []byte, indexCount int) (mesh.Buffers, error) {
	d.uploads = append(d.uploads, label)
	return &Buffers{Label: label, VertexBytes: len(vertexData), IndexBytes: len(indexData), Indices: indexCount}, nil
}

func (d *Device) CreateMaterial(kind pipeline.Kind, texture *common.TextureStagingData) (material.Material, error) {
	return material.NewMaterial(
		material.WithName(kind.Key()),
		material.WithPipeline(kind),
		material.WithTexture(texture),
	), nil
}

// DepthTarget records every depth texture size.
type DepthTarget struct {
	Sizes [][2]int
}

func (d *DepthTarget) RecreateDepthTexture(width, height int) error {
	d.Sizes = append(d.Sizes, [2]int{width, height})
	return nil
}

// Cursor is a pointer that only remembers what it was told. It has no confined mode, like the
// native window.
type Cursor struct {
	Grab     viewport.GrabMode
	Visible  bool
	Position [2]float32
}

func (c *Cursor) SetGrab(mode viewport.GrabMode) error {
	if mode == viewport.GrabConfined {
		return viewport.ErrGrabUnsupported
	}
	c.Grab = mode
	return nil
}

func (c *Cursor) SetVisible(visible bool) {
	c.Visible = visible
}

func (c *Cursor) SetPosition(x, y float32) {
	c.Position = [2]float32{x, y}
}
