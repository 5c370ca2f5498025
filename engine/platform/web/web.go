// Package web runs the frame driver on Ebitengine. Built with GOOS=js GOARCH=wasm it embeds the view
// port in a browser page; on the desktop it opens an Ebitengine window with a Dear ImGui debug panel.
// Frames are rasterized on the CPU by package raster and drawn as flat-shaded triangles.
package web

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/Carmen-Shannon/oxy-viewport/engine/config"
	"github.com/Carmen-Shannon/oxy-viewport/engine/platform"
	"github.com/Carmen-Shannon/oxy-viewport/engine/platform/web/raster"
	"github.com/Carmen-Shannon/oxy-viewport/engine/scene"
	"github.com/Carmen-Shannon/oxy-viewport/engine/viewport"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxTrianglesPerBatch keeps every DrawTriangles call within uint16 indices.
const maxTrianglesPerBatch = 16383

// Backend is the Ebitengine platform.Backend.
type Backend struct {
	title  string
	device *raster.Device
	cursor *Cursor
	clock  *platform.FrameClock
	width  int
	height int
	clear  [4]float64
	tps    int

	overlay overlay
	build   func()

	// screen is only set while the game is inside Draw.
	screen   *ebiten.Image
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ platform.Backend = &Backend{}

// New creates the backend. The window is opened by Run.
//
// Parameters:
//   - cfg: the runtime configuration
//   - title: the window title
//   - options: frame clock options
//
// Returns:
//   - *Backend: the backend
func New(cfg config.Config, title string, options ...platform.FrameClockOption) *Backend {
	return &Backend{
		title:  title,
		device: &raster.Device{},
		cursor: &Cursor{visible: true},
		clock:  platform.NewFrameClock(cfg.TargetFPS, options...),
		width:  cfg.Width,
		height: cfg.Height,
		clear:  platform.DefaultClearColor,
		tps:    cfg.TargetFPS,
	}
}

// Constructor returns a platform.Constructor that yields b. Nothing needs to be requested from
// a GPU, so construction finishes immediately.
func Constructor(b *Backend) platform.Constructor {
	return func(ctx context.Context) (platform.Backend, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return b, nil
	}
}

func (b *Backend) Device() scene.Device {
	return b.device
}

func (b *Backend) DepthTarget() viewport.DepthTarget {
	return noDepth{}
}

func (b *Backend) Cursor() viewport.CursorController {
	return b.cursor
}

func (b *Backend) Size() (int, int) {
	return b.width, b.height
}

func (b *Backend) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	b.width, b.height = width, height
	if b.overlay != nil {
		b.overlay.Layout(width, height)
	}
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

// SetOverlay creates the Dear ImGui context on first use. Browser builds have no overlay.
func (b *Backend) SetOverlay(build func()) {
	b.build = build
	if build != nil && b.overlay == nil {
		b.overlay = newOverlay(b.title, b.width, b.height)
	}
}

func (b *Backend) WantsInput() bool {
	return b.overlay != nil && b.overlay.WantsInput()
}

func (b *Backend) RenderFrame(clear [4]float64, draw func(scene.Pass)) error {
	if b.screen == nil {
		return fmt.Errorf("%w: no screen outside Draw", platform.ErrSurfaceUnavailable)
	}
	b.screen.Fill(toRGBA(clear))

	pass := raster.NewPass(b.width, b.height)
	draw(pass)
	b.drawTriangles(pass.Triangles())

	if b.overlay != nil && b.build != nil {
		b.overlay.Render(b.screen, b.build)
	}
	return nil
}

func (b *Backend) Release() {
	if b.white != nil {
		b.white.Deallocate()
		b.white = nil
	}
}

// drawTriangles submits tris in order, batching so indices fit in uint16.
func (b *Backend) drawTriangles(tris []raster.Triangle) {
	if len(tris) == 0 {
		return
	}
	if b.white == nil {
		// Sampling the center of a 3x3 image avoids bleeding at the edges.
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		b.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	for start := 0; start < len(tris); start += maxTrianglesPerBatch {
		end := min(start+maxTrianglesPerBatch, len(tris))
		b.vertices = b.vertices[:0]
		b.indices = b.indices[:0]
		for _, t := range tris[start:end] {
			for _, v := range t.V {
				b.indices = append(b.indices, uint16(len(b.vertices)))
				b.vertices = append(b.vertices, ebiten.Vertex{
					DstX:   v.X,
					DstY:   v.Y,
					SrcX:   1,
					SrcY:   1,
					ColorR: v.Color[0],
					ColorG: v.Color[1],
					ColorB: v.Color[2],
					ColorA: v.Color[3],
				})
			}
		}
		b.screen.DrawTriangles(b.vertices, b.indices, b.white, &ebiten.DrawTrianglesOptions{})
	}
}

func toRGBA(c [4]float64) color.RGBA {
	ch := func(v float64) uint8 {
		return uint8(max(0, min(1, v))*255 + 0.5)
	}
	return color.RGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: ch(c[3])}
}

// noDepth is the depth target of a painter's-order renderer: there is nothing to recreate.
type noDepth struct{}

func (noDepth) RecreateDepthTexture(int, int) error {
	return nil
}

// Cursor drives the Ebitengine cursor mode. Captured mode is pointer lock in the browser.
type Cursor struct {
	grab    viewport.GrabMode
	visible bool
	// regrabbed is set on every grab change so the next cursor delta starts fresh.
	regrabbed bool
}

var _ viewport.CursorController = &Cursor{}

func (c *Cursor) SetGrab(mode viewport.GrabMode) error {
	switch mode {
	case viewport.GrabNone:
		ebiten.SetCursorMode(c.freeMode())
	case viewport.GrabLocked:
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	default:
		return fmt.Errorf("%w: %s", viewport.ErrGrabUnsupported, mode)
	}
	c.grab = mode
	c.regrabbed = true
	return nil
}

func (c *Cursor) SetVisible(visible bool) {
	c.visible = visible
	if c.grab == viewport.GrabNone {
		ebiten.SetCursorMode(c.freeMode())
	}
}

// SetPosition is a no-op: Ebitengine cannot warp the pointer. Captured mode reports motion
// without it.
func (c *Cursor) SetPosition(float32, float32) {}

func (c *Cursor) freeMode() ebiten.CursorModeType {
	if c.visible {
		return ebiten.CursorModeVisible
	}
	return ebiten.CursorModeHidden
}

// Run opens the window and drives h until the game terminates. It must be called from the main
// goroutine.
//
// Parameters:
//   - b: the backend passed to h's constructor
//   - h: the handler, usually the frame driver
//
// Returns:
//   - error: the error that stopped the game, nil on a requested exit
func Run(b *Backend, h platform.Handler) error {
	ebiten.SetWindowTitle(b.title)
	ebiten.SetWindowSize(b.width, b.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// The close button only reports; the handler decides when the game ends.
	ebiten.SetWindowClosingHandled(true)
	// Frames are only drawn on redraw requests, so the last one must stay on screen.
	ebiten.SetScreenClearedEveryFrame(false)
	if b.tps > 0 {
		ebiten.SetTPS(b.tps)
	}

	g := newGame(b, h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("web: %w", err)
	}
	return nil
}
