package native

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine"
	"github.com/Carmen-Shannon/oxy-viewport/engine/config"
	"github.com/Carmen-Shannon/oxy-viewport/engine/platform"
	"github.com/Carmen-Shannon/oxy-viewport/engine/platform/headless"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-viewport/engine/scene"
	"github.com/Carmen-Shannon/oxy-viewport/engine/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer satisfies renderer.Renderer without a GPU. Uploads and materials come from the
// headless device.
type fakeRenderer struct {
	*headless.Device
	width, height int
	err           error
	frames        int
	released      bool
}

var _ renderer.Renderer = &fakeRenderer{}

func (r *fakeRenderer) Pipeline(string) pipeline.Pipeline   { return nil }
func (r *fakeRenderer) Size() (int, int)                    { return r.width, r.height }
func (r *fakeRenderer) Resize(width, height int)            { r.width, r.height = width, height }
func (r *fakeRenderer) RecreateDepthTexture(int, int) error { return nil }
func (r *fakeRenderer) Release()                            { r.released = true }

func (r *fakeRenderer) RenderFrame(_ [4]float64, draw func(scene.Pass)) error {
	if r.err != nil {
		return r.err
	}
	r.frames++
	draw(&headless.Frame{})
	return nil
}

// fakeWindow is an EventSource whose waits jump a manual clock to the deadline.
type fakeWindow struct {
	clock   *platform.ManualClock
	sink    window.InputSink
	resize  func(int, int)
	close   func()
	onWait  func(n int)
	waits   int
	closed  bool
	running bool
}

func (w *fakeWindow) SetInputSink(sink window.InputSink)           { w.sink = sink }
func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.resize = cb }
func (w *fakeWindow) SetCloseCallback(cb func())                   { w.close = cb }
func (w *fakeWindow) IsRunning() bool                              { return w.running }

func (w *fakeWindow) WaitEvents(deadline time.Time) bool {
	w.waits++
	if w.waits > 5000 {
		w.running = false
		return false
	}
	if w.onWait != nil {
		w.onWait(w.waits)
	}
	if deadline.After(w.clock.Now()) {
		w.clock.Set(deadline)
	}
	// Give the construction worker a chance to finish.
	time.Sleep(100 * time.Microsecond)
	return false
}

func (w *fakeWindow) Close() error {
	w.closed = true
	return nil
}

type rig struct {
	clock  *platform.ManualClock
	r      *fakeRenderer
	win    *fakeWindow
	driver engine.Driver
}

func newRig(t *testing.T) *rig {
	t.Helper()
	clock := platform.NewManualClock(time.Unix(100, 0))
	cfg := config.Default(config.WithSize(640, 480))
	r := &fakeRenderer{Device: &headless.Device{}, width: 640, height: 480}
	b := NewBackend(&headless.Cursor{}, r, cfg, platform.WithNow(clock.Now))
	d := engine.NewDriver(cfg, engine.WithNow(clock.Now))
	d.Start(context.Background(), func(context.Context) (platform.Backend, error) { return b, nil })
	return &rig{
		clock:  clock,
		r:      r,
		win:    &fakeWindow{clock: clock, running: true},
		driver: d,
	}
}

func TestRunDrawsUntilClose(t *testing.T) {
	rg := newRig(t)
	rg.win.onWait = func(int) {
		if rg.r.frames == 3 {
			rg.win.close()
		}
	}
	require.NoError(t, run(rg.win, rg.driver, rg.clock.Now))

	assert.Equal(t, 3, rg.r.frames)
	assert.True(t, rg.win.closed)
	assert.True(t, rg.r.released)
	assert.NoError(t, rg.driver.Err())
}

func TestRunStopsOnEscape(t *testing.T) {
	rg := newRig(t)
	rg.win.onWait = func(int) {
		if rg.r.frames == 1 {
			rg.win.sink.KeyDown(common.KeyEsc)
		}
	}
	require.NoError(t, run(rg.win, rg.driver, rg.clock.Now))
	assert.Equal(t, 1, rg.r.frames)
	assert.True(t, rg.driver.Exiting())
	assert.True(t, rg.win.closed)
}

func TestRunForwardsResize(t *testing.T) {
	rg := newRig(t)
	rg.win.onWait = func(int) {
		switch rg.r.frames {
		case 1:
			if w, _ := rg.r.Size(); w == 640 {
				rg.win.resize(1024, 768)
			}
		case 2:
			rg.win.close()
		}
	}
	require.NoError(t, run(rg.win, rg.driver, rg.clock.Now))
	w, h := rg.driver.View().Size()
	assert.Equal(t, [2]int{1024, 768}, [2]int{w, h})
}

func TestRenderFrameMapsRendererErrors(t *testing.T) {
	r := &fakeRenderer{Device: &headless.Device{}}
	b := NewBackend(&headless.Cursor{}, r, config.Default())
	draw := func(scene.Pass) {}

	r.err = fmt.Errorf("acquire: %w", renderer.ErrSurfaceUnavailable)
	assert.ErrorIs(t, b.RenderFrame(b.ClearColor(), draw), platform.ErrSurfaceUnavailable)

	r.err = fmt.Errorf("acquire: %w", renderer.ErrOutOfMemory)
	err := b.RenderFrame(b.ClearColor(), draw)
	assert.ErrorIs(t, err, platform.ErrOutOfMemory)
	assert.ErrorIs(t, err, renderer.ErrOutOfMemory)

	other := errors.New("validation")
	r.err = other
	assert.Same(t, other, b.RenderFrame(b.ClearColor(), draw))

	r.err = nil
	assert.NoError(t, b.RenderFrame(b.ClearColor(), draw))
	assert.Equal(t, 1, r.frames)
}

func TestConstructorHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Constructor(nil, config.Default())(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoopSupportsExit(t *testing.T) {
	l := &loop{}
	assert.True(t, l.SupportsExit())
	l.Exit()
	assert.True(t, l.exited)
}
