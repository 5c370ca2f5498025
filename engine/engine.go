// Package engine drives frames: it constructs a backend off the loop goroutine, then turns the
// platform loop's lifecycle hooks into input, update and draw calls on a ViewPort.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-viewport/engine/config"
	"github.com/Carmen-Shannon/oxy-viewport/engine/input"
	"github.com/Carmen-Shannon/oxy-viewport/engine/platform"
	"github.com/Carmen-Shannon/oxy-viewport/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewport/engine/viewport"
)

// constructionPoll is how soon the loop wakes again while the backend is still being built.
const constructionPoll = 5 * time.Millisecond

// constructResult carries the outcome of backend construction across the goroutine boundary.
type constructResult struct {
	backend platform.Backend
	err     error
}

// Driver is the frame driver. It implements platform.Handler, so any platform loop can run it,
// and viewport.Exiter, so the view port can stop it.
type Driver interface {
	platform.Handler
	viewport.Exiter

	// Start builds the backend on the worker pool. The result is picked up by the next AboutToWait.
	//
	// Parameters:
	//   - ctx: cancels construction
	//   - construct: the backend constructor
	Start(ctx context.Context, construct platform.Constructor)

	// Backend returns the constructed backend, or nil before construction finished.
	Backend() platform.Backend

	// View returns the view port, or nil before construction finished.
	View() viewport.ViewPort

	// Err returns the error that stopped the driver, if any.
	Err() error

	// Done is closed when the driver stops.
	Done() <-chan struct{}
}

// driver implements the Driver interface.
type driver struct {
	cfg  config.Config
	now  func() time.Time
	pool worker.DynamicWorkerPool

	pending chan constructResult
	started bool

	loop    platform.Loop
	input   *input.State
	backend platform.Backend
	view    viewport.ViewPort

	waitCancelled bool
	redrawPending bool

	exiting  bool
	quit     chan struct{}
	quitOnce sync.Once
	err      error

	profiler         *profiler.Profiler
	profilingEnabled bool

	viewOptions []viewport.ViewPortBuilderOption
	overlay     func(p *viewport.Panel) func()
}

var _ Driver = &driver{}

// NewDriver creates a Driver for cfg. Nothing runs until Start and the first loop hook.
//
// Parameters:
//   - cfg: the runtime configuration
//   - options: functional options
//
// Returns:
//   - Driver: the new driver
func NewDriver(cfg config.Config, options ...DriverBuilderOption) Driver {
	d := &driver{
		cfg:     cfg,
		now:     time.Now,
		pending: make(chan constructResult, 1),
		input:   input.NewState(),
		quit:    make(chan struct{}),
	}
	for _, opt := range options {
		opt(d)
	}
	if d.profiler == nil {
		d.profiler = profiler.NewProfiler(profiler.WithNow(d.now))
	}
	d.pool = worker.NewDynamicWorkerPool(1, 1, time.Second)
	return d
}

func (d *driver) Start(ctx context.Context, construct platform.Constructor) {
	if d.started {
		log.Printf("[Engine] Start called twice, ignoring")
		return
	}
	d.started = true
	d.pool.SubmitTask(worker.Task{
		ID: 1,
		Do: func() (any, error) {
			b, err := construct(ctx)
			d.pending <- constructResult{backend: b, err: err}
			return b, err
		},
	})
}

func (d *driver) Attach(loop platform.Loop) {
	d.loop = loop
}

func (d *driver) Input() *input.State {
	return d.input
}

func (d *driver) Backend() platform.Backend {
	return d.backend
}

func (d *driver) View() viewport.ViewPort {
	return d.view
}

func (d *driver) Err() error {
	return d.err
}

func (d *driver) Done() <-chan struct{} {
	return d.quit
}

func (d *driver) Exiting() bool {
	return d.exiting
}

func (d *driver) NewEvents(cause platform.StartCause) {
	d.waitCancelled = cause == platform.CauseWaitCancelled
}

func (d *driver) AboutToWait() time.Time {
	if d.exiting {
		return d.now()
	}
	d.pollConstruction()
	if d.view == nil || d.exiting {
		return d.now().Add(constructionPoll)
	}

	dt := d.backend.DeltaTime()
	snap := d.input.EndStep()
	if d.backend.WantsInput() {
		snap = snap.WithoutPointer()
	}
	d.view.HandleInput(dt, snap, d)
	if d.exiting {
		return d.now()
	}

	if d.redrawPending && !d.waitCancelled {
		d.loop.RequestRedraw()
		d.redrawPending = false
		d.view.Update(dt)
	}
	if !d.waitCancelled {
		d.backend.Tick()
		d.redrawPending = true
	}
	return d.backend.NextWake()
}

func (d *driver) RedrawRequested() {
	if d.exiting || d.view == nil {
		return
	}
	err := d.backend.RenderFrame(d.backend.ClearColor(), d.view.Render)
	switch {
	case err == nil:
		if d.profilingEnabled {
			d.profiler.Tick()
		}
	case errors.Is(err, platform.ErrSurfaceUnavailable):
		log.Printf("[Engine] Surface unavailable, reconfiguring: %v", err)
		d.backend.Resize(d.backend.Size())
		d.profiler.Skip()
	case errors.Is(err, platform.ErrOutOfMemory):
		d.fail(fmt.Errorf("engine: render frame: %w", err))
	default:
		log.Printf("[Engine] Frame dropped: %v", err)
		d.profiler.Skip()
	}
}

func (d *driver) Resized(width, height int) {
	if d.view == nil || d.exiting {
		return
	}
	d.backend.Resize(width, height)
	if err := d.view.Resize(width, height); err != nil {
		log.Printf("[Engine] Resize to %dx%d: %v", width, height, err)
	}
}

func (d *driver) CloseRequested() {
	d.stop()
}

// Exit stops the driver on request from the view port. Loops that cannot quit ignore it.
func (d *driver) Exit() {
	if d.loop != nil && !d.loop.SupportsExit() {
		return
	}
	d.stop()
}

// pollConstruction adopts the constructed backend if it has arrived. It never blocks.
func (d *driver) pollConstruction() {
	if d.backend != nil {
		return
	}
	var res constructResult
	select {
	case res = <-d.pending:
	default:
		return
	}
	if res.err != nil {
		d.fail(fmt.Errorf("engine: construct backend: %w", res.err))
		return
	}

	w, h := res.backend.Size()
	view, err := viewport.New(res.backend.Device(), res.backend.DepthTarget(), w, h, res.backend.Cursor(), d.viewOptions...)
	if err != nil {
		res.backend.Release()
		d.fail(fmt.Errorf("engine: build view port: %w", err))
		return
	}
	d.backend = res.backend
	d.view = view
	if d.overlay != nil {
		d.backend.SetOverlay(d.overlay(view.Panel()))
	}
	log.Printf("[Engine] Backend ready at %dx%d, target %d FPS", w, h, d.cfg.TargetFPS)
}

// fail records err as the reason the driver stopped and stops it.
func (d *driver) fail(err error) {
	log.Printf("[Engine] Fatal: %v", err)
	d.err = err
	d.stop()
}

// stop ends the frame loop and releases the backend.
// Uses sync.Once so it only runs once however many paths ask for it.
func (d *driver) stop() {
	d.quitOnce.Do(func() {
		d.exiting = true
		close(d.quit)
		if d.loop != nil {
			d.loop.Exit()
		}
		d.pool.Stop()
		if d.backend != nil {
			d.backend.Release()
		}
	})
}
