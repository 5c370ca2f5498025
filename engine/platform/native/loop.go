package native

import (
	"time"

	"github.com/Carmen-Shannon/oxy-viewport/engine/platform"
	"github.com/Carmen-Shannon/oxy-viewport/engine/window"
)

// EventSource is the part of a window the loop drives. window.Window implements it.
type EventSource interface {
	SetInputSink(sink window.InputSink)
	SetResizeCallback(callback func(width, height int))
	SetCloseCallback(callback func())
	WaitEvents(deadline time.Time) bool
	IsRunning() bool
	Close() error
}

// loop is the platform.Loop of a desktop window.
type loop struct {
	redraw bool
	exited bool
}

var _ platform.Loop = &loop{}

func (l *loop) RequestRedraw() {
	l.redraw = true
}

func (l *loop) Exit() {
	l.exited = true
}

func (l *loop) SupportsExit() bool {
	return true
}

// Run drives h from win's events until the handler stops or the window goes away, then closes
// the window. It must run on the goroutine that created the window.
//
// Parameters:
//   - win: the window
//   - h: the handler, usually the frame driver
//
// Returns:
//   - error: the error from closing the window
func Run(win EventSource, h platform.Handler) error {
	return run(win, h, time.Now)
}

func run(win EventSource, h platform.Handler, now func() time.Time) error {
	l := &loop{}
	h.Attach(l)
	win.SetInputSink(h.Input())
	win.SetResizeCallback(h.Resized)
	win.SetCloseCallback(h.CloseRequested)

	cause := platform.CauseInit
	for !l.exited && win.IsRunning() {
		h.NewEvents(cause)
		deadline := h.AboutToWait()
		if l.redraw && !l.exited {
			l.redraw = false
			h.RedrawRequested()
		}
		if l.exited || h.Exiting() {
			break
		}

		fired := win.WaitEvents(deadline)
		if fired && now().Before(deadline) {
			cause = platform.CauseWaitCancelled
		} else {
			cause = platform.CauseResumeTimeReached
		}
	}
	return win.Close()
}
