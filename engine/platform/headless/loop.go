package headless

import (
	"time"

	"github.com/Carmen-Shannon/oxy-viewport/engine/platform"
)

// Loop is a deterministic event loop. Each Step is one wake-up: NewEvents, AboutToWait and, if
// requested, RedrawRequested. Time does not pass unless the caller advances the backend clock.
type Loop struct {
	handler  platform.Handler
	clock    *platform.ManualClock
	redraw   bool
	exited   bool
	started  bool
	deadline time.Time
	Steps    int
	Redraws  int

	// IgnoreExit makes the loop behave like one that cannot quit.
	IgnoreExit bool
}

var _ platform.Loop = &Loop{}

// NewLoop attaches h to a new Loop whose deadlines are measured on clock.
func NewLoop(h platform.Handler, clock *platform.ManualClock) *Loop {
	l := &Loop{handler: h, clock: clock}
	h.Attach(l)
	return l
}

func (l *Loop) RequestRedraw() {
	l.redraw = true
}

func (l *Loop) Exit() {
	l.exited = true
}

func (l *Loop) SupportsExit() bool {
	return !l.IgnoreExit
}

// Exited reports whether the loop was asked to stop.
func (l *Loop) Exited() bool {
	return l.exited
}

// Step runs one wake-up with the given cause. The first Step always reports CauseInit.
//
// Parameters:
//   - cause: why the loop woke
//
// Returns:
//   - bool: false once the loop has exited
func (l *Loop) Step(cause platform.StartCause) bool {
	if l.exited {
		return false
	}
	if !l.started {
		l.started = true
		cause = platform.CauseInit
	}
	l.Steps++
	l.handler.NewEvents(cause)
	l.deadline = l.handler.AboutToWait()
	if l.redraw && !l.exited {
		l.redraw = false
		l.Redraws++
		l.handler.RedrawRequested()
	}
	if l.handler.Exiting() {
		l.exited = true
	}
	return !l.exited
}

// Frame advances the clock to the last deadline and steps with CauseResumeTimeReached.
//
// Returns:
//   - bool: false once the loop has exited
func (l *Loop) Frame() bool {
	if l.started && l.deadline.After(l.clock.Now()) {
		l.clock.Set(l.deadline)
	}
	return l.Step(platform.CauseResumeTimeReached)
}

// Resize delivers a resize event and then a cancelled wait, as a real loop would.
func (l *Loop) Resize(width, height int) bool {
	l.handler.Resized(width, height)
	return l.Step(platform.CauseWaitCancelled)
}

// Close delivers a close request.
func (l *Loop) Close() {
	l.handler.CloseRequested()
	if l.handler.Exiting() {
		l.exited = true
	}
}
