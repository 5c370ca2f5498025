package viewport

import (
	"errors"
	"log"
)

// GrabMode is how the pointer is held by the window.
type GrabMode int

const (
	// GrabNone leaves the pointer free.
	GrabNone GrabMode = iota
	// GrabConfined keeps the pointer inside the window.
	GrabConfined
	// GrabLocked pins the pointer and reports raw motion only.
	GrabLocked
)

func (g GrabMode) String() string {
	switch g {
	case GrabConfined:
		return "confined"
	case GrabLocked:
		return "locked"
	default:
		return "none"
	}
}

// ErrGrabUnsupported is returned by a CursorController that cannot provide the requested grab mode.
var ErrGrabUnsupported = errors.New("viewport: cursor grab mode unsupported")

// CursorController is the window-side pointer control a ViewPort drives.
type CursorController interface {
	// SetGrab changes how the window holds the pointer.
	//
	// Parameters:
	//   - mode: the grab mode
	//
	// Returns:
	//   - error: ErrGrabUnsupported if the platform lacks the mode
	SetGrab(mode GrabMode) error

	// SetVisible shows or hides the pointer.
	SetVisible(visible bool)

	// SetPosition warps the pointer to window coordinates (top-left origin).
	SetPosition(x, y float32)
}

// cursorState is the last pointer configuration pushed to the controller.
type cursorState struct {
	applied  bool
	confined bool
}

// applyCursor pushes the pointer configuration implied by the capture and 2D flags.
// Nothing is sent when the configuration has not changed since the last call.
func (v *viewPort) applyCursor() {
	confine := v.captured && !v.enable2D
	if v.cursorState.applied && v.cursorState.confined == confine {
		return
	}
	v.cursorState = cursorState{applied: true, confined: confine}

	if !confine {
		if err := v.cursor.SetGrab(GrabNone); err != nil {
			log.Printf("[Engine] Releasing cursor grab: %v", err)
		}
		v.cursor.SetVisible(true)
		return
	}

	v.cursor.SetVisible(false)
	err := v.cursor.SetGrab(GrabConfined)
	if errors.Is(err, ErrGrabUnsupported) {
		err = v.cursor.SetGrab(GrabLocked)
	}
	if err != nil {
		log.Printf("[Engine] Grabbing cursor: %v", err)
	}
}
