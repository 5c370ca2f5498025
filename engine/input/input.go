// Package input accumulates raw window events between frames and hands the frame loop an
// immutable snapshot per step.
package input

import (
	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kamstrup/intmap"
)

// State collects events as the platform loop delivers them. It is not safe for
// concurrent use; every call happens on the loop goroutine.
type State struct {
	held        *intmap.Set[common.Key]
	pressed     *intmap.Set[common.Key]
	heldBtn     *intmap.Set[common.MouseButton]
	pressedBtn  *intmap.Set[common.MouseButton]
	cursor      mgl32.Vec2
	mouseDelta  mgl32.Vec2
	scroll      mgl32.Vec2
	cursorKnown bool
}

// NewState creates an empty State.
func NewState() *State {
	return &State{
		held:       intmap.NewSet[common.Key](16),
		pressed:    intmap.NewSet[common.Key](8),
		heldBtn:    intmap.NewSet[common.MouseButton](4),
		pressedBtn: intmap.NewSet[common.MouseButton](4),
	}
}

// KeyDown records a key press. Repeats of a held key do not count as new presses.
func (s *State) KeyDown(k common.Key) {
	if !s.held.Has(k) {
		s.pressed.Add(k)
	}
	s.held.Add(k)
}

// KeyUp records a key release.
func (s *State) KeyUp(k common.Key) {
	s.held.Del(k)
}

// MouseDown records a mouse button press.
func (s *State) MouseDown(b common.MouseButton) {
	if !s.heldBtn.Has(b) {
		s.pressedBtn.Add(b)
	}
	s.heldBtn.Add(b)
}

// MouseUp records a mouse button release.
func (s *State) MouseUp(b common.MouseButton) {
	s.heldBtn.Del(b)
}

// CursorMoved records the cursor position in window pixels, top-left origin.
func (s *State) CursorMoved(x, y float32) {
	s.cursor = mgl32.Vec2{x, y}
	s.cursorKnown = true
}

// MouseMotion accumulates raw pointer motion. It keeps flowing while the cursor is locked.
func (s *State) MouseMotion(dx, dy float32) {
	s.mouseDelta = s.mouseDelta.Add(mgl32.Vec2{dx, dy})
}

// Scrolled accumulates wheel offsets.
func (s *State) Scrolled(dx, dy float32) {
	s.scroll = s.scroll.Add(mgl32.Vec2{dx, dy})
}

// ReleaseAll drops every held key and button, for example when the window loses focus.
func (s *State) ReleaseAll() {
	s.held.Clear()
	s.heldBtn.Clear()
}

// EndStep returns the events gathered since the previous call and clears the per-step
// fields: presses, motion and scroll. Held keys, held buttons and the cursor carry over.
//
// Returns:
//   - Snapshot: the step's input
func (s *State) EndStep() Snapshot {
	snap := Snapshot{
		held:       cloneSet(s.held),
		pressed:    cloneSet(s.pressed),
		heldBtn:    cloneSet(s.heldBtn),
		pressedBtn: cloneSet(s.pressedBtn),
		cursor:     s.cursor,
		mouseDelta: s.mouseDelta,
		scroll:     s.scroll,
		hasCursor:  s.cursorKnown,
	}
	s.pressed.Clear()
	s.pressedBtn.Clear()
	s.mouseDelta = mgl32.Vec2{}
	s.scroll = mgl32.Vec2{}
	return snap
}

func cloneSet[K intmap.IntKey](src *intmap.Set[K]) *intmap.Set[K] {
	dst := intmap.NewSet[K](src.Len())
	src.ForEach(func(k K) bool {
		dst.Add(k)
		return true
	})
	return dst
}
