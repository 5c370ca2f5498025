package input

import (
	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kamstrup/intmap"
)

// Snapshot is the immutable input of one frame step.
type Snapshot struct {
	held       *intmap.Set[common.Key]
	pressed    *intmap.Set[common.Key]
	heldBtn    *intmap.Set[common.MouseButton]
	pressedBtn *intmap.Set[common.MouseButton]
	cursor     mgl32.Vec2
	mouseDelta mgl32.Vec2
	scroll     mgl32.Vec2
	hasCursor  bool
}

// KeyPressed reports whether k went down during the step.
func (s Snapshot) KeyPressed(k common.Key) bool {
	return s.pressed != nil && s.pressed.Has(k)
}

// KeyHeld reports whether k is down at the end of the step.
func (s Snapshot) KeyHeld(k common.Key) bool {
	return s.held != nil && s.held.Has(k)
}

// MousePressed reports whether b went down during the step.
func (s Snapshot) MousePressed(b common.MouseButton) bool {
	return s.pressedBtn != nil && s.pressedBtn.Has(b)
}

// MouseHeld reports whether b is down at the end of the step.
func (s Snapshot) MouseHeld(b common.MouseButton) bool {
	return s.heldBtn != nil && s.heldBtn.Has(b)
}

// Cursor returns the last cursor position and whether one has been reported yet.
func (s Snapshot) Cursor() (mgl32.Vec2, bool) {
	return s.cursor, s.hasCursor
}

// MouseDelta returns the raw pointer motion accumulated during the step.
func (s Snapshot) MouseDelta() mgl32.Vec2 {
	return s.mouseDelta
}

// Scroll returns the wheel offset accumulated during the step.
func (s Snapshot) Scroll() mgl32.Vec2 {
	return s.scroll
}

// WithoutPointer returns a copy with mouse buttons, motion and scroll removed. Keys and the cursor
// position are kept. Loops use it while an overlay owns the pointer.
func (s Snapshot) WithoutPointer() Snapshot {
	s.heldBtn = nil
	s.pressedBtn = nil
	s.mouseDelta = mgl32.Vec2{}
	s.scroll = mgl32.Vec2{}
	return s
}
