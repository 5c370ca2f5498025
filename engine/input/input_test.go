package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestEndStepResetsPerStepFields(t *testing.T) {
	s := NewState()
	s.KeyDown(common.KeyW)
	s.KeyDown(common.KeyF1)
	s.KeyUp(common.KeyF1)
	s.MouseDown(common.MouseButtonLeft)
	s.MouseMotion(3, -2)
	s.MouseMotion(1, 1)
	s.Scrolled(0, 1)
	s.Scrolled(0, 2)
	s.CursorMoved(10, 20)

	snap := s.EndStep()
	assert.True(t, snap.KeyPressed(common.KeyW))
	assert.True(t, snap.KeyHeld(common.KeyW))
	assert.True(t, snap.KeyPressed(common.KeyF1))
	assert.False(t, snap.KeyHeld(common.KeyF1))
	assert.True(t, snap.MousePressed(common.MouseButtonLeft))
	assert.True(t, snap.MouseHeld(common.MouseButtonLeft))
	assert.Equal(t, mgl32.Vec2{4, -1}, snap.MouseDelta())
	assert.Equal(t, mgl32.Vec2{0, 3}, snap.Scroll())
	c, ok := snap.Cursor()
	assert.True(t, ok)
	assert.Equal(t, mgl32.Vec2{10, 20}, c)

	next := s.EndStep()
	assert.False(t, next.KeyPressed(common.KeyW))
	assert.True(t, next.KeyHeld(common.KeyW))
	assert.False(t, next.MousePressed(common.MouseButtonLeft))
	assert.True(t, next.MouseHeld(common.MouseButtonLeft))
	assert.Equal(t, mgl32.Vec2{}, next.MouseDelta())
	assert.Equal(t, mgl32.Vec2{}, next.Scroll())

	// The earlier snapshot is unaffected by later events.
	s.KeyUp(common.KeyW)
	assert.True(t, snap.KeyHeld(common.KeyW))
}

func TestKeyRepeatIsNotAPress(t *testing.T) {
	s := NewState()
	s.KeyDown(common.KeySpace)
	s.EndStep()
	s.KeyDown(common.KeySpace)
	snap := s.EndStep()
	assert.False(t, snap.KeyPressed(common.KeySpace))
	assert.True(t, snap.KeyHeld(common.KeySpace))
}

func TestReleaseAll(t *testing.T) {
	s := NewState()
	s.KeyDown(common.KeyA)
	s.MouseDown(common.MouseButtonRight)
	s.ReleaseAll()
	snap := s.EndStep()
	assert.False(t, snap.KeyHeld(common.KeyA))
	assert.False(t, snap.MouseHeld(common.MouseButtonRight))
}

func TestZeroSnapshot(t *testing.T) {
	var snap Snapshot
	assert.False(t, snap.KeyHeld(common.KeyW))
	assert.False(t, snap.MousePressed(common.MouseButtonLeft))
	_, ok := snap.Cursor()
	assert.False(t, ok)
}

func TestWithoutPointer(t *testing.T) {
	s := NewState()
	s.KeyDown(common.KeyF1)
	s.MouseDown(common.MouseButtonLeft)
	s.CursorMoved(10, 20)
	s.MouseMotion(3, 4)
	s.Scrolled(0, 1)
	snap := s.EndStep().WithoutPointer()

	assert.True(t, snap.KeyPressed(common.KeyF1))
	assert.False(t, snap.MouseHeld(common.MouseButtonLeft))
	assert.Equal(t, mgl32.Vec2{}, snap.MouseDelta())
	assert.Equal(t, mgl32.Vec2{}, snap.Scroll())
	pos, ok := snap.Cursor()
	assert.True(t, ok)
	assert.Equal(t, mgl32.Vec2{10, 20}, pos)
}
