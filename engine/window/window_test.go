package window

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/input"
	"github.com/Carmen-Shannon/oxy-viewport/engine/viewport"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests drive the callback handlers directly; no GLFW window is created.

func TestKeyAndButtonEventsReachSink(t *testing.T) {
	s := input.NewState()
	w := &engineWindow{}
	w.SetInputSink(s)

	w.handleKey(common.KeyW, true)
	w.handleMouseButton(common.MouseButtonLeft, true)
	assert.True(t, w.eventFired)

	snap := s.EndStep()
	assert.True(t, snap.KeyPressed(common.KeyW))
	assert.True(t, snap.MousePressed(common.MouseButtonLeft))

	w.handleKey(common.KeyW, false)
	w.handleMouseButton(common.MouseButtonLeft, false)
	snap = s.EndStep()
	assert.False(t, snap.KeyHeld(common.KeyW))
	assert.False(t, snap.MouseHeld(common.MouseButtonLeft))
}

func TestCursorMotionIsDifferenceOfPositions(t *testing.T) {
	s := input.NewState()
	w := &engineWindow{}
	w.SetInputSink(s)

	w.handleCursorPos(100, 100)
	snap := s.EndStep()
	assert.Equal(t, mgl32.Vec2{}, snap.MouseDelta(), "first position has no motion")
	pos, ok := snap.Cursor()
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec2{100, 100}, pos)

	w.handleCursorPos(110, 95)
	w.handleCursorPos(115, 95)
	snap = s.EndStep()
	assert.Equal(t, mgl32.Vec2{15, -5}, snap.MouseDelta())
}

func TestFocusLossReleasesKeys(t *testing.T) {
	s := input.NewState()
	w := &engineWindow{}
	w.SetInputSink(s)
	w.handleKey(common.KeyA, true)
	s.EndStep()

	w.handleFocus(false)
	assert.False(t, s.EndStep().KeyHeld(common.KeyA))
}

func TestResizeAndCloseCallbacks(t *testing.T) {
	w := &engineWindow{width: 800, height: 600}
	var got [2]int
	closed := false
	w.SetResizeCallback(func(width, height int) { got = [2]int{width, height} })
	w.SetCloseCallback(func() { closed = true })

	w.handleResize(1024, 768)
	w.handleClose()
	assert.Equal(t, [2]int{1024, 768}, got)
	assert.Equal(t, 1024, w.Width())
	assert.Equal(t, 768, w.Height())
	assert.True(t, closed)
}

func TestWaitEventsWithoutWindowReportsNothing(t *testing.T) {
	w := &engineWindow{}
	w.eventFired = true
	assert.False(t, w.WaitEvents(time.Now().Add(time.Millisecond)))
}

func TestUninitializedWindow(t *testing.T) {
	w := &engineWindow{}
	assert.False(t, w.IsRunning())
	assert.Error(t, w.Close())
	assert.Nil(t, w.SurfaceDescriptor())
	assert.Error(t, w.SetGrab(viewport.GrabLocked))

	// Handlers work without a sink.
	w.handleKey(common.KeyW, true)
	w.handleScroll(0, 1)
	w.handleCursorPos(1, 1)
}
