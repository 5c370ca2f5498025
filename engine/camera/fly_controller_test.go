package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type heldKeys map[common.Key]bool

func (h heldKeys) KeyHeld(key common.Key) bool { return h[key] }

func TestFlyControllerMovesAlongLocalAxes(t *testing.T) {
	tests := []struct {
		name string
		keys heldKeys
		want mgl32.Vec3
	}{
		{"forward", heldKeys{common.KeyW: true}, mgl32.Vec3{0, 0, 4}},
		{"backward", heldKeys{common.KeyS: true}, mgl32.Vec3{0, 0, 6}},
		{"left", heldKeys{common.KeyA: true}, mgl32.Vec3{-1, 0, 5}},
		{"right", heldKeys{common.KeyD: true}, mgl32.Vec3{1, 0, 5}},
		{"up", heldKeys{common.KeySpace: true}, mgl32.Vec3{0, 1, 5}},
		{"down", heldKeys{common.KeyLeftShift: true}, mgl32.Vec3{0, -1, 5}},
		{"diagonal", heldKeys{common.KeyW: true, common.KeyD: true}, mgl32.Vec3{1, 0, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera()
			f := NewFlyController(WithSpeed(2))
			assert.True(t, f.Apply(c, tt.keys, 0.5))
			assert.True(t, tt.want.ApproxEqualThreshold(c.Transform().Position(), 1e-5), "got %v", c.Transform().Position())
		})
	}
}

func TestFlyControllerIdle(t *testing.T) {
	c := NewCamera()
	f := NewFlyController()
	assert.Equal(t, float32(2.5), f.Speed())
	f.SetSpeed(10)
	assert.False(t, f.Apply(c, heldKeys{common.KeyQ: true}, 1))
	assert.Equal(t, DefaultPosition, c.Transform().Position())
}
