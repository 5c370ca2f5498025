package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, c.Transform().Position())
	assert.Equal(t, DefaultFrustum(), *c.Frustum())
	assert.Equal(t, float32(0), c.Pitch())
	assert.Equal(t, float32(0), c.Yaw())
	assert.Equal(t, DefaultSensitivity, c.Sensitivity())
	assert.True(t, mgl32.Vec3{0, 0, -1}.ApproxEqualThreshold(c.Transform().Front(), 1e-5))
}

func TestTurnWrapsYawAndClampsPitch(t *testing.T) {
	inputs := []float32{0, 1, -1, 4499, -4499, 12345.6, -98765.4, 1e6, -1e6}
	c := NewCamera()
	for _, dx := range inputs {
		for _, dy := range inputs {
			c.Turn(dx, dy)
			assert.GreaterOrEqual(t, c.Yaw(), float32(0))
			assert.Less(t, c.Yaw(), float32(360))
			assert.GreaterOrEqual(t, c.Pitch(), -DefaultPitchLimit)
			assert.LessOrEqual(t, c.Pitch(), DefaultPitchLimit)
		}
	}
}

func TestTurnYawIsNeverClamped(t *testing.T) {
	c := NewCamera(WithSensitivity(1))
	for i := 0; i < 8; i++ {
		c.Turn(100, 0)
	}
	// 800 degrees wraps to 80.
	assert.InDelta(t, 80, c.Yaw(), 1e-3)

	c.Turn(-100, 0)
	c.Turn(-100, 0)
	assert.InDelta(t, 240, c.Yaw(), 1e-3)
}

func TestTurnUpdatesAxes(t *testing.T) {
	c := NewCamera(WithSensitivity(1))
	c.Turn(90, 0)
	assert.True(t, mgl32.Vec3{1, 0, 0}.ApproxEqualThreshold(c.Transform().Front(), 1e-5), "front %v", c.Transform().Front())

	c = NewCamera(WithSensitivity(1))
	c.Turn(0, 30)
	front := c.Transform().Front()
	assert.InDelta(t, math.Sin(30*math.Pi/180), front.Y(), 1e-5)
	assert.InDelta(t, -30, c.Pitch(), 1e-5)
}

func TestZoomClampsFov(t *testing.T) {
	for _, offset := range []float32{-1000, -44, -43.5, 0, 19.9, 20, 1000} {
		c := NewCamera()
		c.Zoom(offset)
		fov := c.Frustum().Fov
		assert.GreaterOrEqual(t, fov, MinFov)
		assert.LessOrEqual(t, fov, MaxFov)
	}
	c := NewCamera()
	c.Zoom(-1000)
	assert.Equal(t, MinFov, c.Frustum().Fov)
	c.Zoom(1000)
	assert.Equal(t, MaxFov, c.Frustum().Fov)
}

func TestPerspective16by9(t *testing.T) {
	c := NewCamera()
	aspect := float32(16.0 / 9.0)
	got := c.ProjectionMatrix(Perspective(aspect))

	h := float32(1 / math.Tan(float64(mgl32.DegToRad(45))/2))
	w := h / aspect
	r := float32(100) / (0.1 - 100)
	want := mgl32.Mat4{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, r, -1,
		0, 0, r * 0.1, 0,
	}
	assert.True(t, want.ApproxEqualThreshold(got, common.Epsilon), "want %v got %v", want, got)
}

func TestOrthographicScalesWithFov(t *testing.T) {
	c := NewCamera()
	m := c.ProjectionMatrix(Orthographic(2))
	// fov 45 -> zoom 2: x spans [-4, 4], y spans [-2, 2].
	assert.InDelta(t, 0.25, m.At(0, 0), 1e-6)
	assert.InDelta(t, 0.5, m.At(1, 1), 1e-6)

	b := c.ProjectionMatrix(OrthographicBounds(-2, 2, -1, 1))
	assert.True(t, m.ApproxEqualThreshold(b, 1e-6))

	c.Zoom(-22.5)
	m = c.ProjectionMatrix(Orthographic(1))
	assert.InDelta(t, 1, m.At(0, 0), 1e-6)
	assert.InDelta(t, 1, m.At(1, 1), 1e-6)
}

func TestViewAndWorldMatrices(t *testing.T) {
	c := NewCamera()
	v := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.True(t, mgl32.Vec3{0, 0, -5}.ApproxEqualThreshold(v, 1e-5))

	c = NewCamera(WithSensitivity(1))
	c.Turn(90, 0)
	// The view matrix maps the point in front of the camera onto -Z.
	ahead := c.Transform().Position().Add(c.Transform().Front().Mul(3))
	v = c.ViewMatrix().Mul4x1(ahead.Vec4(1)).Vec3()
	assert.True(t, mgl32.Vec3{0, 0, -3}.ApproxEqualThreshold(v, 1e-4), "got %v", v)

	w := c.WorldMatrix()
	want := c.Transform().PositionMatrix().Mul4(c.RotationMatrix())
	assert.Equal(t, want, w)
}

func TestReset(t *testing.T) {
	c := NewCamera()
	c.Turn(300, 200)
	c.Zoom(10)
	c.Transform().SetPosition(mgl32.Vec3{7, 8, 9})

	c.Reset()
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, c.Transform().Position())
	assert.Equal(t, float32(45), c.Frustum().Fov)
	assert.Equal(t, float32(0), c.Pitch())
	assert.Equal(t, float32(0), c.Yaw())
	assert.True(t, mgl32.Vec3{0, 0, -1}.ApproxEqualThreshold(c.Transform().Front(), 1e-5))
}

func TestBuilderOptions(t *testing.T) {
	c := NewCamera(
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithFrustum(Frustum{Near: 1, Far: 10, Fov: 90}),
		WithPitchLimit(10),
		WithOrientation(45, -90),
	)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Transform().Position())
	assert.Equal(t, MaxFov, c.Frustum().Fov)
	assert.Equal(t, float32(10), c.Pitch())
	assert.InDelta(t, 270, c.Yaw(), 1e-4)
}
