package camera

import (
	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/transform"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultSensitivity is the degrees turned per unit of mouse motion.
	DefaultSensitivity float32 = 0.08
	// DefaultPitchLimit bounds pitch to [-limit, limit] degrees.
	DefaultPitchLimit float32 = 89
	// orthoZoomBase is the fov at which an orthographic view spans exactly its base bounds.
	orthoZoomBase float32 = 22.5
)

var (
	// DefaultPosition is where a camera starts and where Reset puts it.
	DefaultPosition = mgl32.Vec3{0, 0, 5}

	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
)

type cameraImpl struct {
	transform *transform.Transform
	frustum   Frustum

	// pitch and yaw are in degrees. yaw stays in [0, 360), pitch in [-pitchLimit, pitchLimit].
	pitch       float32
	yaw         float32
	sensitivity float32
	pitchLimit  float32
}

// Camera defines the interface for a pitch/yaw camera.
// The camera owns a Transform whose rotation always mirrors the current pitch and yaw,
// so its local axes can drive fly-style movement.
type Camera interface {
	// Transform returns the camera's transform. The camera is its only owner.
	//
	// Returns:
	//   - *transform.Transform: the transform
	Transform() *transform.Transform

	// Frustum returns a pointer to the camera's frustum.
	//
	// Returns:
	//   - *Frustum: the frustum
	Frustum() *Frustum

	// Pitch returns the pitch in degrees.
	Pitch() float32

	// Yaw returns the yaw in degrees, always in [0, 360).
	Yaw() float32

	// Sensitivity returns the degrees turned per unit of mouse motion.
	Sensitivity() float32

	// Turn rotates the camera by mouse motion. Yaw wraps around and pitch is clamped.
	//
	// Parameters:
	//   - dx: horizontal motion, positive turns right
	//   - dy: vertical motion, positive looks up
	Turn(dx, dy float32)

	// Zoom changes the field of view by offset degrees, clamped to [MinFov, MaxFov].
	//
	// Parameters:
	//   - offset: degrees to add
	Zoom(offset float32)

	// RotationMatrix returns the view rotation built from pitch and yaw.
	//
	// Returns:
	//   - mgl32.Mat4: rotation(pitch, yaw)
	RotationMatrix() mgl32.Mat4

	// ViewMatrix returns rotation(pitch, yaw) x translate(-position).
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// WorldMatrix returns translate(-position) x rotation(pitch, yaw).
	//
	// Returns:
	//   - mgl32.Mat4: the world matrix
	WorldMatrix() mgl32.Mat4

	// ProjectionMatrix builds the projection for the given mode from the current frustum.
	//
	// Parameters:
	//   - p: the projection mode
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix(p Projection) mgl32.Mat4

	// Reset restores the default position, field of view, pitch and yaw.
	Reset()
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera at DefaultPosition looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		transform:   transform.New(),
		frustum:     DefaultFrustum(),
		sensitivity: DefaultSensitivity,
		pitchLimit:  DefaultPitchLimit,
	}
	c.transform.SetPosition(DefaultPosition)
	for _, option := range options {
		option(c)
	}
	c.syncRotation()
	return c
}

func (c *cameraImpl) Transform() *transform.Transform {
	return c.transform
}

func (c *cameraImpl) Frustum() *Frustum {
	return &c.frustum
}

func (c *cameraImpl) Pitch() float32 {
	return c.pitch
}

func (c *cameraImpl) Yaw() float32 {
	return c.yaw
}

func (c *cameraImpl) Sensitivity() float32 {
	return c.sensitivity
}

func (c *cameraImpl) Turn(dx, dy float32) {
	c.yaw = common.WrapDegrees(c.yaw + dx*c.sensitivity)
	c.pitch = math32.Max(-c.pitchLimit, math32.Min(c.pitchLimit, c.pitch-dy*c.sensitivity))
	c.syncRotation()
}

func (c *cameraImpl) Zoom(offset float32) {
	c.frustum.Zoom(offset)
}

func (c *cameraImpl) RotationMatrix() mgl32.Mat4 {
	return c.viewRotation().Mat4()
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.RotationMatrix().Mul4(c.transform.PositionMatrix())
}

func (c *cameraImpl) WorldMatrix() mgl32.Mat4 {
	return c.transform.PositionMatrix().Mul4(c.RotationMatrix())
}

func (c *cameraImpl) ProjectionMatrix(p Projection) mgl32.Mat4 {
	f := c.frustum
	switch p.Kind {
	case KindOrthographic:
		z := f.Fov / orthoZoomBase
		return common.Orthographic(-p.Aspect*z, p.Aspect*z, -z, z, f.Near, f.Far)
	case KindOrthographicBounds:
		z := f.Fov / orthoZoomBase
		return common.Orthographic(p.Left*z, p.Right*z, p.Bottom*z, p.Top*z, f.Near, f.Far)
	default:
		return common.Perspective(mgl32.DegToRad(f.Fov), p.Aspect, f.Near, f.Far)
	}
}

func (c *cameraImpl) Reset() {
	c.transform.SetPosition(DefaultPosition)
	c.frustum.Fov = DefaultFrustum().Fov
	c.pitch = 0
	c.yaw = 0
	c.syncRotation()
}

// viewRotation rotates world space into camera space.
func (c *cameraImpl) viewRotation() mgl32.Quat {
	qPitch := mgl32.QuatRotate(mgl32.DegToRad(c.pitch), axisX)
	qYaw := mgl32.QuatRotate(mgl32.DegToRad(c.yaw), axisY)
	return qPitch.Mul(qYaw)
}

// syncRotation stores the camera orientation (the inverse of the view rotation) on the
// transform, which marks its local axes for re-derivation.
func (c *cameraImpl) syncRotation() {
	c.transform.SetRotation(c.viewRotation().Inverse())
}
