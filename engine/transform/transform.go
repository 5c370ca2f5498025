// Package transform provides the position/rotation/scale value owned by every scene object.
package transform

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrZeroScale is returned when a scale with a zero component is rejected.
var ErrZeroScale = errors.New("transform: scale component must be non-zero")

var (
	// WorldUp is the global up axis.
	WorldUp = mgl32.Vec3{0, 1, 0}

	baseFront = mgl32.Vec3{0, 0, -1}
	baseRight = mgl32.Vec3{1, 0, 0}
	baseUp    = mgl32.Vec3{0, 1, 0}
)

// Transform holds position, rotation and scale plus local axes cached from the rotation.
// A Transform is owned by exactly one object; pass pointers, never copies, when mutating.
type Transform struct {
	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3

	front, right, up mgl32.Vec3
	// axesDirty is set by every rotation mutation and cleared when the axes are re-derived.
	axesDirty bool
}

// New creates a Transform at the origin with identity rotation and unit scale.
// The local axes start as front -Z, right +X, up +Y.
//
// Returns:
//   - *Transform: the new transform
func New() *Transform {
	return &Transform{
		rotation: mgl32.QuatIdent(),
		scale:    mgl32.Vec3{1, 1, 1},
		front:    baseFront,
		right:    baseRight,
		up:       baseUp,
	}
}

// Position returns the world-space position.
func (t *Transform) Position() mgl32.Vec3 {
	return t.position
}

// SetPosition sets the world-space position.
func (t *Transform) SetPosition(p mgl32.Vec3) {
	t.position = p
}

// Translate offsets the position by d.
func (t *Transform) Translate(d mgl32.Vec3) {
	t.position = t.position.Add(d)
}

// Rotation returns the orientation quaternion.
func (t *Transform) Rotation() mgl32.Quat {
	return t.rotation
}

// SetRotation replaces the orientation. The quaternion is normalized before it is stored.
//
// Parameters:
//   - q: the new orientation
func (t *Transform) SetRotation(q mgl32.Quat) {
	t.rotation = q.Normalize()
	t.axesDirty = true
}

// Rotate applies q on top of the current orientation (q * rotation).
//
// Parameters:
//   - q: the rotation to apply
func (t *Transform) Rotate(q mgl32.Quat) {
	t.SetRotation(q.Mul(t.rotation))
}

// Scale returns the per-axis scale.
func (t *Transform) Scale() mgl32.Vec3 {
	return t.scale
}

// SetScale sets the per-axis scale. A zero component would make the model matrix singular,
// so such a scale is rejected and the current one kept.
//
// Parameters:
//   - s: the new scale
//
// Returns:
//   - error: ErrZeroScale if any component is zero
func (t *Transform) SetScale(s mgl32.Vec3) error {
	if s.X() == 0 || s.Y() == 0 || s.Z() == 0 {
		return ErrZeroScale
	}
	t.scale = s
	return nil
}

// Front returns the local forward axis.
func (t *Transform) Front() mgl32.Vec3 {
	t.deriveAxes()
	return t.front
}

// Right returns the local right axis.
func (t *Transform) Right() mgl32.Vec3 {
	t.deriveAxes()
	return t.right
}

// Up returns the local up axis.
func (t *Transform) Up() mgl32.Vec3 {
	t.deriveAxes()
	return t.up
}

func (t *Transform) deriveAxes() {
	if !t.axesDirty {
		return
	}
	t.front = t.rotation.Rotate(baseFront).Normalize()
	t.right = t.rotation.Rotate(baseRight).Normalize()
	t.up = t.rotation.Rotate(baseUp).Normalize()
	t.axesDirty = false
}

// ModelMatrix returns translation * rotation * scale.
//
// Returns:
//   - mgl32.Mat4: the model matrix
func (t *Transform) ModelMatrix() mgl32.Mat4 {
	return common.ModelMatrix(t.position, t.rotation, t.scale)
}

// PositionMatrix returns the translation by -position, the translation half of a view matrix.
//
// Returns:
//   - mgl32.Mat4: the inverse translation matrix
func (t *Transform) PositionMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(-t.position.X(), -t.position.Y(), -t.position.Z())
}

// MoveForward moves along the local front axis by speed*dt.
func (t *Transform) MoveForward(speed, dt float32) {
	t.Translate(t.Front().Mul(speed * dt))
}

// MoveBackward moves against the local front axis by speed*dt.
func (t *Transform) MoveBackward(speed, dt float32) {
	t.Translate(t.Front().Mul(-speed * dt))
}

// MoveLeft moves against the local right axis by speed*dt.
func (t *Transform) MoveLeft(speed, dt float32) {
	t.Translate(t.Right().Mul(-speed * dt))
}

// MoveRight moves along the local right axis by speed*dt.
func (t *Transform) MoveRight(speed, dt float32) {
	t.Translate(t.Right().Mul(speed * dt))
}

// MoveUp moves along the local up axis by speed*dt.
func (t *Transform) MoveUp(speed, dt float32) {
	t.Translate(t.Up().Mul(speed * dt))
}

// MoveDown moves against the local up axis by speed*dt.
func (t *Transform) MoveDown(speed, dt float32) {
	t.Translate(t.Up().Mul(-speed * dt))
}

// MoveGlobalUp moves along world +Y by speed*dt regardless of orientation.
func (t *Transform) MoveGlobalUp(speed, dt float32) {
	t.Translate(WorldUp.Mul(speed * dt))
}

// MoveGlobalDown moves along world -Y by speed*dt regardless of orientation.
func (t *Transform) MoveGlobalDown(speed, dt float32) {
	t.Translate(WorldUp.Mul(-speed * dt))
}
