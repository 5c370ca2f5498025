// Package object defines the capabilities scene objects expose to the render and physics
// managers, and the concrete objects the viewer places in its scene.
package object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-viewport/engine/mesh"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewport/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// objectCount is an atomic counter used to hand out unique object IDs.
var objectCount atomic.Uint64

// Renderable is implemented by objects the RenderManager can draw.
type Renderable interface {
	// Material returns the material the object is drawn with.
	//
	// Returns:
	//   - material.Material: the material
	Material() material.Material

	// Mesh returns the geometry. It must be uploaded before the first draw.
	//
	// Returns:
	//   - *mesh.Mesh: the mesh
	Mesh() *mesh.Mesh

	// ModelMatrix returns the object's model matrix.
	//
	// Returns:
	//   - mgl32.Mat4: translation * rotation * scale
	ModelMatrix() mgl32.Mat4

	// Animate advances per-frame visual effects by dt seconds.
	//
	// Parameters:
	//   - dt: step length in seconds
	Animate(dt float32)
}

// Physical is implemented by objects the PhysicsManager advances.
type Physical interface {
	// Velocity returns the linear velocity in world units per second.
	Velocity() mgl32.Vec3

	// SetVelocity sets the linear velocity.
	//
	// Parameters:
	//   - v: the new velocity
	SetVelocity(v mgl32.Vec3)

	// Transform returns the object's transform. The object is its only owner.
	Transform() *transform.Transform

	// Update integrates the object forward by dt seconds.
	//
	// Parameters:
	//   - dt: step length in seconds
	Update(dt float32)
}

// GlobalLight is implemented by the single light the lit pipeline shades with.
// Intensities are not clamped here; the debug panel keeps them in [0, 1].
type GlobalLight interface {
	Physical

	// Ambient returns the ambient intensity.
	Ambient() float32

	// SetAmbient sets the ambient intensity.
	SetAmbient(v float32)

	// Specular returns the specular intensity.
	Specular() float32

	// SetSpecular sets the specular intensity.
	SetSpecular(v float32)
}

// body is the state shared by every concrete object: identity, transform and velocity.
type body struct {
	id        uint64
	transform *transform.Transform
	velocity  mgl32.Vec3
}

func newBody() body {
	return body{
		id:        objectCount.Add(1),
		transform: transform.New(),
	}
}

// ID returns the object's unique identifier.
func (b *body) ID() uint64 {
	return b.id
}

func (b *body) Velocity() mgl32.Vec3 {
	return b.velocity
}

func (b *body) SetVelocity(v mgl32.Vec3) {
	b.velocity = v
}

func (b *body) Transform() *transform.Transform {
	return b.transform
}

// Update applies position += velocity * dt.
func (b *body) Update(dt float32) {
	b.transform.Translate(b.velocity.Mul(dt))
}

func (b *body) ModelMatrix() mgl32.Mat4 {
	return b.transform.ModelMatrix()
}
