package object

import (
	"github.com/Carmen-Shannon/oxy-viewport/engine/mesh"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// Cube is a lit, spinning cube that bobs along Y and integrates its velocity.
type Cube struct {
	body
	material material.Material
	mesh     *mesh.Mesh
	bob      *Bob
}

var (
	_ Renderable = &Cube{}
	_ Physical   = &Cube{}
)

// NewCube creates a Cube drawn with mat using the per-face colored cube mesh.
//
// Parameters:
//   - mat: the lit material
//   - options: functional options applied to the bob
//
// Returns:
//   - *Cube: the new cube
func NewCube(mat material.Material, options ...BobOption) *Cube {
	return &Cube{
		body:     newBody(),
		material: mat,
		mesh:     mesh.Cube(),
		bob:      NewBob(options...),
	}
}

func (c *Cube) Material() material.Material {
	return c.material
}

func (c *Cube) Mesh() *mesh.Mesh {
	return c.mesh
}

// Bob returns the cube's bobbing state.
func (c *Cube) Bob() *Bob {
	return c.bob
}

// Animate spins the cube around X and Y and sets its height from the bob.
func (c *Cube) Animate(dt float32) {
	spin := mgl32.QuatRotate(0.5*dt, axisX).Mul(mgl32.QuatRotate(0.5*dt, axisY))
	c.transform.Rotate(spin)

	p := c.transform.Position()
	p[1] = c.bob.Advance(dt)
	c.transform.SetPosition(p)
}
