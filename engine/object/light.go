package object

import (
	"github.com/Carmen-Shannon/oxy-viewport/engine/mesh"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultAmbient is the ambient intensity a light starts with.
	DefaultAmbient float32 = 0.2
	// DefaultSpecular is the specular intensity a light starts with.
	DefaultSpecular float32 = 0.5
	// lightSpinRate scales dt for the light marker's spin.
	lightSpinRate float32 = 5
)

// DefaultLightPosition is where a light starts and where Reset puts it.
var DefaultLightPosition = mgl32.Vec3{1, 1, 1}

// Light is the scene's single point light, drawn as a small unlit textured cube.
type Light struct {
	body
	material material.Material
	mesh     *mesh.Mesh

	ambient  float32
	specular float32
}

var (
	_ Renderable  = &Light{}
	_ GlobalLight = &Light{}
)

// NewLight creates a Light at DefaultLightPosition with default intensities.
//
// Parameters:
//   - mat: the unlit material
//
// Returns:
//   - *Light: the new light
func NewLight(mat material.Material) *Light {
	l := &Light{
		body:     newBody(),
		material: mat,
		mesh:     mesh.TexturedCube(),
	}
	l.Reset()
	return l
}

func (l *Light) Material() material.Material {
	return l.material
}

func (l *Light) Mesh() *mesh.Mesh {
	return l.mesh
}

// Animate spins the marker around X and Z.
func (l *Light) Animate(dt float32) {
	dt *= lightSpinRate
	spin := mgl32.QuatRotate(0.5*dt, axisX).Mul(mgl32.QuatRotate(0.5*dt, axisZ))
	l.transform.Rotate(spin)
}

func (l *Light) Ambient() float32 {
	return l.ambient
}

func (l *Light) SetAmbient(v float32) {
	l.ambient = v
}

func (l *Light) Specular() float32 {
	return l.specular
}

func (l *Light) SetSpecular(v float32) {
	l.specular = v
}

// Reset restores the default position and intensities.
func (l *Light) Reset() {
	l.transform.SetPosition(DefaultLightPosition)
	l.ambient = DefaultAmbient
	l.specular = DefaultSpecular
}
