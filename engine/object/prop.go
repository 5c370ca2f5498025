package object

import (
	"github.com/Carmen-Shannon/oxy-viewport/engine/mesh"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
)

// Prop is a drawable object that only moves by its velocity. It neither spins nor bobs.
type Prop struct {
	body
	material material.Material
	mesh     *mesh.Mesh
}

var (
	_ Renderable = &Prop{}
	_ Physical   = &Prop{}
)

// NewProp creates a Prop with the given material and mesh.
func NewProp(mat material.Material, m *mesh.Mesh) *Prop {
	return &Prop{body: newBody(), material: mat, mesh: m}
}

func (p *Prop) Material() material.Material {
	return p.material
}

func (p *Prop) Mesh() *mesh.Mesh {
	return p.mesh
}

// Animate does nothing.
func (p *Prop) Animate(float32) {}
