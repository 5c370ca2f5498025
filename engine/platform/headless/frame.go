package headless

import (
	"github.com/Carmen-Shannon/oxy-viewport/engine/mesh"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewport/engine/scene"
)

// Draw is one recorded draw call.
type Draw struct {
	Material material.Material
	Uniforms scene.Uniforms
	Indices  int
}

// Frame is the scene.Pass of one headless frame. It keeps every draw in submission order.
type Frame struct {
	Clear   [4]float64
	Draws   []Draw
	Overlay bool

	pending Draw
}

var _ scene.Pass = &Frame{}

func (f *Frame) WriteUniforms(m material.Material, u scene.Uniforms) {
	f.pending.Material = m
	f.pending.Uniforms = u
}

func (f *Frame) Bind(m material.Material) {
	f.pending.Material = m
}

func (f *Frame) DrawMesh(b mesh.Buffers) {
	f.pending.Indices = b.IndexCount()
	f.Draws = append(f.Draws, f.pending)
	f.pending = Draw{}
}
