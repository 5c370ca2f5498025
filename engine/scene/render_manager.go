// Package scene holds the ordered collections the frame loop animates, integrates and draws.
package scene

import (
	"github.com/Carmen-Shannon/oxy-viewport/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewport/engine/object"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
	"github.com/go-gl/mathgl/mgl32"
)

type renderManager struct {
	renderables []object.Renderable
}

// RenderManager draws its members in insertion order. There is no sorting and no
// batching by material.
type RenderManager interface {
	// Add appends r. It is drawn after every member added before it.
	//
	// Parameters:
	//   - r: the renderable to add
	Add(r object.Renderable)

	// Len returns the number of members.
	Len() int

	// Renderables returns the members in draw order.
	Renderables() []object.Renderable

	// Update calls Animate(dt) on every member in order.
	//
	// Parameters:
	//   - dt: step length in seconds
	Update(dt float32)

	// Draw writes uniforms for, binds, and draws every member. Members drawn with the
	// unlit pipeline get LightUniforms; all others get ObjUniforms lit by light as seen from cam.
	// A member whose mesh was never uploaded, or whose material has no shader, panics before
	// anything is written.
	//
	// Parameters:
	//   - pass: the frame's draw target
	//   - viewProjection: projection * view
	//   - cam: the camera, for the specular view position
	//   - light: the scene light
	Draw(pass Pass, viewProjection mgl32.Mat4, cam camera.Camera, light object.GlobalLight)
}

var _ RenderManager = &renderManager{}

// NewRenderManager creates an empty RenderManager.
func NewRenderManager() RenderManager {
	return &renderManager{}
}

func (m *renderManager) Add(r object.Renderable) {
	m.renderables = append(m.renderables, r)
}

func (m *renderManager) Len() int {
	return len(m.renderables)
}

func (m *renderManager) Renderables() []object.Renderable {
	return m.renderables
}

func (m *renderManager) Update(dt float32) {
	for _, r := range m.renderables {
		r.Animate(dt)
	}
}

func (m *renderManager) Draw(pass Pass, viewProjection mgl32.Mat4, cam camera.Camera, light object.GlobalLight) {
	for _, r := range m.renderables {
		mat := r.Material()
		buffers := r.Mesh().Buffers()
		mat.Shader()

		var u Uniforms
		if mat.UniformSize() == pipeline.UnlitUniformSize {
			u = &LightUniforms{PV: viewProjection, Model: r.ModelMatrix()}
		} else {
			u = &ObjUniforms{
				PV:       viewProjection,
				Model:    r.ModelMatrix(),
				LightPos: light.Transform().Position(),
				Ambient:  light.Ambient(),
				ViewPos:  cam.Transform().Position(),
				Specular: light.Specular(),
			}
		}
		pass.WriteUniforms(mat, u)
		pass.Bind(mat)
		pass.DrawMesh(buffers)
	}
}
