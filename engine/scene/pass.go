package scene

import (
	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/mesh"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
)

// Pass is one frame's draw target. Every backend supplies its own.
type Pass interface {
	// WriteUniforms uploads the per-object uniforms for the next draw with m.
	//
	// Parameters:
	//   - m: the material whose uniform buffer receives the data
	//   - u: the uniform block
	WriteUniforms(m material.Material, u Uniforms)

	// Bind selects m's pipeline and bind group.
	//
	// Parameters:
	//   - m: the material to bind
	Bind(m material.Material)

	// DrawMesh issues an indexed draw of b with the current binding.
	//
	// Parameters:
	//   - b: uploaded mesh buffers
	DrawMesh(b mesh.Buffers)
}

// Device creates the GPU resources scene objects need at construction time.
type Device interface {
	mesh.Uploader

	// CreateMaterial creates a material for a built-in pipeline.
	//
	// Parameters:
	//   - kind: the pipeline kind
	//   - texture: the texture to sample, or nil for the white default
	//
	// Returns:
	//   - material.Material: the new material
	//   - error: error if GPU resources could not be created
	CreateMaterial(kind pipeline.Kind, texture *common.TextureStagingData) (material.Material, error)
}
