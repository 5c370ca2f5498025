package material

import (
	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithPipeline attaches a built-in pipeline, setting both the pipeline key and the uniform size.
//
// Parameters:
//   - kind: the pipeline kind
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline option to a material
func WithPipeline(kind pipeline.Kind) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = kind.Key()
		m.uniformSize = kind.UniformSize()
	}
}

// WithPipelineKey sets the pipeline key without touching the uniform size.
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}

// WithUniformSize sets the size in bytes of the per-object uniform block.
func WithUniformSize(size int) MaterialBuilderOption {
	return func(m *material) {
		m.uniformSize = size
	}
}

// WithTexture sets the texture the material samples. A nil texture keeps the white default.
//
// Parameters:
//   - texture: the texture staging data
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture option to a material
func WithTexture(texture *common.TextureStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.texture = texture
	}
}

// WithBindGroupProvider sets the GPU bind group provider for the material.
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) MaterialBuilderOption {
	return func(m *material) {
		m.bindGroupProvider = provider
	}
}
