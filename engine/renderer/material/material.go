package material

import (
	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/bind_group_provider"
)

// material is the implementation of the Material interface.
type material struct {
	name              string
	pipelineKey       string
	uniformSize       int
	texture           *common.TextureStagingData
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material defines the interface for a render material: which pipeline draws it, how large
// its per-object uniform block is, which texture it samples, and the GPU resources bound for it.
//
// GPU resource references are mutable so a backend can attach them after construction.
// Backends without bind groups leave the provider nil.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// PipelineKey retrieves the key identifying the render pipeline this material uses,
	// or an empty string if none is attached.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// Shader returns the pipeline key. A material without one cannot be drawn, so this
	// panics instead of returning an empty handle.
	//
	// Returns:
	//   - string: the pipeline key
	Shader() string

	// UniformSize returns the size in bytes of the per-object uniform block.
	//
	// Returns:
	//   - int: uniform size in bytes
	UniformSize() int

	// Texture returns the texture to sample. A material created without one returns a
	// 1x1 white texture.
	//
	// Returns:
	//   - *common.TextureStagingData: the texture staging data
	Texture() *common.TextureStagingData

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider, or nil if not yet initialized
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)

	// SetBindGroupProvider sets the bind group provider for this material.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this material
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{}
	for _, opt := range options {
		opt(m)
	}
	if m.texture == nil {
		white := common.WhiteTexture()
		m.texture = &white
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) Shader() string {
	if m.pipelineKey == "" {
		panic("material: no shader attached")
	}
	return m.pipelineKey
}

func (m *material) UniformSize() int {
	return m.uniformSize
}

func (m *material) Texture() *common.TextureStagingData {
	return m.texture
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) SetPipelineKey(key string) {
	m.pipelineKey = key
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.bindGroupProvider = provider
}
