package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
)

const (
	// BindingUniforms is the uniform buffer binding in group 0.
	BindingUniforms = 0
	// BindingTexture is the diffuse texture binding in group 0.
	BindingTexture = 1
	// BindingSampler is the diffuse sampler binding in group 0.
	BindingSampler = 2

	// VertexStride matches mesh.VertexStride.
	VertexStride = 44
)

// BindGroupLayoutDescriptor returns the group 0 layout shared by every built-in pipeline:
// a uniform block of the kind's size, a 2D float texture and a filtering sampler.
//
// Parameters:
//   - k: the pipeline kind
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the layout descriptor
func BindGroupLayoutDescriptor(k Kind) wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: k.Key() + " Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    BindingUniforms,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(k.UniformSize()),
				},
			},
			{
				Binding:    BindingTexture,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    BindingSampler,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	}
}

// VertexLayout returns the single interleaved vertex buffer layout:
// position, color and normal as float32x3 followed by uv as float32x2.
func VertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 24, ShaderLocation: 2},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 36, ShaderLocation: 3},
		},
	}
}
