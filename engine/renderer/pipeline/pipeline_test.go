package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, "lit", KindLit.Key())
	assert.Equal(t, "unlit", KindUnlit.Key())
	assert.Equal(t, 160, KindLit.UniformSize())
	assert.Equal(t, 128, KindUnlit.UniformSize())

	for _, k := range Kinds() {
		src := k.Source()
		assert.Contains(t, src, "fn vs_main")
		assert.Contains(t, src, "fn fs_main")
		assert.Contains(t, src, "@group(0) @binding(2)")
	}
	assert.Contains(t, KindLit.Source(), "view_pos")
	assert.NotContains(t, KindUnlit.Source(), "view_pos")
}

func TestBindGroupLayoutDescriptor(t *testing.T) {
	d := BindGroupLayoutDescriptor(KindLit)
	require.Len(t, d.Entries, 3)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, d.Entries[BindingUniforms].Buffer.Type)
	assert.Equal(t, uint64(LitUniformSize), d.Entries[BindingUniforms].Buffer.MinBindingSize)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, d.Entries[BindingTexture].Texture.SampleType)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, d.Entries[BindingSampler].Sampler.Type)

	u := BindGroupLayoutDescriptor(KindUnlit)
	assert.Equal(t, uint64(UnlitUniformSize), u.Entries[BindingUniforms].Buffer.MinBindingSize)
}

func TestVertexLayout(t *testing.T) {
	l := VertexLayout()
	assert.Equal(t, uint64(VertexStride), l.ArrayStride)
	require.Len(t, l.Attributes, 4)
	for i, a := range l.Attributes {
		assert.Equal(t, uint32(i), a.ShaderLocation)
	}
	assert.Equal(t, uint64(36), l.Attributes[3].Offset)
}

func TestNewPipelineDefaultsAndOptions(t *testing.T) {
	p := NewPipeline(KindUnlit)
	assert.Equal(t, KindUnlit, p.Kind())
	assert.Equal(t, "unlit", p.PipelineKey())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Nil(t, p.Pipeline())

	p = NewPipeline(KindLit,
		WithCullMode(wgpu.CullModeNone),
		WithDepthWriteEnabled(false),
		WithFrontFace(wgpu.FrontFaceCW),
	)
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.False(t, p.DepthWriteEnabled())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
	p.Release()
}
