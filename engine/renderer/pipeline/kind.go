package pipeline

import (
	_ "embed"
)

//go:embed assets/lit.wgsl
var litSource string

//go:embed assets/unlit.wgsl
var unlitSource string

const (
	// LitUniformSize is the byte size of the lit shader's ObjUniforms block.
	LitUniformSize = 160
	// UnlitUniformSize is the byte size of the unlit shader's LightUniforms block.
	UnlitUniformSize = 128
)

// Kind identifies one of the built-in render pipelines.
type Kind int

const (
	// KindLit shades with a single point light: ambient, diffuse and specular terms.
	KindLit Kind = iota
	// KindUnlit draws vertex color times texture with no lighting.
	KindUnlit
)

// Key returns the pipeline cache key for the kind. Materials carry this key as their shader handle.
func (k Kind) Key() string {
	switch k {
	case KindUnlit:
		return "unlit"
	default:
		return "lit"
	}
}

// UniformSize returns the size in bytes of the uniform block the kind's shader reads.
func (k Kind) UniformSize() int {
	if k == KindUnlit {
		return UnlitUniformSize
	}
	return LitUniformSize
}

// Source returns the embedded WGSL for the kind.
func (k Kind) Source() string {
	if k == KindUnlit {
		return unlitSource
	}
	return litSource
}

// Kinds lists every built-in pipeline kind.
func Kinds() []Kind {
	return []Kind{KindLit, KindUnlit}
}
