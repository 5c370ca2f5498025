// Package renderer draws scene passes with WebGPU. It owns the built-in pipelines and creates
// the GPU side of materials and meshes.
package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/mesh"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-viewport/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceSource is a window the renderer can present into.
type SurfaceSource interface {
	// SurfaceDescriptor returns the platform surface descriptor for the window.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	// Width returns the framebuffer width in pixels.
	Width() int
	// Height returns the framebuffer height in pixels.
	Height() int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	pipelineCache map[string]pipeline.Pipeline
	backend       RendererBackend

	width, height int
	materials     int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	sampler              common.SamplerStagingData
}

// Renderer is the WebGPU device of a native window. It creates materials and meshes for the
// scene, owns the depth attachment and records one render pass per frame.
type Renderer interface {
	scene.Device

	// Pipeline retrieves the registered Pipeline for a key, or nil if there is none.
	//
	// Parameters:
	//   - key: the pipeline key, as carried by materials
	//
	// Returns:
	//   - pipeline.Pipeline: the pipeline or nil
	Pipeline(key string) pipeline.Pipeline

	// Size returns the configured surface size.
	Size() (int, int)

	// Resize reconfigures the surface. Zero sizes are ignored since a minimized window has no surface.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// RecreateDepthTexture replaces the depth attachment with one of the given size.
	//
	// Returns:
	//   - error: an error if texture creation fails
	RecreateDepthTexture(width, height int) error

	// RenderFrame acquires the next surface texture, clears it to clear, lets draw record into
	// the frame's pass, then submits and presents.
	//
	// Parameters:
	//   - clear: RGBA clear color
	//   - draw: records the frame's draws
	//
	// Returns:
	//   - error: ErrSurfaceUnavailable or ErrOutOfMemory wrapping the wgpu error, or another error
	RenderFrame(clear [4]float64, draw func(scene.Pass)) error

	// Release frees every pipeline and the device.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer presenting into src, configures the surface at the source's
// size and registers every built-in pipeline.
//
// Parameters:
//   - src: the window to present into
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the renderer
//   - error: an error if no adapter or device is available or a pipeline fails to build
func NewRenderer(src SurfaceSource, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(options...)
	backend, err := newWGPURendererBackend(src.SurfaceDescriptor(), r.forceFallbackAdapter)
	if err != nil {
		return nil, err
	}
	if err := r.init(backend, src.Width(), src.Height()); err != nil {
		backend.Release()
		return nil, err
	}
	return r, nil
}

func newRenderer(options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		presentMode:   PresentModeVSync,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// init attaches backend and builds the surface-dependent state.
func (r *renderer) init(backend RendererBackend, width, height int) error {
	r.backend = backend
	r.backend.SetPresentMode(r.presentMode)
	r.width, r.height = max(width, 1), max(height, 1)
	r.backend.ConfigureSurface(r.width, r.height)
	if err := r.backend.RecreateDepthTexture(r.width, r.height); err != nil {
		return fmt.Errorf("renderer: depth texture: %w", err)
	}
	for _, kind := range pipeline.Kinds() {
		if err := r.registerPipeline(pipeline.NewPipeline(kind)); err != nil {
			return fmt.Errorf("renderer: register %s pipeline: %w", kind.Key(), err)
		}
	}
	return nil
}

func (r *renderer) registerPipeline(p pipeline.Pipeline) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := p.PipelineKey()
	if _, exists := r.pipelineCache[key]; exists {
		return nil
	}
	if err := r.backend.RegisterRenderPipeline(p); err != nil {
		return err
	}
	r.pipelineCache[key] = p
	return nil
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) Size() (int, int) {
	return r.width, r.height
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) RecreateDepthTexture(width, height int) error {
	return r.backend.RecreateDepthTexture(max(width, 1), max(height, 1))
}

func (r *renderer) UploadMesh(label string, vertexData, indexData []byte, indexCount int) (mesh.Buffers, error) {
	provider := bind_group_provider.NewBindGroupProvider(label)
	if err := r.backend.InitMeshBuffers(provider, vertexData, indexData, indexCount); err != nil {
		provider.Release()
		return nil, fmt.Errorf("renderer: upload mesh %s: %w", label, err)
	}
	return provider, nil
}

func (r *renderer) CreateMaterial(kind pipeline.Kind, texture *common.TextureStagingData) (material.Material, error) {
	p := r.Pipeline(kind.Key())
	if p == nil {
		return nil, fmt.Errorf("renderer: no %s pipeline", kind.Key())
	}

	r.mu.Lock()
	r.materials++
	label := fmt.Sprintf("%s material %d", kind.Key(), r.materials)
	r.mu.Unlock()

	m := material.NewMaterial(
		material.WithName(label),
		material.WithPipeline(kind),
		material.WithTexture(texture),
	)
	tex := m.Texture()

	provider := bind_group_provider.NewBindGroupProvider(label)
	if err := r.backend.InitTextureView(provider, pipeline.BindingTexture, tex.Width, tex.Height, tex.Pixels); err != nil {
		provider.Release()
		return nil, fmt.Errorf("renderer: %s texture: %w", label, err)
	}
	if err := r.backend.InitSampler(provider, pipeline.BindingSampler, samplerDescriptor(r.sampler)); err != nil {
		provider.Release()
		return nil, fmt.Errorf("renderer: %s sampler: %w", label, err)
	}
	if err := r.backend.InitBindGroup(provider, p.BindGroupLayout(), pipeline.BindGroupLayoutDescriptor(kind)); err != nil {
		provider.Release()
		return nil, fmt.Errorf("renderer: %s bind group: %w", label, err)
	}
	m.SetBindGroupProvider(provider)
	return m, nil
}

func (r *renderer) RenderFrame(clear [4]float64, draw func(scene.Pass)) error {
	if err := r.backend.BeginFrame(wgpu.Color{R: clear[0], G: clear[1], B: clear[2], A: clear[3]}); err != nil {
		return err
	}
	draw(&framePass{renderer: r})
	if err := r.backend.EndFrame(); err != nil {
		return err
	}
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.mu.Lock()
	for key, p := range r.pipelineCache {
		p.Release()
		delete(r.pipelineCache, key)
	}
	r.mu.Unlock()
	if r.backend != nil {
		r.backend.Release()
	}
}

// framePass records scene draws into the backend's open render pass.
type framePass struct {
	renderer *renderer
}

var _ scene.Pass = &framePass{}

func (f *framePass) WriteUniforms(m material.Material, u scene.Uniforms) {
	provider := m.BindGroupProvider()
	if provider == nil {
		return
	}
	f.renderer.backend.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: provider,
		Binding:  pipeline.BindingUniforms,
		Offset:   0,
		Data:     u.Marshal(),
	}})
}

func (f *framePass) Bind(m material.Material) {
	p := f.renderer.Pipeline(m.PipelineKey())
	if p == nil {
		panic(fmt.Sprintf("renderer: material %s has no pipeline", m.Name()))
	}
	provider := m.BindGroupProvider()
	if provider == nil {
		panic(fmt.Sprintf("renderer: material %s has no bind group", m.Name()))
	}
	f.renderer.backend.SetPipeline(p, provider)
}

func (f *framePass) DrawMesh(b mesh.Buffers) {
	provider, ok := b.(bind_group_provider.BindGroupProvider)
	if !ok {
		log.Printf("[Renderer] Mesh buffers %T were not uploaded by this renderer, skipping draw", b)
		return
	}
	f.renderer.backend.DrawIndexed(provider)
}
