package renderer

import (
	"errors"
	"strings"

	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

var (
	// ErrSurfaceUnavailable is returned by BeginFrame when the swapchain image cannot be acquired
	// for a reason that reconfiguring the surface fixes (lost, outdated, timed out).
	ErrSurfaceUnavailable = errors.New("renderer: surface unavailable")

	// ErrOutOfMemory is returned by BeginFrame when the device is out of memory.
	ErrOutOfMemory = errors.New("renderer: out of memory")

	// ErrFrameInFlight is returned by BeginFrame when the previous frame was never presented.
	ErrFrameInFlight = errors.New("renderer: previous frame not presented")
)

// classifySurfaceError maps a GetCurrentTexture failure onto the renderer sentinels.
// wgpu reports the surface status only through the error text, so the match is on that.
//
// Parameters:
//   - err: the error from acquiring the surface texture
//
// Returns:
//   - error: err wrapped in ErrOutOfMemory or ErrSurfaceUnavailable, or err unchanged
func classifySurfaceError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "outofmemory"), strings.Contains(msg, "out of memory"):
		return errors.Join(ErrOutOfMemory, err)
	case strings.Contains(msg, "outdated"), strings.Contains(msg, "lost"), strings.Contains(msg, "timeout"):
		return errors.Join(ErrSurfaceUnavailable, err)
	default:
		return err
	}
}

// RendererBackend is the GPU API the Renderer drives. There is one implementation, on WebGPU.
type RendererBackend interface {
	// ConfigureSurface configures the swapchain for a new size.
	// This is required when the surface size changes, such as when the window is resized.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the surface present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// RecreateDepthTexture releases the depth attachment and creates one of the given size.
	//
	// Returns:
	//   - error: an error if the texture could not be created
	RecreateDepthTexture(width, height int) error

	// RegisterRenderPipeline creates the shader module, group 0 layout and render pipeline for p.
	//
	// Parameters:
	//   - p: the pipeline to create
	//
	// Returns:
	//   - error: an error if the pipeline could not be created, otherwise nil
	RegisterRenderPipeline(p pipeline.Pipeline) error

	// InitMeshBuffers creates and fills the vertex and index buffers for a mesh, and stores them on the provider.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created vertex and index buffers on
	//   - vertexData: the raw vertex data bytes to upload to the GPU
	//   - indexData: the raw index data bytes to upload to the GPU
	//   - indexCount: the number of indices represented in the indexData, used for draw calls
	//
	// Returns:
	//   - error: an error if the buffers could not be created, otherwise nil
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error

	// InitBindGroup creates the uniform buffers named by descriptor and the bind group over them
	// and the provider's texture views and samplers.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to fill
	//   - layout: the created bind group layout
	//   - descriptor: the descriptor the layout was created from
	//
	// Returns:
	//   - error: an error if the bind group could not be initialized, otherwise nil
	InitBindGroup(provider bind_group_provider.BindGroupProvider, layout *wgpu.BindGroupLayout, descriptor wgpu.BindGroupLayoutDescriptor) error

	// InitTextureView uploads a texture and stores it and its view on the provider.
	//
	// Returns:
	//   - error: an error if the texture could not be created, otherwise nil
	InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, width, height uint32, pixels []byte) error

	// InitSampler creates a sampler and stores it on the provider.
	//
	// Returns:
	//   - error: an error if the sampler could not be created, otherwise nil
	InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, descriptor wgpu.SamplerDescriptor) error

	// WriteBuffers writes all staged buffer writes to the GPU queue.
	//
	// Parameters:
	//   - writes: a slice of BufferWrite structs describing the data to write
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the next swapchain texture and begins the main render pass cleared to clear.
	//
	// Returns:
	//   - error: ErrSurfaceUnavailable, ErrOutOfMemory, ErrFrameInFlight or a wgpu error
	BeginFrame(clear wgpu.Color) error

	// SetPipeline binds p and the material bind group for the next draws.
	SetPipeline(p pipeline.Pipeline, material bind_group_provider.BindGroupProvider)

	// DrawIndexed draws the mesh held by meshProvider once.
	DrawIndexed(meshProvider bind_group_provider.BindGroupProvider)

	// EndFrame ends the render pass and submits the command buffer. On error the frame is
	// released and must not be presented.
	//
	// Returns:
	//   - error: error if the command buffer could not be finished
	EndFrame() error

	// Present presents the surface and releases the swapchain texture.
	Present()

	// Release frees the depth texture, surface, device, adapter and instance.
	Release()
}
