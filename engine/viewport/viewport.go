// Package viewport ties a camera, a light and a small scene to one window surface: it turns input
// into camera motion or light drags, owns the projection, and drives the update and draw of the
// render and physics managers.
package viewport

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewport/engine/input"
	"github.com/Carmen-Shannon/oxy-viewport/engine/object"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-viewport/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// LightScale is the uniform scale of the light marker cube.
const LightScale float32 = 0.25

// Exiter is asked to stop the frame loop.
type Exiter interface {
	Exit()
}

// DepthTarget owns the depth attachment that must track the surface size.
type DepthTarget interface {
	// RecreateDepthTexture replaces the depth attachment.
	//
	// Parameters:
	//   - width: width in pixels, at least 1
	//   - height: height in pixels, at least 1
	//
	// Returns:
	//   - error: error if the texture could not be created
	RecreateDepthTexture(width, height int) error
}

// ViewPort is the interactive controller for one surface.
type ViewPort interface {
	// Camera returns the viewing camera.
	Camera() camera.Camera

	// Light returns the scene light. The same instance is drawn by the render manager.
	Light() *object.Light

	// Cube returns the lit demo cube.
	Cube() *object.Cube

	// Projection returns the current projection matrix.
	Projection() mgl32.Mat4

	// Size returns the last size passed to New or Resize.
	Size() (int, int)

	// Captured reports whether input capture is on.
	Captured() bool

	// Is2D reports whether the orthographic drag mode is on.
	Is2D() bool

	// Resize tracks a new surface size. The depth target is recreated with each side clamped to
	// at least 1. The projection is recomputed only when both sides are positive.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	//
	// Returns:
	//   - error: error if the depth target could not be recreated
	Resize(width, height int) error

	// HandleInput applies one step of input.
	//
	// Parameters:
	//   - dt: the step duration in seconds
	//   - snap: the input snapshot of the step
	//   - exit: asked to stop when Escape is pressed
	HandleInput(dt float32, snap input.Snapshot, exit Exiter)

	// Update integrates physics, then animates renderables.
	Update(dt float32)

	// Render records the scene draw into pass.
	Render(pass scene.Pass)

	// NormalizeCursor maps a window position to a camera-relative world direction.
	NormalizeCursor(p mgl32.Vec2) mgl32.Vec3

	// Project maps a world point to window coordinates (top-left origin) and depth.
	Project(world mgl32.Vec3) mgl32.Vec3

	// Unproject maps a window position and depth back to a world point.
	Unproject(screen mgl32.Vec2, depth float32) (mgl32.Vec3, error)

	// Panel returns the debug panel model.
	Panel() *Panel
}

type viewPort struct {
	camera camera.Camera
	fly    camera.FlyController

	render  scene.RenderManager
	physics scene.PhysicsManager
	light   *object.Light
	cube    *object.Cube

	depth  DepthTarget
	cursor CursorController

	projection mgl32.Mat4
	width      int
	height     int

	enable2D    bool
	captured    bool
	lastMouse   mgl32.Vec2
	cursorState cursorState

	lightTexture  *common.TextureStagingData
	cameraOptions []camera.CameraBuilderOption
	flyOptions    []camera.FlyControllerOption
	bobOptions    []object.BobOption

	panel *Panel
}

var _ ViewPort = &viewPort{}

// New builds the demo scene on device and sizes it to the surface.
// The camera starts at (0, 0, 5). The light and the cube are added to both managers, light first.
//
// Parameters:
//   - device: creates materials and uploads meshes
//   - depth: the depth attachment owner
//   - width: the surface width in pixels
//   - height: the surface height in pixels
//   - cursor: the window pointer control
//   - options: functional options
//
// Returns:
//   - ViewPort: the ready view port
//   - error: error if a material, mesh upload or depth texture failed
func New(device scene.Device, depth DepthTarget, width, height int, cursor CursorController, options ...ViewPortBuilderOption) (ViewPort, error) {
	v := &viewPort{
		render:  scene.NewRenderManager(),
		physics: scene.NewPhysicsManager(),
		depth:   depth,
		cursor:  cursor,
		width:   width,
		height:  height,
	}
	for _, opt := range options {
		opt(v)
	}
	v.camera = camera.NewCamera(v.cameraOptions...)
	v.fly = camera.NewFlyController(v.flyOptions...)

	unlit, err := device.CreateMaterial(pipeline.KindUnlit, v.lightTexture)
	if err != nil {
		return nil, fmt.Errorf("viewport: light material: %w", err)
	}
	v.light = object.NewLight(unlit)
	if err := v.light.Transform().SetScale(mgl32.Vec3{LightScale, LightScale, LightScale}); err != nil {
		return nil, err
	}
	if err := v.light.Mesh().Upload(device); err != nil {
		return nil, err
	}

	lit, err := device.CreateMaterial(pipeline.KindLit, nil)
	if err != nil {
		return nil, fmt.Errorf("viewport: cube material: %w", err)
	}
	v.cube = object.NewCube(lit, v.bobOptions...)
	if err := v.cube.Mesh().Upload(device); err != nil {
		return nil, err
	}

	v.render.Add(v.light)
	v.physics.Add(v.light)
	v.render.Add(v.cube)
	v.physics.Add(v.cube)

	if err := depth.RecreateDepthTexture(max(1, width), max(1, height)); err != nil {
		return nil, fmt.Errorf("viewport: depth target: %w", err)
	}
	v.updateProjection()
	v.applyCursor()
	v.panel = &Panel{view: v}
	return v, nil
}

func (v *viewPort) Camera() camera.Camera {
	return v.camera
}

func (v *viewPort) Light() *object.Light {
	return v.light
}

func (v *viewPort) Cube() *object.Cube {
	return v.cube
}

func (v *viewPort) Projection() mgl32.Mat4 {
	return v.projection
}

func (v *viewPort) Size() (int, int) {
	return v.width, v.height
}

func (v *viewPort) Captured() bool {
	return v.captured
}

func (v *viewPort) Is2D() bool {
	return v.enable2D
}

func (v *viewPort) Panel() *Panel {
	return v.panel
}

func (v *viewPort) Resize(width, height int) error {
	v.width = width
	v.height = height
	if err := v.depth.RecreateDepthTexture(max(1, width), max(1, height)); err != nil {
		return fmt.Errorf("viewport: depth target: %w", err)
	}
	v.updateProjection()
	return nil
}

// updateProjection recomputes the projection for the current size and mode.
// A zero-sized side leaves the previous projection in place.
func (v *viewPort) updateProjection() {
	if v.width <= 0 || v.height <= 0 {
		return
	}
	aspect := float32(v.width) / float32(v.height)
	p := camera.Perspective(aspect)
	if v.enable2D {
		p = camera.Orthographic(aspect)
	}
	v.projection = v.camera.ProjectionMatrix(p)
}

func (v *viewPort) HandleInput(dt float32, snap input.Snapshot, exit Exiter) {
	if snap.KeyPressed(common.KeyEsc) && exit != nil {
		exit.Exit()
	}

	modeChanged := false
	if snap.KeyPressed(common.KeyF1) {
		v.captured = !v.captured
		modeChanged = true
	}
	if snap.KeyPressed(common.KeyF2) {
		v.enable2D = true
		modeChanged = true
	}
	if snap.KeyPressed(common.KeyF3) {
		v.enable2D = false
		modeChanged = true
	}
	if modeChanged {
		log.Printf("[Engine] View mode: captured=%t 2d=%t", v.captured, v.enable2D)
		v.updateProjection()
		v.applyCursor()
	}

	if !v.captured {
		return
	}

	if scroll := snap.Scroll(); scroll.Y() != 0 {
		v.camera.Zoom(-scroll.Y())
		v.updateProjection()
	}

	if v.enable2D {
		cur, ok := snap.Cursor()
		if !ok {
			return
		}
		switch {
		case snap.MousePressed(common.MouseButtonLeft):
			v.lastMouse = cur
		case snap.MouseHeld(common.MouseButtonLeft):
			v.drag(cur)
		}
		return
	}

	delta := snap.MouseDelta()
	turned := delta.X() != 0 || delta.Y() != 0
	if turned {
		v.camera.Turn(delta.X(), -delta.Y())
	}
	v.fly.Apply(v.camera, snap, dt)
	// The pointer only needs re-centering after it moved.
	if turned {
		v.cursor.SetPosition(float32(v.width)/2, float32(v.height)/2)
	}
}

func (v *viewPort) Update(dt float32) {
	v.physics.Update(dt)
	v.render.Update(dt)
}

func (v *viewPort) Render(pass scene.Pass) {
	pv := v.projection.Mul4(v.camera.ViewMatrix())
	v.render.Draw(pass, pv, v.camera, v.light)
}
