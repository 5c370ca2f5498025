package viewport

import (
	"github.com/Carmen-Shannon/oxy-viewport/engine/object"
	"github.com/go-gl/mathgl/mgl32"
)

// Panel is the model behind the debug overlay. Overlays read and edit the view port through it
// and never touch the camera or light directly.
type Panel struct {
	view *viewPort
}

// PanelFlags is a read-out of the view port modes.
type PanelFlags struct {
	Captured bool
	Enable2D bool
}

// ResetCamera puts the camera back at its start position with the default fov and recomputes
// the projection.
func (p *Panel) ResetCamera() {
	p.view.camera.Reset()
	p.view.updateProjection()
}

// ResetLight restores the light position and intensities.
func (p *Panel) ResetLight() {
	p.view.light.Reset()
}

func (p *Panel) Ambient() float32 {
	return p.view.light.Ambient()
}

// SetAmbient sets the light's ambient intensity, clamped to [0, 1].
func (p *Panel) SetAmbient(v float32) {
	p.view.light.SetAmbient(mgl32.Clamp(v, 0, 1))
}

func (p *Panel) Specular() float32 {
	return p.view.light.Specular()
}

// SetSpecular sets the light's specular intensity, clamped to [0, 1].
func (p *Panel) SetSpecular(v float32) {
	p.view.light.SetSpecular(mgl32.Clamp(v, 0, 1))
}

// CameraPosition returns the camera position for display.
func (p *Panel) CameraPosition() mgl32.Vec3 {
	return p.view.camera.Transform().Position()
}

// CameraFov returns the camera field of view in degrees.
func (p *Panel) CameraFov() float32 {
	return p.view.camera.Frustum().Fov
}

// CameraPitch returns the camera pitch in degrees.
func (p *Panel) CameraPitch() float32 {
	return p.view.camera.Pitch()
}

// CameraYaw returns the camera yaw in degrees.
func (p *Panel) CameraYaw() float32 {
	return p.view.camera.Yaw()
}

// LightPosition returns the light position for display.
func (p *Panel) LightPosition() mgl32.Vec3 {
	return p.view.light.Transform().Position()
}

// SetLightPosition moves the light. The lit cube and the light marker both read the new
// position on the next draw.
func (p *Panel) SetLightPosition(pos mgl32.Vec3) {
	p.view.light.Transform().SetPosition(pos)
}

func (p *Panel) Flags() PanelFlags {
	return PanelFlags{Captured: p.view.captured, Enable2D: p.view.enable2D}
}

// Defaults reports the values the reset actions restore, for display next to the buttons.
func (p *Panel) Defaults() (ambient, specular float32) {
	return object.DefaultAmbient, object.DefaultSpecular
}
