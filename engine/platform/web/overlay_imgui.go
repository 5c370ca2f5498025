//go:build !js

package web

import (
	"fmt"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/Carmen-Shannon/oxy-viewport/engine/viewport"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// imguiOverlay renders Dear ImGui through its Ebitengine backend.
type imguiOverlay struct {
	backend *ebitenbackend.EbitenBackend
}

func newOverlay(title string, width, height int) overlay {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	b.Layout(width, height)
	return &imguiOverlay{backend: b}
}

func (o *imguiOverlay) Render(screen *ebiten.Image, build func()) {
	o.backend.BeginFrame()
	build()
	o.backend.EndFrame()
	o.backend.Draw(screen)
}

func (o *imguiOverlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

func (o *imguiOverlay) WantsInput() bool {
	return imgui.CurrentIO().WantCaptureMouse()
}

// PanelOverlay builds the debug window for p: camera read-outs, the light position and intensity
// fields, reset buttons and the mode flags.
//
// Parameters:
//   - p: the view port's panel model
//
// Returns:
//   - func(): the UI builder for Backend.SetOverlay
func PanelOverlay(p *viewport.Panel) func() {
	return func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(300, 270), imgui.CondOnce)
		if imgui.BeginV("Viewport", nil, imgui.WindowFlagsNone) {
			cam := p.CameraPosition()
			imgui.Text(fmt.Sprintf("Camera: %.2f, %.2f, %.2f", cam.X(), cam.Y(), cam.Z()))
			imgui.Text(fmt.Sprintf("Pitch: %.1f  Yaw: %.1f", p.CameraPitch(), p.CameraYaw()))
			imgui.Text(fmt.Sprintf("Fov: %.1f", p.CameraFov()))
			if imgui.Button("Reset camera") {
				p.ResetCamera()
			}

			imgui.Separator()
			light := [3]float32(p.LightPosition())
			if imgui.InputFloat3("Light", &light) {
				p.SetLightPosition(mgl32.Vec3(light))
			}
			ambient := p.Ambient()
			if imgui.InputFloat("Ambient", &ambient) {
				p.SetAmbient(ambient)
			}
			specular := p.Specular()
			if imgui.InputFloat("Specular", &specular) {
				p.SetSpecular(specular)
			}
			if imgui.Button("Reset light") {
				p.ResetLight()
			}

			imgui.Separator()
			flags := p.Flags()
			imgui.Text(fmt.Sprintf("Captured: %t", flags.Captured))
			imgui.SameLine()
			imgui.Text(fmt.Sprintf("2D: %t", flags.Enable2D))
		}
		imgui.End()
	}
}
