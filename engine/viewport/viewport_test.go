package viewport

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewport/engine/input"
	"github.com/Carmen-Shannon/oxy-viewport/engine/mesh"
	"github.com/Carmen-Shannon/oxy-viewport/engine/object"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-viewport/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countBuffers int

func (c countBuffers) IndexCount() int { return int(c) }

type fakeDevice struct {
	uploads   []string
	materials []pipeline.Kind
	failKind  *pipeline.Kind
}

func (d *fakeDevice) UploadMesh(label string, _, _ []byte, n int) (mesh.Buffers, error) {
	d.uploads = append(d.uploads, label)
	return countBuffers(n), nil
}

func (d *fakeDevice) CreateMaterial(kind pipeline.Kind, texture *common.TextureStagingData) (material.Material, error) {
	if d.failKind != nil && *d.failKind == kind {
		return nil, errors.New("no pipeline")
	}
	d.materials = append(d.materials, kind)
	return material.NewMaterial(material.WithPipeline(kind), material.WithTexture(texture)), nil
}

type fakeDepth struct {
	sizes [][2]int
}

func (d *fakeDepth) RecreateDepthTexture(width, height int) error {
	d.sizes = append(d.sizes, [2]int{width, height})
	return nil
}

type fakeCursor struct {
	confineSupported bool
	calls            []string
}

func (c *fakeCursor) SetGrab(mode GrabMode) error {
	if mode == GrabConfined && !c.confineSupported {
		c.calls = append(c.calls, "grab:"+mode.String()+":unsupported")
		return ErrGrabUnsupported
	}
	c.calls = append(c.calls, "grab:"+mode.String())
	return nil
}

func (c *fakeCursor) SetVisible(visible bool) {
	c.calls = append(c.calls, fmt.Sprintf("visible:%t", visible))
}

func (c *fakeCursor) SetPosition(x, y float32) {
	c.calls = append(c.calls, fmt.Sprintf("pos:%g,%g", x, y))
}

type exitCounter int

func (e *exitCounter) Exit() { *e++ }

type recordingPass struct {
	draws    int
	uniforms []scene.Uniforms
}

func (p *recordingPass) WriteUniforms(_ material.Material, u scene.Uniforms) {
	p.uniforms = append(p.uniforms, u)
}

func (p *recordingPass) Bind(material.Material) {}

func (p *recordingPass) DrawMesh(mesh.Buffers) { p.draws++ }

type fixture struct {
	view   ViewPort
	device *fakeDevice
	depth  *fakeDepth
	cursor *fakeCursor
	state  *input.State
}

func newFixture(t *testing.T, options ...ViewPortBuilderOption) *fixture {
	t.Helper()
	f := &fixture{
		device: &fakeDevice{},
		depth:  &fakeDepth{},
		cursor: &fakeCursor{},
		state:  input.NewState(),
	}
	view, err := New(f.device, f.depth, 800, 600, f.cursor, options...)
	require.NoError(t, err)
	f.view = view
	return f
}

// step feeds events through the input state and hands the resulting snapshot to the view port.
func (f *fixture) step(exit Exiter, events func(s *input.State)) {
	if events != nil {
		events(f.state)
	}
	f.view.HandleInput(0.016, f.state.EndStep(), exit)
}

func press(k common.Key) func(s *input.State) {
	return func(s *input.State) {
		s.KeyDown(k)
		s.KeyUp(k)
	}
}

func assertVec3(t *testing.T, want, got mgl32.Vec3, eps float32) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, eps), "want %v, got %v", want, got)
}

func TestNewBuildsScene(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []pipeline.Kind{pipeline.KindUnlit, pipeline.KindLit}, f.device.materials)
	assert.Equal(t, []string{"textured_cube", "cube"}, f.device.uploads)
	assert.Equal(t, [][2]int{{800, 600}}, f.depth.sizes)

	assert.Equal(t, camera.DefaultPosition, f.view.Camera().Transform().Position())
	assert.Equal(t, object.DefaultLightPosition, f.view.Light().Transform().Position())
	assert.Equal(t, mgl32.Vec3{LightScale, LightScale, LightScale}, f.view.Light().Transform().Scale())
	assert.True(t, f.view.Cube().Mesh().Uploaded())

	want := f.view.Camera().ProjectionMatrix(camera.Perspective(800.0 / 600.0))
	assert.Equal(t, want, f.view.Projection())
	assert.False(t, f.view.Captured())
	assert.False(t, f.view.Is2D())
	assert.Equal(t, []string{"grab:none", "visible:true"}, f.cursor.calls)
}

func TestNewFailsOnMaterialError(t *testing.T) {
	kind := pipeline.KindLit
	_, err := New(&fakeDevice{failKind: &kind}, &fakeDepth{}, 800, 600, &fakeCursor{})
	assert.Error(t, err)
}

func TestNewWithZeroSizeClampsDepth(t *testing.T) {
	depth := &fakeDepth{}
	_, err := New(&fakeDevice{}, depth, 0, 0, &fakeCursor{})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 1}}, depth.sizes)
}

func TestCaptureToggleIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.cursor.calls = nil

	f.step(nil, press(common.KeyF1))
	assert.True(t, f.view.Captured())
	assert.Equal(t, []string{"visible:false", "grab:confined:unsupported", "grab:locked"}, f.cursor.calls)

	f.cursor.calls = nil
	f.step(nil, press(common.KeyF1))
	assert.False(t, f.view.Captured())
	assert.Equal(t, []string{"grab:none", "visible:true"}, f.cursor.calls)

	// Leaving 2D while already in 3D changes nothing the cursor can see.
	f.cursor.calls = nil
	f.step(nil, press(common.KeyF3))
	assert.Empty(t, f.cursor.calls)
}

func TestCaptureUsesConfinedGrabWhenSupported(t *testing.T) {
	f := newFixture(t)
	f.cursor.confineSupported = true
	f.cursor.calls = nil

	f.step(nil, press(common.KeyF1))
	assert.Equal(t, []string{"visible:false", "grab:confined"}, f.cursor.calls)
}

func TestEnter2DReleasesCursorAndSwitchesProjection(t *testing.T) {
	f := newFixture(t)
	f.step(nil, press(common.KeyF1))
	f.cursor.calls = nil

	f.step(nil, press(common.KeyF2))
	assert.True(t, f.view.Is2D())
	assert.Equal(t, []string{"grab:none", "visible:true"}, f.cursor.calls)
	want := f.view.Camera().ProjectionMatrix(camera.Orthographic(800.0 / 600.0))
	assert.Equal(t, want, f.view.Projection())

	f.step(nil, press(common.KeyF3))
	assert.False(t, f.view.Is2D())
	want = f.view.Camera().ProjectionMatrix(camera.Perspective(800.0 / 600.0))
	assert.Equal(t, want, f.view.Projection())
}

func TestEscapeExits(t *testing.T) {
	f := newFixture(t)
	var exits exitCounter
	f.step(&exits, press(common.KeyEsc))
	assert.Equal(t, exitCounter(1), exits)

	f.step(&exits, nil)
	assert.Equal(t, exitCounter(1), exits)
}

func TestResizeToZeroKeepsProjection(t *testing.T) {
	f := newFixture(t)
	before := f.view.Projection()

	require.NoError(t, f.view.Resize(0, 0))
	assert.Equal(t, before, f.view.Projection())
	assert.Equal(t, [2]int{1, 1}, f.depth.sizes[len(f.depth.sizes)-1])

	require.NoError(t, f.view.Resize(1600, 900))
	want := f.view.Camera().ProjectionMatrix(camera.Perspective(1600.0 / 900.0))
	assert.Equal(t, want, f.view.Projection())
	assert.Equal(t, [2]int{1600, 900}, f.depth.sizes[len(f.depth.sizes)-1])
}

func TestScrollZoomsOnlyWhenCaptured(t *testing.T) {
	f := newFixture(t)
	before := f.view.Projection()

	f.step(nil, func(s *input.State) { s.Scrolled(0, 1) })
	assert.Equal(t, float32(45), f.view.Camera().Frustum().Fov)
	assert.Equal(t, before, f.view.Projection())

	f.step(nil, press(common.KeyF1))
	f.step(nil, func(s *input.State) { s.Scrolled(0, 1) })
	assert.Equal(t, float32(44), f.view.Camera().Frustum().Fov)
	want := f.view.Camera().ProjectionMatrix(camera.Perspective(800.0 / 600.0))
	assert.Equal(t, want, f.view.Projection())
}

func TestMouseTurnsCameraAndRecentersCursor(t *testing.T) {
	f := newFixture(t)
	f.step(nil, press(common.KeyF1))
	f.cursor.calls = nil

	f.step(nil, func(s *input.State) { s.MouseMotion(10, 0) })
	assert.InDelta(t, 10*camera.DefaultSensitivity, f.view.Camera().Yaw(), 1e-5)
	assert.Equal(t, []string{"pos:400,300"}, f.cursor.calls)
}

func TestStillMouseLeavesCursorAlone(t *testing.T) {
	f := newFixture(t)
	f.step(nil, press(common.KeyF1))
	f.cursor.calls = nil

	f.step(nil, func(s *input.State) { s.KeyDown(common.KeyW) })
	assert.Empty(t, f.cursor.calls)
	assert.Less(t, f.view.Camera().Transform().Position().Z(), camera.DefaultPosition.Z(), "flying still applies")
}

func TestLightTextureReachesLightMaterial(t *testing.T) {
	tex := &common.TextureStagingData{Width: 1, Height: 1, Pixels: []byte{200, 40, 10, 255}}
	f := newFixture(t, WithLightTexture(tex))
	assert.Same(t, tex, f.view.Light().Material().Texture())
	assert.NotSame(t, tex, f.view.Cube().Material().Texture())

	plain := newFixture(t)
	assert.Equal(t, common.WhiteTexture(), *plain.view.Light().Material().Texture())
}

func TestFlyMovesCameraWhenCaptured(t *testing.T) {
	f := newFixture(t)
	f.step(nil, func(s *input.State) { s.KeyDown(common.KeyW) })
	assert.Equal(t, camera.DefaultPosition, f.view.Camera().Transform().Position())

	f.step(nil, press(common.KeyF1))
	f.step(nil, nil)
	assert.Less(t, f.view.Camera().Transform().Position().Z(), camera.DefaultPosition.Z())
}

func TestDragMovesLightIn2D(t *testing.T) {
	f := newFixture(t)
	f.step(nil, press(common.KeyF1))
	f.step(nil, press(common.KeyF2))

	f.step(nil, func(s *input.State) {
		s.CursorMoved(400, 300)
		s.MouseDown(common.MouseButtonLeft)
	})
	assertVec3(t, object.DefaultLightPosition, f.view.Light().Transform().Position(), 1e-5)

	f.step(nil, func(s *input.State) { s.CursorMoved(500, 240) })

	// The orthographic view at fov 45 spans 4 world units vertically and 16/3 horizontally.
	want := mgl32.Vec3{1 + 100*(16.0/3.0)/800, 1 + 60*4.0/600, 1}
	assertVec3(t, want, f.view.Light().Transform().Position(), 1e-4)

	// Holding still does not move the light.
	f.step(nil, nil)
	assertVec3(t, want, f.view.Light().Transform().Position(), 1e-4)
}

func TestNormalizeCursorCenterLooksForward(t *testing.T) {
	f := newFixture(t)
	got := f.view.NormalizeCursor(mgl32.Vec2{400, 300})
	assertVec3(t, mgl32.Vec3{0, 0, -1}, got, 1e-5)
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	points := []mgl32.Vec3{
		{0, 0, 0},
		{1, 1, 1},
		{-1.5, 0.5, -2},
		{0.25, -0.75, 2},
	}
	for _, enable2D := range []bool{false, true} {
		t.Run(fmt.Sprintf("2d=%t", enable2D), func(t *testing.T) {
			f := newFixture(t)
			if enable2D {
				f.step(nil, press(common.KeyF2))
			}
			require.Equal(t, enable2D, f.view.Is2D())
			for _, p := range points {
				win := f.view.Project(p)
				got, err := f.view.Unproject(win.Vec2(), win.Z())
				require.NoError(t, err)
				assertVec3(t, p, got, 1e-3)
			}
		})
	}
}

func TestProjectUsesTopLeftOrigin(t *testing.T) {
	f := newFixture(t)
	above := f.view.Project(mgl32.Vec3{0, 1, 0})
	below := f.view.Project(mgl32.Vec3{0, -1, 0})
	assert.Less(t, above.Y(), below.Y())
	assert.InDelta(t, 400, above.X(), 1e-3)
}

func TestUpdateAndRender(t *testing.T) {
	f := newFixture(t)
	f.view.Light().SetVelocity(mgl32.Vec3{1, 0, 0})
	f.view.Update(0.5)
	assert.InDelta(t, 1.5, f.view.Light().Transform().Position().X(), 1e-5)

	pass := &recordingPass{}
	f.view.Render(pass)
	assert.Equal(t, 2, pass.draws)
	require.Len(t, pass.uniforms, 2)
	lightUniforms, ok := pass.uniforms[0].(*scene.LightUniforms)
	require.True(t, ok)
	pv := f.view.Projection().Mul4(f.view.Camera().ViewMatrix())
	assert.Equal(t, pv, lightUniforms.PV)
}

func TestPanel(t *testing.T) {
	f := newFixture(t)
	panel := f.view.Panel()

	panel.SetAmbient(2)
	assert.Equal(t, float32(1), panel.Ambient())
	panel.SetSpecular(0.7)
	assert.Equal(t, float32(0.7), panel.Specular())

	f.view.Light().Transform().SetPosition(mgl32.Vec3{3, 3, 3})
	panel.ResetLight()
	assert.Equal(t, object.DefaultLightPosition, panel.LightPosition())
	assert.Equal(t, object.DefaultAmbient, panel.Ambient())
	assert.Equal(t, object.DefaultSpecular, panel.Specular())

	f.step(nil, press(common.KeyF1))
	f.step(nil, func(s *input.State) { s.Scrolled(0, 5) })
	require.Equal(t, float32(40), panel.CameraFov())
	panel.ResetCamera()
	assert.Equal(t, float32(45), panel.CameraFov())
	assert.Equal(t, camera.DefaultPosition, panel.CameraPosition())
	want := f.view.Camera().ProjectionMatrix(camera.Perspective(800.0 / 600.0))
	assert.Equal(t, want, f.view.Projection())

	assert.Equal(t, PanelFlags{Captured: true}, panel.Flags())

	f.step(nil, func(s *input.State) { s.MouseMotion(10, 0) })
	assert.Equal(t, f.view.Camera().Yaw(), panel.CameraYaw())
	assert.Equal(t, f.view.Camera().Pitch(), panel.CameraPitch())
	assert.NotZero(t, panel.CameraYaw())
}

func TestPanelLightEditReachesDrawnLight(t *testing.T) {
	f := newFixture(t)
	pos := mgl32.Vec3{2, -1, 4}
	f.view.Panel().SetLightPosition(pos)
	assert.Equal(t, pos, f.view.Light().Transform().Position())

	pass := &recordingPass{}
	f.view.Render(pass)
	require.Len(t, pass.uniforms, 2)
	marker, ok := pass.uniforms[0].(*scene.LightUniforms)
	require.True(t, ok)
	assertVec3(t, pos, marker.Model.Col(3).Vec3(), 1e-5)
	lit, ok := pass.uniforms[1].(*scene.ObjUniforms)
	require.True(t, ok)
	assert.Equal(t, pos, lit.LightPos)
}
