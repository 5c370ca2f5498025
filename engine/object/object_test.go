package object

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-viewport/engine/mesh"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBobStaysInBounds(t *testing.T) {
	dts := []float32{0, 0.001, 0.016, 0.1, 0.5, 1, 3.7, 100, 12345}
	for _, n := range []int{2, 3, 16, 256} {
		b := NewBob(WithSamples(n), WithAmplitude(0.75), WithBase(2), WithBobSpeed(1.3))
		for i := 0; i < 2000; i++ {
			v := b.Advance(dts[i%len(dts)])
			assert.GreaterOrEqual(t, b.Phase(), float32(0))
			assert.Less(t, b.Phase(), float32(b.Samples()))
			assert.GreaterOrEqual(t, v, float32(2-0.75-1e-5))
			assert.LessOrEqual(t, v, float32(2+0.75+1e-5))
		}
	}
}

func TestBobInterpolates(t *testing.T) {
	b := NewBob(WithSamples(5), WithBobSpeed(1), WithAmplitude(1))
	// Table is sin(0), sin(pi/2), sin(pi), sin(3pi/2), sin(2pi).
	// One second at speed 1 moves 5 samples; 0.1s moves half a sample.
	v := b.Advance(0.1)
	assert.InDelta(t, 0.5, b.Phase(), 1e-5)
	assert.InDelta(t, 0.5, v, 1e-5)

	v = b.Advance(0.1)
	assert.InDelta(t, 1, v, 1e-5)

	// A full period returns to the same phase.
	before := b.Phase()
	b.Advance(1)
	assert.InDelta(t, before, b.Phase(), 1e-4)
}

func TestBobDefaults(t *testing.T) {
	b := NewBob()
	assert.Equal(t, 256, b.Samples())
	assert.Equal(t, float32(0.5), b.Amplitude())
	assert.Equal(t, float32(0), b.Base())
	assert.Equal(t, float32(0), b.Advance(0))
}

func TestPropIntegratesVelocity(t *testing.T) {
	p := NewProp(material.NewMaterial(), mesh.Cube())
	p.Transform().SetPosition(mgl32.Vec3{1, 2, 3})
	p.SetVelocity(mgl32.Vec3{0.5, -1, 2})
	for i := 0; i < 10; i++ {
		p.Animate(0.1)
		p.Update(0.1)
	}
	assert.True(t, mgl32.Vec3{1.5, 1, 5}.ApproxEqualThreshold(p.Transform().Position(), 1e-5), "got %v", p.Transform().Position())
	assert.Equal(t, mgl32.QuatIdent(), p.Transform().Rotation())
}

func TestCubeAnimateSpinsAndBobs(t *testing.T) {
	c := NewCube(material.NewMaterial(material.WithPipeline(pipeline.KindLit)))
	c.Transform().SetPosition(mgl32.Vec3{3, 0, 0})
	c.Animate(0.5)

	assert.NotEqual(t, mgl32.QuatIdent(), c.Transform().Rotation())
	y := c.Transform().Position().Y()
	assert.Greater(t, y, float32(0))
	assert.LessOrEqual(t, y, float32(0.5))
	assert.Equal(t, float32(3), c.Transform().Position().X())

	c.SetVelocity(mgl32.Vec3{1, 0, 0})
	c.Update(2)
	assert.Equal(t, float32(5), c.Transform().Position().X())
	assert.Equal(t, "cube", c.Mesh().Label())
}

func TestLightDefaultsAndReset(t *testing.T) {
	l := NewLight(material.NewMaterial(material.WithPipeline(pipeline.KindUnlit)))
	assert.Equal(t, DefaultLightPosition, l.Transform().Position())
	assert.Equal(t, DefaultAmbient, l.Ambient())
	assert.Equal(t, DefaultSpecular, l.Specular())
	assert.Equal(t, mgl32.Vec3{}, l.Velocity())

	l.SetAmbient(0.9)
	l.SetSpecular(1.5)
	l.Transform().SetPosition(mgl32.Vec3{4, 4, 4})
	l.Update(1)
	assert.Equal(t, mgl32.Vec3{4, 4, 4}, l.Transform().Position())

	l.Animate(0.1)
	assert.NotEqual(t, mgl32.QuatIdent(), l.Transform().Rotation())

	l.Reset()
	assert.Equal(t, DefaultLightPosition, l.Transform().Position())
	assert.Equal(t, DefaultAmbient, l.Ambient())
	assert.Equal(t, DefaultSpecular, l.Specular())
}

func TestObjectsHaveUniqueIDs(t *testing.T) {
	mat := material.NewMaterial()
	a := NewProp(mat, mesh.Cube())
	b := NewProp(mat, mesh.Cube())
	require.NotEqual(t, a.ID(), b.ID())
}
