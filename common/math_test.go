package common

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerspectiveMatchesRightHandedZeroToOne(t *testing.T) {
	fov := mgl32.DegToRad(45)
	aspect := float32(16) / 9
	near, far := float32(0.1), float32(100)

	m := Perspective(fov, aspect, near, far)

	h := float32(1 / math.Tan(float64(fov)/2))
	assert.InDelta(t, h/aspect, m.At(0, 0), 1e-5)
	assert.InDelta(t, h, m.At(1, 1), 1e-5)
	assert.InDelta(t, far/(near-far), m.At(2, 2), 1e-5)
	assert.InDelta(t, -1, m.At(3, 2), 1e-6)
	assert.InDelta(t, near*far/(near-far), m.At(2, 3), 1e-5)
	assert.InDelta(t, 0, m.At(3, 3), 1e-6)

	// near plane maps to depth 0, far plane to depth 1
	n := m.Mul4x1(mgl32.Vec4{0, 0, -near, 1})
	f := m.Mul4x1(mgl32.Vec4{0, 0, -far, 1})
	assert.InDelta(t, 0, n.Z()/n.W(), 1e-5)
	assert.InDelta(t, 1, f.Z()/f.W(), 1e-5)
}

func TestOrthographicMapsBoundsToClipEdges(t *testing.T) {
	m := Orthographic(-4, 4, -2, 2, 0.1, 100)

	corner := m.Mul4x1(mgl32.Vec4{4, 2, -0.1, 1})
	assert.InDelta(t, 1, corner.X(), 1e-5)
	assert.InDelta(t, 1, corner.Y(), 1e-5)
	assert.InDelta(t, 0, corner.Z(), 1e-5)

	far := m.Mul4x1(mgl32.Vec4{-4, -2, -100, 1})
	assert.InDelta(t, -1, far.X(), 1e-5)
	assert.InDelta(t, -1, far.Y(), 1e-5)
	assert.InDelta(t, 1, far.Z(), 1e-5)
}

func TestModelMatrixAppliesScaleRotationTranslation(t *testing.T) {
	rot := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	m := ModelMatrix(mgl32.Vec3{1, 2, 3}, rot, mgl32.Vec3{2, 2, 2})

	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	// scale to (2,0,0), rotate +90 about Y to (0,0,-2), translate.
	assert.True(t, p.ApproxEqualThreshold(mgl32.Vec3{1, 2, 1}, 1e-5), "got %v", p)
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-10, 350},
		{-720, 0},
		{-1e-9, 0},
	}
	for _, tt := range tests {
		got := WrapDegrees(tt.in)
		assert.InDelta(t, tt.want, got, 1e-3, "WrapDegrees(%v)", tt.in)
		assert.GreaterOrEqual(t, got, float32(0))
		assert.Less(t, got, float32(360))
	}
}

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(2), Lerp(2, 6, 0))
	assert.Equal(t, float32(6), Lerp(2, 6, 1))
	assert.Equal(t, float32(4), Lerp(2, 6, 0.5))
}

func TestPutFloat32s(t *testing.T) {
	buf := make([]byte, 8)
	end := PutFloat32s(buf, 0, 1, -2)
	assert.Equal(t, 8, end)
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3F, 0x00, 0x00, 0x00, 0xC0}, buf)
}

func TestDecodeTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	tex, err := DecodeTexture(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint32(2), tex.Width)
	assert.Equal(t, uint32(1), tex.Height)
	assert.Len(t, tex.Pixels, 8)

	avg := tex.Average()
	assert.InDelta(t, 0.5, avg[0], 1e-3)
	assert.InDelta(t, 0, avg[1], 1e-3)
	assert.InDelta(t, 0.5, avg[2], 1e-3)
	assert.InDelta(t, 1, avg[3], 1e-3)

	_, err = DecodeTexture([]byte("not an image"))
	assert.Error(t, err)
}

func TestWhiteTextureAndCoalesce(t *testing.T) {
	white := WhiteTexture()
	assert.Equal(t, [4]float32{1, 1, 1, 1}, white.Average())
	assert.Equal(t, 3, Coalesce(0, 0, 3, 4))
	assert.Equal(t, "", Coalesce("", ""))
}
