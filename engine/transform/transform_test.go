package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-5), "want %v got %v", want, got)
}

func TestNewDefaults(t *testing.T) {
	tr := New()
	assert.Equal(t, mgl32.Vec3{}, tr.Position())
	assert.Equal(t, mgl32.QuatIdent(), tr.Rotation())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, tr.Scale())
	vecNear(t, mgl32.Vec3{0, 0, -1}, tr.Front())
	vecNear(t, mgl32.Vec3{1, 0, 0}, tr.Right())
	vecNear(t, mgl32.Vec3{0, 1, 0}, tr.Up())
}

func TestAxesFollowRotation(t *testing.T) {
	tr := New()
	_ = tr.Front()

	tr.SetRotation(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}))
	vecNear(t, mgl32.Vec3{-1, 0, 0}, tr.Front())
	vecNear(t, mgl32.Vec3{0, 0, -1}, tr.Right())
	vecNear(t, mgl32.Vec3{0, 1, 0}, tr.Up())

	tr.Rotate(mgl32.QuatRotate(mgl32.DegToRad(-90), mgl32.Vec3{0, 1, 0}))
	vecNear(t, mgl32.Vec3{0, 0, -1}, tr.Front())
}

func TestAxesStayOrthonormal(t *testing.T) {
	tr := New()
	tr.SetRotation(mgl32.QuatRotate(0.7, mgl32.Vec3{1, 2, 3}.Normalize()))
	f, r, u := tr.Front(), tr.Right(), tr.Up()
	assert.InDelta(t, 1, f.Len(), 1e-5)
	assert.InDelta(t, 1, r.Len(), 1e-5)
	assert.InDelta(t, 1, u.Len(), 1e-5)
	assert.InDelta(t, 0, f.Dot(r), 1e-5)
	assert.InDelta(t, 0, f.Dot(u), 1e-5)
	assert.InDelta(t, 0, r.Dot(u), 1e-5)
}

func TestSetScaleRejectsZero(t *testing.T) {
	tr := New()
	require.NoError(t, tr.SetScale(mgl32.Vec3{2, 3, 4}))
	assert.ErrorIs(t, tr.SetScale(mgl32.Vec3{1, 0, 1}), ErrZeroScale)
	assert.Equal(t, mgl32.Vec3{2, 3, 4}, tr.Scale())
}

func TestMovement(t *testing.T) {
	tr := New()
	tr.MoveForward(2, 0.5)
	vecNear(t, mgl32.Vec3{0, 0, -1}, tr.Position())
	tr.MoveBackward(2, 0.5)
	tr.MoveRight(1, 1)
	vecNear(t, mgl32.Vec3{1, 0, 0}, tr.Position())
	tr.MoveLeft(1, 1)
	tr.MoveUp(3, 1)
	tr.MoveDown(1, 1)
	vecNear(t, mgl32.Vec3{0, 2, 0}, tr.Position())

	tr.SetRotation(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0}))
	tr.MoveGlobalUp(1, 1)
	tr.MoveGlobalDown(4, 0.5)
	vecNear(t, mgl32.Vec3{0, 1, 0}, tr.Position())
}

func TestMatrices(t *testing.T) {
	tr := New()
	tr.SetPosition(mgl32.Vec3{1, 2, 3})
	require.NoError(t, tr.SetScale(mgl32.Vec3{2, 2, 2}))

	p := tr.ModelMatrix().Mul4x1(mgl32.Vec4{1, 1, 1, 1}).Vec3()
	vecNear(t, mgl32.Vec3{3, 4, 5}, p)

	o := tr.PositionMatrix().Mul4x1(mgl32.Vec4{1, 2, 3, 1}).Vec3()
	vecNear(t, mgl32.Vec3{}, o)
}
