package viewport

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// NormalizeCursor maps a window position (top-left origin) to a camera-relative world direction.
// The translation of the view is dropped, so the result is a direction, not a point. Two results
// differ by the world-space offset between the two pixels on the near plane.
//
// Parameters:
//   - p: the cursor position in pixels
//
// Returns:
//   - mgl32.Vec3: the world-space direction through p
func (v *viewPort) NormalizeCursor(p mgl32.Vec2) mgl32.Vec3 {
	ndcX := 2*p.X()/float32(v.width) - 1
	ndcY := 1 - 2*p.Y()/float32(v.height)
	clip := mgl32.Vec4{ndcX, ndcY, -1, 1}

	eye := v.projection.Inv().Mul4x1(clip)
	eye = mgl32.Vec4{eye.X(), eye.Y(), -1, 0}

	world := v.camera.ViewMatrix().Inv().Mul4x1(eye)
	return world.Vec3()
}

// Project maps a world point to window coordinates (top-left origin) and window depth.
func (v *viewPort) Project(world mgl32.Vec3) mgl32.Vec3 {
	win := mgl32.Project(world, v.camera.ViewMatrix(), v.projection, 0, 0, v.width, v.height)
	win[1] = float32(v.height) - win.Y()
	return win
}

// Unproject maps a window position (top-left origin) and window depth back to a world point.
//
// Parameters:
//   - screen: the window position in pixels
//   - depth: the window depth as produced by Project
//
// Returns:
//   - mgl32.Vec3: the world point
//   - error: error if the view-projection is not invertible
func (v *viewPort) Unproject(screen mgl32.Vec2, depth float32) (mgl32.Vec3, error) {
	win := mgl32.Vec3{screen.X(), float32(v.height) - screen.Y(), depth}
	world, err := mgl32.UnProject(win, v.camera.ViewMatrix(), v.projection, 0, 0, v.width, v.height)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("viewport: unproject %v: %w", screen, err)
	}
	return world, nil
}

// drag moves the light by the world offset between the last recorded cursor position and cur.
func (v *viewPort) drag(cur mgl32.Vec2) {
	diff := v.lastMouse.Sub(cur)
	if diff.Len() <= 0 {
		return
	}
	delta := v.NormalizeCursor(v.lastMouse).Sub(v.NormalizeCursor(v.lastMouse.Add(diff)))
	t := v.light.Transform()
	pos := t.Position()
	t.SetPosition(mgl32.Vec3{pos.X() + delta.X(), pos.Y() + delta.Y(), pos.Z()})
	v.lastMouse = cur
}
