package camera

import "github.com/chewxy/math32"

const (
	// MinFov is the narrowest field of view in degrees a zoom can reach.
	MinFov float32 = 1
	// MaxFov is the widest field of view in degrees a zoom can reach.
	MaxFov float32 = 65
)

// Frustum holds the camera's clipping planes and vertical field of view in degrees.
type Frustum struct {
	Near float32
	Far  float32
	Fov  float32
}

// DefaultFrustum returns the frustum every camera starts with: fov 45, near 0.1, far 100.
func DefaultFrustum() Frustum {
	return Frustum{Near: 0.1, Far: 100, Fov: 45}
}

// Zoom adds offset to the field of view and clamps the result to [MinFov, MaxFov].
//
// Parameters:
//   - offset: degrees to add, negative zooms in
func (f *Frustum) Zoom(offset float32) {
	f.Fov = math32.Max(MinFov, math32.Min(MaxFov, f.Fov+offset))
}
