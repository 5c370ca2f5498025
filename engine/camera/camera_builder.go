package camera

import "github.com/go-gl/mathgl/mgl32"

type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's starting position.
//
// Parameters:
//   - p: world-space position
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(p mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.transform.SetPosition(p)
	}
}

// WithFrustum replaces the camera's frustum. The field of view is clamped like a zoom.
//
// Parameters:
//   - f: the frustum to use
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's frustum
func WithFrustum(f Frustum) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.frustum = f
		c.frustum.Zoom(0)
	}
}

// WithSensitivity sets the degrees turned per unit of mouse motion.
//
// Parameters:
//   - sensitivity: turn sensitivity
//
// Returns:
//   - CameraBuilderOption: a function that sets the sensitivity
func WithSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.sensitivity = sensitivity
	}
}

// WithPitchLimit sets the largest absolute pitch in degrees.
func WithPitchLimit(limit float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitchLimit = limit
	}
}

// WithOrientation sets the starting pitch and yaw in degrees. Yaw is wrapped and pitch clamped.
func WithOrientation(pitch, yaw float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitch = pitch
		c.yaw = yaw
		c.Turn(0, 0)
	}
}
