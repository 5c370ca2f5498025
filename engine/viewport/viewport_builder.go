package viewport

import (
	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewport/engine/object"
)

// ViewPortBuilderOption is a functional option for configuring a viewPort.
type ViewPortBuilderOption func(v *viewPort)

// WithCameraOptions passes options to the camera.
//
// Parameters:
//   - options: camera builder options
//
// Returns:
//   - ViewPortBuilderOption: option function to apply
func WithCameraOptions(options ...camera.CameraBuilderOption) ViewPortBuilderOption {
	return func(v *viewPort) {
		v.cameraOptions = append(v.cameraOptions, options...)
	}
}

// WithFlyOptions passes options to the fly controller.
func WithFlyOptions(options ...camera.FlyControllerOption) ViewPortBuilderOption {
	return func(v *viewPort) {
		v.flyOptions = append(v.flyOptions, options...)
	}
}

// WithCubeBob passes bobbing options to the demo cube.
func WithCubeBob(options ...object.BobOption) ViewPortBuilderOption {
	return func(v *viewPort) {
		v.bobOptions = append(v.bobOptions, options...)
	}
}

// WithCaptured starts the view port with input capture on.
func WithCaptured(captured bool) ViewPortBuilderOption {
	return func(v *viewPort) {
		v.captured = captured
	}
}

// WithLightTexture sets the texture drawn on the light cube. Without it the cube samples the white
// fallback and shows its vertex colors.
//
// Parameters:
//   - texture: decoded RGBA pixels, for example from common.LoadTexture
//
// Returns:
//   - ViewPortBuilderOption: option function to apply
func WithLightTexture(texture *common.TextureStagingData) ViewPortBuilderOption {
	return func(v *viewPort) {
		v.lightTexture = texture
	}
}
