package camera

import "github.com/Carmen-Shannon/oxy-viewport/common"

// KeyState reports which keys are held during the current step.
type KeyState interface {
	KeyHeld(key common.Key) bool
}

// FlyController moves a camera along its local axes from held keys.
// W/S move forward and back, A/D strafe, Space rises and LeftShift sinks along world Y.
type FlyController interface {
	// Speed returns the movement speed in world units per second.
	//
	// Returns:
	//   - float32: the movement speed
	Speed() float32

	// SetSpeed sets the movement speed in world units per second.
	//
	// Parameters:
	//   - speed: the new speed
	SetSpeed(speed float32)

	// Apply moves cam according to the held keys for a step of dt seconds.
	//
	// Parameters:
	//   - cam: the camera to move
	//   - keys: the key state for this step
	//   - dt: step length in seconds
	//
	// Returns:
	//   - bool: true if any movement key was held
	Apply(cam Camera, keys KeyState, dt float32) bool
}

type flyControllerImpl struct {
	speed float32
}

var _ FlyController = &flyControllerImpl{}

// FlyControllerOption is a functional option for configuring a FlyController.
type FlyControllerOption func(*flyControllerImpl)

// WithSpeed sets the movement speed in world units per second.
//
// Parameters:
//   - speed: movement speed
//
// Returns:
//   - FlyControllerOption: functional option to set the speed
func WithSpeed(speed float32) FlyControllerOption {
	return func(f *flyControllerImpl) {
		f.speed = speed
	}
}

// NewFlyController creates a FlyController moving at 2.5 units per second by default.
func NewFlyController(options ...FlyControllerOption) FlyController {
	f := &flyControllerImpl{speed: 2.5}
	for _, option := range options {
		option(f)
	}
	return f
}

func (f *flyControllerImpl) Speed() float32 {
	return f.speed
}

func (f *flyControllerImpl) SetSpeed(speed float32) {
	f.speed = speed
}

func (f *flyControllerImpl) Apply(cam Camera, keys KeyState, dt float32) bool {
	t := cam.Transform()
	moved := false
	step := func(key common.Key, move func(speed, dt float32)) {
		if keys.KeyHeld(key) {
			move(f.speed, dt)
			moved = true
		}
	}
	step(common.KeyW, t.MoveForward)
	step(common.KeyS, t.MoveBackward)
	step(common.KeyA, t.MoveLeft)
	step(common.KeyD, t.MoveRight)
	step(common.KeySpace, t.MoveGlobalUp)
	step(common.KeyLeftShift, t.MoveGlobalDown)
	return moved
}
