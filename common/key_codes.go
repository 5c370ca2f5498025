package common

// Key is a platform-neutral key code. Values match GLFW key codes, which use ASCII for printable keys,
// so the native window can forward GLFW codes unchanged. Other backends translate into these values.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key int32

const (
	KeyW     Key = 87 // W key (ASCII)
	KeyA     Key = 65 // A key (ASCII)
	KeyS     Key = 83 // S key (ASCII)
	KeyD     Key = 68 // D key (ASCII)
	KeyQ     Key = 81 // Q key (ASCII)
	KeyE     Key = 69 // E key (ASCII)
	KeySpace Key = 32 // Spacebar (ASCII)

	KeyEsc       Key = 256 // Escape key (GLFW)
	KeyBackspace Key = 259 // Backspace key (GLFW)

	KeyF1 Key = 290 // F1 key (GLFW)
	KeyF2 Key = 291 // F2 key (GLFW)
	KeyF3 Key = 292 // F3 key (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift    Key = 340 // Left Shift (GLFW)
	KeyLeftControl  Key = 341 // Left Control (GLFW)
	KeyRightShift   Key = 344 // Right Shift (GLFW)
	KeyRightControl Key = 345 // Right Control (GLFW)
)

// MouseButton identifies a mouse button. Values match GLFW mouse button codes.
type MouseButton int32

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)
