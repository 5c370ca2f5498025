package common

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the tolerance used for float32 comparisons throughout the engine.
const Epsilon = 1e-5

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), int(size)*len(data))
}

// Perspective creates a right-handed perspective projection matrix with a [0, 1] depth range,
// matching WebGPU clip space. The result is column-major (mgl32 layout).
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	h := 1 / math32.Tan(fovY*0.5)
	w := h / aspect
	r := far / (near - far)
	return mgl32.Mat4{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, r, -1,
		0, 0, r * near, 0,
	}
}

// Orthographic creates a right-handed orthographic projection matrix with a [0, 1] depth range.
//
// Parameters:
//   - left, right: horizontal view volume bounds
//   - bottom, top: vertical view volume bounds
//   - near, far: clipping plane distances
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func Orthographic(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	rw := 1 / (right - left)
	rh := 1 / (top - bottom)
	r := 1 / (near - far)
	return mgl32.Mat4{
		2 * rw, 0, 0, 0,
		0, 2 * rh, 0, 0,
		0, 0, r, 0,
		-(left + right) * rw, -(top + bottom) * rh, r * near, 1,
	}
}

// ModelMatrix builds a translation * rotation * scale matrix.
//
// Parameters:
//   - position: translation in world space
//   - rotation: orientation quaternion (expected to be normalized)
//   - scale: per-axis scale factors
//
// Returns:
//   - mgl32.Mat4: the model matrix
func ModelMatrix(position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(rotation.Mat4()).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// WrapDegrees wraps an angle into [0, 360).
//
// Parameters:
//   - deg: the angle in degrees, any magnitude or sign
//
// Returns:
//   - float32: the equivalent angle in [0, 360)
func WrapDegrees(deg float32) float32 {
	w := math32.Mod(deg, 360)
	if w < 0 {
		w += 360
	}
	// Mod of a tiny negative value can round back up to exactly 360.
	if w >= 360 {
		w = 0
	}
	return w
}

// Lerp linearly interpolates between a and b by t.
//
// Parameters:
//   - a: the start value
//   - b: the end value
//   - t: the interpolation factor, 0 yields a and 1 yields b
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// PutFloat32s writes the little-endian IEEE-754 bits of each value into dst starting at offset.
// dst must have room for len(values)*4 bytes past offset.
//
// Parameters:
//   - dst: destination byte buffer
//   - offset: starting byte offset in dst
//   - values: the float32 values to encode
//
// Returns:
//   - int: the offset immediately after the last written value
func PutFloat32s(dst []byte, offset int, values ...float32) int {
	for _, v := range values {
		binary.LittleEndian.PutUint32(dst[offset:], math.Float32bits(v))
		offset += 4
	}
	return offset
}
