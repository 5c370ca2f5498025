package scene

import (
	"unsafe"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is a per-object uniform block ready for upload.
type Uniforms interface {
	// Size returns the size of the block in bytes.
	Size() int

	// Marshal serializes the block into a little-endian byte buffer.
	Marshal() []byte
}

// ObjUniforms is the uniform block of the lit pipeline.
// Matches the WGSL ObjUniforms struct layout exactly.
// Size: 160 bytes (two mat4x4<f32>, then vec3 + f32 twice).
type ObjUniforms struct {
	PV       mgl32.Mat4 // offset 0: projection * view (64 bytes)
	Model    mgl32.Mat4 // offset 64: model matrix (64 bytes)
	LightPos mgl32.Vec3 // offset 128: light world position (12 bytes)
	Ambient  float32    // offset 140: ambient intensity (4 bytes)
	ViewPos  mgl32.Vec3 // offset 144: camera world position (12 bytes)
	Specular float32    // offset 156: specular intensity (4 bytes)
}

// Size returns the size of the ObjUniforms struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (u *ObjUniforms) Size() int {
	return int(unsafe.Sizeof(*u))
}

// Marshal serializes the ObjUniforms struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 160-byte buffer ready for GPU upload.
func (u *ObjUniforms) Marshal() []byte {
	buf := make([]byte, u.Size())
	off := common.PutFloat32s(buf, 0, u.PV[:]...)
	off = common.PutFloat32s(buf, off, u.Model[:]...)
	off = common.PutFloat32s(buf, off, u.LightPos[:]...)
	off = common.PutFloat32s(buf, off, u.Ambient)
	off = common.PutFloat32s(buf, off, u.ViewPos[:]...)
	common.PutFloat32s(buf, off, u.Specular)
	return buf
}

// LightUniforms is the uniform block of the unlit pipeline.
// Size: 128 bytes (two mat4x4<f32>).
type LightUniforms struct {
	PV    mgl32.Mat4 // offset 0: projection * view (64 bytes)
	Model mgl32.Mat4 // offset 64: model matrix (64 bytes)
}

// Size returns the size of the LightUniforms struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (u *LightUniforms) Size() int {
	return int(unsafe.Sizeof(*u))
}

// Marshal serializes the LightUniforms struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 128-byte buffer ready for GPU upload.
func (u *LightUniforms) Marshal() []byte {
	buf := make([]byte, u.Size())
	off := common.PutFloat32s(buf, 0, u.PV[:]...)
	common.PutFloat32s(buf, off, u.Model[:]...)
	return buf
}
