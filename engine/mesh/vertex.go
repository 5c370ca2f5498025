package mesh

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-viewport/common"
)

// VertexStride is the size in bytes of one marshaled Vertex.
const VertexStride = 44

// Vertex is the per-vertex layout shared by every pipeline.
// Layout: position at 0, color at 12, normal at 24, uv at 36 (44 bytes, tightly packed).
type Vertex struct {
	Position [3]float32
	Color    [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// Size returns the marshaled size of the vertex in bytes.
//
// Returns:
//   - int: always VertexStride
func (v *Vertex) Size() int {
	return VertexStride
}

// MarshalTo writes the vertex into dst at offset.
//
// Parameters:
//   - dst: destination buffer with at least VertexStride bytes past offset
//   - offset: starting byte offset
//
// Returns:
//   - int: the offset after the vertex
func (v *Vertex) MarshalTo(dst []byte, offset int) int {
	offset = common.PutFloat32s(dst, offset, v.Position[:]...)
	offset = common.PutFloat32s(dst, offset, v.Color[:]...)
	offset = common.PutFloat32s(dst, offset, v.Normal[:]...)
	return common.PutFloat32s(dst, offset, v.UV[:]...)
}

// MarshalVertices packs vertices into one contiguous little-endian buffer.
func MarshalVertices(vertices []Vertex) []byte {
	buf := make([]byte, len(vertices)*VertexStride)
	off := 0
	for i := range vertices {
		off = vertices[i].MarshalTo(buf, off)
	}
	return buf
}

// UnmarshalVertices decodes a buffer written by MarshalVertices. Backends that draw on the CPU
// use it to recover the geometry from an upload.
//
// Parameters:
//   - data: marshaled vertices
//
// Returns:
//   - []Vertex: the decoded vertices
//   - error: error if data is not a whole number of vertices
func UnmarshalVertices(data []byte) ([]Vertex, error) {
	if len(data)%VertexStride != 0 {
		return nil, fmt.Errorf("mesh: vertex data of %d bytes is not a multiple of %d", len(data), VertexStride)
	}
	out := make([]Vertex, len(data)/VertexStride)
	f := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
	}
	for i := range out {
		base := i * VertexStride
		v := &out[i]
		for j := 0; j < 3; j++ {
			v.Position[j] = f(base + j*4)
			v.Color[j] = f(base + 12 + j*4)
			v.Normal[j] = f(base + 24 + j*4)
		}
		v.UV[0] = f(base + 36)
		v.UV[1] = f(base + 40)
	}
	return out, nil
}

// UnmarshalIndices decodes count little-endian uint16 indices, ignoring alignment padding.
//
// Parameters:
//   - data: packed indices
//   - count: the number of indices
//
// Returns:
//   - []uint16: the indices
//   - error: error if data is too short
func UnmarshalIndices(data []byte, count int) ([]uint16, error) {
	if len(data) < count*2 {
		return nil, fmt.Errorf("mesh: %d index bytes cannot hold %d indices", len(data), count)
	}
	out := make([]uint16, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return out, nil
}
