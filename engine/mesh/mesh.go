// Package mesh holds vertex/index geometry and its upload-once GPU state.
package mesh

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrAlreadyUploaded is returned when Upload is called on a mesh that already has GPU buffers.
var ErrAlreadyUploaded = errors.New("mesh: already uploaded")

// Buffers is the backend-owned GPU state of an uploaded mesh.
type Buffers interface {
	// IndexCount returns the number of indices to draw.
	IndexCount() int
}

// Uploader transfers mesh data to a backend.
type Uploader interface {
	// UploadMesh creates vertex and index buffers for the given data.
	//
	// Parameters:
	//   - label: debug label
	//   - vertexData: marshaled vertices, VertexStride bytes each
	//   - indexData: little-endian uint16 indices, padded to a multiple of 4 bytes
	//   - indexCount: number of indices in indexData
	//
	// Returns:
	//   - Buffers: the backend buffers
	//   - error: error if the backend failed to create the buffers
	UploadMesh(label string, vertexData, indexData []byte, indexCount int) (Buffers, error)
}

// Mesh is indexed triangle geometry. Its GPU buffers start absent and are set exactly once.
type Mesh struct {
	label    string
	vertices []Vertex
	indices  []uint16
	buffers  Buffers
}

// New creates a mesh that has not been uploaded yet.
//
// Parameters:
//   - label: debug label used for GPU resources
//   - vertices: vertex data
//   - indices: triangle list indices into vertices
//
// Returns:
//   - *Mesh: the new mesh
func New(label string, vertices []Vertex, indices []uint16) *Mesh {
	return &Mesh{label: label, vertices: vertices, indices: indices}
}

// Label returns the debug label.
func (m *Mesh) Label() string {
	return m.label
}

// Vertices returns the CPU-side vertices.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Indices returns the CPU-side indices.
func (m *Mesh) Indices() []uint16 {
	return m.indices
}

// Uploaded reports whether the mesh has GPU buffers.
func (m *Mesh) Uploaded() bool {
	return m.buffers != nil
}

// Upload sends the mesh to u and stores the resulting buffers.
//
// Parameters:
//   - u: the backend uploader
//
// Returns:
//   - error: ErrAlreadyUploaded on a second call, or the uploader's error
func (m *Mesh) Upload(u Uploader) error {
	if m.buffers != nil {
		return ErrAlreadyUploaded
	}
	b, err := u.UploadMesh(m.label, MarshalVertices(m.vertices), m.indexBytes(), len(m.indices))
	if err != nil {
		return fmt.Errorf("mesh %q: %w", m.label, err)
	}
	m.buffers = b
	return nil
}

// Buffers returns the uploaded GPU buffers. Drawing a mesh that was never uploaded is a
// broken call sequence, so this panics instead of returning nil.
//
// Returns:
//   - Buffers: the uploaded buffers
func (m *Mesh) Buffers() Buffers {
	if m.buffers == nil {
		panic("mesh: not uploaded")
	}
	return m.buffers
}

// indexBytes packs the indices as little-endian uint16, padded to 4-byte alignment for buffer writes.
func (m *Mesh) indexBytes() []byte {
	n := len(m.indices) * 2
	buf := make([]byte, (n+3)&^3)
	for i, idx := range m.indices {
		binary.LittleEndian.PutUint16(buf[i*2:], idx)
	}
	return buf
}
