package raster

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/mesh"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-viewport/engine/scene"
)

// Mesh is an uploaded mesh kept in memory for the CPU pass.
type Mesh struct {
	Label    string
	Vertices []mesh.Vertex
	Indices  []uint16
}

func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// Device decodes uploads back into vertices and hands out materials without GPU state.
type Device struct{}

var _ scene.Device = &Device{}

func (d *Device) UploadMesh(label string, vertexData, indexData []byte, indexCount int) (mesh.Buffers, error) {
	vertices, err := mesh.UnmarshalVertices(vertexData)
	if err != nil {
		return nil, fmt.Errorf("raster: upload %s: %w", label, err)
	}
	indices, err := mesh.UnmarshalIndices(indexData, indexCount)
	if err != nil {
		return nil, fmt.Errorf("raster: upload %s: %w", label, err)
	}
	for _, i := range indices {
		if int(i) >= len(vertices) {
			return nil, fmt.Errorf("raster: upload %s: index %d out of range of %d vertices", label, i, len(vertices))
		}
	}
	return &Mesh{Label: label, Vertices: vertices, Indices: indices}, nil
}

func (d *Device) CreateMaterial(kind pipeline.Kind, texture *common.TextureStagingData) (material.Material, error) {
	return material.NewMaterial(
		material.WithName(kind.Key()),
		material.WithPipeline(kind),
		material.WithTexture(texture),
	), nil
}
