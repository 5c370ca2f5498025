// Package raster turns a frame's draws into flat-shaded screen triangles on the CPU. It lights
// vertices with the same model as the lit shader, culls back faces and orders triangles back to
// front, so any 2D triangle drawer can present the result.
package raster

import (
	"log"
	"slices"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/mesh"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewport/engine/scene"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// shininess is the specular exponent of the lit shader.
const shininess = 32

// Vertex is a projected vertex in pixels with a top-left origin.
type Vertex struct {
	X, Y  float32
	Color [4]float32
}

// Triangle is a screen triangle and its mean NDC depth.
type Triangle struct {
	V     [3]Vertex
	Depth float32
}

// Pass is the scene.Pass of one software frame.
type Pass struct {
	width, height float32

	uniforms scene.Uniforms
	material material.Material
	tris     []Triangle
	warned   bool
}

var _ scene.Pass = &Pass{}

// NewPass creates a pass for a target of the given size in pixels.
//
// Parameters:
//   - width: target width
//   - height: target height
//
// Returns:
//   - *Pass: the empty pass
func NewPass(width, height int) *Pass {
	return &Pass{width: float32(width), height: float32(height)}
}

func (p *Pass) WriteUniforms(m material.Material, u scene.Uniforms) {
	p.material = m
	p.uniforms = u
}

func (p *Pass) Bind(m material.Material) {
	p.material = m
}

func (p *Pass) DrawMesh(b mesh.Buffers) {
	m, ok := b.(*Mesh)
	if !ok || p.uniforms == nil {
		p.warn("[Raster] Skipping draw: buffers were not uploaded by this device or no uniforms were written")
		return
	}

	var pv, model mgl32.Mat4
	var light *scene.ObjUniforms
	switch u := p.uniforms.(type) {
	case *scene.ObjUniforms:
		pv, model, light = u.PV, u.Model, u
	case *scene.LightUniforms:
		pv, model = u.PV, u.Model
	default:
		p.warn("[Raster] Skipping draw: unknown uniform block")
		return
	}

	tint := [4]float32{1, 1, 1, 1}
	if p.material != nil && p.material.Texture() != nil {
		tint = p.material.Texture().Average()
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		var tri Triangle
		var ndc [3]mgl32.Vec3
		visible := true
		for k := 0; k < 3; k++ {
			v := m.Vertices[m.Indices[i+k]]
			world := model.Mul4x1(mgl32.Vec3(v.Position).Vec4(1))
			clip := pv.Mul4x1(world)
			if clip.W() <= common.Epsilon {
				visible = false
				break
			}
			ndc[k] = clip.Vec3().Mul(1 / clip.W())

			base := [4]float32{v.Color[0] * tint[0], v.Color[1] * tint[1], v.Color[2] * tint[2], tint[3]}
			if light != nil {
				base = shade(base, world.Vec3(), model.Mul4x1(mgl32.Vec3(v.Normal).Vec4(0)).Vec3(), light)
			}
			tri.V[k] = Vertex{
				X:     (ndc[k].X() + 1) * 0.5 * p.width,
				Y:     (1 - ndc[k].Y()) * 0.5 * p.height,
				Color: base,
			}
			tri.Depth += ndc[k].Z() / 3
		}
		if !visible || !frontFacing(ndc) {
			continue
		}
		p.tris = append(p.tris, tri)
	}
}

// Triangles returns the visible triangles, farthest first. Triangles at equal depth keep their
// submission order.
//
// Returns:
//   - []Triangle: the sorted triangles
func (p *Pass) Triangles() []Triangle {
	slices.SortStableFunc(p.tris, func(a, b Triangle) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		default:
			return 0
		}
	})
	return p.tris
}

func (p *Pass) warn(msg string) {
	if !p.warned {
		p.warned = true
		log.Print(msg)
	}
}

// frontFacing reports whether the triangle winds counter-clockwise in NDC.
func frontFacing(ndc [3]mgl32.Vec3) bool {
	ax, ay := ndc[1].X()-ndc[0].X(), ndc[1].Y()-ndc[0].Y()
	bx, by := ndc[2].X()-ndc[0].X(), ndc[2].Y()-ndc[0].Y()
	return ax*by-ay*bx > 0
}

// shade applies ambient, diffuse and specular light to base at one vertex.
func shade(base [4]float32, world, normal mgl32.Vec3, u *scene.ObjUniforms) [4]float32 {
	n := normalize(normal)
	toLight := normalize(u.LightPos.Sub(world))
	toView := normalize(u.ViewPos.Sub(world))
	incident := toLight.Mul(-1)
	reflected := incident.Sub(n.Mul(2 * n.Dot(incident)))

	diffuse := math32.Max(n.Dot(toLight), 0)
	specular := math32.Pow(math32.Max(toView.Dot(reflected), 0), shininess) * u.Specular
	k := u.Ambient + diffuse + specular
	return [4]float32{
		clamp01(base[0] * k),
		clamp01(base[1] * k),
		clamp01(base[2] * k),
		base[3],
	}
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() <= common.Epsilon {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}
