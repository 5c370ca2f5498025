package mesh

import "github.com/go-gl/mathgl/mgl32"

type face struct {
	corners [4]mgl32.Vec3
	color   mgl32.Vec3
}

// Each face lists its corners counter-clockwise seen from outside the cube.
var cubeFaces = [6]face{
	{[4]mgl32.Vec3{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}, mgl32.Vec3{1, 0, 0}},
	{[4]mgl32.Vec3{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}, mgl32.Vec3{0, 1, 0}},
	{[4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}, mgl32.Vec3{0, 0, 1}},
	{[4]mgl32.Vec3{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}, mgl32.Vec3{1, 1, 0}},
	{[4]mgl32.Vec3{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}, mgl32.Vec3{1, 0, 1}},
	{[4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}, mgl32.Vec3{0, 1, 1}},
}

// quadUVs maps bottom-left, bottom-right, top-right, top-left with v pointing down.
var quadUVs = [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// Cube returns a unit cube centered on the origin with one solid color per face.
//
// Returns:
//   - *Mesh: a mesh labeled "cube", not yet uploaded
func Cube() *Mesh {
	v, i := cubeData(false)
	return New("cube", v, i)
}

// TexturedCube returns a unit cube with white vertices so the bound texture shows unmodified.
//
// Returns:
//   - *Mesh: a mesh labeled "textured_cube", not yet uploaded
func TexturedCube() *Mesh {
	v, i := cubeData(true)
	return New("textured_cube", v, i)
}

func cubeData(white bool) ([]Vertex, []uint16) {
	vertices := make([]Vertex, 0, len(cubeFaces)*4)
	indices := make([]uint16, 0, len(cubeFaces)*6)
	for _, f := range cubeFaces {
		base := uint16(len(vertices))
		normal := faceNormal(f.corners[0], f.corners[1], f.corners[2])
		color := f.color
		if white {
			color = mgl32.Vec3{1, 1, 1}
		}
		for c, p := range f.corners {
			vertices = append(vertices, Vertex{
				Position: p,
				Color:    color,
				Normal:   normal,
				UV:       quadUVs[c],
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

// faceNormal returns the unit normal of the triangle (a, b, c) wound counter-clockwise.
func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
