package camera

// ProjectionKind selects the matrix formula used by Camera.ProjectionMatrix.
type ProjectionKind int

const (
	// KindPerspective is a right-handed perspective projection.
	KindPerspective ProjectionKind = iota
	// KindOrthographic is an orthographic projection with bounds derived from the aspect ratio.
	KindOrthographic
	// KindOrthographicBounds is an orthographic projection with explicit side bounds.
	KindOrthographicBounds
)

// String returns a short name for the kind.
func (k ProjectionKind) String() string {
	switch k {
	case KindPerspective:
		return "perspective"
	case KindOrthographic:
		return "orthographic"
	case KindOrthographicBounds:
		return "orthographic_bounds"
	default:
		return "unknown"
	}
}

// Projection is a tagged projection mode. Only the fields relevant to Kind are read.
type Projection struct {
	Kind   ProjectionKind
	Aspect float32

	Left, Right, Bottom, Top float32
}

// Perspective returns a perspective projection for the given width/height ratio.
//
// Parameters:
//   - aspect: viewport width divided by height
//
// Returns:
//   - Projection: the perspective mode
func Perspective(aspect float32) Projection {
	return Projection{Kind: KindPerspective, Aspect: aspect}
}

// Orthographic returns an orthographic projection spanning [-aspect, aspect] x [-1, 1]
// before the zoom factor is applied.
//
// Parameters:
//   - aspect: viewport width divided by height
//
// Returns:
//   - Projection: the orthographic mode
func Orthographic(aspect float32) Projection {
	return Projection{Kind: KindOrthographic, Aspect: aspect}
}

// OrthographicBounds returns an orthographic projection with explicit bounds.
// The zoom factor is applied to these bounds the same way as for Orthographic.
func OrthographicBounds(left, right, bottom, top float32) Projection {
	return Projection{Kind: KindOrthographicBounds, Left: left, Right: right, Bottom: bottom, Top: top}
}
