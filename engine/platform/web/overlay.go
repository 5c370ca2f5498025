package web

import "github.com/hajimehoshi/ebiten/v2"

// overlay draws a debug UI over a finished frame.
type overlay interface {
	// Render runs build inside a UI frame and draws the result onto screen.
	Render(screen *ebiten.Image, build func())

	// Layout tells the UI the screen size.
	Layout(width, height int)

	// WantsInput reports whether the UI is under the pointer or being dragged.
	WantsInput() bool
}
