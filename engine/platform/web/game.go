package web

import (
	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/input"
	"github.com/Carmen-Shannon/oxy-viewport/engine/platform"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// loop is the platform.Loop of the Ebitengine game. A browser page cannot quit itself, so Exit
// only stops the game where supportsExit holds.
type loop struct {
	redraw bool
	exited bool
}

var _ platform.Loop = &loop{}

func (l *loop) RequestRedraw() {
	l.redraw = true
}

func (l *loop) Exit() {
	if supportsExit {
		l.exited = true
	}
}

func (l *loop) SupportsExit() bool {
	return supportsExit
}

// game adapts the handler hooks to ebiten.Game. Ebitengine calls Update at the target tick rate,
// so every Update is a resume at the requested time.
type game struct {
	backend *Backend
	handler platform.Handler
	loop    *loop
	input   *inputTracker
	started bool
	width   int
	height  int
}

var _ ebiten.Game = &game{}

func newGame(b *Backend, h platform.Handler) *game {
	l := &loop{}
	h.Attach(l)
	return &game{
		backend: b,
		handler: h,
		loop:    l,
		input:   &inputTracker{focused: true},
	}
}

func (g *game) Update() error {
	if g.backend.cursor.regrabbed {
		g.backend.cursor.regrabbed = false
		g.input.hasLast = false
	}
	g.input.apply(pollInput(), g.handler.Input())

	cause := platform.CauseResumeTimeReached
	if !g.started {
		g.started = true
		cause = platform.CauseInit
	}
	g.handler.NewEvents(cause)
	if ebiten.IsWindowBeingClosed() {
		g.handler.CloseRequested()
	}
	g.handler.AboutToWait()

	if g.loop.exited || (supportsExit && g.handler.Exiting()) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.loop.redraw || g.loop.exited {
		return
	}
	g.loop.redraw = false
	g.backend.screen = screen
	g.handler.RedrawRequested()
	g.backend.screen = nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.handler.Resized(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// inputFrame is the Ebitengine input state observed by one Update.
type inputFrame struct {
	pressed  []ebiten.Key
	released []ebiten.Key
	down     []ebiten.MouseButton
	up       []ebiten.MouseButton
	x, y     int
	wheelX   float64
	wheelY   float64
	focused  bool
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

func pollInput() inputFrame {
	f := inputFrame{
		pressed:  inpututil.AppendJustPressedKeys(nil),
		released: inpututil.AppendJustReleasedKeys(nil),
		focused:  ebiten.IsFocused(),
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			f.down = append(f.down, b)
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			f.up = append(f.up, b)
		}
	}
	f.x, f.y = ebiten.CursorPosition()
	f.wheelX, f.wheelY = ebiten.Wheel()
	return f
}

// inputTracker turns polled state into input events. Ebitengine only reports positions, so motion
// is the difference between two polls.
type inputTracker struct {
	lastX, lastY int
	hasLast      bool
	focused      bool
}

func (t *inputTracker) apply(f inputFrame, s *input.State) {
	if t.focused && !f.focused {
		s.ReleaseAll()
	}
	t.focused = f.focused

	for _, k := range f.pressed {
		if key, ok := keyFor(k); ok {
			s.KeyDown(key)
		}
	}
	for _, k := range f.released {
		if key, ok := keyFor(k); ok {
			s.KeyUp(key)
		}
	}
	for _, b := range f.down {
		if button, ok := buttonFor(b); ok {
			s.MouseDown(button)
		}
	}
	for _, b := range f.up {
		if button, ok := buttonFor(b); ok {
			s.MouseUp(button)
		}
	}

	if !t.hasLast || f.x != t.lastX || f.y != t.lastY {
		s.CursorMoved(float32(f.x), float32(f.y))
		if t.hasLast {
			s.MouseMotion(float32(f.x-t.lastX), float32(f.y-t.lastY))
		}
	}
	t.lastX, t.lastY, t.hasLast = f.x, f.y, true

	if f.wheelX != 0 || f.wheelY != 0 {
		s.Scrolled(float32(f.wheelX), float32(f.wheelY))
	}
}

var keys = map[ebiten.Key]common.Key{
	ebiten.KeyW:            common.KeyW,
	ebiten.KeyA:            common.KeyA,
	ebiten.KeyS:            common.KeyS,
	ebiten.KeyD:            common.KeyD,
	ebiten.KeyQ:            common.KeyQ,
	ebiten.KeyE:            common.KeyE,
	ebiten.KeySpace:        common.KeySpace,
	ebiten.KeyEscape:       common.KeyEsc,
	ebiten.KeyBackspace:    common.KeyBackspace,
	ebiten.KeyF1:           common.KeyF1,
	ebiten.KeyF2:           common.KeyF2,
	ebiten.KeyF3:           common.KeyF3,
	ebiten.KeyShiftLeft:    common.KeyLeftShift,
	ebiten.KeyShiftRight:   common.KeyRightShift,
	ebiten.KeyControlLeft:  common.KeyLeftControl,
	ebiten.KeyControlRight: common.KeyRightControl,
}

// keyFor maps an Ebitengine key to the engine key code. Keys the view port never reads are dropped.
func keyFor(k ebiten.Key) (common.Key, bool) {
	key, ok := keys[k]
	return key, ok
}

func buttonFor(b ebiten.MouseButton) (common.MouseButton, bool) {
	switch b {
	case ebiten.MouseButtonLeft:
		return common.MouseButtonLeft, true
	case ebiten.MouseButtonRight:
		return common.MouseButtonRight, true
	case ebiten.MouseButtonMiddle:
		return common.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
