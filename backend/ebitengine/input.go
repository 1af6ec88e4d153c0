package ebitengine

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/frameloop/gui"
)

// InputAdapter feeds Ebitengine input into a gui.InputState, including
// touch contacts for pinch and pan gestures.
type InputAdapter struct {
	input *gui.InputState
	start time.Time

	// Scratch slices reused across frames.
	runes   []rune
	touches []ebiten.TouchID
}

// NewInputAdapter creates an input adapter.
func NewInputAdapter() *InputAdapter {
	return &InputAdapter{
		input: gui.NewInputState(),
		start: time.Now(),
	}
}

// Input returns the adapted input state.
func (a *InputAdapter) Input() *gui.InputState {
	return a.input
}

// Update rolls the input state forward one frame. Call at the start of
// the game's Update.
func (a *InputAdapter) Update() *gui.InputState {
	in := a.input
	in.Reset()
	in.SetTime(time.Since(a.start).Seconds())

	x, y := ebiten.CursorPosition()
	in.SetMousePos(float32(x), float32(y))

	in.SetMouseButton(gui.MouseButtonLeft, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	in.SetMouseButton(gui.MouseButtonRight, ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
	in.SetMouseButton(gui.MouseButtonMiddle, ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle))

	wx, wy := ebiten.Wheel()
	in.SetMouseWheel(float32(wx), float32(wy))

	for eb, k := range keyMap {
		in.SetKey(k, ebiten.IsKeyPressed(eb))
	}
	in.ModCtrl = ebiten.IsKeyPressed(ebiten.KeyControl)
	in.ModShift = ebiten.IsKeyPressed(ebiten.KeyShift)
	in.ModAlt = ebiten.IsKeyPressed(ebiten.KeyAlt)
	in.ModSuper = ebiten.IsKeyPressed(ebiten.KeyMeta)

	a.runes = ebiten.AppendInputChars(a.runes[:0])
	for _, r := range a.runes {
		in.AddInputChar(r)
	}

	a.feedTouches()
	return in
}

// feedTouches translates per-frame touch snapshots into contact events.
func (a *InputAdapter) feedTouches() {
	in := a.input

	a.touches = inpututil.AppendJustPressedTouchIDs(a.touches[:0])
	for _, id := range a.touches {
		x, y := ebiten.TouchPosition(id)
		in.AddTouchEvent(gui.TouchID(id), gui.TouchStart,
			gui.Vec2{X: float32(x), Y: float32(y)}, 1)
	}

	a.touches = ebiten.AppendTouchIDs(a.touches[:0])
	for _, id := range a.touches {
		if inpututil.IsTouchJustReleased(id) {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		in.AddTouchEvent(gui.TouchID(id), gui.TouchMove,
			gui.Vec2{X: float32(x), Y: float32(y)}, 1)
	}

	a.touches = inpututil.AppendJustReleasedTouchIDs(a.touches[:0])
	for _, id := range a.touches {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		in.AddTouchEvent(gui.TouchID(id), gui.TouchEnd,
			gui.Vec2{X: float32(x), Y: float32(y)}, 0)
	}
}

// keyMap covers the keys the GUI reacts to.
var keyMap = map[ebiten.Key]gui.Key{
	ebiten.KeyTab:        gui.KeyTab,
	ebiten.KeyArrowLeft:  gui.KeyLeft,
	ebiten.KeyArrowRight: gui.KeyRight,
	ebiten.KeyArrowUp:    gui.KeyUp,
	ebiten.KeyArrowDown:  gui.KeyDown,
	ebiten.KeyPageUp:     gui.KeyPageUp,
	ebiten.KeyPageDown:   gui.KeyPageDown,
	ebiten.KeyHome:       gui.KeyHome,
	ebiten.KeyEnd:        gui.KeyEnd,
	ebiten.KeyInsert:     gui.KeyInsert,
	ebiten.KeyDelete:     gui.KeyDelete,
	ebiten.KeyBackspace:  gui.KeyBackspace,
	ebiten.KeySpace:      gui.KeySpace,
	ebiten.KeyEnter:      gui.KeyEnter,
	ebiten.KeyEscape:     gui.KeyEscape,
	ebiten.KeyA:          gui.KeyA,
	ebiten.KeyC:          gui.KeyC,
	ebiten.KeyS:          gui.KeyS,
	ebiten.KeyT:          gui.KeyT,
	ebiten.KeyV:          gui.KeyV,
	ebiten.KeyX:          gui.KeyX,
	ebiten.KeyY:          gui.KeyY,
	ebiten.KeyZ:          gui.KeyZ,
	ebiten.KeyF1:         gui.KeyF1,
	ebiten.KeyF2:         gui.KeyF2,
	ebiten.KeyF3:         gui.KeyF3,
	ebiten.KeyF4:         gui.KeyF4,
	ebiten.KeyF5:         gui.KeyF5,
	ebiten.KeyF6:         gui.KeyF6,
	ebiten.KeyF7:         gui.KeyF7,
	ebiten.KeyF8:         gui.KeyF8,
	ebiten.KeyF9:         gui.KeyF9,
	ebiten.KeyF10:        gui.KeyF10,
	ebiten.KeyF11:        gui.KeyF11,
	ebiten.KeyF12:        gui.KeyF12,
}
