package gui

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key identifies a keyboard key the library cares about. Backends map
// their native key codes onto these.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyS
	KeyT
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

// Key repeat timing.
const (
	KeyRepeatDelay    float32 = 0.4  // seconds held before repeating starts
	KeyRepeatInterval float32 = 0.03 // seconds between repeats
)

// InputState carries one frame of input. The platform bridge feeds it:
// SetTime first, then Reset, then the frame's mouse/key/touch events.
type InputState struct {
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // true on the press frame
	mouseUp      [MouseButtonCount]bool // true on the release frame

	MouseWheelX float32
	MouseWheelY float32

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // true on the press frame
	keyUp      [KeyCount]bool // true on the release frame

	keyHoldTime [KeyCount]float32 // seconds held, for repeat

	// Unicode characters typed this frame.
	InputChars []rune

	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool

	// Screen geometry reported by the host
	ScreenRect     Rect
	PixelsPerPoint float32

	// Monotonic timestamp in seconds, set via SetTime before event feeding
	now float64

	// Timestamps of the most recent move, press and scroll, for tooltip
	// gating and similar "how long has the pointer been still" questions.
	pointerMoveTime  float64
	pointerClickTime float64
	scrollTime       float64

	// Click/velocity state machines (pointer.go)
	pointer [MouseButtonCount]pointerButton
	history posHistory

	// Multi-touch gesture recognizer (touch.go)
	activeTouches map[TouchID]touchPoint
	gesture       *gestureState
}

// NewInputState creates an empty InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars:     make([]rune, 0, 16),
		PixelsPerPoint: 1,
		activeTouches:  make(map[TouchID]touchPoint, 4),
	}
}

// Reset clears the single-frame events. Call at the start of each frame
// before collecting input; held-down state carries over.
func (s *InputState) Reset() {
	s.mouseClicked = [MouseButtonCount]bool{}
	s.mouseUp = [MouseButtonCount]bool{}
	s.keyPressed = [KeyCount]bool{}
	s.keyUp = [KeyCount]bool{}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0

	s.beginPointerFrame()
	s.beginTouchFrame()
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	if x != s.MouseX || y != s.MouseY {
		s.pointerMoveTime = s.now
	}
	s.MouseX = x
	s.MouseY = y
	s.recordPointerMove(Vec2{X: x, Y: y})
}

// SetMouseButton sets a button's held state, deriving the press and
// release edges.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
		s.pointerClickTime = s.now
		s.recordPointerPress(button, s.MousePos())
	}
	if !down && wasDown {
		s.mouseUp[button] = true
		s.recordPointerRelease(button, s.MousePos())
	}
}

// SetKey sets a key's held state, deriving the press and release edges.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0
	}
}

// UpdateKeyRepeat advances key hold times. Call once per frame with the
// frame's delta time.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// SetMouseWheel sets the wheel delta for this frame.
func (s *InputState) SetMouseWheel(x, y float32) {
	if x != 0 || y != 0 {
		s.scrollTime = s.now
	}
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// TimeSincePointerMove returns seconds since the pointer last moved.
func (s *InputState) TimeSincePointerMove() float64 {
	return s.now - s.pointerMoveTime
}

// TimeSinceClick returns seconds since any button was last pressed.
func (s *InputState) TimeSinceClick() float64 {
	return s.now - s.pointerClickTime
}

// TimeSinceScroll returns seconds since anything scrolled.
func (s *InputState) TimeSinceScroll() float64 {
	return s.now - s.scrollTime
}

// NoteScroll marks the scroll clock without wheel input. Widgets that
// scroll by other means (scrollbar drags, keyboard paging) call this so
// scroll-gated behavior like tooltip suppression still applies.
func (s *InputState) NoteScroll() {
	s.scrollTime = s.now
}

// AddInputChar appends a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown returns true if the button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouseDown[button]
}

// MouseClicked returns true on the frame the button was pressed.
func (s *InputState) MouseClicked(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouseClicked[button]
}

// MouseReleased returns true on the frame the button was released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouseUp[button]
}

// KeyDown returns true if the key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	return key >= 0 && key < KeyCount && s.keyDown[key]
}

// KeyPressed returns true on the frame the key was pressed.
func (s *InputState) KeyPressed(key Key) bool {
	return key >= 0 && key < KeyCount && s.keyPressed[key]
}

// KeyReleased returns true on the frame the key was released.
func (s *InputState) KeyReleased(key Key) bool {
	return key >= 0 && key < KeyCount && s.keyUp[key]
}

// KeyRepeated returns true when a held key should fire this frame: on the
// initial press, then after KeyRepeatDelay, then every KeyRepeatInterval.
// Use for actions that repeat while held, like backspace in text input.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}

	held := s.keyHoldTime[key]
	if held < KeyRepeatDelay {
		return false
	}

	// Fire when this frame crossed a repeat interval boundary. The
	// previous frame's hold time is approximated at 60fps, which is close
	// enough for a 30ms interval.
	sinceDelay := held - KeyRepeatDelay
	return int(sinceDelay/KeyRepeatInterval) > int((sinceDelay-0.016)/KeyRepeatInterval)
}

// HasInputChars returns true if any characters were typed this frame.
func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}

// ConsumeInputChars drops this frame's typed characters. Call after
// handling a shortcut so its key does not also land in a text field.
func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}

var keyNames = [KeyCount]string{
	KeyNone:      "--",
	KeyTab:       "Tab",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyInsert:    "Ins",
	KeyDelete:    "Del",
	KeyBackspace: "Backspace",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeyA:         "A",
	KeyC:         "C",
	KeyS:         "S",
	KeyT:         "T",
	KeyV:         "V",
	KeyX:         "X",
	KeyY:         "Y",
	KeyZ:         "Z",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

// KeyName returns a short human-readable name for a key.
func KeyName(k Key) string {
	if k >= 0 && k < KeyCount && keyNames[k] != "" {
		return keyNames[k]
	}
	return "?"
}
