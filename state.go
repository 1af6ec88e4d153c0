package gui

// StateStore persists widget state between frames. The default is an
// in-memory map; applications can swap in their own via WithStateStore.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is the plain map implementation of StateStore.
type MapStateStore map[ID]any

func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// GetState reads typed state from the context's store, returning
// defaultVal when missing or of another type.
func GetState[T any](ctx *Context, id ID, defaultVal T) T {
	if v, ok := ctx.stateStore.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// SetState writes typed state to the context's store.
func SetState[T any](ctx *Context, id ID, value T) {
	ctx.stateStore.Set(id, value)
}

// DeleteState removes an ID's state.
func DeleteState(ctx *Context, id ID) {
	ctx.stateStore.Delete(id)
}

// stepToward advances current toward target with exponential easing,
// snapping when within half a pixel. Returns the new value and whether
// the animation is still running.
func stepToward(current, target, deltaTime float32) (float32, bool) {
	const smoothSpeed = 15.0
	const threshold = 0.5

	diff := target - current
	if absf32(diff) < threshold {
		return target, false
	}
	return current + diff*deltaTime*smoothSpeed, true
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// ScrollState is the scroll position of a ListBox.
type ScrollState struct {
	ScrollY       float32 // animated position
	TargetScrollY float32 // where the animation is headed
	ContentHeight float32
}

// UpdateSmooth advances the scroll animation one frame. Returns true
// while still moving.
func (s *ScrollState) UpdateSmooth(deltaTime float32) bool {
	var animating bool
	s.ScrollY, animating = stepToward(s.ScrollY, s.TargetScrollY, deltaTime)
	return animating
}

// InputTextState is the editing state of an InputText: cursor, selection,
// horizontal scroll and undo history.
type InputTextState struct {
	// Editing is edit mode: the field captures the keyboard. Distinct
	// from registry focus, which only highlights for navigation.
	Editing bool

	// CursorPos counts runes, not bytes.
	CursorPos int

	// SelectionStart anchors the selection, SelectionEnd follows the
	// cursor. -1 means none.
	SelectionStart int
	SelectionEnd   int

	// ScrollOffset shifts long text left so the cursor stays visible.
	ScrollOffset float32

	UndoStack []string
	UndoIndex int

	CursorBlinkTime float32
}

// HasSelection reports an active selection.
func (s *InputTextState) HasSelection() bool {
	return s.SelectionStart >= 0 && s.SelectionStart != s.SelectionEnd
}

// GetSelectedRange returns the selection normalized to start <= end, or
// (-1, -1) when there is none.
func (s *InputTextState) GetSelectedRange() (start, end int) {
	if !s.HasSelection() {
		return -1, -1
	}
	if s.SelectionStart < s.SelectionEnd {
		return s.SelectionStart, s.SelectionEnd
	}
	return s.SelectionEnd, s.SelectionStart
}

// ClearSelection drops the selection.
func (s *InputTextState) ClearSelection() {
	s.SelectionStart = -1
	s.SelectionEnd = -1
}

// SelectAll selects the whole text and puts the cursor at its end.
func (s *InputTextState) SelectAll(textLen int) {
	s.SelectionStart = 0
	s.SelectionEnd = textLen
	s.CursorPos = textLen
}

// PushUndo records text on the undo stack. Call before mutating the
// value.
func (s *InputTextState) PushUndo(text string) {
	const maxUndoSize = 50

	// An edit after undoing discards the redo branch
	if s.UndoIndex < len(s.UndoStack) {
		s.UndoStack = s.UndoStack[:s.UndoIndex]
	}

	if len(s.UndoStack) > 0 && s.UndoStack[len(s.UndoStack)-1] == text {
		return
	}

	s.UndoStack = append(s.UndoStack, text)
	s.UndoIndex = len(s.UndoStack)

	if len(s.UndoStack) > maxUndoSize {
		s.UndoStack = s.UndoStack[1:]
		s.UndoIndex--
	}
}

// Undo steps back one state. currentText is pushed first when at the
// head so a later Redo can return to it.
func (s *InputTextState) Undo(currentText string) (string, bool) {
	if s.UndoIndex == len(s.UndoStack) && len(s.UndoStack) > 0 {
		if s.UndoStack[len(s.UndoStack)-1] != currentText {
			s.UndoStack = append(s.UndoStack, currentText)
		}
	}

	if s.UndoIndex > 0 {
		s.UndoIndex--
		return s.UndoStack[s.UndoIndex], true
	}
	return "", false
}

// Redo steps forward one state.
func (s *InputTextState) Redo() (string, bool) {
	if s.UndoIndex < len(s.UndoStack)-1 {
		s.UndoIndex++
		return s.UndoStack[s.UndoIndex], true
	}
	return "", false
}

// CanUndo reports whether Undo would succeed.
func (s *InputTextState) CanUndo() bool {
	return s.UndoIndex > 0
}

// CanRedo reports whether Redo would succeed.
func (s *InputTextState) CanRedo() bool {
	return s.UndoIndex < len(s.UndoStack)-1
}

// TreeNodeState holds a tree node's expansion.
type TreeNodeState struct {
	Open bool
}

// CollapsingHeaderState holds a header's expansion.
type CollapsingHeaderState struct {
	Open bool
}

// SliderState holds a slider's drag.
type SliderState struct {
	Dragging       bool
	DragStartX     float32
	DragStartValue float32
}

// ComboBoxState holds a combo box's dropdown view. Whether the dropdown
// is open lives in the popup memory, not here.
type ComboBoxState struct {
	FirstVisible  int    // first row shown in the dropdown window
	KeyboardIndex int    // keyboard-highlighted index, -1 for none
	SearchText    string // filter text when searchable
}

// ScrollableState holds a Scrollable region's scroll, drag, and
// focus-follow bookkeeping.
type ScrollableState struct {
	ScrollY       float32
	ScrollX       float32
	TargetScrollY float32
	TargetScrollX float32
	ContentHeight float32
	ContentWidth  float32
	Dragging      bool    // scrollbar thumb drag in progress
	DragStartY    float32 // mouse Y at drag start
	DragStartScr  float32 // ScrollY at drag start
	LastFocusY    float32 // previous frame's focused-child Y
	FocusYSet     bool    // distinguishes Y=0 from "no focus seen"

	// Manual scrolling suppresses focus auto-scroll for a cooldown
	UserScrolledThisFrame bool
	UserScrollTime        float32
}

// UpdateSmoothScroll advances both axes' scroll animations one frame.
// Returns true while either is still moving.
func (s *ScrollableState) UpdateSmoothScroll(deltaTime float32) bool {
	var animY, animX bool
	s.ScrollY, animY = stepToward(s.ScrollY, s.TargetScrollY, deltaTime)
	s.ScrollX, animX = stepToward(s.ScrollX, s.TargetScrollX, deltaTime)
	return animY || animX
}
