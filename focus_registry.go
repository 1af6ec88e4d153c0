package gui

// NavDirection is a keyboard focus movement direction.
type NavDirection uint8

const (
	NavUp NavDirection = iota
	NavDown
	NavLeft
	NavRight
)

// String returns a human-readable name for the navigation direction.
func (d NavDirection) String() string {
	switch d {
	case NavUp:
		return "Up"
	case NavDown:
		return "Down"
	case NavLeft:
		return "Left"
	case NavRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// FocusRegistry tracks which widget holds keyboard focus across frames.
//
// Widgets re-register every frame while drawing; focus follows the widget
// ID, not the registration slot. Navigation runs against the PREVIOUS
// frame's registrations (input is handled before the current frame has
// drawn anything), so the registry double-buffers: ResetForFrame swaps the
// buffers and the current frame's registrations build up fresh.
type FocusRegistry struct {
	prevItems []FocusableItem // last frame, what navigation walks
	items     []FocusableItem // this frame, being built

	currentFocusID  ID
	currentFocusIdx int // index into prevItems, -1 if none

	scopeStack []FocusScopeEntry

	// lastResetFrame guards against a double swap when Reset paths overlap.
	lastResetFrame uint64

	// keyboardNavigated gates scrollable auto-scroll: true after keyboard
	// navigation, cleared by interactions (mouse wheel, clicks) that should
	// not yank the viewport to the focused widget.
	keyboardNavigated bool
}

// FocusScopeEntry is one open container on the scope stack.
type FocusScopeEntry struct {
	ID           ID
	Name         string
	Type         FocusType
	Rect         Rect
	StartIdx     int // index of the scope's first child in items
	FocusedChild int // which child has focus, -1 if none
}

// FocusableItem is one frame's registration of a focusable widget.
type FocusableItem struct {
	ID       ID
	Name     string
	Rect     Rect
	Type     FocusType
	ScopeIdx int // parent scope index, -1 at root
	CanFocus bool
}

// FocusableHandle lets the registering widget query its own focus state.
type FocusableHandle struct {
	registry *FocusRegistry
	item     *FocusableItem
	index    int
}

func NewFocusRegistry() *FocusRegistry {
	return &FocusRegistry{
		prevItems:       make([]FocusableItem, 0, 64),
		items:           make([]FocusableItem, 0, 64),
		currentFocusIdx: -1,
		scopeStack:      make([]FocusScopeEntry, 0, 8),
	}
}

// ResetForFrame swaps the registration buffers for a new frame. Safe to
// call more than once per frame; only the first call for a given frame
// number swaps.
func (r *FocusRegistry) ResetForFrame(frameNumber uint64) {
	if r.lastResetFrame == frameNumber && frameNumber > 0 {
		return
	}
	r.lastResetFrame = frameNumber

	r.keyboardNavigated = true

	r.prevItems, r.items = r.items, r.prevItems
	r.items = r.items[:0]
	r.scopeStack = r.scopeStack[:0]

	r.currentFocusIdx = -1
	for i, item := range r.prevItems {
		if item.ID == r.currentFocusID {
			r.currentFocusIdx = i
			break
		}
	}
}

// Register adds a focusable widget for this frame and returns a handle for
// querying its focus state.
func (r *FocusRegistry) Register(id ID, name string, rect Rect, typ FocusType) *FocusableHandle {
	scopeIdx := -1
	if len(r.scopeStack) > 0 {
		scopeIdx = len(r.scopeStack) - 1
	}

	idx := len(r.items)
	r.items = append(r.items, FocusableItem{
		ID:       id,
		Name:     name,
		Rect:     rect,
		Type:     typ,
		ScopeIdx: scopeIdx,
		CanFocus: true,
	})

	return &FocusableHandle{
		registry: r,
		item:     &r.items[idx],
		index:    idx,
	}
}

// RegisterDisabled tracks a widget that cannot take focus. Disabled widgets
// still occupy a slot so navigation order stays stable while they toggle.
func (r *FocusRegistry) RegisterDisabled(id ID, name string, rect Rect, typ FocusType) *FocusableHandle {
	handle := r.Register(id, name, rect, typ)
	handle.item.CanFocus = false
	return handle
}

// BeginScope opens a container scope; widgets registered until the matching
// EndScope belong to it.
func (r *FocusRegistry) BeginScope(id ID, name string, typ FocusType, rect Rect) {
	r.scopeStack = append(r.scopeStack, FocusScopeEntry{
		ID:           id,
		Name:         name,
		Type:         typ,
		Rect:         rect,
		StartIdx:     len(r.items),
		FocusedChild: -1,
	})
}

// EndScope closes the innermost scope and reports which of its children,
// if any, holds focus.
func (r *FocusRegistry) EndScope() FocusScopeEntry {
	n := len(r.scopeStack)
	if n == 0 {
		return FocusScopeEntry{FocusedChild: -1}
	}

	entry := r.scopeStack[n-1]
	r.scopeStack = r.scopeStack[:n-1]

	for i := entry.StartIdx; i < len(r.items); i++ {
		if r.items[i].ID == r.currentFocusID {
			entry.FocusedChild = i - entry.StartIdx
			break
		}
	}
	return entry
}

// SetFocus moves focus to the widget with the given ID. A widget not yet
// registered this frame is matched after the next swap.
func (r *FocusRegistry) SetFocus(id ID) {
	r.currentFocusID = id
	r.currentFocusIdx = -1
	for i, item := range r.prevItems {
		if item.ID == id {
			r.currentFocusIdx = i
			return
		}
	}
}

// ClearFocus drops focus entirely.
func (r *FocusRegistry) ClearFocus() {
	r.currentFocusID = 0
	r.currentFocusIdx = -1
}

// CurrentFocusID returns the focused widget's ID, 0 if none.
func (r *FocusRegistry) CurrentFocusID() ID {
	return r.currentFocusID
}

// CurrentFocusItem returns the focused item as registered last frame,
// or nil when nothing is focused.
func (r *FocusRegistry) CurrentFocusItem() *FocusableItem {
	if r.currentFocusIdx >= 0 && r.currentFocusIdx < len(r.prevItems) {
		return &r.prevItems[r.currentFocusIdx]
	}
	return nil
}

// WasKeyboardNavigated reports whether scrollables should auto-scroll to
// the focused widget this frame.
func (r *FocusRegistry) WasKeyboardNavigated() bool {
	return r.keyboardNavigated
}

// MarkKeyboardNavigated re-enables auto-scroll after a widget has moved
// focus through its own key handling rather than Navigate.
func (r *FocusRegistry) MarkKeyboardNavigated() {
	r.keyboardNavigated = true
}

// Navigate moves focus one step in the given direction. Returns false at a
// boundary or when nothing is focusable.
func (r *FocusRegistry) Navigate(dir NavDirection) bool {
	if len(r.prevItems) == 0 {
		return false
	}

	if r.currentFocusIdx < 0 {
		// Nothing focused yet: any direction lands on the first widget.
		if r.FocusFirst() {
			r.keyboardNavigated = true
			return true
		}
		return false
	}

	var moved bool
	switch dir {
	case NavUp, NavDown:
		moved = r.navigateLinear(dir)
	case NavLeft, NavRight:
		moved = r.navigateHorizontal(dir)
	}
	if moved {
		r.keyboardNavigated = true
	}
	return moved
}

// navigateLinear walks registration order, which matches top-to-bottom
// layout order for the stacked layouts this library produces.
func (r *FocusRegistry) navigateLinear(dir NavDirection) bool {
	delta := 1
	if dir == NavUp {
		delta = -1
	}
	for i := r.currentFocusIdx + delta; i >= 0 && i < len(r.prevItems); i += delta {
		if r.prevItems[i].CanFocus {
			r.setFocusByIndex(i)
			return true
		}
	}
	return false
}

// navigateHorizontal picks the nearest focusable widget strictly to the
// left or right, penalizing vertical offset so rows beat diagonals.
func (r *FocusRegistry) navigateHorizontal(dir NavDirection) bool {
	if r.currentFocusIdx < 0 || r.currentFocusIdx >= len(r.prevItems) {
		return false
	}
	current := r.prevItems[r.currentFocusIdx]

	bestIdx := -1
	bestDist := float32(1e9)
	for i, item := range r.prevItems {
		if i == r.currentFocusIdx || !item.CanFocus {
			continue
		}
		if dir == NavLeft && item.Rect.X >= current.Rect.X {
			continue
		}
		if dir == NavRight && item.Rect.X <= current.Rect.X {
			continue
		}
		dist := absf(item.Rect.X-current.Rect.X) + absf(item.Rect.Y-current.Rect.Y)*2
		if dist < bestDist {
			bestDist = dist
			bestIdx = i
		}
	}

	if bestIdx >= 0 {
		r.setFocusByIndex(bestIdx)
		return true
	}
	return false
}

func (r *FocusRegistry) setFocusByIndex(idx int) {
	if idx >= 0 && idx < len(r.prevItems) {
		r.currentFocusIdx = idx
		r.currentFocusID = r.prevItems[idx].ID
	}
}

// FocusFirst focuses the first focusable widget from last frame.
func (r *FocusRegistry) FocusFirst() bool {
	for i, item := range r.prevItems {
		if item.CanFocus {
			r.setFocusByIndex(i)
			return true
		}
	}
	return false
}

// FocusLast focuses the last focusable widget from last frame.
func (r *FocusRegistry) FocusLast() bool {
	for i := len(r.prevItems) - 1; i >= 0; i-- {
		if r.prevItems[i].CanFocus {
			r.setFocusByIndex(i)
			return true
		}
	}
	return false
}

// IsFocused reports whether this widget currently holds focus.
func (h *FocusableHandle) IsFocused() bool {
	return h.registry.currentFocusID == h.item.ID
}

// CanFocus reports whether this widget can take focus.
func (h *FocusableHandle) CanFocus() bool {
	return h.item.CanFocus
}

// FocusBounds returns the registered rect, used for auto-scroll.
func (h *FocusableHandle) FocusBounds() Rect {
	return h.item.Rect
}

// Focus moves focus to this widget.
func (h *FocusableHandle) Focus() {
	h.registry.SetFocus(h.item.ID)
}

// Index returns this frame's registration index.
func (h *FocusableHandle) Index() int {
	return h.index
}
