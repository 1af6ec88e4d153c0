package gui

// LayerOrder ranks rendering layers from back to front. Within one order,
// areas are tie-broken by ID so the stacking is deterministic.
type LayerOrder int

const (
	OrderBackground LayerOrder = iota
	OrderMiddle
	OrderForeground // Popups, menus, dropdowns
	OrderTooltip
	OrderDebug
)

// LayerID names one rendering layer: an order plus an owning widget ID.
type LayerID struct {
	Order LayerOrder
	ID    ID
}

// AreaState is the persistent record of one screen area (a panel, popup or
// tooltip). Widgets read their own previous-frame rect from here before
// painting, which is what makes size-before-layout tricks (centering,
// click-outside tests) possible at the cost of one frame of lag.
type AreaState struct {
	Rect  Rect
	Order LayerOrder

	// VisibleLastFrame distinguishes "first frame ever" from "shown
	// before": first-frame areas have no trustworthy rect yet, so callers
	// typically hide or defer content for one frame.
	VisibleLastFrame bool
}

// areaStore persists area rects across frames, swept like all widget state.
var areaStore = NewFrameStore[AreaState]()

// RegisterArea records an area's rect for next frame. Call after the
// area's contents have been laid out, when the true extent is known.
func (ctx *Context) RegisterArea(id ID, order LayerOrder, rect Rect) {
	areaStore.Set(id, AreaState{Rect: rect, Order: order, VisibleLastFrame: true})
}

// AreaRect returns the area's rect as recorded last frame.
// ok is false on the area's first frame.
func (ctx *Context) AreaRect(id ID) (Rect, bool) {
	state := areaStore.GetIfExists(id)
	if state == nil || !state.VisibleLastFrame {
		return Rect{}, false
	}
	// Touch the entry so the sweep keeps it while the area stays alive.
	areaStore.Get(id, *state)
	return state.Rect, true
}

// registerOpenPopup notes an open popup this frame, keyed by the layer it
// was opened from. Queries read the previous frame's registrations
// (double-buffered in Reset) so the answer is stable no matter the call
// order within a frame.
func (ctx *Context) registerOpenPopup(layer LayerID, id ID) {
	if ctx.openPopups == nil {
		ctx.openPopups = make(map[LayerID][]ID, 4)
	}
	ctx.openPopups[layer] = append(ctx.openPopups[layer], id)
}

// AnyPopupOpenIn reports whether any popup was open in the given layer
// last frame. Tooltips use this to stay out of the way of open menus.
func (ctx *Context) AnyPopupOpenIn(layer LayerID) bool {
	return len(ctx.prevOpenPopups[layer]) > 0
}

// AnyPopupOpen reports whether any popup at all was open last frame.
// Dropdowns and menus that capture keyboard focus count too.
func (ctx *Context) AnyPopupOpen() bool {
	if ctx.activePopupID != 0 {
		return true
	}
	for _, ids := range ctx.prevOpenPopups {
		if len(ids) > 0 {
			return true
		}
	}
	return false
}
