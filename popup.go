package gui

import "hash/fnv"

// popupID hashes a popup name to a stable key. Popups cannot use GetID:
// open/close calls and the popup itself happen at different call sites,
// and call-site counters would give them different IDs.
func popupID(name string) ID {
	h := fnv.New64a()
	h.Write([]byte(name))
	return ID(h.Sum64())
}

// RectSide names the side of an anchor rect a popup attaches to.
type RectSide int

const (
	SideBottom RectSide = iota
	SideTop
	SideLeft
	SideRight
)

// RectAlign pairs an attachment side with an alignment along that side,
// giving twelve placements. The zero value (bottom, start) is the usual
// menu placement: below the anchor, left edges flush.
type RectAlign struct {
	Side  RectSide
	Align Alignment
}

// The twelve placements, clockwise from bottom-start.
var (
	AlignBottomStart  = RectAlign{SideBottom, AlignStart}
	AlignBottomCenter = RectAlign{SideBottom, AlignCenter}
	AlignBottomEnd    = RectAlign{SideBottom, AlignEnd}
	AlignTopStart     = RectAlign{SideTop, AlignStart}
	AlignTopCenter    = RectAlign{SideTop, AlignCenter}
	AlignTopEnd       = RectAlign{SideTop, AlignEnd}
	AlignLeftStart    = RectAlign{SideLeft, AlignStart}
	AlignLeftCenter   = RectAlign{SideLeft, AlignCenter}
	AlignLeftEnd      = RectAlign{SideLeft, AlignEnd}
	AlignRightStart   = RectAlign{SideRight, AlignStart}
	AlignRightCenter  = RectAlign{SideRight, AlignCenter}
	AlignRightEnd     = RectAlign{SideRight, AlignEnd}
)

// AnchorRect places a rect of the given size against parent per the
// alignment, separated by gap.
func (ra RectAlign) AnchorRect(parent Rect, size Vec2, gap float32) Rect {
	var x, y float32
	switch ra.Side {
	case SideBottom, SideTop:
		if ra.Side == SideBottom {
			y = parent.Y + parent.H + gap
		} else {
			y = parent.Y - gap - size.Y
		}
		switch ra.Align {
		case AlignCenter:
			x = parent.X + (parent.W-size.X)/2
		case AlignEnd:
			x = parent.X + parent.W - size.X
		default:
			x = parent.X
		}
	default:
		if ra.Side == SideRight {
			x = parent.X + parent.W + gap
		} else {
			x = parent.X - gap - size.X
		}
		switch ra.Align {
		case AlignCenter:
			y = parent.Y + (parent.H-size.Y)/2
		case AlignEnd:
			y = parent.Y + parent.H - size.Y
		default:
			y = parent.Y
		}
	}
	return Rect{X: x, Y: y, W: size.X, H: size.Y}
}

// bestAnchorRect tries the preferred placement first and falls back
// through the other eleven, returning the first that fits inside bounds.
// When nothing fits, the preferred placement is clamped into bounds.
func bestAnchorRect(preferred RectAlign, parent Rect, size Vec2, gap float32, bounds Rect) Rect {
	candidates := []RectAlign{
		preferred,
		AlignBottomStart, AlignBottomEnd, AlignBottomCenter,
		AlignTopStart, AlignTopEnd, AlignTopCenter,
		AlignRightStart, AlignRightEnd, AlignRightCenter,
		AlignLeftStart, AlignLeftEnd, AlignLeftCenter,
	}
	for _, ra := range candidates {
		r := ra.AnchorRect(parent, size, gap)
		if r.X >= bounds.X && r.Y >= bounds.Y &&
			r.X+r.W <= bounds.X+bounds.W && r.Y+r.H <= bounds.Y+bounds.H {
			return r
		}
	}
	r := preferred.AnchorRect(parent, size, gap)
	r.X = clampf(r.X, bounds.X, maxf(bounds.X+bounds.W-r.W, bounds.X))
	r.Y = clampf(r.Y, bounds.Y, maxf(bounds.Y+bounds.H-r.H, bounds.Y))
	return r
}

// anchorKind discriminates PopupAnchor variants.
type anchorKind int

const (
	anchorParentRect anchorKind = iota
	anchorPointer
	anchorPointerFixed
	anchorPosition
)

// PopupAnchor says what a popup is positioned relative to.
type PopupAnchor struct {
	kind anchorKind
	rect Rect
	pos  Vec2
}

// AnchorParentRect anchors to a widget's rect, e.g. a menu below its button.
func AnchorParentRect(r Rect) PopupAnchor {
	return PopupAnchor{kind: anchorParentRect, rect: r}
}

// AnchorPointer anchors to the live pointer position, following it.
func AnchorPointer() PopupAnchor {
	return PopupAnchor{kind: anchorPointer}
}

// AnchorPointerFixed anchors to where the pointer was when the popup
// opened, like a context menu.
func AnchorPointerFixed() PopupAnchor {
	return PopupAnchor{kind: anchorPointerFixed}
}

// AnchorPosition anchors to a fixed point.
func AnchorPosition(pos Vec2) PopupAnchor {
	return PopupAnchor{kind: anchorPosition, pos: pos}
}

// CloseBehavior says which clicks close an open popup. Escape always
// closes, regardless of this setting.
type CloseBehavior int

const (
	// CloseOnClick closes on any click, inside or outside. The click is
	// still delivered to popup content first, so a menu item can act and
	// dismiss its menu with one click.
	CloseOnClick CloseBehavior = iota

	// CloseOnClickOutside keeps the popup open for clicks inside it (and
	// on its anchor widget).
	CloseOnClickOutside

	// IgnoreClicks leaves closing to Escape or explicit code.
	IgnoreClicks
)

// popupState is the per-popup persistent memory.
type popupState struct {
	Open        bool
	FixedPos    Vec2
	HasFixedPos bool
}

var popupStore = NewFrameStore[popupState]()

// OpenPopup opens a memory-managed popup by name.
func (ctx *Context) OpenPopup(id string) {
	pid := popupID(id)
	popupStore.Get(pid, popupState{}).Open = true
}

// ClosePopup closes a memory-managed popup by name.
func (ctx *Context) ClosePopup(id string) {
	pid := popupID(id)
	s := popupStore.Get(pid, popupState{})
	s.Open = false
	s.HasFixedPos = false
}

// TogglePopup flips a memory-managed popup.
func (ctx *Context) TogglePopup(id string) {
	pid := popupID(id)
	s := popupStore.Get(pid, popupState{})
	s.Open = !s.Open
	if !s.Open {
		s.HasFixedPos = false
	}
}

// IsPopupOpen reports whether a memory-managed popup is open.
func (ctx *Context) IsPopupOpen(id string) bool {
	return popupStore.Get(popupID(id), popupState{}).Open
}

// popupConfig collects popup options.
type popupConfig struct {
	align    RectAlign
	gap      float32
	width    float32
	close    CloseBehavior
	openBool *bool
	order    LayerOrder
}

// PopupOption configures a popup.
type PopupOption func(*popupConfig)

// PopupAlign sets the preferred placement relative to the anchor.
func PopupAlign(ra RectAlign) PopupOption {
	return func(c *popupConfig) { c.align = ra }
}

// PopupGap sets the distance between anchor and popup.
func PopupGap(gap float32) PopupOption {
	return func(c *popupConfig) { c.gap = gap }
}

// PopupWidth fixes the popup's content width instead of sizing to content.
func PopupWidth(w float32) PopupOption {
	return func(c *popupConfig) { c.width = w }
}

// PopupClose sets the click close behavior.
func PopupClose(cb CloseBehavior) PopupOption {
	return func(c *popupConfig) { c.close = cb }
}

// PopupOpenWhen ties the popup's visibility to an application bool
// instead of the popup memory. The bool is written back on close.
func PopupOpenWhen(b *bool) PopupOption {
	return func(c *popupConfig) { c.openBool = b }
}

// PopupLayer overrides the rendering layer (default foreground).
func PopupLayer(order LayerOrder) PopupOption {
	return func(c *popupConfig) { c.order = order }
}

// Popup shows an anchored floating area when open. Visibility comes from
// the popup memory (OpenPopup/TogglePopup) or from PopupOpenWhen. The
// popup's rect is the one recorded last frame, so placement and
// click-outside tests lag content changes by one frame.
//
// Returns true if the popup was shown this frame.
//
// Usage:
//
//	if ctx.Button("File") {
//	    ctx.TogglePopup("file_menu")
//	}
//	ctx.Popup("file_menu", AnchorParentRect(buttonRect))(func() {
//	    if ctx.Button("Quit") { ... }
//	})
func (ctx *Context) Popup(id string, anchor PopupAnchor, opts ...PopupOption) func(func()) bool {
	return func(contents func()) bool {
		cfg := popupConfig{
			align: AlignBottomStart,
			gap:   ctx.style.ItemSpacing,
			order: OrderForeground,
		}
		for _, opt := range opts {
			opt(&cfg)
		}

		pid := popupID(id)
		state := popupStore.Get(pid, popupState{})

		open := state.Open
		if cfg.openBool != nil {
			open = *cfg.openBool
		}
		if !open {
			state.HasFixedPos = false
			return false
		}

		closePopup := func() {
			state.Open = false
			state.HasFixedPos = false
			if cfg.openBool != nil {
				*cfg.openBool = false
			}
		}

		input := ctx.Input
		if input != nil && input.KeyPressed(KeyEscape) {
			closePopup()
			return false
		}

		prevRect, wasOpen := ctx.AreaRect(pid)

		// Click handling uses last frame's rect: a click this frame cannot
		// know this frame's extent yet.
		closeAfter := false
		if wasOpen && input != nil && input.MouseClicked(MouseButtonLeft) {
			inside := prevRect.Contains(input.MousePos())
			onAnchor := anchor.kind == anchorParentRect && anchor.rect.Contains(input.MousePos())
			switch cfg.close {
			case CloseOnClick:
				if !onAnchor {
					closeAfter = true
				}
			case CloseOnClickOutside:
				if !inside && !onAnchor {
					closeAfter = true
				}
			}
		}

		// Resolve the anchor to a parent rect.
		parent := anchor.rect
		switch anchor.kind {
		case anchorPointer:
			if input != nil {
				parent = Rect{X: input.MouseX, Y: input.MouseY}
			}
		case anchorPointerFixed:
			if !state.HasFixedPos && input != nil {
				state.FixedPos = input.MousePos()
				state.HasFixedPos = true
			}
			parent = Rect{X: state.FixedPos.X, Y: state.FixedPos.Y}
		case anchorPosition:
			parent = Rect{X: anchor.pos.X, Y: anchor.pos.Y}
		}

		size := Vec2{X: prevRect.W, Y: prevRect.H}
		bounds := Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
		place := bestAnchorRect(cfg.align, parent, size, cfg.gap, bounds)

		// Registered under the layer the popup was opened FROM, not its
		// own: tooltip suppression then applies to the opener's layer
		// while widgets inside the popup keep their tooltips.
		ctx.registerOpenPopup(ctx.currentLayer, pid)

		rect := ctx.drawFloating(pid, place.Min(), cfg.width, cfg.order, contents)
		ctx.RegisterArea(pid, cfg.order, rect)
		ctx.SetActivePopup(pid)

		if input != nil && rect.Contains(input.MousePos()) {
			ctx.WantCaptureMouse = true
		}
		if !wasOpen || rect.W != prevRect.W || rect.H != prevRect.H {
			// The recorded rect changed, so placement is one frame stale.
			ctx.Output.RequestRepaint()
		}

		if closeAfter {
			closePopup()
		}
		return true
	}
}

// drawFloating runs contents in a detached vertical layout at pos on the
// foreground layer and returns the painted rect. The surrounding layout
// stack is set aside so the overlay does not advance the page cursor, and
// the current layer is switched so contents know where they live.
func (ctx *Context) drawFloating(id ID, pos Vec2, width float32, order LayerOrder, contents func()) Rect {
	pad := ctx.style.PanelPadding

	savedList := ctx.DrawList
	savedStack := ctx.layoutStack
	savedCursor := ctx.cursor
	savedLayer := ctx.currentLayer
	ctx.DrawList = ctx.ForegroundDrawList
	ctx.layoutStack = nil
	ctx.currentLayer = LayerID{Order: order, ID: id}

	ctx.cursor = Vec2{X: pos.X + pad, Y: pos.Y + pad}
	layout := &Layout{
		Type:  LayoutVertical,
		Gap:   ctx.style.ItemSpacing,
		Width: width,
	}
	ctx.pushLayoutWith(layout)
	contents()
	bounds := ctx.popLayout()

	w := bounds.W + pad*2
	if width > 0 {
		w = width + pad*2
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: bounds.H + pad*2}

	// Background goes in behind the content that was just recorded.
	ctx.DrawList.InsertRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.PanelColor)
	if ctx.style.BorderSize > 0 {
		ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H,
			ctx.style.PanelBorderColor, ctx.style.BorderSize)
	}

	ctx.DrawList = savedList
	ctx.layoutStack = savedStack
	ctx.cursor = savedCursor
	ctx.currentLayer = savedLayer
	return rect
}
