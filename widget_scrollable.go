package gui

// scrollableStore is the type-safe store for scrollable state.
var scrollableStore = NewFrameStore[ScrollableState]()

// scrollableNameToID maps scrollable names to their IDs so state can be
// reached by name from outside the widget.
var scrollableNameToID = make(map[string]ID)

// userScrollCooldown suppresses auto-scroll briefly after the user scrolled
// by hand, so the view does not fight them.
const userScrollCooldown = 0.3

// scrollToward scrolls just far enough to bring targetY into the viewport,
// with padding rows of margin. No-op when the target is already visible.
func (st *ScrollableState) scrollToward(targetY, padding, viewportH float32) {
	if padding <= 0 {
		padding = 40
	}
	maxScroll := maxf(0, st.ContentHeight-viewportH)
	switch {
	case targetY < st.ScrollY+padding:
		st.ScrollY = clampf(targetY-padding, 0, maxScroll)
	case targetY > st.ScrollY+viewportH-padding:
		st.ScrollY = clampf(targetY-viewportH+padding, 0, maxScroll)
	}
}

// userScrolled records a manual scroll: it resets the auto-scroll cooldown
// and feeds the shared scroll clock that gates tooltips.
func (ctx *Context) userScrolled(st *ScrollableState) {
	st.UserScrolledThisFrame = true
	st.UserScrollTime = 0
	if ctx.Input != nil {
		ctx.Input.NoteScroll()
	}
	ctx.Output.RequestRepaint()
}

// EnsureScrollVisible scrolls a Scrollable to keep the given Y position
// visible. Call when a selection changes to follow the selected item.
// targetY is relative to the scrollable content (e.g. rowIndex * rowHeight).
func EnsureScrollVisible(ctx *Context, scrollID string, targetY, viewportHeight, padding float32) {
	storedID, ok := scrollableNameToID[scrollID+"_scrollable"]
	if !ok {
		return
	}
	state := scrollableStore.Get(storedID, ScrollableState{})
	state.scrollToward(targetY, padding, viewportHeight)
}

// GetScrollableState returns the scrollable's state for advanced
// manipulation, or nil if it has not been rendered yet.
func GetScrollableState(ctx *Context, id string) *ScrollableState {
	if storedID, ok := scrollableNameToID[id+"_scrollable"]; ok {
		return scrollableStore.GetIfExists(storedID)
	}
	return nil
}

// Scrollable runs contents inside a clipped, scrollable viewport of the
// given height. The wheel scrolls while hovered; PageUp/PageDown/Home/End
// scroll while hovered; the scrollbar thumb drags.
//
// Usage:
//
//	ctx.Scrollable("log", 300)(func() {
//	    for _, line := range lines {
//	        ctx.Text(line)
//	    }
//	})
func (ctx *Context) Scrollable(id string, height float32, opts ...Option) func(func()) {
	return func(contents func()) {
		o := applyOptions(opts)

		scrollID := ctx.GetID(id + "_scrollable")
		// A fresh scrollable starts with the cooldown expired so the first
		// auto-scroll is not swallowed.
		state := scrollableStore.Get(scrollID, ScrollableState{UserScrollTime: 1.0})
		scrollableNameToID[id+"_scrollable"] = scrollID

		x, y := ctx.cursor.X, ctx.cursor.Y
		w := ctx.currentLayoutWidth()
		if width := GetOpt(o, OptWidth); width > 0 {
			w = width
		}

		visibility := GetOpt(o, OptScrollbarVisibility)
		showScrollbar := visibility == ScrollbarAlways ||
			(visibility == ScrollbarAuto && state.ContentHeight > height)
		scrollbarWidth := float32(0)
		if showScrollbar {
			scrollbarWidth = ctx.style.ScrollbarSize
		}

		contentWidth := w - scrollbarWidth
		scrollbarX := x + w - scrollbarWidth
		contentX := x
		if GetOpt(o, OptScrollbarSide) == ScrollbarLeft {
			scrollbarX = x
			contentX = x + scrollbarWidth
		}

		viewportRect := Rect{X: x, Y: y, W: w, H: height}
		ctx.BeginFocusScope(scrollID, id, FocusTypeContainer, viewportRect)
		ctx.DrawList.PushClipRect(contentX, y, contentX+contentWidth, y+height)

		ctx.cursor.X = contentX
		ctx.cursor.Y = y - state.ScrollY
		horizontal := GetOpt(o, OptHorizontalScroll)
		if horizontal {
			ctx.cursor.X -= state.ScrollX
		}

		// Children reach the enclosing scrollable through this stack when
		// they call ctx.ScrollTo.
		ctx.pushScrollable(scrollID, ctx.cursor.Y, y, height)
		popped := false
		defer func() {
			if !popped {
				ctx.popScrollable()
			}
		}()

		ctx.pushLayoutWith(&Layout{
			Type:   LayoutVertical,
			Width:  contentWidth,
			Height: height,
			Gap:    ctx.style.ItemSpacing,
		})
		contents()
		bounds := ctx.popLayout()
		state.ContentHeight = bounds.H
		state.ContentWidth = bounds.W

		ctx.DrawList.PopClipRect()

		focusY, focusPad, focusOK := ctx.popScrollable()
		popped = true
		focusInfo := ctx.EndFocusScope()

		// Auto-scroll follows keyboard focus, explicit ScrollTo requests
		// and the focus option, in that order. Each target only moves the
		// view when it changed since last frame and the cooldown expired.
		keyboardNav := ctx.FocusRegistry() == nil || ctx.FocusRegistry().WasKeyboardNavigated()
		follow := func(targetY, padding float32) {
			if state.UserScrollTime >= userScrollCooldown &&
				(!state.FocusYSet || targetY != state.LastFocusY) {
				state.scrollToward(targetY, padding, height)
			}
			state.LastFocusY = targetY
			state.FocusYSet = true
		}
		if focusInfo.HasFocusedChild && keyboardNav {
			follow(focusInfo.FocusedChildY, focusInfo.FocusedChildHeight)
		}
		if focusOK && keyboardNav {
			follow(focusY, focusPad)
		}
		if focus := GetOpt(o, OptFocus); focus.Set {
			follow(focus.Y, focus.Padding)
		}
		if fy, fp, ok := ctx.ConsumeScrollFocus(); ok {
			follow(fy, fp)
		}

		showScrollbar = visibility == ScrollbarAlways ||
			(visibility != ScrollbarNever && state.ContentHeight > height)

		// Manual scrolling while hovered: wheel, then page keys.
		maxScroll := maxf(0, state.ContentHeight-height)
		if ctx.Input != nil && ctx.isHovered(scrollID, viewportRect) {
			if ctx.Input.MouseWheelY != 0 {
				state.ScrollY = clampf(state.ScrollY-ctx.Input.MouseWheelY*30, 0, maxScroll)
				ctx.userScrolled(state)
			}
			if horizontal && ctx.Input.MouseWheelX != 0 {
				hMax := maxf(0, state.ContentWidth-contentWidth)
				state.ScrollX = clampf(state.ScrollX-ctx.Input.MouseWheelX*30, 0, hMax)
				ctx.userScrolled(state)
			}

			page := height * 0.8
			switch {
			case ctx.Input.KeyPressed(KeyPageDown):
				state.ScrollY = clampf(state.ScrollY+page, 0, maxScroll)
				ctx.userScrolled(state)
			case ctx.Input.KeyPressed(KeyPageUp):
				state.ScrollY = clampf(state.ScrollY-page, 0, maxScroll)
				ctx.userScrolled(state)
			case ctx.Input.KeyPressed(KeyHome):
				state.ScrollY = 0
				ctx.userScrolled(state)
			case ctx.Input.KeyPressed(KeyEnd):
				state.ScrollY = maxScroll
				ctx.userScrolled(state)
			}
		}

		if showScrollbar && state.ContentHeight > height {
			ctx.drawScrollbar(scrollID, state, scrollbarX, y, scrollbarWidth, height, maxScroll)
		}

		if horizontal && state.ContentWidth > contentWidth {
			hBarH := ctx.style.ScrollbarSize
			hBarY := y + height - hBarH
			ratio := contentWidth / state.ContentWidth
			thumbW := maxf(20, contentWidth*ratio)
			hMax := state.ContentWidth - contentWidth
			thumbX := float32(0)
			if hMax > 0 {
				thumbX = (state.ScrollX / hMax) * (contentWidth - thumbW)
			}
			ctx.DrawList.AddRect(contentX, hBarY, contentWidth, hBarH, ctx.style.ScrollbarBgColor)
			ctx.DrawList.AddRect(contentX+thumbX, hBarY, thumbW, hBarH, ctx.style.ScrollbarGrabColor)
		}

		if !state.UserScrolledThisFrame {
			state.UserScrollTime += ctx.DeltaTime
		}
		state.UserScrolledThisFrame = false

		ctx.cursor.X = x
		ctx.cursor.Y = y + height
	}
}

// drawScrollbar draws the vertical scrollbar and handles thumb drags and
// track clicks.
func (ctx *Context) drawScrollbar(scrollID ID, state *ScrollableState,
	barX, barY, barW, viewportH, maxScroll float32) {

	ratio := viewportH / state.ContentHeight
	thumbH := maxf(20, viewportH*ratio)
	thumbPos := float32(0)
	if maxScroll > 0 {
		thumbPos = (state.ScrollY / maxScroll) * (viewportH - thumbH)
	}
	thumbY := barY + thumbPos

	ctx.DrawList.AddRect(barX, barY, barW, viewportH, ctx.style.ScrollbarBgColor)

	thumbRect := Rect{X: barX, Y: thumbY, W: barW, H: thumbH}
	thumbHovered := ctx.isHovered(scrollID, thumbRect)

	if ctx.Input != nil {
		if thumbHovered && ctx.Input.MouseClicked(MouseButtonLeft) {
			state.Dragging = true
			state.DragStartY = ctx.Input.MouseY
			state.DragStartScr = state.ScrollY
		}
		if state.Dragging {
			if ctx.Input.MouseDown(MouseButtonLeft) {
				ctx.Output.CursorIcon = CursorGrabbing
				if track := viewportH - thumbH; track > 0 {
					delta := (ctx.Input.MouseY - state.DragStartY) * (maxScroll / track)
					state.ScrollY = clampf(state.DragStartScr+delta, 0, maxScroll)
				}
				ctx.userScrolled(state)
			} else {
				state.Dragging = false
			}
		}

		// Clicking the track above or below the thumb pages the view.
		barRect := Rect{X: barX, Y: barY, W: barW, H: viewportH}
		if !thumbHovered && ctx.isHovered(scrollID, barRect) && ctx.Input.MouseClicked(MouseButtonLeft) {
			if ctx.Input.MouseY < thumbY {
				state.ScrollY = clampf(state.ScrollY-viewportH, 0, maxScroll)
				ctx.userScrolled(state)
			} else if ctx.Input.MouseY > thumbY+thumbH {
				state.ScrollY = clampf(state.ScrollY+viewportH, 0, maxScroll)
				ctx.userScrolled(state)
			}
		}
	}

	color := ctx.style.ScrollbarGrabColor
	if state.Dragging || thumbHovered {
		color = ctx.style.ScrollbarGrabHovered
	}
	ctx.DrawList.AddRect(barX, thumbY, barW, thumbH, color)
}
