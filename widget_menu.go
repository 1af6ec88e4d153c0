package gui

// Menu bar, dropdown menus and context menus, built on the popup system.
// Menus close on any click (CloseOnClick), so picking an item dismisses the
// menu in the same frame the item fires.

// MenuBar draws a horizontal bar across the current layout width and runs
// contents inside it. Use Menu for the entries.
//
// Usage:
//
//	ctx.MenuBar(func() {
//	    ctx.Menu("File")(func() {
//	        if ctx.MenuItem("Open", "Ctrl+O") { ... }
//	    })
//	})
func (ctx *Context) MenuBar(contents func()) {
	pos := ctx.ItemPos()
	w := ctx.currentLayoutWidth()
	h := ctx.lineHeight() + ctx.style.ButtonPadding*2

	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.PanelHeaderBgColor)
	ctx.HStack(Gap(SpaceXS))(contents)
}

// Menu draws a menu bar entry and shows its dropdown while open. Clicking
// toggles the dropdown; while any sibling menu is open, hovering another
// entry switches to it without a click.
func (ctx *Context) Menu(label string, opts ...Option) func(func()) {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	name := "menu##" + label
	if optID := GetOpt(o, OptID); optID != "" {
		name = "menu##" + optID
	}
	id := popupID(name)

	textSize := ctx.MeasureText(label)
	rect := Rect{
		X: pos.X,
		Y: pos.Y,
		W: textSize.X + ctx.style.ButtonPadding*2,
		H: ctx.lineHeight() + ctx.style.ButtonPadding*2,
	}

	disabled := GetOpt(o, OptDisabled)
	hovered := ctx.isHovered(id, rect) && !disabled
	open := ctx.IsPopupOpen(name)

	if hovered && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
		ctx.TogglePopup(name)
		open = !open
	}
	if hovered && !open && ctx.menuOpen != "" && ctx.menuOpen != name {
		// Sliding along an open menu bar.
		ctx.ClosePopup(ctx.menuOpen)
		ctx.OpenPopup(name)
		open = true
	}
	if open {
		ctx.menuOpen = name
	} else if ctx.menuOpen == name {
		ctx.menuOpen = ""
	}

	if open {
		ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.SelectedBgColor)
	} else if hovered {
		ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.HoveredBgColor)
	}
	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	} else if open {
		textColor = ctx.style.SelectedTextColor
	}
	ctx.addText(rect.X+ctx.style.ButtonPadding, rect.Y+ctx.style.ButtonPadding, label, textColor)
	ctx.advanceCursor(Vec2{X: rect.W, Y: rect.H})

	return func(contents func()) {
		shown := ctx.Popup(name, AnchorParentRect(rect))(contents)
		if !shown && ctx.menuOpen == name {
			ctx.menuOpen = ""
		}
	}
}

// MenuItem draws one menu row with an optional right-aligned shortcut hint.
// Returns true when the row is clicked. The enclosing menu closes itself on
// the same click.
func (ctx *Context) MenuItem(label, shortcut string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	al := AtomicLayout{
		Atomics: []Atomic{
			{Text: label},
			{Grow: true},
		},
		Gap:    ctx.style.ItemSpacing,
		AlignV: AlignCenter,
	}
	if shortcut != "" {
		al.Atomics = append(al.Atomics, Atomic{Text: shortcut})
	}

	w := ctx.currentLayoutWidth()
	pad := ctx.style.ButtonPadding
	sol := al.Solve(ctx, Vec2{X: w - pad*2})
	if w <= sol.IntrinsicSize.X+pad*2 {
		// Natural width plus room so label and shortcut never touch.
		w = sol.IntrinsicSize.X + pad*2 + SpaceLG*2
		sol = al.Solve(ctx, Vec2{X: w - pad*2})
	}
	h := ctx.lineHeight() + pad

	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	disabled := GetOpt(o, OptDisabled)
	hovered := ctx.isHovered(id, rect) && !disabled
	clicked := hovered && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft)

	if hovered {
		ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.HoveredBgColor)
	}

	slots := sol.Place(&al, Rect{X: rect.X + pad, Y: rect.Y, W: w - pad*2, H: h})
	labelColor := ctx.style.TextColor
	if disabled {
		labelColor = ctx.style.TextDisabledColor
	}
	ctx.addText(slots[0].X, slots[0].Y, label, labelColor)
	if shortcut != "" {
		ctx.addText(slots[len(slots)-1].X, slots[len(slots)-1].Y, shortcut, ctx.style.TextDisabledColor)
	}

	ctx.advanceCursor(Vec2{X: w, Y: h})
	return clicked
}

// ContextMenu opens a popup at the pointer when target is right-clicked.
// The popup stays where it opened (pointer-fixed anchor).
//
// Usage:
//
//	ctx.ContextMenu("item_ctx", rowRect)(func() {
//	    if ctx.MenuItem("Delete", "") { ... }
//	})
func (ctx *Context) ContextMenu(id string, target Rect, opts ...PopupOption) func(func()) bool {
	if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonRight) &&
		target.Contains(ctx.Input.MousePos()) {
		ctx.OpenPopup(id)
	}
	return ctx.Popup(id, AnchorPointerFixed(), opts...)
}
