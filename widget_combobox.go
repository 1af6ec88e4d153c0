package gui

import "strings"

// ComboBox draws a dropdown selection widget on the popup system. The
// dropdown closes when an item is picked, on Escape, or on a click outside
// it. Returns true if the selection changed.
//
// Usage:
//
//	items := []string{"Low", "Medium", "High"}
//	if ctx.ComboBox("Quality", &selectedIndex, items) {
//	    applyQuality(selectedIndex)
//	}
func (ctx *Context) ComboBox(label string, selectedIndex *int, items []string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	name := "combo##" + label
	if optID := GetOpt(o, OptID); optID != "" {
		name = "combo##" + optID
	}
	id := popupID(name)

	state := GetState(ctx, id, ComboBoxState{KeyboardIndex: -1})

	labelWidth := float32(0)
	if label != "" {
		labelWidth = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}

	// Size the closed box to the widest item unless a width was given.
	comboWidth := float32(150)
	if width := GetOpt(o, OptWidth); width > 0 {
		comboWidth = width
	} else {
		for _, item := range items {
			w := ctx.MeasureText(item).X + ctx.style.ButtonPadding*2 + 20 // room for the arrow
			if w > comboWidth {
				comboWidth = w
			}
		}
	}

	h := ctx.lineHeight() + ctx.style.ButtonPadding*2
	if label != "" {
		ctx.addText(pos.X, pos.Y+(h-ctx.lineHeight())/2, label, ctx.style.TextColor)
	}

	headerRect := Rect{X: pos.X + labelWidth, Y: pos.Y, W: comboWidth, H: h}
	open := ctx.IsPopupOpen(name)
	hovered := ctx.isHovered(id, headerRect)
	if hovered {
		ctx.Output.CursorIcon = CursorPointer
	}

	focusable := ctx.RegisterFocusable(id, label, headerRect, FocusTypeLeaf)
	isFocused := focusable != nil && focusable.IsFocused()

	bg := ctx.style.ButtonColor
	if hovered || open || isFocused {
		bg = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(headerRect.X, headerRect.Y, headerRect.W, headerRect.H, bg)
	ctx.DrawList.AddRectOutline(headerRect.X, headerRect.Y, headerRect.W, headerRect.H,
		ctx.style.InputBorderColor, 1)

	selectedText := ""
	if *selectedIndex >= 0 && *selectedIndex < len(items) {
		selectedText = items[*selectedIndex]
	}
	ctx.addText(headerRect.X+ctx.style.ButtonPadding, headerRect.Y+(h-ctx.lineHeight())/2,
		selectedText, ctx.style.TextColor)

	const arrowSize = float32(8)
	arrowX := headerRect.X + comboWidth - ctx.style.ButtonPadding - arrowSize
	arrowY := headerRect.Y + h/2
	if open {
		ctx.DrawList.AddTriangle(
			arrowX+arrowSize/2, arrowY-arrowSize/4,
			arrowX, arrowY+arrowSize/4,
			arrowX+arrowSize, arrowY+arrowSize/4,
			ctx.style.ComboArrowColor,
		)
	} else {
		ctx.DrawList.AddTriangle(
			arrowX+arrowSize/2, arrowY+arrowSize/4,
			arrowX, arrowY-arrowSize/4,
			arrowX+arrowSize, arrowY-arrowSize/4,
			ctx.style.ComboArrowColor,
		)
	}

	// Click or Enter/Space (while focused and closed) toggles the dropdown.
	toggle := ctx.isClicked(id, headerRect)
	if !toggle && isFocused && !open && ctx.Input != nil &&
		(ctx.Input.KeyPressed(KeyEnter) || ctx.Input.KeyPressed(KeySpace)) {
		toggle = true
	}
	if toggle {
		ctx.TogglePopup(name)
		if !open {
			state.KeyboardIndex = *selectedIndex
			state.SearchText = ""
			state.FirstVisible = 0
		}
		open = !open
	}

	changed := false
	if open {
		ctx.WantCaptureKeyboard = true
		ctx.Popup(name, AnchorParentRect(headerRect),
			PopupAlign(AlignBottomStart),
			PopupWidth(comboWidth),
			PopupClose(CloseOnClickOutside),
		)(func() {
			changed = ctx.comboDropdown(name, &state, selectedIndex, items, o, comboWidth, toggle)
		})
	}

	if changed {
		value := ""
		if *selectedIndex >= 0 && *selectedIndex < len(items) {
			value = items[*selectedIndex]
		}
		ctx.Output.PushEvent(OutputEvent{Kind: EventValueChanged, ID: id, Value: value})
	}

	SetState(ctx, id, state)
	ctx.advanceCursor(Vec2{X: labelWidth + comboWidth, Y: h})
	return changed
}

// comboDropdown draws the open dropdown's contents: an optional search box
// and a windowed item list. Runs inside the popup's floating layout.
func (ctx *Context) comboDropdown(name string, state *ComboBoxState, selectedIndex *int,
	items []string, o options, comboWidth float32, justOpened bool) bool {

	input := ctx.Input

	// Filter when searchable: typed characters narrow the list.
	searchable := GetOpt(o, OptSearchable)
	if searchable && input != nil {
		for _, ch := range input.InputChars {
			if ch >= 32 && ch < 127 {
				state.SearchText += string(ch)
				state.FirstVisible = 0
			}
		}
		if input.KeyRepeated(KeyBackspace) && len(state.SearchText) > 0 {
			state.SearchText = state.SearchText[:len(state.SearchText)-1]
			state.FirstVisible = 0
		}
	}

	visible := items
	indices := make([]int, 0, len(items))
	for i := range items {
		indices = append(indices, i)
	}
	if searchable && state.SearchText != "" {
		visible = nil
		indices = indices[:0]
		needle := strings.ToLower(state.SearchText)
		for i, item := range items {
			if strings.Contains(strings.ToLower(item), needle) {
				visible = append(visible, item)
				indices = append(indices, i)
			}
		}
	}

	if searchable {
		prompt := state.SearchText
		color := ctx.style.TextColor
		if prompt == "" {
			prompt = "Search..."
			color = ctx.style.TextDisabledColor
		}
		p := ctx.ItemPos()
		searchH := ctx.lineHeight() + ctx.style.InputPadding*2
		ctx.DrawList.AddRect(p.X, p.Y, comboWidth-ctx.style.PanelPadding*2, searchH,
			ctx.style.InputBgColor)
		ctx.addText(p.X+ctx.style.InputPadding, p.Y+ctx.style.InputPadding, prompt, color)
		ctx.advanceCursor(Vec2{X: comboWidth - ctx.style.PanelPadding * 2, Y: searchH})
	}

	// Window the list to the max dropdown height; the wheel moves the window.
	rowH := ctx.lineHeight() + ctx.style.ItemSpacing
	maxH := GetOpt(o, OptMaxDropdownHeight)
	if maxH == 0 {
		maxH = 200
	}
	maxRows := int(maxH / rowH)
	if maxRows < 1 {
		maxRows = 1
	}
	if input != nil && input.MouseWheelY != 0 {
		state.FirstVisible -= int(input.MouseWheelY)
	}
	if state.FirstVisible > len(visible)-maxRows {
		state.FirstVisible = len(visible) - maxRows
	}
	if state.FirstVisible < 0 {
		state.FirstVisible = 0
	}

	// Keyboard navigation walks the filtered list.
	if input != nil {
		if state.KeyboardIndex < 0 {
			state.KeyboardIndex = *selectedIndex
		}
		if input.KeyRepeated(KeyUp) && state.KeyboardIndex > 0 {
			state.KeyboardIndex--
		}
		if input.KeyRepeated(KeyDown) && state.KeyboardIndex < len(visible)-1 {
			state.KeyboardIndex++
		}
		if state.KeyboardIndex < state.FirstVisible {
			state.FirstVisible = state.KeyboardIndex
		}
		if state.KeyboardIndex >= state.FirstVisible+maxRows {
			state.FirstVisible = state.KeyboardIndex - maxRows + 1
		}
	}

	changed := false
	pick := func(original int) {
		if original != *selectedIndex {
			*selectedIndex = original
			changed = true
		}
		ctx.ClosePopup(name)
	}

	last := state.FirstVisible + maxRows
	if last > len(visible) {
		last = len(visible)
	}
	for i := state.FirstVisible; i < last; i++ {
		original := indices[i]
		p := ctx.ItemPos()
		rowRect := Rect{X: p.X, Y: p.Y, W: comboWidth - ctx.style.PanelPadding*2, H: rowH}

		rowHovered := input != nil && rowRect.Contains(input.MousePos())
		switch {
		case original == *selectedIndex || state.KeyboardIndex == i:
			ctx.DrawList.AddRect(rowRect.X, rowRect.Y, rowRect.W, rowRect.H, ctx.style.SelectedBgColor)
		case rowHovered:
			ctx.DrawList.AddRect(rowRect.X, rowRect.Y, rowRect.W, rowRect.H, ctx.style.HoveredBgColor)
		}

		color := ctx.style.TextColor
		if original == *selectedIndex || state.KeyboardIndex == i {
			color = ctx.style.SelectedTextColor
		}
		ctx.addText(rowRect.X+ctx.style.ItemSpacing, rowRect.Y, visible[i], color)

		if rowHovered {
			ctx.Output.CursorIcon = CursorPointer
			if input.MouseClicked(MouseButtonLeft) {
				pick(original)
			}
		}
		ctx.advanceCursor(Vec2{X: rowRect.W, Y: rowH})
	}

	// Enter picks the keyboard row; skipped on the frame the dropdown
	// opened so the opening keypress does not immediately close it.
	if !justOpened && input != nil && input.KeyPressed(KeyEnter) {
		if state.KeyboardIndex >= 0 && state.KeyboardIndex < len(indices) {
			pick(indices[state.KeyboardIndex])
		}
	}
	return changed
}
