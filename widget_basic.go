package gui

// widgetID resolves a widget's ID: the WithID option wins over the label.
func (ctx *Context) widgetID(label string, o options) ID {
	if optID := GetOpt(o, OptID); optID != "" {
		return ctx.GetID(optID)
	}
	return ctx.GetID(label)
}

// registerLeaf registers a leaf widget with the focus registry, honoring
// the disabled flag, and returns its handle (nil when disabled).
func (ctx *Context) registerLeaf(id ID, label string, rect Rect, disabled bool) *FocusableHandle {
	if disabled {
		ctx.RegisterFocusableDisabled(id, label, rect, FocusTypeLeaf)
		return nil
	}
	return ctx.RegisterFocusable(id, label, rect, FocusTypeLeaf)
}

// Text draws a line of text.
func (ctx *Context) Text(text string) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextColored draws a line of text in the given color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, color)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws a line of text in the disabled color.
func (ctx *Context) TextDisabled(text string) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextDisabledColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// SelectableRow highlights a custom row when selected, then runs content
// on top of the highlight. Pass rowWidth 0 for the 200px default.
//
// Example:
//
//	ctx.SelectableRow(isSelected, 180)(func() {
//	    ctx.Text("Label:")
//	    ctx.InputText("", &value, gui.WithID("input"))
//	})
func (ctx *Context) SelectableRow(selected bool, rowWidth float32) func(func()) {
	return func(content func()) {
		pos := ctx.ItemPos()
		h := ctx.lineHeight()

		if rowWidth <= 0 {
			rowWidth = 200
		}

		if selected {
			ctx.DrawList.AddRect(pos.X, pos.Y, rowWidth, h, ctx.style.SelectedBgColor)
			ctx.DrawList.AddRect(pos.X, pos.Y, selectionBarWidth, h, ColorCyan)
		}

		content()
	}
}

// selectionBarWidth is the left-edge marker on selected rows.
const selectionBarWidth float32 = 4

// TextWrapped draws word-wrapped text. maxWidth 0 wraps at the current
// layout width.
func (ctx *Context) TextWrapped(text string, maxWidth float32) {
	if maxWidth <= 0 {
		maxWidth = ctx.currentLayoutWidth()
	}

	lines := WrapText(ctx, text, maxWidth, WrapModeAuto)
	if len(lines) == 0 {
		return
	}

	pos := ctx.ItemPos()
	lineH := ctx.lineHeight()
	for i, line := range lines {
		ctx.addText(pos.X, pos.Y+float32(i)*lineH, line, ctx.style.TextColor)
	}

	ctx.advanceCursor(Vec2{maxWidth, float32(len(lines)) * lineH})
}

// LabelText draws a label and value side by side.
func (ctx *Context) LabelText(label, value string) {
	ctx.HStack()(func() {
		ctx.Text(label)
		ctx.Text(value)
	})
}

// Button draws a button and returns true on click.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		size.X = optWidth
	}
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		size.Y = optHeight
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	disabled := GetOpt(o, OptDisabled)
	ctx.registerLeaf(id, label, rect, disabled)

	hovered := ctx.isHovered(id, rect) && !disabled
	pressed := ctx.isPressed(id, rect) && !disabled
	focused := ctx.IsRegistryFocused(id)

	bgColor := ctx.style.ButtonColor
	switch {
	case disabled:
		bgColor = ctx.style.ButtonDisabledColor
	case pressed || focused:
		bgColor = ctx.style.ButtonActiveColor
	case hovered:
		bgColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bgColor)

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, label, textColor)

	if hovered {
		ctx.Output.CursorIcon = CursorPointer
	}

	clicked := !disabled && ctx.isClicked(id, rect)
	if clicked {
		ctx.Output.PushEvent(OutputEvent{Kind: EventClicked, ID: id, Value: label})
	}
	ctx.advanceCursor(size)

	return clicked
}

// SmallButton is Button with minimal padding.
func (ctx *Context) SmallButton(label string, opts ...Option) bool {
	savedPadding := ctx.style.ButtonPadding
	ctx.style.ButtonPadding = 2
	result := ctx.Button(label, opts...)
	ctx.style.ButtonPadding = savedPadding
	return result
}

// Selectable draws a list item and returns true on click. A selected
// item gets a "> " prefix, a highlight, and the left-edge bar.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	prefix := "  "
	if selected {
		prefix = "> "
	}

	textSize := ctx.MeasureText(prefix + label)
	w := textSize.X + ctx.style.ItemSpacing*2
	h := ctx.lineHeight()

	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}
	disabled := GetOpt(o, OptDisabled)
	ctx.registerLeaf(id, label, rect, disabled)

	hovered := ctx.isHovered(id, rect) && !disabled
	focused := ctx.IsRegistryFocused(id)

	var bgColor uint32
	textColor := ctx.style.TextColor
	if selected || focused {
		bgColor = ctx.style.SelectedBgColor
		textColor = ctx.style.SelectedTextColor
	} else if hovered {
		bgColor = ctx.style.HoveredBgColor
	}
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}

	if bgColor != 0 {
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bgColor)
	}

	if selected || focused {
		ctx.DrawList.AddRect(pos.X, pos.Y, selectionBarWidth, h, ColorCyan)
		// RegisterFocusable already highlights the focused item
		if selected && !focused {
			ctx.DrawDebugFocusRect(pos.X, pos.Y, w, h)
		}
	}

	ctx.addText(pos.X, pos.Y, prefix+label, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.advanceCursor(Vec2{w, h})

	return clicked
}

// Checkbox draws a labeled checkbox. Returns true when the value flipped.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	boxSize := ctx.lineHeight()
	totalWidth := boxSize + ctx.style.ItemSpacing + ctx.MeasureText(label).X

	rect := Rect{X: pos.X, Y: pos.Y, W: totalWidth, H: boxSize}
	disabled := GetOpt(o, OptDisabled)
	ctx.registerLeaf(id, label, rect, disabled)

	hovered := ctx.isHovered(id, rect) && !disabled
	focused := ctx.IsRegistryFocused(id)

	boxColor := ctx.style.InputBgColor
	if focused || hovered {
		boxColor = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, boxSize, boxSize, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, boxSize, boxSize,
		ctx.style.InputBorderColor, 1)

	if *value {
		// X mark
		inset := boxSize * 0.2
		x1, y1 := pos.X+inset, pos.Y+inset
		x2, y2 := pos.X+boxSize-inset, pos.Y+boxSize-inset
		ctx.DrawList.AddLine(x1, y1, x2, y2, ctx.style.TextColor, 2)
		ctx.DrawList.AddLine(x1, y2, x2, y1, ctx.style.TextColor, 2)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(pos.X+boxSize+ctx.style.ItemSpacing, pos.Y, label, textColor)

	if hovered {
		ctx.Output.CursorIcon = CursorPointer
	}

	changed := false
	if !disabled && ctx.isClicked(id, rect) {
		*value = !*value
		changed = true
		ctx.Output.PushEvent(OutputEvent{Kind: EventValueChanged, ID: id, Value: label})
	}

	ctx.advanceCursor(Vec2{totalWidth, boxSize})
	return changed
}

// RadioButton draws one option of a radio set. Returns true on click;
// the caller updates its own selection.
func (ctx *Context) RadioButton(label string, active bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	markSize := ctx.lineHeight()
	totalWidth := markSize + ctx.style.ItemSpacing + ctx.MeasureText(label).X

	rect := Rect{X: pos.X, Y: pos.Y, W: totalWidth, H: markSize}
	disabled := GetOpt(o, OptDisabled)
	ctx.registerLeaf(id, label, rect, disabled)

	hovered := ctx.isHovered(id, rect) && !disabled
	focused := ctx.IsRegistryFocused(id)
	if hovered {
		ctx.Output.CursorIcon = CursorPointer
	}

	// Square mark, matching the 8x8 bitmap font's look
	boxColor := ctx.style.InputBgColor
	if focused || hovered {
		boxColor = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, markSize, markSize, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, markSize, markSize,
		ctx.style.InputBorderColor, 1)

	if active {
		inset := markSize * 0.25
		ctx.DrawList.AddRect(
			pos.X+inset, pos.Y+inset,
			markSize-inset*2, markSize-inset*2,
			ctx.style.SelectedBgColor)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(pos.X+markSize+ctx.style.ItemSpacing, pos.Y, label, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)

	ctx.advanceCursor(Vec2{totalWidth, markSize})
	return clicked
}

// ProgressBar draws a bar filled to fraction, clamped to [0, 1].
func (ctx *Context) ProgressBar(fraction float32, opts ...Option) {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	w := ctx.currentLayoutWidth()
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		w = optWidth
	}
	h := ctx.lineHeight()
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		h = optHeight
	}

	fraction = clampf(fraction, 0, 1)

	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.InputBgColor)
	if fillW := w * fraction; fillW > 0 {
		ctx.DrawList.AddRect(pos.X, pos.Y, fillW, h, ctx.style.SelectedBgColor)
	}
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, h, ctx.style.InputBorderColor, 1)

	ctx.advanceCursor(Vec2{w, h})
}

// InputText draws a single-line text field with cursor positioning, text
// selection, clipboard (Ctrl+C/V/X), undo/redo (Ctrl+Z/Y) and arrow/
// Home/End navigation. Returns true when the value changed.
func (ctx *Context) InputText(label string, value *string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	state := GetState(ctx, id, InputTextState{
		CursorPos:      len([]rune(*value)),
		SelectionStart: -1,
		SelectionEnd:   -1,
	})

	// When edit mode starts this frame, the key that started it must not
	// also be processed as editing input (Enter would immediately close).
	justStartedEditing := false
	if GetOpt(o, OptForceFocus) && !state.Editing {
		state.Editing = true
		justStartedEditing = true
	}

	drawX := pos.X
	startX := pos.X

	if label != "" {
		ctx.addText(drawX, pos.Y, label, ctx.style.TextColor)
		drawX += ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}

	w := float32(200)
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		w = optWidth
	}
	h := ctx.lineHeight() + ctx.style.InputPadding*2

	rect := Rect{X: drawX, Y: pos.Y, W: w, H: h}

	focusable := ctx.RegisterFocusable(id, label, rect, FocusTypeLeaf)
	isRegistryFocused := focusable != nil && focusable.IsFocused()

	// Enter starts editing when navigated to but not yet editing
	if isRegistryFocused && !state.Editing && ctx.Input != nil && ctx.Input.KeyPressed(KeyEnter) {
		state.Editing = true
		justStartedEditing = true
		state.CursorBlinkTime = 0
		state.CursorPos = len([]rune(*value))
		state.SelectAll(len([]rune(*value)))
	}

	bgColor := ctx.style.InputBgColor
	if state.Editing {
		bgColor = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(drawX, pos.Y, w, h, bgColor)
	ctx.DrawList.AddRectOutline(drawX, pos.Y, w, h, ctx.style.InputBorderColor, 1)

	runes := []rune(*value)
	textLen := len(runes)

	if state.CursorPos > textLen {
		state.CursorPos = textLen
	}
	if state.CursorPos < 0 {
		state.CursorPos = 0
	}

	textX := drawX + ctx.style.InputPadding
	textY := pos.Y + ctx.style.InputPadding
	maxWidth := w - ctx.style.InputPadding*2

	// Keep the cursor inside the visible window
	cursorTextWidth := ctx.MeasureText(string(runes[:state.CursorPos])).X
	if cursorTextWidth-state.ScrollOffset > maxWidth {
		state.ScrollOffset = cursorTextWidth - maxWidth + 10
	}
	if cursorTextWidth < state.ScrollOffset {
		state.ScrollOffset = cursorTextWidth
	}
	if state.ScrollOffset < 0 {
		state.ScrollOffset = 0
	}

	ctx.DrawList.PushClipRect(textX, pos.Y, textX+maxWidth, pos.Y+h)

	if state.Editing && state.HasSelection() {
		selStart, selEnd := state.GetSelectedRange()
		selStartX := ctx.MeasureText(string(runes[:selStart])).X - state.ScrollOffset
		selEndX := ctx.MeasureText(string(runes[:selEnd])).X - state.ScrollOffset
		ctx.DrawList.AddRect(textX+selStartX, pos.Y+2, selEndX-selStartX, h-4, ctx.style.SelectedBgColor)
	}

	ctx.addText(textX-state.ScrollOffset, textY, *value, ctx.style.TextColor)

	ctx.DrawList.PopClipRect()

	if state.Editing {
		state.CursorBlinkTime += ctx.DeltaTime
		if int(state.CursorBlinkTime*2)%2 == 0 {
			cursorX := textX + cursorTextWidth - state.ScrollOffset
			ctx.DrawList.AddLine(cursorX, pos.Y+2, cursorX, pos.Y+h-2, ctx.style.TextColor, 1)
		}
	}

	// A click enters edit mode and puts the cursor under the pointer.
	// Registry focus itself comes from RegisterFocusable.
	if ctx.isClicked(id, rect) {
		state.Editing = true
		state.CursorBlinkTime = 0

		clickX := ctx.Input.MouseX - textX + state.ScrollOffset
		newCursorPos := 0
		for i := 0; i <= textLen; i++ {
			if ctx.MeasureText(string(runes[:i])).X > clickX {
				break
			}
			newCursorPos = i
		}
		state.CursorPos = newCursorPos
		state.ClearSelection()
	}

	// Navigating away ends the edit
	if state.Editing && !isRegistryFocused {
		state.Editing = false
	}

	if ctx.Input != nil && rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY}) {
		ctx.Output.CursorIcon = CursorText
	}
	if state.Editing {
		imeRect := rect
		ctx.Output.IMERect = &imeRect
	}

	changed := false
	if state.Editing && ctx.Input != nil {
		ctx.WantCaptureKeyboard = true
		if !justStartedEditing {
			changed = ctx.editText(value, &state, &runes)
		}
	}
	if changed {
		ctx.Output.PushEvent(OutputEvent{Kind: EventValueChanged, ID: id, Value: *value})
	}

	SetState(ctx, id, state)

	ctx.cursor.X = startX
	ctx.advanceCursor(Vec2{w + (drawX - startX), h})

	return changed
}

// editText applies one frame of keyboard input to an InputText's value.
// Returns true when the value changed.
func (ctx *Context) editText(value *string, state *InputTextState, runes *[]rune) bool {
	input := ctx.Input
	textLen := len(*runes)

	deleteSelection := func() bool {
		if !state.HasSelection() {
			return false
		}
		start, end := state.GetSelectedRange()
		state.PushUndo(*value)
		*runes = append((*runes)[:start], (*runes)[end:]...)
		*value = string(*runes)
		state.CursorPos = start
		state.ClearSelection()
		return true
	}

	if input.ModCtrl {
		if handled, changed := ctx.editShortcut(value, state, runes, deleteSelection); handled {
			return changed
		}
	}

	changed := false

	if input.KeyRepeated(KeyLeft) {
		if state.CursorPos > 0 {
			if input.ModCtrl {
				state.CursorPos = findWordBoundaryLeft(*runes, state.CursorPos)
			} else {
				state.CursorPos--
			}
		}
		if !input.ModShift {
			state.ClearSelection()
		} else {
			if state.SelectionStart < 0 {
				state.SelectionStart = state.CursorPos + 1
			}
			state.SelectionEnd = state.CursorPos
		}
		state.CursorBlinkTime = 0
	}

	if input.KeyRepeated(KeyRight) {
		if state.CursorPos < textLen {
			if input.ModCtrl {
				state.CursorPos = findWordBoundaryRight(*runes, state.CursorPos)
			} else {
				state.CursorPos++
			}
		}
		if !input.ModShift {
			state.ClearSelection()
		} else {
			if state.SelectionStart < 0 {
				state.SelectionStart = state.CursorPos - 1
			}
			state.SelectionEnd = state.CursorPos
		}
		state.CursorBlinkTime = 0
	}

	if input.KeyPressed(KeyHome) {
		state.CursorPos = 0
		if !input.ModShift {
			state.ClearSelection()
		} else {
			if state.SelectionStart < 0 {
				state.SelectionStart = textLen
			}
			state.SelectionEnd = 0
		}
		state.CursorBlinkTime = 0
	}

	if input.KeyPressed(KeyEnd) {
		state.CursorPos = textLen
		if !input.ModShift {
			state.ClearSelection()
		} else {
			if state.SelectionStart < 0 {
				state.SelectionStart = 0
			}
			state.SelectionEnd = textLen
		}
		state.CursorBlinkTime = 0
	}

	if input.KeyRepeated(KeyBackspace) {
		if state.HasSelection() {
			deleteSelection()
			changed = true
		} else if state.CursorPos > 0 {
			state.PushUndo(*value)
			*runes = append((*runes)[:state.CursorPos-1], (*runes)[state.CursorPos:]...)
			*value = string(*runes)
			state.CursorPos--
			changed = true
		}
		state.CursorBlinkTime = 0
	}

	if input.KeyRepeated(KeyDelete) {
		if state.HasSelection() {
			deleteSelection()
			changed = true
		} else if state.CursorPos < textLen {
			state.PushUndo(*value)
			*runes = append((*runes)[:state.CursorPos], (*runes)[state.CursorPos+1:]...)
			*value = string(*runes)
			changed = true
		}
		state.CursorBlinkTime = 0
	}

	if input.KeyPressed(KeyEscape) || input.KeyPressed(KeyEnter) {
		state.Editing = false
		return changed
	}

	for _, ch := range input.InputChars {
		if ch >= 32 {
			deleteSelection()
			state.PushUndo(*value)
			*runes = append((*runes)[:state.CursorPos], append([]rune{ch}, (*runes)[state.CursorPos:]...)...)
			*value = string(*runes)
			state.CursorPos++
			changed = true
		}
	}

	return changed
}

// editShortcut handles the Ctrl-modified editing shortcuts. handled is
// true when a shortcut key was pressed, in which case no other editing
// input runs this frame; changed reports a value change.
func (ctx *Context) editShortcut(value *string, state *InputTextState, runes *[]rune, deleteSelection func() bool) (handled, changed bool) {
	input := ctx.Input
	textLen := len(*runes)

	switch {
	case input.KeyPressed(KeyA): // select all
		state.SelectAll(textLen)
		return true, false

	case input.KeyPressed(KeyC): // copy
		if state.HasSelection() {
			start, end := state.GetSelectedRange()
			ClipboardSetText(string((*runes)[start:end]))
		}
		return true, false

	case input.KeyPressed(KeyX): // cut
		if state.HasSelection() {
			start, end := state.GetSelectedRange()
			ClipboardSetText(string((*runes)[start:end]))
			deleteSelection()
			changed = true
		}
		return true, changed

	case input.KeyPressed(KeyV): // paste
		clip := ClipboardGetText()
		if clip != "" {
			deleteSelection()
			state.PushUndo(*value)
			clipRunes := []rune(clip)
			*runes = append((*runes)[:state.CursorPos], append(clipRunes, (*runes)[state.CursorPos:]...)...)
			*value = string(*runes)
			state.CursorPos += len(clipRunes)
			changed = true
		}
		return true, changed

	case input.KeyPressed(KeyZ):
		if input.ModShift { // Ctrl+Shift+Z redoes
			if redone, ok := state.Redo(); ok {
				*value = redone
				*runes = []rune(redone)
				state.CursorPos = len(*runes)
				state.ClearSelection()
				changed = true
			}
		} else {
			if undone, ok := state.Undo(*value); ok {
				*value = undone
				*runes = []rune(undone)
				state.CursorPos = len(*runes)
				state.ClearSelection()
				changed = true
			}
		}
		return true, changed

	case input.KeyPressed(KeyY): // redo
		if redone, ok := state.Redo(); ok {
			*value = redone
			*runes = []rune(redone)
			state.CursorPos = len(*runes)
			state.ClearSelection()
			changed = true
		}
		return true, changed
	}

	return false, false
}

// findWordBoundaryLeft returns the start of the word left of pos.
func findWordBoundaryLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && isWhitespace(runes[pos]) {
		pos--
	}
	for pos > 0 && !isWhitespace(runes[pos-1]) {
		pos--
	}
	return pos
}

// findWordBoundaryRight returns the position past the word right of pos.
func findWordBoundaryRight(runes []rune, pos int) int {
	n := len(runes)
	if pos >= n {
		return n
	}
	for pos < n && !isWhitespace(runes[pos]) {
		pos++
	}
	for pos < n && isWhitespace(runes[pos]) {
		pos++
	}
	return pos
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// CollapsingHeader draws a header that toggles open on click. Returns
// true while the section is open.
func (ctx *Context) CollapsingHeader(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	state := GetState(ctx, id, CollapsingHeaderState{Open: true})

	w := ctx.currentLayoutWidth()
	h := ctx.lineHeight()

	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}
	ctx.RegisterFocusable(id, label, rect, FocusTypeSection)

	hovered := ctx.isHovered(id, rect)
	focused := GetOpt(o, OptFocused) || ctx.IsRegistryFocused(id)

	bgColor := ctx.style.ButtonColor
	if focused {
		bgColor = ctx.style.ButtonActiveColor
	} else if hovered {
		bgColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bgColor)

	arrow := "►"
	if state.Open {
		arrow = "▼"
	}
	arrowColor := ctx.style.TextColor
	if focused {
		arrowColor = ColorCyan
	}
	ctx.addText(pos.X+2, pos.Y, arrow, arrowColor)
	ctx.addText(pos.X+ctx.MeasureText(arrow).X+4, pos.Y, label, ctx.style.TextColor)

	if ctx.isClicked(id, rect) {
		state.Open = !state.Open
		SetState(ctx, id, state)
	}

	ctx.advanceCursor(Vec2{w, h})

	return state.Open
}

// TreeNode draws an expandable node. While open, contents are indented;
// call TreePop when done.
func (ctx *Context) TreeNode(label string, opts ...Option) bool {
	open := ctx.CollapsingHeader(label, opts...)
	if open {
		ctx.Indent(ctx.style.ItemSpacing * 2)
	}
	return open
}

// TreePop closes a TreeNode.
func (ctx *Context) TreePop() {
	ctx.Unindent(ctx.style.ItemSpacing * 2)
}

// Bullet draws an inline bullet mark; the cursor advances horizontally
// so text can follow on the same line.
func (ctx *Context) Bullet() {
	pos := ctx.ItemPos()
	size := ctx.lineHeight() * 0.3
	x := pos.X + size
	y := pos.Y + ctx.lineHeight()/2

	ctx.DrawList.AddRect(x-size/2, y-size/2, size, size, ctx.style.TextColor)

	ctx.cursor.X = pos.X + size*2 + ctx.style.ItemSpacing
}

// BulletText draws a bulleted line of text.
func (ctx *Context) BulletText(text string) {
	ctx.HStack()(func() {
		ctx.Bullet()
		ctx.Text(text)
	})
}
