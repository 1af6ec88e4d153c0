package gui

// labelSelection is the one global text selection slot for plain labels.
// Only one label can hold a selection at a time; selecting in another
// label, or clicking empty space, takes it away. Cursors are rune
// offsets; primary is the moving end, secondary the anchor.
type labelSelection struct {
	widget    ID
	primary   int
	secondary int
}

func (s *labelSelection) ordered() (start, end int) {
	if s.primary < s.secondary {
		return s.primary, s.secondary
	}
	return s.secondary, s.primary
}

// LabelSelection returns the selected rune range for a widget, ok=false
// if the widget does not own the selection slot.
func (ctx *Context) LabelSelection(widget ID) (start, end int, ok bool) {
	if !ctx.labelSelActive || ctx.labelSel.widget != widget {
		return 0, 0, false
	}
	start, end = ctx.labelSel.ordered()
	return start, end, true
}

// ClearLabelSelection empties the selection slot.
func (ctx *Context) ClearLabelSelection() {
	ctx.labelSelActive = false
	ctx.labelSel = labelSelection{}
}

// endSelectionFrame clears the slot when a press landed on nothing that
// claimed it. Called once per frame from End.
func (ctx *Context) endSelectionFrame() {
	if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) && !ctx.selectionClaimed {
		ctx.ClearLabelSelection()
	}
	ctx.selectionClaimed = false
}

// SelectableText draws a text label whose characters can be selected with
// the mouse and copied with Ctrl+C. Text wider than the layout is shown
// truncated, but copying a full selection yields the complete text.
func (ctx *Context) SelectableText(text string, opts ...Option) {
	o := applyOptions(opts)
	var id ID
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	} else {
		id = ctx.GetID(text)
	}

	display := text
	maxW := ctx.currentLayoutWidth()
	if ctx.MeasureText(display).X > maxW {
		display = TextWidthEllipsis(ctx, display, maxW)
	}
	runes := []rune(display)

	pos := ctx.ItemPos()
	size := ctx.MeasureText(display)
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	input := ctx.Input
	if input != nil {
		mouse := input.MousePos()
		hovered := rect.Contains(mouse)

		if hovered {
			ctx.WantCaptureMouse = true
			ctx.Output.CursorIcon = CursorText
		}

		if input.MouseClicked(MouseButtonLeft) && hovered {
			cursor := ctx.charIndexAt(runes, pos.X, mouse.X)
			ctx.labelSel = labelSelection{widget: id, primary: cursor, secondary: cursor}
			ctx.labelSelActive = true
			ctx.selectionClaimed = true
		}

		// Drag extends the selection from the anchor.
		if ctx.labelSelActive && ctx.labelSel.widget == id &&
			input.MouseDown(MouseButtonLeft) && rect.Contains(input.PressOrigin(MouseButtonLeft)) {
			ctx.labelSel.primary = ctx.charIndexAt(runes, pos.X, mouse.X)
			ctx.selectionClaimed = true
		}

		// Double-click selects everything.
		if hovered && input.DoubleClicked(MouseButtonLeft) {
			ctx.labelSel = labelSelection{widget: id, primary: len(runes), secondary: 0}
			ctx.labelSelActive = true
			ctx.selectionClaimed = true
		}
	}

	// Selection highlight behind the glyphs.
	if start, end, ok := ctx.LabelSelection(id); ok && end > start {
		x0 := pos.X + ctx.MeasureText(string(runes[:start])).X
		x1 := pos.X + ctx.MeasureText(string(runes[:end])).X
		ctx.DrawList.AddRect(x0, pos.Y, x1-x0, size.Y, ctx.style.SelectedBgColor)
	}

	ctx.addText(pos.X, pos.Y, display, ctx.style.TextColor)
	ctx.advanceCursor(size)

	if input != nil && input.ModCtrl && input.KeyPressed(KeyC) {
		if copied, ok := ctx.selectedLabelText(id, text, runes); ok {
			ctx.Output.CopiedText = copied
		}
	}
}

// selectedLabelText resolves what a copy from this label yields. A
// selection spanning every visible character, or an empty selection on a
// label that owns the slot, copies the full untruncated text; anything
// else copies exactly the selected substring of what is shown.
func (ctx *Context) selectedLabelText(id ID, full string, visible []rune) (string, bool) {
	if !ctx.labelSelActive || ctx.labelSel.widget != id {
		return "", false
	}
	start, end := ctx.labelSel.ordered()
	if start == end {
		return full, true
	}
	if start <= 0 && end >= len(visible) {
		return full, true
	}
	if start < 0 {
		start = 0
	}
	if end > len(visible) {
		end = len(visible)
	}
	return string(visible[start:end]), true
}

// charIndexAt maps a pointer X to the nearest rune boundary in the label.
func (ctx *Context) charIndexAt(runes []rune, originX, mouseX float32) int {
	rel := mouseX - originX
	if rel <= 0 {
		return 0
	}
	for i := 1; i <= len(runes); i++ {
		w := ctx.MeasureText(string(runes[:i])).X
		prev := ctx.MeasureText(string(runes[:i-1])).X
		if rel < (prev+w)/2 {
			return i - 1
		}
	}
	return len(runes)
}
