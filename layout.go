package gui

// LayoutType is the stacking direction of a container.
type LayoutType uint8

const (
	LayoutVertical LayoutType = iota
	LayoutHorizontal
)

// Layout is one level of the container stack. Containers accumulate the
// size of their children in MaxWidth/MaxHeight as widgets advance the
// cursor.
type Layout struct {
	Type LayoutType

	StartX, StartY   float32
	CursorX, CursorY float32

	Width, Height       float32 // available space
	MaxWidth, MaxHeight float32 // content extent so far

	Gap      float32 // spacing between children
	GapX     float32 // horizontal override
	GapY     float32 // vertical override
	Padding  float32 // inner padding
	PaddingX float32 // horizontal override
	PaddingY float32 // vertical override

	Align   Alignment     // cross axis
	Justify Justification // main axis

	ItemCount int

	// Panel options
	Hotkey           string  // shown as "Title [K]" in the header
	HeightConstraint float32 // clamp panel height, 0 for unlimited
}

// padXY returns the effective horizontal and vertical padding, with the
// axis overrides taking precedence over Padding.
func (l *Layout) padXY() (float32, float32) {
	px, py := l.PaddingX, l.PaddingY
	if px == 0 {
		px = l.Padding
	}
	if py == 0 {
		py = l.Padding
	}
	return px, py
}

// mainGap returns the gap along the stacking axis, falling back to Gap
// and then to the style default.
func (l *Layout) mainGap(fallback float32) float32 {
	g := l.GapY
	if l.Type == LayoutHorizontal {
		g = l.GapX
	}
	if g == 0 {
		g = l.Gap
	}
	if g == 0 {
		g = fallback
	}
	return g
}

// Alignment places children on the cross axis.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// Justification places children on the main axis.
type Justification uint8

const (
	JustifyStart Justification = iota
	JustifyCenter
	JustifyEnd
	JustifyBetween
)

// LayoutOption configures a container.
type LayoutOption func(*Layout)

// Gap sets the spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// GapX sets the horizontal spacing between children.
func GapX(pixels float32) LayoutOption {
	return func(l *Layout) { l.GapX = pixels }
}

// GapY sets the vertical spacing between children.
func GapY(pixels float32) LayoutOption {
	return func(l *Layout) { l.GapY = pixels }
}

// Padding sets the container's inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// PaddingXY sets horizontal and vertical padding separately.
func PaddingXY(x, y float32) LayoutOption {
	return func(l *Layout) {
		l.PaddingX = x
		l.PaddingY = y
	}
}

// Align sets cross-axis alignment.
func Align(a Alignment) LayoutOption {
	return func(l *Layout) { l.Align = a }
}

// Justify sets main-axis alignment.
func Justify(j Justification) LayoutOption {
	return func(l *Layout) { l.Justify = j }
}

// Width fixes the container width. Zero means size to content.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height fixes the container height. Zero means size to content.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// WithHotkey appends "[key]" to a panel's header title.
func WithHotkey(key string) LayoutOption {
	return func(l *Layout) { l.Hotkey = key }
}

// MaxHeight caps a panel's height; content past it is clipped, so pair
// with Scrollable. Zero disables the cap.
func MaxHeight(h float32) LayoutOption {
	return func(l *Layout) { l.HeightConstraint = h }
}

// pushLayoutWith starts a pre-configured container at the cursor,
// filling in unset dimensions from the enclosing one.
func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	if layout.Height == 0 {
		layout.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout closes the current container, folds its content size into
// the parent as a single item, and returns the content bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{
		X: layout.StartX,
		Y: layout.StartY,
		W: layout.MaxWidth,
		H: layout.MaxHeight,
	}

	parent := ctx.currentLayout()
	if parent == nil {
		return bounds
	}

	if parent.ItemCount > 0 {
		gap := parent.mainGap(ctx.style.ItemSpacing)
		if parent.Type == LayoutVertical {
			ctx.cursor.Y += gap
		} else {
			ctx.cursor.X += gap
		}
	}

	if parent.Type == LayoutVertical {
		ctx.cursor.X = parent.StartX + parent.Padding + parent.PaddingX
		ctx.cursor.Y = layout.StartY + layout.MaxHeight
		parent.MaxWidth = maxf(parent.MaxWidth, layout.MaxWidth)
		parent.MaxHeight = ctx.cursor.Y - parent.StartY
	} else {
		ctx.cursor.X = layout.StartX + layout.MaxWidth
		ctx.cursor.Y = parent.StartY + parent.Padding + parent.PaddingY
		parent.MaxWidth = ctx.cursor.X - parent.StartX
		parent.MaxHeight = maxf(parent.MaxHeight, layout.MaxHeight)
	}
	parent.ItemCount++

	return bounds
}

// Panel draws a titled panel around its contents. The background is
// inserted behind the content after it ran, so the panel sizes to what
// was actually drawn.
//
// Usage:
//
//	ctx.Panel("Menu", Gap(8), Padding(12))(func() {
//	    ctx.Text("Hello")
//	    ctx.Button("Click")
//	})
//
//	ctx.Panel("Vehicles", WithHotkey("T"))(func() {
//	    // header reads "Vehicles [T]"
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(layout)
		}
		padX, padY := layout.padXY()

		// Width/Height as set by the caller; pushLayoutWith fills zeros
		// with the inherited space, which must not become a minimum.
		userWidth := layout.Width
		userHeight := layout.Height

		startX := ctx.cursor.X
		startY := ctx.cursor.Y

		headerH := float32(0)
		if title != "" {
			headerH = ctx.lineHeight() + padY*2
		}

		ctx.cursor.X += padX
		ctx.cursor.Y += padY + headerH

		ctx.pushLayoutWith(layout)
		contents()
		bounds := ctx.popLayout()

		panelW := bounds.W + padX*2
		panelH := bounds.H + padY*2 + headerH
		if userWidth > 0 && panelW < userWidth {
			panelW = userWidth
		}
		if userHeight > 0 && panelH < userHeight {
			panelH = userHeight
		}
		if layout.HeightConstraint > 0 && panelH > layout.HeightConstraint {
			panelH = layout.HeightConstraint
		}

		ctx.DrawList.InsertRect(startX, startY, panelW, panelH, ctx.style.PanelColor)

		if title != "" {
			headerBg := ctx.style.PanelHeaderBgColor
			if headerBg == 0 {
				headerBg = ctx.style.ButtonColor
			}
			ctx.DrawList.AddRect(startX, startY, panelW, headerH, headerBg)

			headerText := ctx.style.PanelHeaderTextColor
			if headerText == 0 {
				headerText = ctx.style.TextColor
			}

			displayTitle := title
			if layout.Hotkey != "" {
				displayTitle = title + " [" + layout.Hotkey + "]"
			}

			textY := startY + (headerH-ctx.lineHeight())/2
			ctx.addText(startX+padX, textY, displayTitle, headerText)
		}

		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(startX, startY, panelW, panelH,
				ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}

		if ctx.Input != nil {
			panelRect := Rect{X: startX, Y: startY, W: panelW, H: panelH}
			if panelRect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY}) {
				ctx.WantCaptureMouse = true
			}
		}

		ctx.cursor.X = startX
		ctx.cursor.Y = startY + panelH
	}
}

// CenteredPanel draws a panel centered on screen. Centering needs the
// panel's size before its contents run, so the size measured this frame
// is cached and used next frame; the panel settles after one frame.
func (ctx *Context) CenteredPanel(id string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		panelID := ctx.GetID(id)

		cachedSize := GetState(ctx, panelID, Vec2{200, 100})
		ctx.cursor.X = (ctx.DisplaySize.X - cachedSize.X) / 2
		ctx.cursor.Y = (ctx.DisplaySize.Y - cachedSize.Y) / 2

		startY := ctx.cursor.Y
		ctx.Panel("", opts...)(contents)

		SetState(ctx, panelID, Vec2{
			X: ctx.currentLayoutWidth(),
			Y: ctx.cursor.Y - startY,
		})
	}
}

// VStack stacks its contents vertically.
//
// Usage:
//
//	ctx.VStack(Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutVertical, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// HStack stacks its contents horizontally.
//
// Usage:
//
//	ctx.HStack(Gap(8))(func() {
//	    ctx.Text("Label:")
//	    ctx.InputText("", &value)
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutHorizontal, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// Row is HStack without options.
func (ctx *Context) Row(contents func()) {
	ctx.HStack()(contents)
}

// InRect runs contents in a standalone vertical container filling rect,
// leaving the surrounding layout and cursor untouched. Dock panes and
// other externally positioned regions use this.
//
// Usage:
//
//	ctx.InRect(paneRect)(func() {
//	    ctx.Text("pane content")
//	})
func (ctx *Context) InRect(rect Rect, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		savedStack := ctx.layoutStack
		savedCursor := ctx.cursor
		ctx.layoutStack = nil

		pad := ctx.style.PanelPadding
		ctx.cursor = Vec2{X: rect.X + pad, Y: rect.Y + pad}
		layout := &Layout{
			Type:   LayoutVertical,
			Gap:    ctx.style.ItemSpacing,
			Width:  rect.W - pad*2,
			Height: rect.H - pad*2,
		}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()

		ctx.layoutStack = savedStack
		ctx.cursor = savedCursor
	}
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}

// Separator draws a horizontal rule across the container.
func (ctx *Context) Separator() {
	w := ctx.currentLayoutWidth()
	y := ctx.cursor.Y + 2
	ctx.DrawList.AddLine(ctx.cursor.X, y, ctx.cursor.X+w, y, ctx.style.SeparatorColor, 1)
	ctx.cursor.Y += 4
}

// ListBox draws a fixed-height scrolling list. Contents may be taller
// than height; a scrollbar appears when they are, and wheel input over
// the list scrolls smoothly toward its target.
//
// Usage:
//
//	ctx.ListBox("items", 200, Gap(4))(func() {
//	    for i, item := range items {
//	        ctx.Selectable(item.Name, i == selected, WithID(item.ID))
//	    }
//	})
func (ctx *Context) ListBox(id string, height float32, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		scrollID := ctx.GetID(id + "_scroll")
		scrollState := GetState(ctx, scrollID, ScrollState{})
		scrollState.UpdateSmooth(ctx.DeltaTime)

		x, y := ctx.cursor.X, ctx.cursor.Y
		w := ctx.currentLayoutWidth()

		ctx.DrawList.PushClipRect(x, y, x+w, y+height)

		// Offset by the animated position, not the target
		ctx.cursor.Y -= scrollState.ScrollY

		layout := &Layout{
			Type:   LayoutVertical,
			Width:  w - ctx.style.ScrollbarSize,
			Height: height,
			Gap:    ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		contents()
		bounds := ctx.popLayout()
		contentHeight := bounds.H

		ctx.DrawList.PopClipRect()

		if ctx.Input != nil && ctx.Input.MouseWheelY != 0 {
			listRect := Rect{X: x, Y: y, W: w, H: height}
			if listRect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY}) {
				maxScroll := maxf(0, contentHeight-height)
				scrollState.TargetScrollY = clampf(
					scrollState.TargetScrollY-ctx.Input.MouseWheelY*30, 0, maxScroll)
				scrollState.ContentHeight = contentHeight
			}
		}

		SetState(ctx, scrollID, scrollState)

		if contentHeight > height {
			scrollbarX := x + w - ctx.style.ScrollbarSize
			thumbH := maxf(20, height*(height/contentHeight))
			maxScroll := contentHeight - height
			thumbY := (scrollState.ScrollY / maxScroll) * (height - thumbH)

			ctx.DrawList.AddRect(scrollbarX, y, ctx.style.ScrollbarSize, height,
				ctx.style.ScrollbarBgColor)
			ctx.DrawList.AddRect(scrollbarX, y+thumbY, ctx.style.ScrollbarSize, thumbH,
				ctx.style.ScrollbarGrabColor)
		}

		ctx.cursor.X = x
		ctx.cursor.Y = y + height
	}
}

// SameLine places the next widget beside the previous one.
func (ctx *Context) SameLine() {
	if layout := ctx.currentLayout(); layout != nil {
		ctx.cursor.Y -= ctx.lineHeight() + layout.Gap
		ctx.cursor.X += ctx.style.ItemSpacing
	}
}

// Indent shifts the cursor right.
func (ctx *Context) Indent(pixels float32) {
	ctx.cursor.X += pixels
}

// Unindent shifts the cursor left.
func (ctx *Context) Unindent(pixels float32) {
	ctx.cursor.X -= pixels
}
