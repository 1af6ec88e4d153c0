package gui

// Tooltip timing. Delay is how long the pointer must rest on a widget
// before its tooltip appears; grace lets the next tooltip appear at once
// while the user is sweeping across neighboring widgets.
const (
	tooltipDelay       = 0.5
	tooltipGrace       = 0.2
	tooltipScrollGrace = 0.3
)

// perWidgetTooltip tracks the tooltips already shown for one widget this
// frame, so a second call stacks below the first instead of covering it.
type perWidgetTooltip struct {
	bounding Rect
	count    int
}

// tooltipAreaID derives the area key a widget's tooltip rect is recorded
// under, distinct from the widget's own key.
func tooltipAreaID(widget ID) ID {
	return widget ^ 0x9E3779B97F4A7C15
}

// Tooltip shows a one-line text tooltip for a hovered widget.
func (ctx *Context) Tooltip(widgetID ID, widgetRect Rect, text string) {
	ctx.TooltipUI(widgetID, widgetRect, false, func() {
		ctx.Text(text)
	})
}

// TooltipUI shows an arbitrary tooltip for a hovered widget. Interactive
// tooltips (links, buttons inside) stay open while the pointer is over
// them or moving toward them; plain ones close as soon as the widget is
// left.
//
// Call every frame the widget is drawn; the timing gate decides whether
// anything appears.
func (ctx *Context) TooltipUI(widgetID ID, widgetRect Rect, interactive bool, contents func()) {
	if !ctx.shouldShowTooltip(widgetID, widgetRect, interactive) {
		return
	}

	stack := ctx.tooltipStacks[widgetID]
	anchor := widgetRect
	if stack != nil {
		anchor = stack.bounding
	}

	n := 0
	if stack != nil {
		n = stack.count
	}
	areaID := tooltipAreaID(widgetID) + ID(n)
	prevRect, _ := ctx.AreaRect(areaID)
	size := Vec2{X: prevRect.W, Y: prevRect.H}

	bounds := Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
	place := bestAnchorRect(AlignBottomStart, anchor, size, ctx.style.ItemSpacing, bounds)

	rect := ctx.drawFloating(areaID, place.Min(), 0, OrderTooltip, contents)
	ctx.RegisterArea(areaID, OrderTooltip, rect)

	if rect.W != prevRect.W || rect.H != prevRect.H {
		ctx.Output.RequestRepaint()
	}

	if stack == nil {
		stack = &perWidgetTooltip{bounding: widgetRect.Union(rect)}
		if ctx.tooltipStacks == nil {
			ctx.tooltipStacks = make(map[ID]*perWidgetTooltip, 4)
		}
		ctx.tooltipStacks[widgetID] = stack
	} else {
		stack.bounding = stack.bounding.Union(rect)
	}
	stack.count++

	ctx.tooltipOwner = widgetID
	ctx.tooltipShownTime = ctx.now()
}

// shouldShowTooltip is the tooltip gate. In order:
//   - the everything-visible override shows all tooltips unconditionally
//   - a popup open in the widget's own layer suppresses its tooltips, so
//     an open menu keeps base widgets quiet while items inside the menu
//     still get theirs
//   - drags and held buttons suppress them
//   - a click more recent than the last move suppresses them: the user is
//     acting, not asking
//   - scrolling suppresses them briefly
//   - a tooltip already owned by this widget stays while the pointer is
//     over the widget, over the tooltip (interactive only), or heading
//     toward the tooltip (interactive only)
//   - otherwise the pointer must rest on the widget for the delay, or a
//     tooltip must have been visible within the grace window
func (ctx *Context) shouldShowTooltip(widgetID ID, widgetRect Rect, interactive bool) bool {
	input := ctx.Input
	if input == nil {
		return false
	}
	if ctx.AlwaysShowTooltips {
		return true
	}
	if ctx.AnyPopupOpenIn(ctx.currentLayer) {
		return false
	}
	if input.MouseDown(MouseButtonLeft) || input.IsDecidedlyDragging(MouseButtonLeft) {
		return false
	}
	if input.pointerClickTime > input.pointerMoveTime+0.1 {
		return false
	}
	if input.TimeSinceScroll() < tooltipScrollGrace {
		return false
	}

	hovered := widgetRect.Contains(input.MousePos())
	now := ctx.now()

	if ctx.tooltipOwner == widgetID && now-ctx.tooltipShownTime < ctx.frameInterval() {
		if hovered {
			return true
		}
		if interactive {
			if tipRect, ok := ctx.AreaRect(tooltipAreaID(widgetID)); ok {
				if tipRect.Contains(input.MousePos()) {
					return true
				}
				if vel := input.Velocity(); vel.Length() > 0 {
					if tipRect.IntersectsRay(input.MousePos(), vel.Normalized()) {
						return true
					}
				}
			}
		}
	}

	if !hovered {
		return false
	}

	still := input.TimeSincePointerMove()
	if still >= tooltipDelay {
		return true
	}
	if now-ctx.tooltipShownTime < tooltipGrace {
		return true
	}

	// Not yet. Ask for a frame when the delay would elapse, so the
	// tooltip appears even if no further input arrives.
	ctx.Output.RequestRepaintAfter(tooltipDelay - still)
	return false
}

// now returns the input clock, falling back to accumulated frame time.
func (ctx *Context) now() float64 {
	if ctx.Input != nil {
		return ctx.Input.Time()
	}
	return 0
}

// frameInterval estimates the current frame duration for "was it shown
// last frame" checks.
func (ctx *Context) frameInterval() float64 {
	if ctx.DeltaTime > 0 {
		return float64(ctx.DeltaTime) * 1.5
	}
	return 0.05
}
