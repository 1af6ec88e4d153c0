package gui

// DockBehavior is how the application plugs its panes into a dock tree.
// The dock owns arrangement; the behavior owns content.
type DockBehavior[P any] interface {
	// PaneTitle returns the tab label for a pane.
	PaneTitle(pane P) string

	// PaneUI draws a pane's content into its solved rect.
	PaneUI(ctx *Context, id NodeID, pane P, rect Rect)

	// RetainPane keeps an unreachable pane alive across GC, so a closed
	// pane can be reopened with its state intact.
	RetainPane(pane P) bool
}

// dividerHitSlop widens divider hit bands beyond the visible gap.
const dividerHitSlop float32 = 2

// Show runs one frame of the dock: sweeps the tree, solves rects, draws
// every node and handles divider resizing and tab drag and drop.
func (d *Dock[P]) Show(ctx *Context, b DockBehavior[P], rect Rect) {
	d.Simplify()
	d.GC(b.RetainPane)
	if d.Root.IsZero() || d.Nodes[d.Root] == nil {
		return
	}

	tabBarHeight := ctx.lineHeight() + SpaceXS*2
	d.Layout(rect, tabBarHeight)
	d.drawNode(ctx, b, d.Root, tabBarHeight)
	d.updateDrag(ctx)
}

func (d *Dock[P]) drawNode(ctx *Context, b DockBehavior[P], id NodeID, tabBarHeight float32) {
	n := d.Nodes[id]
	rect, ok := d.rects[id]
	if n == nil || !ok || rect.W <= 0 || rect.H <= 0 {
		return
	}

	switch n.Kind {
	case NodeLeaf:
		ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.PanelColor)
		b.PaneUI(ctx, id, n.Pane, rect)

	case NodeTabs:
		d.drawTabBar(ctx, b, id, n, rect, tabBarHeight)
		if !n.Active.IsZero() {
			d.drawNode(ctx, b, n.Active, tabBarHeight)
		}

	case NodeHorizontal, NodeVertical:
		for _, c := range n.Children {
			d.drawNode(ctx, b, c, tabBarHeight)
		}
		d.handleDividers(ctx, id, n, rect)

	case NodeGrid:
		for _, c := range n.Children {
			d.drawNode(ctx, b, c, tabBarHeight)
		}
	}
}

// drawTabBar draws one tab per child and starts a drag when a tab is
// pulled past the click threshold.
func (d *Dock[P]) drawTabBar(ctx *Context, b DockBehavior[P], id NodeID, n *Node[P], rect Rect, tabBarHeight float32) {
	bar := Rect{X: rect.X, Y: rect.Y, W: rect.W, H: tabBarHeight}
	ctx.DrawList.AddRect(bar.X, bar.Y, bar.W, bar.H, ctx.style.ButtonColor)

	input := ctx.Input
	x := bar.X
	for _, c := range n.Children {
		title := d.childTitle(b, c)
		textSize := ctx.MeasureText(title)
		w := textSize.X + ctx.style.ButtonPadding*2
		tab := Rect{X: x, Y: bar.Y, W: w, H: bar.H}

		selected := c == n.Active
		hovered := input != nil && tab.Contains(input.MousePos())

		bg := ctx.style.ButtonColor
		fg := ctx.style.TextColor
		if selected {
			bg = ctx.style.SelectedBgColor
			fg = ctx.style.SelectedTextColor
		} else if hovered {
			bg = ctx.style.HoveredBgColor
		}
		ctx.DrawList.AddRect(tab.X, tab.Y, tab.W, tab.H, bg)
		ctx.addText(tab.X+(tab.W-textSize.X)/2, tab.Y+(tab.H-textSize.Y)/2, title, fg)
		if selected {
			ctx.DrawList.AddRect(tab.X, tab.Y+tab.H-2, tab.W, 2, ctx.style.FocusColor)
		}

		if input != nil {
			if hovered && input.MouseClicked(MouseButtonLeft) {
				n.Active = c
			}
			// A tab pressed and pulled past the click threshold becomes
			// the dragged node.
			if d.dragged.IsZero() && input.MouseDown(MouseButtonLeft) &&
				input.IsDecidedlyDragging(MouseButtonLeft) &&
				tab.Contains(input.PressOrigin(MouseButtonLeft)) {
				d.dragged = c
			}
		}
		if hovered {
			ctx.WantCaptureMouse = true
		}
		x += w + SpaceXS
	}
}

// childTitle labels a child node: a leaf's pane title, or a summary for
// nested containers.
func (d *Dock[P]) childTitle(b DockBehavior[P], id NodeID) string {
	n := d.Nodes[id]
	if n == nil {
		return "?"
	}
	if n.Kind == NodeLeaf {
		return b.PaneTitle(n.Pane)
	}
	return n.Kind.String()
}

// handleDividers draws and operates the resize handles of a linear
// container. Dragging moves weight between the two sides, double-clicking
// a divider equalizes its neighbors.
func (d *Dock[P]) handleDividers(ctx *Context, id NodeID, n *Node[P], rect Rect) {
	input := ctx.Input
	if input == nil || len(n.Children) < 2 {
		return
	}
	horizontal := n.Kind == NodeHorizontal

	for i := 0; i < len(n.Children)-1; i++ {
		childRect, ok := d.rects[n.Children[i]]
		if !ok {
			continue
		}
		var band Rect
		if horizontal {
			band = Rect{
				X: childRect.X + childRect.W - dividerHitSlop,
				Y: rect.Y,
				W: d.Gap + dividerHitSlop*2,
				H: rect.H,
			}
		} else {
			band = Rect{
				X: rect.X,
				Y: childRect.Y + childRect.H - dividerHitSlop,
				W: rect.W,
				H: d.Gap + dividerHitSlop*2,
			}
		}

		hovered := band.Contains(input.MousePos())
		active := d.resize.active && d.resize.parent == id && d.resize.index == i

		if hovered || active {
			ctx.WantCaptureMouse = true
			if horizontal {
				ctx.Output.CursorIcon = CursorResizeHorizontal
			} else {
				ctx.Output.CursorIcon = CursorResizeVertical
			}
		}

		if hovered && input.DoubleClicked(MouseButtonLeft) {
			n.Shares.Equalize(n.Children[i], n.Children[i+1])
			ctx.Output.RequestRepaint()
			continue
		}

		if hovered && input.MouseClicked(MouseButtonLeft) && !d.resize.active {
			d.resize = dockResizeState{
				active: true,
				parent: id,
				index:  i,
				lastX:  input.MouseX,
				lastY:  input.MouseY,
			}
		}

		if active {
			if input.MouseDown(MouseButtonLeft) {
				extent := rect.W - d.Gap*float32(len(n.Children)-1)
				delta := input.MouseX - d.resize.lastX
				if !horizontal {
					extent = rect.H - d.Gap*float32(len(n.Children)-1)
					delta = input.MouseY - d.resize.lastY
				}
				if delta != 0 {
					n.Shares.DragDivider(n.Children, i, delta, extent, d.MinSize)
					ctx.Output.RequestRepaint()
				}
				d.resize.lastX = input.MouseX
				d.resize.lastY = input.MouseY
			} else {
				d.resize = dockResizeState{}
			}
		}
	}
}

// updateDrag finishes or previews an in-flight tab drag. While dragging,
// the best drop zone under the pointer is highlighted on the foreground
// layer; releasing performs the move.
func (d *Dock[P]) updateDrag(ctx *Context) {
	if d.dragged.IsZero() {
		return
	}
	input := ctx.Input
	if input == nil {
		d.dragged = NodeID{}
		return
	}
	ctx.WantCaptureMouse = true

	zone, found := d.FindDropZone(input.MousePos(), d.dragged)

	if input.MouseDown(MouseButtonLeft) {
		if found && ctx.ForegroundDrawList != nil {
			p := zone.Preview
			ctx.ForegroundDrawList.AddRect(p.X, p.Y, p.W, p.H, RGBA(0, 180, 255, 60))
			ctx.ForegroundDrawList.AddRectOutline(p.X, p.Y, p.W, p.H, RGBA(0, 180, 255, 200), 2)
		}
		return
	}

	if found {
		d.MoveNode(d.dragged, zone.At)
	}
	d.dragged = NodeID{}
	ctx.Output.RequestRepaint()
}
