package gui

// GridState is the per-grid record of measured column widths and row
// heights. This frame's maxima become next frame's predictions, so column
// widths converge over a few frames instead of requiring a second layout
// pass inside one frame. That lag is inherent to immediate-mode layout,
// not a defect.
type GridState struct {
	ColWidths  []float32
	RowHeights []float32
}

func (s *GridState) colWidth(col int) (float32, bool) {
	if col < len(s.ColWidths) {
		return s.ColWidths[col], true
	}
	return 0, false
}

func (s *GridState) growCol(col int, width float32) {
	for len(s.ColWidths) <= col {
		s.ColWidths = append(s.ColWidths, 0)
	}
	s.ColWidths[col] = maxf(s.ColWidths[col], width)
}

func (s *GridState) growRow(row int, height float32) {
	for len(s.RowHeights) <= row {
		s.RowHeights = append(s.RowHeights, 0)
	}
	s.RowHeights[row] = maxf(s.RowHeights[row], height)
}

func (s *GridState) equal(other *GridState) bool {
	if len(s.ColWidths) != len(other.ColWidths) || len(s.RowHeights) != len(other.RowHeights) {
		return false
	}
	for i, w := range s.ColWidths {
		if w != other.ColWidths[i] {
			return false
		}
	}
	for i, h := range s.RowHeights {
		if h != other.RowHeights[i] {
			return false
		}
	}
	return true
}

var gridStore = NewFrameStore[GridState]()

// Grid lays out cells in left-to-right, top-to-bottom order with columns
// sized from the previous frame's measurements.
//
// Usage:
//
//	g := ctx.BeginGrid("settings", 2)
//	for _, row := range rows {
//	    ctx.Text(row.label)
//	    g.Advance(ctx.MeasureText(row.label))
//	    ctx.Text(row.value)
//	    g.Advance(ctx.MeasureText(row.value))
//	    g.EndRow()
//	}
//	g.EndGrid()
type Grid struct {
	ctx *Context
	id  ID

	prev    GridState // Last frame's measurements
	hasPrev bool
	curr    GridState // Being accumulated this frame

	Spacing     Vec2
	MinCellSize Vec2

	numColumns int // 0 = unknown
	col, row   int
	origin     Vec2
	available  float32
}

// BeginGrid starts a grid with the given column count (0 if unknown).
// The grid takes over cursor placement until EndGrid.
func (ctx *Context) BeginGrid(id string, numColumns int) *Grid {
	gid := ctx.GetID(id)
	g := &Grid{
		ctx:         ctx,
		id:          gid,
		Spacing:     Vec2{X: ctx.style.ItemSpacing, Y: ctx.style.ItemSpacing},
		MinCellSize: Vec2{X: ctx.style.CharWidth * ctx.style.FontScale, Y: ctx.lineHeight()},
		numColumns:  numColumns,
		origin:      ctx.cursor,
		available:   ctx.currentLayoutWidth(),
	}
	if prev := gridStore.GetIfExists(gid); prev != nil {
		g.prev = *prev
		g.hasPrev = true
	}
	return g
}

// AvailableCellWidth returns the width budget for the current cell, from
// last frame's measurement of this column when available.
func (g *Grid) AvailableCellWidth() float32 {
	currW := float32(0)
	if w, ok := g.curr.colWidth(g.col); ok {
		currW = w
	}

	isLast := g.numColumns > 0 && g.col == g.numColumns-1
	if isLast {
		if !g.hasPrev {
			// No data yet: stay small instead of grabbing all the
			// remaining space before anything has been measured.
			return maxf(currW, g.MinCellSize.X)
		}
		used := g.ctx.cursor.X - g.origin.X
		return maxf(g.available-used, g.MinCellSize.X)
	}

	w := maxf(currW, g.MinCellSize.X)
	if prevW, ok := g.prev.colWidth(g.col); ok {
		w = maxf(w, prevW)
	}
	return w
}

// CellRect returns the current cell's rect at the predicted width.
func (g *Grid) CellRect() Rect {
	h := g.MinCellSize.Y
	if g.row < len(g.prev.RowHeights) {
		h = maxf(h, g.prev.RowHeights[g.row])
	}
	return Rect{X: g.ctx.cursor.X, Y: g.ctx.cursor.Y, W: g.AvailableCellWidth(), H: h}
}

// Advance records the size the current cell actually used and moves the
// cursor to the next column.
func (g *Grid) Advance(used Vec2) {
	used.X = maxf(used.X, g.MinCellSize.X)
	used.Y = maxf(used.Y, g.MinCellSize.Y)
	g.curr.growCol(g.col, used.X)
	g.curr.growRow(g.row, used.Y)

	// Step by the predicted width so later columns line up with last
	// frame even while this row's cells are still being measured.
	step := used.X
	if prevW, ok := g.prev.colWidth(g.col); ok {
		step = maxf(step, prevW)
	}
	g.ctx.cursor.X += step + g.Spacing.X
	g.col++
	g.ctx.cursor.Y = g.origin.Y + g.rowTop(g.row)
}

// EndRow moves the cursor to the start of the next row.
func (g *Grid) EndRow() {
	height := g.MinCellSize.Y
	if g.row < len(g.curr.RowHeights) {
		height = maxf(height, g.curr.RowHeights[g.row])
	}
	g.ctx.cursor.X = g.origin.X
	g.ctx.cursor.Y += height + g.Spacing.Y
	g.col = 0
	g.row++
}

// rowTop returns the Y offset of a row from the grid origin, from this
// frame's accumulated row heights.
func (g *Grid) rowTop(row int) float32 {
	y := float32(0)
	for i := 0; i < row && i < len(g.curr.RowHeights); i++ {
		y += g.curr.RowHeights[i] + g.Spacing.Y
	}
	return y
}

// EndGrid stores this frame's measurements for next frame and requests a
// repaint if they changed, so convergence does not stall waiting for
// outside input.
func (g *Grid) EndGrid() {
	if g.col != 0 {
		g.EndRow()
	}
	if !g.hasPrev || !g.curr.equal(&g.prev) {
		g.ctx.Output.RequestRepaint()
	}
	gridStore.Set(g.id, g.curr)

	// Leave the cursor below the grid for the enclosing layout.
	g.ctx.cursor.X = g.origin.X
	totalW := -g.Spacing.X
	for _, w := range g.curr.ColWidths {
		totalW += w + g.Spacing.X
	}
	g.ctx.advanceCursor(Vec2{X: maxf(totalW, 0), Y: 0})
}

// ColumnWidths returns this frame's accumulated column widths.
func (g *Grid) ColumnWidths() []float32 {
	return g.curr.ColWidths
}

// PrevColumnWidths returns last frame's column widths, if any.
func (g *Grid) PrevColumnWidths() []float32 {
	return g.prev.ColWidths
}
