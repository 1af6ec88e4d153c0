package gui_test

import (
	"testing"

	"github.com/frameloop/gui"
)

// gridFrame runs one frame of a two-column grid with fixed cell sizes and
// returns the grid for inspection before EndGrid stores its measurements.
func gridFrame(ui *gui.GUI, in *gui.InputState, inspect func(*gui.Grid)) {
	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	g := ctx.BeginGrid("stats", 2)
	if inspect != nil {
		inspect(g)
	}
	g.Advance(gui.Vec2{X: 70, Y: 12})
	g.Advance(gui.Vec2{X: 30, Y: 12})
	g.EndRow()
	g.Advance(gui.Vec2{X: 40, Y: 12})
	g.Advance(gui.Vec2{X: 60, Y: 12})
	g.EndRow()
	g.EndGrid()
	_ = ui.End()
}

func TestGridAccumulatesColumnMaxima(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	g := ctx.BeginGrid("acc", 2)
	g.Advance(gui.Vec2{X: 70, Y: 12})
	g.Advance(gui.Vec2{X: 30, Y: 12})
	g.EndRow()
	g.Advance(gui.Vec2{X: 40, Y: 12})
	g.Advance(gui.Vec2{X: 60, Y: 12})
	g.EndRow()

	w := g.ColumnWidths()
	if len(w) != 2 || w[0] != 70 || w[1] != 60 {
		t.Errorf("ColumnWidths = %v, want [70 60]", w)
	}
	g.EndGrid()
	_ = ui.End()
}

func TestGridUsesPreviousFrameWidths(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()

	// Frame 1: no history, cells measured for the first time.
	gridFrame(ui, in, func(g *gui.Grid) {
		if got := g.PrevColumnWidths(); got != nil {
			t.Errorf("first frame should have no previous widths, got %v", got)
		}
	})
	if !ui.Output().NeedsRepaint() {
		t.Error("first grid frame should request a repaint to settle")
	}

	// Frame 2: column predictions come from frame 1's maxima.
	gridFrame(ui, in, func(g *gui.Grid) {
		prev := g.PrevColumnWidths()
		if len(prev) != 2 || prev[0] != 70 || prev[1] != 60 {
			t.Fatalf("PrevColumnWidths = %v, want [70 60]", prev)
		}
		if got := g.CellRect().W; got != 70 {
			t.Errorf("first cell width = %v, want the remembered 70", got)
		}
	})

	// Frame 3: measurements unchanged, so the layout has settled and no
	// further repaint is requested.
	gridFrame(ui, in, nil)
	if ui.Output().NeedsRepaint() {
		t.Error("a settled grid must not keep requesting repaints")
	}
}

func TestGridLastColumnTakesRemainder(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()

	run := func(check func(g *gui.Grid)) {
		ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
		g := ctx.BeginGrid("wide", 2)
		g.Advance(gui.Vec2{X: 100, Y: 12})
		if check != nil {
			check(g)
		}
		g.Advance(gui.Vec2{X: 30, Y: 12})
		g.EndRow()
		g.EndGrid()
		_ = ui.End()
	}

	run(nil)
	run(func(g *gui.Grid) {
		// Second (last) column: everything to the right of the cursor.
		if got := g.AvailableCellWidth(); got <= 30 {
			t.Errorf("last column width = %v, want the layout remainder", got)
		}
	})
}
