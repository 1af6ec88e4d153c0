package gui_test

import (
	"testing"

	"github.com/frameloop/gui"
)

func TestAtomicLayoutGrowSharesLeftover(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	defer ui.End()

	al := &gui.AtomicLayout{
		Atomics: []gui.Atomic{
			{Size: gui.Vec2{X: 40, Y: 10}},
			{Grow: true},
			{Size: gui.Vec2{X: 20, Y: 10}},
		},
		Gap: 5,
	}
	sol := al.Solve(ctx, gui.Vec2{X: 200, Y: 20})

	if sol.Sizes[0].X != 40 || sol.Sizes[2].X != 20 {
		t.Errorf("fixed atomics resized: %+v", sol.Sizes)
	}
	// 200 - 40 - 20 - two 5pt gaps = 130 for the grow spacer.
	if sol.Sizes[1].X != 130 {
		t.Errorf("grow atomic got %v, want 130", sol.Sizes[1].X)
	}
	if sol.Size.X != 200 {
		t.Errorf("solved width %v, want 200", sol.Size.X)
	}
}

func TestAtomicLayoutShrinkAbsorbsDeficit(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	defer ui.End()

	al := &gui.AtomicLayout{
		Atomics: []gui.Atomic{
			{Size: gui.Vec2{X: 100, Y: 10}, Shrink: true},
			{Size: gui.Vec2{X: 50, Y: 10}},
		},
	}
	sol := al.Solve(ctx, gui.Vec2{X: 80, Y: 20})

	if sol.Sizes[1].X != 50 {
		t.Errorf("non-shrink atomic resized to %v", sol.Sizes[1].X)
	}
	if sol.Sizes[0].X != 30 {
		t.Errorf("shrink atomic got %v, want 30", sol.Sizes[0].X)
	}
	if sol.IntrinsicSize.X != 150 {
		t.Errorf("IntrinsicSize.X = %v, want 150", sol.IntrinsicSize.X)
	}
}

func TestAtomicLayoutTextMeasured(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer) // default style: 8pt monospace cells
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	defer ui.End()

	al := &gui.AtomicLayout{
		Atomics: []gui.Atomic{{Text: "abcd"}},
	}
	sol := al.Solve(ctx, gui.Vec2{X: 200, Y: 20})

	if sol.Sizes[0].X != 32 {
		t.Errorf("text atomic width %v, want 32 (4 chars x 8pt)", sol.Sizes[0].X)
	}
}

func TestAtomicPlaceAlignsRun(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	defer ui.End()

	al := &gui.AtomicLayout{
		Atomics: []gui.Atomic{
			{Size: gui.Vec2{X: 30, Y: 10}},
			{Size: gui.Vec2{X: 30, Y: 10}},
		},
		Gap:    10,
		AlignH: gui.AlignEnd,
		AlignV: gui.AlignCenter,
	}
	sol := al.Solve(ctx, gui.Vec2{X: 70, Y: 30})
	rects := sol.Place(al, gui.Rect{X: 100, Y: 100, W: 200, H: 30})

	// Run is 70 wide, flushed to the right edge of the 200-wide frame.
	if rects[0].X != 230 {
		t.Errorf("first atomic X = %v, want 230", rects[0].X)
	}
	if rects[1].X != 270 {
		t.Errorf("second atomic X = %v, want 270", rects[1].X)
	}
	if rects[0].Y != 110 {
		t.Errorf("atomic Y = %v, want 110 (centered in 30pt frame)", rects[0].Y)
	}
}
