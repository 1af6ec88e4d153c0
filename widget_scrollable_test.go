package gui_test

import (
	"testing"

	"github.com/frameloop/gui"
)

// scrollFrame renders one frame with a scrollable full of n text lines.
func scrollFrame(ui *gui.GUI, in *gui.InputState, id string, n int) *gui.Context {
	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Scrollable(id, 100)(func() {
		for i := 0; i < n; i++ {
			ctx.Text("Line")
		}
	})
	_ = ui.End()
	return ctx
}

func TestScrollableMeasuresContent(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()

	ctx := scrollFrame(ui, in, "measure", 50)
	state := gui.GetScrollableState(ctx, "measure")
	if state == nil {
		t.Fatal("state should exist after rendering")
	}
	if state.ContentHeight <= 100 {
		t.Errorf("ContentHeight should exceed the 100pt viewport, got %v", state.ContentHeight)
	}
}

func TestScrollableWheelScrollsWhileHovered(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()

	ctx := scrollFrame(ui, in, "wheel", 50)
	if got := gui.GetScrollableState(ctx, "wheel").ScrollY; got != 0 {
		t.Fatalf("initial ScrollY = %v, want 0", got)
	}

	in.Reset()
	in.SetMousePos(50, 50)
	in.MouseWheelY = -3 // wheel down moves the content up

	ctx = scrollFrame(ui, in, "wheel", 50)
	state := gui.GetScrollableState(ctx, "wheel")
	if state.ScrollY <= 0 {
		t.Errorf("wheel should scroll, ScrollY = %v", state.ScrollY)
	}
	if state.UserScrollTime != 0 {
		t.Errorf("a manual scroll should reset the cooldown, got %v", state.UserScrollTime)
	}
}

func TestScrollableKeyboardPagingWhileHovered(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()

	in.SetMousePos(50, 50)
	scrollFrame(ui, in, "page", 100)

	in.Reset()
	in.SetMousePos(50, 50)
	in.SetKey(gui.KeyPageDown, true)
	ctx := scrollFrame(ui, in, "page", 100)
	if gui.GetScrollableState(ctx, "page").ScrollY <= 0 {
		t.Error("PageDown while hovered should scroll")
	}

	in.Reset()
	in.SetMousePos(50, 50)
	in.SetKey(gui.KeyEnd, true)
	ctx = scrollFrame(ui, in, "page", 100)
	atEnd := gui.GetScrollableState(ctx, "page").ScrollY

	in.Reset()
	in.SetMousePos(50, 50)
	in.SetKey(gui.KeyHome, true)
	ctx = scrollFrame(ui, in, "page", 100)
	if got := gui.GetScrollableState(ctx, "page").ScrollY; got != 0 {
		t.Errorf("Home should scroll to the top, got %v", got)
	}
	if atEnd == 0 {
		t.Error("End should have scrolled to the bottom first")
	}
}

func TestScrollableFeedsScrollClock(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()

	in.SetTime(0)
	in.Reset()
	in.SetMousePos(50, 50)
	scrollFrame(ui, in, "clock", 100)

	// A keyboard page scroll never touches the wheel, but it must still
	// mark the scroll clock so tooltip suppression applies.
	in.SetTime(5)
	in.Reset()
	in.SetMousePos(50, 50)
	in.SetKey(gui.KeyPageDown, true)
	scrollFrame(ui, in, "clock", 100)

	if got := in.TimeSinceScroll(); got != 0 {
		t.Errorf("TimeSinceScroll after keyboard paging = %v, want 0", got)
	}
	if !ui.Output().NeedsRepaint() {
		t.Error("a scroll should request a repaint for the moved content")
	}
}

func TestScrollableCooldownRecovers(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()

	in.SetMousePos(50, 50)
	in.MouseWheelY = -3
	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Scrollable("cool", 100)(func() {
		for i := 0; i < 50; i++ {
			ctx.Text("Line")
		}
	})
	_ = ui.End()

	in.Reset()
	in.SetMousePos(50, 50)
	ctx = ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.1)
	ctx.Scrollable("cool", 100)(func() {
		for i := 0; i < 50; i++ {
			ctx.Text("Line")
		}
	})
	_ = ui.End()

	state := gui.GetScrollableState(ctx, "cool")
	if state.UserScrollTime < 0.09 {
		t.Errorf("cooldown should accumulate when idle, got %v", state.UserScrollTime)
	}
}

func TestEnsureScrollVisibleScrollsDown(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()

	scrollFrame(ui, in, "ensure", 50)

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Scrollable("ensure", 100)(func() {
		for i := 0; i < 50; i++ {
			ctx.Text("Line")
		}
	})
	// Y=500 sits far below the 100pt viewport.
	gui.EnsureScrollVisible(ctx, "ensure", 500, 100, 20)
	_ = ui.End()

	state := gui.GetScrollableState(ctx, "ensure")
	if state.ScrollY < 400 {
		t.Errorf("EnsureScrollVisible should land near 420, got %v", state.ScrollY)
	}
}

func BenchmarkScrollable(b *testing.B) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
		ctx.Scrollable("bench", 200)(func() {
			for j := 0; j < 100; j++ {
				ctx.Text("Benchmark line")
			}
		})
		_ = ui.End()
	}
}
