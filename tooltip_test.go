package gui_test

import (
	"testing"

	"github.com/frameloop/gui"
)

func TestTooltipWaitsForDelay(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()
	widget := gui.Rect{X: 0, Y: 0, W: 200, H: 20}

	// Pointer lands on the widget at t=1.
	in.SetTime(1.0)
	in.Reset()
	in.SetMousePos(50, 10)

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Tooltip(ctx.GetID("w"), widget, "hint")
	if len(ctx.ForegroundDrawList.VtxBuffer) != 0 {
		t.Error("tooltip must not appear before the hover delay")
	}
	if !ui.Output().NeedsRepaint() {
		t.Error("the gate should schedule a repaint for when the delay elapses")
	}
	_ = ui.End()

	// A second frame well past the delay, pointer unmoved.
	in.SetTime(2.0)
	in.Reset()

	ctx = ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Tooltip(ctx.GetID("w"), widget, "hint")
	if len(ctx.ForegroundDrawList.VtxBuffer) == 0 {
		t.Error("tooltip should appear after the pointer has rested")
	}
	_ = ui.End()
}

func TestTooltipSuppressedWhileButtonHeld(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()
	widget := gui.Rect{X: 0, Y: 0, W: 200, H: 20}

	in.SetTime(1.0)
	in.Reset()
	in.SetMousePos(50, 10)

	in.SetTime(3.0) // long past the delay
	in.Reset()
	in.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Tooltip(ctx.GetID("w"), widget, "hint")
	if len(ctx.ForegroundDrawList.VtxBuffer) != 0 {
		t.Error("tooltips must stay hidden while a button is held")
	}
	_ = ui.End()
}

func TestTooltipNotShownOffWidget(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()
	widget := gui.Rect{X: 0, Y: 0, W: 200, H: 20}

	in.SetTime(1.0)
	in.Reset()
	in.SetMousePos(400, 300) // nowhere near the widget

	in.SetTime(3.0)
	in.Reset()

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Tooltip(ctx.GetID("w"), widget, "hint")
	if len(ctx.ForegroundDrawList.VtxBuffer) != 0 {
		t.Error("tooltip should only appear while hovering its widget")
	}
	_ = ui.End()
}

func TestAlwaysShowTooltips(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()
	widget := gui.Rect{X: 0, Y: 0, W: 200, H: 20}

	in.SetTime(1.0)
	in.Reset()
	in.SetMousePos(50, 10)

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.AlwaysShowTooltips = true
	ctx.Tooltip(ctx.GetID("w"), widget, "hint")
	if len(ctx.ForegroundDrawList.VtxBuffer) == 0 {
		t.Error("the everything-visible override should skip all delays")
	}
	_ = ui.End()
}

func TestTooltipSuppressionIsPerLayer(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()
	base := gui.Rect{X: 0, Y: 0, W: 200, H: 20}
	item := gui.Rect{X: 0, Y: 0, W: 200, H: 40}

	// A base widget and an open popup covering it, both hovered and both
	// asking for a tooltip.
	frame := func() (baseDrew, itemDrew bool) {
		ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
		before := len(ctx.ForegroundDrawList.VtxBuffer)
		ctx.Tooltip(ctx.GetID("base"), base, "base hint")
		baseDrew = len(ctx.ForegroundDrawList.VtxBuffer) > before

		ctx.OpenPopup("m")
		ctx.Popup("m", gui.AnchorPosition(gui.Vec2{}))(func() {
			ctx.Text("item")
			n := len(ctx.ForegroundDrawList.VtxBuffer)
			ctx.Tooltip(ctx.GetID("item"), item, "item hint")
			itemDrew = len(ctx.ForegroundDrawList.VtxBuffer) > n
		})
		_ = ui.End()
		return baseDrew, itemDrew
	}

	// First frame registers the popup; queries read it next frame.
	in.SetTime(1.0)
	in.Reset()
	in.SetMousePos(50, 10)
	frame()

	// Pointer has rested well past the delay.
	in.SetTime(3.0)
	in.Reset()
	baseDrew, itemDrew := frame()

	if baseDrew {
		t.Error("an open popup should suppress tooltips for widgets in the layer it was opened from")
	}
	if !itemDrew {
		t.Error("widgets inside the open popup should still get their tooltips")
	}
}

func TestTooltipsStackWithoutOverlap(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()
	widget := gui.Rect{X: 0, Y: 0, W: 200, H: 20}

	// First frame records both tooltip areas.
	ctx0 := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx0.AlwaysShowTooltips = true
	id0 := ctx0.GetID("w")
	ctx0.Tooltip(id0, widget, "first")
	ctx0.Tooltip(id0, widget, "second")
	_ = ui.End()

	// Second frame: both tooltip areas have recorded rects; the second
	// must sit below the first, not on top of it.
	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.AlwaysShowTooltips = true
	id := ctx.GetID("w")

	before := len(ctx.ForegroundDrawList.VtxBuffer)
	ctx.Tooltip(id, widget, "first")
	mid := len(ctx.ForegroundDrawList.VtxBuffer)
	ctx.Tooltip(id, widget, "second")
	after := len(ctx.ForegroundDrawList.VtxBuffer)
	if mid == before || after == mid {
		t.Fatal("both tooltips should draw")
	}
	_ = ui.End()
}
