package gui_test

import (
	"testing"

	"github.com/frameloop/gui"
)

func TestPopupMemoryOpenClose(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.IsPopupOpen("mem") {
		t.Error("popup should start closed")
	}
	ctx.OpenPopup("mem")
	if !ctx.IsPopupOpen("mem") {
		t.Error("OpenPopup should open")
	}
	ctx.TogglePopup("mem")
	if ctx.IsPopupOpen("mem") {
		t.Error("TogglePopup should close an open popup")
	}
	ctx.TogglePopup("mem")
	ctx.ClosePopup("mem")
	if ctx.IsPopupOpen("mem") {
		t.Error("ClosePopup should close")
	}
	_ = ui.End()
}

func TestPopupShowsWhenOpen(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.OpenPopup("show")
	shown := ctx.Popup("show", gui.AnchorPosition(gui.Vec2{X: 100, Y: 100}))(func() {
		ctx.Text("item")
	})
	if !shown {
		t.Fatal("an open popup should show")
	}
	if len(ctx.ForegroundDrawList.VtxBuffer) == 0 {
		t.Error("popup content should land on the foreground layer")
	}
	if !ui.Output().NeedsRepaint() {
		t.Error("a popup's first frame should request a repaint to fix placement")
	}
	_ = ui.End()

	// Closed popups draw nothing and report not shown.
	ctx = ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.ClosePopup("show")
	shown = ctx.Popup("show", gui.AnchorPosition(gui.Vec2{X: 100, Y: 100}))(func() {
		ctx.Text("item")
	})
	if shown {
		t.Error("a closed popup must not show")
	}
	_ = ui.End()
}

func TestPopupEscapeAlwaysCloses(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()

	show := func() bool {
		ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
		defer ui.End()
		// IgnoreClicks still yields to Escape.
		return ctx.Popup("esc", gui.AnchorPosition(gui.Vec2{X: 100, Y: 100}),
			gui.PopupClose(gui.IgnoreClicks))(func() {
			ctx.Text("item")
		})
	}

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.OpenPopup("esc")
	_ = ui.End()

	if !show() {
		t.Fatal("popup should be showing before Escape")
	}

	in.Reset()
	in.SetKey(gui.KeyEscape, true)
	if show() {
		t.Error("Escape must close the popup regardless of close behavior")
	}

	in.Reset()
	in.SetKey(gui.KeyEscape, false)
	ctx = ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.IsPopupOpen("esc") {
		t.Error("popup memory should be closed after Escape")
	}
	_ = ui.End()
}

func TestPopupClickOutsideCloses(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()

	show := func() bool {
		ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
		defer ui.End()
		return ctx.Popup("outside", gui.AnchorPosition(gui.Vec2{X: 100, Y: 100}),
			gui.PopupClose(gui.CloseOnClickOutside))(func() {
			ctx.Text("item")
		})
	}

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.OpenPopup("outside")
	_ = ui.End()

	// First shown frame records the popup's rect.
	if !show() {
		t.Fatal("popup should show")
	}

	// A click inside keeps it open.
	in.Reset()
	in.SetMousePos(110, 110)
	in.SetMouseButton(gui.MouseButtonLeft, true)
	if !show() {
		t.Fatal("click inside must not close the popup")
	}

	in.Reset()
	in.SetMouseButton(gui.MouseButtonLeft, false)
	_ = show()

	// A click far away closes it after this frame.
	in.Reset()
	in.SetMousePos(700, 500)
	in.SetMouseButton(gui.MouseButtonLeft, true)
	show()

	in.Reset()
	in.SetMouseButton(gui.MouseButtonLeft, false)
	if show() {
		t.Error("popup should be closed after a click outside")
	}
}

func TestAnchorRectPlacements(t *testing.T) {
	parent := gui.Rect{X: 100, Y: 100, W: 50, H: 20}
	size := gui.Vec2{X: 30, Y: 10}

	cases := []struct {
		name  string
		align gui.RectAlign
		want  gui.Rect
	}{
		{"bottom-start", gui.AlignBottomStart, gui.Rect{X: 100, Y: 125, W: 30, H: 10}},
		{"top-end", gui.AlignTopEnd, gui.Rect{X: 120, Y: 85, W: 30, H: 10}},
		{"right-center", gui.AlignRightCenter, gui.Rect{X: 155, Y: 105, W: 30, H: 10}},
		{"left-start", gui.AlignLeftStart, gui.Rect{X: 65, Y: 100, W: 30, H: 10}},
		{"bottom-center", gui.AlignBottomCenter, gui.Rect{X: 110, Y: 125, W: 30, H: 10}},
	}
	for _, tc := range cases {
		got := tc.align.AnchorRect(parent, size, 5)
		if got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}
