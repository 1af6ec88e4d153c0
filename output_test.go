package gui_test

import (
	"testing"

	"github.com/frameloop/gui"
)

func TestOutputRepaintScheduling(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	out := ui.Output()
	if out.NeedsRepaint() {
		t.Error("a fresh frame should not need a repaint")
	}

	out.RequestRepaintAfter(0.5)
	out.RequestRepaintAfter(0.2) // earlier request wins
	out.RequestRepaintAfter(0.9)
	if got := out.RepaintAfter(); got != 0.2 {
		t.Errorf("RepaintAfter = %v, want the earliest 0.2", got)
	}

	out.RequestRepaint()
	if got := out.RepaintAfter(); got != 0 {
		t.Errorf("RequestRepaint should zero the delay, got %v", got)
	}
	_ = ui.End()

	// The batch resets with the next frame.
	_ = ctx
	ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ui.Output().NeedsRepaint() {
		t.Error("repaint requests must not leak into the next frame")
	}
	_ = ui.End()
}

func TestOutputEventsFromWidgets(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()

	// Press on the button drawn at the top-left of the screen.
	in.SetTime(0)
	in.Reset()
	in.SetMousePos(10, 10)
	in.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	clicked := ctx.Button("Press")
	_ = ui.End()

	if !clicked {
		t.Fatal("press over the button should click it")
	}
	events := ui.Output().Events
	found := false
	for _, ev := range events {
		if ev.Kind == gui.EventClicked && ev.Value == "Press" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an EventClicked for the button, got %+v", events)
	}
}

func TestOutputMerge(t *testing.T) {
	a := gui.NewOutput()
	a.RequestRepaintAfter(0.5)
	a.PushEvent(gui.OutputEvent{Kind: gui.EventClicked})

	b := gui.NewOutput()
	b.CursorIcon = gui.CursorText
	b.CopiedText = "copied"
	b.RequestRepaintAfter(0.1)
	b.PushEvent(gui.OutputEvent{Kind: gui.EventValueChanged})

	a.Merge(b)

	if a.CursorIcon != gui.CursorText {
		t.Error("Merge should take the later batch's cursor")
	}
	if a.CopiedText != "copied" {
		t.Error("Merge should carry copied text")
	}
	if len(a.Events) != 2 {
		t.Errorf("Merge should accumulate events, got %d", len(a.Events))
	}
	if got := a.RepaintAfter(); got != 0.1 {
		t.Errorf("Merge should keep the earliest repaint, got %v", got)
	}
}
