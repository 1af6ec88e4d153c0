package gui_test

import (
	"testing"

	"github.com/frameloop/gui"
)

// selectionFrame draws one selectable label at the origin and returns the
// frame's copied text, if any.
func selectionFrame(ui *gui.GUI, in *gui.InputState, text string) string {
	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.SelectableText(text, gui.WithID("sel"))
	_ = ui.End()
	return ui.Output().CopiedText
}

func TestSelectableTextDragAndCopyAll(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()
	const text = "hello world"

	// Press at the first character. Default style renders 8pt cells, so
	// the label spans x=0..88 at the origin.
	in.SetTime(0)
	in.Reset()
	in.SetMousePos(1, 4)
	in.SetMouseButton(gui.MouseButtonLeft, true)
	selectionFrame(ui, in, text)

	// Drag past the right edge: the selection runs to the last rune.
	in.SetTime(0.05)
	in.Reset()
	in.SetMousePos(500, 4)
	selectionFrame(ui, in, text)

	// Ctrl+C with every character selected copies the full text.
	in.SetTime(0.1)
	in.Reset()
	in.ModCtrl = true
	in.SetKey(gui.KeyC, true)
	copied := selectionFrame(ui, in, text)
	if copied != text {
		t.Errorf("copied %q, want the full text %q", copied, text)
	}
}

func TestSelectableTextCopyPartial(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()
	const text = "hello"

	in.SetTime(0)
	in.Reset()
	in.SetMousePos(1, 4)
	in.SetMouseButton(gui.MouseButtonLeft, true)
	selectionFrame(ui, in, text)

	// Drag to x=17: with 8pt cells that is past the midpoint of the
	// third cell's left half, selecting "he".
	in.SetTime(0.05)
	in.Reset()
	in.SetMousePos(17, 4)
	selectionFrame(ui, in, text)

	in.SetTime(0.1)
	in.Reset()
	in.ModCtrl = true
	in.SetKey(gui.KeyC, true)
	copied := selectionFrame(ui, in, text)
	if copied != "he" {
		t.Errorf("copied %q, want the selected substring %q", copied, "he")
	}
}

func TestDoubleClickSelectsAll(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()
	const text = "label"

	clickAt(in, 0, 10, 4)
	selectionFrame(ui, in, text)

	clickAt(in, 0.1, 10, 4) // double-click
	selectionFrame(ui, in, text)

	in.SetTime(0.2)
	in.Reset()
	in.ModCtrl = true
	in.SetKey(gui.KeyC, true)
	copied := selectionFrame(ui, in, text)
	if copied != text {
		t.Errorf("copied %q after double-click, want %q", copied, text)
	}
}

func TestClickElsewhereClearsSelection(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()
	const text = "label"

	clickAt(in, 0, 10, 4)
	selectionFrame(ui, in, text)

	// Click on empty space: nothing claims the press, so the slot clears.
	clickAt(in, 0.5, 400, 300)
	selectionFrame(ui, in, text)

	in.SetTime(1.0)
	in.Reset()
	in.ModCtrl = true
	in.SetKey(gui.KeyC, true)
	copied := selectionFrame(ui, in, text)
	if copied != "" {
		t.Errorf("copied %q after the selection was cleared, want nothing", copied)
	}
}

func TestSelectionMovesBetweenLabels(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer)
	in := gui.NewInputState()

	frame := func() (*gui.Context, func()) {
		ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
		return ctx, func() { _ = ui.End() }
	}

	// Click the first label.
	in.SetTime(0)
	in.Reset()
	in.SetMousePos(10, 4)
	in.SetMouseButton(gui.MouseButtonLeft, true)
	ctx, end := frame()
	ctx.SelectableText("first", gui.WithID("a"))
	ctx.SelectableText("second", gui.WithID("b"))
	end()

	in.Reset()
	in.SetMouseButton(gui.MouseButtonLeft, false)
	ctx, end = frame()
	ctx.SelectableText("first", gui.WithID("a"))
	ctx.SelectableText("second", gui.WithID("b"))
	end()

	// Click the second label: there is only one selection slot, so the
	// first label loses it.
	in.SetTime(0.5)
	in.Reset()
	in.SetMousePos(10, 14)
	in.SetMouseButton(gui.MouseButtonLeft, true)
	ctx, end = frame()
	ctx.SelectableText("first", gui.WithID("a"))
	ctx.SelectableText("second", gui.WithID("b"))
	end()

	in.SetTime(1.0)
	in.Reset()
	in.SetMouseButton(gui.MouseButtonLeft, false)
	in.ModCtrl = true
	in.SetKey(gui.KeyC, true)
	ctx, end = frame()
	ctx.SelectableText("first", gui.WithID("a"))
	ctx.SelectableText("second", gui.WithID("b"))
	end()

	if got := ui.Output().CopiedText; got != "second" {
		t.Errorf("copied %q, want %q from the label that took the slot", got, "second")
	}
}
