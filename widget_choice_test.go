package gui_test

import (
	"testing"

	"github.com/frameloop/gui"
)

func TestRadioGroupClickChangesSelection(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	items := []string{"Low", "Medium", "High"}
	selected := 0

	// Label row sits at y 0..8, items at 12, 24 and 36 with the default
	// 8pt line height and 4pt spacing. Press the middle item.
	in.SetTime(0)
	in.Reset()
	in.SetMousePos(4, 26)
	in.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	changed := ctx.RadioGroup("Quality", &selected, items)
	_ = ui.End()

	if !changed {
		t.Fatal("clicking another item should report a change")
	}
	if selected != 1 {
		t.Fatalf("selected = %d, want 1", selected)
	}
	found := false
	for _, ev := range ui.Output().Events {
		if ev.Kind == gui.EventValueChanged && ev.Value == "Medium" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a value-changed event for %q, got %+v", "Medium", ui.Output().Events)
	}
}

func TestRadioGroupClickOnSelectedIsNoChange(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	items := []string{"On", "Off"}
	selected := 0

	in.SetTime(0)
	in.Reset()
	in.SetMousePos(4, 14) // first item, already selected
	in.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	changed := ctx.RadioGroup("Status", &selected, items)
	_ = ui.End()

	if changed {
		t.Error("re-clicking the selected item should not report a change")
	}
	if selected != 0 {
		t.Errorf("selected = %d, want 0", selected)
	}
}

// comboFrame draws one combobox frame and reports whether the selection
// changed.
func comboFrame(ui *gui.GUI, in *gui.InputState, selected *int, items []string) bool {
	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	changed := ctx.ComboBox("", selected, items, gui.WithID("combo"))
	_ = ui.End()
	return changed
}

func TestComboBoxKeyboardPick(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	items := []string{"Low", "Medium", "High"}
	selected := 0

	// Click the closed header to open the dropdown.
	in.SetTime(0)
	in.Reset()
	in.SetMousePos(5, 5)
	in.SetMouseButton(gui.MouseButtonLeft, true)
	comboFrame(ui, in, &selected, items)

	in.SetTime(0.05)
	in.Reset()
	in.SetMouseButton(gui.MouseButtonLeft, false)
	in.SetMousePos(700, 500) // park the pointer away from the list
	comboFrame(ui, in, &selected, items)

	// Walk down one row, then pick it with Enter.
	in.SetTime(0.1)
	in.Reset()
	in.SetKey(gui.KeyDown, true)
	comboFrame(ui, in, &selected, items)

	in.SetTime(0.15)
	in.Reset()
	in.SetKey(gui.KeyEnter, true)
	changed := comboFrame(ui, in, &selected, items)

	if !changed {
		t.Fatal("Enter on a different row should report a change")
	}
	if selected != 1 {
		t.Fatalf("selected = %d, want 1", selected)
	}
	found := false
	for _, ev := range ui.Output().Events {
		if ev.Kind == gui.EventValueChanged && ev.Value == "Medium" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a value-changed event for %q, got %+v", "Medium", ui.Output().Events)
	}
}

func TestComboBoxEscapeCloses(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	in := gui.NewInputState()
	items := []string{"A", "B"}
	selected := 0

	in.SetTime(0)
	in.Reset()
	in.SetMousePos(5, 5)
	in.SetMouseButton(gui.MouseButtonLeft, true)
	comboFrame(ui, in, &selected, items)

	in.SetTime(0.05)
	in.Reset()
	in.SetMouseButton(gui.MouseButtonLeft, false)
	in.SetKey(gui.KeyEscape, true)
	comboFrame(ui, in, &selected, items)

	in.SetTime(0.1)
	in.Reset()
	ctx := ui.Begin(in, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.ComboBox("", &selected, items, gui.WithID("combo"))
	open := ctx.IsPopupOpen("combo##combo")
	_ = ui.End()

	if open {
		t.Error("Escape should close the dropdown")
	}
	if selected != 0 {
		t.Errorf("Escape must not change the selection, got %d", selected)
	}
}
