package gui

import "testing"

// stubPanel is a minimal Panel implementation for registry tests.
type stubPanel struct {
	open    bool
	canOpen bool
	handled bool // HandleInput return value
}

func (p *stubPanel) Open()                        { p.open = true }
func (p *stubPanel) Close()                       { p.open = false }
func (p *stubPanel) Toggle() bool                 { p.open = !p.open; return p.open }
func (p *stubPanel) IsOpen() bool                 { return p.open }
func (p *stubPanel) CanOpen() bool                { return p.canOpen }
func (p *stubPanel) Draw(ctx *Context)            {}
func (p *stubPanel) HandleInput(*InputState) bool { return p.handled }

func newStubPanel() *stubPanel {
	return &stubPanel{canOpen: true}
}

func TestPanelRegistryHotkeyToggles(t *testing.T) {
	registry := NewPanelRegistry()
	help := newStubPanel()
	registry.Register("Help", help, KeyF1, 0)

	input := NewInputState()
	input.SetKey(KeyF1, true)

	if !registry.HandleHotkeys(input) {
		t.Fatal("the hotkey press should be handled")
	}
	if !help.IsOpen() {
		t.Error("hotkey should open the panel")
	}

	// Same key again closes it.
	input.Reset()
	input.SetKey(KeyF1, false)
	input.Reset()
	input.SetKey(KeyF1, true)
	registry.HandleHotkeys(input)
	if help.IsOpen() {
		t.Error("hotkey should close the open panel")
	}
}

func TestPanelRegistryExclusiveMode(t *testing.T) {
	registry := NewPanelRegistry()
	a := newStubPanel()
	b := newStubPanel()
	registry.Register("A", a, KeyNone, 0)
	registry.Register("B", b, KeyNone, 0)

	registry.OpenPanel("A")
	registry.OpenPanel("B")
	if a.IsOpen() {
		t.Error("exclusive mode: opening B should close A")
	}
	if !b.IsOpen() {
		t.Error("B should be open")
	}

	registry.SetExclusive(false)
	registry.OpenPanel("A")
	if !a.IsOpen() || !b.IsOpen() {
		t.Error("non-exclusive mode should allow both panels open")
	}
}

func TestPanelRegistryEscapeCloses(t *testing.T) {
	registry := NewPanelRegistry()
	help := newStubPanel()
	registry.Register("Help", help, KeyF1, 0)
	help.Open()

	input := NewInputState()
	input.SetKey(KeyEscape, true)
	if !registry.HandleInput(input) {
		t.Fatal("escape should be consumed while a panel is open")
	}
	if help.IsOpen() {
		t.Error("escape should close the open panel")
	}
}

func TestPanelRegistryCannotOpenBlockedPanel(t *testing.T) {
	registry := NewPanelRegistry()
	p := newStubPanel()
	p.canOpen = false
	registry.Register("Gated", p, KeyNone, 0)

	if registry.TogglePanel("Gated", nil) {
		t.Error("toggle must respect CanOpen")
	}
	if p.IsOpen() {
		t.Error("panel should stay closed when CanOpen is false")
	}
}

func TestPanelRegistryInputPriorityOrder(t *testing.T) {
	registry := NewPanelRegistry()
	registry.SetExclusive(false)
	low := newStubPanel()
	high := newStubPanel()
	low.handled = true
	high.handled = true
	registry.Register("Low", low, KeyNone, 0)
	registry.Register("High", high, KeyNone, 10)
	low.Open()
	high.Open()

	// Priority order is visible through Entries after sorting.
	if registry.Entries()[0].Name != "High" {
		t.Fatalf("expected High first in priority order, got %q", registry.Entries()[0].Name)
	}
}

func TestFocusManagerCycleNext(t *testing.T) {
	registry := NewPanelRegistry()
	registry.SetExclusive(false)

	panel1 := newStubPanel()
	panel2 := newStubPanel()
	panel3 := newStubPanel()
	registry.Register("Panel1", panel1, KeyNone, 0)
	registry.Register("Panel2", panel2, KeyNone, 0)
	registry.Register("Panel3", panel3, KeyNone, 0)

	fm := registry.FocusManager()

	fm.Update()
	if fm.FocusedPanel() != nil {
		t.Error("no panel should be focused while all are closed")
	}

	panel1.Open()
	panel2.Open()
	fm.Update()

	if fm.focusedIndex != 0 {
		t.Errorf("expected focusedIndex=0 after update with open panels, got %d", fm.focusedIndex)
	}

	fm.FocusNext()
	if fm.focusedIndex != 1 {
		t.Errorf("expected focusedIndex=1 after FocusNext, got %d", fm.focusedIndex)
	}

	fm.FocusNext()
	if fm.focusedIndex != 0 {
		t.Errorf("expected focusedIndex=0 after wrap, got %d", fm.focusedIndex)
	}
}

func TestFocusManagerCyclePrevWraps(t *testing.T) {
	registry := NewPanelRegistry()
	registry.SetExclusive(false)

	panel1 := newStubPanel()
	panel2 := newStubPanel()
	registry.Register("Panel1", panel1, KeyNone, 0)
	registry.Register("Panel2", panel2, KeyNone, 0)

	fm := registry.FocusManager()
	panel1.Open()
	panel2.Open()
	fm.Update()

	fm.FocusPrev()
	if fm.focusedIndex != 1 {
		t.Errorf("expected focusedIndex=1 after FocusPrev wrap, got %d", fm.focusedIndex)
	}
	fm.FocusPrev()
	if fm.focusedIndex != 0 {
		t.Errorf("expected focusedIndex=0 after FocusPrev, got %d", fm.focusedIndex)
	}
}

func TestFocusManagerFocusByName(t *testing.T) {
	registry := NewPanelRegistry()
	registry.SetExclusive(false)

	panel1 := newStubPanel()
	panel2 := newStubPanel()
	registry.Register("Panel1", panel1, KeyNone, 0)
	registry.Register("Panel2", panel2, KeyNone, 0)

	fm := registry.FocusManager()
	panel1.Open()
	panel2.Open()
	fm.Update()

	fm.FocusPanelByName("Panel2")
	if fm.FocusedPanelName() != "Panel2" {
		t.Errorf("expected focused panel Panel2, got %q", fm.FocusedPanelName())
	}
	fm.FocusPanelByName("Panel1")
	if fm.FocusedPanelName() != "Panel1" {
		t.Errorf("expected focused panel Panel1, got %q", fm.FocusedPanelName())
	}
}

func TestFocusManagerCtrlTab(t *testing.T) {
	registry := NewPanelRegistry()
	registry.SetExclusive(false)

	panel1 := newStubPanel()
	panel2 := newStubPanel()
	registry.Register("Panel1", panel1, KeyNone, 0)
	registry.Register("Panel2", panel2, KeyNone, 0)

	fm := registry.FocusManager()
	panel1.Open()
	panel2.Open()
	fm.Update()

	input := NewInputState()
	input.SetKey(KeyTab, true)
	input.ModCtrl = true

	if !fm.HandleInput(input) {
		t.Error("Ctrl+Tab should be consumed")
	}
	if fm.focusedIndex != 1 {
		t.Errorf("expected focusedIndex=1 after Ctrl+Tab, got %d", fm.focusedIndex)
	}

	// With Shift held, cycling reverses and wraps back.
	input.ModShift = true
	fm.HandleInput(input)
	if fm.focusedIndex != 0 {
		t.Errorf("expected focusedIndex=0 after Ctrl+Shift+Tab, got %d", fm.focusedIndex)
	}
}

func TestFocusManagerRingVisibility(t *testing.T) {
	registry := NewPanelRegistry()
	fm := registry.FocusManager()

	panel1 := newStubPanel()
	registry.Register("Panel1", panel1, KeyNone, 0)

	if fm.IsFocusVisible() {
		t.Error("focus ring should be hidden initially")
	}

	panel1.Open()
	fm.Update()
	if fm.IsFocusVisible() {
		t.Error("auto-focus from Update must not show the ring")
	}

	fm.FocusNext()
	if !fm.IsFocusVisible() {
		t.Error("explicit cycling should show the ring")
	}

	fm.ClearFocus()
	if fm.IsFocusVisible() {
		t.Error("ClearFocus should hide the ring")
	}
}

func TestFocusManagerSurvivesPanelClose(t *testing.T) {
	registry := NewPanelRegistry()
	registry.SetExclusive(false)

	panel1 := newStubPanel()
	panel2 := newStubPanel()
	registry.Register("Panel1", panel1, KeyNone, 0)
	registry.Register("Panel2", panel2, KeyNone, 0)

	fm := registry.FocusManager()
	panel1.Open()
	panel2.Open()
	fm.Update()

	fm.FocusPanelByName("Panel2")
	if fm.focusedIndex != 1 {
		t.Fatalf("setup: expected focusedIndex=1, got %d", fm.focusedIndex)
	}

	panel2.Close()
	fm.Update()
	if fm.focusedIndex != 0 {
		t.Errorf("expected focus to fall back to the remaining panel, got index %d", fm.focusedIndex)
	}
}

func TestFocusRegistryNavigateWidgets(t *testing.T) {
	registry := NewFocusRegistry()

	// Frame 1: widgets register while drawing.
	registry.Register(1, "section1", Rect{X: 0, Y: 0, W: 100, H: 20}, FocusTypeSection)
	registry.Register(2, "combo", Rect{X: 0, Y: 25, W: 100, H: 20}, FocusTypeLeaf)
	registry.Register(3, "section2", Rect{X: 0, Y: 50, W: 100, H: 20}, FocusTypeSection)
	registry.Register(4, "button1", Rect{X: 0, Y: 75, W: 100, H: 20}, FocusTypeLeaf)

	if len(registry.items) != 4 {
		t.Fatalf("expected 4 items registered, got %d", len(registry.items))
	}

	// Frame 2: the swap makes frame 1's registrations navigable.
	registry.ResetForFrame(2)
	if len(registry.prevItems) != 4 {
		t.Fatalf("expected 4 prevItems after reset, got %d", len(registry.prevItems))
	}
	if len(registry.items) != 0 {
		t.Fatalf("expected 0 items after reset, got %d", len(registry.items))
	}
	if registry.CurrentFocusID() != 0 {
		t.Errorf("expected no focus initially, got ID %d", registry.CurrentFocusID())
	}

	// First navigation lands on the first widget.
	if !registry.Navigate(NavDown) {
		t.Error("Navigate(NavDown) should focus the first widget")
	}
	if registry.CurrentFocusID() != 1 {
		t.Errorf("expected focus on ID 1, got %d", registry.CurrentFocusID())
	}

	if !registry.Navigate(NavDown) {
		t.Error("Navigate(NavDown) should succeed")
	}
	if registry.CurrentFocusID() != 2 {
		t.Errorf("expected focus on ID 2, got %d", registry.CurrentFocusID())
	}

	if !registry.Navigate(NavUp) {
		t.Error("Navigate(NavUp) should succeed")
	}
	if registry.CurrentFocusID() != 1 {
		t.Errorf("expected focus on ID 1, got %d", registry.CurrentFocusID())
	}

	if registry.Navigate(NavUp) {
		t.Error("Navigate(NavUp) at the top boundary should return false")
	}
}

func TestFocusRegistryNavigateAcrossFrames(t *testing.T) {
	registry := NewFocusRegistry()

	// Frame 1: nothing drawn yet.
	registry.ResetForFrame(1)

	// Frame 2: a panel opens and registers its widgets while drawing.
	registry.ResetForFrame(2)
	if len(registry.prevItems) != 0 {
		t.Fatalf("expected 0 prevItems before anything drew, got %d", len(registry.prevItems))
	}
	registry.Register(1, "section1", Rect{X: 0, Y: 0, W: 100, H: 20}, FocusTypeSection)
	registry.Register(2, "button1", Rect{X: 0, Y: 25, W: 100, H: 20}, FocusTypeLeaf)

	// Frame 3: the down arrow arrives; navigation walks frame 2's items.
	registry.ResetForFrame(3)
	if len(registry.prevItems) != 2 {
		t.Fatalf("expected 2 prevItems after the swap, got %d", len(registry.prevItems))
	}
	if !registry.Navigate(NavDown) {
		t.Error("Navigate(NavDown) should succeed once widgets have drawn")
	}
	if registry.CurrentFocusID() != 1 {
		t.Errorf("expected focus on ID 1, got %d", registry.CurrentFocusID())
	}

	registry.Register(1, "section1", Rect{X: 0, Y: 0, W: 100, H: 20}, FocusTypeSection)
	registry.Register(2, "button1", Rect{X: 0, Y: 25, W: 100, H: 20}, FocusTypeLeaf)

	// Frame 4: focus sticks to the widget ID across the swap.
	registry.ResetForFrame(4)
	if registry.CurrentFocusID() != 1 {
		t.Errorf("expected focus preserved on ID 1, got %d", registry.CurrentFocusID())
	}
	if !registry.Navigate(NavDown) {
		t.Error("Navigate(NavDown) should succeed")
	}
	if registry.CurrentFocusID() != 2 {
		t.Errorf("expected focus on ID 2, got %d", registry.CurrentFocusID())
	}
}

func TestFocusRegistrySkipsDisabledItems(t *testing.T) {
	registry := NewFocusRegistry()
	registry.Register(1, "a", Rect{X: 0, Y: 0, W: 100, H: 20}, FocusTypeLeaf)
	registry.RegisterDisabled(2, "b", Rect{X: 0, Y: 25, W: 100, H: 20}, FocusTypeLeaf)
	registry.Register(3, "c", Rect{X: 0, Y: 50, W: 100, H: 20}, FocusTypeLeaf)
	registry.ResetForFrame(2)

	registry.SetFocus(1)
	if !registry.Navigate(NavDown) {
		t.Fatal("Navigate(NavDown) should succeed")
	}
	if registry.CurrentFocusID() != 3 {
		t.Errorf("navigation should skip the disabled item, got focus on %d", registry.CurrentFocusID())
	}
}
