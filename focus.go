package gui

// FocusManager tracks which panel currently has keyboard focus and cycles
// it with Ctrl+Tab / Ctrl+Shift+Tab. The focus ring only shows once the
// user has cycled explicitly; plain hotkey opens keep the UI quiet.
type FocusManager struct {
	registry     *PanelRegistry
	focusedIndex int  // index into the open panels, -1 if none
	focusVisible bool // whether to draw the focus indicator ring
}

// NewFocusManager creates a focus manager attached to a panel registry.
func NewFocusManager(registry *PanelRegistry) *FocusManager {
	return &FocusManager{
		registry:     registry,
		focusedIndex: -1,
	}
}

// FocusedPanel returns the currently focused panel, or nil if none.
func (fm *FocusManager) FocusedPanel() Panel {
	open := fm.openPanels()
	if fm.focusedIndex < 0 || fm.focusedIndex >= len(open) {
		return nil
	}
	return open[fm.focusedIndex].Panel
}

// FocusedPanelName returns the focused panel's name, or "".
func (fm *FocusManager) FocusedPanelName() string {
	open := fm.openPanels()
	if fm.focusedIndex < 0 || fm.focusedIndex >= len(open) {
		return ""
	}
	return open[fm.focusedIndex].Name
}

// IsFocused returns true if the given panel is currently focused.
func (fm *FocusManager) IsFocused(panel Panel) bool {
	return panel != nil && panel == fm.FocusedPanel()
}

// IsFocusVisible returns true if the focus indicator should be drawn.
func (fm *FocusManager) IsFocusVisible() bool {
	return fm.focusVisible && fm.focusedIndex >= 0
}

// SetFocusVisible shows or hides the focus indicator ring.
func (fm *FocusManager) SetFocusVisible(visible bool) {
	fm.focusVisible = visible
}

// FocusPanel focuses a specific open panel by reference.
func (fm *FocusManager) FocusPanel(panel Panel) {
	for i, entry := range fm.openPanels() {
		if entry.Panel == panel {
			fm.focusedIndex = i
			fm.focusVisible = true
			return
		}
	}
}

// FocusPanelByName focuses a specific open panel by name.
func (fm *FocusManager) FocusPanelByName(name string) {
	for i, entry := range fm.openPanels() {
		if entry.Name == name {
			fm.focusedIndex = i
			fm.focusVisible = true
			return
		}
	}
}

// FocusNext cycles focus to the next open panel (Ctrl+Tab).
func (fm *FocusManager) FocusNext() {
	open := fm.openPanels()
	if len(open) == 0 {
		fm.focusedIndex = -1
		return
	}
	fm.focusedIndex = (fm.focusedIndex + 1) % len(open)
	fm.focusVisible = true
}

// FocusPrev cycles focus to the previous open panel (Ctrl+Shift+Tab).
func (fm *FocusManager) FocusPrev() {
	open := fm.openPanels()
	if len(open) == 0 {
		fm.focusedIndex = -1
		return
	}
	fm.focusedIndex--
	if fm.focusedIndex < 0 {
		fm.focusedIndex = len(open) - 1
	}
	fm.focusVisible = true
}

// ClearFocus removes focus from all panels and hides the ring.
func (fm *FocusManager) ClearFocus() {
	fm.focusedIndex = -1
	fm.focusVisible = false
}

// HandleInput processes the cycling shortcut.
// Returns true if input was consumed.
func (fm *FocusManager) HandleInput(input *InputState) bool {
	if input == nil {
		return false
	}
	if input.KeyPressed(KeyTab) && input.ModCtrl {
		if input.ModShift {
			fm.FocusPrev()
		} else {
			fm.FocusNext()
		}
		return true
	}
	return false
}

// Update re-validates the focused index against the open panels. Call each
// frame before handling input, in case a panel was closed externally.
func (fm *FocusManager) Update() {
	open := fm.openPanels()
	if len(open) == 0 {
		fm.focusedIndex = -1
		fm.focusVisible = false
		return
	}
	if fm.focusedIndex >= len(open) {
		fm.focusedIndex = len(open) - 1
	}
	if fm.focusedIndex < 0 {
		// Something is open, so something is focused. The ring stays
		// hidden until the user cycles.
		fm.focusedIndex = 0
		fm.focusVisible = false
	}
}

func (fm *FocusManager) openPanels() []PanelEntry {
	if fm.registry == nil {
		return nil
	}
	entries := fm.registry.Entries()
	open := make([]PanelEntry, 0, len(entries))
	for _, e := range entries {
		if e.Panel.IsOpen() {
			open = append(open, e)
		}
	}
	return open
}

// DrawFocusRing draws the focus indicator ring around a panel rect.
func DrawFocusRing(dl *DrawList, x, y, w, h float32, style Style) {
	offset := SpaceXS
	thickness := style.BorderSize + 1
	color := style.FocusColor
	if color == 0 {
		color = ColorCyan
	}
	dl.AddRectOutline(x-offset, y-offset, w+offset*2, h+offset*2, color, thickness)
}
