package gui

// Panel is the interface for any openable UI panel or overlay.
// Panels register with a PanelRegistry to get hotkey toggling, input
// routing and optional mutual exclusion.
type Panel interface {
	// Open opens the panel.
	Open()

	// Close closes the panel.
	Close()

	// Toggle flips the open state and reports whether the panel is now open.
	Toggle() bool

	// IsOpen returns true if the panel is currently open.
	IsOpen() bool

	// CanOpen reports whether the panel may be opened right now.
	// Use for preconditions; return true when there are none.
	CanOpen() bool

	// Draw renders the panel. Called every frame regardless of open
	// state; closed panels should return early.
	Draw(ctx *Context)

	// HandleInput processes input while the panel is open.
	// Returns true if the input was consumed.
	HandleInput(input *InputState) bool
}

// PanelEntry holds a registered panel with its configuration.
type PanelEntry struct {
	Name     string // Display name (e.g. "Help")
	Panel    Panel
	Hotkey   Key // Key that toggles the panel, KeyNone for none
	CloseKey Key // Key that closes the panel, KeyNone means Escape
	Priority int // Higher priority panels handle input first
}

// isCloseKeyPressed checks the panel's close key, falling back to Escape.
func (e *PanelEntry) isCloseKeyPressed(input *InputState) bool {
	if e.CloseKey != KeyNone {
		return input.KeyPressed(e.CloseKey)
	}
	return input.KeyPressed(KeyEscape)
}

// PanelRegistry manages a collection of panels: it toggles them on their
// hotkeys, closes them on their close keys, routes input to the open ones
// in priority order, and cycles focus between them with Ctrl+Tab.
type PanelRegistry struct {
	entries      []PanelEntry
	exclusive    bool // opening one panel closes the others
	inputChars   bool // swallow typed chars when a hotkey toggles a panel
	focusManager *FocusManager
}

// NewPanelRegistry creates a new panel registry. Exclusive mode is on by
// default; call SetExclusive(false) for independent panels.
func NewPanelRegistry() *PanelRegistry {
	r := &PanelRegistry{
		entries:    make([]PanelEntry, 0, 8),
		exclusive:  true,
		inputChars: true,
	}
	r.focusManager = NewFocusManager(r)
	return r
}

// SetExclusive sets whether opening one panel closes others.
func (r *PanelRegistry) SetExclusive(exclusive bool) {
	r.exclusive = exclusive
}

// Register adds a panel with a toggle hotkey. Priority determines input
// handling order (higher handles first, draws on top).
func (r *PanelRegistry) Register(name string, panel Panel, hotkey Key, priority int) {
	r.entries = append(r.entries, PanelEntry{
		Name:     name,
		Panel:    panel,
		Hotkey:   hotkey,
		Priority: priority,
	})
	r.sortByPriority()
}

// SetCloseKey overrides the close key for a panel by name.
// Pass KeyNone to restore the default (Escape).
func (r *PanelRegistry) SetCloseKey(name string, closeKey Key) {
	for i := range r.entries {
		if r.entries[i].Name == name {
			r.entries[i].CloseKey = closeKey
			return
		}
	}
}

// Unregister removes a panel from the registry.
func (r *PanelRegistry) Unregister(name string) {
	for i, e := range r.entries {
		if e.Name == name {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// GetPanel returns a panel by name, or nil if not found.
func (r *PanelRegistry) GetPanel(name string) Panel {
	for _, e := range r.entries {
		if e.Name == name {
			return e.Panel
		}
	}
	return nil
}

// IsAnyOpen returns true if any panel is currently open.
func (r *PanelRegistry) IsAnyOpen() bool {
	for _, e := range r.entries {
		if e.Panel.IsOpen() {
			return true
		}
	}
	return false
}

// CloseAll closes every panel.
func (r *PanelRegistry) CloseAll() {
	for _, e := range r.entries {
		e.Panel.Close()
	}
}

// OpenPanel opens a specific panel by name, closing the others first in
// exclusive mode.
func (r *PanelRegistry) OpenPanel(name string) {
	if r.exclusive {
		for _, e := range r.entries {
			e.Panel.Close()
		}
	}
	if p := r.GetPanel(name); p != nil {
		p.Open()
	}
}

// TogglePanel toggles a panel by name and reports whether it is now open.
// Pass the frame's input to swallow the hotkey character; a hotkey that
// toggles a panel must not also type into a focused text field.
func (r *PanelRegistry) TogglePanel(name string, input *InputState) bool {
	for i := range r.entries {
		if r.entries[i].Name != name {
			continue
		}
		panel := r.entries[i].Panel
		if panel.IsOpen() {
			panel.Close()
			return false
		}
		if !panel.CanOpen() {
			return false
		}
		if r.exclusive {
			for j := range r.entries {
				r.entries[j].Panel.Close()
			}
		}
		panel.Open()
		if input != nil && r.inputChars {
			input.ConsumeInputChars()
		}
		return true
	}
	return false
}

// HandleHotkeys checks every panel's toggle hotkey. Call once per frame,
// before HandleInput. Returns true if a hotkey was handled.
func (r *PanelRegistry) HandleHotkeys(input *InputState) bool {
	if input == nil {
		return false
	}
	for i := range r.entries {
		e := &r.entries[i]
		if e.Hotkey == KeyNone || !input.KeyPressed(e.Hotkey) {
			continue
		}
		r.TogglePanel(e.Name, input)
		return true
	}
	return false
}

// HandleInput routes input to open panels.
// Returns true if input was consumed by any panel.
func (r *PanelRegistry) HandleInput(input *InputState) bool {
	if input == nil {
		return false
	}

	r.focusManager.Update()

	// Ctrl+Tab / Ctrl+Shift+Tab cycling.
	if r.focusManager.HandleInput(input) {
		return true
	}

	// Close keys are handled here, centrally, so a toggle and a close
	// cannot race within one frame.
	for i := range r.entries {
		e := &r.entries[i]
		if e.Panel.IsOpen() && e.isCloseKeyPressed(input) {
			e.Panel.Close()
			return true
		}
	}

	// The focused panel gets first refusal while the focus ring is up.
	if r.focusManager.IsFocusVisible() {
		if focused := r.focusManager.FocusedPanel(); focused != nil && focused.IsOpen() {
			if focused.HandleInput(input) {
				return true
			}
		}
	}

	for _, e := range r.entries {
		if e.Panel.IsOpen() && e.Panel.HandleInput(input) {
			return true
		}
	}
	return false
}

// Draw renders all panels, lowest priority first so higher priority panels
// end up on top.
func (r *PanelRegistry) Draw(ctx *Context) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		r.entries[i].Panel.Draw(ctx)
	}
}

// sortByPriority sorts entries by priority, highest first.
func (r *PanelRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// Entries returns all registered panel entries, in priority order.
func (r *PanelRegistry) Entries() []PanelEntry {
	return r.entries
}

// FocusManager returns the focus manager for this registry.
func (r *PanelRegistry) FocusManager() *FocusManager {
	return r.focusManager
}

// FocusedPanel returns the currently focused panel, or nil if none.
func (r *PanelRegistry) FocusedPanel() Panel {
	return r.focusManager.FocusedPanel()
}

// IsPanelFocused returns true if the given panel is currently focused.
func (r *PanelRegistry) IsPanelFocused(panel Panel) bool {
	return r.focusManager.IsFocused(panel)
}
