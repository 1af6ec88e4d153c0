/*
Package gui provides an immediate-mode GUI library inspired by Dear ImGui,
designed as idiomatic Go with a dedicated Context type.

# Overview

This package implements an immediate-mode GUI where the UI is rebuilt every frame.
Unlike retained-mode GUIs, there's no need to manage widget state or handle callbacks.
The UI code is simply called each frame, and widgets return interaction results directly.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1920, 1080)
	ui := gui.New(renderer, gui.WithStyle(gui.ArcadeStyle()))

	// Main loop
	for !window.ShouldClose() {
	    input := pollInput(window)

	    ctx := ui.Begin(input, gui.Vec2{1920, 1080}, deltaTime)

	    ctx.Panel("Menu", gui.Gap(8), gui.Padding(12))(func() {
	        ctx.Text("Hello World")
	        if ctx.Button("Click Me") {
	            // Button was clicked
	        }
	    })

	    ui.End()
	    platform.Apply(ui.Output())
	    window.SwapBuffers()
	    platform.WaitFrame(ui.Output())
	}

# Frame Lifecycle

Each frame follows the same shape:

 1. Feed platform events into an InputState (SetTime first, then Reset,
    then mouse/key/touch events).
 2. ui.Begin(input, displaySize, deltaTime) returns the Context.
 3. Build the UI by calling widget methods on the Context.
 4. ui.End() flushes draw lists to the renderer.
 5. Read ui.Output() and hand it to the platform bridge: cursor icon,
    clipboard text, URLs to open, IME placement, repaint scheduling.

Widget reads of sizes and positions are one frame behind: a widget that
needs its own rect (popup sizing, grid column widths, divider hit areas)
reads what it registered last frame and registers the current frame's
value for the next one. The first frame after a change therefore uses a
stale size; widgets call Output.RequestRepaint when they detect this so
the host schedules an immediate follow-up frame.

# The Output Batch

End produces an Output value describing everything the core wants from
the host besides drawing:

	out := ui.Output()
	out.CursorIcon     // pointer shape to show
	out.OpenURL        // non-nil if a link should be opened
	out.CopiedText     // non-empty if text was copied or cut
	out.IMERect        // where to place composition UI while editing
	out.Events         // clicked/value-changed events for accessibility
	out.RepaintAfter() // seconds until the next frame, +Inf if idle

The backend packages consume this for you; see backend/opengl.Platform
and the Ebitengine adapter.

# Basic Widgets

	ctx.Text(text string)
	ctx.TextColored(text string, color uint32)
	ctx.TextWrapped(text string, maxWidth float32)
	ctx.SelectableText(text string, opts ...Option)
	    Label whose text can be selected with the mouse and copied with
	    Ctrl+C. Only one label holds a selection at a time.

	ctx.Button(label string, opts ...Option) bool
	ctx.SmallButton(label string, opts ...Option) bool
	ctx.Checkbox(label string, value *bool, opts ...Option) bool
	ctx.RadioButton(label string, active bool, opts ...Option) bool
	ctx.RadioGroup(label string, selected *int, items []string, opts ...Option) bool
	ctx.ProgressBar(fraction float32, opts ...Option)
	ctx.InputText(label string, value *string, opts ...Option) bool
	ctx.SliderFloat(label string, value *float32, min, max float32, opts ...Option) bool
	ctx.SliderInt(label string, value *int, min, max int, opts ...Option) bool
	ctx.ComboBox(label string, selected *int, items []string, opts ...Option) bool
	ctx.CollapsingHeader(label string, opts ...Option) bool
	ctx.TreeNode(label string, opts ...Option) bool

# Layout

Containers take a closure so nesting reads like the UI looks:

	ctx.Panel("Settings", gui.Gap(8))(func() {
	    ctx.HStack(gui.Gap(16))(func() {
	        ctx.Button("A")
	        ctx.Button("B")
	    })
	})

	ctx.Panel(title, opts...)   Window-like container with a header
	ctx.VStack(opts...)         Vertical stack
	ctx.HStack(opts...)         Horizontal stack
	ctx.Row(opts...)            One-line horizontal group
	ctx.InRect(rect, opts...)   Vertical layout inside an externally
	                            solved rectangle (dock panes)
	ctx.Scrollable(id, height)  Clipped, scrollable region

# Atomic Rows

AtomicLayout solves a row of slots in one pass so the pieces never
wrap apart. Slots are measured, grow slots share the leftover width,
and everything overflowing the last visible slot is truncated:

	row := ctx.BeginAtomic(width)
	row.Slot(ctx.MeasureText(name))        // fixed
	row.Grow()                             // elastic spacer
	row.Slot(ctx.MeasureText(shortcut))    // fixed
	rects := row.Solve()

Menu items use this to pin shortcuts to the right edge.

# Grids

Grid aligns columns across rows using the previous frame's column
widths, so alignment settles after one frame without a second layout
pass:

	g := ctx.BeginGrid("stats", 2)
	ctx.Text("Clicks")
	g.Advance(ctx.MeasureText("Clicks"))
	ctx.Text("12")
	g.Advance(ctx.MeasureText("12"))
	g.EndRow()
	g.EndGrid()

# Docking

Dock arranges an application's panes into a tree of splits and tab
bars. The pane payload is a user type; a DockBehavior tells the dock
how to title and render each pane:

	dock := gui.NewDock[MyPane]()
	left := dock.AddLeaf(PaneA)
	right := dock.AddTabs(dock.AddLeaf(PaneB), dock.AddLeaf(PaneC))
	dock.Root = dock.AddHorizontal(left, right)

	// each frame
	dock.Show(ctx, behavior, contentRect)

Panes can be dragged between containers, split containers resized by
their dividers, and empty containers are garbage collected each frame.
DockBehavior.RetainPane can veto the removal of an emptied pane.
Split sizing uses shares: each child holds a fraction of the parent
proportional to its share, shares are conserved during a divider drag,
and double-clicking a divider equalizes its two neighbors.

# Popups, Menus and Tooltips

	ctx.OpenPopup(id) / ctx.ClosePopup(id) / ctx.TogglePopup(id)
	ctx.Popup(id, opts...)(contents)
	    Floating layer positioned against an anchor (a rect, a point, or
	    the pointer position at open). Twelve alignments are tried and
	    the first that fits on screen wins. Escape always closes.

	ctx.MenuBar(contents)
	ctx.Menu(label)(contents)
	    Menu bar entry. Hovering a sibling while one menu is open
	    switches to it without a click.
	ctx.MenuItem(label, shortcut, opts...) bool
	ctx.ContextMenu(id, targetRect, opts...)(contents)
	    Right-click menu anchored at the click position.

	ctx.Tooltip(id, rect, text)
	    Shows after a short hover delay; moving between tooltipped
	    widgets within a grace period skips the delay. Set
	    ctx.AlwaysShowTooltips to show immediately.

# Input

InputState carries one frame of input. Platform bridges feed it:

	input.SetTime(now)          // before Reset
	input.Reset()
	input.SetMousePos(x, y)
	input.SetMouseButton(gui.MouseButtonLeft, down)
	input.SetMouseWheel(dx, dy)
	input.SetKey(gui.KeyEnter, down)
	input.AddInputChar(r)
	input.AddTouchEvent(id, gui.TouchMove, pos, force)

The pointer state machine derives clicks (press and release within a
small slop radius), double clicks, drags and release velocity. Touch
contacts feed a gesture recognizer that reports pinch zoom (with
per-axis dominance so a horizontal-only pinch does not zoom Y),
rotation and pan for two-finger input.

# State Management

Widget state persists between frames in type-safe stores:

	var myStore = gui.NewFrameStore[MyWidgetState]()

	state := myStore.Get(id, MyWidgetState{})
	state.Open = true // direct pointer modification

Entries not accessed for a frame are garbage collected. GetState and
SetState offer the same through the Context for the built-in state
types (ScrollState, InputTextState, SliderState, ...).

# Widget IDs

IDs are derived from the call site label, the ID stack and a per-frame
counter, so two buttons with the same label in different containers do
not collide. Disambiguate duplicates in loops explicitly:

	ctx.Button("Delete", gui.WithID(fmt.Sprintf("del-%d", i)))

Popups use a name hash instead so OpenPopup("file_menu") from one call
site matches ctx.Popup("file_menu") at another.

# Persistence

Storage is a flat key to blob map; FileStorage keeps it in a TOML file
written atomically on Flush:

	store := gui.OpenFileStorage(path)
	gui.SaveValue(store, "layout", myLayout)
	layout := gui.LoadValue(store, "layout", defaultLayout)
	store.Flush()

Malformed blobs load as the default. The OpenGL backend persists
window geometry with SaveWindowGeometry/RestoreWindowGeometry.

# Keyboard Shortcuts Reference

InputText:

	Left/Right       Move cursor; Ctrl skips words
	Home/End         Jump to start/end
	Shift+motion     Extend selection
	Ctrl+A           Select all
	Ctrl+C/X/V       Copy, cut, paste
	Ctrl+Z, Ctrl+Y   Undo, redo
	Enter            Confirm and unfocus
	Escape           Cancel and unfocus

Scrollable areas:

	Mouse Wheel      Scroll vertically
	Page Up/Down     Scroll by 80% of viewport
	Home/End         Scroll to top/bottom (when focused)

ComboBox:

	Click            Open/close dropdown
	Up/Down          Move the highlighted item
	Enter            Pick the highlighted item
	Escape           Close dropdown
	Type characters  Filter items (with WithSearchable)

Popups and menus:

	Escape           Close the topmost popup, always

Selectable labels:

	Drag             Select text
	Ctrl+C           Copy selection (full label if all visible
	                 characters are selected)

Global:

	Ctrl+Tab         Cycle panel focus
	Tab/Shift+Tab    Cycle widget focus
	F10              Toggle focus debug overlay

# Styling

	ui := gui.New(renderer, gui.WithStyle(gui.ArcadeStyle()))

	ctx.PushStyle(customStyle)
	defer ctx.PopStyle()

	ctx.PushStyleColor(gui.StyleColorButton, gui.RGBA(200, 50, 50, 255))

Colors are packed RGBA as 0xAABBGGRR, matching the vertex format.

# Backends

	backend/opengl       GLFW + OpenGL 4.1: renderer, input adapter,
	                     cursor/clipboard/URL platform bridge, window
	                     geometry persistence, frame pacing via
	                     glfw.WaitEventsTimeout.
	backend/ebitengine   Ebitengine renderer and input adapter with
	                     touch support.
	backend/sysclip      OS clipboard provider for backends without
	                     one of their own.

Custom renderers implement the Renderer interface: consume a DrawList
(vertex/index buffers plus draw commands with clip rects and texture
IDs).

# Performance Notes

  - Draw lists are pooled and reused between frames
  - Text measurement is cached per frame
  - Glyph buffers are pre-allocated and reused
  - FrameStore entries not touched for a frame are swept on NextFrame
*/
package gui
