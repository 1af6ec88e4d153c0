// Example demonstrates a GUI window with a menu bar, a dockable pane
// tree, tooltips, selectable text and persisted window geometry.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/frameloop/gui"
	"github.com/frameloop/gui/backend/opengl"
)

const (
	windowWidth  = 1000
	windowHeight = 700
	windowTitle  = "gui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// paneKind selects which content a dock pane shows.
type paneKind int

const (
	paneControls paneKind = iota
	paneStats
	paneLog
)

// app holds the example's state and implements gui.DockBehavior.
type app struct {
	window *glfw.Window

	clickCount int
	sliderVal  float32
	checked    bool
	quality    int
	logLines   []string
}

var qualityNames = []string{"Low", "Medium", "High"}

func (a *app) PaneTitle(p paneKind) string {
	switch p {
	case paneControls:
		return "Controls"
	case paneStats:
		return "Stats"
	default:
		return "Log"
	}
}

func (a *app) RetainPane(p paneKind) bool { return false }

func (a *app) PaneUI(ctx *gui.Context, id gui.NodeID, p paneKind, rect gui.Rect) {
	switch p {
	case paneControls:
		a.controlsPane(ctx, rect)
	case paneStats:
		a.statsPane(ctx, rect)
	case paneLog:
		a.logPane(ctx, rect)
	}
}

func (a *app) controlsPane(ctx *gui.Context, rect gui.Rect) {
	ctx.InRect(rect)(func() {
		if ctx.Button(fmt.Sprintf("Click me (%d)", a.clickCount)) {
			a.clickCount++
			a.logLines = append(a.logLines, fmt.Sprintf("button clicked, count=%d", a.clickCount))
		}
		ctx.Spacing(8)
		ctx.Text(fmt.Sprintf("Slider: %.2f", a.sliderVal))
		ctx.SliderFloat("example-slider", &a.sliderVal, 0, 1)
		ctx.Spacing(8)
		ctx.Checkbox("Enable thing", &a.checked)
		ctx.Spacing(8)
		if ctx.RadioGroup("Quality", &a.quality, qualityNames) {
			a.logLines = append(a.logLines, "quality set to "+qualityNames[a.quality])
		}
		ctx.Spacing(8)
		if ctx.ComboBox("Preset", &a.quality, qualityNames) {
			a.logLines = append(a.logLines, "preset picked: "+qualityNames[a.quality])
		}
	})

	// Right-click anywhere in the pane for a context menu.
	ctx.ContextMenu("controls_ctx", rect)(func() {
		if ctx.MenuItem("Reset counter", "") {
			a.clickCount = 0
		}
		if ctx.MenuItem("Reset slider", "") {
			a.sliderVal = 0.5
		}
	})
}

func (a *app) statsPane(ctx *gui.Context, rect gui.Rect) {
	rows := [][2]string{
		{"Clicks", fmt.Sprintf("%d", a.clickCount)},
		{"Slider", fmt.Sprintf("%.2f", a.sliderVal)},
		{"Checked", fmt.Sprintf("%v", a.checked)},
		{"Log lines", fmt.Sprintf("%d", len(a.logLines))},
	}

	ctx.InRect(rect)(func() {
		g := ctx.BeginGrid("stats", 2)
		for _, row := range rows {
			ctx.Text(row[0])
			g.Advance(ctx.MeasureText(row[0]))
			ctx.Text(row[1])
			g.Advance(ctx.MeasureText(row[1]))
			g.EndRow()
		}
		g.EndGrid()
	})
}

func (a *app) logPane(ctx *gui.Context, rect gui.Rect) {
	ctx.InRect(rect)(func() {
		const hint = "Latest events (text is selectable):"
		hintPos := ctx.GetCursorPos()
		ctx.Text(hint)
		hintRect := gui.Rect{
			X: hintPos.X, Y: hintPos.Y,
			W: ctx.MeasureText(hint).X,
			H: ctx.LineHeight(),
		}
		ctx.Tooltip(ctx.GetID("log_hint"), hintRect, "Drag to select, Ctrl+C to copy")

		start := max(len(a.logLines)-10, 0)
		for i, line := range a.logLines[start:] {
			ctx.SelectableText(line, gui.WithID(fmt.Sprintf("log-%d", start+i)))
		}
	})
}

func (a *app) menuBar(ctx *gui.Context) {
	ctx.MenuBar(func() {
		ctx.Menu("File")(func() {
			if ctx.MenuItem("Project homepage", "") {
				ctx.Output.OpenURL = &gui.OpenURL{URL: "https://github.com/frameloop/gui"}
			}
			if ctx.MenuItem("Quit", "Ctrl+Q") {
				a.window.SetShouldClose(true)
			}
		})
		ctx.Menu("View")(func() {
			if ctx.MenuItem("Always show tooltips", boolMark(ctx.AlwaysShowTooltips)) {
				ctx.AlwaysShowTooltips = !ctx.AlwaysShowTooltips
			}
			if ctx.MenuItem("Clear log", "") {
				a.logLines = a.logLines[:0]
			}
		})
	})
}

// helpPanel is a keyboard shortcut overlay toggled with F1. It implements
// gui.Panel so the panel registry handles the hotkey and Escape for it.
type helpPanel struct {
	open bool
}

func (p *helpPanel) Open()                            { p.open = true }
func (p *helpPanel) Close()                           { p.open = false }
func (p *helpPanel) Toggle() bool                     { p.open = !p.open; return p.open }
func (p *helpPanel) IsOpen() bool                     { return p.open }
func (p *helpPanel) CanOpen() bool                    { return true }
func (p *helpPanel) HandleInput(*gui.InputState) bool { return false }

func (p *helpPanel) Draw(ctx *gui.Context) {
	if !p.open {
		return
	}

	const w, h = 380, 200
	rect := gui.Rect{
		X: (ctx.DisplaySize.X - w) / 2,
		Y: (ctx.DisplaySize.Y - h) / 2,
		W: w, H: h,
	}
	style := ctx.Style()
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, style.PanelColor)
	ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, style.PanelBorderColor, style.BorderSize)
	if ctx.IsFocusVisible() && ctx.IsPanelFocused(p) {
		gui.DrawFocusRing(ctx.DrawList, rect.X, rect.Y, rect.W, rect.H, style)
	}

	ctx.InRect(rect, gui.Padding(12), gui.Gap(6))(func() {
		ctx.Text("Keyboard shortcuts")
		ctx.Spacing(6)
		for _, row := range [][2]string{
			{"F1", "Toggle this help"},
			{"Esc", "Close the open panel or popup"},
			{"Ctrl+Tab", "Cycle panel focus"},
			{"Ctrl+Q", "Quit"},
			{"Ctrl+C", "Copy selected text"},
		} {
			ctx.Text(fmt.Sprintf("%-10s %s", row[0], row[1]))
		}
	})
}

func boolMark(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func storagePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gui-example.toml"
	}
	return filepath.Join(dir, "gui-example", "state.toml")
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Restore last session's window placement.
	store := gui.OpenFileStorage(storagePath())
	opengl.RestoreWindowGeometry(store, window)
	defer func() {
		opengl.SaveWindowGeometry(store, window)
		if err := store.Flush(); err != nil {
			fmt.Fprintln(os.Stderr, "save state:", err)
		}
	}()

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	platform := opengl.NewPlatform(window)

	ui := gui.New(renderer, gui.WithStyle(gui.ArcadeStyle()))

	a := &app{
		window:    window,
		sliderVal: 0.5,
	}

	// Overlay panels: F1 toggles the shortcut help, Escape closes it.
	help := &helpPanel{}
	panels := gui.NewPanelRegistry()
	panels.Register("Help", help, gui.KeyF1, 0)

	// Dock: controls on the left, stats and log tabbed on the right.
	dock := gui.NewDock[paneKind]()
	left := dock.AddLeaf(paneControls)
	right := dock.AddTabs(dock.AddLeaf(paneStats), dock.AddLeaf(paneLog))
	dock.Root = dock.AddHorizontal(left, right)
	dock.Get(dock.Root).Shares.Set(left, 1)
	dock.Get(dock.Root).Shares.Set(right, 2)

	// Main loop.
	lastSave := glfw.GetTime()
	for !window.ShouldClose() {
		input := inputAdapter.Input()
		input.SetTime(glfw.GetTime())
		inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		panels.HandleHotkeys(input)
		panels.HandleInput(input)

		displaySize := gui.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(input, displaySize, 1.0/60.0)
		ctx.SetPanelRegistry(panels)

		a.menuBar(ctx)

		barHeight := ctx.LineHeight() + 12
		dock.Show(ctx, a, gui.Rect{
			X: 0, Y: barHeight,
			W: displaySize.X, H: displaySize.Y - barHeight,
		})

		panels.Draw(ctx)

		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		platform.Apply(ui.Output())
		window.SwapBuffers()
		platform.WaitFrame(ui.Output())

		if now := glfw.GetTime(); now-lastSave > 30 {
			lastSave = now
			opengl.SaveWindowGeometry(store, window)
			if err := store.Flush(); err != nil {
				fmt.Fprintln(os.Stderr, "save state:", err)
			}
		}
	}

	return nil
}
