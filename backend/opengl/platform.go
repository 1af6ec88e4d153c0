package opengl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/browser"

	"github.com/frameloop/gui"
)

// Clipboard implements gui.ClipboardProvider on a GLFW window.
type Clipboard struct {
	Window *glfw.Window
}

// GetText retrieves text from the system clipboard.
func (c Clipboard) GetText() string {
	return c.Window.GetClipboardString()
}

// SetText copies text to the system clipboard.
func (c Clipboard) SetText(text string) {
	c.Window.SetClipboardString(text)
}

// Platform applies a frame's gui.Output to a GLFW window: cursor shape,
// clipboard writes, link opening and repaint scheduling.
//
// Usage, once per frame after gui.End:
//
//	platform.Apply(g.Output())
//	window.SwapBuffers()
//	platform.WaitFrame(g.Output())
type Platform struct {
	window  *glfw.Window
	cursors map[gui.CursorIcon]*glfw.Cursor
	current gui.CursorIcon
}

// NewPlatform wraps a GLFW window and registers it as the clipboard
// provider.
func NewPlatform(window *glfw.Window) *Platform {
	gui.SetClipboardProvider(Clipboard{Window: window})
	return &Platform{
		window:  window,
		cursors: make(map[gui.CursorIcon]*glfw.Cursor),
	}
}

// Apply consumes the frame's output batch. Call after gui.End, before
// swapping buffers.
func (p *Platform) Apply(out *gui.Output) {
	p.setCursor(out.CursorIcon)

	if out.CopiedText != "" {
		p.window.SetClipboardString(out.CopiedText)
	}
	if out.OpenURL != nil {
		if err := browser.OpenURL(out.OpenURL.URL); err != nil {
			slog.Warn("failed to open URL", "url", out.OpenURL.URL, "error", err)
		}
	}
	// GLFW 3.3 has no IME placement API, so out.IMERect is not consumed
	// here.
}

// WaitFrame blocks until the next frame is due: immediately if a repaint
// was requested, after the requested delay if one was scheduled, or until
// the next input event otherwise.
func (p *Platform) WaitFrame(out *gui.Output) {
	d := out.RepaintAfter()
	switch {
	case d <= 0:
		glfw.PollEvents()
	case out.NeedsRepaint():
		glfw.WaitEventsTimeout(d)
	default:
		glfw.WaitEvents()
	}
}

func (p *Platform) setCursor(icon gui.CursorIcon) {
	if icon == p.current {
		return
	}
	p.current = icon

	c, ok := p.cursors[icon]
	if !ok {
		c = glfw.CreateStandardCursor(standardCursorShape(icon))
		p.cursors[icon] = c
	}
	p.window.SetCursor(c)
}

// standardCursorShape maps cursor icons onto the shapes GLFW ships.
// Shapes GLFW lacks fall back to the nearest match.
func standardCursorShape(icon gui.CursorIcon) glfw.StandardCursor {
	switch icon {
	case gui.CursorPointer, gui.CursorGrab, gui.CursorGrabbing:
		return glfw.HandCursor
	case gui.CursorText:
		return glfw.IBeamCursor
	case gui.CursorCrosshair:
		return glfw.CrosshairCursor
	case gui.CursorResizeHorizontal, gui.CursorResizeNWSE, gui.CursorResizeNESW:
		return glfw.HResizeCursor
	case gui.CursorResizeVertical:
		return glfw.VResizeCursor
	default:
		return glfw.ArrowCursor
	}
}

// SaveWindowGeometry records the window's position, size and maximized
// state into store under the standard window key.
func SaveWindowGeometry(store gui.Storage, window *glfw.Window) {
	x, y := window.GetPos()
	w, h := window.GetSize()
	geom := gui.WindowGeometry{
		X:         x,
		Y:         y,
		Width:     w,
		Height:    h,
		Maximized: window.GetAttrib(glfw.Maximized) == glfw.True,
	}
	gui.SaveValue(store, gui.StorageKeyWindow, geom)
}

// RestoreWindowGeometry applies a previously saved geometry to the window.
// Returns false when nothing was saved.
func RestoreWindowGeometry(store gui.Storage, window *glfw.Window) bool {
	geom := gui.LoadValue(store, gui.StorageKeyWindow, gui.WindowGeometry{})
	if geom.Width <= 0 || geom.Height <= 0 {
		return false
	}
	window.SetPos(geom.X, geom.Y)
	window.SetSize(geom.Width, geom.Height)
	if geom.Maximized {
		window.Maximize()
	}
	return true
}
