package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/frameloop/gui"
)

// GLFWInputAdapter feeds GLFW events into a gui.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *gui.InputState
}

// NewGLFWInputAdapter installs the input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  gui.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update starts an input frame: stamps the clock, clears last frame's
// events and polls position and modifier state. Call once per frame
// before glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *gui.InputState {
	a.input.SetTime(glfw.GetTime())
	a.input.Reset()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.keyHeld(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = a.keyHeld(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = a.keyHeld(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	a.input.ModSuper = a.keyHeld(glfw.KeyLeftSuper, glfw.KeyRightSuper)

	return a.input
}

func (a *GLFWInputAdapter) keyHeld(left, right glfw.Key) bool {
	return a.window.GetKey(left) == glfw.Press || a.window.GetKey(right) == glfw.Press
}

// Input returns the adapter's input state.
func (a *GLFWInputAdapter) Input() *gui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	guiKey, ok := glfwKeys[key]
	if !ok {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(guiKey, true)
	case glfw.Release:
		a.input.SetKey(guiKey, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton, ok := glfwMouseButtons[button]
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(guiButton, true)
	case glfw.Release:
		a.input.SetMouseButton(guiButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeys maps the GLFW key codes the library handles onto gui keys.
var glfwKeys = map[glfw.Key]gui.Key{
	glfw.KeyTab:       gui.KeyTab,
	glfw.KeyLeft:      gui.KeyLeft,
	glfw.KeyRight:     gui.KeyRight,
	glfw.KeyUp:        gui.KeyUp,
	glfw.KeyDown:      gui.KeyDown,
	glfw.KeyPageUp:    gui.KeyPageUp,
	glfw.KeyPageDown:  gui.KeyPageDown,
	glfw.KeyHome:      gui.KeyHome,
	glfw.KeyEnd:       gui.KeyEnd,
	glfw.KeyInsert:    gui.KeyInsert,
	glfw.KeyDelete:    gui.KeyDelete,
	glfw.KeyBackspace: gui.KeyBackspace,
	glfw.KeySpace:     gui.KeySpace,
	glfw.KeyEnter:     gui.KeyEnter,
	glfw.KeyEscape:    gui.KeyEscape,
	glfw.KeyA:         gui.KeyA,
	glfw.KeyC:         gui.KeyC,
	glfw.KeyS:         gui.KeyS,
	glfw.KeyT:         gui.KeyT,
	glfw.KeyV:         gui.KeyV,
	glfw.KeyX:         gui.KeyX,
	glfw.KeyY:         gui.KeyY,
	glfw.KeyZ:         gui.KeyZ,
	glfw.KeyF1:        gui.KeyF1,
	glfw.KeyF2:        gui.KeyF2,
	glfw.KeyF3:        gui.KeyF3,
	glfw.KeyF4:        gui.KeyF4,
	glfw.KeyF5:        gui.KeyF5,
	glfw.KeyF6:        gui.KeyF6,
	glfw.KeyF7:        gui.KeyF7,
	glfw.KeyF8:        gui.KeyF8,
	glfw.KeyF9:        gui.KeyF9,
	glfw.KeyF10:       gui.KeyF10,
	glfw.KeyF11:       gui.KeyF11,
	glfw.KeyF12:       gui.KeyF12,
}

var glfwMouseButtons = map[glfw.MouseButton]gui.MouseButton{
	glfw.MouseButtonLeft:   gui.MouseButtonLeft,
	glfw.MouseButtonRight:  gui.MouseButtonRight,
	glfw.MouseButtonMiddle: gui.MouseButtonMiddle,
}
