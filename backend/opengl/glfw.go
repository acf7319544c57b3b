package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/toolwindows/gui"
)

// GLFWInputAdapter adapts GLFW pointer input to gui.InputState and
// applies the GUI's cursor icon requests to the window.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *gui.InputState

	cursors map[gui.CursorIcon]*glfw.Cursor
	current gui.CursorIcon
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  gui.NewInputState(),
		cursors: map[gui.CursorIcon]*glfw.Cursor{
			gui.CursorMove:             glfw.CreateStandardCursor(glfw.HandCursor),
			gui.CursorResizeHorizontal: glfw.CreateStandardCursor(glfw.HResizeCursor),
			gui.CursorResizeVertical:   glfw.CreateStandardCursor(glfw.VResizeCursor),
			// GLFW 3.3 has no diagonal resize shape.
			gui.CursorResizeNwSe: glfw.CreateStandardCursor(glfw.CrosshairCursor),
		},
	}

	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// Update starts a new input frame. Call it before glfw.PollEvents so the
// callbacks fill the fresh frame.
func (a *GLFWInputAdapter) Update() *gui.InputState {
	a.input.Reset()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.pressed(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = a.pressed(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = a.pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	a.input.ModSuper = a.pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper)

	return a.input
}

func (a *GLFWInputAdapter) pressed(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *gui.InputState {
	return a.input
}

// ApplyCursor shows the pointer shape for icon, switching only on change.
func (a *GLFWInputAdapter) ApplyCursor(icon gui.CursorIcon) {
	if icon == a.current {
		return
	}
	a.current = icon
	// A nil cursor restores the default arrow.
	a.window.SetCursor(a.cursors[icon])
}

// Destroy releases the standard cursors.
func (a *GLFWInputAdapter) Destroy() {
	for _, c := range a.cursors {
		c.Destroy()
	}
	clear(a.cursors)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
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

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}
