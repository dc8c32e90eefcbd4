// Package platform adapts a GLFW window's event callbacks into the core
// engine's InputState, and applies the core's per-frame cursor-shape
// request back onto the window. It is the only package that imports GLFW
// directly outside of the example host — rendering backends (backend/
// opengl, backend/vulkan) never touch input or windowing.
package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"pilotui/ui"
)

// Adapter adapts GLFW input callbacks to ui.InputState, and maps
// ui.Context.NextMouseCursor back onto the GLFW window's cursor shape
// after each frame.
type Adapter struct {
	window  *glfw.Window
	input   *ui.InputState
	cursors map[ui.MouseCursor]*glfw.Cursor
	current ui.MouseCursor
	hidden  bool
}

// NewAdapter wraps window, installing GLFW callbacks that feed an
// ui.InputState, and pre-creates the standard cursor shapes GLFW 3.3
// exposes natively.
func NewAdapter(window *glfw.Window) *Adapter {
	a := &Adapter{
		window:  window,
		input:   ui.NewInputState(),
		cursors: make(map[ui.MouseCursor]*glfw.Cursor),
		current: ui.CursorArrow,
	}

	a.cursors[ui.CursorArrow] = glfw.CreateStandardCursor(glfw.ArrowCursor)
	a.cursors[ui.CursorTextInput] = glfw.CreateStandardCursor(glfw.IBeamCursor)
	a.cursors[ui.CursorResizeEW] = glfw.CreateStandardCursor(glfw.HResizeCursor)
	a.cursors[ui.CursorResizeNS] = glfw.CreateStandardCursor(glfw.VResizeCursor)
	a.cursors[ui.CursorHand] = glfw.CreateStandardCursor(glfw.HandCursor)
	// GLFW 3.3 has no diagonal-resize, all-resize, or not-allowed standard
	// cursor (those arrived in GLFW 3.4); the crosshair cursor is the
	// closest distinct shape available, so diagonal resize and "no drop"
	// both fall back to it rather than silently rendering the plain arrow.
	crosshair := glfw.CreateStandardCursor(glfw.CrosshairCursor)
	a.cursors[ui.CursorResizeNWSE] = crosshair
	a.cursors[ui.CursorResizeNESW] = crosshair
	a.cursors[ui.CursorResizeAll] = crosshair
	a.cursors[ui.CursorNotAllowed] = crosshair

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// Update advances the input state for a new frame by dt seconds, clearing
// last frame's transient click/key-pressed flags. Call BEFORE
// glfw.PollEvents so the callbacks it triggers land in a freshly reset
// state instead of being wiped by it.
func (a *Adapter) Update(dt float32) *ui.InputState {
	a.input.Reset()
	a.input.Advance(dt)
	a.input.UpdateKeyRepeat(dt)

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press
	a.input.ModSuper = a.window.GetKey(glfw.KeyLeftSuper) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightSuper) == glfw.Press

	return a.input
}

// Input returns the current input state.
func (a *Adapter) Input() *ui.InputState {
	return a.input
}

// ApplyCursor reads ctx.NextMouseCursor and, if it changed since the last
// call, updates the GLFW window's cursor shape (or hides it, for
// ui.CursorNone). Call once per frame after ui.GUI.End.
func (a *Adapter) ApplyCursor(ctx *ui.Context) {
	want := ctx.NextMouseCursor
	if want == a.current {
		return
	}
	a.current = want

	if want == ui.CursorNone {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		a.hidden = true
		return
	}
	if a.hidden {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		a.hidden = false
	}
	if c, ok := a.cursors[want]; ok {
		a.window.SetCursor(c)
	}
}

func (a *Adapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == ui.KeyNone {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *Adapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *Adapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToButton(button)
	if b < 0 {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *Adapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *Adapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func glfwKeyToKey(key glfw.Key) ui.Key {
	switch key {
	case glfw.KeyTab:
		return ui.KeyTab
	case glfw.KeyLeft:
		return ui.KeyLeft
	case glfw.KeyRight:
		return ui.KeyRight
	case glfw.KeyUp:
		return ui.KeyUp
	case glfw.KeyDown:
		return ui.KeyDown
	case glfw.KeyPageUp:
		return ui.KeyPageUp
	case glfw.KeyPageDown:
		return ui.KeyPageDown
	case glfw.KeyHome:
		return ui.KeyHome
	case glfw.KeyEnd:
		return ui.KeyEnd
	case glfw.KeyInsert:
		return ui.KeyInsert
	case glfw.KeyDelete:
		return ui.KeyDelete
	case glfw.KeyBackspace:
		return ui.KeyBackspace
	case glfw.KeySpace:
		return ui.KeySpace
	case glfw.KeyEnter:
		return ui.KeyEnter
	case glfw.KeyEscape:
		return ui.KeyEscape
	case glfw.KeyA:
		return ui.KeyA
	case glfw.KeyC:
		return ui.KeyC
	case glfw.KeyS:
		return ui.KeyS
	case glfw.KeyV:
		return ui.KeyV
	case glfw.KeyX:
		return ui.KeyX
	case glfw.KeyY:
		return ui.KeyY
	case glfw.KeyZ:
		return ui.KeyZ
	case glfw.KeyF1:
		return ui.KeyF1
	case glfw.KeyF2:
		return ui.KeyF2
	case glfw.KeyF3:
		return ui.KeyF3
	case glfw.KeyF4:
		return ui.KeyF4
	case glfw.KeyF5:
		return ui.KeyF5
	case glfw.KeyF6:
		return ui.KeyF6
	case glfw.KeyF7:
		return ui.KeyF7
	case glfw.KeyF8:
		return ui.KeyF8
	case glfw.KeyF9:
		return ui.KeyF9
	case glfw.KeyF10:
		return ui.KeyF10
	case glfw.KeyF11:
		return ui.KeyF11
	case glfw.KeyF12:
		return ui.KeyF12
	default:
		return ui.KeyNone
	}
}

func glfwMouseButtonToButton(button glfw.MouseButton) ui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return ui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return ui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return ui.MouseButtonMiddle
	default:
		return -1
	}
}
