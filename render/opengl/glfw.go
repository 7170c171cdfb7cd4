package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
)

// MouseAdapter routes glfw window input to a session
type MouseAdapter struct {
	window   *glfw.Window
	session  *engine.Session
	renderer *Renderer
}

// NewMouseAdapter installs the window callbacks. Callbacks run from glfw.PollEvents
func NewMouseAdapter(window *glfw.Window, session *engine.Session, renderer *Renderer) *MouseAdapter {
	a := &MouseAdapter{
		window:   window,
		session:  session,
		renderer: renderer,
	}

	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)
	window.SetKeyCallback(a.keyCallback)

	return a
}

// cursorToWorld scales window coordinates to arena coordinates.
// Window and framebuffer sizes differ on high-DPI displays, so the window size is used here
func (a *MouseAdapter) cursorToWorld(x, y float64) (core.Point2D, bool) {
	w, h := a.window.GetSize()
	if w <= 0 || h <= 0 {
		return core.Point2D{}, false
	}
	world := a.session.Snapshot().Bounds
	return core.Point2D{
		X: x * world.Width / float64(w),
		Y: y * world.Height / float64(h),
	}, true
}

func (a *MouseAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != glfw.Press {
		return
	}
	if p, ok := a.cursorToWorld(w.GetCursorPos()); ok {
		a.session.Click(p)
	}
}

// framebufferSizeCallback keeps one world unit per window pixel, as a canvas resize does
func (a *MouseAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	a.renderer.Resize(width, height)

	ww, wh := w.GetSize()
	if ww <= 0 || wh <= 0 {
		return
	}
	if bounds, err := core.NewBounds(float64(ww), float64(wh)); err == nil {
		a.session.Resize(bounds)
	}
}

func (a *MouseAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape, glfw.KeyQ:
		w.SetShouldClose(true)
	case glfw.KeyP, glfw.KeySpace:
		a.session.TogglePause()
	}
}
