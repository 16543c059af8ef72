package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/sierpinski"
)

// Window adapts a GLFW window to sierpinski.Surface.
// glfw.Init must have been called on the main thread first.
type Window struct {
	window        *glfw.Window
	width, height int // framebuffer size
}

// NewWindow creates the window described by cfg, makes its context current
// and installs the key and framebuffer-size callbacks.
func NewWindow(cfg sierpinski.Config) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{window: window}
	w.width, w.height = window.GetFramebufferSize()

	// Setup callbacks
	window.SetKeyCallback(w.keyCallback)
	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	return w, nil
}

// GLFW returns the underlying GLFW window.
func (w *Window) GLFW() *glfw.Window {
	return w.window
}

// FramebufferSize returns the last framebuffer size seen by the window.
func (w *Window) FramebufferSize() (width, height int) {
	return w.width, w.height
}

// ShouldClose reports whether a close was requested.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// SetShouldClose sets the close flag checked by the render loop.
func (w *Window) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

// EscapePressed polls the Escape key.
func (w *Window) EscapePressed() bool {
	return w.window.GetKey(glfw.KeyEscape) == glfw.Press
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// PollEvents dispatches pending events without blocking.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if closeOnKey(key, action) {
		win.SetShouldClose(true)
	}
}

func (w *Window) framebufferSizeCallback(win *glfw.Window, width, height int) {
	w.width, w.height = width, height
	vp := viewportFor(width, height)
	gl.Viewport(vp[0], vp[1], vp[2], vp[3])
}

// closeOnKey reports whether a key event should close the window.
func closeOnKey(key glfw.Key, action glfw.Action) bool {
	return key == glfw.KeyEscape && action == glfw.Press
}

// viewportFor returns the viewport for a framebuffer size: the whole
// framebuffer, no aspect correction. Negative sizes clamp to zero.
func viewportFor(width, height int) [4]int32 {
	return [4]int32{0, 0, int32(max(width, 0)), int32(max(height, 0))}
}
