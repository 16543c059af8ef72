// Command sierpinski opens a window and renders a chaos-game Sierpiński
// triangle as points until the window is closed or Escape is pressed.
//
// Run it from this directory so the shaders resolve:
//
//	devbox shell                 # provides Go + OpenGL/X11 headers
//	cd cmd/sierpinski && go run .
//
// Shaders are read from ./assets/shaders/Default.vert and Default.frag.
package main

import (
	"errors"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/sierpinski"
	"github.com/go-theft-auto/sierpinski/backend/opengl"
)

// Exit codes
const (
	exitOK = iota
	exitWindow
	exitGLInit
	exitShader
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(sierpinski.NewConfig()))
}

// exitError pairs a setup failure with the process exit code it maps to.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func run(cfg sierpinski.Config) int {
	log := sierpinski.Logger()

	if err := setupAndLoop(cfg); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			log.Error("sierpinski failed", "err", ee.err)
			return ee.code
		}
		log.Error("sierpinski failed", "err", err)
		return exitWindow
	}
	return exitOK
}

func setupAndLoop(cfg sierpinski.Config) error {
	log := sierpinski.Logger()

	if err := cfg.Validate(); err != nil {
		return &exitError{code: exitWindow, err: err}
	}

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return &exitError{code: exitWindow, err: err}
	}
	defer glfw.Terminate()

	window, err := opengl.NewWindow(cfg)
	if err != nil {
		return &exitError{code: exitWindow, err: err}
	}

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return &exitError{code: exitGLInit, err: err}
	}
	log.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := opengl.BuildProgram(cfg)
	if err != nil {
		return &exitError{code: exitShader, err: err}
	}

	points := sierpinski.Generate(cfg.Anchors, cfg.PointCount, sierpinski.NewRand(cfg.Seed))

	renderer := opengl.NewRenderer(points, program)
	defer renderer.Delete()

	frames := sierpinski.NewLoop(window, renderer, cfg.ClearColor).Run()
	log.Info("window closed", "frames", frames)

	return nil
}
