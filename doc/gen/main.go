// Command gen renders the triangle for a few seeds and point counts into a
// hidden window, captures framebuffer pixels, and saves JPEG screenshots to
// doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/sierpinski"
	"github.com/go-theft-auto/sierpinski/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name   string // filename without extension
	width  int    // viewport width
	height int    // viewport height
	points int    // chaos-game points
	seed   uint64
}

var shots = []screenshot{
	{name: "points_1k", width: 400, height: 400, points: 1000, seed: 1},
	{name: "points_10k", width: 400, height: 400, points: 10000, seed: 1},
	{name: "points_30k", width: 800, height: 800, points: sierpinski.DefaultPointCount, seed: 1},
	{name: "points_30k_wide", width: 960, height: 540, points: sierpinski.DefaultPointCount, seed: 7},
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)

	cfg := sierpinski.NewConfig(
		sierpinski.WithTitle("screenshot-gen"),
		sierpinski.WithSize(960, 800),
		sierpinski.WithVSync(false),
		sierpinski.WithPolicy(sierpinski.FailFast),
		sierpinski.WithShaderPaths(
			filepath.Join("cmd", "sierpinski", "assets", "shaders", "Default.vert"),
			filepath.Join("cmd", "sierpinski", "assets", "shaders", "Default.frag"),
		),
	)

	window, err := opengl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer window.GLFW().Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	program, err := opengl.BuildProgram(cfg)
	if err != nil {
		return fmt.Errorf("build program: %w", err)
	}
	defer gl.DeleteProgram(program)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, s := range shots {
		if err := capture(cfg, program, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d, %d points)\n", s.name, s.width, s.height, s.points)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(cfg sierpinski.Config, program uint32, s screenshot, outDir string) error {
	points := sierpinski.Generate(cfg.Anchors, s.points, sierpinski.NewRand(s.seed))

	// The program outlives each capture, so only the buffers are released here.
	renderer := opengl.NewRenderer(points, program)
	defer renderer.DeleteBuffers()

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	renderer.Clear(cfg.ClearColor)
	renderer.DrawPoints()
	gl.Finish()

	img := opengl.Snapshot(s.width, s.height)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
