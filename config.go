package sierpinski

import (
	"errors"
	"fmt"
)

// Config holds everything needed to set up the window, shaders and points.
type Config struct {
	Title  string
	Width  int
	Height int

	// Requested OpenGL context version (core profile).
	GLMajor int
	GLMinor int
	VSync   bool

	VertexShaderPath   string
	FragmentShaderPath string
	Policy             Policy

	PointCount int
	Anchors    Anchors
	Seed       uint64 // 0 seeds from the clock
	ClearColor [4]float32
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Title:              "LearnOpenGL",
		Width:              1920,
		Height:             1080,
		GLMajor:            3,
		GLMinor:            3,
		VSync:              true,
		VertexShaderPath:   "./assets/shaders/Default.vert",
		FragmentShaderPath: "./assets/shaders/Default.frag",
		Policy:             FailSoft,
		PointCount:         DefaultPointCount,
		Anchors:            DefaultAnchors(),
		ClearColor:         [4]float32{0, 0, 0, 1},
	}
}

// Option configures a Config.
type Option func(*Config)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithSize sets the initial window size.
func WithSize(width, height int) Option {
	return func(c *Config) { c.Width, c.Height = width, height }
}

// WithGLVersion sets the requested context version.
func WithGLVersion(major, minor int) Option {
	return func(c *Config) { c.GLMajor, c.GLMinor = major, minor }
}

// WithVSync enables or disables vsync.
func WithVSync(on bool) Option {
	return func(c *Config) { c.VSync = on }
}

// WithShaderPaths sets the vertex and fragment shader files.
func WithShaderPaths(vert, frag string) Option {
	return func(c *Config) { c.VertexShaderPath, c.FragmentShaderPath = vert, frag }
}

// WithPolicy sets the shader failure policy.
func WithPolicy(p Policy) Option {
	return func(c *Config) { c.Policy = p }
}

// WithPointCount sets how many chaos-game points are generated.
func WithPointCount(n int) Option {
	return func(c *Config) { c.PointCount = n }
}

// WithAnchors replaces the triangle corners.
func WithAnchors(a Anchors) Option {
	return func(c *Config) { c.Anchors = a }
}

// WithSeed fixes the generator seed.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithClearColor sets the framebuffer clear color.
func WithClearColor(r, g, b, a float32) Option {
	return func(c *Config) { c.ClearColor = [4]float32{r, g, b, a} }
}

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Validate reports configuration values the setup routine cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Width, c.Height))
	}
	if c.PointCount < 0 {
		errs = append(errs, fmt.Errorf("invalid point count %d", c.PointCount))
	}
	if c.VertexShaderPath == "" || c.FragmentShaderPath == "" {
		errs = append(errs, errors.New("shader paths must be set"))
	}
	return errors.Join(errs...)
}
