package sierpinski_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/sierpinski"
)

func TestDefaultConfig(t *testing.T) {
	cfg := sierpinski.DefaultConfig()

	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, 1080, cfg.Height)
	assert.Equal(t, sierpinski.DefaultPointCount, cfg.PointCount)
	assert.Equal(t, sierpinski.FailSoft, cfg.Policy)
	assert.Equal(t, sierpinski.DefaultAnchors(), cfg.Anchors)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, cfg.ClearColor)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfigOptions(t *testing.T) {
	cfg := sierpinski.NewConfig(
		sierpinski.WithTitle("test"),
		sierpinski.WithSize(640, 480),
		sierpinski.WithGLVersion(4, 1),
		sierpinski.WithVSync(false),
		sierpinski.WithShaderPaths("a.vert", "b.frag"),
		sierpinski.WithPolicy(sierpinski.FailFast),
		sierpinski.WithPointCount(10),
		sierpinski.WithSeed(99),
		sierpinski.WithClearColor(0.1, 0.2, 0.3, 1),
	)

	assert.Equal(t, "test", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 4, cfg.GLMajor)
	assert.Equal(t, 1, cfg.GLMinor)
	assert.False(t, cfg.VSync)
	assert.Equal(t, "a.vert", cfg.VertexShaderPath)
	assert.Equal(t, "b.frag", cfg.FragmentShaderPath)
	assert.Equal(t, sierpinski.FailFast, cfg.Policy)
	assert.Equal(t, 10, cfg.PointCount)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, cfg.ClearColor)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		opts []sierpinski.Option
	}{
		{"zero width", []sierpinski.Option{sierpinski.WithSize(0, 600)}},
		{"negative height", []sierpinski.Option{sierpinski.WithSize(800, -1)}},
		{"negative points", []sierpinski.Option{sierpinski.WithPointCount(-1)}},
		{"missing shader", []sierpinski.Option{sierpinski.WithShaderPaths("", "b.frag")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, sierpinski.NewConfig(tt.opts...).Validate())
		})
	}
}
