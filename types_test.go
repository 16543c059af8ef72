package sierpinski_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/sierpinski"
)

func TestAnchorsContains(t *testing.T) {
	anchors := sierpinski.DefaultAnchors()

	tests := []struct {
		name string
		p    mgl32.Vec3
		want bool
	}{
		{"origin", mgl32.Vec3{0, 0, 0}, true},
		{"corner", mgl32.Vec3{-1, -1, 0}, true},
		{"top", mgl32.Vec3{0, 1, 0}, true},
		{"bottom edge", mgl32.Vec3{0.5, -1, 0}, true},
		{"below", mgl32.Vec3{0, -1.1, 0}, false},
		{"left of edge", mgl32.Vec3{-0.9, 0.9, 0}, false},
		{"far right", mgl32.Vec3{2, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, anchors.Contains(tt.p))
		})
	}
}

func TestAnchorsContainsDegenerate(t *testing.T) {
	var anchors sierpinski.Anchors // all at the origin
	assert.False(t, anchors.Contains(mgl32.Vec3{0, 0, 0}))
}

func TestAnchorsHasColor(t *testing.T) {
	anchors := sierpinski.DefaultAnchors()

	assert.True(t, anchors.HasColor(sierpinski.ColorRed))
	assert.True(t, anchors.HasColor(sierpinski.ColorGreen))
	assert.True(t, anchors.HasColor(sierpinski.ColorBlue))
	assert.False(t, anchors.HasColor(sierpinski.ColorNeutral))
	assert.False(t, anchors.HasColor(mgl32.Vec3{0.5, 0.5, 0}))
}
