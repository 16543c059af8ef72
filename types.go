package sierpinski

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a single point uploaded to the GPU.
// Memory layout matches the vertex attribute layout: position at offset 0,
// color immediately after.
type Vertex struct {
	Position mgl32.Vec3 // x, y, z
	Color    mgl32.Vec3 // r, g, b
}

// Anchors is the fixed set of triangle corners the chaos game moves toward.
type Anchors [3]Vertex

// Common colors
var (
	ColorRed     = mgl32.Vec3{1, 0, 0}
	ColorGreen   = mgl32.Vec3{0, 1, 0}
	ColorBlue    = mgl32.Vec3{0, 0, 1}
	ColorNeutral = mgl32.Vec3{1, 1, 1}
)

// DefaultAnchors returns the red/green/blue triangle spanning clip space.
func DefaultAnchors() Anchors {
	return Anchors{
		{Position: mgl32.Vec3{-1, -1, 0}, Color: ColorRed},
		{Position: mgl32.Vec3{1, -1, 0}, Color: ColorGreen},
		{Position: mgl32.Vec3{0, 1, 0}, Color: ColorBlue},
	}
}

// hullEpsilon absorbs float32 rounding on points that sit on an edge.
const hullEpsilon = 1e-5

// Contains reports whether p lies inside the triangle formed by the anchor
// positions, edges included. Only X and Y are considered.
func (a Anchors) Contains(p mgl32.Vec3) bool {
	p0, p1, p2 := a[0].Position, a[1].Position, a[2].Position

	det := (p1.Y()-p2.Y())*(p0.X()-p2.X()) + (p2.X()-p1.X())*(p0.Y()-p2.Y())
	if det == 0 {
		return false // degenerate triangle
	}

	l0 := ((p1.Y()-p2.Y())*(p.X()-p2.X()) + (p2.X()-p1.X())*(p.Y()-p2.Y())) / det
	l1 := ((p2.Y()-p0.Y())*(p.X()-p2.X()) + (p0.X()-p2.X())*(p.Y()-p2.Y())) / det
	l2 := 1 - l0 - l1

	return l0 >= -hullEpsilon && l1 >= -hullEpsilon && l2 >= -hullEpsilon
}

// HasColor returns true if c is exactly one of the anchor colors.
func (a Anchors) HasColor(c mgl32.Vec3) bool {
	for _, v := range a {
		if v.Color == c {
			return true
		}
	}
	return false
}

// midpoint returns the component-wise average of two positions.
func midpoint(a, b mgl32.Vec3) mgl32.Vec3 {
	return a.Add(b).Mul(0.5)
}
