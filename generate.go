package sierpinski

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultPointCount is the number of chaos-game points generated per run.
const DefaultPointCount = 30000

// NewRand returns a deterministic random source for the generator.
// A seed of 0 seeds from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate runs the chaos game over anchors and returns the anchors followed
// by count generated points, in generation order.
//
// Each step picks an anchor uniformly at random, moves the current point to
// the midpoint between itself and that anchor and copies the anchor's color.
// The current point starts at the origin with a neutral color.
func Generate(anchors Anchors, count int, rng *rand.Rand) []Vertex {
	if count < 0 {
		count = 0
	}

	out := make([]Vertex, 0, len(anchors)+count)
	out = append(out, anchors[:]...)

	current := Vertex{Position: mgl32.Vec3{0, 0, 0}, Color: ColorNeutral}
	for i := 0; i < count; i++ {
		n := rng.IntN(len(anchors))
		current.Position = midpoint(current.Position, anchors[n].Position)
		current.Color = anchors[n].Color
		out = append(out, current)
	}

	if Verbose() {
		outside := 0
		for _, v := range out {
			if !anchors.Contains(v.Position) {
				outside++
			}
		}
		logger.Debug("generated points", "count", count, "total", len(out), "outside", outside)
	}
	return out
}
