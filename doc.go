/*
Package sierpinski renders a Sierpiński triangle produced by the chaos game.

# Overview

The package holds everything that does not need a GL context: the vertex
model, the point generator, shader source loading and its error kinds, the
failure policy, configuration and the render-loop state machine. The
backend/opengl package supplies the GLFW window and the go-gl renderer that
plug into the loop.

# Quick Start

	cfg := sierpinski.NewConfig(sierpinski.WithSeed(42))

	window, _ := opengl.NewWindow(cfg)
	program, _ := opengl.BuildProgram(cfg)

	points := sierpinski.Generate(cfg.Anchors, cfg.PointCount, sierpinski.NewRand(cfg.Seed))
	renderer := opengl.NewRenderer(points, program)
	defer renderer.Delete()

	sierpinski.NewLoop(window, renderer, cfg.ClearColor).Run()

# Chaos Game

Starting from a point at the origin, each step picks one of the three
anchors uniformly at random and moves the point halfway toward it. The new
point takes the anchor's color. Every generated point therefore lies inside
the anchor triangle and is colored with exactly one of the three anchor
colors.

# Failure Policy

Shader loading, compilation and linking report typed errors (see
ShaderError). Whether those errors stop the program is decided by the
caller through Policy:

	FailSoft  log the error and keep going with the invalid handle
	FailFast  stop at the first shader error

FailSoft is the default. With an invalid program bound the window still
opens and the loop still runs; what the driver draws is undefined.

# Render Loop

A Loop has two states, Running and Closing. Each Step processes input,
clears, draws every uploaded point, swaps buffers and polls events. Pressing
Escape or closing the window moves the loop to Closing at the end of the
current frame.
*/
package sierpinski
