package sierpinski

// Surface is the window side of the render loop.
// backend/opengl.Window implements it on top of GLFW.
type Surface interface {
	ShouldClose() bool
	SetShouldClose(bool)
	EscapePressed() bool
	SwapBuffers()
	PollEvents()
}

// Drawer clears the framebuffer and draws every uploaded point.
// backend/opengl.Renderer implements it.
type Drawer interface {
	Clear(color [4]float32)
	DrawPoints()
}

// State is the render loop state.
type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	if s == Closing {
		return "closing"
	}
	return "running"
}

// Loop drives a Drawer on a Surface until the surface asks to close.
type Loop struct {
	surface    Surface
	drawer     Drawer
	clearColor [4]float32
	state      State
	frames     int
}

// NewLoop creates a loop in the Running state.
func NewLoop(surface Surface, drawer Drawer, clearColor [4]float32) *Loop {
	l := &Loop{
		surface:    surface,
		drawer:     drawer,
		clearColor: clearColor,
	}
	if surface.ShouldClose() {
		l.state = Closing
	}
	return l
}

// State returns the current loop state.
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() int {
	return l.frames
}

// Step runs a single frame: input, clear, draw, swap, poll.
// It does nothing once the loop is Closing.
func (l *Loop) Step() {
	if l.state == Closing {
		return
	}

	if l.surface.EscapePressed() {
		l.surface.SetShouldClose(true)
	}

	l.drawer.Clear(l.clearColor)
	l.drawer.DrawPoints()

	l.surface.SwapBuffers()
	l.surface.PollEvents()
	l.frames++

	if l.surface.ShouldClose() {
		l.state = Closing
		logger.Debug("render loop closing", "frames", l.frames)
	}
}

// Run steps until the loop is Closing and returns the frame count.
func (l *Loop) Run() int {
	for l.state == Running {
		l.Step()
	}
	return l.frames
}
