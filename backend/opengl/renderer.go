// Package opengl provides an OpenGL 3.3 core backend for the sierpinski package.
package opengl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/sierpinski"
)

// Attribute describes one float vertex attribute inside sierpinski.Vertex.
type Attribute struct {
	Index  uint32
	Size   int32   // float components
	Offset uintptr // byte offset into the vertex
}

// Layout returns the vertex stride and attribute layout used for upload:
// position (location 0) followed by color (location 1).
func Layout() (stride int32, attrs []Attribute) {
	stride = int32(unsafe.Sizeof(sierpinski.Vertex{}))
	attrs = []Attribute{
		{Index: 0, Size: 3, Offset: unsafe.Offsetof(sierpinski.Vertex{}.Position)},
		{Index: 1, Size: 3, Offset: unsafe.Offsetof(sierpinski.Vertex{}.Color)},
	}
	return stride, attrs
}

// Renderer owns the uploaded point buffer and draws it as GL_POINTS.
type Renderer struct {
	program  uint32
	vao, vbo uint32
	count    int32
}

// NewRenderer binds program and uploads vertices once with a static usage
// hint. A zero program is bound as is.
func NewRenderer(vertices []sierpinski.Vertex, program uint32) *Renderer {
	r := &Renderer{
		program: program,
		count:   int32(len(vertices)),
	}

	gl.UseProgram(r.program)

	// Create VAO
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Create VBO
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride, attrs := Layout()
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(stride), gl.Ptr(vertices), gl.STATIC_DRAW)
	}

	for _, a := range attrs {
		gl.VertexAttribPointerWithOffset(a.Index, a.Size, gl.FLOAT, false, stride, a.Offset)
		gl.EnableVertexAttribArray(a.Index)
	}

	sierpinski.Logger().Debug("uploaded vertices",
		"count", r.count, "bytes", len(vertices)*int(stride), "program", r.program)

	return r
}

// Count returns the number of uploaded vertices.
func (r *Renderer) Count() int32 {
	return r.count
}

// Program returns the bound program handle.
func (r *Renderer) Program() uint32 {
	return r.program
}

// Clear clears the color buffer.
func (r *Renderer) Clear(color [4]float32) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawPoints draws every uploaded vertex as an independent point.
func (r *Renderer) DrawPoints() {
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.POINTS, 0, r.count)
}

// DeleteBuffers releases the vertex array and buffer, keeping the program.
func (r *Renderer) DeleteBuffers() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}

// Delete releases OpenGL resources, including the program.
func (r *Renderer) Delete() {
	r.DeleteBuffers()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// CompileShader compiles src for its stage. On failure the shader handle is
// still returned, along with a *sierpinski.ShaderError carrying the driver log.
func CompileShader(src sierpinski.Source) (uint32, error) {
	shader := gl.CreateShader(glStage(src.Stage))
	csource, free := gl.Strs(src.CString())
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		return shader, &sierpinski.ShaderError{
			Kind:  sierpinski.ErrKindCompile,
			Stage: src.Stage,
			Path:  src.Path,
			Log:   trimLog(log),
		}
	}

	return shader, nil
}

// LinkProgram links vs and fs into a program. On failure it returns 0 and a
// *sierpinski.ShaderError; the attached shaders are left as they are.
func LinkProgram(vs, fs uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, &sierpinski.ShaderError{
			Kind: sierpinski.ErrKindLink,
			Log:  trimLog(log),
		}
	}

	return program, nil
}

// BuildProgram loads, compiles and links the shaders named in cfg, applying
// cfg.Policy to every failure. Under FailSoft it always returns a nil error,
// with a zero program if anything went wrong.
func BuildProgram(cfg sierpinski.Config) (uint32, error) {
	vs, err := loadShader(cfg.VertexShaderPath, sierpinski.StageVertex)
	if err := cfg.Policy.Handle(err); err != nil {
		return 0, err
	}

	fs, err := loadShader(cfg.FragmentShaderPath, sierpinski.StageFragment)
	if err := cfg.Policy.Handle(err); err != nil {
		return 0, err
	}

	program, err := LinkProgram(vs, fs)
	if err := cfg.Policy.Handle(err); err != nil {
		return 0, err
	}

	return program, nil
}

func loadShader(path string, stage sierpinski.Stage) (uint32, error) {
	src, err := sierpinski.ReadSource(path, stage)
	if err != nil {
		return 0, err
	}
	return CompileShader(src)
}

// glStage maps a stage to its GL shader type. Unsupported stages never reach
// here; ReadSource panics on them first.
func glStage(s sierpinski.Stage) uint32 {
	switch s {
	case sierpinski.StageVertex:
		return gl.VERTEX_SHADER
	case sierpinski.StageFragment:
		return gl.FRAGMENT_SHADER
	default:
		panic("opengl: invalid shader stage " + s.String())
	}
}

func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\n ")
}
