package graphics

import (
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"glfwsandbox/internal/frameloop"
)

// Renderer owns the triangle's vertex buffer and shader program.
// It needs the window's context to be current on the calling thread.
type Renderer struct {
	program uint32
	vbo     uint32

	basePosition int32
	position     uint32
	color        uint32
}

// NewRenderer loads the GL entry points, uploads Triangle and builds the program.
// Compile and link failures are returned with the driver's info log.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "gl init")
	}
	glog.Infof("GL %s, %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	r := &Renderer{}
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Triangle)*int(VertexStride), gl.Ptr(&Triangle[0]), gl.STATIC_DRAW)

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		r.Delete()
		return nil, err
	}
	r.program = program

	r.basePosition = gl.GetUniformLocation(program, gl.Str(uniformBasePosition+"\x00"))
	if r.basePosition < 0 {
		r.Delete()
		return nil, errors.Errorf("uniform %s not found", uniformBasePosition)
	}
	pos := gl.GetAttribLocation(program, gl.Str(attribPosition+"\x00"))
	col := gl.GetAttribLocation(program, gl.Str(attribColor+"\x00"))
	if pos < 0 || col < 0 {
		r.Delete()
		return nil, errors.Errorf("attributes %s/%s not found", attribPosition, attribColor)
	}
	r.position, r.color = uint32(pos), uint32(col)

	gl.EnableVertexAttribArray(r.position)
	gl.VertexAttribPointer(r.position, 2, gl.FLOAT, false, VertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(r.color)
	gl.VertexAttribPointer(r.color, 3, gl.FLOAT, false, VertexStride, gl.PtrOffset(ColorOffset))

	return r, nil
}

// Viewport resizes the viewport to the framebuffer and clears it.
func (r *Renderer) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *Renderer) Update(offset mgl32.Vec2) {
	gl.UseProgram(r.program)
	gl.Uniform2fv(r.basePosition, 1, &offset[0])
}

func (r *Renderer) Draw() {
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(Triangle)))
}

// Delete releases the program and buffer. Safe to call on a partly built Renderer.
func (r *Renderer) Delete() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.Errorf("compile %s shader: %s", shaderKind(shaderType), strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func newProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, errors.Errorf("link program: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func shaderKind(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}

var _ frameloop.Renderer = (*Renderer)(nil)
