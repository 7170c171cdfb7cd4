// Package opengl draws the ball as a single point sprite with OpenGL 4.1.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
)

// Renderer draws session snapshots into the current GL context
type Renderer struct {
	shader uint32
	vao    uint32
	vbo    uint32

	resolutionLoc int32
	pointSizeLoc  int32
	colorLoc      int32

	world         core.Bounds
	width, height int // Framebuffer size in pixels
	r, g, b       float32
}

// Vertex shader maps world coordinates to clip space with y pointing down
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;

uniform vec2 u_resolution;
uniform float u_pointSize;

void main() {
    vec2 clip = (aPos / u_resolution) * 2.0 - 1.0;
    gl_Position = vec4(clip * vec2(1.0, -1.0), 0.0, 1.0);
    gl_PointSize = u_pointSize;
}
` + "\x00"

// Fragment shader cuts the square sprite down to a disc
const fragmentShaderSource = `
#version 410 core
out vec4 FragColor;

uniform vec3 u_color;

void main() {
    vec2 d = gl_PointCoord * 2.0 - 1.0;
    if (dot(d, d) > 1.0) {
        discard;
    }
    FragColor = vec4(u_color, 1.0);
}
` + "\x00"

// NewRenderer compiles the ball program. A GL context must be current
func NewRenderer(world core.Bounds, r, g, b float64) (*Renderer, error) {
	rd := &Renderer{
		world:  world,
		width:  int(world.Width),
		height: int(world.Height),
		r:      float32(r),
		g:      float32(g),
		b:      float32(b),
	}

	var err error
	rd.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	rd.resolutionLoc = gl.GetUniformLocation(rd.shader, gl.Str("u_resolution\x00"))
	rd.pointSizeLoc = gl.GetUniformLocation(rd.shader, gl.Str("u_pointSize\x00"))
	rd.colorLoc = gl.GetUniformLocation(rd.shader, gl.Str("u_color\x00"))

	gl.GenVertexArrays(1, &rd.vao)
	gl.BindVertexArray(rd.vao)

	gl.GenBuffers(1, &rd.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rd.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 2*4, nil, gl.DYNAMIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return rd, nil
}

// Resize updates the framebuffer size in pixels
func (rd *Renderer) Resize(width, height int) {
	rd.width = width
	rd.height = height
}

// Render implements engine.Renderer
func (rd *Renderer) Render(snap engine.Snapshot) error {
	rd.world = snap.Bounds
	if rd.width <= 0 || rd.height <= 0 {
		return nil
	}

	gl.Viewport(0, 0, int32(rd.width), int32(rd.height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(rd.shader)
	gl.Uniform2f(rd.resolutionLoc, float32(rd.world.Width), float32(rd.world.Height))
	gl.Uniform3f(rd.colorLoc, rd.r, rd.g, rd.b)

	// Point size is in pixels, the radius is in world units
	scale := float32(rd.width) / float32(rd.world.Width)
	gl.Uniform1f(rd.pointSizeLoc, 2*float32(snap.Radius)*scale)

	pos := [2]float32{float32(snap.Position.X), float32(snap.Position.Y)}
	gl.BindVertexArray(rd.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, rd.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, int(unsafe.Sizeof(pos)), gl.Ptr(&pos[0]))
	gl.DrawArrays(gl.POINTS, 0, 1)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// Delete releases OpenGL resources
func (rd *Renderer) Delete() {
	if rd.vbo != 0 {
		gl.DeleteBuffers(1, &rd.vbo)
	}
	if rd.vao != 0 {
		gl.DeleteVertexArrays(1, &rd.vao)
	}
	if rd.shader != 0 {
		gl.DeleteProgram(rd.shader)
	}
}

func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
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
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", string(log))
	}
	return shader, nil
}
