package gldevice

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/pkg/errors"
)

// Attribute locations bound before linking.
const (
	attribPosition = 0
	attribTexCoord = 1
	attribColor    = 2
)

// Positions arrive in clip space; the fragment color is the vertex color.
const (
	vertexShaderSource = `#version 150
in vec2 a_position;
in vec2 a_texcoord;
in vec4 a_color;

out vec2 v_texcoord;
out vec4 v_color;

void main() {
	gl_Position = vec4(a_position, 0.0, 1.0);
	v_texcoord = a_texcoord;
	v_color = a_color;
}`

	fragmentShaderSource = `#version 150
in vec2 v_texcoord;
in vec4 v_color;

out vec4 frag_color;

void main() {
	frag_color = v_color;
}`
)

// newProgram compiles and links the pass-through program. Intermediate
// shader objects are always deleted.
func newProgram() (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexShaderSource)
	if err != nil {
		return 0, errors.Wrap(err, "vertex shader")
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentShaderSource)
	if err != nil {
		return 0, errors.Wrap(err, "fragment shader")
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.BindAttribLocation(program, attribPosition, gl.Str("a_position\x00"))
	gl.BindAttribLocation(program, attribTexCoord, gl.Str("a_texcoord\x00"))
	gl.BindAttribLocation(program, attribColor, gl.Str("a_color\x00"))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n)+1)
		gl.GetProgramInfoLog(program, n, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, errors.Errorf("link program: %s", strings.TrimRight(log, "\x00"))
	}
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n)+1)
		gl.GetShaderInfoLog(shader, n, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.Errorf("compile: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
