package render

import (
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderManager owns the single passthrough program the renderer draws with
// and its one uniform, the screen-to-NDC transform.
type ShaderManager struct {
	program    uint32
	uTransform int32 // uniform location for transformation matrix
}

// Vertex shader. Applies the uniform transformation matrix to the vertices
// and forwards the color to the fragment shader.
const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uTransform;

out vec4 vColor;

void main() {
    gl_Position = uTransform * vec4(aPos, 0.0, 1.0);
    vColor = aColor;
}
` + "\x00"

// Fragment shader. Simply applies the vertex-shader forwarded color.
const fragmentShaderSource = `
#version 330 core
in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// NewShaderManager compiles and links the program and leaves it bound. Shader
// failures are programming errors (the sources are compiled in), so they are
// fatal.
func NewShaderManager() *ShaderManager {
	vertexShader := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	defer gl.DeleteShader(vertexShader)

	fragmentShader := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		log.Fatalf("Shader linking failed: %s", logText)
	}

	sm := &ShaderManager{
		program:    program,
		uTransform: gl.GetUniformLocation(program, gl.Str("uTransform\x00")),
	}
	gl.UseProgram(sm.program)
	return sm
}

// SetTransform sets the uniform transformation matrix.
func (sm *ShaderManager) SetTransform(matrix [16]float32) {
	gl.UniformMatrix4fv(sm.uTransform, 1, false, &matrix[0])
}

// destroy releases the program.
func (sm *ShaderManager) destroy() {
	gl.DeleteProgram(sm.program)
}

// compileShader compiles a single shader from source.
func compileShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		log.Fatalf("Shader compilation failed: %s", logText)
	}

	return shader
}
