package visualize

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// The fragment shader samples a single-channel (GL_RED) texture and splats
// it across all three color channels, since a bitGrid never carries color,
// only on/off texels.
const (
	vertexShader = `
  #version 330

  attribute vec3 position;
  attribute vec2 uv;
  varying vec2 vuv;
  void main(void){
    gl_Position = vec4(position, 1.0);
    vuv = uv;
  }
  ` + "\x00"

	fragmentShader = `
  #version 330

  varying vec2 vuv;
  uniform sampler2D bits;
  void main(void){
    float v = texture2D(bits, vuv).r;
    gl_FragColor = vec4(v, v, v, 1.0);
  }
  ` + "\x00"
)

func compileShader(code string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	ccode := gl.Str(code)
	gl.ShaderSource(shader, 1, &ccode, nil)
	gl.CompileShader(shader)
	var ok int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		return 0, fmt.Errorf("visualize: compile shader: %v", log)
	}
	return shader, nil
}

// glProgram is the linked shader pair plus the one texture object a Viewer
// reuses for every Render call, and the attribute/uniform locations resolved
// once at link time rather than re-queried by name every frame.
type glProgram struct {
	program   uint32
	texture   uint32
	posLoc    uint32
	uvLoc     uint32
	bitsLoc   int32
	texWidth  int32
	texHeight int32
}

var quadPositions = []float32{1, 1, -1, 1, -1, -1, 1, -1}
var quadUV = []float32{1, 0, 0, 0, 0, 1, 1, 1}

func newGLProgram() (*glProgram, error) {
	vs, err := compileShader(vertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(fragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
		return nil, fmt.Errorf("visualize: link program: %v", log)
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &glProgram{
		program: program,
		texture: texture,
		posLoc:  uint32(gl.GetAttribLocation(program, gl.Str("position\x00"))),
		uvLoc:   uint32(gl.GetAttribLocation(program, gl.Str("uv\x00"))),
		bitsLoc: gl.GetUniformLocation(program, gl.Str("bits\x00")),
	}, nil
}

// draw uploads grid into the Viewer's one texture object (reallocating
// storage only when the grid's dimensions change) and renders it as a quad
// filling the window. Reusing the texture name across frames, instead of
// generating a fresh one every call, avoids leaking a texture object per
// tick the way re-running GenTextures on every frame would.
func (p *glProgram) draw(grid *bitGrid) {
	gl.UseProgram(p.program)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	if int32(grid.width) != p.texWidth || int32(grid.height) != p.texHeight {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8,
			int32(grid.width), int32(grid.height),
			0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(grid.pix))
		p.texWidth, p.texHeight = int32(grid.width), int32(grid.height)
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
			int32(grid.width), int32(grid.height),
			gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(grid.pix))
	}

	gl.EnableVertexAttribArray(p.posLoc)
	gl.EnableVertexAttribArray(p.uvLoc)
	gl.Uniform1i(p.bitsLoc, 0)
	gl.VertexAttribPointer(p.posLoc, 2, gl.FLOAT, false, 0, gl.Ptr(quadPositions))
	gl.VertexAttribPointer(p.uvLoc, 2, gl.FLOAT, false, 0, gl.Ptr(quadUV))
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (p *glProgram) close() {
	gl.DeleteTextures(1, &p.texture)
	gl.DeleteProgram(p.program)
}
