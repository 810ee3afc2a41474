package shader

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	xlate "github.com/richinsley/rhino/translator"
)

// Program is a linked vertex+fragment GPU program.
type Program struct {
	ID uint32
	// uniform names as they appear in the compiled code, for translated stages
	names     map[string]string
	locations map[string]int32
}

// LoadProgram reads both stage files and builds a program from them.
func LoadProgram(vertexPath, fragmentPath string) (*Program, error) {
	vs, err := LoadSource(vertexPath)
	if err != nil {
		return nil, err
	}
	fs, err := LoadSource(fragmentPath)
	if err != nil {
		return nil, err
	}
	p, err := NewProgram(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vertexPath, fragmentPath, err)
	}
	return p, nil
}

// NewProgram compiles and links a program. GLSL ES 3.00 stages are translated to
// desktop GLSL first.
func NewProgram(vertexShaderSource, fragmentShaderSource string) (*Program, error) {
	p := &Program{
		names:     make(map[string]string),
		locations: make(map[string]int32),
	}

	vsCode, err := p.prepare(vertexShaderSource, "vertex")
	if err != nil {
		return nil, err
	}
	fsCode, err := p.prepare(fragmentShaderSource, "fragment")
	if err != nil {
		return nil, err
	}

	vertexShader, err := compileShader(vsCode, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(fsCode, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, fmt.Errorf("fragment shader: %w", err)
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
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	p.ID = program
	return p, nil
}

func (p *Program) prepare(code, stage string) (string, error) {
	src, err := Parse(code)
	if err != nil {
		return "", fmt.Errorf("%s shader: %w", stage, err)
	}
	if !src.ES {
		return src.Code, nil
	}
	res, err := xlate.ToDesktop(src.Code, stage)
	if err != nil {
		return "", err
	}
	for name, mapped := range res.Uniforms {
		p.names[name] = mapped
	}
	return res.Code, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", strings.TrimRight(logText, "\x00"))
	}
	return shader, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
	p.ID = 0
}

// UniformLocation looks up a uniform by its source name. It returns -1 when the
// uniform does not exist or was optimised away.
func (p *Program) UniformLocation(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	mapped := name
	if m, ok := p.names[name]; ok {
		mapped = m
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(mapped+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.UniformLocation(name); loc != -1 {
		gl.Uniform1i(loc, v)
	}
}

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.UniformLocation(name); loc != -1 {
		gl.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.UniformLocation(name); loc != -1 {
		gl.Uniform3fv(loc, 1, &v[0])
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.UniformLocation(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}
