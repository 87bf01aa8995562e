package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
	m "github.com/go-gl/mathgl/mgl32"
)

// ShaderSource is the source text of a single program stage.
type ShaderSource struct {
	Type   uint32
	Source string
}

// LoadShaderFiles reads a vertex and a fragment shader from disk.
func LoadShaderFiles(vertexPath, fragmentPath string) ([]ShaderSource, error) {
	vertex, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not open vertex shader: %w", err)
	}
	fragment, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not open fragment shader: %w", err)
	}

	return []ShaderSource{
		{Type: gl.VERTEX_SHADER, Source: string(vertex)},
		{Type: gl.FRAGMENT_SHADER, Source: string(fragment)},
	}, nil
}

// Program is a linked shader program with a uniform location cache.
type Program struct {
	ID uint32

	locationCache map[string]int32
}

// CreateProgram compiles and links the given stages.
//
// Compilation stops at the first failing stage.
func CreateProgram(shaders ...ShaderSource) (*Program, error) {
	if len(shaders) == 0 {
		return nil, fmt.Errorf("program needs at least one shader stage")
	}

	compiled := make([]uint32, 0, len(shaders))
	defer func() {
		for _, shader := range compiled {
			gl.DeleteShader(shader)
		}
	}()

	for _, info := range shaders {
		shader, err := compileShader(info)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, shader)
	}

	id := gl.CreateProgram()
	if id == 0 {
		return nil, fmt.Errorf("failed to create program")
	}
	for _, shader := range compiled {
		gl.AttachShader(id, shader)
	}
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(id)

		return nil, fmt.Errorf("program linkage failed:\n%v", strings.TrimRight(log, "\x00"))
	}

	return &Program{
		ID:            id,
		locationCache: make(map[string]int32),
	}, nil
}

func compileShader(info ShaderSource) (uint32, error) {
	shader := gl.CreateShader(info.Type)
	if shader == 0 {
		return 0, fmt.Errorf("failed to create %s shader", StageName(info.Type))
	}

	source := info.Source
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("%s shader compilation failed:\n%v", StageName(info.Type), strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

// StageName returns a human readable name of a shader stage.
func StageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.TESS_CONTROL_SHADER:
		return "tessellation control"
	case gl.TESS_EVALUATION_SHADER:
		return "tessellation evaluation"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("unknown(0x%X)", shaderType)
}

func (program *Program) Use() { gl.UseProgram(program.ID) }

// Uniform returns the location of the named uniform, -1 when it is not active.
func (program *Program) Uniform(name string) int32 {
	if program.ID == 0 {
		return -1
	}
	location, ok := program.locationCache[name]
	if !ok {
		location = gl.GetUniformLocation(program.ID, gl.Str(name+"\x00"))
		program.locationCache[name] = location
	}
	return location
}

// RequireUniforms fails when any of the names is not an active uniform.
func (program *Program) RequireUniforms(names ...string) error {
	var missing []string
	for _, name := range names {
		if program.Uniform(name) < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("program %d: missing uniforms %s", program.ID, strings.Join(missing, ", "))
	}
	return nil
}

func (program *Program) SetInt(name string, v int32) {
	location := program.Uniform(name)
	if location < 0 {
		return
	}
	gl.Uniform1i(location, v)
}

func (program *Program) SetBool(name string, v bool) {
	if v {
		program.SetInt(name, 1)
	} else {
		program.SetInt(name, 0)
	}
}

func (program *Program) SetFloat(name string, v float32) {
	location := program.Uniform(name)
	if location < 0 {
		return
	}
	gl.Uniform1f(location, v)
}

func (program *Program) SetVec3(name string, v m.Vec3) {
	location := program.Uniform(name)
	if location < 0 {
		return
	}
	gl.Uniform3f(location, v[0], v[1], v[2])
}

func (program *Program) SetVec4(name string, v m.Vec4) {
	location := program.Uniform(name)
	if location < 0 {
		return
	}
	gl.Uniform4f(location, v[0], v[1], v[2], v[3])
}

func (program *Program) SetGVec3(name string, v g.Vec3) {
	location := program.Uniform(name)
	if location < 0 {
		return
	}
	gl.Uniform3fv(location, 1, v.Ptr())
}

func (program *Program) SetMat3(name string, v m.Mat3) {
	location := program.Uniform(name)
	if location < 0 {
		return
	}
	gl.UniformMatrix3fv(location, 1, false, &v[0])
}

func (program *Program) SetMat4(name string, v m.Mat4) {
	location := program.Uniform(name)
	if location < 0 {
		return
	}
	gl.UniformMatrix4fv(location, 1, false, &v[0])
}

func (program *Program) SetGMat4(name string, v g.Mat4) {
	location := program.Uniform(name)
	if location < 0 {
		return
	}
	gl.UniformMatrix4fv(location, 1, false, v.Ptr())
}

// Destroy deletes the program, setters on a destroyed program are no-ops.
func (program *Program) Destroy() {
	if program.ID != 0 {
		gl.DeleteProgram(program.ID)
	}
	program.ID = 0
	program.locationCache = make(map[string]int32)
}
