package envmap

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfit/glsteps/render"
)

// Environment is the set of cube maps baked from one source.
type Environment struct {
	Name       string
	Env        *render.Texture
	Irradiance *render.Texture
	Specular   *render.Texture
}

func (env *Environment) Bind(envUnit, irradianceUnit, specularUnit uint32) {
	env.Env.Bind(envUnit)
	env.Irradiance.Bind(irradianceUnit)
	env.Specular.Bind(specularUnit)
}

// Destroy releases the baked textures, it is safe on a partially baked or
// nil environment.
func (env *Environment) Destroy() {
	if env == nil {
		return
	}
	for _, texture := range []*render.Texture{env.Env, env.Irradiance, env.Specular} {
		if texture != nil {
			texture.Destroy()
		}
	}
	env.Env, env.Irradiance, env.Specular = nil, nil, nil
}

// Baker owns the programs and meshes of the off-screen precompute passes.
type Baker struct {
	EnvironmentSize int
	IrradianceSize  int
	SpecularSize    int
	LUTSize         int

	ctx *render.Context

	equirectangular *render.Program
	irradiance      *render.Program
	specular        *render.Program
	brdf            *render.Program

	cube *render.DeviceMesh
	quad *render.DeviceMesh
}

func NewBaker(ctx *render.Context) (*Baker, error) {
	baker := &Baker{
		EnvironmentSize: EnvironmentSize,
		IrradianceSize:  IrradianceSize,
		SpecularSize:    SpecularSize,
		LUTSize:         BRDFLUTSize,
		ctx:             ctx,
	}

	programs := []struct {
		name     string
		target   **render.Program
		vertex   string
		fragment string
		uniforms []string
	}{
		{"equirectangular", &baker.equirectangular, cubeVertexShader, equirectangularFragmentShader,
			[]string{"u_view_matrix", "u_projection_matrix", "u_env_map_sampler"}},
		{"irradiance", &baker.irradiance, cubeVertexShader, irradianceFragmentShader,
			[]string{"u_view_matrix", "u_projection_matrix", "u_env_map_sampler"}},
		{"specular map", &baker.specular, cubeVertexShader, specularFragmentShader,
			[]string{"u_view_matrix", "u_projection_matrix", "u_env_map_sampler", "u_roughness"}},
		{"brdf convolution", &baker.brdf, quadVertexShader, brdfFragmentShader, nil},
	}

	for _, p := range programs {
		log.Printf("creating %s program", p.name)
		program, err := render.CreateProgram(
			render.ShaderSource{Type: gl.VERTEX_SHADER, Source: p.vertex},
			render.ShaderSource{Type: gl.FRAGMENT_SHADER, Source: p.fragment},
		)
		if err != nil {
			baker.Destroy()
			return nil, fmt.Errorf("%s program: %w", p.name, err)
		}
		*p.target = program

		if err := program.RequireUniforms(p.uniforms...); err != nil {
			baker.Destroy()
			return nil, fmt.Errorf("%s program: %w", p.name, err)
		}
	}

	var err error
	baker.cube, err = ctx.CreatePackedStaticGeometry(baker.equirectangular, []render.FloatBuffer{UnitCube()}, nil, UnitCubeIndices)
	if err != nil {
		baker.Destroy()
		return nil, fmt.Errorf("cube: %w", err)
	}
	baker.quad, err = ctx.CreatePackedStaticGeometry(baker.brdf, []render.FloatBuffer{Quad()}, nil, QuadIndices)
	if err != nil {
		baker.Destroy()
		return nil, fmt.Errorf("quad: %w", err)
	}

	return baker, nil
}

func (baker *Baker) Destroy() {
	for _, program := range []*render.Program{baker.equirectangular, baker.irradiance, baker.specular, baker.brdf} {
		if program != nil {
			program.Destroy()
		}
	}
	if baker.cube != nil {
		baker.ctx.DestroyGeometry(baker.cube)
	}
	if baker.quad != nil {
		baker.ctx.DestroyGeometry(baker.quad)
	}
}

// Cube returns the unit cube used for capturing, it is also usable as a skybox.
func (baker *Baker) Cube() *render.DeviceMesh { return baker.cube }

// state saves the GL state the passes modify.
type state struct {
	viewport [4]int32
	cull     bool
}

func saveState() state {
	var s state
	gl.GetIntegerv(gl.VIEWPORT, &s.viewport[0])
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	return s
}

func (s state) restore() {
	render.BindDefault()
	gl.Viewport(s.viewport[0], s.viewport[1], s.viewport[2], s.viewport[3])
	if s.cull {
		gl.Enable(gl.CULL_FACE)
	}
}

// Bake renders all cube maps of one decoded source.
func (baker *Baker) Bake(source Decoded) (*Environment, error) {
	if source.Radiance == nil {
		return nil, fmt.Errorf("environment %q: not decoded", source.Name)
	}

	saved := saveState()
	defer saved.restore()
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)

	env := &Environment{Name: source.Name}
	return keepOrDestroy(env, baker.bake(env, source))
}

// keepOrDestroy returns env when err is nil, otherwise it releases the
// textures that were already baked.
func keepOrDestroy(env *Environment, err error) (*Environment, error) {
	if err != nil {
		env.Destroy()
		return nil, err
	}
	return env, nil
}

func (baker *Baker) bake(env *Environment, source Decoded) error {
	framebuffer, err := render.NewFramebuffer()
	if err != nil {
		return fmt.Errorf("environment %q: %w", source.Name, err)
	}
	defer framebuffer.Destroy()

	log.Printf("creating environment cube map %q", source.Name)
	env.Env, err = baker.project(framebuffer, source.Radiance, baker.EnvironmentSize)
	if err != nil {
		return fmt.Errorf("environment %q: %w", source.Name, err)
	}

	if source.Irradiance != nil {
		log.Printf("projecting irradiance map %q", source.Name)
		env.Irradiance, err = baker.project(framebuffer, source.Irradiance, baker.EnvironmentSize)
	} else {
		log.Printf("convolving irradiance map %q", source.Name)
		env.Irradiance, err = baker.convolve(framebuffer, env.Env)
	}
	if err != nil {
		return fmt.Errorf("environment %q irradiance: %w", source.Name, err)
	}

	log.Printf("prefiltering specular map %q", source.Name)
	env.Specular, err = baker.prefilter(framebuffer, env.Env)
	if err != nil {
		return fmt.Errorf("environment %q specular: %w", source.Name, err)
	}
	return nil
}

// project renders an equirectangular image into the faces of a new cube map.
func (baker *Baker) project(framebuffer *render.Framebuffer, img *render.HDRImage, size int) (*render.Texture, error) {
	source, err := render.NewHDRTexture(img, render.Linear)
	if err != nil {
		return nil, err
	}
	defer source.Destroy()

	target, err := render.NewEmptyTextureCube16F(size, 3, render.Linear, false)
	if err != nil {
		return nil, err
	}

	source.Bind(0)
	baker.equirectangular.Use()
	baker.equirectangular.SetInt("u_env_map_sampler", 0)

	if err := baker.renderLevel(framebuffer, baker.equirectangular, target, 0, size); err != nil {
		target.Destroy()
		return nil, err
	}
	return target, nil
}

// convolve integrates the environment over the hemisphere of every direction.
func (baker *Baker) convolve(framebuffer *render.Framebuffer, env *render.Texture) (*render.Texture, error) {
	target, err := render.NewEmptyTextureCube16F(baker.IrradianceSize, 3, render.Linear, false)
	if err != nil {
		return nil, err
	}

	env.Bind(0)
	baker.irradiance.Use()
	baker.irradiance.SetInt("u_env_map_sampler", 0)

	if err := baker.renderLevel(framebuffer, baker.irradiance, target, 0, baker.IrradianceSize); err != nil {
		target.Destroy()
		return nil, err
	}
	return target, nil
}

// prefilter renders one mip level per roughness step.
func (baker *Baker) prefilter(framebuffer *render.Framebuffer, env *render.Texture) (*render.Texture, error) {
	params := render.Linear
	params.MinFilter = gl.LINEAR_MIPMAP_LINEAR

	target, err := render.NewEmptyTextureCube16F(baker.SpecularSize, 3, params, true)
	if err != nil {
		return nil, err
	}

	env.Bind(0)
	baker.specular.Use()
	baker.specular.SetInt("u_env_map_sampler", 0)

	levels := SpecularLevels(baker.SpecularSize)
	for level := 0; level < levels; level++ {
		baker.specular.SetFloat("u_roughness", LevelRoughness(level, levels))

		size := render.LevelSize(baker.SpecularSize, level)
		if err := baker.renderLevel(framebuffer, baker.specular, target, level, size); err != nil {
			target.Destroy()
			return nil, fmt.Errorf("level %d: %w", level, err)
		}
	}
	return target, nil
}

// renderLevel draws the six faces of one level of target through program,
// with a depth buffer matching the level size.
func (baker *Baker) renderLevel(framebuffer *render.Framebuffer, program *render.Program, target *render.Texture, level, size int) error {
	depth, err := render.NewRenderbuffer(gl.DEPTH_COMPONENT24, size, size)
	if err != nil {
		return err
	}
	defer depth.Destroy()

	framebuffer.DetachCubeMapFace(gl.COLOR_ATTACHMENT0)
	framebuffer.AttachRenderbuffer(gl.DEPTH_ATTACHMENT, depth)
	defer framebuffer.DetachRenderbuffer(gl.DEPTH_ATTACHMENT)

	program.SetMat4("u_projection_matrix", CaptureProjection())
	gl.Viewport(0, 0, int32(size), int32(size))

	for face, view := range CaptureViews() {
		program.SetMat4("u_view_matrix", view)

		framebuffer.AttachCubeMapFace(gl.COLOR_ATTACHMENT0, target, level, face)
		if err := framebuffer.CheckStatus(); err != nil {
			return fmt.Errorf("face %d: %w", face, err)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		baker.cube.Draw()
	}
	return nil
}

// BRDFLUT integrates the split-sum BRDF into a two channel lookup table
// indexed by (n·v, roughness).
func (baker *Baker) BRDFLUT() (*render.Texture, error) {
	saved := saveState()
	defer saved.restore()

	log.Println("creating BRDF LUT")
	lut, err := render.NewEmptyTexture2D(baker.LUTSize, baker.LUTSize, gl.RG16F, gl.RG, render.Linear)
	if err != nil {
		return nil, err
	}

	depth, err := render.NewRenderbuffer(gl.DEPTH_COMPONENT24, baker.LUTSize, baker.LUTSize)
	if err != nil {
		lut.Destroy()
		return nil, err
	}
	defer depth.Destroy()

	framebuffer, err := render.NewFramebuffer()
	if err != nil {
		lut.Destroy()
		return nil, err
	}
	defer framebuffer.Destroy()

	framebuffer.AttachTexture(gl.COLOR_ATTACHMENT0, lut, 0)
	framebuffer.AttachRenderbuffer(gl.DEPTH_ATTACHMENT, depth)
	if err := framebuffer.CheckStatus(); err != nil {
		lut.Destroy()
		return nil, err
	}

	gl.Viewport(0, 0, int32(baker.LUTSize), int32(baker.LUTSize))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	baker.brdf.Use()
	baker.quad.Draw()

	return lut, nil
}
