// Command glsteps lights a material ball with image-based lighting: every
// environment is baked into irradiance and prefiltered specular cube maps
// on start and combined with a split-sum BRDF lookup table.
//
//	W/A/S/D/Q/E, RMB  fly around
//	1/2/3             gravel plaza, paper mill, winter forest
//	B                 skybox shows the environment, irradiance or specular map
//	[ ]               skybox mip level down/up
//	N/O/J/U           toggle the normal, ao, metallic and roughness maps
//	T/G               metallic up/down
//	R/F               roughness up/down
//	Z/X               gamma down/up
//	C/V               exposure down/up
//	arrows , .        rotate the model
package main

import (
	"flag"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/glsteps/app"
	"github.com/adinfit/glsteps/camera"
	"github.com/adinfit/glsteps/envmap"
	"github.com/adinfit/glsteps/render"
)

// Texture units, the environment maps come first.
const (
	envUnit = iota
	irradianceUnit
	specularUnit
	brdfLUTUnit
	albedoUnit
	normalUnit
	aoUnit
	metallicUnit
	roughnessUnit
)

var skyboxModes = []string{"environment", "irradiance", "specular"}

type Maps struct {
	Normal    bool
	AO        bool
	Metallic  bool
	Roughness bool
}

type Material struct {
	Maps      Maps
	Metallic  float32
	Roughness float32
}

type IBL struct {
	cfg     app.Config
	ctx     *render.Context
	sources []envmap.Source

	program       *render.Program
	skyboxProgram *render.Program

	baker        *envmap.Baker
	environments []*envmap.Environment
	brdfLUT      *render.Texture
	textures     [5]*render.Texture

	mesh *render.DeviceMesh

	camera *camera.FlyThrough

	Environment int
	SkyboxMode  int
	SkyboxLevel float32

	Rotation m.Vec3
	Material Material
	Gamma    float32
	Exposure float32

	rotate m.Vec3
}

func NewIBL(cfg app.Config) *IBL {
	source := func(name string) envmap.Source {
		return envmap.Source{
			Name:           name,
			Path:           cfg.Resource("environmentMaps", name+".hdr"),
			IrradiancePath: cfg.Resource("environmentMaps", name+"Irradiance.hdr"),
		}
	}

	return &IBL{
		cfg: cfg,
		sources: []envmap.Source{
			source("gravelPlaza"),
			source("paperMill"),
			source("winterForest"),
		},
		camera: camera.New(m.Vec3{0, 1, 4}, 0, -20),
		Material: Material{
			Maps:      Maps{Normal: true, AO: true, Metallic: true, Roughness: true},
			Metallic:  0,
			Roughness: 0.05,
		},
		Gamma:    2.2,
		Exposure: 1,
	}
}

func (demo *IBL) Init(ctx *render.Context, world *app.World) error {
	demo.ctx = ctx

	if err := demo.createPrograms(); err != nil {
		return err
	}
	if err := demo.createTextures(); err != nil {
		return err
	}

	var err error
	demo.mesh, err = app.LoadMesh(ctx, demo.program, demo.cfg.Resource("materialBall", "mesh.obj"), true)
	if err != nil {
		return err
	}

	if err := demo.bakeEnvironments(); err != nil {
		return err
	}

	gl.ClearColor(0, 0, 0, 1)
	ctx.Enable(gl.DEPTH_TEST)
	ctx.Enable(gl.CULL_FACE)
	ctx.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)
	return nil
}

func (demo *IBL) createPrograms() error {
	var err error
	log.Println("creating standard pbr program")
	demo.program, err = render.CreateProgram(
		render.ShaderSource{Type: gl.VERTEX_SHADER, Source: vertexShader},
		render.ShaderSource{Type: gl.FRAGMENT_SHADER, Source: fragmentShader},
	)
	if err != nil {
		return err
	}
	if err := demo.program.RequireUniforms(
		"u_model_matrix", "u_pv_matrix", "u_nor_transform", "u_view_pos",
		"u_irradiance_sampler", "u_specular_sampler", "u_brdf_lut_sampler",
		"u_has_normal_map", "u_has_ao_map", "u_has_metallic_map", "u_has_roughness_map",
		"u_albedo_sampler", "u_normal_sampler", "u_ao_sampler", "u_metallic_sampler", "u_roughness_sampler",
		"u_metallic", "u_roughness", "u_gamma", "u_exposure",
	); err != nil {
		return err
	}

	log.Println("creating skybox program")
	demo.skyboxProgram, err = render.CreateProgram(
		render.ShaderSource{Type: gl.VERTEX_SHADER, Source: skyboxVertexShader},
		render.ShaderSource{Type: gl.FRAGMENT_SHADER, Source: skyboxFragmentShader},
	)
	if err != nil {
		return err
	}
	return demo.skyboxProgram.RequireUniforms(
		"u_view_matrix", "u_projection_matrix", "u_cube_sampler",
		"u_mipmap_level", "u_gamma", "u_exposure",
	)
}

func (demo *IBL) createTextures() error {
	for i, t := range []struct {
		name     string
		channels int
	}{
		{"color.png", 3},
		{"normal.png", 3},
		{"ao.png", 1},
		{"metallic.png", 1},
		{"roughness.png", 1},
	} {
		texture, err := render.LoadTexture2D(demo.cfg.Resource("materialBall", t.name), t.channels, render.Trilinear)
		if err != nil {
			return err
		}
		demo.textures[i] = texture
	}
	return nil
}

// bakeEnvironments decodes every source in parallel and then renders the
// cube maps on the GL thread.
func (demo *IBL) bakeEnvironments() error {
	decoded, err := envmap.DecodeSources(demo.sources)
	if err != nil {
		return err
	}

	demo.baker, err = envmap.NewBaker(demo.ctx)
	if err != nil {
		return err
	}

	for _, source := range decoded {
		env, err := demo.baker.Bake(source)
		if err != nil {
			return err
		}
		demo.environments = append(demo.environments, env)
	}

	demo.brdfLUT, err = demo.baker.BRDFLUT()
	return err
}

func (demo *IBL) HandleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	pressed := action != glfw.Release
	switch key {
	case glfw.KeyLeft:
		demo.rotate[1] = direction(pressed, -1)
	case glfw.KeyRight:
		demo.rotate[1] = direction(pressed, 1)
	case glfw.KeyUp:
		demo.rotate[0] = direction(pressed, -1)
	case glfw.KeyDown:
		demo.rotate[0] = direction(pressed, 1)
	case glfw.KeyComma:
		demo.rotate[2] = direction(pressed, -1)
	case glfw.KeyPeriod:
		demo.rotate[2] = direction(pressed, 1)
	}

	if action == glfw.Release {
		return
	}
	repeat := action == glfw.Repeat

	material := &demo.Material
	switch key {
	case glfw.Key1, glfw.Key2, glfw.Key3:
		if repeat {
			return
		}
		if i := int(key - glfw.Key1); i < len(demo.environments) {
			demo.Environment = i
			log.Println("environment:", demo.environments[i].Name)
		}
		return
	case glfw.KeyB:
		if repeat {
			return
		}
		demo.SkyboxMode = (demo.SkyboxMode + 1) % len(skyboxModes)
		log.Println("skybox:", skyboxModes[demo.SkyboxMode])
		return
	case glfw.KeyLeftBracket:
		demo.SkyboxLevel = adjust(demo.SkyboxLevel, -0.5, 0, demo.maxSkyboxLevel())
		log.Println("skybox level:", demo.SkyboxLevel)
		return
	case glfw.KeyRightBracket:
		demo.SkyboxLevel = adjust(demo.SkyboxLevel, 0.5, 0, demo.maxSkyboxLevel())
		log.Println("skybox level:", demo.SkyboxLevel)
		return

	case glfw.KeyN:
		if repeat {
			return
		}
		material.Maps.Normal = !material.Maps.Normal
	case glfw.KeyO:
		if repeat {
			return
		}
		material.Maps.AO = !material.Maps.AO
	case glfw.KeyJ:
		if repeat {
			return
		}
		material.Maps.Metallic = !material.Maps.Metallic
	case glfw.KeyU:
		if repeat {
			return
		}
		material.Maps.Roughness = !material.Maps.Roughness
	case glfw.KeyT:
		material.Metallic = adjust(material.Metallic, 0.05, 0, 1)
	case glfw.KeyG:
		material.Metallic = adjust(material.Metallic, -0.05, 0, 1)
	case glfw.KeyR:
		material.Roughness = adjust(material.Roughness, 0.05, 0.05, 1)
	case glfw.KeyF:
		material.Roughness = adjust(material.Roughness, -0.05, 0.05, 1)
	case glfw.KeyZ:
		demo.Gamma = adjust(demo.Gamma, -0.1, 0.1, 5)
	case glfw.KeyX:
		demo.Gamma = adjust(demo.Gamma, 0.1, 0.1, 5)
	case glfw.KeyC:
		demo.Exposure = adjust(demo.Exposure, -0.1, 0.1, 5)
	case glfw.KeyV:
		demo.Exposure = adjust(demo.Exposure, 0.1, 0.1, 5)
	default:
		return
	}
	log.Printf("%+v gamma %.1f exposure %.1f", *material, demo.Gamma, demo.Exposure)
}

// maxSkyboxLevel is the last mip level of the prefiltered specular map.
func (demo *IBL) maxSkyboxLevel() float32 {
	size := envmap.SpecularSize
	if demo.baker != nil {
		size = demo.baker.SpecularSize
	}
	return float32(envmap.SpecularLevels(size) - 1)
}

func direction(pressed bool, sign float32) float32 {
	if pressed {
		return sign
	}
	return 0
}

func adjust(v, delta, min, max float32) float32 {
	v += delta
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// wrapDegrees keeps an angle within [-180, 180].
func wrapDegrees(angle float32) float32 {
	for angle > 180 {
		angle -= 360
	}
	for angle < -180 {
		angle += 360
	}
	return angle
}

// ModelMatrix rotates around X, then Y, then Z.
func (demo *IBL) ModelMatrix() m.Mat4 {
	return m.HomogRotate3DX(m.DegToRad(demo.Rotation[0])).
		Mul4(m.HomogRotate3DY(m.DegToRad(demo.Rotation[1]))).
		Mul4(m.HomogRotate3DZ(m.DegToRad(demo.Rotation[2])))
}

// Projection matches the perspective of the world.
func Projection(world *app.World) m.Mat4 {
	return m.Perspective(m.DegToRad(app.FieldOfView), world.Aspect(), app.NearPlane, app.FarPlane)
}

func (demo *IBL) Frame(world *app.World) error {
	world.Controls.Apply(demo.camera, world.DeltaTime)
	for i := range demo.Rotation {
		demo.Rotation[i] = wrapDegrees(demo.Rotation[i] + demo.rotate[i]*90*world.DeltaTime)
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := demo.camera.ViewMatrix()

	demo.environments[demo.Environment].Bind(envUnit, irradianceUnit, specularUnit)
	demo.brdfLUT.Bind(brdfLUTUnit)
	for i, texture := range demo.textures {
		texture.Bind(albedoUnit + uint32(i))
	}

	demo.drawGeometry(world, view)
	demo.drawSkybox(world, view)
	return nil
}

func (demo *IBL) drawGeometry(world *app.World, view m.Mat4) {
	model := demo.ModelMatrix()
	material := &demo.Material

	program := demo.program
	program.Use()

	program.SetMat4("u_model_matrix", model)
	program.SetMat4("u_pv_matrix", Projection(world).Mul4(view))
	program.SetMat3("u_nor_transform", model.Inv().Transpose().Mat3())
	program.SetVec3("u_view_pos", demo.camera.NewPosition)

	program.SetInt("u_irradiance_sampler", irradianceUnit)
	program.SetInt("u_specular_sampler", specularUnit)
	program.SetInt("u_brdf_lut_sampler", brdfLUTUnit)

	program.SetBool("u_has_normal_map", material.Maps.Normal)
	program.SetBool("u_has_ao_map", material.Maps.AO)
	program.SetBool("u_has_metallic_map", material.Maps.Metallic)
	program.SetBool("u_has_roughness_map", material.Maps.Roughness)

	program.SetInt("u_albedo_sampler", albedoUnit)
	program.SetInt("u_normal_sampler", normalUnit)
	program.SetInt("u_ao_sampler", aoUnit)
	program.SetInt("u_metallic_sampler", metallicUnit)
	program.SetInt("u_roughness_sampler", roughnessUnit)

	program.SetFloat("u_metallic", material.Metallic)
	program.SetFloat("u_roughness", material.Roughness)
	program.SetFloat("u_gamma", demo.Gamma)
	program.SetFloat("u_exposure", demo.Exposure)

	demo.mesh.Draw()
}

func (demo *IBL) drawSkybox(world *app.World, view m.Mat4) {
	gl.DepthFunc(gl.LEQUAL)

	program := demo.skyboxProgram
	program.Use()
	program.SetMat4("u_view_matrix", view.Mat3().Mat4())
	program.SetGMat4("u_projection_matrix", world.Projection)
	program.SetInt("u_cube_sampler", int32(envUnit+demo.SkyboxMode))
	program.SetFloat("u_mipmap_level", demo.SkyboxLevel)
	program.SetFloat("u_gamma", demo.Gamma)
	program.SetFloat("u_exposure", demo.Exposure)

	// the skybox is seen from the inside
	demo.ctx.Disable(gl.CULL_FACE)
	demo.baker.Cube().Draw()
	demo.ctx.Enable(gl.CULL_FACE)

	gl.DepthFunc(gl.LESS)
}

func (demo *IBL) Destroy() {
	if demo.mesh != nil {
		demo.ctx.DestroyGeometry(demo.mesh)
	}
	for _, texture := range append(demo.textures[:], demo.brdfLUT) {
		if texture != nil {
			texture.Destroy()
		}
	}
	for _, env := range demo.environments {
		env.Destroy()
	}
	if demo.baker != nil {
		demo.baker.Destroy()
	}
	for _, program := range []*render.Program{demo.program, demo.skyboxProgram} {
		if program != nil {
			program.Destroy()
		}
	}
}

func main() {
	cfg := app.DefaultConfig("Image based lighting")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := app.Run(cfg, NewIBL(cfg)); err != nil {
		log.Fatalln(err)
	}
}
