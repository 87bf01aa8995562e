// Command cubemaps draws a normal mapped model inside a skybox and mixes
// its lighting with reflected and refracted views of the sky.
//
//	W/A/S/D/Q/E, RMB  fly around
//	B                 toggle the normal map
//	N                 switch the normal map magnification filter
//	M                 next normal map minification filter
//	1/2               cycle the normal map S/T wrap mode
//	up/down           change the uv multiplier
//	Z/X               diffuse contribution down/up
//	C/V               reflection contribution down/up
//	G/H               refraction contribution down/up
package main

import (
	"flag"
	"log"

	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/glsteps/app"
	"github.com/adinfit/glsteps/camera"
	"github.com/adinfit/glsteps/envmap"
	"github.com/adinfit/glsteps/render"
)

const (
	colorUnit  = 0
	normalUnit = 1
	cubeUnit   = 2
)

type Option struct {
	Name  string
	Value int32
}

var magFilters = []Option{
	{"nearest", gl.NEAREST},
	{"linear", gl.LINEAR},
}

var minFilters = []Option{
	{"nearest", gl.NEAREST},
	{"linear", gl.LINEAR},
	{"nearest, mipmap nearest", gl.NEAREST_MIPMAP_NEAREST},
	{"nearest, mipmap linear", gl.NEAREST_MIPMAP_LINEAR},
	{"linear, mipmap nearest", gl.LINEAR_MIPMAP_NEAREST},
	{"linear, mipmap linear", gl.LINEAR_MIPMAP_LINEAR},
}

var wrapModes = []Option{
	{"clamp to edge", gl.CLAMP_TO_EDGE},
	{"clamp to border", gl.CLAMP_TO_BORDER},
	{"mirrored repeat", gl.MIRRORED_REPEAT},
	{"repeat", gl.REPEAT},
}

// Contribution weights of the three terms of the final color.
type Contribution struct {
	Diffuse    float32
	Reflection float32
	Refraction float32
}

type CubeMaps struct {
	cfg app.Config
	ctx *render.Context

	geometryProgram *render.Program
	skyboxProgram   *render.Program

	color  *render.Texture
	normal *render.Texture
	sky    *render.Texture

	geometry *render.DeviceMesh
	skybox   *render.DeviceMesh

	camera *camera.FlyThrough

	LightDirection g.Vec3
	LightColor     g.Vec3
	Shininess      float32

	BumpMap      bool
	MagFilter    int
	MinFilter    int
	WrapS, WrapT int
	UVMultiplier float32

	Contribution Contribution

	changeMultiplier float32
}

func NewCubeMaps(cfg app.Config) *CubeMaps {
	return &CubeMaps{
		cfg:            cfg,
		camera:         camera.New(m.Vec3{-1, 0.5, 4}, -20, -10),
		LightDirection: g.V3(0.4, -1, -0.85),
		LightColor:     g.V3(1, 1, 1),
		Shininess:      32,

		BumpMap:      true,
		MagFilter:    1,
		MinFilter:    5,
		WrapS:        3,
		WrapT:        3,
		UVMultiplier: 1,

		Contribution: Contribution{
			Diffuse:    1,
			Reflection: 0.2,
			Refraction: 0,
		},
	}
}

func (demo *CubeMaps) Init(ctx *render.Context, world *app.World) error {
	demo.ctx = ctx

	var err error
	log.Println("creating geometry program")
	demo.geometryProgram, err = render.CreateProgram(
		render.ShaderSource{Type: gl.VERTEX_SHADER, Source: geometryVertexShader},
		render.ShaderSource{Type: gl.FRAGMENT_SHADER, Source: geometryFragmentShader},
	)
	if err != nil {
		return err
	}
	if err := demo.geometryProgram.RequireUniforms(
		"u_model_matrix", "u_view_matrix", "u_projection_matrix", "u_nor_transform",
		"u_color_sampler", "u_normal_sampler", "u_cube_sampler",
		"u_dir_light.direction", "u_dir_light.color", "u_view_pos", "u_shininess",
		"u_uv_multiplier", "u_bump_map_active",
		"u_diffuse", "u_reflection", "u_refraction",
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
	if err := demo.skyboxProgram.RequireUniforms("u_view_matrix", "u_projection_matrix", "u_cube_sampler"); err != nil {
		return err
	}

	if err := demo.createTextures(); err != nil {
		return err
	}

	demo.geometry, err = app.LoadMesh(ctx, demo.geometryProgram, demo.cfg.Resource("materialBall", "mesh.obj"), true)
	if err != nil {
		return err
	}

	demo.skybox, err = ctx.CreatePackedStaticGeometry(demo.skyboxProgram,
		[]render.FloatBuffer{envmap.UnitCube()}, nil, envmap.UnitCubeIndices)
	if err != nil {
		return err
	}

	gl.ClearColor(0.10, 0.25, 0.15, 1.0)
	ctx.Enable(gl.DEPTH_TEST)
	return nil
}

func (demo *CubeMaps) createTextures() error {
	var err error
	demo.color, err = render.LoadTexture2D(demo.cfg.Resource("materialBall", "color.png"), 3, render.Trilinear)
	if err != nil {
		return err
	}
	demo.normal, err = render.LoadTexture2D(demo.cfg.Resource("materialBall", "normal.png"), 3, render.Trilinear)
	if err != nil {
		return err
	}
	demo.sky, err = render.LoadTextureCube(demo.cfg.Resource("skybox", "saintPeterSquare"), "jpg", 3, render.TextureParams{
		WrapS:     gl.CLAMP_TO_EDGE,
		WrapT:     gl.CLAMP_TO_EDGE,
		WrapR:     gl.CLAMP_TO_EDGE,
		MinFilter: gl.LINEAR_MIPMAP_LINEAR,
		MagFilter: gl.LINEAR,
	})
	return err
}

func (demo *CubeMaps) HandleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	pressed := action != glfw.Release
	switch key {
	case glfw.KeyUp:
		demo.changeMultiplier = direction(pressed, 1)
	case glfw.KeyDown:
		demo.changeMultiplier = direction(pressed, -1)
	}

	if action != glfw.Press {
		return
	}

	contribution := &demo.Contribution
	switch key {
	case glfw.KeyB:
		demo.BumpMap = !demo.BumpMap
		log.Println("bump map:", demo.BumpMap)
	case glfw.KeyN:
		demo.MagFilter = (demo.MagFilter + 1) % len(magFilters)
		log.Println("mag filter:", magFilters[demo.MagFilter].Name)
	case glfw.KeyM:
		demo.MinFilter = (demo.MinFilter + 1) % len(minFilters)
		log.Println("min filter:", minFilters[demo.MinFilter].Name)
	case glfw.Key1:
		demo.WrapS = (demo.WrapS + 1) % len(wrapModes)
		log.Println("wrap s:", wrapModes[demo.WrapS].Name)
	case glfw.Key2:
		demo.WrapT = (demo.WrapT + 1) % len(wrapModes)
		log.Println("wrap t:", wrapModes[demo.WrapT].Name)
	case glfw.KeyZ:
		contribution.Diffuse = step(contribution.Diffuse, -0.1)
	case glfw.KeyX:
		contribution.Diffuse = step(contribution.Diffuse, 0.1)
	case glfw.KeyC:
		contribution.Reflection = step(contribution.Reflection, -0.1)
	case glfw.KeyV:
		contribution.Reflection = step(contribution.Reflection, 0.1)
	case glfw.KeyG:
		contribution.Refraction = step(contribution.Refraction, -0.1)
	case glfw.KeyH:
		contribution.Refraction = step(contribution.Refraction, 0.1)
	default:
		return
	}
	log.Printf("%+v", *contribution)
}

func direction(pressed bool, sign float32) float32 {
	if pressed {
		return sign
	}
	return 0
}

// step moves v by delta, keeping it within [0, 1].
func step(v, delta float32) float32 {
	v += delta
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (demo *CubeMaps) adjustTexture() {
	texture := demo.normal
	texture.Bind(normalUnit)
	texture.SetParameter(gl.TEXTURE_MAG_FILTER, magFilters[demo.MagFilter].Value)
	texture.SetParameter(gl.TEXTURE_MIN_FILTER, minFilters[demo.MinFilter].Value)
	texture.SetParameter(gl.TEXTURE_WRAP_S, wrapModes[demo.WrapS].Value)
	texture.SetParameter(gl.TEXTURE_WRAP_T, wrapModes[demo.WrapT].Value)
}

func (demo *CubeMaps) Frame(world *app.World) error {
	world.Controls.Apply(demo.camera, world.DeltaTime)
	if demo.changeMultiplier != 0 {
		demo.UVMultiplier += demo.changeMultiplier * 5 * world.DeltaTime
		if demo.UVMultiplier < 1 {
			demo.UVMultiplier = 1
		}
		if demo.UVMultiplier > 200 {
			demo.UVMultiplier = 200
		}
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	demo.color.Bind(colorUnit)
	demo.adjustTexture()
	demo.sky.Bind(cubeUnit)

	view := demo.camera.ViewMatrix()
	model := m.Ident4()

	program := demo.geometryProgram
	program.Use()
	program.SetMat4("u_model_matrix", model)
	program.SetMat4("u_view_matrix", view)
	program.SetGMat4("u_projection_matrix", world.Projection)
	program.SetMat3("u_nor_transform", model.Inv().Transpose().Mat3())

	program.SetInt("u_color_sampler", colorUnit)
	program.SetInt("u_normal_sampler", normalUnit)
	program.SetInt("u_cube_sampler", cubeUnit)

	program.SetGVec3("u_dir_light.direction", demo.LightDirection)
	program.SetGVec3("u_dir_light.color", demo.LightColor)
	program.SetVec3("u_view_pos", demo.camera.NewPosition)
	program.SetFloat("u_shininess", demo.Shininess)
	program.SetFloat("u_uv_multiplier", demo.UVMultiplier)
	program.SetBool("u_bump_map_active", demo.BumpMap)

	program.SetFloat("u_diffuse", demo.Contribution.Diffuse)
	program.SetFloat("u_reflection", demo.Contribution.Reflection)
	program.SetFloat("u_refraction", demo.Contribution.Refraction)

	demo.geometry.Draw()

	// the skybox is drawn last at the far plane, it only fills what is left
	gl.DepthFunc(gl.LEQUAL)
	demo.skyboxProgram.Use()
	demo.skyboxProgram.SetMat4("u_view_matrix", view.Mat3().Mat4())
	demo.skyboxProgram.SetGMat4("u_projection_matrix", world.Projection)
	demo.skyboxProgram.SetInt("u_cube_sampler", cubeUnit)
	demo.skybox.Draw()
	gl.DepthFunc(gl.LESS)

	return nil
}

func (demo *CubeMaps) Destroy() {
	for _, mesh := range []*render.DeviceMesh{demo.geometry, demo.skybox} {
		if mesh != nil {
			demo.ctx.DestroyGeometry(mesh)
		}
	}
	for _, texture := range []*render.Texture{demo.color, demo.normal, demo.sky} {
		if texture != nil {
			texture.Destroy()
		}
	}
	for _, program := range []*render.Program{demo.geometryProgram, demo.skyboxProgram} {
		if program != nil {
			program.Destroy()
		}
	}
}

func main() {
	cfg := app.DefaultConfig("Cube maps")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := app.Run(cfg, NewCubeMaps(cfg)); err != nil {
		log.Fatalln(err)
	}
}
