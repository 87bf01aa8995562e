// Command mipmaps lays a plane with hand made mip levels on the ground, so
// that the level picked by each filter can be seen.
//
//	W/A/S/D/Q/E, RMB  fly around
//	T                 switch the grey and the colored texture
//	N                 switch the magnification filter
//	M                 next minification filter
//	1/2               cycle the S/T wrap mode
//	up/down           change the uv multiplier
//	left/right        tilt the plane
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
	"github.com/adinfit/glsteps/render"
)

type Filter struct {
	Name  string
	Value int32
}

var magFilters = []Filter{
	{"nearest", gl.NEAREST},
	{"linear", gl.LINEAR},
}

var minFilters = []Filter{
	{"nearest", gl.NEAREST},
	{"linear", gl.LINEAR},
	{"nearest, mipmap nearest", gl.NEAREST_MIPMAP_NEAREST},
	{"nearest, mipmap linear", gl.NEAREST_MIPMAP_LINEAR},
	{"linear, mipmap nearest", gl.LINEAR_MIPMAP_NEAREST},
	{"linear, mipmap linear", gl.LINEAR_MIPMAP_LINEAR},
}

var wrapModes = []Filter{
	{"clamp to edge", gl.CLAMP_TO_EDGE},
	{"clamp to border", gl.CLAMP_TO_BORDER},
	{"mirrored repeat", gl.MIRRORED_REPEAT},
	{"repeat", gl.REPEAT},
}

type Mipmaps struct {
	ctx *render.Context

	program  *render.Program
	textures [2]*render.Texture
	mesh     *render.DeviceMesh

	camera *camera.FlyThrough

	LightDirection g.Vec3
	LightColor     g.Vec3
	Shininess      float32

	Active       int
	MagFilter    int
	MinFilter    int
	WrapS, WrapT int
	UVMultiplier float32
	XAngle       float32

	changeMultiplier float32
	tilt             float32
}

func NewMipmaps() *Mipmaps {
	return &Mipmaps{
		camera:         camera.New(m.Vec3{-2, 1.2, 0}, -90, -30),
		LightDirection: g.V3(-1, -1, -1),
		LightColor:     g.V3(1, 1, 1),
		Shininess:      32,

		MagFilter:    0,
		MinFilter:    4,
		WrapS:        3,
		WrapT:        3,
		UVMultiplier: 10,
		XAngle:       90,
	}
}

func (demo *Mipmaps) Init(ctx *render.Context, world *app.World) error {
	demo.ctx = ctx

	var err error
	demo.program, err = render.CreateProgram(
		render.ShaderSource{Type: gl.VERTEX_SHADER, Source: vertexShader},
		render.ShaderSource{Type: gl.FRAGMENT_SHADER, Source: fragmentShader},
	)
	if err != nil {
		return err
	}
	if err := demo.program.RequireUniforms(
		"u_model_matrix", "u_view_matrix", "u_projection_matrix", "u_nor_transform",
		"u_sampler", "u_dir_light.direction", "u_dir_light.color",
		"u_view_pos", "u_shininess", "u_uv_multiplier", "u_has_3_channels",
	); err != nil {
		return err
	}

	params := render.TextureParams{
		WrapS:     gl.REPEAT,
		WrapT:     gl.REPEAT,
		MinFilter: gl.NEAREST_MIPMAP_LINEAR,
		MagFilter: gl.NEAREST,
	}
	demo.textures[0], err = render.NewTexture2DLevels(GreyLevels(), LevelSize, LevelSize, 1, params)
	if err != nil {
		return err
	}
	demo.textures[1], err = render.NewTexture2DLevels(ColorLevels(), LevelSize, LevelSize, 3, params)
	if err != nil {
		return err
	}

	demo.mesh, err = ctx.CreatePackedStaticGeometry(demo.program,
		[]render.FloatBuffer{
			{Name: app.PositionAttribute, Components: 3, Values: []float32{
				-1, -1, 0,
				1, -1, 0,
				1, 1, 0,
				-1, 1, 0,
			}},
			{Name: app.NormalAttribute, Components: 3, Values: []float32{
				0, 0, 1,
				0, 0, 1,
				0, 0, 1,
				0, 0, 1,
			}},
			{Name: app.UVAttribute, Components: 2, Values: []float32{
				0, 0,
				1, 0,
				1, 1,
				0, 1,
			}},
		}, nil,
		[]uint32{0, 1, 2, 0, 2, 3},
	)
	if err != nil {
		return err
	}

	gl.ClearColor(0.10, 0.25, 0.15, 1.0)
	ctx.Enable(gl.DEPTH_TEST)
	ctx.Enable(gl.CULL_FACE)
	return nil
}

func (demo *Mipmaps) HandleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	pressed := action != glfw.Release
	switch key {
	case glfw.KeyUp:
		demo.changeMultiplier = direction(pressed, 1)
	case glfw.KeyDown:
		demo.changeMultiplier = direction(pressed, -1)
	case glfw.KeyLeft:
		demo.tilt = direction(pressed, -1)
	case glfw.KeyRight:
		demo.tilt = direction(pressed, 1)
	}

	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyT:
		demo.Active = 1 - demo.Active
		log.Println("three channels:", demo.Active == 1)
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
	}
}

func direction(pressed bool, sign float32) float32 {
	if pressed {
		return sign
	}
	return 0
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (demo *Mipmaps) update(dt float32) {
	demo.UVMultiplier = clamp(demo.UVMultiplier+demo.changeMultiplier*20*dt, 1, 200)
	demo.XAngle = clamp(demo.XAngle+demo.tilt*45*dt, 0, 180)
}

func (demo *Mipmaps) adjustTexture() {
	texture := demo.textures[demo.Active]
	texture.Bind(0)
	texture.SetParameter(gl.TEXTURE_MAG_FILTER, magFilters[demo.MagFilter].Value)
	texture.SetParameter(gl.TEXTURE_MIN_FILTER, minFilters[demo.MinFilter].Value)
	texture.SetParameter(gl.TEXTURE_WRAP_S, wrapModes[demo.WrapS].Value)
	texture.SetParameter(gl.TEXTURE_WRAP_T, wrapModes[demo.WrapT].Value)
}

func (demo *Mipmaps) Frame(world *app.World) error {
	world.Controls.Apply(demo.camera, world.DeltaTime)
	demo.update(world.DeltaTime)

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	program := demo.program
	program.Use()
	demo.adjustTexture()

	model := m.HomogRotate3D(m.DegToRad(demo.XAngle), m.Vec3{-1, 0, 0})

	program.SetMat4("u_model_matrix", model)
	program.SetMat4("u_view_matrix", demo.camera.ViewMatrix())
	program.SetGMat4("u_projection_matrix", world.Projection)
	program.SetMat3("u_nor_transform", model.Inv().Transpose().Mat3())

	program.SetInt("u_sampler", 0)
	program.SetGVec3("u_dir_light.direction", demo.LightDirection)
	program.SetGVec3("u_dir_light.color", demo.LightColor)
	program.SetVec3("u_view_pos", demo.camera.NewPosition)
	program.SetFloat("u_shininess", demo.Shininess)
	program.SetFloat("u_uv_multiplier", demo.UVMultiplier)
	program.SetBool("u_has_3_channels", demo.Active == 1)

	demo.mesh.Draw()
	return nil
}

func (demo *Mipmaps) Destroy() {
	if demo.mesh != nil {
		demo.ctx.DestroyGeometry(demo.mesh)
	}
	for _, texture := range demo.textures {
		if texture != nil {
			texture.Destroy()
		}
	}
	if demo.program != nil {
		demo.program.Destroy()
	}
}

func main() {
	cfg := app.DefaultConfig("Mipmaps")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := app.Run(cfg, NewMipmaps()); err != nil {
		log.Fatalln(err)
	}
}
