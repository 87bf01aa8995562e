// Command pbr compares Blinn-Phong shading with a Cook-Torrance metallic
// roughness model on a textured material ball.
//
//	W/A/S/D/Q/E, RMB  fly around
//	P                 switch Blinn-Phong and standard PBR
//	B                 toggle the normal map
//	1/2               toggle the metallic/roughness map
//	T/G               metallic up/down
//	R/F               roughness up/down
//	I/K               shininess up/down
//	Z/X               gamma down/up
//	C/V               exposure down/up
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

const (
	colorUnit = iota
	normalUnit
	metallicUnit
	roughnessUnit
)

const (
	BlinnPhong = iota
	StandardPBR
)

var programNames = []string{"blinn-phong", "standard pbr"}

type Material struct {
	Shininess float32

	HasMetallicMap  bool
	Metallic        float32
	HasRoughnessMap bool
	Roughness       float32

	BumpMap bool
}

// Display is the conversion from linear radiance to the screen.
type Display struct {
	Gamma    float32
	Exposure float32
}

type PBR struct {
	cfg app.Config
	ctx *render.Context

	programs [2]*render.Program
	current  int

	color     *render.Texture
	normal    *render.Texture
	metallic  *render.Texture
	roughness *render.Texture

	mesh *render.DeviceMesh

	camera *camera.FlyThrough

	AmbientColor   g.Vec3
	LightDirection g.Vec3
	LightColor     g.Vec3

	Material Material
	Display  Display
}

func NewPBR(cfg app.Config) *PBR {
	return &PBR{
		cfg:    cfg,
		camera: camera.New(m.Vec3{0, 1, 4}, 0, -20),

		AmbientColor:   g.V3(0.01, 0.025, 0.015),
		LightDirection: g.V3(-1, -1, -1),
		LightColor:     g.V3(1, 1, 1),

		current: StandardPBR,
		Material: Material{
			Shininess: 32,
			Metallic:  0,
			Roughness: 0.05,
			BumpMap:   true,
		},
		Display: Display{
			Gamma:    2.2,
			Exposure: 1,
		},
	}
}

var commonUniforms = []string{
	"u_model_matrix", "u_view_matrix", "u_projection_matrix", "u_nor_transform",
	"u_color_sampler", "u_normal_sampler",
	"u_amb_light.color", "u_dir_light.direction", "u_dir_light.color",
	"u_view_pos", "u_bump_map_active", "u_gamma", "u_exposure",
}

func (demo *PBR) Init(ctx *render.Context, world *app.World) error {
	demo.ctx = ctx

	for i, p := range []struct {
		fragment string
		uniforms []string
	}{
		BlinnPhong: {blinnPhongFragmentShader, []string{"u_shininess"}},
		StandardPBR: {standardFragmentShader, []string{
			"u_has_metallic_map", "u_metallic_sampler", "u_metallic",
			"u_has_roughness_map", "u_roughness_sampler", "u_roughness",
		}},
	} {
		log.Printf("creating %s program", programNames[i])
		program, err := render.CreateProgram(
			render.ShaderSource{Type: gl.VERTEX_SHADER, Source: vertexShader},
			render.ShaderSource{Type: gl.FRAGMENT_SHADER, Source: p.fragment},
		)
		if err != nil {
			return err
		}
		demo.programs[i] = program
		if err := program.RequireUniforms(append(p.uniforms, commonUniforms...)...); err != nil {
			return err
		}
	}

	var err error
	for _, t := range []struct {
		target   **render.Texture
		name     string
		channels int
	}{
		{&demo.color, "color.png", 3},
		{&demo.normal, "normal.png", 3},
		{&demo.metallic, "metallic.png", 1},
		{&demo.roughness, "roughness.png", 1},
	} {
		*t.target, err = render.LoadTexture2D(demo.cfg.Resource("materialBall", t.name), t.channels, render.Trilinear)
		if err != nil {
			return err
		}
	}

	// both programs share the vertex stage, so the attribute locations match
	demo.mesh, err = app.LoadMesh(ctx, demo.programs[StandardPBR], demo.cfg.Resource("materialBall", "mesh.obj"), true)
	if err != nil {
		return err
	}

	gl.ClearColor(0.02, 0.02, 0.02, 1.0)
	ctx.Enable(gl.DEPTH_TEST)
	ctx.Enable(gl.CULL_FACE)
	return nil
}

func (demo *PBR) HandleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}

	material, display := &demo.Material, &demo.Display
	switch key {
	case glfw.KeyP:
		if action != glfw.Press {
			return
		}
		demo.current = (demo.current + 1) % len(demo.programs)
		log.Println("program:", programNames[demo.current])
		return
	case glfw.KeyB:
		if action != glfw.Press {
			return
		}
		material.BumpMap = !material.BumpMap
	case glfw.Key1:
		if action != glfw.Press {
			return
		}
		material.HasMetallicMap = !material.HasMetallicMap
	case glfw.Key2:
		if action != glfw.Press {
			return
		}
		material.HasRoughnessMap = !material.HasRoughnessMap
	case glfw.KeyT:
		material.Metallic = adjust(material.Metallic, 0.05, 0, 1)
	case glfw.KeyG:
		material.Metallic = adjust(material.Metallic, -0.05, 0, 1)
	case glfw.KeyR:
		material.Roughness = adjust(material.Roughness, 0.05, 0.05, 1)
	case glfw.KeyF:
		material.Roughness = adjust(material.Roughness, -0.05, 0.05, 1)
	case glfw.KeyI:
		material.Shininess = adjust(material.Shininess, 1, 1, 64)
	case glfw.KeyK:
		material.Shininess = adjust(material.Shininess, -1, 1, 64)
	case glfw.KeyZ:
		display.Gamma = adjust(display.Gamma, -0.1, 0.1, 5)
	case glfw.KeyX:
		display.Gamma = adjust(display.Gamma, 0.1, 0.1, 5)
	case glfw.KeyC:
		display.Exposure = adjust(display.Exposure, -0.1, 0.1, 5)
	case glfw.KeyV:
		display.Exposure = adjust(display.Exposure, 0.1, 0.1, 5)
	default:
		return
	}
	log.Printf("%+v %+v", *material, *display)
}

// adjust adds delta to v and clamps the result to [min, max].
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

func (demo *PBR) Frame(world *app.World) error {
	world.Controls.Apply(demo.camera, world.DeltaTime)

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	demo.color.Bind(colorUnit)
	demo.normal.Bind(normalUnit)
	demo.metallic.Bind(metallicUnit)
	demo.roughness.Bind(roughnessUnit)

	model := m.Ident4()
	material := &demo.Material

	program := demo.programs[demo.current]
	program.Use()

	program.SetMat4("u_model_matrix", model)
	program.SetMat4("u_view_matrix", demo.camera.ViewMatrix())
	program.SetGMat4("u_projection_matrix", world.Projection)
	program.SetMat3("u_nor_transform", model.Inv().Transpose().Mat3())

	program.SetInt("u_color_sampler", colorUnit)
	program.SetInt("u_normal_sampler", normalUnit)

	program.SetGVec3("u_amb_light.color", demo.AmbientColor)
	program.SetGVec3("u_dir_light.direction", demo.LightDirection)
	program.SetGVec3("u_dir_light.color", demo.LightColor)
	program.SetVec3("u_view_pos", demo.camera.NewPosition)
	program.SetBool("u_bump_map_active", material.BumpMap)
	program.SetFloat("u_gamma", demo.Display.Gamma)
	program.SetFloat("u_exposure", demo.Display.Exposure)

	switch demo.current {
	case BlinnPhong:
		program.SetFloat("u_shininess", material.Shininess)
	case StandardPBR:
		program.SetBool("u_has_metallic_map", material.HasMetallicMap)
		program.SetInt("u_metallic_sampler", metallicUnit)
		program.SetFloat("u_metallic", material.Metallic)
		program.SetBool("u_has_roughness_map", material.HasRoughnessMap)
		program.SetInt("u_roughness_sampler", roughnessUnit)
		program.SetFloat("u_roughness", material.Roughness)
	}

	demo.mesh.Draw()
	return nil
}

func (demo *PBR) Destroy() {
	if demo.mesh != nil {
		demo.ctx.DestroyGeometry(demo.mesh)
	}
	for _, texture := range []*render.Texture{demo.color, demo.normal, demo.metallic, demo.roughness} {
		if texture != nil {
			texture.Destroy()
		}
	}
	for _, program := range demo.programs {
		if program != nil {
			program.Destroy()
		}
	}
}

func main() {
	cfg := app.DefaultConfig("Physically based rendering")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := app.Run(cfg, NewPBR(cfg)); err != nil {
		log.Fatalln(err)
	}
}
