// Command lighting shades a textured model with one of the classic lighting
// models and cuts it with up to four user clipping planes.
//
//	W/A/S/D/Q/E, RMB  fly around
//	M                 next lighting model
//	1-4               toggle a clipping plane
//	up/down           move the selected plane
//	left/right, I/K   turn the normal of the selected plane
//	R/F               roughness up/down
//	L                 switch between the material ball and the lathe
//	X                 toggle wireframe
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/glsteps/app"
	"github.com/adinfit/glsteps/camera"
	"github.com/adinfit/glsteps/obj"
	"github.com/adinfit/glsteps/render"
)

const MaxClippingPlanes = 4

var lightingModels = []string{
	"lambert",
	"half-lambert",
	"phong",
	"blinn-phong",
	"banded",
	"minnaert",
	"oren-nayar",
}

type DirectionalLight struct {
	Direction g.Vec3
	Color     g.Vec3
}

type ClippingPlane struct {
	Active   bool
	Equation m.Vec4
}

// Rotate turns the plane normal by yaw around y and pitch around x, the
// distance from the origin is kept.
func (plane *ClippingPlane) Rotate(yaw, pitch float32) {
	rotation := m.HomogRotate3DY(yaw).Mul4(m.HomogRotate3DX(pitch))
	normal := rotation.Mul4x1(plane.Equation.Vec3().Vec4(0)).Vec3().Normalize()
	plane.Equation = normal.Vec4(plane.Equation[3])
}

type Lighting struct {
	cfg app.Config
	ctx *render.Context

	program *render.Program
	texture *render.Texture
	ball    *render.DeviceMesh
	lathe   *render.DeviceMesh

	camera *camera.FlyThrough

	Light     DirectionalLight
	Model     int
	Shininess float32
	Roughness float32
	Planes    [MaxClippingPlanes]ClippingPlane
	Selected  int
	ShowLathe bool
	Wireframe bool

	movePlane float32
	turnPlane m.Vec2
}

func NewLighting(cfg app.Config) *Lighting {
	demo := &Lighting{
		cfg:       cfg,
		camera:    camera.New(m.Vec3{-3, 3, 3}, -45, -30),
		Light:     DirectionalLight{Direction: g.V3(-1, -1, -1), Color: g.V3(1, 1, 1)},
		Model:     3,
		Shininess: 32,
		Roughness: 0.5,
	}
	for i := range demo.Planes {
		demo.Planes[i].Equation = m.Vec4{0, 1, 0, 0}
	}
	return demo
}

// fish is the profile of the lathe mesh, t runs along the body and phase
// around it.
func fish(t, phase float32) m.Vec3 {
	r := 12.291*t*t*t - 20*t*t + 8.508*t
	h := 3 * t
	rx := 0.5 * h * float32(math.Exp(float64(1-h)))

	sn, cs := math.Sincos(float64(phase))
	return m.Vec3{
		r * float32(sn) * rx,
		r * float32(cs),
		(t - 0.5) * 3,
	}
}

func (demo *Lighting) Init(ctx *render.Context, world *app.World) error {
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
		"u_dir_light.direction", "u_dir_light.color", "u_view_pos", "u_lighting_model",
	); err != nil {
		return err
	}

	demo.texture, err = render.LoadTexture2D(demo.cfg.Resource("materialBallLambert.png"), 3, render.Trilinear)
	if err != nil {
		return err
	}

	demo.ball, err = app.LoadMesh(ctx, demo.program, demo.cfg.Resource("materialBall.obj"), false)
	if err != nil {
		return err
	}

	demo.lathe, err = app.UploadMesh(ctx, demo.program, obj.Lathe(12, 12, true, fish), false)
	if err != nil {
		return fmt.Errorf("lathe: %w", err)
	}

	ctx.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	return nil
}

func (demo *Lighting) HandleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	pressed := action != glfw.Release
	switch key {
	case glfw.KeyUp:
		demo.movePlane = direction(pressed, 1)
	case glfw.KeyDown:
		demo.movePlane = direction(pressed, -1)
	case glfw.KeyLeft:
		demo.turnPlane[0] = direction(pressed, 1)
	case glfw.KeyRight:
		demo.turnPlane[0] = direction(pressed, -1)
	case glfw.KeyI:
		demo.turnPlane[1] = direction(pressed, 1)
	case glfw.KeyK:
		demo.turnPlane[1] = direction(pressed, -1)
	}
	if action == glfw.Release {
		switch key {
		case glfw.KeyUp, glfw.KeyDown, glfw.KeyLeft, glfw.KeyRight, glfw.KeyI, glfw.KeyK:
			plane := demo.Planes[demo.Selected]
			log.Printf("plane %d equation %v", demo.Selected+1, plane.Equation)
		}
	}

	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyM:
		demo.Model = (demo.Model + 1) % len(lightingModels)
		log.Println("lighting model:", lightingModels[demo.Model])
	case glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4:
		i := int(key - glfw.Key1)
		demo.Selected = i
		demo.Planes[i].Active = !demo.Planes[i].Active
		log.Printf("plane %d active: %v, equation %v", i+1, demo.Planes[i].Active, demo.Planes[i].Equation)
	case glfw.KeyR:
		demo.Roughness = clamp(demo.Roughness+0.1, 0, 1)
		log.Printf("roughness: %.2f", demo.Roughness)
	case glfw.KeyF:
		demo.Roughness = clamp(demo.Roughness-0.1, 0, 1)
		log.Printf("roughness: %.2f", demo.Roughness)
	case glfw.KeyL:
		demo.ShowLathe = !demo.ShowLathe
	case glfw.KeyX:
		demo.Wireframe = !demo.Wireframe
		demo.ctx.SetWireframe(demo.Wireframe)
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

func (demo *Lighting) Frame(world *app.World) error {
	world.Controls.Apply(demo.camera, world.DeltaTime)
	if demo.movePlane != 0 {
		plane := &demo.Planes[demo.Selected]
		plane.Equation[3] += demo.movePlane * world.DeltaTime
	}
	if demo.turnPlane != (m.Vec2{}) {
		turn := demo.turnPlane.Mul(world.DeltaTime)
		demo.Planes[demo.Selected].Rotate(turn[0], turn[1])
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	for i, plane := range demo.Planes {
		if plane.Active {
			demo.ctx.Enable(gl.CLIP_DISTANCE0 + uint32(i))
		} else {
			demo.ctx.Disable(gl.CLIP_DISTANCE0 + uint32(i))
		}
	}

	model := m.Ident4()
	if demo.ShowLathe {
		model = m.HomogRotate3DY(m.DegToRad(float32(world.Time) * 20))
	}

	program := demo.program
	program.Use()

	program.SetMat4("u_model_matrix", model)
	program.SetMat4("u_view_matrix", demo.camera.ViewMatrix())
	program.SetGMat4("u_projection_matrix", world.Projection)
	program.SetMat3("u_nor_transform", model.Inv().Transpose().Mat3())

	program.SetGVec3("u_dir_light.direction", demo.Light.Direction)
	program.SetGVec3("u_dir_light.color", demo.Light.Color)
	program.SetVec3("u_view_pos", demo.camera.NewPosition)
	program.SetFloat("u_shininess", demo.Shininess)
	program.SetFloat("u_roughness", demo.Roughness)
	program.SetInt("u_lighting_model", int32(demo.Model))

	for i, plane := range demo.Planes {
		program.SetBool(fmt.Sprintf("u_plane_active[%d]", i), plane.Active)
		program.SetVec4(fmt.Sprintf("u_plane_equations[%d]", i), plane.Equation)
	}

	demo.texture.Bind(0)
	program.SetInt("u_sampler", 0)

	if demo.ShowLathe {
		demo.lathe.Draw()
	} else {
		demo.ball.Draw()
	}
	return nil
}

func (demo *Lighting) Destroy() {
	for _, mesh := range []*render.DeviceMesh{demo.ball, demo.lathe} {
		if mesh != nil {
			demo.ctx.DestroyGeometry(mesh)
		}
	}
	if demo.texture != nil {
		demo.texture.Destroy()
	}
	if demo.program != nil {
		demo.program.Destroy()
	}
}

func main() {
	cfg := app.DefaultConfig("Lighting")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := app.Run(cfg, NewLighting(cfg)); err != nil {
		log.Fatalln(err)
	}
}
