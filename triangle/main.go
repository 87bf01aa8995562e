// Command triangle draws a textured, colored square that can be moved
// around with the keyboard and the mouse wheel.
//
//	W/A/S/D    move the square
//	scroll     move the square closer or further
//	T          toggle the texture
//	C          toggle the color
//	F          switch nearest/linear filtering
//	1/2        cycle the S/T wrap mode
//	left/right rotate the square
//	up/down    rotate the texture coordinates
package main

import (
	"flag"
	"log"

	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/glsteps/app"
	"github.com/adinfit/glsteps/render"
)

var wrapModes = []int32{
	gl.CLAMP_TO_EDGE,
	gl.CLAMP_TO_BORDER,
	gl.MIRRORED_REPEAT,
	gl.REPEAT,
}

var wrapNames = []string{"clamp to edge", "clamp to border", "mirrored repeat", "repeat"}

type Square struct {
	Position g.Vec3
	Angle    float32
	Velocity float32
	Color    m.Vec4

	HasColor   bool
	HasTexture bool
}

type Triangle struct {
	ctx *render.Context

	program *render.Program
	texture *render.Texture
	mesh    *render.DeviceMesh

	Square Square

	Linear       bool
	WrapS, WrapT int
	TextureAngle float32

	up, down, left, right bool
	zoom                  float64
	rotate                float32
	rotateTexture         float32
}

func NewTriangle() *Triangle {
	return &Triangle{
		Square: Square{
			Position:   g.V3(0, 0, -5),
			Velocity:   6,
			Color:      m.Vec4{1, 1, 1, 1},
			HasColor:   true,
			HasTexture: true,
		},
		WrapS: 3,
		WrapT: 3,
	}
}

func (demo *Triangle) Init(ctx *render.Context, world *app.World) error {
	demo.ctx = ctx

	var err error
	demo.program, err = render.CreateProgram(
		render.ShaderSource{Type: gl.VERTEX_SHADER, Source: vertexShader},
		render.ShaderSource{Type: gl.FRAGMENT_SHADER, Source: fragmentShader},
	)
	if err != nil {
		return err
	}
	if err := demo.program.RequireUniforms("u_projection", "u_transform", "u_angle", "u_color", "u_has_color", "u_has_texture"); err != nil {
		return err
	}

	// 2x2 checker, repeated five times over the square
	demo.texture, err = render.NewTexture2D([]byte{0, 255, 255, 0}, 2, 2, 1, render.TextureParams{
		WrapS:     gl.REPEAT,
		WrapT:     gl.REPEAT,
		MinFilter: gl.NEAREST,
		MagFilter: gl.NEAREST,
	})
	if err != nil {
		return err
	}

	demo.mesh, err = ctx.CreatePackedStaticGeometry(demo.program,
		[]render.FloatBuffer{
			{Name: "a_pos", Components: 2, Values: []float32{
				-1, -1,
				1, -1,
				1, 1,
				-1, 1,
			}},
			{Name: "a_tex", Components: 2, Values: []float32{
				0, 0,
				5, 0,
				5, 5,
				0, 5,
			}},
		}, nil,
		[]uint32{0, 1, 2, 0, 2, 3},
	)
	if err != nil {
		return err
	}

	gl.ClearColor(0.10, 0.25, 0.15, 1.0)
	return nil
}

func (demo *Triangle) HandleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	pressed := action != glfw.Release
	switch key {
	case glfw.KeyW:
		demo.up = pressed
	case glfw.KeyS:
		demo.down = pressed
	case glfw.KeyA:
		demo.left = pressed
	case glfw.KeyD:
		demo.right = pressed
	case glfw.KeyLeft:
		demo.rotate = direction(pressed, 1)
	case glfw.KeyRight:
		demo.rotate = direction(pressed, -1)
	case glfw.KeyUp:
		demo.rotateTexture = direction(pressed, 1)
	case glfw.KeyDown:
		demo.rotateTexture = direction(pressed, -1)
	}

	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyT:
		demo.Square.HasTexture = !demo.Square.HasTexture
		log.Println("texture:", demo.Square.HasTexture)
	case glfw.KeyC:
		demo.Square.HasColor = !demo.Square.HasColor
		log.Println("color:", demo.Square.HasColor)
	case glfw.KeyF:
		demo.Linear = !demo.Linear
		log.Println("linear filtering:", demo.Linear)
	case glfw.Key1:
		demo.WrapS = (demo.WrapS + 1) % len(wrapModes)
		log.Println("wrap s:", wrapNames[demo.WrapS])
	case glfw.Key2:
		demo.WrapT = (demo.WrapT + 1) % len(wrapModes)
		log.Println("wrap t:", wrapNames[demo.WrapT])
	}
}

func direction(pressed bool, sign float32) float32 {
	if pressed {
		return sign
	}
	return 0
}

func (demo *Triangle) HandleScroll(dx, dy float64) { demo.zoom += dy }

func (demo *Triangle) Frame(world *app.World) error {
	dt := world.DeltaTime
	square := &demo.Square

	if demo.up {
		square.Position.Y += dt * square.Velocity
	} else if demo.down {
		square.Position.Y -= dt * square.Velocity
	}
	if demo.left {
		square.Position.X -= dt * square.Velocity
	} else if demo.right {
		square.Position.X += dt * square.Velocity
	}
	if demo.zoom != 0 {
		square.Position.Z += float32(demo.zoom) * 2 * dt * square.Velocity
		demo.zoom = 0
	}
	square.Angle += demo.rotate * 90 * dt
	demo.TextureAngle += demo.rotateTexture * 90 * dt

	gl.Clear(gl.COLOR_BUFFER_BIT)

	demo.program.Use()
	demo.adjustTexture()

	transform := m.Translate3D(square.Position.X, square.Position.Y, square.Position.Z).
		Mul4(m.HomogRotate3DZ(m.DegToRad(square.Angle)))

	demo.program.SetGMat4("u_projection", world.Projection)
	demo.program.SetMat4("u_transform", transform)
	demo.program.SetFloat("u_angle", m.DegToRad(demo.TextureAngle))
	demo.program.SetVec4("u_color", square.Color)
	demo.program.SetBool("u_has_color", square.HasColor)
	demo.program.SetBool("u_has_texture", square.HasTexture)
	demo.program.SetInt("u_sampler", 0)

	demo.mesh.Draw()
	return nil
}

func (demo *Triangle) adjustTexture() {
	demo.texture.Bind(0)

	filter := int32(gl.NEAREST)
	if demo.Linear {
		filter = gl.LINEAR
	}
	demo.texture.SetParameter(gl.TEXTURE_MIN_FILTER, filter)
	demo.texture.SetParameter(gl.TEXTURE_MAG_FILTER, filter)
	demo.texture.SetParameter(gl.TEXTURE_WRAP_S, wrapModes[demo.WrapS])
	demo.texture.SetParameter(gl.TEXTURE_WRAP_T, wrapModes[demo.WrapT])
}

func (demo *Triangle) Destroy() {
	if demo.mesh != nil {
		demo.ctx.DestroyGeometry(demo.mesh)
	}
	if demo.texture != nil {
		demo.texture.Destroy()
	}
	if demo.program != nil {
		demo.program.Destroy()
	}
}

func main() {
	cfg := app.DefaultConfig("Hello, World")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := app.Run(cfg, NewTriangle()); err != nil {
		log.Fatalln(err)
	}
}
