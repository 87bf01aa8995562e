package app

import (
	"log"

	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	FieldOfView = 60
	NearPlane   = 0.1
	FarPlane    = 100.0
)

// World is the per-frame state shared with the demo.
type World struct {
	ScreenSize g.Vec2
	Projection g.Mat4

	Time      float64
	DeltaTime float32

	Controls Controls

	started bool
}

func NewWorld() *World {
	return &World{}
}

// Aspect is the width to height ratio of the screen.
func (world *World) Aspect() float32 {
	if world.ScreenSize.Y == 0 {
		return 1
	}
	return world.ScreenSize.X / world.ScreenSize.Y
}

func (world *World) NextFrameGLFW(window *glfw.Window) {
	width, height := window.GetFramebufferSize()
	screenSize := g.V2(float32(width), float32(height))
	now := glfw.GetTime()

	if world.ScreenSize != screenSize {
		gl.Viewport(0, 0, int32(width), int32(height))
	}
	world.NextFrame(screenSize, now)
}

func (world *World) NextFrame(screenSize g.Vec2, now float64) {
	if world.ScreenSize != screenSize {
		log.Println(screenSize, screenSize.X/screenSize.Y)
		world.ScreenSize = screenSize
		world.Projection = g.Perspective(g.DegToRad(FieldOfView), world.Aspect(), NearPlane, FarPlane)
	}

	// the first frame has no previous time to measure against
	if world.started {
		world.DeltaTime = float32(now - world.Time)
	}
	world.started = true
	world.Time = now
}
