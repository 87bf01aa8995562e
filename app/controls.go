package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/adinfit/glsteps/camera"
)

// Controls maps keyboard and mouse state onto a fly-through camera.
//
//	W/S   forward, backward
//	A/D   left, right
//	Q/E   up, down
//	shift fast movement
//	RMB   hold to look around
type Controls struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Up       bool
	Down     bool
	Fast     bool

	Grabbed bool

	MouseX, MouseY         float64
	LastMouseX, LastMouseY float64
}

func (controls *Controls) HandleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	controls.Fast = mods&glfw.ModShift == glfw.ModShift

	pressed := action != glfw.Release
	switch key {
	case glfw.KeyW:
		controls.Forward = pressed
	case glfw.KeyS:
		controls.Backward = pressed
	case glfw.KeyA:
		controls.Left = pressed
	case glfw.KeyD:
		controls.Right = pressed
	case glfw.KeyQ:
		controls.Up = pressed
	case glfw.KeyE:
		controls.Down = pressed
	}
}

func (controls *Controls) MouseMove(x, y float64) {
	controls.MouseX, controls.MouseY = x, y
}

func (controls *Controls) Grab(grab bool) { controls.Grabbed = grab }

// Apply moves cam according to the held keys and, while grabbed, turns it
// by the mouse movement since the last call.
func (controls *Controls) Apply(cam *camera.FlyThrough, dt float32) {
	cam.Fast(controls.Fast)

	if controls.Forward {
		cam.Move(camera.Forward, dt)
	} else if controls.Backward {
		cam.Move(camera.Backward, dt)
	}

	if controls.Left {
		cam.Move(camera.Left, dt)
	} else if controls.Right {
		cam.Move(camera.Right, dt)
	}

	if controls.Up {
		cam.Move(camera.Up, dt)
	} else if controls.Down {
		cam.Move(camera.Down, dt)
	}

	if controls.Grabbed {
		cam.Look(
			float32(controls.LastMouseX-controls.MouseX),
			float32(controls.LastMouseY-controls.MouseY),
			dt)
	}

	controls.LastMouseX = controls.MouseX
	controls.LastMouseY = controls.MouseY
}
