// Package camera implements a free-look, free-move camera whose view is
// smoothed towards the input-driven state every time it is queried.
package camera

import (
	"math"

	m "github.com/go-gl/mathgl/mgl32"
)

type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	// MaxPitch keeps the camera from flipping over the poles.
	MaxPitch = 89.0

	DefaultMoveSpeed = 5.0
	DefaultLookSpeed = 10.0

	FastMultiplier = 5.0
)

// FlyThrough tracks two states: the raw position and angles integrated
// directly from input, and the smoothed ("new") values that follow them
// with an exponential low-pass filter and are used to build the view.
//
// Angles are in degrees.
type FlyThrough struct {
	Position m.Vec3
	Yaw      float32
	Pitch    float32

	MoveSpeed float32
	LookSpeed float32

	NewPosition m.Vec3
	NewYaw      float32
	NewPitch    float32

	worldUp m.Vec3

	forward m.Vec3
	right   m.Vec3
	up      m.Vec3

	moveMix    float32
	lookMix    float32
	multiplier float32
}

// New returns a camera with +Y as the world up direction.
func New(position m.Vec3, yaw, pitch float32) *FlyThrough {
	return NewWithUp(position, yaw, pitch, m.Vec3{0, 1, 0})
}

func NewWithUp(position m.Vec3, yaw, pitch float32, worldUp m.Vec3) *FlyThrough {
	cam := &FlyThrough{
		Position: position,
		Yaw:      yaw,
		Pitch:    clampPitch(pitch),

		MoveSpeed: DefaultMoveSpeed,
		LookSpeed: DefaultLookSpeed,

		NewPosition: position,
		NewYaw:      yaw,
		NewPitch:    clampPitch(pitch),

		worldUp: worldUp,

		moveMix:    0.9,
		lookMix:    0.7,
		multiplier: 1,
	}
	cam.updateBasis()
	return cam
}

func (cam *FlyThrough) Forward() m.Vec3 { return cam.forward }
func (cam *FlyThrough) Right() m.Vec3   { return cam.right }
func (cam *FlyThrough) Up() m.Vec3      { return cam.up }

// Fast switches the movement speed multiplier.
func (cam *FlyThrough) Fast(fast bool) {
	if fast {
		cam.multiplier = FastMultiplier
	} else {
		cam.multiplier = 1
	}
}

// Move translates the raw position along the camera basis.
func (cam *FlyThrough) Move(direction Direction, dt float32) {
	velocity := cam.multiplier * cam.MoveSpeed * dt

	switch direction {
	case Forward:
		cam.Position = cam.Position.Add(cam.forward.Mul(velocity))
	case Backward:
		cam.Position = cam.Position.Sub(cam.forward.Mul(velocity))
	case Left:
		cam.Position = cam.Position.Sub(cam.right.Mul(velocity))
	case Right:
		cam.Position = cam.Position.Add(cam.right.Mul(velocity))
	case Up:
		cam.Position = cam.Position.Add(cam.up.Mul(velocity))
	case Down:
		cam.Position = cam.Position.Sub(cam.up.Mul(velocity))
	}
}

// Look rotates the raw yaw and pitch by the given offsets.
func (cam *FlyThrough) Look(dx, dy, dt float32) {
	cam.Yaw += dx * cam.LookSpeed * dt
	cam.Pitch = clampPitch(cam.Pitch + dy*cam.LookSpeed*dt)
}

// ViewMatrix advances the smoothed state one step and returns the view for it.
func (cam *FlyThrough) ViewMatrix() m.Mat4 {
	cam.NewYaw = cam.lookMix*cam.NewYaw + (1-cam.lookMix)*cam.Yaw
	cam.NewPitch = clampPitch(cam.lookMix*cam.NewPitch + (1-cam.lookMix)*cam.Pitch)

	cam.updateBasis()

	cam.NewPosition = mix(cam.Position, cam.NewPosition, cam.moveMix)

	return m.LookAtV(cam.NewPosition, cam.NewPosition.Add(cam.forward), cam.up)
}

func (cam *FlyThrough) updateBasis() {
	yaw := float64(m.DegToRad(cam.NewYaw))
	pitch := float64(m.DegToRad(cam.NewPitch))

	cam.forward = m.Vec3{
		float32(math.Cos(pitch) * -math.Sin(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * -math.Cos(yaw)),
	}.Normalize()
	cam.right = cam.forward.Cross(cam.worldUp).Normalize()
	cam.up = cam.right.Cross(cam.forward).Normalize()
}

func clampPitch(pitch float32) float32 {
	if pitch > MaxPitch {
		return MaxPitch
	}
	if pitch < -MaxPitch {
		return -MaxPitch
	}
	return pitch
}

// mix linearly interpolates between a and b, t = 1 returns b.
func mix(a, b m.Vec3, t float32) m.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
