package camera

import (
	"math/rand"
	"testing"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// assertVec compares with an absolute tolerance, components that should
// be zero pick up rounding from sin and cos.
func assertVec(t *testing.T, expected, actual m.Vec3) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-5, "expected %v, got %v", expected, actual)
	}
}

func TestNew_Basis(t *testing.T) {
	cam := New(m.Vec3{}, 0, 0)

	assertVec(t, m.Vec3{0, 0, -1}, cam.Forward())
	assertVec(t, m.Vec3{1, 0, 0}, cam.Right())
	assertVec(t, m.Vec3{0, 1, 0}, cam.Up())
}

func TestLook_PitchClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cam := New(m.Vec3{0, 1, 4}, 0, -20)

	for i := 0; i < 1000; i++ {
		dx := rng.Float32()*400 - 200
		dy := rng.Float32()*400 - 200
		cam.Look(dx, dy, rng.Float32()*0.1)
		cam.ViewMatrix()

		assert.LessOrEqual(t, cam.Pitch, float32(MaxPitch))
		assert.GreaterOrEqual(t, cam.Pitch, float32(-MaxPitch))
		assert.LessOrEqual(t, cam.NewPitch, float32(MaxPitch))
		assert.GreaterOrEqual(t, cam.NewPitch, float32(-MaxPitch))
	}
}

func TestLook_PitchClampedWithoutViewMatrix(t *testing.T) {
	cam := New(m.Vec3{}, 0, 0)

	cam.Look(0, 1000, 1)
	assert.Equal(t, float32(MaxPitch), cam.Pitch)

	cam.Look(0, -5000, 1)
	assert.Equal(t, float32(-MaxPitch), cam.Pitch)
}

func TestViewMatrix_PositionConverges(t *testing.T) {
	cam := New(m.Vec3{}, 30, 10)
	cam.Position = m.Vec3{10, -4, 7}

	last := cam.Position.Sub(cam.NewPosition).Len()
	for i := 0; i < 200; i++ {
		cam.ViewMatrix()
		distance := cam.Position.Sub(cam.NewPosition).Len()
		assert.Less(t, distance, last, "step %d", i)
		last = distance
		if distance < 1e-3 {
			break
		}
	}
	assert.Less(t, last, float32(1e-2))
}

func TestViewMatrix_AnglesConverge(t *testing.T) {
	cam := New(m.Vec3{}, 0, 0)
	cam.Look(9, 6, 1)

	for i := 0; i < 100; i++ {
		cam.ViewMatrix()
	}
	assert.InDelta(t, cam.Yaw, cam.NewYaw, 1e-3)
	assert.InDelta(t, cam.Pitch, cam.NewPitch, 1e-3)
}

func TestViewMatrix_AtRest(t *testing.T) {
	eye := m.Vec3{1, 2, 3}
	cam := New(eye, 0, 0)

	view := cam.ViewMatrix()
	expected := m.LookAtV(eye, eye.Add(m.Vec3{0, 0, -1}), m.Vec3{0, 1, 0})
	for i := range expected {
		assert.InDelta(t, expected[i], view[i], 1e-5, "expected %v, got %v", expected, view)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		Direction Direction
		Expected  m.Vec3
	}{
		{Forward, m.Vec3{0, 0, -5}},
		{Backward, m.Vec3{0, 0, 5}},
		{Left, m.Vec3{-5, 0, 0}},
		{Right, m.Vec3{5, 0, 0}},
		{Up, m.Vec3{0, 5, 0}},
		{Down, m.Vec3{0, -5, 0}},
	}

	for _, test := range tests {
		cam := New(m.Vec3{}, 0, 0)
		cam.Move(test.Direction, 1)
		assertVec(t, test.Expected, cam.Position)
		// the smoothed position only follows on ViewMatrix
		assertVec(t, m.Vec3{}, cam.NewPosition)
	}
}

func TestMove_Fast(t *testing.T) {
	cam := New(m.Vec3{}, 0, 0)
	cam.MoveSpeed = 2

	cam.Fast(true)
	cam.Move(Forward, 0.5)
	assertVec(t, m.Vec3{0, 0, -5}, cam.Position)

	cam.Fast(false)
	cam.Move(Forward, 0.5)
	assertVec(t, m.Vec3{0, 0, -6}, cam.Position)
}

func TestMove_FollowsYaw(t *testing.T) {
	cam := New(m.Vec3{}, 90, 0)
	cam.Move(Forward, 1)

	// yaw 90 turns forward from -z to -x
	assertVec(t, m.Vec3{-5, 0, 0}, cam.Position)
}
