package app

import (
	"testing"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/adinfit/glsteps/camera"
)

func assertVec3(t *testing.T, expected, actual m.Vec3) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-5, "component %d of %v", i, actual)
	}
}

func TestControls_HandleKey(t *testing.T) {
	var controls Controls

	controls.HandleKey(glfw.KeyW, glfw.Press, 0)
	controls.HandleKey(glfw.KeyA, glfw.Repeat, 0)
	controls.HandleKey(glfw.KeyQ, glfw.Press, glfw.ModShift)
	assert.True(t, controls.Forward)
	assert.True(t, controls.Left)
	assert.True(t, controls.Up)
	assert.True(t, controls.Fast)

	controls.HandleKey(glfw.KeyW, glfw.Release, 0)
	assert.False(t, controls.Forward)
	assert.False(t, controls.Fast)

	controls.HandleKey(glfw.KeyE, glfw.Press, glfw.ModShift|glfw.ModControl)
	assert.True(t, controls.Down)
	assert.True(t, controls.Fast)
}

func TestControls_ApplyPriority(t *testing.T) {
	tests := []struct {
		Name     string
		Controls Controls
		Expected m.Vec3
	}{
		{"forward", Controls{Forward: true}, m.Vec3{0, 0, -5}},
		{"backward", Controls{Backward: true}, m.Vec3{0, 0, 5}},
		{"forward beats backward", Controls{Forward: true, Backward: true}, m.Vec3{0, 0, -5}},
		{"left beats right", Controls{Left: true, Right: true}, m.Vec3{-5, 0, 0}},
		{"right", Controls{Right: true}, m.Vec3{5, 0, 0}},
		{"up beats down", Controls{Up: true, Down: true}, m.Vec3{0, 5, 0}},
		{"down", Controls{Down: true}, m.Vec3{0, -5, 0}},
		{"combined", Controls{Forward: true, Right: true, Up: true}, m.Vec3{5, 5, -5}},
		{"fast", Controls{Forward: true, Fast: true}, m.Vec3{0, 0, -25}},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			cam := camera.New(m.Vec3{}, 0, 0)
			controls := test.Controls
			controls.Apply(cam, 1)
			assertVec3(t, test.Expected, cam.Position)
		})
	}
}

func TestControls_Look(t *testing.T) {
	cam := camera.New(m.Vec3{}, 0, 0)
	var controls Controls

	// moving without the button held only records the position
	controls.MouseMove(10, 20)
	controls.Apply(cam, 0.1)
	assert.Equal(t, float32(0), cam.Yaw)
	assert.Equal(t, float32(0), cam.Pitch)

	controls.Grab(true)
	controls.MouseMove(15, 18)
	controls.Apply(cam, 0.1)
	assert.InDelta(t, -5, cam.Yaw, 1e-4)
	assert.InDelta(t, 2, cam.Pitch, 1e-4)

	// no movement since the last frame
	controls.Apply(cam, 0.1)
	assert.InDelta(t, -5, cam.Yaw, 1e-4)
	assert.InDelta(t, 2, cam.Pitch, 1e-4)

	controls.Grab(false)
	controls.MouseMove(100, 100)
	controls.Apply(cam, 0.1)
	assert.InDelta(t, -5, cam.Yaw, 1e-4)
}
