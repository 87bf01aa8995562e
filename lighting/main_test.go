package main

import (
	"math"
	"testing"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/adinfit/glsteps/app"
)

func TestFishProfile(t *testing.T) {
	// the profile closes to a point at the head
	assert.Equal(t, m.Vec3{0, 0, -1.5}, fish(0, 1))

	tail := fish(1, 0)
	assert.InDelta(t, 1.5, tail.Z(), 1e-6)
	assert.InDelta(t, 12.291-20+8.508, tail.Y(), 1e-4)
}

func TestPlanesStartDisabled(t *testing.T) {
	demo := NewLighting(app.DefaultConfig("test"))
	for _, plane := range demo.Planes {
		assert.False(t, plane.Active)
		assert.Equal(t, m.Vec4{0, 1, 0, 0}, plane.Equation)
	}
	assert.Equal(t, "blinn-phong", lightingModels[demo.Model])
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), clamp(-0.1, 0, 1))
	assert.Equal(t, float32(1), clamp(1.1, 0, 1))
	assert.Equal(t, float32(0.5), clamp(0.5, 0, 1))
}

func TestClippingPlaneRotate(t *testing.T) {
	plane := ClippingPlane{Equation: m.Vec4{0, 1, 0, 0.25}}

	plane.Rotate(0, math.Pi/2)
	assert.InDelta(t, 0, plane.Equation.X(), 1e-5)
	assert.InDelta(t, 0, plane.Equation.Y(), 1e-5)
	assert.InDelta(t, 1, plane.Equation.Z(), 1e-5)
	assert.Equal(t, float32(0.25), plane.Equation.W())

	plane.Rotate(math.Pi/2, 0)
	assert.InDelta(t, 1, plane.Equation.X(), 1e-5)
	assert.InDelta(t, 0, plane.Equation.Z(), 1e-5)
	assert.InDelta(t, 1, plane.Equation.Vec3().Len(), 1e-5)
}
