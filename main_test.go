package main

import (
	"path/filepath"
	"testing"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adinfit/glsteps/app"
)

func TestSources(t *testing.T) {
	cfg := app.DefaultConfig("test")
	cfg.Resources = "assets"
	demo := NewIBL(cfg)

	require.Len(t, demo.sources, 3)
	source := demo.sources[1]
	assert.Equal(t, "paperMill", source.Name)
	assert.Equal(t, filepath.Join("assets", "environmentMaps", "paperMill.hdr"), source.Path)
	assert.Equal(t, filepath.Join("assets", "environmentMaps", "paperMillIrradiance.hdr"), source.IrradiancePath)
}

func TestWrapDegrees(t *testing.T) {
	assert.Equal(t, float32(-170), wrapDegrees(190))
	assert.Equal(t, float32(170), wrapDegrees(-190))
	assert.Equal(t, float32(45), wrapDegrees(45))
}

func TestModelMatrix(t *testing.T) {
	demo := NewIBL(app.DefaultConfig("test"))
	model, ident := demo.ModelMatrix(), m.Ident4()
	for i := range ident {
		assert.InDelta(t, ident[i], model[i], 1e-6)
	}

	demo.Rotation = m.Vec3{0, 90, 0}
	x := demo.ModelMatrix().Mul4x1(m.Vec4{1, 0, 0, 0})
	assert.InDelta(t, 0, x.X(), 1e-6)
	assert.InDelta(t, -1, x.Z(), 1e-6)
}

func TestSkyboxLevels(t *testing.T) {
	demo := NewIBL(app.DefaultConfig("test"))
	assert.Equal(t, float32(7), demo.maxSkyboxLevel())
}

func TestProjectionAspect(t *testing.T) {
	world := app.NewWorld()
	world.ScreenSize.X, world.ScreenSize.Y = 200, 100

	projection := Projection(world)
	assert.InDelta(t, projection.At(1, 1)/2, projection.At(0, 0), 1e-6)
}
