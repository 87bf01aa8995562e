package app

import (
	"testing"

	"github.com/adinfinit/g"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adinfit/glsteps/obj"
	"github.com/adinfit/glsteps/render"
)

func TestWorld_NextFrame(t *testing.T) {
	world := NewWorld()

	world.NextFrame(g.V2(800, 400), 10)
	assert.Equal(t, float32(0), world.DeltaTime)
	assert.Equal(t, 10.0, world.Time)
	assert.Equal(t, float32(2), world.Aspect())

	projection := world.Projection
	assert.Equal(t, g.Perspective(g.DegToRad(FieldOfView), 2, NearPlane, FarPlane), projection)

	world.NextFrame(g.V2(800, 400), 10.5)
	assert.InDelta(t, 0.5, world.DeltaTime, 1e-6)
	assert.Equal(t, projection, world.Projection)

	world.NextFrame(g.V2(400, 400), 10.75)
	assert.InDelta(t, 0.25, world.DeltaTime, 1e-6)
	assert.Equal(t, float32(1), world.Aspect())
	assert.NotEqual(t, projection, world.Projection)
}

func TestConfig_Resource(t *testing.T) {
	cfg := DefaultConfig("test")
	cfg.Resources = "assets"
	assert.Equal(t, "assets/materialBall/mesh.obj", cfg.Resource("materialBall", "mesh.obj"))
}

func TestMeshBuffers(t *testing.T) {
	mesh := &obj.Mesh{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		UVs:       []float32{0, 0, 1, 0, 0, 1},
		Indices:   []uint32{0, 1, 2},
	}

	buffers := MeshBuffers(mesh, false)
	require.Len(t, buffers, 3)
	assert.Equal(t, PositionAttribute, buffers[0].Name)
	assert.Equal(t, UVAttribute, buffers[2].Name)
	assert.Equal(t, 2, buffers[2].Components)

	buffers = MeshBuffers(mesh, true)
	require.Len(t, buffers, 4)
	assert.Equal(t, TangentAttribute, buffers[3].Name)
	assert.Equal(t, []float32{1, 0, 0, 1, 0, 0, 1, 0, 0}, buffers[3].Values)

	packed, err := render.Pack(buffers, nil, mesh.Indices)
	require.NoError(t, err)
	assert.Equal(t, 4*(3+3+2+3), packed.Stride)
}
