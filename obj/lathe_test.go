package obj

import (
	"math"
	"testing"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cylinder(t, phase float32) m.Vec3 {
	sn, cs := math.Sincos(float64(phase))
	return m.Vec3{float32(sn), float32(cs), t}
}

func TestLathe_Counts(t *testing.T) {
	mesh := Lathe(3, 8, false, cylinder)
	assert.Equal(t, 3*9, mesh.VertexCount())
	assert.Equal(t, 2*8*2, mesh.TriangleCount())
	assert.Len(t, mesh.Normals, len(mesh.Positions))
	assert.Len(t, mesh.UVs, 2*mesh.VertexCount())

	capped := Lathe(3, 8, true, cylinder)
	assert.Equal(t, 3*9+2, capped.VertexCount())
	assert.Equal(t, 2*8*2+2*8, capped.TriangleCount())

	for _, index := range capped.Indices {
		assert.Less(t, int(index), capped.VertexCount())
	}
}

func TestLathe_NormalsPointOutward(t *testing.T) {
	mesh := Lathe(3, 8, false, cylinder)

	// middle ring, away from the seam
	for pi := 1; pi < 8; pi++ {
		i := 9 + pi
		p := mesh.position(uint32(i))
		expected := m.Vec3{p[0], p[1], 0}.Normalize()
		normal := m.Vec3{mesh.Normals[3*i], mesh.Normals[3*i+1], mesh.Normals[3*i+2]}

		assert.InDelta(t, 1, normal.Len(), 1e-5)
		assert.InDelta(t, 1, normal.Dot(expected), 1e-4, "vertex %d", i)
	}
}

func TestLathe_UVs(t *testing.T) {
	mesh := Lathe(2, 4, false, cylinder)
	require.Equal(t, 10, mesh.VertexCount())

	assert.Equal(t, []float32{0, 0}, mesh.UVs[0:2])
	assert.Equal(t, []float32{1, 0}, mesh.UVs[8:10])
	assert.Equal(t, []float32{0.5, 1}, mesh.UVs[14:16])

	// the seam vertices share the position
	first, last := mesh.position(0), mesh.position(4)
	assert.InDelta(t, 0, first.Sub(last).Len(), 1e-5)
}

func TestLathe_Tangents(t *testing.T) {
	mesh := Lathe(3, 8, false, cylinder)
	tangents := mesh.Tangents()
	require.Len(t, tangents, len(mesh.Positions))

	// u grows with the phase, so the tangent follows the rotation direction
	i := 9 + 2
	p := mesh.position(uint32(i))
	tangent := m.Vec3{tangents[3*i], tangents[3*i+1], tangents[3*i+2]}
	rotation := m.Vec3{p[1], -p[0], 0}
	assert.Greater(t, tangent.Dot(rotation), float32(0))
}

func TestLathe_MinimumRings(t *testing.T) {
	mesh := Lathe(1, 2, false, cylinder)
	assert.Equal(t, 2*4, mesh.VertexCount())
	assert.Equal(t, 3*2, mesh.TriangleCount())

	for _, v := range mesh.UVs {
		assert.False(t, math.IsNaN(float64(v)))
	}
	for _, v := range mesh.Positions {
		assert.False(t, math.IsNaN(float64(v)))
	}
}
