package obj

import (
	"strings"
	"testing"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tangentAt(tangents []float32, i int) m.Vec3 {
	return m.Vec3{tangents[3*i], tangents[3*i+1], tangents[3*i+2]}
}

func TestTangents_Quad(t *testing.T) {
	mesh, err := Parse(strings.NewReader(quad))
	require.NoError(t, err)

	tangents := mesh.Tangents()
	require.Len(t, tangents, 3*mesh.VertexCount())

	// shared corners accumulate both triangles
	assert.Equal(t, m.Vec3{2, 0, 0}, tangentAt(tangents, 0))
	assert.Equal(t, m.Vec3{1, 0, 0}, tangentAt(tangents, 1))
	assert.Equal(t, m.Vec3{2, 0, 0}, tangentAt(tangents, 2))
	assert.Equal(t, m.Vec3{1, 0, 0}, tangentAt(tangents, 3))
}

func TestTangents_ParallelToU(t *testing.T) {
	// quad in the yz plane, U runs along -z
	positions := []float32{
		0, 0, 0,
		0, 0, -2,
		0, 3, -2,
		0, 3, 0,
	}
	uvs := []float32{
		0, 0,
		1, 0,
		1, 1,
		0, 1,
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}

	tangents := make([]float32, len(positions))
	GenerateTangents(indices, positions, uvs, tangents)

	u := m.Vec3{0, 0, -1}
	for i := 0; i < 4; i++ {
		tangent := tangentAt(tangents, i)
		assert.Greater(t, tangent.Len(), float32(0))
		assert.InDelta(t, 0, tangent.Cross(u).Len(), 1e-6, "vertex %d: %v", i, tangent)
		assert.Greater(t, tangent.Dot(u), float32(0))
	}
}

func TestTangents_NotNormalized(t *testing.T) {
	positions := []float32{0, 0, 0, 4, 0, 0, 0, 4, 0}
	uvs := []float32{0, 0, 1, 0, 0, 1}
	tangents := make([]float32, 9)

	GenerateTangents([]uint32{0, 1, 2}, positions, uvs, tangents)
	assert.Equal(t, []float32{4, 0, 0, 4, 0, 0, 4, 0, 0}, tangents)
}

func TestTangents_DegenerateUVsSkipped(t *testing.T) {
	positions := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	uvs := []float32{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
	tangents := make([]float32, 9)

	GenerateTangents([]uint32{0, 1, 2}, positions, uvs, tangents)
	assert.Equal(t, make([]float32, 9), tangents)
}
