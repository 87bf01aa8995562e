package obj

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quad = `# unit quad in the xy plane
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
s off
f 1/1/1 2/2/1 3/3/1
f 1/1/1 3/3/1 4/4/1
`

// cube faces share positions but not normals, so corners get split.
const cube = `
v -1 -1 1
v 1 -1 1
v 1 1 1
v -1 1 1
v -1 -1 -1
v 1 -1 -1
v 1 1 -1
v -1 1 -1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
vn 0 0 -1
vn 1 0 0
vn -1 0 0
vn 0 1 0
vn 0 -1 0
f 1/1/1 2/2/1 3/3/1
f 1/1/1 3/3/1 4/4/1
f 6/1/2 5/2/2 8/3/2
f 6/1/2 8/3/2 7/4/2
f 2/1/3 6/2/3 7/3/3
f 2/1/3 7/3/3 3/4/3
f 5/1/4 1/2/4 4/3/4
f 5/1/4 4/3/4 8/4/4
f 4/1/5 3/2/5 7/3/5
f 4/1/5 7/3/5 8/4/5
f 5/1/6 6/2/6 2/3/6
f 5/1/6 2/3/6 1/4/6
`

func TestParse_Quad(t *testing.T) {
	mesh, err := Parse(strings.NewReader(quad))
	require.NoError(t, err)

	assert.Equal(t, 4, mesh.VertexCount())
	assert.Equal(t, 2, mesh.TriangleCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, mesh.Indices)
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, mesh.Positions)
	assert.Equal(t, []float32{0, 0, 1, 0, 1, 1, 0, 1}, mesh.UVs)
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1}, mesh.Normals)
}

func TestParse_IndexCountAndUniqueVertices(t *testing.T) {
	for name, source := range map[string]string{"quad": quad, "cube": cube} {
		t.Run(name, func(t *testing.T) {
			mesh, err := Parse(strings.NewReader(source))
			require.NoError(t, err)

			faces := strings.Count(source, "\nf ")
			assert.Len(t, mesh.Indices, 3*faces)

			n := mesh.VertexCount()
			assert.Len(t, mesh.Normals, 3*n)
			assert.Len(t, mesh.UVs, 2*n)

			type vertex struct {
				p, n [3]float32
				uv   [2]float32
			}
			seen := map[vertex]bool{}
			for i := 0; i < n; i++ {
				var v vertex
				copy(v.p[:], mesh.Positions[3*i:])
				copy(v.n[:], mesh.Normals[3*i:])
				copy(v.uv[:], mesh.UVs[2*i:])
				assert.False(t, seen[v], "vertex %d duplicated", i)
				seen[v] = true
			}

			for _, index := range mesh.Indices {
				assert.Less(t, int(index), n)
			}
		})
	}
}

func TestParse_CubeSplitsCorners(t *testing.T) {
	mesh, err := Parse(strings.NewReader(cube))
	require.NoError(t, err)

	assert.Equal(t, 24, mesh.VertexCount())
	assert.Equal(t, 12, mesh.TriangleCount())
}

func TestParse_Deterministic(t *testing.T) {
	a, err := Parse(strings.NewReader(cube))
	require.NoError(t, err)
	b, err := Parse(strings.NewReader(cube))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestParse_FacesBeforeVertices(t *testing.T) {
	source := `
f 1/1/1 2/2/1 3/3/1
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
`
	mesh, err := Parse(strings.NewReader(source))
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, mesh.Positions)
}

func TestParse_RelativeIndices(t *testing.T) {
	source := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f -3/-3/-1 -2/-2/-1 -1/-1/-1
`
	mesh, err := Parse(strings.NewReader(source))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, mesh.Indices)
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 1}, mesh.UVs)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		Name   string
		Source string
		Error  string
	}{
		{"quad face", "v 0 0 0\nf 1/1/1 1/1/1 1/1/1 1/1/1\n", "line 2: face has 4 vertices"},
		{"missing normal", "v 0 0 0\nvt 0 0\nf 1/1 1/1 1/1\n", "must be position/uv/normal"},
		{"bad number", "v 0 x 0\n", "line 1: invalid number"},
		{"short vertex", "v 0 0\n", "expected 3 values"},
		{"zero index", "f 0/1/1 1/1/1 1/1/1\n", "must not be 0"},
		{"out of range", "v 0 0 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 2/1/1 1/1/1\n", "position index 2 out of range"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(test.Source))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.Error)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quad.obj")
	require.NoError(t, os.WriteFile(path, []byte(quad), 0o644))

	mesh, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, mesh.VertexCount())

	_, err = Load(filepath.Join(dir, "missing.obj"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.obj")
}
