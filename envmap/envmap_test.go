package envmap

import (
	"errors"
	"sync"
	"testing"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adinfit/glsteps/render"
)

func TestCaptureViews(t *testing.T) {
	forward := []m.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}

	for face, view := range CaptureViews() {
		dir := view.Mul4x1(forward[face].Vec4(0)).Vec3()
		assert.InDelta(t, 0, dir.X(), 1e-6, "face %d", face)
		assert.InDelta(t, 0, dir.Y(), 1e-6, "face %d", face)
		assert.InDelta(t, -1, dir.Z(), 1e-6, "face %d", face)
	}
}

func TestCaptureProjection(t *testing.T) {
	projection := CaptureProjection()
	// a point on the face corner at the far plane maps to the clip corner
	clip := projection.Mul4x1(m.Vec4{5, 5, -5, 1})
	assert.InDelta(t, 1, clip.X()/clip.W(), 1e-5)
	assert.InDelta(t, 1, clip.Y()/clip.W(), 1e-5)
}

func TestSpecularLevels(t *testing.T) {
	assert.Equal(t, 8, SpecularLevels(SpecularSize))
	assert.Equal(t, 1, SpecularLevels(1))
}

func TestLevelRoughness(t *testing.T) {
	levels := SpecularLevels(SpecularSize)
	assert.Equal(t, float32(0), LevelRoughness(0, levels))
	assert.Equal(t, float32(1), LevelRoughness(levels-1, levels))
	assert.InDelta(t, 3.0/7.0, LevelRoughness(3, levels), 1e-6)
	assert.Equal(t, float32(0), LevelRoughness(0, 1))
}

func TestUnitCube(t *testing.T) {
	packed, err := render.Pack([]render.FloatBuffer{UnitCube()}, nil, UnitCubeIndices)
	require.NoError(t, err)
	assert.Equal(t, 8, packed.VertexCount)
	assert.Len(t, UnitCubeIndices, 36)

	_, err = render.Pack([]render.FloatBuffer{Quad()}, nil, QuadIndices)
	require.NoError(t, err)
}

type fakeLoader struct {
	mu     sync.Mutex
	loaded []string
	fail   string
}

func (loader *fakeLoader) load(path string) (*render.HDRImage, error) {
	loader.mu.Lock()
	loader.loaded = append(loader.loaded, path)
	loader.mu.Unlock()

	if path == loader.fail {
		return nil, errors.New("broken file")
	}
	return &render.HDRImage{Width: len(path), Height: 1, Pix: make([]float32, 3*len(path))}, nil
}

func TestDecodeSources(t *testing.T) {
	sources := []Source{
		{Name: "loft", Path: "loft.hdr"},
		{Name: "arches", Path: "arches.hdr", IrradiancePath: "arches_irradiance.hdr"},
		{Name: "studio", Path: "studio_small.hdr"},
	}

	loader := &fakeLoader{}
	decoded, err := decodeSources(sources, loader.load)
	require.NoError(t, err)
	require.Len(t, decoded, 3)

	assert.ElementsMatch(t, []string{"loft.hdr", "arches.hdr", "arches_irradiance.hdr", "studio_small.hdr"}, loader.loaded)

	for i, d := range decoded {
		assert.Equal(t, sources[i], d.Source)
		require.NotNil(t, d.Radiance)
		assert.Equal(t, len(sources[i].Path), d.Radiance.Width)
	}

	assert.Nil(t, decoded[0].Irradiance)
	require.NotNil(t, decoded[1].Irradiance)
	assert.Equal(t, len("arches_irradiance.hdr"), decoded[1].Irradiance.Width)
}

func TestDecodeSources_Error(t *testing.T) {
	sources := []Source{
		{Name: "loft", Path: "loft.hdr"},
		{Name: "arches", Path: "arches.hdr", IrradiancePath: "arches_irradiance.hdr"},
	}

	loader := &fakeLoader{fail: "arches_irradiance.hdr"}
	decoded, err := decodeSources(sources, loader.load)
	require.Error(t, err)
	assert.Nil(t, decoded)
	assert.Contains(t, err.Error(), `environment "arches" irradiance: broken file`)
}
