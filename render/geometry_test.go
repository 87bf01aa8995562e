package render

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatAt(data []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data[offset:]))
}

func intAt(data []byte, offset int) int32 {
	return int32(binary.LittleEndian.Uint32(data[offset:]))
}

func TestPack_Interleaves(t *testing.T) {
	floats := []FloatBuffer{
		{Name: "a_pos", Components: 3, Values: []float32{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{Name: "a_tex", Components: 2, Values: []float32{10, 11, 12, 13, 14, 15}},
	}
	ints := []IntBuffer{
		{Name: "a_id", Components: 1, Values: []int32{-1, 7, 42}},
	}

	packed, err := Pack(floats, ints, []uint32{0, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, 3, packed.VertexCount)
	assert.Equal(t, 4*(3+2+1), packed.Stride)
	assert.Len(t, packed.Data, 3*packed.Stride)
	assert.Equal(t, []Attribute{
		{Name: "a_pos", Components: 3, Offset: 0},
		{Name: "a_tex", Components: 2, Offset: 12},
		{Name: "a_id", Components: 1, Offset: 20, Integer: true},
	}, packed.Attributes)

	for v := 0; v < 3; v++ {
		base := v * packed.Stride
		for c := 0; c < 3; c++ {
			assert.Equal(t, float32(3*v+c), floatAt(packed.Data, base+4*c))
		}
		for c := 0; c < 2; c++ {
			assert.Equal(t, float32(10+2*v+c), floatAt(packed.Data, base+12+4*c))
		}
		assert.Equal(t, ints[0].Values[v], intAt(packed.Data, base+20))
	}
}

func TestPack_Errors(t *testing.T) {
	pos := FloatBuffer{Name: "a_pos", Components: 3, Values: make([]float32, 12)}

	tests := []struct {
		Name    string
		Floats  []FloatBuffer
		Ints    []IntBuffer
		Indices []uint32
		Error   string
	}{
		{
			Name:    "vertex count mismatch",
			Floats:  []FloatBuffer{pos, {Name: "a_tex", Components: 2, Values: make([]float32, 6)}},
			Indices: []uint32{0, 1, 2},
			Error:   `attribute "a_tex": has 3 vertices, expected 4`,
		},
		{
			Name:    "int count mismatch",
			Floats:  []FloatBuffer{pos},
			Ints:    []IntBuffer{{Name: "a_id", Components: 1, Values: make([]int32, 5)}},
			Indices: []uint32{0, 1, 2},
			Error:   `attribute "a_id": has 5 vertices, expected 4`,
		},
		{
			Name:    "partial vertex",
			Floats:  []FloatBuffer{{Name: "a_pos", Components: 3, Values: make([]float32, 10)}},
			Indices: []uint32{0, 1, 2},
			Error:   "not a multiple of 3 components",
		},
		{
			Name:    "zero components",
			Floats:  []FloatBuffer{{Name: "a_pos", Components: 0}},
			Indices: []uint32{0},
			Error:   "invalid component count 0",
		},
		{
			Name:    "index out of range",
			Floats:  []FloatBuffer{pos},
			Indices: []uint32{0, 1, 4},
			Error:   "index 4 at 2 out of range",
		},
		{
			Name:    "no indices",
			Floats:  []FloatBuffer{pos},
			Error:   "no indices",
		},
		{
			Name:    "no vertices",
			Indices: []uint32{0},
			Error:   "no vertices",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := Pack(test.Floats, test.Ints, test.Indices)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.Error)
		})
	}
}
