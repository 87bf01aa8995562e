package envmap

import "github.com/adinfit/glsteps/render"

// UnitCube is a cube of side 2 centered at the origin.
func UnitCube() render.FloatBuffer {
	return render.FloatBuffer{
		Name:       "a_pos",
		Components: 3,
		Values: []float32{
			-1, -1, -1,
			1, -1, -1,
			1, 1, -1,
			-1, 1, -1,
			-1, -1, 1,
			1, -1, 1,
			1, 1, 1,
			-1, 1, 1,
		},
	}
}

var UnitCubeIndices = []uint32{
	0, 1, 3, 3, 1, 2,
	1, 5, 2, 2, 5, 6,
	5, 4, 6, 6, 4, 7,
	4, 0, 7, 7, 0, 3,
	3, 2, 7, 7, 2, 6,
	4, 5, 0, 0, 5, 1,
}

// Quad covers the whole clip space.
func Quad() render.FloatBuffer {
	return render.FloatBuffer{
		Name:       "a_pos",
		Components: 3,
		Values: []float32{
			-1, -1, 0,
			1, -1, 0,
			1, 1, 0,
			-1, 1, 0,
		},
	}
}

var QuadIndices = []uint32{0, 1, 2, 2, 3, 0}
