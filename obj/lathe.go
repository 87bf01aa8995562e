package obj

import (
	"math"

	m "github.com/go-gl/mathgl/mgl32"
)

// Lathe builds a surface of revolution. fn maps the position along the
// profile t in [0, 1] and the angle phase in [0, 2π] to a point.
//
// Every ring has corners+1 vertices so the texture seam can be closed,
// u follows the phase and v follows t. Normals are the normalized sum of
// the adjacent face normals.
//
// depth is the number of rings and is raised to at least 2, corners is
// raised to at least 3.
func Lathe(depth, corners int, capped bool, fn func(t, phase float32) m.Vec3) *Mesh {
	depth = max(depth, 2)
	corners = max(corners, 3)

	mesh := &Mesh{}
	ring := corners + 1

	for ti := 0; ti < depth; ti++ {
		t := float32(ti) / float32(depth-1)
		for pi := 0; pi < ring; pi++ {
			phase := float32(pi) * 2 * math.Pi / float32(corners)
			mesh.vertex(fn(t, phase), float32(pi)/float32(corners), t)
		}
	}

	for ti := 1; ti < depth; ti++ {
		last, next := uint32((ti-1)*ring), uint32(ti*ring)
		for pi := uint32(0); pi < uint32(corners); pi++ {
			a, b := last+pi, last+pi+1
			c, d := next+pi, next+pi+1
			mesh.triangle(a, c, d)
			mesh.triangle(a, d, b)
		}
	}

	if capped {
		mesh.cap(0, ring, corners, false)
		mesh.cap(uint32((depth-1)*ring), ring, corners, true)
	}

	mesh.smoothNormals()
	return mesh
}

func (mesh *Mesh) vertex(p m.Vec3, u, v float32) uint32 {
	index := uint32(mesh.VertexCount())
	mesh.Positions = append(mesh.Positions, p[:]...)
	mesh.Normals = append(mesh.Normals, 0, 0, 0)
	mesh.UVs = append(mesh.UVs, u, v)
	return index
}

func (mesh *Mesh) triangle(a, b, c uint32) {
	mesh.Indices = append(mesh.Indices, a, b, c)
}

func (mesh *Mesh) position(i uint32) m.Vec3 {
	return m.Vec3{mesh.Positions[3*i], mesh.Positions[3*i+1], mesh.Positions[3*i+2]}
}

// cap closes the ring starting at first with a fan around its average.
func (mesh *Mesh) cap(first uint32, ring, corners int, tail bool) {
	var center m.Vec3
	for pi := 0; pi < corners; pi++ {
		center = center.Add(mesh.position(first + uint32(pi)))
	}
	center = center.Mul(1 / float32(corners))

	v := mesh.UVs[2*first+1]
	z := mesh.vertex(center, 0.5, v)
	for pi := uint32(0); pi < uint32(corners); pi++ {
		a, b := first+pi, first+pi+1
		if tail {
			mesh.triangle(a, z, b)
		} else {
			mesh.triangle(z, a, b)
		}
	}
}

func (mesh *Mesh) smoothNormals() {
	for i := range mesh.Normals {
		mesh.Normals[i] = 0
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		ia, ib, ic := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		a, b, c := mesh.position(ia), mesh.position(ib), mesh.position(ic)
		n := b.Sub(a).Cross(c.Sub(a))
		for _, k := range [3]uint32{ia, ib, ic} {
			mesh.Normals[3*k] += n[0]
			mesh.Normals[3*k+1] += n[1]
			mesh.Normals[3*k+2] += n[2]
		}
	}

	for k := 0; k+2 < len(mesh.Normals); k += 3 {
		n := m.Vec3{mesh.Normals[k], mesh.Normals[k+1], mesh.Normals[k+2]}
		if n.Len() == 0 {
			continue
		}
		n = n.Normalize()
		copy(mesh.Normals[k:k+3], n[:])
	}
}
