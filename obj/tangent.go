package obj

// GenerateTangents accumulates, for every triangle, the object-space direction
// of increasing U into the tangents of its three vertices.
//
// positions and tangents hold 3 floats per vertex, uvs holds 2. The result is
// neither normalized nor orthogonalized against the vertex normal.
// Triangles with a degenerate UV mapping are skipped.
func GenerateTangents(indices []uint32, positions, uvs, tangents []float32) {
	for i := 0; i+2 < len(indices); i += 3 {
		var x, y, z, u, v [3]float32
		for j := 0; j < 3; j++ {
			p := 3 * indices[i+j]
			x[j], y[j], z[j] = positions[p], positions[p+1], positions[p+2]

			t := 2 * indices[i+j]
			u[j], v[j] = uvs[t], uvs[t+1]
		}

		x0, y0, z0 := x[1]-x[0], y[1]-y[0], z[1]-z[0]
		x1, y1, z1 := x[2]-x[0], y[2]-y[0], z[2]-z[0]

		u0, u1 := u[1]-u[0], u[2]-u[0]
		v0, v1 := v[1]-v[0], v[2]-v[0]

		det := u0*v1 - u1*v0
		if det == 0 {
			continue
		}
		r := 1 / det

		tx := (v1*x0 - v0*x1) * r
		ty := (v1*y0 - v0*y1) * r
		tz := (v1*z0 - v0*z1) * r

		for j := 0; j < 3; j++ {
			t := 3 * indices[i+j]
			tangents[t] += tx
			tangents[t+1] += ty
			tangents[t+2] += tz
		}
	}
}
