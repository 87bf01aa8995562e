package app

import (
	"fmt"
	"log"

	"github.com/adinfit/glsteps/obj"
	"github.com/adinfit/glsteps/render"
)

// Attribute names shared by the demo shaders.
const (
	PositionAttribute = "a_pos"
	NormalAttribute   = "a_nor"
	UVAttribute       = "a_tex"
	TangentAttribute  = "a_tan"
)

// MeshBuffers names the attribute buffers of mesh, optionally with
// generated tangents.
func MeshBuffers(mesh *obj.Mesh, tangents bool) []render.FloatBuffer {
	buffers := []render.FloatBuffer{
		{Name: PositionAttribute, Components: 3, Values: mesh.Positions},
		{Name: NormalAttribute, Components: 3, Values: mesh.Normals},
		{Name: UVAttribute, Components: 2, Values: mesh.UVs},
	}
	if tangents {
		buffers = append(buffers, render.FloatBuffer{
			Name: TangentAttribute, Components: 3, Values: mesh.Tangents(),
		})
	}
	return buffers
}

// UploadMesh creates static geometry for mesh bound against program.
func UploadMesh(ctx *render.Context, program *render.Program, mesh *obj.Mesh, tangents bool) (*render.DeviceMesh, error) {
	return ctx.CreatePackedStaticGeometry(program, MeshBuffers(mesh, tangents), nil, mesh.Indices)
}

// LoadMesh parses an OBJ file and uploads it.
func LoadMesh(ctx *render.Context, program *render.Program, path string, tangents bool) (*render.DeviceMesh, error) {
	mesh, err := obj.Load(path)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %q: %d vertices, %d triangles", path, mesh.VertexCount(), mesh.TriangleCount())

	device, err := UploadMesh(ctx, program, mesh, tangents)
	if err != nil {
		return nil, fmt.Errorf("mesh %q: %w", path, err)
	}
	return device, nil
}
