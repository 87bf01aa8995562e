package render

import (
	"encoding/binary"
	"fmt"
	"log"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// FloatBuffer is a named per-vertex float attribute.
type FloatBuffer struct {
	Name       string
	Components int
	Values     []float32
}

// IntBuffer is a named per-vertex integer attribute.
type IntBuffer struct {
	Name       string
	Components int
	Values     []int32
}

// Attribute describes where an attribute lives inside an interleaved vertex.
type Attribute struct {
	Name       string
	Components int
	Offset     int
	Integer    bool
}

// PackedGeometry is the CPU side of a static interleaved mesh.
type PackedGeometry struct {
	Attributes  []Attribute
	Stride      int
	VertexCount int
	Data        []byte
	Indices     []uint32
}

// Pack interleaves the float attributes followed by the int attributes
// into a single vertex buffer.
//
// Every buffer must describe the same number of vertices and every index
// must reference one of them.
func Pack(floats []FloatBuffer, ints []IntBuffer, indices []uint32) (*PackedGeometry, error) {
	packed := &PackedGeometry{Indices: indices, VertexCount: -1}

	addAttribute := func(name string, components, values int, integer bool) error {
		if components <= 0 {
			return fmt.Errorf("attribute %q: invalid component count %d", name, components)
		}
		if values%components != 0 {
			return fmt.Errorf("attribute %q: %d values is not a multiple of %d components", name, values, components)
		}
		count := values / components
		if packed.VertexCount >= 0 && count != packed.VertexCount {
			return fmt.Errorf("attribute %q: has %d vertices, expected %d", name, count, packed.VertexCount)
		}
		packed.VertexCount = count

		packed.Attributes = append(packed.Attributes, Attribute{
			Name:       name,
			Components: components,
			Offset:     packed.Stride,
			Integer:    integer,
		})
		packed.Stride += 4 * components
		return nil
	}

	for _, buffer := range floats {
		if err := addAttribute(buffer.Name, buffer.Components, len(buffer.Values), false); err != nil {
			return nil, err
		}
	}
	for _, buffer := range ints {
		if err := addAttribute(buffer.Name, buffer.Components, len(buffer.Values), true); err != nil {
			return nil, err
		}
	}

	if packed.VertexCount <= 0 {
		return nil, fmt.Errorf("geometry has no vertices")
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("geometry has no indices")
	}
	for i, index := range indices {
		if int(index) >= packed.VertexCount {
			return nil, fmt.Errorf("index %d at %d out of range (%d vertices)", index, i, packed.VertexCount)
		}
	}

	packed.Data = make([]byte, packed.Stride*packed.VertexCount)
	attribute := 0
	for _, buffer := range floats {
		offset := packed.Attributes[attribute].Offset
		for v := 0; v < packed.VertexCount; v++ {
			base := v*packed.Stride + offset
			for c := 0; c < buffer.Components; c++ {
				bits := math.Float32bits(buffer.Values[v*buffer.Components+c])
				binary.LittleEndian.PutUint32(packed.Data[base+4*c:], bits)
			}
		}
		attribute++
	}
	for _, buffer := range ints {
		offset := packed.Attributes[attribute].Offset
		for v := 0; v < packed.VertexCount; v++ {
			base := v*packed.Stride + offset
			for c := 0; c < buffer.Components; c++ {
				binary.LittleEndian.PutUint32(packed.Data[base+4*c:], uint32(buffer.Values[v*buffer.Components+c]))
			}
		}
		attribute++
	}

	return packed, nil
}

// DeviceMesh is an uploaded indexed mesh.
type DeviceMesh struct {
	VAO uint32
	VBO uint32
	EBO uint32

	IndexCount int32
}

// CreatePackedStaticGeometry packs the buffers and uploads them, binding
// each attribute to the location of the same name in program.
func (ctx *Context) CreatePackedStaticGeometry(program *Program, floats []FloatBuffer, ints []IntBuffer, indices []uint32) (*DeviceMesh, error) {
	packed, err := Pack(floats, ints, indices)
	if err != nil {
		return nil, err
	}

	mesh := &DeviceMesh{IndexCount: int32(len(packed.Indices))}

	gl.GenVertexArrays(1, &mesh.VAO)
	if mesh.VAO == 0 {
		return nil, fmt.Errorf("failed to create vertex array")
	}
	gl.BindVertexArray(mesh.VAO)
	defer gl.BindVertexArray(0)

	gl.GenBuffers(1, &mesh.VBO)
	gl.GenBuffers(1, &mesh.EBO)
	if mesh.VBO == 0 || mesh.EBO == 0 {
		ctx.DestroyGeometry(mesh)
		return nil, fmt.Errorf("failed to create buffers")
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(packed.Data), gl.Ptr(packed.Data), gl.STATIC_DRAW)

	stride := int32(packed.Stride)
	for _, attribute := range packed.Attributes {
		location := gl.GetAttribLocation(program.ID, gl.Str(attribute.Name+"\x00"))
		if location < 0 {
			log.Printf("attribute %q is not active in program %d", attribute.Name, program.ID)
			continue
		}

		index := uint32(location)
		gl.EnableVertexAttribArray(index)
		if attribute.Integer {
			gl.VertexAttribIPointer(index, int32(attribute.Components), gl.INT, stride, gl.PtrOffset(attribute.Offset))
		} else {
			gl.VertexAttribPointer(index, int32(attribute.Components), gl.FLOAT, false, stride, gl.PtrOffset(attribute.Offset))
		}
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(packed.Indices), gl.Ptr(packed.Indices), gl.STATIC_DRAW)

	return mesh, nil
}

func (mesh *DeviceMesh) Draw() {
	gl.BindVertexArray(mesh.VAO)
	gl.DrawElements(gl.TRIANGLES, mesh.IndexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (ctx *Context) DestroyGeometry(mesh *DeviceMesh) {
	if mesh.EBO != 0 {
		gl.DeleteBuffers(1, &mesh.EBO)
	}
	if mesh.VBO != 0 {
		gl.DeleteBuffers(1, &mesh.VBO)
	}
	if mesh.VAO != 0 {
		gl.DeleteVertexArrays(1, &mesh.VAO)
	}
	*mesh = DeviceMesh{}
}
