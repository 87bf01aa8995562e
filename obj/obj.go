// Package obj reads triangulated Wavefront OBJ meshes into flat attribute
// buffers suitable for packing into a single vertex buffer.
//
// Only positions (v), normals (vn), texture coordinates (vt) and
// triangular faces written as position/uv/normal triples are understood.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Mesh is a deduplicated indexed triangle mesh.
//
// Positions and Normals hold 3 floats per vertex, UVs holds 2.
type Mesh struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
}

func (mesh *Mesh) VertexCount() int   { return len(mesh.Positions) / 3 }
func (mesh *Mesh) TriangleCount() int { return len(mesh.Indices) / 3 }

// Tangents allocates a tangent buffer and accumulates per-triangle tangents into it.
func (mesh *Mesh) Tangents() []float32 {
	tangents := make([]float32, len(mesh.Positions))
	GenerateTangents(mesh.Indices, mesh.Positions, mesh.UVs, tangents)
	return tangents
}

// Load parses the OBJ file at path.
func Load(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	defer file.Close()

	mesh, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mesh, nil
}

// key identifies a unique vertex by its zero-based attribute indices.
type key struct {
	position, normal, uv int
}

type parser struct {
	line int

	positions []float32
	normals   []float32
	uvs       []float32

	slots   map[key]uint32
	order   []key
	indices []uint32
}

// Parse reads an OBJ mesh from r.
//
// Every distinct (position, normal, uv) triple becomes one vertex, in the
// order the triples first appear in face statements.
func Parse(r io.Reader) (*Mesh, error) {
	p := &parser{slots: make(map[key]uint32)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.line++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", p.line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// faces may reference attributes declared after them,
	// so the buffers are only filled once everything is read
	return p.build()
}

func (p *parser) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		return p.parseFloats(&p.positions, fields[1:], 3)
	case "vn":
		return p.parseFloats(&p.normals, fields[1:], 3)
	case "vt":
		return p.parseFloats(&p.uvs, fields[1:], 2)
	case "f":
		return p.parseFace(fields[1:])
	}
	return nil
}

func (p *parser) parseFloats(dst *[]float32, fields []string, n int) error {
	if len(fields) < n {
		return fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	for _, field := range fields[:n] {
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return fmt.Errorf("invalid number %q", field)
		}
		*dst = append(*dst, float32(v))
	}
	return nil
}

func (p *parser) parseFace(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("face has %d vertices, only triangles are supported", len(fields))
	}

	for _, field := range fields {
		parts := strings.Split(field, "/")
		if len(parts) != 3 {
			return fmt.Errorf("face vertex %q must be position/uv/normal", field)
		}

		position, err := p.resolve(parts[0], len(p.positions)/3)
		if err != nil {
			return err
		}
		uv, err := p.resolve(parts[1], len(p.uvs)/2)
		if err != nil {
			return err
		}
		normal, err := p.resolve(parts[2], len(p.normals)/3)
		if err != nil {
			return err
		}

		k := key{position: position, normal: normal, uv: uv}
		slot, ok := p.slots[k]
		if !ok {
			slot = uint32(len(p.order))
			p.slots[k] = slot
			p.order = append(p.order, k)
		}
		p.indices = append(p.indices, slot)
	}
	return nil
}

// resolve converts a 1-based or negative (relative) OBJ index to a 0-based one.
func (p *parser) resolve(s string, count int) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("missing face index")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q", s)
	}
	switch {
	case v > 0:
		return v - 1, nil
	case v < 0:
		return count + v, nil
	}
	return 0, fmt.Errorf("face index must not be 0")
}

func (p *parser) build() (*Mesh, error) {
	n := len(p.order)
	mesh := &Mesh{
		Positions: make([]float32, 3*n),
		Normals:   make([]float32, 3*n),
		UVs:       make([]float32, 2*n),
		Indices:   p.indices,
	}

	for slot, k := range p.order {
		if err := copyAttribute(mesh.Positions, p.positions, slot, k.position, 3, "position"); err != nil {
			return nil, err
		}
		if err := copyAttribute(mesh.Normals, p.normals, slot, k.normal, 3, "normal"); err != nil {
			return nil, err
		}
		if err := copyAttribute(mesh.UVs, p.uvs, slot, k.uv, 2, "uv"); err != nil {
			return nil, err
		}
	}

	return mesh, nil
}

func copyAttribute(dst, src []float32, slot, index, n int, name string) error {
	if index < 0 || n*index+n > len(src) {
		return fmt.Errorf("%s index %d out of range (have %d)", name, index+1, len(src)/n)
	}
	copy(dst[n*slot:n*slot+n], src[n*index:n*index+n])
	return nil
}
