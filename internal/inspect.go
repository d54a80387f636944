package internal

import (
	"fmt"
	"iter"

	"github.com/chewxy/math32"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/soypat/geometry/ms3"
)

// Everything in this file only reads the mesh.

// A triangle resolved from the index buffer. It is computed on demand and
// never stored.
type Triangle struct {
	Points  ms3.Triangle
	Indices [3]uint32
	// Unit normal from FaceNormal, or the zero vector if the triangle is
	// degenerate.
	Normal Position
}

func (t Triangle) String() string {
	return fmt.Sprintf("%v %v %v", t.Indices, t.Points, t.Normal)
}

func (m *Mesh) VertexCount() int {
	return m.registry.Len()
}

func (m *Mesh) TriangleCount() int {
	return m.indices.Len() / 3
}

// Capacities of the vertex and index buffers.
func (m *Mesh) Cap() (vertexCap, indexCap int) {
	return m.registry.Cap(), m.indices.Cap()
}

// Resolve the i-th triangle and compute its normal.
//
// Past the end of the mesh is ErrIndexOutOfRange. A degenerate triangle is
// still returned in full, with a zero normal, alongside an error wrapping
// ErrDegenerateVector.
func (m *Mesh) TriangleAt(i int) (Triangle, error) {
	if i < 0 || i >= m.TriangleCount() {
		return Triangle{}, errors.Wrapf(ErrIndexOutOfRange, "triangle %d of %d", i, m.TriangleCount())
	}
	var tri Triangle
	for j := range tri.Indices {
		tri.Indices[j] = m.indices.at(3*i + j)
		tri.Points[j] = m.registry.At(tri.Indices[j])
	}
	normal, err := FaceNormal(tri.Points[0], tri.Points[1], tri.Points[2])
	tri.Normal = normal
	if err != nil {
		return tri, errors.Wrapf(err, "normal of triangle %d", i)
	}
	return tri, nil
}

// A copy of the vertex buffer, in index order.
func (m *Mesh) Vertices() []Position {
	return m.registry.vertices.snapshot()
}

// A copy of the index buffer. Every three entries make a triangle.
func (m *Mesh) Indices() []uint32 {
	return m.indices.snapshot()
}

// Flattened copies of both buffers in the layout renderers usually want:
// three floats (x, y, z) per vertex, three indices per triangle.
func (m *Mesh) Buffers() (vertices []float32, indices []uint32) {
	vertices = make([]float32, 0, 3*m.VertexCount())
	for _, v := range m.registry.vertices.data {
		vertices = append(vertices, v.X, v.Y, v.Z)
	}
	return vertices, m.Indices()
}

// All triangles as plain point triples, dropping the indexing.
func (m *Mesh) Triangles() []ms3.Triangle {
	triangles := make([]ms3.Triangle, m.TriangleCount())
	for i := range triangles {
		for j := 0; j < 3; j++ {
			triangles[i][j] = m.registry.At(m.indices.at(3*i + j))
		}
	}
	return triangles
}

// The axis aligned box around every vertex. Empty meshes have an empty box at
// the origin.
func (m *Mesh) Bounds() ms3.Box {
	if m.VertexCount() == 0 {
		return ms3.Box{}
	}
	inf := math32.Inf(1)
	box := ms3.Box{
		Min: Position{X: inf, Y: inf, Z: inf},
		Max: Position{X: -inf, Y: -inf, Z: -inf},
	}
	for _, v := range m.registry.vertices.data {
		box.Min = Position{X: math32.Min(box.Min.X, v.X), Y: math32.Min(box.Min.Y, v.Y), Z: math32.Min(box.Min.Z, v.Z)}
		box.Max = Position{X: math32.Max(box.Max.X, v.X), Y: math32.Max(box.Max.Y, v.Y), Z: math32.Max(box.Max.Z, v.Z)}
	}
	return box
}

type DumpOptions struct {
	// Also list each triangle's normal.
	Normals bool
	// Colorize with ANSI escapes.
	Color bool
}

// Describe the mesh line by line: a header, every vertex with its index, every
// triangle's index triple, and optionally every triangle's normal. Nothing is
// computed until the sequence is ranged over, and it can be ranged over any
// number of times.
func (m *Mesh) Dump(options DumpOptions) iter.Seq[string] {
	au := aurora.NewAurora(options.Color)
	return func(yield func(string) bool) {
		header := fmt.Sprintf("Mesh [%s] has [%d] vertices and [%d] triangles",
			au.Cyan(m.Name()).String(), m.VertexCount(), m.TriangleCount())
		if !yield(header) {
			return
		}
		for i, v := range m.registry.vertices.data {
			line := fmt.Sprintf("Vertex [%d]\t--- (%.2f, %.2f, %.2f)", i, v.X, v.Y, v.Z)
			if !yield(line) {
				return
			}
		}
		for i := 0; i < m.TriangleCount(); i++ {
			line := fmt.Sprintf("Triangle [%d]\t--- (%d, %d, %d)",
				i, m.indices.at(3*i), m.indices.at(3*i+1), m.indices.at(3*i+2))
			if !yield(line) {
				return
			}
		}
		if !options.Normals {
			return
		}
		for i := 0; i < m.TriangleCount(); i++ {
			tri, err := m.TriangleAt(i)
			var line string
			if errors.Is(err, ErrDegenerateVector) {
				m.logger.Printf("triangle %d of %s is degenerate", i, m.Name())
				line = fmt.Sprintf("Normal [%d]\t--- %s", i, au.Red("degenerate").String())
			} else {
				n := tri.Normal
				line = fmt.Sprintf("Normal [%d]\t--- (%.2f, %.2f, %.2f)", i, n.X, n.Y, n.Z)
			}
			if !yield(line) {
				return
			}
		}
	}
}
