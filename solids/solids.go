// The five reference solids: tetrahedron, icosahedron, cube, octahedron and
// square pyramid. The coordinates and face order are the classic demo data,
// so the meshes they build are a known quantity for tests and examples.
//
// Face windings are kept exactly as in that data, which is not consistent for
// the cube, octahedron and pyramid. Only the tetrahedron and icosahedron come
// out as closed manifolds.
package solids

import (
	"strings"

	"github.com/osuushi/polymesh"
	"github.com/pkg/errors"
)

type Position = polymesh.Position

var p = polymesh.Pos

type Solid struct {
	Name string
	// Vertex count of the finished mesh, which is also the capacity the mesh is
	// created with
	Vertices int
	Faces    func() [][]Position
}

// Build the solid's mesh. config.InitialCapacity is filled in if left at zero.
func (s Solid) Build(config polymesh.Config) (*polymesh.Mesh, error) {
	if config.InitialCapacity == 0 {
		config.InitialCapacity = s.Vertices
	}
	m, err := polymesh.BuildWith(config, s.Faces()...)
	return m, errors.Wrap(err, s.Name)
}

var All = []Solid{
	{"tetrahedron", 4, TetrahedronFaces},
	{"icosahedron", 12, IcosahedronFaces},
	{"cube", 8, CubeFaces},
	{"octahedron", 6, OctahedronFaces},
	{"pyramid", 5, PyramidFaces},
}

func Names() []string {
	names := make([]string, len(All))
	for i, s := range All {
		names[i] = s.Name
	}
	return names
}

// Find a solid by name, ignoring case.
func Lookup(name string) (Solid, bool) {
	for _, s := range All {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Solid{}, false
}

func TetrahedronFaces() [][]Position {
	a := p(1, 1, 1)
	b := p(1, -1, -1)
	c := p(-1, 1, -1)
	d := p(-1, -1, 1)
	return [][]Position{
		{a, b, c},
		{a, c, d},
		{a, d, b},
		{d, c, b},
	}
}

func IcosahedronFaces() [][]Position {
	a := float32(1)
	b := 1 / polymesh.Tau

	v1 := p(0, b, -a)
	v2 := p(b, a, 0)
	v3 := p(-b, a, 0)
	v4 := p(0, b, a)
	v5 := p(0, -b, a)
	v6 := p(-a, 0, b)
	v7 := p(0, -b, -a)
	v8 := p(a, 0, -b)
	v9 := p(a, 0, b)
	v10 := p(-a, 0, -b)
	v11 := p(b, -a, 0)
	v12 := p(-b, -a, 0)

	return [][]Position{
		{v3, v2, v1},
		{v2, v3, v4},
		{v6, v5, v4},
		{v5, v9, v4},
		{v8, v7, v1},
		{v7, v10, v1},
		{v12, v11, v5},
		{v11, v12, v7},
		{v10, v6, v3},
		{v6, v10, v12},
		{v9, v8, v2},
		{v8, v9, v11},
		{v3, v6, v4},
		{v9, v2, v4},
		{v10, v3, v1},
		{v2, v8, v1},
		{v12, v10, v7},
		{v8, v11, v7},
		{v6, v12, v5},
		{v11, v9, v5},
	}
}

func CubeFaces() [][]Position {
	c0 := p(-1, -1, -1)
	c1 := p(1, -1, -1)
	c2 := p(-1, 1, -1)
	c3 := p(1, 1, -1)
	c4 := p(-1, -1, 1)
	c5 := p(-1, 1, 1)
	c6 := p(1, 1, 1)
	c7 := p(1, -1, 1)
	return [][]Position{
		{c0, c1, c3, c2},
		{c4, c5, c6, c7},
		{c1, c3, c6, c7},
		{c0, c2, c5, c4},
		{c2, c3, c6, c5},
		{c0, c1, c7, c4},
	}
}

var (
	o0 = p(1, 0, 0)
	o1 = p(-1, 0, 0)
	o2 = p(0, 1, 0)
	o3 = p(0, -1, 0)
	o4 = p(0, 0, 1)
	o5 = p(0, 0, -1)
)

func OctahedronFaces() [][]Position {
	return [][]Position{
		{o0, o2, o4},
		{o1, o2, o4},
		{o1, o2, o5},
		{o0, o2, o5},
		{o0, o3, o5},
		{o5, o3, o1},
		{o1, o3, o4},
		{o4, o3, o0},
	}
}

// A square pyramid: the octahedron's equator as a base, capped at +y.
func PyramidFaces() [][]Position {
	return [][]Position{
		{o0, o4, o1, o5},
		{o0, o2, o4},
		{o4, o2, o1},
		{o1, o2, o5},
		{o5, o2, o0},
	}
}
