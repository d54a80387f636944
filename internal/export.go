package internal

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A structured, serializable copy of a mesh.
type Snapshot struct {
	Name      string       `yaml:"name"`
	Vertices  [][3]float32 `yaml:"vertices"`
	Triangles [][3]uint32  `yaml:"triangles"`
	// One per triangle when normals were requested. Degenerate triangles get
	// the zero vector and are also listed in Degenerate.
	Normals    [][3]float32 `yaml:"normals,omitempty"`
	Degenerate []int        `yaml:"degenerate,omitempty"`
}

func (m *Mesh) Export(withNormals bool) Snapshot {
	s := Snapshot{
		Name:      m.Name(),
		Vertices:  make([][3]float32, 0, m.VertexCount()),
		Triangles: make([][3]uint32, 0, m.TriangleCount()),
	}
	for _, v := range m.registry.vertices.data {
		s.Vertices = append(s.Vertices, [3]float32{v.X, v.Y, v.Z})
	}
	for i := 0; i < m.TriangleCount(); i++ {
		tri, err := m.TriangleAt(i)
		s.Triangles = append(s.Triangles, tri.Indices)
		if !withNormals {
			continue
		}
		if errors.Is(err, ErrDegenerateVector) {
			s.Degenerate = append(s.Degenerate, i)
		}
		s.Normals = append(s.Normals, [3]float32{tri.Normal.X, tri.Normal.Y, tri.Normal.Z})
	}
	return s
}

// Write the mesh's Snapshot as a YAML document.
func (m *Mesh) EncodeYAML(w io.Writer, withNormals bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m.Export(withNormals)); err != nil {
		return errors.Wrap(err, "encoding mesh")
	}
	return errors.Wrap(enc.Close(), "encoding mesh")
}
