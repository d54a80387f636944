// Build indexed triangle meshes out of polygonal faces.
//
// Describe a solid face by face, each face an ordered list of 3D points.
// Points shared between faces become one vertex, faces with more than three
// points are split into a fan of triangles, and what comes out is a vertex
// buffer plus an index buffer with three indices per triangle, ready to hand to
// a renderer.
//
// Points are only merged when they are exactly equal. Faces should be convex
// and planar; nothing checks that they are, and a non-convex face still gets a
// fan, which will not match its outline.
package polymesh

import (
	"github.com/osuushi/polymesh/advanced"
	"github.com/pkg/errors"
)

type Position = advanced.Position
type Mesh = advanced.Mesh
type Config = advanced.Config
type Triangle = advanced.Triangle
type DumpOptions = advanced.DumpOptions
type Snapshot = advanced.Snapshot

var (
	ErrInvalidFace      = advanced.ErrInvalidFace
	ErrOutOfMemory      = advanced.ErrOutOfMemory
	ErrDegenerateVector = advanced.ErrDegenerateVector
	ErrIndexOutOfRange  = advanced.ErrIndexOutOfRange
)

// The golden ratio
var Tau = advanced.Tau

func Pos(x, y, z float32) Position {
	return Position{X: x, Y: y, Z: z}
}

// Make an empty mesh with room for initialCapacity vertices (and three times as
// many indices) before it has to grow.
func NewMesh(initialCapacity int) *Mesh {
	return advanced.NewMesh(advanced.Config{InitialCapacity: initialCapacity})
}

// Make an empty mesh with the given settings. The zero Config is fine.
func New(config Config) *Mesh {
	return advanced.NewMesh(config)
}

// Build a mesh out of a list of faces, in order. On error, nothing is
// returned; the error says which face failed.
func Build(faces ...[]Position) (result *Mesh, err error) {
	return BuildWith(Config{}, faces...)
}

func BuildWith(config Config, faces ...[]Position) (result *Mesh, err error) {
	defer func() {
		recoveredErr := advanced.HandleMeshPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if config.InitialCapacity == 0 {
		for _, face := range faces {
			config.InitialCapacity += len(face)
		}
	}
	m := advanced.NewMesh(config)
	for i, face := range faces {
		if err := m.AddFace(face...); err != nil {
			return nil, errors.Wrapf(err, "face %d", i)
		}
	}
	return m, nil
}

// The unit normal of triangle p0, p1, p2, the way the mesh computes it. See
// advanced.FaceNormal.
func FaceNormal(p0, p1, p2 Position) (Position, error) {
	return advanced.FaceNormal(p0, p1, p2)
}
