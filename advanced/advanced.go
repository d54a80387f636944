// Lower level pieces of the mesh library, for callers who need more than
// building and reading meshes: adjacency queries over a finished mesh, the
// vertex registry on its own, and the vector helpers the normals are built
// from.
package advanced

import "github.com/osuushi/polymesh/internal"

type Position = internal.Position
type Mesh = internal.Mesh
type Config = internal.Config
type Registry = internal.Registry
type Triangle = internal.Triangle
type DumpOptions = internal.DumpOptions
type Snapshot = internal.Snapshot

type HalfEdgeMesh = internal.HalfEdgeMesh
type HalfEdge = internal.HalfEdge
type HEVertex = internal.HEVertex
type HEFace = internal.HEFace
type VertexIndex = internal.VertexIndex
type EdgeIndex = internal.EdgeIndex
type FaceIndex = internal.FaceIndex

const (
	NoVertex = internal.NoVertex
	NoEdge   = internal.NoEdge
	NoFace   = internal.NoFace
)

const DefaultLimit = internal.DefaultLimit

var (
	ErrInvalidFace      = internal.ErrInvalidFace
	ErrOutOfMemory      = internal.ErrOutOfMemory
	ErrDegenerateVector = internal.ErrDegenerateVector
	ErrIndexOutOfRange  = internal.ErrIndexOutOfRange
)

var Tau = internal.Tau

var (
	Cross       = internal.Cross
	Subtract    = internal.Subtract
	Normalize   = internal.Normalize
	FaceNormal  = internal.FaceNormal
	PlaneNormal = internal.PlaneNormal
)

func NewMesh(config Config) *Mesh {
	return internal.New(config)
}

// Convert a value recovered from a panic inside the mesh code into an error.
// Panics that did not come from the mesh keep panicking.
func HandleMeshPanicRecover(r interface{}) error {
	return internal.HandleMeshPanicRecover(r)
}

// Build the half-edge view of a mesh. The view is a snapshot; faces added to
// the mesh later do not show up in it.
func NewHalfEdgeMesh(m *Mesh) (result *HalfEdgeMesh, err error) {
	defer func() {
		recoveredErr := HandleMeshPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.NewHalfEdgeMesh(m), nil
}

// A standalone vertex registry: interning positions without building a mesh.
// limit caps the number of vertices (zero means DefaultLimit).
func NewRegistry(capacity, limit int, hashLookup bool) *Registry {
	return internal.NewRegistry(capacity, limit, hashLookup)
}

// Per-vertex normals of a mesh, averaged over the faces around each vertex.
// Vertices without a usable face get the zero vector and are listed in
// degenerate.
func SmoothNormals(m *Mesh) (normals []Position, degenerate []VertexIndex, err error) {
	h, err := NewHalfEdgeMesh(m)
	if err != nil {
		return nil, nil, err
	}
	normals, degenerate = h.SmoothNormals()
	return normals, degenerate, nil
}
