package internal

import (
	"io"
	"log"
	"slices"

	"github.com/osuushi/polymesh/dbg"
	"github.com/pkg/errors"
)

// Settings for a new mesh. The zero value is usable: no preallocation, the
// default buffer limits, linear lookups, and no logging.
type Config struct {
	// Number of vertices to make room for up front. The index buffer gets room
	// for three times as many indices. Negative values count as zero.
	InitialCapacity int
	// The most vertices and indices the mesh may hold. Zero (or anything above
	// DefaultLimit) means DefaultLimit. Growing past a limit fails with
	// ErrOutOfMemory.
	MaxVertices int
	MaxIndices  int
	// Look vertices up through a hash index instead of a linear scan. The
	// results are identical.
	HashLookup bool
	// Receives a line whenever a buffer grows, and about degenerate normals
	// found while dumping. Nil discards.
	Logger *log.Logger
}

// An indexed triangle mesh. Faces go in through AddFace and its wrappers; what
// comes out is a deduplicated vertex buffer plus an index buffer with three
// entries per triangle.
//
// A mesh has a single writer. Nothing here is safe to call while AddFace is
// running on another goroutine, because growing a buffer replaces its
// storage. Reads may run concurrently with each other.
type Mesh struct {
	config   Config
	registry *Registry
	indices  buffer[uint32]
	logger   *log.Logger
	name     string
}

func NewMesh(initialCapacity int) *Mesh {
	return New(Config{InitialCapacity: initialCapacity})
}

func New(config Config) *Mesh {
	m := &Mesh{config: config, logger: config.Logger, name: dbg.NewName()}
	if m.logger == nil {
		m.logger = log.New(io.Discard, "", 0)
	}
	m.allocate(config.InitialCapacity)
	return m
}

// A readable name for this mesh, used in dumps and exports. Unique within the
// process, but random from run to run.
func (m *Mesh) Name() string { return m.name }

func (m *Mesh) allocate(capacity int) {
	capacity = max(0, min(capacity, DefaultLimit))
	indexCapacity := DefaultLimit
	if capacity <= DefaultLimit/3 {
		indexCapacity = 3 * capacity
	}
	m.registry = NewRegistry(capacity, m.config.MaxVertices, m.config.HashLookup)
	m.indices = newBuffer[uint32](indexCapacity, m.config.MaxIndices)
}

// Add a polygon given as an ordered list of at least three points.
//
// Every point is interned, so points shared with earlier faces (or repeated
// within this one) reuse their vertex. The polygon is then split into a fan of
// len(points)-2 triangles anchored at the first point: (0, 1, 2), (0, 2, 3),
// and so on. The fan is only a faithful triangulation of convex polygons, and
// no check is made that the points are convex, planar, or even distinct.
//
// Fewer than three points is ErrInvalidFace. If a buffer cannot grow the
// result is ErrOutOfMemory. In both cases the mesh is left exactly as it was.
func (m *Mesh) AddFace(points ...Position) (err error) {
	if len(points) < 3 {
		return errors.Wrapf(ErrInvalidFace, "face has %d points, need at least 3", len(points))
	}
	triangleCount := len(points) - 2

	before := m.save()
	defer func() {
		if r := recover(); r != nil {
			m.restore(before)
			err = HandleMeshPanicRecover(r)
		}
	}()

	// Make all the room we need before touching anything, so a failed
	// allocation can't leave half a face behind.
	vertexStorage, err := m.registry.vertices.reserve(m.countNovel(points))
	if err != nil {
		return errors.Wrap(err, "growing vertex buffer")
	}
	indexStorage, err := m.indices.reserve(3 * triangleCount)
	if err != nil {
		return errors.Wrap(err, "growing index buffer")
	}
	m.adopt(vertexStorage, indexStorage)

	faceIndices := make([]uint32, len(points))
	for i, p := range points {
		index, ok := m.registry.Find(p)
		if !ok {
			index = m.registry.insert(p)
		}
		faceIndices[i] = index
	}

	for k := 0; k < triangleCount; k++ {
		m.indices.push(faceIndices[0])
		m.indices.push(faceIndices[k+1])
		m.indices.push(faceIndices[k+2])
	}
	return nil
}

// Count the points that will take a new vertex slot: not stored yet, and not
// repeating an earlier point of the same face.
func (m *Mesh) countNovel(points []Position) int {
	novel := 0
	for i, p := range points {
		if _, ok := m.registry.Find(p); ok {
			continue
		}
		if !slices.Contains(points[:i], p) {
			novel++
		}
	}
	return novel
}

func (m *Mesh) adopt(vertexStorage []Position, indexStorage []uint32) {
	if oldCap := m.registry.Cap(); cap(vertexStorage) != oldCap {
		m.logger.Printf("grew vertex buffer %d -> %d", oldCap, cap(vertexStorage))
	}
	if oldCap := m.indices.Cap(); cap(indexStorage) != oldCap {
		m.logger.Printf("grew index buffer %d -> %d", oldCap, cap(indexStorage))
	}
	m.registry.vertices.adopt(vertexStorage)
	m.indices.adopt(indexStorage)
}

// The storage of both buffers at some point, to go back to if AddFace fails
// partway.
type meshState struct {
	vertices []Position
	indices  []uint32
}

func (m *Mesh) save() meshState {
	return meshState{vertices: m.registry.vertices.data, indices: m.indices.data}
}

// Put back the storage from s, forgetting everything added since, including
// any growth. Slots past the saved lengths may have been written if the
// storage never grew, but they are unused.
func (m *Mesh) restore(s meshState) {
	m.registry.rollback(len(s.vertices))
	m.indices.truncate(len(s.indices))
	m.registry.vertices.adopt(s.vertices)
	m.indices.adopt(s.indices)
}

func (m *Mesh) AddTriangle(p0, p1, p2 Position) error {
	return m.AddFace(p0, p1, p2)
}

// Add a quadrilateral as the two triangles (p0, p1, p2) and (p0, p2, p3).
func (m *Mesh) AddQuad(p0, p1, p2, p3 Position) error {
	return m.AddFace(p0, p1, p2, p3)
}

// Let go of both buffers. The mesh is empty afterwards, with no capacity at
// all. It can still be reused; the buffers simply grow again from scratch.
func (m *Mesh) Release() {
	m.registry.vertices.release()
	m.indices.release()
	m.allocate(0)
}
