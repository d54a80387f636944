package polymesh

import (
	"io"
	"iter"
	"slices"
	"sync"
)

// A Mesh behind a read/write lock, for meshes that are filled in by one
// goroutine while others look at them. Mutations take the write lock; every
// read shares the read lock.
type SharedMesh struct {
	mu   sync.RWMutex
	mesh *Mesh
}

func NewSharedMesh(config Config) *SharedMesh {
	return &SharedMesh{mesh: New(config)}
}

func (s *SharedMesh) AddFace(points ...Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mesh.AddFace(points...)
}

func (s *SharedMesh) AddTriangle(p0, p1, p2 Position) error {
	return s.AddFace(p0, p1, p2)
}

func (s *SharedMesh) AddQuad(p0, p1, p2, p3 Position) error {
	return s.AddFace(p0, p1, p2, p3)
}

func (s *SharedMesh) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mesh.Release()
}

// Run fn with the read lock held. fn must not keep m, or anything borrowed
// from it, after it returns.
func (s *SharedMesh) Read(fn func(m *Mesh)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.mesh)
}

func (s *SharedMesh) VertexCount() (n int) {
	s.Read(func(m *Mesh) { n = m.VertexCount() })
	return n
}

func (s *SharedMesh) TriangleCount() (n int) {
	s.Read(func(m *Mesh) { n = m.TriangleCount() })
	return n
}

func (s *SharedMesh) TriangleAt(i int) (tri Triangle, err error) {
	s.Read(func(m *Mesh) { tri, err = m.TriangleAt(i) })
	return tri, err
}

func (s *SharedMesh) Buffers() (vertices []float32, indices []uint32) {
	s.Read(func(m *Mesh) { vertices, indices = m.Buffers() })
	return vertices, indices
}

func (s *SharedMesh) Export(withNormals bool) (snapshot Snapshot) {
	s.Read(func(m *Mesh) { snapshot = m.Export(withNormals) })
	return snapshot
}

func (s *SharedMesh) EncodeYAML(w io.Writer, withNormals bool) (err error) {
	s.Read(func(m *Mesh) { err = m.EncodeYAML(w, withNormals) })
	return err
}

// Unlike Mesh.Dump, the lines are all rendered up front under the read lock,
// so the sequence describes the mesh as it was when Dump was called.
func (s *SharedMesh) Dump(options DumpOptions) iter.Seq[string] {
	var lines []string
	s.Read(func(m *Mesh) { lines = slices.Collect(m.Dump(options)) })
	return slices.Values(lines)
}
