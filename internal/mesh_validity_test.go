package internal

// This contains no actual tests. It is just a helper for checking that a mesh
// is well formed.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a mesh is valid. The rules are:
// 1. The index buffer holds whole triangles.
// 2. Every index refers to a stored vertex.
// 3. Every vertex is referred to by some triangle.
// 4. No two vertices are equal.
func AssertValidMesh(t *testing.T, m *Mesh) {
	indices := m.Indices()
	vertices := m.Vertices()
	require.Zero(t, len(indices)%3, "index buffer does not hold whole triangles")
	require.Equal(t, m.TriangleCount(), len(indices)/3)
	require.Equal(t, m.VertexCount(), len(vertices))

	referenced := make([]bool, len(vertices))
	for i, index := range indices {
		require.Less(t, int(index), len(vertices), "index %d refers to missing vertex %d", i, index)
		referenced[index] = true
	}
	for i, ok := range referenced {
		assert.True(t, ok, "vertex %d is not used by any triangle", i)
	}

	seen := make(map[Position]int, len(vertices))
	for i, v := range vertices {
		if other, ok := seen[v]; ok {
			t.Errorf("vertices %d and %d are both %v", other, i, v)
		}
		seen[v] = i
	}
}

// Helper to check that the triangles of a mesh cover a flat face with the same
// signed area as the face itself. Only meaningful for faces in the z=0 plane.
func AssertCoversFace(t *testing.T, m *Mesh, face []Position) {
	var total float64
	for _, tri := range m.Triangles() {
		total += signedArea(tri[:])
	}
	assert.InDelta(t, signedArea(face), total, 1e-4*math.Max(1, math.Abs(total)))
}
