package sdfxmesh

import (
	"testing"

	"github.com/osuushi/polymesh"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertIndicesInRange(t *testing.T, m *polymesh.Mesh) {
	vertices, indices := m.Buffers()
	require.Zero(t, len(indices)%3)
	for i, index := range indices {
		require.Less(t, int(index), len(vertices)/3, "index %d", i)
	}
}

func TestBox(t *testing.T) {
	m, err := Box(10, 10, 10, 20, polymesh.Config{})
	require.NoError(t, err)
	require.NotZero(t, m.TriangleCount())
	assertIndicesInRange(t, m)

	// Triangles from the same cell share points
	assert.Less(t, m.VertexCount(), 3*m.TriangleCount())

	box := m.Bounds()
	assert.InDelta(t, -5, box.Min.X, 0.6)
	assert.InDelta(t, 5, box.Max.X, 0.6)
	assert.InDelta(t, 5, box.Max.Z, 0.6)
}

func TestCylinder(t *testing.T) {
	m, err := Cylinder(20, 5, 0, polymesh.Config{})
	require.NoError(t, err)
	require.NotZero(t, m.TriangleCount())
	assertIndicesInRange(t, m)

	box := m.Bounds()
	assert.InDelta(t, 10, box.Max.Z, 0.6)
	assert.InDelta(t, 5, box.Max.X, 0.6)
}

func TestBadShapes(t *testing.T) {
	_, err := Box(-1, 1, 1, 10, polymesh.Config{})
	assert.Error(t, err)

	_, err = Cylinder(10, -1, 10, polymesh.Config{})
	assert.Error(t, err)
}

func TestVertexLimit(t *testing.T) {
	_, err := Box(10, 10, 10, 20, polymesh.Config{MaxVertices: 16})
	assert.True(t, errors.Is(err, polymesh.ErrOutOfMemory))
}
