package internal

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/soypat/geometry/ms3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangleAt(t *testing.T) {
	m := buildMesh(Config{}, Tetrahedron())

	tri, err := m.TriangleAt(0)
	require.NoError(t, err)
	assert.Equal(t, [3]uint32{0, 1, 2}, tri.Indices)
	assert.Equal(t, ms3.Triangle{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
	}, tri.Points)
	s := float32(1 / math.Sqrt(3))
	assertVecInDelta(t, Position{X: s, Y: s, Z: -s}, tri.Normal)

	last, err := m.TriangleAt(3)
	require.NoError(t, err)
	assert.Equal(t, [3]uint32{3, 2, 1}, last.Indices)
}

func TestTriangleAt_OutOfRange(t *testing.T) {
	m := buildMesh(Config{}, Tetrahedron())
	for _, i := range []int{-1, 4, 100} {
		_, err := m.TriangleAt(i)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "triangle %d", i)
	}

	_, err := NewMesh(0).TriangleAt(0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestTriangleAt_Degenerate(t *testing.T) {
	a := Position{X: 1, Y: 2, Z: 3}
	b := Position{Y: 1}
	m := NewMesh(0)
	require.NoError(t, m.AddTriangle(a, b, a))

	tri, err := m.TriangleAt(0)
	assert.True(t, errors.Is(err, ErrDegenerateVector))
	assert.Equal(t, [3]uint32{0, 1, 0}, tri.Indices)
	assert.Equal(t, ms3.Triangle{a, b, a}, tri.Points)
	assert.Equal(t, Position{}, tri.Normal)
}

func TestAccessorsReturnCopies(t *testing.T) {
	m := buildMesh(Config{}, Tetrahedron())
	vertices := m.Vertices()
	vertices[0] = Position{X: 42}
	indices := m.Indices()
	indices[0] = 42

	assert.Equal(t, Position{X: 1, Y: 1, Z: 1}, m.Vertices()[0])
	assert.Equal(t, uint32(0), m.Indices()[0])
}

func TestBuffers(t *testing.T) {
	m := NewMesh(0)
	require.NoError(t, m.AddTriangle(Position{X: 1, Y: 2, Z: 3}, Position{X: 4, Y: 5, Z: 6}, Position{X: 7, Y: 8, Z: 9}))
	vertices, indices := m.Buffers()
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, vertices)
	assert.Equal(t, []uint32{0, 1, 2}, indices)
}

func TestTriangles(t *testing.T) {
	square := LoadFixture("square")
	m := NewMesh(0)
	require.NoError(t, m.AddFace(square...))
	assert.Equal(t, []ms3.Triangle{
		{square[0], square[1], square[2]},
		{square[0], square[2], square[3]},
	}, m.Triangles())
}

func TestBounds(t *testing.T) {
	assert.Equal(t, ms3.Box{}, NewMesh(0).Bounds())

	m := buildMesh(Config{}, Tetrahedron())
	box := m.Bounds()
	assert.Equal(t, Position{X: -1, Y: -1, Z: -1}, box.Min)
	assert.Equal(t, Position{X: 1, Y: 1, Z: 1}, box.Max)

	star := LoadFixture("star")
	m = NewMesh(0)
	require.NoError(t, m.AddFace(star...))
	box = m.Bounds()
	assert.Equal(t, Position{X: -5, Y: -4.5}, box.Min)
	assert.Equal(t, Position{X: 5, Y: 5}, box.Max)
}

func TestDump(t *testing.T) {
	m := NewMesh(0)
	require.NoError(t, m.AddFace(LoadFixture("square")...))

	lines := slices.Collect(m.Dump(DumpOptions{}))
	assert.Equal(t, []string{
		fmt.Sprintf("Mesh [%s] has [4] vertices and [2] triangles", m.Name()),
		"Vertex [0]\t--- (-1.00, -1.00, 0.00)",
		"Vertex [1]\t--- (1.00, -1.00, 0.00)",
		"Vertex [2]\t--- (1.00, 1.00, 0.00)",
		"Vertex [3]\t--- (-1.00, 1.00, 0.00)",
		"Triangle [0]\t--- (0, 1, 2)",
		"Triangle [1]\t--- (0, 2, 3)",
	}, lines)

	t.Run("restartable", func(t *testing.T) {
		dump := m.Dump(DumpOptions{})
		assert.Equal(t, slices.Collect(dump), slices.Collect(dump))
	})

	t.Run("stops early", func(t *testing.T) {
		var seen []string
		for line := range m.Dump(DumpOptions{}) {
			seen = append(seen, line)
			if len(seen) == 2 {
				break
			}
		}
		assert.Equal(t, lines[:2], seen)
	})

	t.Run("normals", func(t *testing.T) {
		lines := slices.Collect(m.Dump(DumpOptions{Normals: true}))
		require.Len(t, lines, 9)
		assert.Equal(t, "Normal [0]\t--- (0.00, 0.00, 1.00)", lines[7])
		assert.Equal(t, "Normal [1]\t--- (0.00, 0.00, 1.00)", lines[8])
	})

	t.Run("color", func(t *testing.T) {
		header := slices.Collect(m.Dump(DumpOptions{Color: true}))[0]
		assert.Contains(t, header, "\x1b[")
		assert.Contains(t, header, m.Name())
	})
}

func TestDump_DegenerateNormal(t *testing.T) {
	var out bytes.Buffer
	m := New(Config{Logger: log.New(&out, "", 0)})
	a := Position{X: 1}
	require.NoError(t, m.AddTriangle(a, Position{X: 2}, Position{X: 3}))

	lines := slices.Collect(m.Dump(DumpOptions{Normals: true}))
	assert.Equal(t, "Normal [0]\t--- degenerate", lines[len(lines)-1])
	assert.Contains(t, out.String(), "triangle 0 of "+m.Name()+" is degenerate")
}

func TestDump_EmptyMesh(t *testing.T) {
	m := NewMesh(0)
	lines := slices.Collect(m.Dump(DumpOptions{Normals: true}))
	assert.Equal(t, []string{fmt.Sprintf("Mesh [%s] has [0] vertices and [0] triangles", m.Name())}, lines)
}
