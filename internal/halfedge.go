package internal

import (
	"iter"
)

// A half-edge (doubly connected edge list) view of a finished mesh, for
// adjacency queries: which faces surround a vertex, which edges bound a face,
// where the mesh has boundaries.
//
// Everything lives in three flat arenas and refers to everything else by
// index. A missing neighbor (the twin of a boundary edge, say) is NoEdge or
// NoFace rather than a pointer. Vertex and face indices match the mesh they
// were built from: vertex i is the mesh's vertex i, and face f is the mesh's
// triangle f.
//
// The view is a copy. Adding faces to the mesh afterwards does not update it.

type VertexIndex int32
type EdgeIndex int32
type FaceIndex int32

const (
	NoVertex VertexIndex = -1
	NoEdge   EdgeIndex   = -1
	NoFace   FaceIndex   = -1
)

type HEVertex struct {
	Pos Position
	// Any one of the half-edges starting here. On a boundary this is the one
	// without a twin.
	Leaving EdgeIndex
}

type HalfEdge struct {
	Origin VertexIndex
	// The half-edge running the opposite way along the same edge, in the
	// neighboring face. NoEdge on a boundary.
	Twin EdgeIndex
	// Next and Prev walk around Face counterclockwise.
	Next, Prev EdgeIndex
	Face       FaceIndex
}

type HEFace struct {
	// Any one of the half-edges on this face.
	Inner EdgeIndex
}

type HalfEdgeMesh struct {
	Vertices []HEVertex
	Edges    []HalfEdge
	Faces    []HEFace
	// Half-edges that found more than one candidate twin: the edge is shared by
	// more than two faces, or two neighbors wind inconsistently. Such edges
	// keep the first twin found, and the remaining candidates stay unpaired.
	NonManifold []EdgeIndex
}

func NewHalfEdgeMesh(m *Mesh) *HalfEdgeMesh {
	h := &HalfEdgeMesh{
		Vertices: make([]HEVertex, m.VertexCount()),
		Edges:    make([]HalfEdge, 0, 3*m.TriangleCount()),
		Faces:    make([]HEFace, m.TriangleCount()),
	}
	for i, p := range m.registry.vertices.data {
		h.Vertices[i] = HEVertex{Pos: p, Leaving: NoEdge}
	}

	type directed struct{ from, to VertexIndex }
	byEnds := make(map[directed]EdgeIndex, 3*m.TriangleCount())
	paired := make(map[EdgeIndex]bool)

	for f := range h.Faces {
		first := EdgeIndex(len(h.Edges))
		h.Faces[f].Inner = first
		for j := 0; j < 3; j++ {
			e := first + EdgeIndex(j)
			origin := VertexIndex(m.indices.at(3*f + j))
			if int(origin) >= len(h.Vertices) {
				fatalf("triangle %d refers to vertex %d, but there are only %d", f, origin, len(h.Vertices))
			}
			h.Edges = append(h.Edges, HalfEdge{
				Origin: origin,
				Twin:   NoEdge,
				Next:   first + EdgeIndex((j+1)%3),
				Prev:   first + EdgeIndex((j+2)%3),
				Face:   FaceIndex(f),
			})
			if h.Vertices[origin].Leaving == NoEdge {
				h.Vertices[origin].Leaving = e
			}
		}

		for j := 0; j < 3; j++ {
			e := first + EdgeIndex(j)
			ends := directed{h.Edges[e].Origin, h.Dest(e)}
			conflict := false
			if twin, ok := byEnds[directed{ends.to, ends.from}]; ok {
				if paired[twin] {
					conflict = true
				} else {
					h.Edges[e].Twin = twin
					h.Edges[twin].Twin = e
					paired[twin], paired[e] = true, true
				}
			}
			if _, seen := byEnds[ends]; seen {
				// Same directed edge twice: two faces disagree about winding.
				conflict = true
			} else {
				byEnds[ends] = e
			}
			if conflict {
				h.NonManifold = append(h.NonManifold, e)
			}
		}
	}

	// On a boundary vertex, move Leaving to the edge with no twin, so that
	// VertexFaces can sweep the whole fan in one direction.
	for v := range h.Vertices {
		start := h.Vertices[v].Leaving
		if start == NoEdge {
			continue
		}
		e := start
		for steps := 0; steps < len(h.Edges); steps++ {
			twin := h.Edges[e].Twin
			if twin == NoEdge {
				h.Vertices[v].Leaving = e
				break
			}
			e = h.Edges[twin].Next
			if e == start {
				break
			}
		}
	}
	return h
}

// The vertex a half-edge points at.
func (h *HalfEdgeMesh) Dest(e EdgeIndex) VertexIndex {
	return h.Edges[h.Edges[e].Next].Origin
}

// The half-edges bounding face f, in winding order.
func (h *HalfEdgeMesh) FaceEdges(f FaceIndex) iter.Seq[EdgeIndex] {
	return func(yield func(EdgeIndex) bool) {
		start := h.Faces[f].Inner
		e := start
		for steps := 0; steps < len(h.Edges); steps++ {
			if !yield(e) {
				return
			}
			e = h.Edges[e].Next
			if e == start {
				return
			}
		}
	}
}

// The faces around vertex v, walking from its leaving edge through twins. If
// the walk runs into a boundary it restarts the other way from the leaving
// edge. Each face comes out once. Faces attached to v only through
// NonManifold edges can be missed.
func (h *HalfEdgeMesh) VertexFaces(v VertexIndex) iter.Seq[FaceIndex] {
	return func(yield func(FaceIndex) bool) {
		start := h.Vertices[v].Leaving
		if start == NoEdge {
			return
		}
		seen := make(map[FaceIndex]struct{})
		visit := func(e EdgeIndex) bool {
			f := h.Edges[e].Face
			if _, ok := seen[f]; ok {
				return true
			}
			seen[f] = struct{}{}
			return yield(f)
		}

		// Rotate one way: prev, then twin, lands on the next edge leaving v.
		e := start
		for steps := 0; steps < len(h.Edges); steps++ {
			if !visit(e) {
				return
			}
			e = h.Edges[h.Edges[e].Prev].Twin
			if e == NoEdge || e == start {
				break
			}
		}
		if e == start {
			return
		}
		// Hit a boundary. Rotate the other way from the start: twin, then next.
		e = start
		for steps := 0; steps < len(h.Edges); steps++ {
			twin := h.Edges[e].Twin
			if twin == NoEdge {
				return
			}
			e = h.Edges[twin].Next
			if !visit(e) {
				return
			}
		}
	}
}

// Every half-edge without a twin.
func (h *HalfEdgeMesh) BoundaryEdges() []EdgeIndex {
	var boundary []EdgeIndex
	for e, edge := range h.Edges {
		if edge.Twin == NoEdge {
			boundary = append(boundary, EdgeIndex(e))
		}
	}
	return boundary
}

// A closed mesh has no boundary: every half-edge has a twin.
func (h *HalfEdgeMesh) IsClosed() bool {
	return len(h.Edges) > 0 && len(h.BoundaryEdges()) == 0
}

// Per-vertex normals: the normalized sum of the FaceNormal of every face
// around each vertex. Degenerate faces contribute nothing. A vertex with no
// usable face gets the zero vector, and is reported in the returned list.
func (h *HalfEdgeMesh) SmoothNormals() (normals []Position, degenerate []VertexIndex) {
	faceNormals := make([]Position, len(h.Faces))
	for f := range h.Faces {
		var points [3]Position
		i := 0
		for e := range h.FaceEdges(FaceIndex(f)) {
			if i < 3 {
				points[i] = h.Vertices[h.Edges[e].Origin].Pos
			}
			i++
		}
		// A degenerate face leaves the zero vector, which adds nothing below.
		faceNormals[f], _ = FaceNormal(points[0], points[1], points[2])
	}

	normals = make([]Position, len(h.Vertices))
	for v := range h.Vertices {
		var sum Position
		for f := range h.VertexFaces(VertexIndex(v)) {
			n := faceNormals[f]
			sum = Position{X: sum.X + n.X, Y: sum.Y + n.Y, Z: sum.Z + n.Z}
		}
		normal, err := Normalize(sum)
		if err != nil {
			degenerate = append(degenerate, VertexIndex(v))
			normal = Position{}
		}
		normals[v] = normal
	}
	return normals, degenerate
}
