package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs faces. This is not a full (or
// even correct) svg parser. It finds the one polygon in the file and converts
// its points into a counterclockwise face lying in the z=0 plane. If anything
// goes wrong, it dies.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Position {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]Position, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 32)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 32)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Position{X: float32(x), Y: float32(y)})
	}

	// Ensure that the face is CCW
	if signedArea(points) < 0 {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}
	return points
}

// Shoelace area of a polygon in the xy plane. Positive when counterclockwise.
func signedArea(points []Position) float64 {
	var area float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		area += float64(p.X)*float64(q.Y) - float64(q.X)*float64(p.Y)
	}
	return area / 2
}

// Some ad hoc fixtures

// The tetrahedron from the demo program. Consistently wound, so it is closed.
func Tetrahedron() [][]Position {
	a := Position{X: 1, Y: 1, Z: 1}
	b := Position{X: 1, Y: -1, Z: -1}
	c := Position{X: -1, Y: 1, Z: -1}
	d := Position{X: -1, Y: -1, Z: 1}
	return [][]Position{
		{a, b, c},
		{a, c, d},
		{a, d, b},
		{d, c, b},
	}
}

// A cube whose quads all wind counterclockwise seen from outside.
func WoundCube() [][]Position {
	v := func(x, y, z float32) Position { return Position{X: x, Y: y, Z: z} }
	return [][]Position{
		{v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1), v(1, -1, -1)}, // z-
		{v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1)},     // z+
		{v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1)}, // y-
		{v(-1, 1, -1), v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1)},     // y+
		{v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1)}, // x-
		{v(1, -1, -1), v(1, 1, -1), v(1, 1, 1), v(1, -1, 1)},     // x+
	}
}

// The cube from the demo program. Its quads do not agree on winding.
func DemoCube() [][]Position {
	c0 := Position{X: -1, Y: -1, Z: -1}
	c1 := Position{X: 1, Y: -1, Z: -1}
	c2 := Position{X: -1, Y: 1, Z: -1}
	c3 := Position{X: 1, Y: 1, Z: -1}
	c4 := Position{X: -1, Y: -1, Z: 1}
	c5 := Position{X: -1, Y: 1, Z: 1}
	c6 := Position{X: 1, Y: 1, Z: 1}
	c7 := Position{X: 1, Y: -1, Z: 1}
	return [][]Position{
		{c0, c1, c3, c2},
		{c4, c5, c6, c7},
		{c1, c3, c6, c7},
		{c0, c2, c5, c4},
		{c2, c3, c6, c5},
		{c0, c1, c7, c4},
	}
}

func buildMesh(config Config, faces [][]Position) *Mesh {
	m := New(config)
	for i, face := range faces {
		if err := m.AddFace(face...); err != nil {
			log.Fatalf("Failed to add face %d: %v", i, err)
		}
	}
	return m
}
