package internal

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// Position is a point in space. Two positions are the same vertex only if
// every coordinate compares equal with ==. There is deliberately no tolerance:
// points that are "the same" but were computed along different floating point
// paths stay distinct, NaN never matches anything, and -0 matches +0.
type Position = ms3.Vec

// The golden ratio. Handy for building icosahedra and dodecahedra.
var Tau = (1 + math32.Sqrt(5)) / 2

func Subtract(a, b Position) Position {
	return ms3.Sub(a, b)
}

func Cross(a, b Position) Position {
	return Position{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Scale v to unit length. A vector with no length (or a NaN length) cannot be
// normalized, in which case v comes back untouched along with
// ErrDegenerateVector. Whether that matters is the caller's call.
func Normalize(v Position) (Position, error) {
	length := math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if !(length > 0) {
		return v, ErrDegenerateVector
	}
	return Position{X: v.X / length, Y: v.Y / length, Z: v.Z / length}, nil
}

// Compute the unit normal of the triangle p0, p1, p2.
//
// Note that this is NOT the textbook plane normal. Each point is first
// normalized as if it were a direction, and only then are the edge vectors
// taken. For points that all sit at the same distance from the origin (every
// solid in the solids package) the two agree in direction; for anything else
// they diverge. Meshes built with this library have always had these normals,
// so changing the formula would change every mesh. See PlaneNormal for the
// textbook version.
//
// A point at the origin has no direction and is used as is. If the final
// cross product has no length, the zero vector is returned along with
// ErrDegenerateVector.
func FaceNormal(p0, p1, p2 Position) (Position, error) {
	q, _ := Normalize(p0)
	r, _ := Normalize(p1)
	s, _ := Normalize(p2)
	normal, err := Normalize(Cross(Subtract(r, q), Subtract(s, q)))
	if err != nil {
		return Position{}, err
	}
	return normal, nil
}

// The conventional normal of the plane through p0, p1, p2, following the right
// hand rule. The mesh never uses this; it exists for comparison with
// FaceNormal.
func PlaneNormal(p0, p1, p2 Position) (Position, error) {
	normal, err := Normalize(Cross(Subtract(p1, p0), Subtract(p2, p0)))
	if err != nil {
		return Position{}, err
	}
	return normal, nil
}

// Length of v, for tests and diagnostics.
func Length(v Position) float32 {
	return ms3.Norm(v)
}
