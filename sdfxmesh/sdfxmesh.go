// Mesh signed distance fields from github.com/deadsy/sdfx.
//
// Marching cubes hands back a triangle soup: every triangle carries its own
// three points. Feeding the soup through a mesh merges the points that come
// out exactly equal, which marching cubes does for every vertex it shares
// within a cell.
package sdfxmesh

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/osuushi/polymesh"
	"github.com/pkg/errors"
)

// Marching cubes resolution along the longest side of the bounding box
const DefaultCells = 64

// Mesh s with marching cubes at the given resolution. Zero cells means
// DefaultCells. Soups tend to be large, so the mesh always uses hash lookups.
func FromSDF3(s sdf.SDF3, cells int, config polymesh.Config) (*polymesh.Mesh, error) {
	if cells <= 0 {
		cells = DefaultCells
	}
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	if config.InitialCapacity == 0 {
		config.InitialCapacity = len(triangles)
	}
	config.HashLookup = true
	m := polymesh.New(config)
	for i, tri := range triangles {
		err := m.AddTriangle(toPosition(tri[0]), toPosition(tri[1]), toPosition(tri[2]))
		if err != nil {
			return nil, errors.Wrapf(err, "triangle %d of %d", i, len(triangles))
		}
	}
	return m, nil
}

func toPosition(v v3.Vec) polymesh.Position {
	return polymesh.Pos(float32(v.X), float32(v.Y), float32(v.Z))
}

// A box of the given size, centered on the origin.
func Box(x, y, z float64, cells int, config polymesh.Config) (*polymesh.Mesh, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, errors.Wrap(err, "making box")
	}
	return FromSDF3(s, cells, config)
}

// A cylinder along the z axis, centered on the origin.
func Cylinder(height, radius float64, cells int, config polymesh.Config) (*polymesh.Mesh, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, errors.Wrap(err, "making cylinder")
	}
	return FromSDF3(s, cells, config)
}
