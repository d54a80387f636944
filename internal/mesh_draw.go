package internal

import (
	"io"
	"math"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the drawing so that labels near the edge stay visible
const dbgDrawPadding = 40

// Drawing is done in an isometric projection: x runs down and to the right, z
// down and to the left, and y straight up. Hidden faces are not removed; every
// triangle is drawn translucent so that the back of the mesh shows through.
func project(p Position) (float64, float64) {
	const cos30 = 0.8660254037844386
	x, y, z := float64(p.X), float64(p.Y), float64(p.Z)
	return (x - z) * cos30, y - (x+z)/2
}

// Whether p can be drawn. NaN and infinite coordinates have nowhere to go.
func drawable(p Position) bool {
	for _, v := range []float32{p.X, p.Y, p.Z} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Render the mesh as a wireframe PNG. scale is pixels per unit. Vertices that
// aren't drawable are left out, along with every triangle that uses one.
func (m *Mesh) draw(scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range m.registry.vertices.data {
		if !drawable(p) {
			continue
		}
		x, y := project(p)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	if minX > maxX {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, tri := range m.Triangles() {
		if !drawable(tri[0]) || !drawable(tri[1]) || !drawable(tri[2]) {
			continue
		}
		for j, p := range tri {
			x, y := project(p)
			if j == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
		c.SetRGBA(0.3, 0.2, 1, 0.25)
		c.FillPreserve()
		c.SetRGB(0, 1, 0)
		c.Stroke()
	}

	// Label each vertex with its index. Text has to be drawn at identity, or it
	// comes out upside down.
	c.SetRGB(1, 1, 1)
	for i, p := range m.registry.vertices.data {
		if !drawable(p) {
			continue
		}
		x, y := c.TransformPoint(project(p))
		c.Push()
		c.Identity()
		c.DrawStringAnchored(strconv.Itoa(i), x, y, 0.5, -0.5)
		c.Pop()
	}
	return c
}

// Encode a wireframe of the mesh to w as a PNG.
func (m *Mesh) WritePNG(w io.Writer, scale float64) error {
	return errors.Wrap(m.draw(scale).EncodePNG(w), "encoding wireframe")
}

// Draw the mesh and print it to w as an inline terminal image (iTerm only).
func (m *Mesh) Preview(w io.Writer, scale float64) error {
	f, err := os.CreateTemp("", "polymesh-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := m.WritePNG(f, scale); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "writing preview file")
	}
	imgcat.CatFile(f.Name(), w)
	return nil
}

