package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/polymesh"
	"github.com/osuushi/polymesh/sdfxmesh"
	"github.com/osuushi/polymesh/solids"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of mesh building. Build the reference solids, mesh an SDF box or
// cylinder, or read faces from stdin, and print the resulting meshes.
//
// Input on stdin should be newline separated points in the form "x y z", with
// each face separated by an extra newline. Faces should be convex and planar.
// That is not validated.

type output struct {
	normals bool
	color   bool
	format  string
	preview bool
	scale   float64
	docs    int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("polymesh: ")

	app := kingpin.New("polymesh", "Build indexed triangle meshes from polygon faces.")
	out := &output{}
	app.Flag("normals", "Also print each triangle's normal.").BoolVar(&out.normals)
	app.Flag("color", "Colorize text output.").BoolVar(&out.color)
	app.Flag("format", "Output format.").Default("text").EnumVar(&out.format, "text", "yaml")
	app.Flag("preview", "Draw each mesh in the terminal (iTerm only).").BoolVar(&out.preview)
	app.Flag("scale", "Preview pixels per unit.").Default("50").Float64Var(&out.scale)
	verbose := app.Flag("verbose", "Log buffer growth to stderr.").Short('v').Bool()

	solidsCmd := app.Command("solids", "Build the reference solids.")
	solidNames := solidsCmd.Arg("name", "Solids to build: "+strings.Join(solids.Names(), ", ")+". Default all.").Strings()

	readCmd := app.Command("read", "Build a mesh from faces on stdin.")

	boxCmd := app.Command("box", "Mesh an SDF box with marching cubes.")
	boxX := boxCmd.Arg("x", "Size along x.").Default("10").Float64()
	boxY := boxCmd.Arg("y", "Size along y.").Default("10").Float64()
	boxZ := boxCmd.Arg("z", "Size along z.").Default("10").Float64()
	boxCells := boxCmd.Flag("cells", "Marching cubes resolution.").Default("20").Int()

	cylinderCmd := app.Command("cylinder", "Mesh an SDF cylinder with marching cubes.")
	cylinderHeight := cylinderCmd.Arg("height", "Height along z.").Default("20").Float64()
	cylinderRadius := cylinderCmd.Arg("radius", "Radius.").Default("5").Float64()
	cylinderCells := cylinderCmd.Flag("cells", "Marching cubes resolution.").Default("32").Int()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	config := polymesh.Config{}
	if *verbose {
		config.Logger = log.New(os.Stderr, "polymesh: ", 0)
	}

	var err error
	switch command {
	case solidsCmd.FullCommand():
		err = runSolids(out, config, *solidNames)
	case readCmd.FullCommand():
		err = runRead(out, config, os.Stdin)
	case boxCmd.FullCommand():
		var m *polymesh.Mesh
		m, err = sdfxmesh.Box(*boxX, *boxY, *boxZ, *boxCells, config)
		if err == nil {
			err = out.print(os.Stdout, "box", m)
		}
	case cylinderCmd.FullCommand():
		var m *polymesh.Mesh
		m, err = sdfxmesh.Cylinder(*cylinderHeight, *cylinderRadius, *cylinderCells, config)
		if err == nil {
			err = out.print(os.Stdout, "cylinder", m)
		}
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func runSolids(out *output, config polymesh.Config, names []string) error {
	if len(names) == 0 {
		names = solids.Names()
	}
	for _, name := range names {
		s, ok := solids.Lookup(name)
		if !ok {
			return errors.Errorf("unknown solid %q (have %s)", name, strings.Join(solids.Names(), ", "))
		}
		m, err := s.Build(config)
		if err != nil {
			return err
		}
		if err := out.print(os.Stdout, s.Name, m); err != nil {
			return err
		}
	}
	return nil
}

func runRead(out *output, config polymesh.Config, in io.Reader) error {
	faces, err := readFaces(in)
	if err != nil {
		return err
	}
	m, err := polymesh.BuildWith(config, faces...)
	if err != nil {
		return err
	}
	return out.print(os.Stdout, fmt.Sprintf("%d faces", len(faces)), m)
}

func (o *output) print(w io.Writer, title string, m *polymesh.Mesh) error {
	switch o.format {
	case "yaml":
		// One document per mesh
		if _, err := fmt.Fprintln(w, "---"); err != nil {
			return errors.WithStack(err)
		}
		if err := m.EncodeYAML(w, o.normals); err != nil {
			return err
		}
	default:
		if o.docs > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return errors.WithStack(err)
			}
		}
		if _, err := fmt.Fprintf(w, ">>> %s\n", title); err != nil {
			return errors.WithStack(err)
		}
		for line := range m.Dump(polymesh.DumpOptions{Normals: o.normals, Color: o.color}) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return errors.WithStack(err)
			}
		}
	}
	o.docs++

	if o.preview {
		return m.Preview(w, o.scale)
	}
	return nil
}

func readFaces(in io.Reader) ([][]polymesh.Position, error) {
	faces := [][]polymesh.Position{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []polymesh.Position{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the face
		if line == "" {
			if len(points) > 0 {
				faces = append(faces, points)
				points = []polymesh.Position{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading faces")
	}

	// Handle trailing face if any
	if len(points) > 0 {
		faces = append(faces, points)
	}
	return faces, nil
}

func parsePoint(line string) (polymesh.Position, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return polymesh.Position{}, errors.Errorf("expected \"x y z\", got %q", line)
	}
	var coords [3]float32
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 32)
		if err != nil {
			return polymesh.Position{}, errors.Wrapf(err, "coordinate %d", i)
		}
		coords[i] = float32(v)
	}
	return polymesh.Pos(coords[0], coords[1], coords[2]), nil
}
