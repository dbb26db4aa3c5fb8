package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"github.com/jdginn/govec/config"
	"github.com/jdginn/govec/mesh"
	"github.com/jdginn/govec/vec"
)

var errArgCount = errors.New("wrong number of arguments")

// parseVector reads a vector written as "x,y,z". Missing components are 0.
func parseVector(s string) (vec.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) > vec.ElementCount3 {
		return vec.Vec3{}, fmt.Errorf("vector %q has %d components", s, len(parts))
	}
	components := make([]float32, len(parts))
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return vec.Vec3{}, fmt.Errorf("parsing vector %q: %w", s, err)
		}
		components[i] = float32(f)
	}
	return vec.FromSlice(components...), nil
}

type EvalCmd struct {
	Op   string   `arg:"" enum:"add,sub,dot,cross,mag,norm,neg,scale" help:"one of add, sub, dot, cross, mag, norm, neg, scale"`
	Args []string `arg:"" help:"vectors written x,y,z; scale takes a scalar then a vector. Operands may start with a minus sign."`
}

func (c EvalCmd) Run() error {
	return c.eval(os.Stdout)
}

func (c EvalCmd) eval(w io.Writer) error {
	want := map[string]int{"mag": 1, "norm": 1, "neg": 1}[c.Op]
	if want == 0 {
		want = 2
	}
	if len(c.Args) != want {
		return fmt.Errorf("%s: %w: want %d, got %d", c.Op, errArgCount, want, len(c.Args))
	}

	if c.Op == "scale" {
		k, err := strconv.ParseFloat(c.Args[0], 32)
		if err != nil {
			return fmt.Errorf("parsing scalar: %w", err)
		}
		v, err := parseVector(c.Args[1])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, vec.Scale(float32(k), v))
		return err
	}

	vs := make([]vec.Vec3, len(c.Args))
	for i, arg := range c.Args {
		v, err := parseVector(arg)
		if err != nil {
			return err
		}
		vs[i] = v
	}

	var result fmt.Stringer
	switch c.Op {
	case "add":
		result = vs[0].Add(vs[1])
	case "sub":
		result = vs[0].Sub(vs[1])
	case "cross":
		result = vec.Cross(vs[0], vs[1])
	case "neg":
		result = vs[0].Neg()
	case "norm":
		n, err := vs[0].SafeNormalized()
		if err != nil {
			return err
		}
		result = n
	case "dot":
		_, err := fmt.Fprintln(w, vec.Dot(vs[0], vs[1]))
		return err
	case "mag":
		_, err := fmt.Fprintln(w, vs[0].Magnitude())
		return err
	default:
		return fmt.Errorf("unknown operation %q", c.Op)
	}
	_, err := fmt.Fprintln(w, result)
	return err
}

type CheckCmd struct {
	Config string `arg:"" name:"config" help:"vector document to check" type:"existingfile"`
}

func (c CheckCmd) Run() error {
	return c.check(os.Stdout)
}

func (c CheckCmd) check(w io.Writer) error {
	doc, err := config.LoadFromFile(c.Config, config.LoadOptions{ResolvePaths: true})
	if err != nil {
		return err
	}
	if errs := doc.Validate(); len(errs) > 0 {
		fmt.Fprint(w, config.FormatValidationErrors(errs))
		return fmt.Errorf("%d validation errors", len(errs))
	}

	for _, group := range []struct {
		name    string
		vectors map[string]vec.Vec3
	}{{"vectors", doc.Vectors}, {"normals", doc.Normals}} {
		for _, name := range config.SortedNames(group.vectors) {
			v := group.vectors[name]
			fmt.Fprintf(w, "%s.%s = %v |%v|\n", group.name, name, v, v.Magnitude())
		}
	}
	return nil
}

type SliceCmd struct {
	Config string `arg:"" name:"config" help:"vector document with a mesh and slice plane" type:"existingfile"`
	Out    string `name:"out" default:"slice.png" help:"output PNG"`
}

func (c SliceCmd) Run() error {
	doc, err := config.LoadFromFile(c.Config, config.LoadOptions{ValidateImmediately: true, ResolvePaths: true})
	if err != nil {
		return err
	}
	if doc.Mesh.Path == "" {
		return fmt.Errorf("%s has no mesh", c.Config)
	}
	m, err := mesh.Load3MF(doc.Mesh.Path, doc.Mesh.Scale)
	if err != nil {
		return err
	}

	plane := mesh.MakePlane(doc.Slice.Point, doc.Slice.Normal)
	paths := plane.SlicePaths(m)
	fmt.Printf("%d triangles, %d paths\n", len(m.Triangles), len(paths))
	if err := gg.SavePNG(c.Out, mesh.Render(paths, doc.Slice.Width, doc.Slice.Height)); err != nil {
		return fmt.Errorf("saving %s: %w", c.Out, err)
	}
	return nil
}
