package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/taigrr/unclip/pkg/math3d"
	"github.com/taigrr/unclip/pkg/render"
)

var (
	_ pflag.Value = (*vecFlag)(nil)
	_ pflag.Value = (*rgbFlag)(nil)
)

// vecFlag is a "x,y,z" command-line vector.
type vecFlag struct {
	v   math3d.Vec3
	set bool
}

func newVecFlag(v math3d.Vec3) *vecFlag {
	return &vecFlag{v: v}
}

func (f *vecFlag) String() string { return formatVec(f.v) }
func (f *vecFlag) Type() string   { return "x,y,z" }

func (f *vecFlag) Set(s string) error {
	v, err := parseVec3(s)
	if err != nil {
		return err
	}
	f.v, f.set = v, true
	return nil
}

// parseVec3 parses three comma separated numbers.
func parseVec3(s string) (math3d.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math3d.Vec3{}, fmt.Errorf("vector %q: want x,y,z", s)
	}

	var c [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("vector %q: %w", s, err)
		}
		c[i] = f
	}
	return math3d.V3(c[0], c[1], c[2]), nil
}

func formatVec(v math3d.Vec3) string {
	return fmt.Sprintf("%g,%g,%g", v.X, v.Y, v.Z)
}

// rgbFlag is an "r,g,b" command-line color.
type rgbFlag struct {
	c render.Color
}

func (f *rgbFlag) String() string {
	return fmt.Sprintf("%d,%d,%d", f.c.R, f.c.G, f.c.B)
}

func (f *rgbFlag) Type() string { return "r,g,b" }

func (f *rgbFlag) Set(s string) error {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return fmt.Errorf("color %q: %w", s, err)
	}
	f.c = render.RGB(r, g, b)
	return nil
}
