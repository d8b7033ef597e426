package models

import "github.com/taigrr/unclip/pkg/math3d"

// Box is an axis-aligned bounding box.
type Box struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// Expand returns the smallest box containing b and p.
func (b Box) Expand(p math3d.Vec3) Box {
	return Box{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Center returns the center of the box.
func (b Box) Center() math3d.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the box.
func (b Box) Size() math3d.Vec3 {
	return b.Max.Sub(b.Min)
}

// Diagonal returns the length of the box diagonal.
func (b Box) Diagonal() float64 {
	return b.Size().Len()
}

// Contains returns true if p is inside or on the box.
func (b Box) Contains(p math3d.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
