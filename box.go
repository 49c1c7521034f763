package qcad

import "math"

// Box is an axis-aligned bounding box.
// The zero value is not meaningful; use EmptyBox or BoxFromPoints.
type Box struct {
	Min, Max Vec
}

// EmptyBox returns an invalid box that unions cleanly with any point or box.
func EmptyBox() Box {
	return Box{
		Min: Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// BoxFromPoints returns the smallest box containing all given points.
func BoxFromPoints(points ...Vec) Box {
	b := EmptyBox()
	for _, p := range points {
		b = b.GrowToPoint(p)
	}
	return b
}

// IsValid reports whether the box contains at least one point.
func (b Box) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y
}

// GrowToPoint returns the box extended to contain p.
func (b Box) GrowToPoint(p Vec) Box {
	return Box{
		Min: Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest box containing both boxes.
// An invalid box acts as the identity element.
func (b Box) Union(o Box) Box {
	if !o.IsValid() {
		return b
	}
	if !b.IsValid() {
		return o
	}
	return b.GrowToPoint(o.Min).GrowToPoint(o.Max)
}

// Grow returns the box expanded by margin on all sides.
func (b Box) Grow(margin float64) Box {
	return Box{
		Min: Vec{X: b.Min.X - margin, Y: b.Min.Y - margin},
		Max: Vec{X: b.Max.X + margin, Y: b.Max.Y + margin},
	}
}

// Contains reports whether p lies inside the box (inclusive).
func (b Box) Contains(p Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return Vec{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}
