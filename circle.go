package qcad

import "math"

// Circle is a full circle.
type Circle struct {
	Center Vec
	Radius float64
}

// NewCircle creates a circle centered at (cx, cy).
func NewCircle(cx, cy, radius float64) Circle {
	return Circle{Center: V(cx, cy), Radius: radius}
}

// ShapeType implements Shape.
func (Circle) ShapeType() ShapeType { return ShapeCircle }

// BoundingBox implements Shape.
func (c Circle) BoundingBox() Box {
	r := V(c.Radius, c.Radius)
	return Box{Min: c.Center.Sub(r), Max: c.Center.Add(r)}
}

// Circumference returns the perimeter length of the circle.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// PointAt returns the point on the circle at the given angle (radians).
func (c Circle) PointAt(angle float64) Vec {
	return c.Center.Add(Polar(angle, c.Radius))
}
