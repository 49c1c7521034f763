package qcad

import "math"

// Arc is a circular arc. Angles are in radians, measured counter-clockwise
// from the positive X axis. The arc runs from StartAngle to EndAngle
// counter-clockwise, or clockwise when Reversed is set.
type Arc struct {
	Center     Vec
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Reversed   bool
}

// NewArc creates an arc centered at (cx, cy).
func NewArc(cx, cy, radius, startAngle, endAngle float64, reversed bool) Arc {
	return Arc{
		Center:     V(cx, cy),
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Reversed:   reversed,
	}
}

// ShapeType implements Shape.
func (Arc) ShapeType() ShapeType { return ShapeArc }

// StartPoint returns the point where the arc begins.
func (a Arc) StartPoint() Vec {
	return a.Center.Add(Polar(a.StartAngle, a.Radius))
}

// EndPoint returns the point where the arc ends.
func (a Arc) EndPoint() Vec {
	return a.Center.Add(Polar(a.EndAngle, a.Radius))
}

// PointAt returns the point on the arc's circle at the given angle.
// The angle is not required to lie within the arc's sweep.
func (a Arc) PointAt(angle float64) Vec {
	return a.Center.Add(Polar(angle, a.Radius))
}

// SweepAngle returns the swept angle in (0, 2*pi], positive regardless
// of direction. A zero angular difference is treated as a full circle,
// matching the common CAD convention for arcs.
func (a Arc) SweepAngle() float64 {
	var sweep float64
	if a.Reversed {
		sweep = normalizeAngle(a.StartAngle - a.EndAngle)
	} else {
		sweep = normalizeAngle(a.EndAngle - a.StartAngle)
	}
	if sweep == 0 {
		sweep = 2 * math.Pi
	}
	return sweep
}

// ContainsAngle reports whether the given angle lies within the arc's sweep.
func (a Arc) ContainsAngle(angle float64) bool {
	var offset float64
	if a.Reversed {
		offset = normalizeAngle(a.StartAngle - angle)
	} else {
		offset = normalizeAngle(angle - a.StartAngle)
	}
	return offset <= a.SweepAngle()
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	return a.Radius * a.SweepAngle()
}

// BoundingBox implements Shape.
// The bounds cover both endpoints plus every axis extreme of the circle
// that lies within the sweep.
func (a Arc) BoundingBox() Box {
	b := BoxFromPoints(a.StartPoint(), a.EndPoint())
	for i := 0; i < 4; i++ {
		axis := float64(i) * math.Pi / 2
		if a.ContainsAngle(axis) {
			b = b.GrowToPoint(a.PointAt(axis))
		}
	}
	return b
}

// normalizeAngle maps an angle to [0, 2*pi).
func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}
