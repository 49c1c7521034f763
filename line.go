package qcad

// Line is a straight segment between two points.
type Line struct {
	From, To Vec
}

// NewLine creates a line from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64) Line {
	return Line{From: V(x1, y1), To: V(x2, y2)}
}

// ShapeType implements Shape.
func (Line) ShapeType() ShapeType { return ShapeLine }

// BoundingBox implements Shape.
func (l Line) BoundingBox() Box {
	return BoxFromPoints(l.From, l.To)
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return l.From.Distance(l.To)
}

// Angle returns the direction of the line in radians.
func (l Line) Angle() float64 {
	return l.From.AngleTo(l.To)
}

// Middle returns the midpoint of the segment.
func (l Line) Middle() Vec {
	return l.From.Lerp(l.To, 0.5)
}
