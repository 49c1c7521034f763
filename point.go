package qcad

// Point is a position marker shape.
type Point struct {
	Position Vec
}

// NewPoint creates a point shape at (x, y).
func NewPoint(x, y float64) Point {
	return Point{Position: V(x, y)}
}

// ShapeType implements Shape.
func (Point) ShapeType() ShapeType { return ShapePoint }

// BoundingBox implements Shape.
func (p Point) BoundingBox() Box {
	return BoxFromPoints(p.Position)
}
