package qcad

// ShapeType identifies the kind of a geometric primitive.
type ShapeType int

const (
	// ShapePoint is a single position marker.
	ShapePoint ShapeType = iota

	// ShapeLine is a straight segment between two points.
	ShapeLine

	// ShapeArc is a circular arc.
	ShapeArc

	// ShapeCircle is a full circle.
	ShapeCircle

	// ShapePolyline is an ordered sequence of vertices.
	ShapePolyline

	// ShapeText is a text label.
	ShapeText
)

// String returns a string representation of the shape type.
func (t ShapeType) String() string {
	switch t {
	case ShapePoint:
		return "point"
	case ShapeLine:
		return "line"
	case ShapeArc:
		return "arc"
	case ShapeCircle:
		return "circle"
	case ShapePolyline:
		return "polyline"
	case ShapeText:
		return "text"
	default:
		return "unknown"
	}
}

// Shape is a pure geometric primitive with no document binding.
// Shapes become document objects only when wrapped in an Entity.
type Shape interface {
	// ShapeType returns the kind of this shape.
	ShapeType() ShapeType

	// BoundingBox returns the axis-aligned bounds of the shape.
	BoundingBox() Box
}
