package qcad

// Entity wraps a Shape with document binding: an id assigned on insertion,
// a layer, and display attributes. An entity with ID 0 has not been added
// to a document yet.
type Entity struct {
	ID         int64
	Layer      string
	Attributes Attributes
	Shape      Shape
}

// NewEntity creates an unbound entity for the given shape on the default
// layer with by-layer attributes.
func NewEntity(shape Shape) *Entity {
	return &Entity{
		Layer: DefaultLayerName,
		Shape: shape,
	}
}

// BoundingBox returns the bounds of the wrapped shape.
func (e *Entity) BoundingBox() Box {
	if e.Shape == nil {
		return EmptyBox()
	}
	return e.Shape.BoundingBox()
}
