package qcad

// Polyline is an ordered sequence of vertices, optionally closed.
// Vertex order is significant and preserved.
type Polyline struct {
	vertices []Vec
	closed   bool
}

// NewPolyline creates a polyline from the given vertices.
// The vertex slice is copied.
func NewPolyline(vertices []Vec, closed bool) *Polyline {
	p := &Polyline{
		vertices: make([]Vec, len(vertices)),
		closed:   closed,
	}
	copy(p.vertices, vertices)
	return p
}

// ShapeType implements Shape.
func (*Polyline) ShapeType() ShapeType { return ShapePolyline }

// AppendVertex adds a vertex at the end of the polyline.
func (p *Polyline) AppendVertex(v Vec) {
	p.vertices = append(p.vertices, v)
}

// CountVertices returns the number of vertices.
func (p *Polyline) CountVertices() int {
	return len(p.vertices)
}

// VertexAt returns the vertex at index i.
func (p *Polyline) VertexAt(i int) Vec {
	return p.vertices[i]
}

// Vertices returns a copy of the vertex list in input order.
func (p *Polyline) Vertices() []Vec {
	out := make([]Vec, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// IsClosed reports whether the polyline is closed.
func (p *Polyline) IsClosed() bool {
	return p.closed
}

// SetClosed marks the polyline as closed or open.
func (p *Polyline) SetClosed(closed bool) {
	p.closed = closed
}

// Segments returns the polyline's segments in order, including the
// closing segment for a closed polyline with at least three vertices.
func (p *Polyline) Segments() []Line {
	if len(p.vertices) < 2 {
		return nil
	}
	segments := make([]Line, 0, len(p.vertices))
	for i := 1; i < len(p.vertices); i++ {
		segments = append(segments, Line{From: p.vertices[i-1], To: p.vertices[i]})
	}
	if p.closed && len(p.vertices) >= 3 {
		segments = append(segments, Line{From: p.vertices[len(p.vertices)-1], To: p.vertices[0]})
	}
	return segments
}

// Length returns the total length of all segments.
func (p *Polyline) Length() float64 {
	var total float64
	for _, s := range p.Segments() {
		total += s.Length()
	}
	return total
}

// BoundingBox implements Shape.
func (p *Polyline) BoundingBox() Box {
	return BoxFromPoints(p.vertices...)
}
