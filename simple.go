package qcad

import (
	"errors"
	"log/slog"
)

// ErrNoDocument is returned by Script drawing methods when no document
// interface can be resolved from the application context.
var ErrNoDocument = errors.New("qcad: no active document")

// Script is a drawing session: it normalizes convenience calls into fully
// specified entity additions and submits them to the active document,
// either immediately or batched within an open transaction.
//
// Script replaces the ambient global state of classic CAD scripting
// environments with an explicit session object. Each drawing call
// resolves the document interface from the application anew, so swapping
// the active document between calls behaves like it would in a host
// application.
//
// At most one transaction accumulator is live per session, and a Script
// must only be used from a single goroutine.
type Script struct {
	app     *Application
	useOp   bool
	pending *AddObjectsOperation
}

// NewScript creates a drawing session bound to the given application.
func NewScript(app *Application) *Script {
	return &Script{app: app}
}

// MainWindow returns the application's main window, or nil.
func (s *Script) MainWindow() *MainWindow {
	if s.app == nil {
		return nil
	}
	return s.app.MainWindow()
}

// DocumentInterface returns the active document interface, or nil.
func (s *Script) DocumentInterface() *DocumentInterface {
	return s.MainWindow().DocumentInterface()
}

// Document returns the active document, or nil.
func (s *Script) Document() *Document {
	return s.DocumentInterface().Document()
}

// AddPoint adds a point marker at (x, y).
func (s *Script) AddPoint(x, y float64) (*Entity, error) {
	return s.AddPointV(V(x, y))
}

// AddPointV adds a point marker at the given position.
// Equivalent to AddPoint with the unpacked coordinates.
func (s *Script) AddPointV(position Vec) (*Entity, error) {
	return s.AddShape(Point{Position: position})
}

// AddLine adds a line from (x1, y1) to (x2, y2).
func (s *Script) AddLine(x1, y1, x2, y2 float64) (*Entity, error) {
	return s.AddLineV(V(x1, y1), V(x2, y2))
}

// AddLineV adds a line between the given points.
// Equivalent to AddLine with the unpacked coordinates.
func (s *Script) AddLineV(from, to Vec) (*Entity, error) {
	return s.AddShape(Line{From: from, To: to})
}

// AddArc adds an arc centered at (cx, cy). Angles are in radians; the arc
// runs counter-clockwise from startAngle to endAngle unless reversed.
func (s *Script) AddArc(cx, cy, radius, startAngle, endAngle float64, reversed bool) (*Entity, error) {
	return s.AddArcV(V(cx, cy), radius, startAngle, endAngle, reversed)
}

// AddArcV adds an arc around the given center.
// Equivalent to AddArc with the unpacked coordinates.
func (s *Script) AddArcV(center Vec, radius, startAngle, endAngle float64, reversed bool) (*Entity, error) {
	return s.AddShape(Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Reversed:   reversed,
	})
}

// AddCircle adds a circle centered at (cx, cy).
func (s *Script) AddCircle(cx, cy, radius float64) (*Entity, error) {
	return s.AddCircleV(V(cx, cy), radius)
}

// AddCircleV adds a circle around the given center.
// Equivalent to AddCircle with the unpacked coordinates.
func (s *Script) AddCircleV(center Vec, radius float64) (*Entity, error) {
	return s.AddShape(Circle{Center: center, Radius: radius})
}

// PolylineOption configures a polyline added via AddPolyline.
type PolylineOption func(*Polyline)

// WithClosed marks the polyline as closed. Polylines are open by default.
func WithClosed() PolylineOption {
	return func(p *Polyline) { p.closed = true }
}

// AddPolyline adds a polyline through the given points, in order.
// The polyline is open unless the WithClosed option is given.
func (s *Script) AddPolyline(points []Vec, opts ...PolylineOption) (*Entity, error) {
	p := NewPolyline(points, false)
	for _, opt := range opts {
		opt(p)
	}
	return s.AddShape(p)
}

// AddSimpleText adds a single-line text label at (x, y). Unless overridden
// by options the text uses height 1.0, no rotation, the "Standard" font,
// top/left alignment and a regular style.
//
// The text entity is built directly against the active document rather
// than through AddShape, so the current attribute defaults still apply
// but the shape is constructed fully specified.
func (s *Script) AddSimpleText(value string, x, y float64, opts ...TextOption) (*Entity, error) {
	doc := s.Document()
	if doc == nil {
		return nil, ErrNoDocument
	}
	entity := doc.WrapShape(NewText(value, x, y, opts...))
	if err := s.AddEntity(entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// AddShape converts a raw shape into an entity using the current layer and
// attribute defaults, then submits it.
func (s *Script) AddShape(shape Shape) (*Entity, error) {
	doc := s.Document()
	if doc == nil {
		return nil, ErrNoDocument
	}
	entity := doc.WrapShape(shape)
	if err := s.AddEntity(entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// AddEntity submits an entity to the active document. With an open
// transaction the entity is appended to the pending batch and the
// document is not touched until EndTransaction; otherwise it is applied
// immediately as a single add operation.
func (s *Script) AddEntity(entity *Entity) error {
	if s.useOp {
		if s.pending == nil {
			s.pending = NewAddObjectsOperation()
		}
		s.pending.Append(entity)
		return nil
	}
	di := s.DocumentInterface()
	if di == nil {
		return ErrNoDocument
	}
	_, err := di.ApplyOperation(NewAddObjectOperation(entity))
	return err
}

// StartTransaction begins batching entity additions. Entities added until
// the next EndTransaction are committed as one operation (one undo step).
//
// Starting a transaction while a previous one is still open discards any
// entities queued since that earlier StartTransaction.
func (s *Script) StartTransaction() {
	if s.pending != nil && !s.pending.IsEmpty() {
		Logger().Warn("discarding unterminated transaction",
			slog.Int("queued", s.pending.Len()))
	}
	s.pending = nil
	s.useOp = true
}

// EndTransaction commits the pending batch, if any, as a single operation
// and closes the transaction. Without queued entities it only clears the
// transaction flag.
func (s *Script) EndTransaction() error {
	s.useOp = false
	if s.pending == nil {
		return nil
	}
	op := s.pending
	s.pending = nil
	di := s.DocumentInterface()
	if di == nil {
		return ErrNoDocument
	}
	_, err := di.ApplyOperation(op)
	return err
}

// InTransaction reports whether a transaction is currently open.
func (s *Script) InTransaction() bool {
	return s.useOp
}
