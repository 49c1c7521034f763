package qcad

import (
	"fmt"
	"iter"
	"sort"
)

// Document is the in-memory store of entities and layers.
//
// Entities are kept in insertion order, which is also the draw order used
// by exporters. Direct mutation is intentionally unexported: all changes
// flow through Operations applied via a DocumentInterface so that they
// can be undone.
//
// A Document is not safe for concurrent use. Like the scripting
// environment it models, all access is expected to happen from a single
// goroutine.
type Document struct {
	entities map[int64]*Entity
	order    []int64
	layers   map[string]*Layer
	nextID   int64

	currentLayer      string
	currentAttributes Attributes
}

// DocumentOption configures a Document during creation.
type DocumentOption func(*Document)

// WithCurrentAttributes sets the attribute defaults applied to new entities.
func WithCurrentAttributes(attrs Attributes) DocumentOption {
	return func(d *Document) { d.currentAttributes = attrs }
}

// NewDocument creates an empty document containing the default layer "0".
func NewDocument(opts ...DocumentOption) *Document {
	d := &Document{
		entities:     make(map[int64]*Entity),
		layers:       make(map[string]*Layer),
		currentLayer: DefaultLayerName,
	}
	d.layers[DefaultLayerName] = NewLayer(DefaultLayerName)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AddLayer adds a layer to the document.
// Returns an error if a layer with the same name already exists.
func (d *Document) AddLayer(layer *Layer) error {
	if layer == nil || layer.Name == "" {
		return fmt.Errorf("qcad: layer must have a name")
	}
	if _, ok := d.layers[layer.Name]; ok {
		return fmt.Errorf("qcad: layer %q already exists", layer.Name)
	}
	d.layers[layer.Name] = layer
	return nil
}

// Layer returns the layer with the given name, or nil if absent.
func (d *Document) Layer(name string) *Layer {
	return d.layers[name]
}

// Layers returns all layers sorted by name.
func (d *Document) Layers() []*Layer {
	out := make([]*Layer, 0, len(d.layers))
	for _, l := range d.layers {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CurrentLayer returns the layer new entities are placed on.
func (d *Document) CurrentLayer() *Layer {
	return d.layers[d.currentLayer]
}

// SetCurrentLayer selects the layer new entities are placed on.
// The layer must already exist.
func (d *Document) SetCurrentLayer(name string) error {
	if _, ok := d.layers[name]; !ok {
		return fmt.Errorf("qcad: no such layer %q", name)
	}
	d.currentLayer = name
	return nil
}

// CurrentAttributes returns the attribute defaults applied to new entities.
func (d *Document) CurrentAttributes() Attributes {
	return d.currentAttributes
}

// SetCurrentAttributes sets the attribute defaults applied to new entities.
func (d *Document) SetCurrentAttributes(attrs Attributes) {
	d.currentAttributes = attrs
}

// WrapShape converts a raw shape into an entity bound to the current layer
// with the current attribute defaults. The entity is not added to the
// document; submit it through an operation.
func (d *Document) WrapShape(shape Shape) *Entity {
	return &Entity{
		Layer:      d.currentLayer,
		Attributes: d.currentAttributes,
		Shape:      shape,
	}
}

// EntityCount returns the number of entities in the document.
func (d *Document) EntityCount() int {
	return len(d.order)
}

// Entity returns the entity with the given id, or nil if absent.
func (d *Document) Entity(id int64) *Entity {
	return d.entities[id]
}

// Entities iterates over all entities in insertion order.
func (d *Document) Entities() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, id := range d.order {
			if e, ok := d.entities[id]; ok {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// BoundingBox returns the union of all entity bounds.
// Returns an invalid box for an empty document.
func (d *Document) BoundingBox() Box {
	b := EmptyBox()
	for e := range d.Entities() {
		b = b.Union(e.BoundingBox())
	}
	return b
}

// ResolveAttributes returns the entity's attributes with by-layer fields
// filled in from its layer.
func (d *Document) ResolveAttributes(e *Entity) Attributes {
	if layer := d.layers[e.Layer]; layer != nil {
		return e.Attributes.Merge(layer.Attributes)
	}
	return e.Attributes
}

// addEntity assigns an id and inserts the entity. Only operations call this.
func (d *Document) addEntity(e *Entity) int64 {
	d.nextID++
	e.ID = d.nextID
	d.entities[e.ID] = e
	d.order = append(d.order, e.ID)
	return e.ID
}

// removeEntity deletes the entity with the given id. Only operations call
// this (during undo).
func (d *Document) removeEntity(id int64) error {
	if _, ok := d.entities[id]; !ok {
		return fmt.Errorf("qcad: no entity with id %d", id)
	}
	delete(d.entities, id)
	for i, oid := range d.order {
		if oid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return nil
}
