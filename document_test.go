package qcad

import "testing"

func TestNewDocumentHasDefaultLayer(t *testing.T) {
	doc := NewDocument()

	if doc.Layer(DefaultLayerName) == nil {
		t.Fatal("new document must contain layer 0")
	}
	if doc.CurrentLayer().Name != DefaultLayerName {
		t.Errorf("current layer = %q, want %q", doc.CurrentLayer().Name, DefaultLayerName)
	}
	if doc.EntityCount() != 0 {
		t.Errorf("EntityCount = %d, want 0", doc.EntityCount())
	}
}

func TestDocumentLayers(t *testing.T) {
	doc := NewDocument()

	if err := doc.AddLayer(NewLayer("walls")); err != nil {
		t.Fatalf("AddLayer: %v", err)
	}
	if err := doc.AddLayer(NewLayer("walls")); err == nil {
		t.Error("duplicate layer should be rejected")
	}
	if err := doc.AddLayer(nil); err == nil {
		t.Error("nil layer should be rejected")
	}

	if err := doc.SetCurrentLayer("walls"); err != nil {
		t.Fatalf("SetCurrentLayer: %v", err)
	}
	if doc.CurrentLayer().Name != "walls" {
		t.Errorf("current layer = %q, want walls", doc.CurrentLayer().Name)
	}
	if err := doc.SetCurrentLayer("missing"); err == nil {
		t.Error("SetCurrentLayer on missing layer should fail")
	}

	layers := doc.Layers()
	if len(layers) != 2 {
		t.Fatalf("Layers = %d, want 2", len(layers))
	}
	// Sorted by name: "0" before "walls".
	if layers[0].Name != "0" || layers[1].Name != "walls" {
		t.Errorf("layer order = %q, %q", layers[0].Name, layers[1].Name)
	}
}

func TestWrapShapeAppliesDefaults(t *testing.T) {
	doc := NewDocument(WithCurrentAttributes(Attributes{Color: "#ff0000"}))
	if err := doc.AddLayer(NewLayer("dims")); err != nil {
		t.Fatalf("AddLayer: %v", err)
	}
	if err := doc.SetCurrentLayer("dims"); err != nil {
		t.Fatalf("SetCurrentLayer: %v", err)
	}

	e := doc.WrapShape(NewLine(0, 0, 1, 1))
	if e.Layer != "dims" {
		t.Errorf("entity layer = %q, want dims", e.Layer)
	}
	if e.Attributes.Color != "#ff0000" {
		t.Errorf("entity color = %q, want #ff0000", e.Attributes.Color)
	}
	if e.ID != 0 {
		t.Errorf("wrapped entity should be unbound, got id %d", e.ID)
	}
}

func TestDocumentEntityOrder(t *testing.T) {
	doc := NewDocument()

	var ids []int64
	for i := 0; i < 3; i++ {
		ids = append(ids, doc.addEntity(NewEntity(NewPoint(float64(i), 0))))
	}

	if doc.EntityCount() != 3 {
		t.Fatalf("EntityCount = %d, want 3", doc.EntityCount())
	}

	var got []int64
	for e := range doc.Entities() {
		got = append(got, e.ID)
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Errorf("iteration order[%d] = %d, want %d", i, got[i], ids[i])
		}
	}

	if err := doc.removeEntity(ids[1]); err != nil {
		t.Fatalf("removeEntity: %v", err)
	}
	if doc.EntityCount() != 2 {
		t.Errorf("EntityCount after remove = %d, want 2", doc.EntityCount())
	}
	if doc.Entity(ids[1]) != nil {
		t.Error("removed entity still retrievable")
	}
	if err := doc.removeEntity(ids[1]); err == nil {
		t.Error("removing a missing entity should fail")
	}
}

func TestDocumentBoundingBox(t *testing.T) {
	doc := NewDocument()
	if doc.BoundingBox().IsValid() {
		t.Error("empty document should have invalid bounds")
	}

	doc.addEntity(NewEntity(NewLine(0, 0, 10, 0)))
	doc.addEntity(NewEntity(NewCircle(0, 0, 5)))

	b := doc.BoundingBox()
	if b.Min != V(-5, -5) || b.Max != V(10, 5) {
		t.Errorf("BoundingBox = %+v, want min(-5,-5) max(10,5)", b)
	}
}

func TestResolveAttributes(t *testing.T) {
	doc := NewDocument()

	e := doc.WrapShape(NewLine(0, 0, 1, 1))
	attrs := doc.ResolveAttributes(e)
	// By-layer fields come from layer 0.
	if attrs.Color != "#000000" {
		t.Errorf("resolved color = %q, want #000000", attrs.Color)
	}
	if attrs.Linetype != "CONTINUOUS" {
		t.Errorf("resolved linetype = %q, want CONTINUOUS", attrs.Linetype)
	}

	e.Attributes.Color = "#00ff00"
	attrs = doc.ResolveAttributes(e)
	if attrs.Color != "#00ff00" {
		t.Errorf("entity color should win, got %q", attrs.Color)
	}
}
