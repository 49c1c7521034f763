package qcad

import "testing"

func TestAddObjectOperation(t *testing.T) {
	doc := NewDocument()
	e := NewEntity(NewLine(0, 0, 1, 1))
	op := NewAddObjectOperation(e)

	ids, err := op.Apply(doc)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("affected ids = %d, want 1", len(ids))
	}
	if e.ID != ids[0] {
		t.Errorf("entity id = %d, want %d", e.ID, ids[0])
	}
	if doc.EntityCount() != 1 {
		t.Errorf("EntityCount = %d, want 1", doc.EntityCount())
	}

	if _, err := op.Apply(doc); err == nil {
		t.Error("second Apply should fail")
	}

	if err := op.Undo(doc); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if doc.EntityCount() != 0 {
		t.Errorf("EntityCount after undo = %d, want 0", doc.EntityCount())
	}
	if e.ID != 0 {
		t.Errorf("entity id after undo = %d, want 0", e.ID)
	}
	if err := op.Undo(doc); err == nil {
		t.Error("Undo of unapplied operation should fail")
	}
}

func TestAddObjectOperationWithoutEntity(t *testing.T) {
	op := NewAddObjectOperation(nil)
	if _, err := op.Apply(NewDocument()); err == nil {
		t.Error("Apply without entity should fail")
	}
}

func TestAddObjectsOperation(t *testing.T) {
	doc := NewDocument()
	op := NewAddObjectsOperation()

	if !op.IsEmpty() {
		t.Error("new batch should be empty")
	}

	a := NewEntity(NewLine(0, 0, 1, 0))
	b := NewEntity(NewLine(0, 0, 0, 1))
	op.Append(a)
	op.Append(b)
	if op.Len() != 2 {
		t.Fatalf("Len = %d, want 2", op.Len())
	}

	ids, err := op.Apply(doc)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("affected ids = %d, want 2", len(ids))
	}
	// Submission order is preserved.
	if ids[0] != a.ID || ids[1] != b.ID {
		t.Errorf("ids = %v, want [%d %d]", ids, a.ID, b.ID)
	}
	if doc.EntityCount() != 2 {
		t.Errorf("EntityCount = %d, want 2", doc.EntityCount())
	}

	if err := op.Undo(doc); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if doc.EntityCount() != 0 {
		t.Errorf("EntityCount after undo = %d, want 0", doc.EntityCount())
	}
	if a.ID != 0 || b.ID != 0 {
		t.Errorf("entity ids after undo = %d, %d, want 0, 0", a.ID, b.ID)
	}
}
