package qcad

import "fmt"

// Operation is a unit of undoable document mutation.
//
// Apply performs the mutation and returns the ids of affected entities.
// Undo reverses a previously applied operation. An operation must not be
// applied to more than one document.
type Operation interface {
	Apply(doc *Document) ([]int64, error)
	Undo(doc *Document) error
}

// AddObjectOperation adds a single entity to a document.
type AddObjectOperation struct {
	entity *Entity
	id     int64
}

// NewAddObjectOperation creates an operation that adds one entity.
func NewAddObjectOperation(entity *Entity) *AddObjectOperation {
	return &AddObjectOperation{entity: entity}
}

// Apply implements Operation.
func (op *AddObjectOperation) Apply(doc *Document) ([]int64, error) {
	if op.entity == nil {
		return nil, fmt.Errorf("qcad: add operation has no entity")
	}
	if op.id != 0 {
		return nil, fmt.Errorf("qcad: operation already applied")
	}
	op.id = doc.addEntity(op.entity)
	return []int64{op.id}, nil
}

// Undo implements Operation.
func (op *AddObjectOperation) Undo(doc *Document) error {
	if op.id == 0 {
		return fmt.Errorf("qcad: operation was never applied")
	}
	if err := doc.removeEntity(op.id); err != nil {
		return err
	}
	op.entity.ID = 0
	op.id = 0
	return nil
}

// AddObjectsOperation adds a batch of entities to a document as a single
// undo step. Submission order is preserved. It also serves as the pending
// accumulator for Script transactions.
type AddObjectsOperation struct {
	entities []*Entity
	ids      []int64
}

// NewAddObjectsOperation creates an empty batch add operation.
func NewAddObjectsOperation() *AddObjectsOperation {
	return &AddObjectsOperation{}
}

// Append adds an entity to the batch. Must be called before Apply.
func (op *AddObjectsOperation) Append(entity *Entity) {
	op.entities = append(op.entities, entity)
}

// Len returns the number of entities in the batch.
func (op *AddObjectsOperation) Len() int {
	return len(op.entities)
}

// IsEmpty reports whether the batch holds no entities.
func (op *AddObjectsOperation) IsEmpty() bool {
	return len(op.entities) == 0
}

// Apply implements Operation.
func (op *AddObjectsOperation) Apply(doc *Document) ([]int64, error) {
	if op.ids != nil {
		return nil, fmt.Errorf("qcad: operation already applied")
	}
	op.ids = make([]int64, 0, len(op.entities))
	for _, e := range op.entities {
		op.ids = append(op.ids, doc.addEntity(e))
	}
	return op.ids, nil
}

// Undo implements Operation.
// Entities are removed in reverse insertion order.
func (op *AddObjectsOperation) Undo(doc *Document) error {
	if op.ids == nil {
		return fmt.Errorf("qcad: operation was never applied")
	}
	for i := len(op.ids) - 1; i >= 0; i-- {
		if err := doc.removeEntity(op.ids[i]); err != nil {
			return err
		}
		op.entities[i].ID = 0
	}
	op.ids = nil
	return nil
}
