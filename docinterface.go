package qcad

import "log/slog"

// ChangeListener is notified after an operation, undo or redo has mutated
// the document. The ids are the affected entities. Listeners stand in for
// the host application's redraw hook.
type ChangeListener func(ids []int64)

// DocumentInterface owns a Document and applies Operations to it,
// maintaining undo/redo history and notifying change listeners.
//
// Each applied operation is exactly one undo step and produces exactly
// one listener notification, so a batched add of N entities redraws once.
type DocumentInterface struct {
	doc       *Document
	undoStack []Operation
	redoStack []Operation
	listeners []ChangeListener
}

// NewDocumentInterface creates a document interface for the given document.
// A nil document gets a fresh empty one.
func NewDocumentInterface(doc *Document) *DocumentInterface {
	if doc == nil {
		doc = NewDocument()
	}
	return &DocumentInterface{doc: doc}
}

// Document returns the underlying document.
func (di *DocumentInterface) Document() *Document {
	if di == nil {
		return nil
	}
	return di.doc
}

// AddChangeListener registers a listener invoked after every mutation.
func (di *DocumentInterface) AddChangeListener(l ChangeListener) {
	di.listeners = append(di.listeners, l)
}

// ApplyOperation applies an operation, records it for undo and clears the
// redo history. Listeners are notified once with the affected ids.
func (di *DocumentInterface) ApplyOperation(op Operation) ([]int64, error) {
	ids, err := op.Apply(di.doc)
	if err != nil {
		return nil, err
	}
	di.undoStack = append(di.undoStack, op)
	di.redoStack = nil
	Logger().Debug("operation applied", slog.Int("affected", len(ids)))
	di.notify(ids)
	return ids, nil
}

// CanUndo reports whether there is an operation to undo.
func (di *DocumentInterface) CanUndo() bool {
	return len(di.undoStack) > 0
}

// CanRedo reports whether there is an operation to redo.
func (di *DocumentInterface) CanRedo() bool {
	return len(di.redoStack) > 0
}

// Undo reverses the most recent operation.
// Returns false if there is nothing to undo.
func (di *DocumentInterface) Undo() (bool, error) {
	if len(di.undoStack) == 0 {
		return false, nil
	}
	op := di.undoStack[len(di.undoStack)-1]
	if err := op.Undo(di.doc); err != nil {
		return false, err
	}
	di.undoStack = di.undoStack[:len(di.undoStack)-1]
	di.redoStack = append(di.redoStack, op)
	di.notify(nil)
	return true, nil
}

// Redo re-applies the most recently undone operation.
// Returns false if there is nothing to redo.
func (di *DocumentInterface) Redo() (bool, error) {
	if len(di.redoStack) == 0 {
		return false, nil
	}
	op := di.redoStack[len(di.redoStack)-1]
	ids, err := op.Apply(di.doc)
	if err != nil {
		return false, err
	}
	di.redoStack = di.redoStack[:len(di.redoStack)-1]
	di.undoStack = append(di.undoStack, op)
	di.notify(ids)
	return true, nil
}

func (di *DocumentInterface) notify(ids []int64) {
	for _, l := range di.listeners {
		l(ids)
	}
}
