// Package qcad provides a 2D CAD document model with undoable operations
// and a scripting-oriented drawing facade.
//
// # Overview
//
// qcad separates pure geometry (shapes) from document state (entities).
// A Shape is a geometric primitive with no document binding: Point, Line,
// Arc, Circle, Polyline, Text. An Entity wraps a Shape together with a
// layer and attributes and lives inside a Document. All document mutation
// goes through Operations applied via a DocumentInterface, which maintains
// undo/redo stacks and notifies change listeners.
//
// # Quick Start
//
//	import "github.com/ChenLight-s/qcad"
//
//	app := qcad.NewApplication(qcad.WithDocument(qcad.NewDocument()))
//	s := qcad.NewScript(app)
//
//	// Draw shapes
//	s.AddLine(0, 0, 100, 0)
//	s.AddCircle(50, 50, 25)
//
//	// Batch several additions into a single undo step
//	s.StartTransaction()
//	s.AddLine(0, 0, 0, 100)
//	s.AddLine(100, 0, 100, 100)
//	s.EndTransaction()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Script, Document, DocumentInterface, shapes, operations
//   - text: font loading, metrics and shaping for text entities
//   - export: SVG and PNG output of a document
//   - script: Lua bindings exposing the drawing facade to scripts
//
// # Coordinate System
//
// Uses standard CAD coordinates:
//   - X increases right
//   - Y increases up
//   - Angles in radians, 0 is right, increases counter-clockwise
//
// Exporters flip the Y axis where the target format requires it.
package qcad

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
