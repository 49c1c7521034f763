// Package script hosts Lua drawing scripts against a qcad drawing
// session.
//
// The bindings mirror the classic CAD scripting convenience layer:
// global functions addPoint, addLine, addArc, addCircle, addPolyline,
// addSimpleText, startTransaction and endTransaction, with optional
// trailing arguments carrying the usual defaults (open polylines,
// height 1.0, the "Standard" font, top/left alignment). Scripts run in
// a fresh interpreter per Run call; the only state shared between calls
// is the drawing session itself.
package script
