// Package export renders a qcad document to SVG or PNG.
//
// Both exporters iterate the document's entities in insertion order,
// resolve by-layer attributes, and flip the Y axis from the CAD
// convention (y up) to the raster/SVG convention (y down). SVG keeps
// entities as vector elements; PNG rasterizes entity strokes and text
// glyph outlines with golang.org/x/image/vector.
package export
