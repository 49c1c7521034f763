// Package text provides font loading, metrics and shaping for text
// entities.
//
// A Source is a parsed font file; it is heavyweight and should be shared.
// A Face is a lightweight view of a Source at a specific size. Shaping
// (text to positioned glyphs) is done with go-text/typesetting's HarfBuzz
// implementation, so kerning and ligatures are applied. Glyph outlines
// for rasterization come from the sfnt tables via golang.org/x/image.
//
// The Registry maps the font *names* carried by text shapes (e.g.
// "Standard") to Sources. DefaultRegistry resolves "Standard" to the
// embedded Go Regular font so documents render without any font files
// on disk.
package text
