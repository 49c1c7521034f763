package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphID identifies a glyph within its font.
type GlyphID uint16

// Face is a lightweight view of a Source at a specific size.
// Faces from the same Source share the parsed font.
type Face struct {
	source *Source
	size   float64
}

// Source returns the Source this face was created from.
func (f *Face) Source() *Source {
	return f.source
}

// Size returns the size of this face.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the font metrics scaled to this face's size.
func (f *Face) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.source.parsed.Metrics(&buf, f.fixedSize(), font.HintingNone)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   fixedToFloat(m.Height) - ascent - descent,
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// Advance returns the total advance width of the text at this face's
// size, after shaping (kerning and ligatures applied).
func (f *Face) Advance(text string) float64 {
	out, err := f.shape(text)
	if err != nil {
		return 0
	}
	return fixedToFloat(out.Advance)
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	gid, err := f.source.parsed.GlyphIndex(&buf, r)
	return err == nil && gid != 0
}

// SegmentOp is the type of a glyph outline path operation.
type SegmentOp uint8

const (
	// SegmentOpMoveTo starts a new contour.
	SegmentOpMoveTo SegmentOp = iota

	// SegmentOpLineTo draws a line to Args[0].
	SegmentOpLineTo

	// SegmentOpQuadTo draws a quadratic bezier via Args[0] to Args[1].
	SegmentOpQuadTo

	// SegmentOpCubeTo draws a cubic bezier via Args[0], Args[1] to Args[2].
	SegmentOpCubeTo
)

// SegmentPoint is a point in glyph outline coordinates.
// X grows right, Y grows down (raster convention).
type SegmentPoint struct {
	X, Y float64
}

// Segment is one path operation of a glyph outline.
type Segment struct {
	Op   SegmentOp
	Args [3]SegmentPoint
}

// GlyphOutline returns the outline of the glyph scaled to this face's
// size, in raster coordinates (Y down, origin at the baseline).
func (f *Face) GlyphOutline(gid GlyphID) ([]Segment, error) {
	var buf sfnt.Buffer
	raw, err := f.source.parsed.LoadGlyph(&buf, sfnt.GlyphIndex(gid), f.fixedSize(), nil)
	if err != nil {
		return nil, fmt.Errorf("text: failed to load glyph %d: %w", gid, err)
	}

	segments := make([]Segment, len(raw))
	for i, seg := range raw {
		out := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = SegmentOpMoveTo
		case sfnt.SegmentOpLineTo:
			out.Op = SegmentOpLineTo
		case sfnt.SegmentOpQuadTo:
			out.Op = SegmentOpQuadTo
		case sfnt.SegmentOpCubeTo:
			out.Op = SegmentOpCubeTo
		}
		for j, p := range seg.Args {
			out.Args[j] = SegmentPoint{
				X: fixedToFloat(p.X),
				Y: fixedToFloat(p.Y),
			}
		}
		segments[i] = out
	}
	return segments, nil
}

func (f *Face) fixedSize() fixed.Int26_6 {
	return floatToFixed(f.size)
}

// floatToFixed converts a float64 size to fixed.Int26_6 (6 fractional bits).
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
