package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Glyph is a positioned glyph produced by shaping.
// X and Y are offsets from the text origin at the baseline, in the face's
// size units; Y grows down.
type Glyph struct {
	GID     GlyphID
	Cluster int
	X, Y    float64
}

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has internal
// mutable state and is not safe for concurrent use, but reusing instances
// across sequential calls avoids reallocation.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape converts text into positioned glyphs using HarfBuzz shaping, so
// kerning pairs, ligatures and complex scripts are handled. Returns nil
// for empty text or when the font cannot be parsed for shaping.
func (f *Face) Shape(text string) []Glyph {
	out, err := f.shape(text)
	if err != nil || len(out.Glyphs) == 0 {
		return nil
	}

	glyphs := make([]Glyph, len(out.Glyphs))
	var x, y float64
	for i, g := range out.Glyphs {
		glyphs[i] = Glyph{
			GID:     GlyphID(g.GlyphID),
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       y - fixedToFloat(g.YOffset),
		}
		x += fixedToFloat(g.XAdvance)
		y += fixedToFloat(g.YAdvance)
	}
	return glyphs
}

// shape runs HarfBuzz shaping over the whole string as a single
// left-to-right run. Mixed-direction text would need run splitting first;
// CAD labels are short single-direction strings in practice.
func (f *Face) shape(text string) (shaping.Output, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return shaping.Output{}, nil
	}

	shapingFont, err := f.source.typesettingFont()
	if err != nil {
		return shaping.Output{}, err
	}

	// font.Face is not safe for concurrent use; create one per call.
	// font.NewFace is cheap, it wraps the shared read-only *font.Font.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(shapingFont),
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	shaperPool.Put(shaper)
	return out, nil
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text should be split into runs by the
// caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
