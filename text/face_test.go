package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testSource(t *testing.T) *Source {
	t.Helper()
	s, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	return s
}

func TestNewSource(t *testing.T) {
	s := testSource(t)
	if s.Name() == "" {
		t.Error("font family name should not be empty")
	}

	if _, err := NewSource(nil); err != ErrEmptyFontData {
		t.Errorf("NewSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewSource([]byte("not a font")); err == nil {
		t.Error("NewSource of garbage should fail")
	}
}

func TestFaceMetrics(t *testing.T) {
	face := testSource(t).Face(12)

	m := face.Metrics()
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("Descent = %v, want > 0", m.Descent)
	}
	if m.LineHeight() < m.Ascent+m.Descent {
		t.Errorf("LineHeight = %v, want >= ascent+descent", m.LineHeight())
	}

	// Metrics scale with size.
	big := testSource(t).Face(24).Metrics()
	if big.Ascent <= m.Ascent {
		t.Errorf("24pt ascent = %v, want > 12pt ascent %v", big.Ascent, m.Ascent)
	}
}

func TestFaceAdvance(t *testing.T) {
	face := testSource(t).Face(12)

	if got := face.Advance(""); got != 0 {
		t.Errorf("Advance of empty = %v, want 0", got)
	}

	one := face.Advance("i")
	long := face.Advance("immm")
	if one <= 0 {
		t.Errorf("Advance = %v, want > 0", one)
	}
	if long <= one {
		t.Errorf("longer text should advance further: %v vs %v", long, one)
	}
}

func TestFaceShape(t *testing.T) {
	face := testSource(t).Face(12)

	glyphs := face.Shape("AV")
	if len(glyphs) != 2 {
		t.Fatalf("Shape = %d glyphs, want 2", len(glyphs))
	}
	if glyphs[0].GID == 0 || glyphs[1].GID == 0 {
		t.Error("shaped glyphs should not be .notdef")
	}
	if glyphs[1].X <= glyphs[0].X {
		t.Errorf("second glyph should be right of the first: %v vs %v",
			glyphs[1].X, glyphs[0].X)
	}

	if got := face.Shape(""); got != nil {
		t.Errorf("Shape of empty = %v, want nil", got)
	}
}

func TestGlyphOutline(t *testing.T) {
	face := testSource(t).Face(24)

	glyphs := face.Shape("O")
	if len(glyphs) != 1 {
		t.Fatalf("Shape = %d glyphs, want 1", len(glyphs))
	}

	segments, err := face.GlyphOutline(glyphs[0].GID)
	if err != nil {
		t.Fatalf("GlyphOutline: %v", err)
	}
	if len(segments) == 0 {
		t.Fatal("outline of 'O' should have segments")
	}
	if segments[0].Op != SegmentOpMoveTo {
		t.Errorf("first segment op = %v, want MoveTo", segments[0].Op)
	}
}

func TestHasGlyph(t *testing.T) {
	face := testSource(t).Face(12)
	if !face.HasGlyph('A') {
		t.Error("goregular should have a glyph for 'A'")
	}
	// Go Regular has no CJK coverage.
	if face.HasGlyph('中') {
		t.Error("goregular should not have a glyph for CJK")
	}
}
