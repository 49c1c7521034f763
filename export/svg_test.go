package export

import (
	"math"
	"strings"
	"testing"

	"github.com/ChenLight-s/qcad"
)

func buildTestScript(t *testing.T) (*qcad.Script, *qcad.Document) {
	t.Helper()
	doc := qcad.NewDocument()
	app := qcad.NewApplication(qcad.WithDocument(doc))
	return qcad.NewScript(app), doc
}

func TestSVGEmptyDocument(t *testing.T) {
	var buf strings.Builder
	if err := SVG(&buf, qcad.NewDocument(), nil); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<svg ") {
		t.Errorf("output should start with <svg, got %q", out[:20])
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("output should end with </svg>")
	}
}

func TestSVGBasicShapes(t *testing.T) {
	s, doc := buildTestScript(t)

	if _, err := s.AddLine(0, 0, 10, 0); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if _, err := s.AddCircle(5, 5, 2); err != nil {
		t.Fatalf("AddCircle: %v", err)
	}
	if _, err := s.AddArc(0, 0, 3, 0, math.Pi/2, false); err != nil {
		t.Fatalf("AddArc: %v", err)
	}
	if _, err := s.AddPoint(1, 1); err != nil {
		t.Fatalf("AddPoint: %v", err)
	}

	var buf strings.Builder
	if err := SVG(&buf, doc, nil); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<line ") {
		t.Error("missing <line> element")
	}
	if strings.Count(out, "<circle ") != 2 { // circle entity + point dot
		t.Errorf("circle elements = %d, want 2", strings.Count(out, "<circle "))
	}
	if !strings.Contains(out, "<path d=\"M ") || !strings.Contains(out, " A ") {
		t.Error("missing arc path element")
	}
}

func TestSVGPolylineOrderAndClosing(t *testing.T) {
	s, doc := buildTestScript(t)

	points := []qcad.Vec{qcad.V(0, 0), qcad.V(4, 0), qcad.V(4, 4)}
	if _, err := s.AddPolyline(points); err != nil {
		t.Fatalf("AddPolyline: %v", err)
	}
	if _, err := s.AddPolyline(points, qcad.WithClosed()); err != nil {
		t.Fatalf("AddPolyline closed: %v", err)
	}

	var buf strings.Builder
	if err := SVG(&buf, doc, &SVGOptions{Margin: 1}); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<polyline ") {
		t.Error("open polyline should emit <polyline>")
	}
	if !strings.Contains(out, "<polygon ") {
		t.Error("closed polyline should emit <polygon>")
	}

	// Bounds are (0,0)-(4,4) with margin 1, so (0,0) maps to (1,5) and the
	// vertex order must be preserved.
	if !strings.Contains(out, "points=\"1,5 5,5 5,1\"") {
		t.Errorf("unexpected polyline points in %q", out)
	}
}

func TestSVGTextAttributes(t *testing.T) {
	s, doc := buildTestScript(t)

	if _, err := s.AddSimpleText("A<B", 0, 0,
		qcad.WithTextHeight(2),
		qcad.WithAlignment(qcad.VAlignMiddle, qcad.HAlignCenter),
		qcad.WithBold(),
	); err != nil {
		t.Fatalf("AddSimpleText: %v", err)
	}

	var buf strings.Builder
	if err := SVG(&buf, doc, nil); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "font-size=\"2\"") {
		t.Error("missing font-size")
	}
	if !strings.Contains(out, "text-anchor=\"middle\"") {
		t.Error("missing text-anchor for centered text")
	}
	if !strings.Contains(out, "dominant-baseline=\"central\"") {
		t.Error("missing dominant-baseline for middle alignment")
	}
	if !strings.Contains(out, "font-weight=\"bold\"") {
		t.Error("missing bold style")
	}
	if !strings.Contains(out, ">A&lt;B</text>") {
		t.Error("text content should be XML-escaped")
	}
}

func TestSVGFontNameEscaped(t *testing.T) {
	s, doc := buildTestScript(t)

	if _, err := s.AddSimpleText("x", 0, 0, qcad.WithFont(`Weird"Font`)); err != nil {
		t.Fatalf("AddSimpleText: %v", err)
	}

	var buf strings.Builder
	if err := SVG(&buf, doc, nil); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, `font-family="Weird"Font"`) {
		t.Error("raw quote in font-family attribute")
	}
	if !strings.Contains(out, `font-family="Weird&quot;Font"`) {
		t.Errorf("font name should be XML-escaped in %q", out)
	}
}

func TestSVGUsesResolvedAttributes(t *testing.T) {
	s, doc := buildTestScript(t)
	doc.SetCurrentAttributes(qcad.Attributes{Color: "#ff0000", Lineweight: 0.5})

	if _, err := s.AddLine(0, 0, 1, 1); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	var buf strings.Builder
	if err := SVG(&buf, doc, nil); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "stroke=\"#ff0000\"") {
		t.Error("entity color should be used for stroke")
	}
	if !strings.Contains(out, "stroke-width=\"0.5\"") {
		t.Error("entity lineweight should be used for stroke width")
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{1.5, "1.5"},
		{1.25, "1.25"},
		{-0.0000001, "0"},
		{2.00010, "2.0001"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
