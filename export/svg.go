package export

import (
	"fmt"
	"io"
	"math"

	"github.com/ChenLight-s/qcad"
)

// SVGOptions configures the SVG exporter.
type SVGOptions struct {
	// Margin is added around the document bounds, in drawing units.
	Margin float64

	// DefaultColor is the stroke color used when neither the entity nor
	// its layer specifies one.
	DefaultColor string
}

func (o *SVGOptions) withDefaults() SVGOptions {
	out := SVGOptions{Margin: 5, DefaultColor: "#000000"}
	if o != nil {
		if o.Margin > 0 {
			out.Margin = o.Margin
		}
		if o.DefaultColor != "" {
			out.DefaultColor = o.DefaultColor
		}
	}
	return out
}

// svgMapper converts CAD coordinates (y up) to SVG coordinates (y down).
type svgMapper struct {
	minX, maxY, margin float64
}

func (m svgMapper) x(x float64) float64 { return x - m.minX + m.margin }
func (m svgMapper) y(y float64) float64 { return m.maxY - y + m.margin }

// SVG writes the document as an SVG image. Entities are emitted in
// insertion order with their resolved attributes.
func SVG(w io.Writer, doc *qcad.Document, opts *SVGOptions) error {
	o := opts.withDefaults()

	bounds := doc.BoundingBox()
	if !bounds.IsValid() {
		// An empty document still produces a well-formed image.
		bounds = qcad.BoxFromPoints(qcad.V(0, 0))
	}
	m := svgMapper{minX: bounds.Min.X, maxY: bounds.Max.Y, margin: o.Margin}
	width := bounds.Width() + 2*o.Margin
	height := bounds.Height() + 2*o.Margin

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %s %s\">\n",
		num(width), num(height)); err != nil {
		return fmt.Errorf("export: svg header: %w", err)
	}

	for e := range doc.Entities() {
		if err := writeSVGEntity(w, doc, e, m, o); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "</svg>\n"); err != nil {
		return fmt.Errorf("export: svg footer: %w", err)
	}
	return nil
}

func writeSVGEntity(w io.Writer, doc *qcad.Document, e *qcad.Entity, m svgMapper, o SVGOptions) error {
	attrs := doc.ResolveAttributes(e)
	stroke := attrs.Color
	if stroke == "" {
		stroke = o.DefaultColor
	}
	sw := attrs.Lineweight
	if sw <= 0 {
		sw = 0.25
	}

	var err error
	switch shape := e.Shape.(type) {
	case qcad.Point:
		// A point renders as a filled dot of the stroke width.
		_, err = fmt.Fprintf(w, "  <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\"/>\n",
			num(m.x(shape.Position.X)), num(m.y(shape.Position.Y)), num(sw), stroke)

	case qcad.Line:
		_, err = fmt.Fprintf(w, "  <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
			num(m.x(shape.From.X)), num(m.y(shape.From.Y)),
			num(m.x(shape.To.X)), num(m.y(shape.To.Y)), stroke, num(sw))

	case qcad.Circle:
		_, err = fmt.Fprintf(w, "  <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
			num(m.x(shape.Center.X)), num(m.y(shape.Center.Y)), num(shape.Radius), stroke, num(sw))

	case qcad.Arc:
		err = writeSVGArc(w, shape, m, stroke, sw)

	case *qcad.Polyline:
		err = writeSVGPolyline(w, shape, m, stroke, sw)

	case *qcad.Text:
		err = writeSVGText(w, shape, m, stroke)

	default:
		qcad.Logger().Warn("svg export skipping unsupported shape",
			"type", e.Shape.ShapeType().String())
	}
	if err != nil {
		return fmt.Errorf("export: svg %s: %w", e.Shape.ShapeType(), err)
	}
	return nil
}

func writeSVGArc(w io.Writer, a qcad.Arc, m svgMapper, stroke string, sw float64) error {
	start := a.StartPoint()
	end := a.EndPoint()

	largeArc := 0
	if a.SweepAngle() > math.Pi {
		largeArc = 1
	}
	// The Y flip mirrors orientation: a counter-clockwise CAD arc becomes
	// an angle-decreasing SVG arc (sweep flag 0).
	sweep := 0
	if a.Reversed {
		sweep = 1
	}

	_, err := fmt.Fprintf(w, "  <path d=\"M %s %s A %s %s 0 %d %d %s %s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
		num(m.x(start.X)), num(m.y(start.Y)),
		num(a.Radius), num(a.Radius), largeArc, sweep,
		num(m.x(end.X)), num(m.y(end.Y)), stroke, num(sw))
	return err
}

func writeSVGPolyline(w io.Writer, p *qcad.Polyline, m svgMapper, stroke string, sw float64) error {
	element := "polyline"
	if p.IsClosed() {
		element = "polygon"
	}

	points := ""
	for i, v := range p.Vertices() {
		if i > 0 {
			points += " "
		}
		points += num(m.x(v.X)) + "," + num(m.y(v.Y))
	}

	_, err := fmt.Fprintf(w, "  <%s points=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
		element, points, stroke, num(sw))
	return err
}

func writeSVGText(w io.Writer, t *qcad.Text, m svgMapper, fill string) error {
	anchor := "start"
	switch t.HAlign {
	case qcad.HAlignCenter:
		anchor = "middle"
	case qcad.HAlignRight:
		anchor = "end"
	}

	baseline := "alphabetic"
	switch t.VAlign {
	case qcad.VAlignTop:
		baseline = "hanging"
	case qcad.VAlignMiddle:
		baseline = "central"
	case qcad.VAlignBottom:
		baseline = "text-after-edge"
	}

	style := ""
	if t.Bold {
		style += " font-weight=\"bold\""
	}
	if t.Italic {
		style += " font-style=\"italic\""
	}

	x := m.x(t.Position.X)
	y := m.y(t.Position.Y)
	transform := ""
	if t.Angle != 0 {
		// CAD angles are counter-clockwise; SVG rotation is clockwise in
		// screen coordinates.
		transform = fmt.Sprintf(" transform=\"rotate(%s %s %s)\"",
			num(-t.Angle*180/math.Pi), num(x), num(y))
	}

	_, err := fmt.Fprintf(w, "  <text x=\"%s\" y=\"%s\" font-family=\"%s\" font-size=\"%s\" text-anchor=\"%s\" dominant-baseline=\"%s\"%s%s fill=\"%s\">%s</text>\n",
		num(x), num(y), escapeXML(t.Font), num(t.Height), anchor, baseline, style, transform, fill, escapeXML(t.Value))
	return err
}

// num formats a coordinate with enough precision for CAD data without
// trailing zero noise.
func num(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func escapeXML(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			out = append(out, "&amp;"...)
		case '<':
			out = append(out, "&lt;"...)
		case '>':
			out = append(out, "&gt;"...)
		case '"':
			out = append(out, "&quot;"...)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
