package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/ChenLight-s/qcad"
	"github.com/ChenLight-s/qcad/text"
)

// PNGOptions configures the PNG exporter.
type PNGOptions struct {
	// Scale is the number of pixels per drawing unit.
	Scale float64

	// Margin is added around the document bounds, in drawing units.
	Margin float64

	// Background is the fill color of the image.
	Background color.Color

	// Fonts resolves the font names carried by text shapes.
	// Defaults to text.DefaultRegistry().
	Fonts *text.Registry
}

func (o *PNGOptions) withDefaults() PNGOptions {
	out := PNGOptions{
		Scale:      10,
		Margin:     5,
		Background: color.White,
		Fonts:      text.DefaultRegistry(),
	}
	if o != nil {
		if o.Scale > 0 {
			out.Scale = o.Scale
		}
		if o.Margin > 0 {
			out.Margin = o.Margin
		}
		if o.Background != nil {
			out.Background = o.Background
		}
		if o.Fonts != nil {
			out.Fonts = o.Fonts
		}
	}
	return out
}

// rasterMapper converts CAD coordinates (y up) to pixel coordinates (y down).
type rasterMapper struct {
	minX, maxY, margin, scale float64
}

func (m rasterMapper) point(v qcad.Vec) (float64, float64) {
	return (v.X - m.minX + m.margin) * m.scale, (m.maxY - v.Y + m.margin) * m.scale
}

// PNG rasterizes the document and writes it as a PNG image.
// Entity strokes are drawn as filled quads per flattened segment; text is
// filled from shaped glyph outlines.
func PNG(w io.Writer, doc *qcad.Document, opts *PNGOptions) error {
	o := opts.withDefaults()

	bounds := doc.BoundingBox()
	if !bounds.IsValid() {
		bounds = qcad.BoxFromPoints(qcad.V(0, 0))
	}
	m := rasterMapper{minX: bounds.Min.X, maxY: bounds.Max.Y, margin: o.Margin, scale: o.Scale}

	width := int(math.Ceil((bounds.Width() + 2*o.Margin) * o.Scale))
	height := int(math.Ceil((bounds.Height() + 2*o.Margin) * o.Scale))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)

	r := vector.NewRasterizer(width, height)
	for e := range doc.Entities() {
		if err := rasterizeEntity(dst, r, doc, e, m, o); err != nil {
			return err
		}
	}

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("export: png encode: %w", err)
	}
	return nil
}

func rasterizeEntity(dst *image.RGBA, r *vector.Rasterizer, doc *qcad.Document, e *qcad.Entity, m rasterMapper, o PNGOptions) error {
	attrs := doc.ResolveAttributes(e)
	col := parseColor(attrs.Color)
	sw := attrs.Lineweight * m.scale
	if sw < 1 {
		sw = 1
	}

	r.Reset(dst.Bounds().Dx(), dst.Bounds().Dy())

	switch shape := e.Shape.(type) {
	case qcad.Point:
		x, y := m.point(shape.Position)
		// A point renders as a small filled square.
		half := sw
		r.MoveTo(float32(x-half), float32(y-half))
		r.LineTo(float32(x+half), float32(y-half))
		r.LineTo(float32(x+half), float32(y+half))
		r.LineTo(float32(x-half), float32(y+half))
		r.ClosePath()

	case qcad.Line:
		strokeSegment(r, m, shape.From, shape.To, sw)

	case qcad.Circle:
		strokePoints(r, m, flattenCircle(shape), sw)

	case qcad.Arc:
		strokePoints(r, m, flattenArc(shape), sw)

	case *qcad.Polyline:
		for _, seg := range shape.Segments() {
			strokeSegment(r, m, seg.From, seg.To, sw)
		}

	case *qcad.Text:
		if err := rasterizeText(r, m, shape, o); err != nil {
			return err
		}

	default:
		qcad.Logger().Warn("png export skipping unsupported shape",
			"type", e.Shape.ShapeType().String())
		return nil
	}

	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
	return nil
}

// strokeSegment fills a quad of the given width along the segment.
func strokeSegment(r *vector.Rasterizer, m rasterMapper, from, to qcad.Vec, width float64) {
	x1, y1 := m.point(from)
	x2, y2 := m.point(to)

	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Perpendicular half-width offset.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	r.MoveTo(float32(x1+nx), float32(y1+ny))
	r.LineTo(float32(x2+nx), float32(y2+ny))
	r.LineTo(float32(x2-nx), float32(y2-ny))
	r.LineTo(float32(x1-nx), float32(y1-ny))
	r.ClosePath()
}

// strokePoints strokes consecutive points as segments.
func strokePoints(r *vector.Rasterizer, m rasterMapper, points []qcad.Vec, width float64) {
	for i := 1; i < len(points); i++ {
		strokeSegment(r, m, points[i-1], points[i], width)
	}
}

// flattenCircle approximates a circle with a closed polygon.
func flattenCircle(c qcad.Circle) []qcad.Vec {
	const steps = 64
	points := make([]qcad.Vec, 0, steps+1)
	for i := 0; i <= steps; i++ {
		points = append(points, c.PointAt(float64(i)/steps*2*math.Pi))
	}
	return points
}

// flattenArc approximates an arc with a polyline following its direction.
func flattenArc(a qcad.Arc) []qcad.Vec {
	sweep := a.SweepAngle()
	steps := int(math.Ceil(sweep / (math.Pi / 36)))
	if steps < 2 {
		steps = 2
	}
	dir := 1.0
	if a.Reversed {
		dir = -1.0
	}
	points := make([]qcad.Vec, 0, steps+1)
	for i := 0; i <= steps; i++ {
		points = append(points, a.PointAt(a.StartAngle+dir*sweep*float64(i)/float64(steps)))
	}
	return points
}

// rasterizeText appends the shaped glyph outlines of the text to the
// rasterizer path.
func rasterizeText(r *vector.Rasterizer, m rasterMapper, t *qcad.Text, o PNGOptions) error {
	source := o.Fonts.Resolve(t.Font)
	if source == nil {
		qcad.Logger().Warn("png export cannot resolve font", "font", t.Font)
		return nil
	}
	face := source.Face(t.Height * m.scale)

	metrics := face.Metrics()
	width := face.Advance(t.Value)

	// Alignment offsets in pixel space, relative to the anchor point.
	var ox float64
	switch t.HAlign {
	case qcad.HAlignCenter:
		ox = -width / 2
	case qcad.HAlignRight:
		ox = -width
	}
	var oy float64 // baseline offset, y down
	switch t.VAlign {
	case qcad.VAlignTop:
		oy = metrics.Ascent
	case qcad.VAlignMiddle:
		oy = (metrics.Ascent - metrics.Descent) / 2
	case qcad.VAlignBottom:
		oy = -metrics.Descent
	}

	px, py := m.point(t.Position)
	sin, cos := math.Sincos(-t.Angle) // pixel space is y down

	place := func(x, y float64) (float32, float32) {
		x += ox
		y += oy
		// Rotate around the anchor, then translate.
		rx := x*cos - y*sin
		ry := x*sin + y*cos
		return float32(px + rx), float32(py + ry)
	}

	for _, g := range face.Shape(t.Value) {
		segments, err := face.GlyphOutline(g.GID)
		if err != nil {
			return fmt.Errorf("export: png text: %w", err)
		}
		for _, seg := range segments {
			switch seg.Op {
			case text.SegmentOpMoveTo:
				x, y := place(g.X+seg.Args[0].X, g.Y+seg.Args[0].Y)
				r.MoveTo(x, y)
			case text.SegmentOpLineTo:
				x, y := place(g.X+seg.Args[0].X, g.Y+seg.Args[0].Y)
				r.LineTo(x, y)
			case text.SegmentOpQuadTo:
				cx, cy := place(g.X+seg.Args[0].X, g.Y+seg.Args[0].Y)
				x, y := place(g.X+seg.Args[1].X, g.Y+seg.Args[1].Y)
				r.QuadTo(cx, cy, x, y)
			case text.SegmentOpCubeTo:
				c1x, c1y := place(g.X+seg.Args[0].X, g.Y+seg.Args[0].Y)
				c2x, c2y := place(g.X+seg.Args[1].X, g.Y+seg.Args[1].Y)
				x, y := place(g.X+seg.Args[2].X, g.Y+seg.Args[2].Y)
				r.CubeTo(c1x, c1y, c2x, c2y, x, y)
			}
		}
		r.ClosePath()
	}
	return nil
}
