package qcad

// VAlign is the vertical alignment of a text label relative to its position.
type VAlign int

const (
	// VAlignTop aligns the top of the text with the position.
	VAlignTop VAlign = iota

	// VAlignMiddle centers the text vertically on the position.
	VAlignMiddle

	// VAlignBase places the baseline on the position.
	VAlignBase

	// VAlignBottom aligns the bottom of the text with the position.
	VAlignBottom
)

// String returns a string representation of the alignment.
func (a VAlign) String() string {
	switch a {
	case VAlignTop:
		return "top"
	case VAlignMiddle:
		return "middle"
	case VAlignBase:
		return "base"
	case VAlignBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// HAlign is the horizontal alignment of a text label relative to its position.
type HAlign int

const (
	// HAlignLeft aligns the left edge of the text with the position.
	HAlignLeft HAlign = iota

	// HAlignCenter centers the text horizontally on the position.
	HAlignCenter

	// HAlignRight aligns the right edge of the text with the position.
	HAlignRight
)

// String returns a string representation of the alignment.
func (a HAlign) String() string {
	switch a {
	case HAlignLeft:
		return "left"
	case HAlignCenter:
		return "center"
	case HAlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Defaults applied by NewText when no option overrides them.
const (
	// DefaultTextHeight is the default text height in drawing units.
	DefaultTextHeight = 1.0

	// DefaultTextAngle is the default text rotation in radians.
	DefaultTextAngle = 0.0

	// DefaultFont is the default font family name.
	DefaultFont = "Standard"
)

// Text is a simple single-line text label.
type Text struct {
	Position Vec
	Value    string
	Height   float64
	Angle    float64
	Font     string
	VAlign   VAlign
	HAlign   HAlign
	Bold     bool
	Italic   bool
}

// TextOption configures a Text created by NewText.
type TextOption func(*Text)

// WithTextHeight sets the text height in drawing units.
func WithTextHeight(height float64) TextOption {
	return func(t *Text) { t.Height = height }
}

// WithTextAngle sets the text rotation in radians.
func WithTextAngle(angle float64) TextOption {
	return func(t *Text) { t.Angle = angle }
}

// WithFont sets the font family name.
func WithFont(font string) TextOption {
	return func(t *Text) { t.Font = font }
}

// WithAlignment sets both alignments.
func WithAlignment(v VAlign, h HAlign) TextOption {
	return func(t *Text) {
		t.VAlign = v
		t.HAlign = h
	}
}

// WithBold marks the text as bold.
func WithBold() TextOption {
	return func(t *Text) { t.Bold = true }
}

// WithItalic marks the text as italic.
func WithItalic() TextOption {
	return func(t *Text) { t.Italic = true }
}

// NewText creates a text label at (x, y). Unless overridden by options the
// text uses height 1.0, no rotation, the "Standard" font, top/left
// alignment and a regular (non-bold, non-italic) style.
func NewText(value string, x, y float64, opts ...TextOption) *Text {
	t := &Text{
		Position: V(x, y),
		Value:    value,
		Height:   DefaultTextHeight,
		Angle:    DefaultTextAngle,
		Font:     DefaultFont,
		VAlign:   VAlignTop,
		HAlign:   HAlignLeft,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ShapeType implements Shape.
func (*Text) ShapeType() ShapeType { return ShapeText }

// BoundingBox implements Shape.
// Without font metrics the width is estimated from the rune count; exporters
// that have access to a resolved font use real metrics instead. Rotation is
// accounted for by rotating the estimated corners around the position.
func (t *Text) BoundingBox() Box {
	width := t.estimatedWidth()
	var left, bottom float64

	switch t.HAlign {
	case HAlignCenter:
		left = -width / 2
	case HAlignRight:
		left = -width
	}
	switch t.VAlign {
	case VAlignTop:
		bottom = -t.Height
	case VAlignMiddle:
		bottom = -t.Height / 2
	}

	corners := []Vec{
		V(left, bottom),
		V(left+width, bottom),
		V(left+width, bottom+t.Height),
		V(left, bottom+t.Height),
	}
	b := EmptyBox()
	for _, c := range corners {
		b = b.GrowToPoint(c.Rotate(t.Angle).Add(t.Position))
	}
	return b
}

// estimatedWidth approximates the advance width from the rune count.
// The 0.6 factor matches typical glyph aspect ratios for CAD fonts.
func (t *Text) estimatedWidth() float64 {
	n := 0
	for range t.Value {
		n++
	}
	return float64(n) * t.Height * 0.6
}
