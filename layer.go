package qcad

// ByLayer is the sentinel value for attributes inherited from the layer.
const ByLayer = ""

// Attributes are the display attributes of an entity or layer.
// Empty string fields and a zero lineweight mean "inherit from layer".
type Attributes struct {
	// Color is a hex string like "#ff0000" or a named color.
	Color string

	// Linetype is the linetype name, e.g. "CONTINUOUS" or "DASHED".
	Linetype string

	// Lineweight is the stroke width in millimeters. Zero inherits.
	Lineweight float64
}

// Merge returns a with unset fields filled in from fallback.
func (a Attributes) Merge(fallback Attributes) Attributes {
	if a.Color == ByLayer {
		a.Color = fallback.Color
	}
	if a.Linetype == ByLayer {
		a.Linetype = fallback.Linetype
	}
	if a.Lineweight == 0 {
		a.Lineweight = fallback.Lineweight
	}
	return a
}

// DefaultLayerName is the name of the layer every document starts with.
const DefaultLayerName = "0"

// Layer groups entities and provides their default attributes.
type Layer struct {
	Name       string
	Attributes Attributes
	Frozen     bool
	Locked     bool
}

// NewLayer creates a layer with sensible default attributes.
func NewLayer(name string) *Layer {
	return &Layer{
		Name: name,
		Attributes: Attributes{
			Color:      "#000000",
			Linetype:   "CONTINUOUS",
			Lineweight: 0.25,
		},
	}
}
