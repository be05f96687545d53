package transform

// ColorFilter is the mutually exclusive color effect applied to an image.
type ColorFilter string

const (
	ColorNone       ColorFilter = "none"
	ColorGrayscale  ColorFilter = "grayscale"
	ColorSepia      ColorFilter = "sepia"
	ColorCartoonify ColorFilter = "cartoonify"
)

// Shape crops the image outline. Only the circular crop is supported.
type Shape string

const (
	ShapeNone   Shape = "none"
	ShapeCircle Shape = "circle"
)

// DefaultWatermarkText is the text pre-filled for the watermark overlay.
const DefaultWatermarkText = "Mi App @ 2025"

// Options holds the user-selected transformation toggles. The zero value of
// every field is a valid "off" state.
type Options struct {
	Color     ColorFilter `json:"color"`
	Watermark bool        `json:"watermark"`
	Shape     Shape       `json:"shape,omitempty"`
}

func NewOptions() Options {
	return Options{Color: ColorNone, Shape: ShapeNone}
}

// SetColor replaces the active color filter.
func (o *Options) SetColor(c ColorFilter) {
	o.Color = c
}

// ToggleWatermark flips the watermark overlay on or off.
func (o *Options) ToggleWatermark() {
	o.Watermark = !o.Watermark
}

// ToggleShape flips between the only two supported shapes.
func (o *Options) ToggleShape() {
	if o.Shape == ShapeCircle {
		o.Shape = ShapeNone
	} else {
		o.Shape = ShapeCircle
	}
}
