package skia

// LineCap specifies the shape of stroke endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the string representation of the line cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "Butt"
	case LineCapRound:
		return "Round"
	case LineCapSquare:
		return "Square"
	default:
		return unknownStr
	}
}

// LineJoin specifies the shape of stroke joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the string representation of the line join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "Miter"
	case LineJoinRound:
		return "Round"
	case LineJoinBevel:
		return "Bevel"
	default:
		return unknownStr
	}
}

// PaintStyle specifies whether geometry is filled, stroked, or both.
type PaintStyle int

const (
	// PaintStyleFill fills the geometry.
	PaintStyleFill PaintStyle = iota
	// PaintStyleStroke strokes the geometry outline.
	PaintStyleStroke
	// PaintStyleStrokeAndFill both strokes and fills.
	PaintStyleStrokeAndFill
)

// String returns the string representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "Fill"
	case PaintStyleStroke:
		return "Stroke"
	case PaintStyleStrokeAndFill:
		return "StrokeAndFill"
	default:
		return unknownStr
	}
}

// Paint holds the styling state that affects how glyphs are rasterized:
// stroke geometry, anti-aliasing, and the optional mask/path effects.
// Color and blending are deliberately absent; they do not affect strike
// identity and are applied downstream.
type Paint struct {
	// Style selects fill, stroke, or both.
	Style PaintStyle

	// StrokeWidth is the stroke width in source units.
	// A width of 0 with PaintStyleStroke means hairline.
	StrokeWidth float64

	// MiterLimit is the miter limit for sharp joins.
	MiterLimit float64

	// Cap is the shape of stroke endpoints.
	Cap LineCap

	// Join is the shape of stroke joins.
	Join LineJoin

	// AntiAlias enables anti-aliased rasterization.
	AntiAlias bool

	// MaskFilter is an optional post-rasterization mask transformation
	// (e.g. blur). Nil means none.
	MaskFilter MaskFilter

	// PathEffect is an optional outline transformation applied before
	// rasterization (e.g. dashing). Nil means none.
	PathEffect PathEffect
}

// DefaultPaint returns a Paint with default values: fill style,
// anti-aliased, stroke geometry at stroke defaults, no effects.
func DefaultPaint() Paint {
	return Paint{
		Style:       PaintStyleFill,
		StrokeWidth: 1.0,
		MiterLimit:  4.0,
		Cap:         LineCapButt,
		Join:        LineJoinMiter,
		AntiAlias:   true,
	}
}

// Reset restores the paint to its default state, dropping any effects.
func (p *Paint) Reset() {
	*p = DefaultPaint()
}
