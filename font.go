package skia

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Hinting specifies glyph outline hinting strength.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingSlight applies minimal hinting preserving glyph shape.
	HintingSlight
	// HintingNormal applies standard hinting.
	HintingNormal
	// HintingFull applies maximum hinting for crispness.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingSlight:
		return "Slight"
	case HintingNormal:
		return "Normal"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}

// Edging specifies how glyph edges are rendered.
type Edging int

const (
	// EdgingAlias renders hard, aliased glyph edges.
	EdgingAlias Edging = iota
	// EdgingAntiAlias renders anti-aliased glyph edges.
	EdgingAntiAlias
	// EdgingSubpixelAntiAlias renders with subpixel anti-aliasing
	// (LCD text); requires knowing the surface pixel geometry.
	EdgingSubpixelAntiAlias
)

// String returns the string representation of the edging.
func (e Edging) String() string {
	switch e {
	case EdgingAlias:
		return "Alias"
	case EdgingAntiAlias:
		return "AntiAlias"
	case EdgingSubpixelAntiAlias:
		return "SubpixelAntiAlias"
	default:
		return unknownStr
	}
}

const (
	// canonicalTextSizeForPaths is the fixed size glyph outlines are
	// generated at. Outlines are resolution independent, so one strike at
	// this size serves every requested size via the strike-to-source ratio.
	canonicalTextSizeForPaths = 64.0

	// maxSizeForGlyphCache is the device-scaled text size above which
	// glyphs are rendered as paths instead of cached masks.
	maxSizeForGlyphCache = 1024.0
)

// Font describes a typeface at a specific size together with the
// rasterization controls that affect glyph generation. Font is a plain
// value; copies are independent.
type Font struct {
	// Typeface is the typeface to render with. Nil means the process-wide
	// default typeface.
	Typeface *Typeface

	// Size is the text size in source units.
	Size float64

	// ScaleX is the horizontal glyph scale (1.0 = none).
	ScaleX float64

	// SkewX is the horizontal glyph skew (0.0 = none, used for faux italic).
	SkewX float64

	// Hinting is the outline hinting strength.
	Hinting Hinting

	// Edging is the edge rendering mode.
	Edging Edging

	// Subpixel enables subpixel glyph positioning.
	Subpixel bool

	// LinearMetrics requests metrics from unhinted outlines so they scale
	// linearly with size.
	LinearMetrics bool

	// Embolden applies algorithmic emboldening (faux bold).
	Embolden bool
}

// DefaultFont returns a Font with default values: default typeface at
// size 12, anti-aliased, no skew or scale.
func DefaultFont() Font {
	return Font{
		Size:   12,
		ScaleX: 1.0,
		Edging: EdgingAntiAlias,
	}
}

// TypefaceOrDefault returns the font's typeface, or the process-wide
// default typeface if none is set.
func (f *Font) TypefaceOrDefault() *Typeface {
	if f.Typeface != nil {
		return f.Typeface
	}
	return DefaultTypeface()
}

// SetupForPaths reconfigures the font in place for outline generation:
// outlines are produced at canonicalTextSizeForPaths with hinting off and
// linear metrics, so one strike serves all sizes. The returned ratio
// converts measurements taken at the canonical size back to the
// originally requested size.
//
// If paint is non-nil it is normalized alongside: style forced to fill
// and any path effect dropped, since both are resolved when the outline
// is stroked at draw time.
func (f *Font) SetupForPaths(paint *Paint) float64 {
	f.Hinting = HintingNone
	f.LinearMetrics = true
	if f.Edging == EdgingSubpixelAntiAlias {
		f.Edging = EdgingAntiAlias
	}

	if paint != nil {
		paint.Style = PaintStyleFill
		paint.PathEffect = nil
	}

	size := f.Size
	f.Size = canonicalTextSizeForPaths
	return size / canonicalTextSizeForPaths
}

// ShouldRenderAsPaths reports whether this font/paint combination is
// better rendered as vector outlines than as cached masks: any path
// effect, a non-hairline stroke, or a device-scaled size too large for
// the glyph cache all force path rendering.
func (f *Font) ShouldRenderAsPaths(paint Paint, deviceMatrix Matrix) bool {
	if paint.PathEffect != nil {
		return true
	}
	if paint.Style != PaintStyleFill && paint.StrokeWidth > 0 {
		return true
	}
	return f.Size*f.ScaleX*deviceMatrix.MaxScale() > maxSizeForGlyphCache
}
