package strike

import "github.com/DevendarReddyDarukumalli/skia"

// Distance-field strikes are rasterized at one of three fixed sizes and
// reused across a range of device scales. The buckets trade memory for
// fidelity: a small glyph scaled up from a 32px field looks fine, a
// heading needs the 162px field.
const (
	smallDFSize  = 32.0
	smallDFLimit = 32.0

	mediumDFSize  = 72.0
	mediumDFLimit = 72.0

	largeDFSize = 162.0
)

// SDFOptions bounds the scale window distance-field strikes are trusted
// over.
type SDFOptions struct {
	// MinDistanceFieldFontSize is the smallest device-scaled size a
	// distance field may be reused down to. Below it, plain masks look
	// better. Default: 18.
	MinDistanceFieldFontSize float64

	// MaxDistanceFieldFontSize is the largest device-scaled size a
	// distance field may be reused up to. Default: 324 (2x the large
	// field size).
	MaxDistanceFieldFontSize float64
}

// DefaultSDFOptions returns the default distance-field options.
func DefaultSDFOptions() SDFOptions {
	return SDFOptions{
		MinDistanceFieldFontSize: 18,
		MaxDistanceFieldFontSize: 2 * largeDFSize,
	}
}

// withDefaults fills zero fields with defaults.
func (o SDFOptions) withDefaults() SDFOptions {
	d := DefaultSDFOptions()
	if o.MinDistanceFieldFontSize <= 0 {
		o.MinDistanceFieldFontSize = d.MinDistanceFieldFontSize
	}
	if o.MaxDistanceFieldFontSize <= 0 {
		o.MaxDistanceFieldFontSize = d.MaxDistanceFieldFontSize
	}
	return o
}

// distanceFieldSize picks the field-generation bucket for a
// device-scaled text size.
func distanceFieldSize(scaledTextSize float64) float64 {
	switch {
	case scaledTextSize <= smallDFLimit:
		return smallDFSize
	case scaledTextSize <= mediumDFLimit:
		return mediumDFSize
	default:
		return largeDFSize
	}
}

// initDistanceFieldPaint normalizes a paint for distance-field
// generation: effects and stroke styling are resolved in the shader, so
// the field itself is a plain anti-aliased fill.
func initDistanceFieldPaint(paint skia.Paint) skia.Paint {
	paint.MaskFilter = nil
	paint.PathEffect = nil
	paint.Style = skia.PaintStyleFill
	paint.AntiAlias = true
	return paint
}

// initDistanceFieldFont reconfigures a font copy for distance-field
// generation and returns it with the ratio converting field-space
// measurements back to the requested size.
func initDistanceFieldFont(
	font skia.Font,
	deviceMatrix skia.Matrix,
) (skia.Font, float64) {
	scaledTextSize := font.Size * deviceMatrix.MaxScale()
	dfSize := distanceFieldSize(scaledTextSize)

	dfFont := font
	dfFont.Size = dfSize
	dfFont.Edging = skia.EdgingAntiAlias
	dfFont.Hinting = skia.HintingNone
	dfFont.Subpixel = false

	return dfFont, font.Size / dfSize
}

// distanceFieldMinMaxScale computes the [minScale, maxScale] device
// scale window over which a strike generated for this size/matrix pair
// remains usable. Outside the window the caller must regenerate (or fall
// back to masks/paths).
func distanceFieldMinMaxScale(
	textSize float64,
	deviceMatrix skia.Matrix,
	options SDFOptions,
) (minScale, maxScale float64) {
	opts := options.withDefaults()

	scaledTextSize := textSize * deviceMatrix.MaxScale()

	var floor, ceil float64
	switch {
	case scaledTextSize <= smallDFLimit:
		floor = opts.MinDistanceFieldFontSize
		ceil = smallDFLimit
	case scaledTextSize <= mediumDFLimit:
		floor = smallDFLimit
		ceil = mediumDFLimit
	default:
		floor = mediumDFLimit
		ceil = opts.MaxDistanceFieldFontSize
	}

	return floor / textSize, ceil / textSize
}
