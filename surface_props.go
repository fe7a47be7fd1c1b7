package skia

// PixelGeometry describes the physical subpixel layout of a surface,
// needed for subpixel (LCD) text rendering.
type PixelGeometry int

const (
	// PixelGeometryUnknown means the layout is unknown; subpixel text is
	// disabled.
	PixelGeometryUnknown PixelGeometry = iota
	// PixelGeometryRGBH is horizontal RGB stripes.
	PixelGeometryRGBH
	// PixelGeometryBGRH is horizontal BGR stripes.
	PixelGeometryBGRH
	// PixelGeometryRGBV is vertical RGB stripes.
	PixelGeometryRGBV
	// PixelGeometryBGRV is vertical BGR stripes.
	PixelGeometryBGRV
)

// String returns the string representation of the pixel geometry.
func (g PixelGeometry) String() string {
	switch g {
	case PixelGeometryUnknown:
		return "Unknown"
	case PixelGeometryRGBH:
		return "RGBH"
	case PixelGeometryBGRH:
		return "BGRH"
	case PixelGeometryRGBV:
		return "RGBV"
	case PixelGeometryBGRV:
		return "BGRV"
	default:
		return unknownStr
	}
}

// SurfaceProps describes the gamma/geometry properties of the surface
// glyphs will be drawn to. They participate in strike identity because
// mask generation bakes them in.
type SurfaceProps struct {
	// Flags holds surface behavior flags (reserved; zero today).
	Flags uint32

	// Geometry is the surface's physical subpixel layout.
	Geometry PixelGeometry
}

// LegacyFontHostProps returns the surface properties historically assumed
// by font hosts before surfaces carried their own: horizontal RGB.
// Canonical strikes use these so transform-independent lookups agree.
func LegacyFontHostProps() SurfaceProps {
	return SurfaceProps{Geometry: PixelGeometryRGBH}
}

// ScalerFlags control gamma-related adjustments applied when a scaler
// context rasterizes glyphs. They participate in strike identity.
type ScalerFlags uint32

const (
	// ScalerFlagsNone applies no adjustment. Used when gamma and contrast
	// are handled later (e.g. in a distance-field shader).
	ScalerFlagsNone ScalerFlags = 0
	// ScalerFlagsFakeGamma applies an approximated gamma correction.
	ScalerFlagsFakeGamma ScalerFlags = 1 << 0
	// ScalerFlagsBoostContrast increases contrast for dark-on-light text.
	ScalerFlagsBoostContrast ScalerFlags = 1 << 1
	// ScalerFlagsFakeGammaAndBoostContrast applies both adjustments.
	ScalerFlagsFakeGammaAndBoostContrast = ScalerFlagsFakeGamma | ScalerFlagsBoostContrast
)
