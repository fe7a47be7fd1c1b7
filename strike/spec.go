package strike

import (
	"fmt"
	"math"

	"github.com/DevendarReddyDarukumalli/skia"
)

const (
	// sideTooBigForAtlas is the largest glyph side the rasterization
	// atlas can hold.
	sideTooBigForAtlas = 2048

	// bilerpPad is the padding kept around each atlas glyph so bilinear
	// filtering does not bleed into neighbors.
	bilerpPad = 2
)

// StrikeSpec is the canonical, hashable specification of a glyph strike:
// which typeface, at what normalized size, with which effects and
// surface state. Construct one with the Make functions, use it once to
// acquire a strike from a Cache, then discard it.
//
// StrikeSpec is an immutable value; copies are independent and safe to
// share across goroutines.
type StrikeSpec struct {
	descriptor Descriptor

	// Retained from paint normalization so strike creation does not need
	// the original paint.
	maskFilter skia.MaskFilter
	pathEffect skia.PathEffect

	// Resolved typeface; never nil after construction.
	typeface *skia.Typeface

	// strikeToSourceRatio converts measurements taken in the strike's
	// rasterization space back to the caller's source space.
	strikeToSourceRatio float64
}

// Descriptor returns the canonical cache key. Two StrikeSpecs with equal
// descriptors are cache-equivalent regardless of how they were built.
func (s StrikeSpec) Descriptor() Descriptor { return s.descriptor }

// StrikeToSourceRatio returns the factor converting strike-space
// measurements into source-space units. Always positive; 1.0 unless a
// constructor rescaled the strike.
func (s StrikeSpec) StrikeToSourceRatio() float64 { return s.strikeToSourceRatio }

// Typeface returns the resolved typeface handle.
func (s StrikeSpec) Typeface() *skia.Typeface { return s.typeface }

// MaskFilter returns the mask filter extracted from the paint, or nil.
func (s StrikeSpec) MaskFilter() skia.MaskFilter { return s.maskFilter }

// PathEffect returns the path effect extracted from the paint, or nil.
func (s StrikeSpec) PathEffect() skia.PathEffect { return s.pathEffect }

// commonSetup is the shared normalization primitive: it builds the
// descriptor, retains the paint-derived effects, and resolves the
// typeface. The ratio defaults to 1.0; constructors override it before
// calling when their strategy rescales the strike.
func (s *StrikeSpec) commonSetup(
	font skia.Font,
	paint skia.Paint,
	props skia.SurfaceProps,
	flags skia.ScalerFlags,
	deviceMatrix skia.Matrix,
) {
	s.descriptor, s.maskFilter, s.pathEffect =
		BuildDescriptorAndEffects(font, paint, props, flags, deviceMatrix)
	s.typeface = font.TypefaceOrDefault()
	if s.strikeToSourceRatio == 0 {
		s.strikeToSourceRatio = 1.0
	}
}

// checkDeviceMatrix panics on degenerate transforms. A non-finite or
// non-invertible device matrix is a caller contract violation, not a
// recoverable input; failing fast beats a corrupt cache key.
func checkDeviceMatrix(m skia.Matrix) {
	if !m.IsFinite() || !m.IsInvertible() {
		panic(fmt.Sprintf("strike: degenerate device matrix %+v", m))
	}
}

// MakeMask builds a spec for direct mask rendering at device resolution.
// The device matrix participates in the descriptor because hinting and
// subpixel placement depend on the final transform. The ratio is 1.0:
// strike space is device space.
//
// Panics if deviceMatrix is non-finite or non-invertible.
func MakeMask(
	font skia.Font,
	paint skia.Paint,
	props skia.SurfaceProps,
	flags skia.ScalerFlags,
	deviceMatrix skia.Matrix,
) StrikeSpec {
	checkDeviceMatrix(deviceMatrix)

	var s StrikeSpec
	s.commonSetup(font, paint, props, flags, deviceMatrix)
	return s
}

// MakePath builds a spec for rendering glyphs as vector outlines. The
// font is reconfigured to the canonical outline-generation size and the
// returned spec's ratio converts outline measurements back to the
// requested size. The device matrix is excluded from the descriptor:
// outlines are transformed at draw time, so one strike serves every
// transform. Subpixel positioning is disabled for the same reason.
func MakePath(
	font skia.Font,
	paint skia.Paint,
	props skia.SurfaceProps,
	flags skia.ScalerFlags,
) StrikeSpec {
	// Normalize into the canonical path configuration, in hopes of
	// getting hits in the cache.
	pathFont := font
	pathPaint := paint

	var s StrikeSpec
	s.strikeToSourceRatio = pathFont.SetupForPaths(&pathPaint)

	// Sub-pixel position is resolved when transforming to the screen.
	pathFont.Subpixel = false

	s.commonSetup(pathFont, pathPaint, props, flags, skia.Identity())
	return s
}

// MakeSourceFallback builds a spec for glyphs whose source-space size
// exceeds what the rasterization atlas can hold. The text size is scaled
// down so the longest glyph side fits an atlas tile (minus the bilinear
// pad), and the ratio scales measurements back up to source space.
//
// maxSourceGlyphDimension must be positive; the ratio is undefined
// otherwise and the function panics.
func MakeSourceFallback(
	font skia.Font,
	paint skia.Paint,
	props skia.SurfaceProps,
	flags skia.ScalerFlags,
	maxSourceGlyphDimension float64,
) StrikeSpec {
	if !(maxSourceGlyphDimension > 0) {
		panic(fmt.Sprintf(
			"strike: non-positive maxSourceGlyphDimension %v", maxSourceGlyphDimension))
	}

	maxAtlasDimension := float64(sideTooBigForAtlas - bilerpPad)

	runFontTextSize := font.Size

	// Scale the text size down so the long side of all the glyphs will
	// fit in the atlas.
	fallbackTextSize := math.Floor(
		(maxAtlasDimension / maxSourceGlyphDimension) * runFontTextSize)

	fallbackFont := font
	fallbackFont.Size = fallbackTextSize

	// No sub-pixel needed. The transform to the screen will take care of
	// sub-pixel positioning.
	fallbackFont.Subpixel = false

	var s StrikeSpec
	s.strikeToSourceRatio = runFontTextSize / fallbackTextSize

	s.commonSetup(fallbackFont, paint, props, flags, skia.Identity())
	return s
}

// MakeCanonicalized builds a transform-independent representative spec
// for a font/paint pair, used to match logically equivalent requests
// across devices. A nil paint is replaced with the default paint before
// the path heuristic runs, so "no paint" and "default paint" produce the
// same descriptor. Combinations that would be drawn as paths anyway are
// pre-converted to path mode with the paint stripped to baseline, which
// collapses every path-bound paint onto one strike.
func MakeCanonicalized(font skia.Font, paint *skia.Paint) StrikeSpec {
	canonicalizedPaint := skia.DefaultPaint()
	if paint != nil {
		canonicalizedPaint = *paint
	}

	var s StrikeSpec

	canonicalizedFont := font
	if font.ShouldRenderAsPaths(canonicalizedPaint, skia.Identity()) {
		s.strikeToSourceRatio = canonicalizedFont.SetupForPaths(nil)
		canonicalizedPaint.Reset()
	}

	s.commonSetup(
		canonicalizedFont,
		canonicalizedPaint,
		skia.LegacyFontHostProps(),
		skia.ScalerFlagsFakeGammaAndBoostContrast,
		skia.Identity(),
	)
	return s
}

// MakeDefault returns the process-wide canonical no-op spec, used when
// no font or paint is given.
func MakeDefault() StrikeSpec {
	return MakeCanonicalized(skia.DefaultFont(), nil)
}

// MakeSDFT builds a spec for signed-distance-field glyph rendering and
// returns the [minScale, maxScale] window over which the strike remains
// valid as the device scale changes. Gamma and anti-aliasing are applied
// later in a shader, so scaler flags are forced to none. The device
// matrix picks the distance-field size bucket but is excluded from the
// descriptor.
//
// Panics if deviceMatrix is non-finite or non-invertible.
func MakeSDFT(
	font skia.Font,
	paint skia.Paint,
	props skia.SurfaceProps,
	deviceMatrix skia.Matrix,
	options SDFOptions,
) (spec StrikeSpec, minScale, maxScale float64) {
	checkDeviceMatrix(deviceMatrix)

	dfPaint := initDistanceFieldPaint(paint)

	var s StrikeSpec
	var dfFont skia.Font
	dfFont, s.strikeToSourceRatio = initDistanceFieldFont(font, deviceMatrix)

	// Fake-gamma and subpixel antialiasing are applied in the shader, so
	// the caller's scaler flags are ignored.
	flags := skia.ScalerFlagsNone

	minScale, maxScale = distanceFieldMinMaxScale(font.Size, deviceMatrix, options)

	s.commonSetup(dfFont, dfPaint, props, flags, skia.Identity())
	return s, minScale, maxScale
}

// MakePDFVector builds a spec for exporting glyphs as vector paths at
// full font-unit resolution, and returns the text size used (the
// typeface's units per em, or 1024 when the typeface reports a
// non-positive value).
func MakePDFVector(typeface *skia.Typeface) (StrikeSpec, int) {
	font := skia.DefaultFont()
	font.Hinting = skia.HintingNone
	font.Edging = skia.EdgingAlias
	font.Typeface = typeface

	unitsPerEm := typeface.UnitsPerEm()
	if unitsPerEm <= 0 {
		unitsPerEm = 1024
	}
	font.Size = float64(unitsPerEm)

	var s StrikeSpec
	s.commonSetup(
		font,
		skia.DefaultPaint(),
		skia.SurfaceProps{Geometry: skia.PixelGeometryUnknown},
		skia.ScalerFlagsFakeGammaAndBoostContrast,
		skia.Identity(),
	)
	return s, unitsPerEm
}

// FindOrCreateExclusiveStrike acquires sole access to the strike for
// this spec's descriptor, creating it if absent. The caller must call
// Release on the returned handle when done.
func (s StrikeSpec) FindOrCreateExclusiveStrike(cache *Cache) *ExclusiveStrike {
	return cache.findOrCreateExclusive(s.descriptor, s.effects(), s.typeface)
}

// FindOrCreateScopedStrike acquires a shareable handle to the strike for
// this spec's descriptor, creating it if absent. Multiple concurrent
// holders are permitted; each must call Release.
func (s StrikeSpec) FindOrCreateScopedStrike(cache *Cache) *ScopedStrike {
	return cache.findOrCreateScoped(s.descriptor, s.effects(), s.typeface)
}

// effects bundles the retained effect handles for strike creation.
func (s StrikeSpec) effects() Effects {
	return Effects{MaskFilter: s.maskFilter, PathEffect: s.pathEffect}
}
