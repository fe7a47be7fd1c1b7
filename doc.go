// Package skia provides the value types used to describe a glyph
// rasterization request: fonts, paints, device transforms, surface
// properties and the optional mask/path effects a paint can carry.
//
// # Overview
//
// The package is the foundation for the strike subpackage, which turns a
// (font, paint, transform) request into a canonical, hashable strike
// specification used as a glyph-cache key. Everything here is a plain
// value type: cheap to copy, safe to share once constructed, and with no
// hidden global state beyond the lazily created default typeface.
//
// # Quick Start
//
//	import (
//		"github.com/DevendarReddyDarukumalli/skia"
//		"github.com/DevendarReddyDarukumalli/skia/strike"
//	)
//
//	font := skia.DefaultFont()
//	paint := skia.DefaultPaint()
//	props := skia.LegacyFontHostProps()
//
//	spec := strike.MakeMask(font, paint, props,
//		skia.ScalerFlagsFakeGammaAndBoostContrast, skia.Identity())
//
//	cache := strike.NewCache(0)
//	h := spec.FindOrCreateExclusiveStrike(cache)
//	defer h.Release()
//
// # Font parsing backends
//
// Typefaces are parsed through a pluggable backend registry. The default
// "ximage" backend uses golang.org/x/image/font/opentype; a "gotext"
// backend built on github.com/go-text/typesetting is also registered.
// Custom backends can be added with RegisterParser.
package skia
