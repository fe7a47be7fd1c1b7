package skia

import "errors"

// Sentinel errors for the skia package.
var (
	// ErrEmptyFontData is returned when typeface data is empty.
	ErrEmptyFontData = errors.New("skia: empty font data")
)
