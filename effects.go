package skia

import (
	"encoding/binary"
	"math"
)

// MaskFilter transforms a rasterized glyph mask (e.g. blurring it).
// Implementations must be immutable after construction.
type MaskFilter interface {
	// Fingerprint returns bytes that uniquely identify this filter's
	// effect on rasterization. Equal fingerprints must mean
	// interchangeable filters; the bytes are folded into strike
	// descriptors and must be stable across processes.
	Fingerprint() []byte
}

// PathEffect transforms a glyph outline before rasterization
// (e.g. dashing it). Implementations must be immutable after
// construction.
type PathEffect interface {
	// Fingerprint returns bytes that uniquely identify this effect's
	// transformation. Same contract as MaskFilter.Fingerprint.
	Fingerprint() []byte
}

// BlurStyle specifies how a blur mask filter treats the original mask.
type BlurStyle int

const (
	// BlurStyleNormal blurs inside and outside the original edge.
	BlurStyleNormal BlurStyle = iota
	// BlurStyleSolid keeps the original mask solid and blurs outward.
	BlurStyleSolid
	// BlurStyleOuter blurs outside the edge only, leaving the inside empty.
	BlurStyleOuter
	// BlurStyleInner blurs inside the edge only.
	BlurStyleInner
)

// String returns the string representation of the blur style.
func (s BlurStyle) String() string {
	switch s {
	case BlurStyleNormal:
		return "Normal"
	case BlurStyleSolid:
		return "Solid"
	case BlurStyleOuter:
		return "Outer"
	case BlurStyleInner:
		return "Inner"
	default:
		return unknownStr
	}
}

// BlurMaskFilter blurs a glyph mask with a gaussian of the given sigma.
type BlurMaskFilter struct {
	sigma float64
	style BlurStyle
}

// NewBlurMaskFilter creates a blur mask filter.
// Returns nil if sigma is not positive and finite (no-op blur).
func NewBlurMaskFilter(sigma float64, style BlurStyle) *BlurMaskFilter {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil
	}
	return &BlurMaskFilter{sigma: sigma, style: style}
}

// Sigma returns the gaussian sigma in source units.
func (f *BlurMaskFilter) Sigma() float64 { return f.sigma }

// Style returns the blur style.
func (f *BlurMaskFilter) Style() BlurStyle { return f.style }

// Fingerprint implements MaskFilter.Fingerprint.
func (f *BlurMaskFilter) Fingerprint() []byte {
	buf := make([]byte, 0, 13)
	buf = append(buf, 'b', 'l', 'u', 'r')
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(f.sigma))
	buf = append(buf, byte(f.style))
	return buf
}

// DashPathEffect dashes a glyph outline with alternating on/off
// intervals, starting at the given phase within the pattern.
type DashPathEffect struct {
	intervals []float64
	phase     float64
}

// NewDashPathEffect creates a dash path effect from alternating dash/gap
// lengths. If an odd number of intervals is provided, the pattern is
// conceptually duplicated to create an even-length pattern.
//
// Returns nil if no intervals are provided or no interval is positive
// (the pattern would draw nothing or everything).
func NewDashPathEffect(phase float64, intervals ...float64) *DashPathEffect {
	if len(intervals) == 0 {
		return nil
	}
	anyPositive := false
	for _, iv := range intervals {
		if iv > 0 {
			anyPositive = true
			break
		}
	}
	if !anyPositive {
		return nil
	}
	own := make([]float64, len(intervals))
	copy(own, intervals)
	return &DashPathEffect{intervals: own, phase: phase}
}

// Intervals returns a copy of the dash/gap pattern.
func (e *DashPathEffect) Intervals() []float64 {
	out := make([]float64, len(e.intervals))
	copy(out, e.intervals)
	return out
}

// Phase returns the starting offset into the pattern.
func (e *DashPathEffect) Phase() float64 { return e.phase }

// Fingerprint implements PathEffect.Fingerprint.
func (e *DashPathEffect) Fingerprint() []byte {
	buf := make([]byte, 0, 16+8*len(e.intervals))
	buf = append(buf, 'd', 'a', 's', 'h')
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(e.phase))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(e.intervals)))
	for _, iv := range e.intervals {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(iv))
	}
	return buf
}
