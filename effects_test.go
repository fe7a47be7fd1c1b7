package skia

import (
	"bytes"
	"math"
	"testing"
)

func TestNewBlurMaskFilter(t *testing.T) {
	tests := []struct {
		name    string
		sigma   float64
		wantNil bool
	}{
		{"positive sigma", 2.5, false},
		{"zero sigma", 0, true},
		{"negative sigma", -1, true},
		{"NaN sigma", math.NaN(), true},
		{"infinite sigma", math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewBlurMaskFilter(tt.sigma, BlurStyleNormal)
			if (f == nil) != tt.wantNil {
				t.Errorf("NewBlurMaskFilter(%v) nil = %v, want %v", tt.sigma, f == nil, tt.wantNil)
			}
		})
	}
}

func TestNewDashPathEffect(t *testing.T) {
	tests := []struct {
		name      string
		intervals []float64
		wantNil   bool
	}{
		{"simple pattern", []float64{5, 3}, false},
		{"odd pattern", []float64{5}, false},
		{"empty", nil, true},
		{"all zero", []float64{0, 0}, true},
		{"all negative", []float64{-1, -2}, true},
		{"mixed has positive", []float64{0, 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewDashPathEffect(0, tt.intervals...)
			if (e == nil) != tt.wantNil {
				t.Errorf("NewDashPathEffect(%v) nil = %v, want %v", tt.intervals, e == nil, tt.wantNil)
			}
		})
	}
}

func TestBlurFingerprintDeterministic(t *testing.T) {
	a := NewBlurMaskFilter(1.5, BlurStyleOuter)
	b := NewBlurMaskFilter(1.5, BlurStyleOuter)
	if !bytes.Equal(a.Fingerprint(), b.Fingerprint()) {
		t.Error("equal blur filters produced different fingerprints")
	}

	c := NewBlurMaskFilter(1.5, BlurStyleInner)
	if bytes.Equal(a.Fingerprint(), c.Fingerprint()) {
		t.Error("different blur styles produced equal fingerprints")
	}
	d := NewBlurMaskFilter(2.5, BlurStyleOuter)
	if bytes.Equal(a.Fingerprint(), d.Fingerprint()) {
		t.Error("different sigmas produced equal fingerprints")
	}
}

func TestDashFingerprintDeterministic(t *testing.T) {
	a := NewDashPathEffect(1, 4, 2)
	b := NewDashPathEffect(1, 4, 2)
	if !bytes.Equal(a.Fingerprint(), b.Fingerprint()) {
		t.Error("equal dash effects produced different fingerprints")
	}

	c := NewDashPathEffect(0, 4, 2)
	if bytes.Equal(a.Fingerprint(), c.Fingerprint()) {
		t.Error("different phases produced equal fingerprints")
	}
	d := NewDashPathEffect(1, 4, 2, 1, 1)
	if bytes.Equal(a.Fingerprint(), d.Fingerprint()) {
		t.Error("different intervals produced equal fingerprints")
	}
}

func TestDashIntervalsCopied(t *testing.T) {
	src := []float64{5, 3}
	e := NewDashPathEffect(0, src...)
	src[0] = 99

	if got := e.Intervals(); got[0] != 5 {
		t.Errorf("intervals[0] = %v, want 5 (constructor must copy)", got[0])
	}

	out := e.Intervals()
	out[1] = 99
	if got := e.Intervals(); got[1] != 3 {
		t.Errorf("intervals[1] = %v, want 3 (accessor must copy)", got[1])
	}
}
