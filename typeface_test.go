package skia

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// loadTestTypeface parses the embedded Go Regular font.
func loadTestTypeface(t *testing.T) *Typeface {
	t.Helper()

	tf, err := NewTypefaceFromData(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test typeface: %v", err)
	}
	return tf
}

func TestNewTypefaceFromData(t *testing.T) {
	tf := loadTestTypeface(t)

	if tf.UnitsPerEm() <= 0 {
		t.Errorf("UnitsPerEm() = %d, want > 0", tf.UnitsPerEm())
	}
	if tf.Name() == "" {
		t.Error("Name() is empty, want family name")
	}
	if tf.ID() == 0 {
		t.Error("ID() = 0, want non-zero")
	}
}

func TestNewTypefaceFromDataEmpty(t *testing.T) {
	_, err := NewTypefaceFromData(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("err = %v, want ErrEmptyFontData", err)
	}
}

func TestTypefaceIDsUnique(t *testing.T) {
	a := loadTestTypeface(t)
	b := loadTestTypeface(t)
	if a.ID() == b.ID() {
		t.Errorf("two typefaces share ID %d", a.ID())
	}
}

func TestParserBackendsAgree(t *testing.T) {
	ximage, err := NewTypefaceFromData(goregular.TTF, WithParser("ximage"))
	if err != nil {
		t.Fatalf("ximage parse failed: %v", err)
	}
	gotext, err := NewTypefaceFromData(goregular.TTF, WithParser("gotext"))
	if err != nil {
		t.Fatalf("gotext parse failed: %v", err)
	}

	if ximage.UnitsPerEm() != gotext.UnitsPerEm() {
		t.Errorf("backends disagree on units per em: ximage=%d gotext=%d",
			ximage.UnitsPerEm(), gotext.UnitsPerEm())
	}
}

func TestUnknownParserFallsBack(t *testing.T) {
	tf, err := NewTypefaceFromData(goregular.TTF, WithParser("no-such-backend"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if tf.UnitsPerEm() <= 0 {
		t.Error("fallback parser produced unusable typeface")
	}
}

func TestDefaultTypefaceSingleton(t *testing.T) {
	a := DefaultTypeface()
	b := DefaultTypeface()
	if a != b {
		t.Error("DefaultTypeface() should return the same handle every call")
	}
	if a.UnitsPerEm() <= 0 {
		t.Errorf("default typeface UnitsPerEm() = %d, want > 0", a.UnitsPerEm())
	}
}

func TestDefaultTypefaceConcurrent(t *testing.T) {
	const goroutines = 16
	results := make(chan *Typeface, goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			results <- DefaultTypeface()
		}()
	}
	first := <-results
	for i := 1; i < goroutines; i++ {
		if got := <-results; got != first {
			t.Fatal("concurrent DefaultTypeface() calls returned different handles")
		}
	}
}
