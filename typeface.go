package skia

import (
	"sync"
	"sync/atomic"

	"golang.org/x/image/font/gofont/goregular"
)

// typefaceIDs hands out process-unique typeface identifiers.
// Strike descriptors embed the ID, so uniqueness is all identity needs.
var typefaceIDs atomic.Uint64

// Typeface is an immutable handle to parsed font data. One Typeface is
// shared by every Font and StrikeSpec that references it.
//
// Typeface is safe for concurrent use.
type Typeface struct {
	id     uint64
	name   string
	parsed ParsedFont
	config typefaceConfig
}

// TypefaceOption configures typeface creation.
type TypefaceOption func(*typefaceConfig)

// typefaceConfig holds configuration for Typeface creation.
type typefaceConfig struct {
	parserName string
}

// defaultTypefaceConfig returns the default typeface configuration.
func defaultTypefaceConfig() typefaceConfig {
	return typefaceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend for a typeface.
// The default is "ximage" which uses golang.org/x/image/font/opentype;
// "gotext" selects the go-text/typesetting backend.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) TypefaceOption {
	return func(c *typefaceConfig) {
		c.parserName = name
	}
}

// NewTypefaceFromData creates a Typeface from font data (TTF or OTF).
// The data is parsed eagerly; the slice may be reused after this call.
func NewTypefaceFromData(data []byte, opts ...TypefaceOption) (*Typeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultTypefaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	return &Typeface{
		id:     typefaceIDs.Add(1),
		name:   parsed.Name(),
		parsed: parsed,
		config: config,
	}, nil
}

// ID returns the process-unique identifier of this typeface.
func (t *Typeface) ID() uint64 { return t.id }

// Name returns the font family name, or empty if unavailable.
func (t *Typeface) Name() string { return t.name }

// UnitsPerEm returns the font's units per em. Malformed fonts may report
// 0 or a negative value; callers that need a usable size must coerce
// (vector export substitutes 1024).
func (t *Typeface) UnitsPerEm() int {
	return t.parsed.UnitsPerEm()
}

// defaultTypeface lazily builds the process-wide default typeface from
// the embedded Go Regular font. Parsing cannot fail for the embedded
// data, so the panic is unreachable in practice.
var defaultTypeface = sync.OnceValue(func() *Typeface {
	t, err := NewTypefaceFromData(goregular.TTF)
	if err != nil {
		panic("skia: embedded default typeface failed to parse: " + err.Error())
	}
	return t
})

// DefaultTypeface returns the process-wide default typeface, used when a
// font does not specify one. The value is created once and shared; it is
// safe for concurrent use.
func DefaultTypeface() *Typeface {
	return defaultTypeface()
}
