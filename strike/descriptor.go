package strike

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/DevendarReddyDarukumalli/skia"
)

// descriptorVersion is bumped whenever the encoded layout changes, so
// descriptors from different layouts can never collide.
const descriptorVersion = 1

// Descriptor is the canonical, immutable cache key identifying a strike.
// Two descriptors compare equal exactly when the rendering-relevant state
// they were built from coincides after normalization. The byte layout is
// private; only value equality and the stable hash are contractual.
//
// Descriptor is comparable and may be used directly as a map key.
type Descriptor struct {
	data string
}

// Equal reports whether the two descriptors are byte-identical.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.data == other.data
}

// Hash returns a stable FNV-1a hash of the descriptor. The hash is
// reproducible across processes, unlike hash/maphash.
func (d Descriptor) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(d.data)) // fnv.Write never returns an error
	return h.Sum64()
}

// Bytes returns a copy of the raw descriptor bytes.
func (d Descriptor) Bytes() []byte {
	return []byte(d.data)
}

// String returns a short hex form of the hash, for logging.
func (d Descriptor) String() string {
	return fmt.Sprintf("strike-%016x", d.Hash())
}

// descriptorWriter append-encodes descriptor fields little-endian.
// Scalar fields are quantized to fixed point so that values which
// rasterize identically key identically.
type descriptorWriter struct {
	buf []byte
}

func (w *descriptorWriter) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *descriptorWriter) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *descriptorWriter) u64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// scalar quantizes to 26.6 fixed point, enough precision for text sizes
// and skews while collapsing sub-quantum float noise.
func (w *descriptorWriter) scalar(v float64) {
	q := fixed.Int26_6(math.Round(v * 64))
	w.u32(uint32(q))
}

// matrixElem quantizes to 16.16 fixed point; matrix elements need finer
// precision than text sizes.
func (w *descriptorWriter) matrixElem(v float64) {
	q := fixed.Int52_12(math.Round(v * 4096))
	w.u64(uint64(q))
}

// bytesWithLen writes a length-prefixed byte run.
func (w *descriptorWriter) bytesWithLen(b []byte) {
	w.u32(uint32(len(b)))
	w.buf = append(w.buf, b...)
}

// boolByte writes a bool as one byte.
func (w *descriptorWriter) boolByte(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

// BuildDescriptorAndEffects derives the canonical descriptor for the
// normalized tuple and extracts the paint's mask/path effects so callers
// can retain them without holding the paint.
//
// The function is pure and deterministic: equal inputs always produce
// byte-identical descriptors, across calls and across process runs.
//
// Only the linear part of the device matrix participates in the key;
// translation is resolved by subpixel positioning at draw time.
// Constructors that exclude the transform pass the identity matrix,
// which encodes identically for every caller.
func BuildDescriptorAndEffects(
	font skia.Font,
	paint skia.Paint,
	props skia.SurfaceProps,
	flags skia.ScalerFlags,
	deviceMatrix skia.Matrix,
) (Descriptor, skia.MaskFilter, skia.PathEffect) {
	w := descriptorWriter{buf: make([]byte, 0, 96)}

	w.u8(descriptorVersion)

	// Typeface identity.
	w.u64(font.TypefaceOrDefault().ID())

	// Font geometry.
	w.scalar(font.Size)
	w.scalar(font.ScaleX)
	w.scalar(font.SkewX)

	// Font rendering controls.
	w.u8(uint8(font.Edging))
	w.u8(uint8(font.Hinting))
	w.boolByte(font.Subpixel)
	w.boolByte(font.LinearMetrics)
	w.boolByte(font.Embolden)

	// Scaler and surface state.
	w.u32(uint32(flags))
	w.u32(props.Flags)
	w.u8(uint8(props.Geometry))

	// Paint state. Stroke geometry only matters when stroking.
	w.u8(uint8(paint.Style))
	w.boolByte(paint.AntiAlias)
	if paint.Style != skia.PaintStyleFill {
		w.scalar(paint.StrokeWidth)
		w.scalar(paint.MiterLimit)
		w.u8(uint8(paint.Cap))
		w.u8(uint8(paint.Join))
	}

	// Effects, length-prefixed so adjacent fingerprints cannot alias.
	if paint.MaskFilter != nil {
		w.u8(1)
		w.bytesWithLen(paint.MaskFilter.Fingerprint())
	} else {
		w.u8(0)
	}
	if paint.PathEffect != nil {
		w.u8(1)
		w.bytesWithLen(paint.PathEffect.Fingerprint())
	} else {
		w.u8(0)
	}

	// Device transform, linear part only.
	w.matrixElem(deviceMatrix.A)
	w.matrixElem(deviceMatrix.B)
	w.matrixElem(deviceMatrix.D)
	w.matrixElem(deviceMatrix.E)

	return Descriptor{data: string(w.buf)}, paint.MaskFilter, paint.PathEffect
}
