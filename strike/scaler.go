package strike

import (
	"sync"
	"sync/atomic"

	"github.com/DevendarReddyDarukumalli/skia"
)

// Effects bundles the paint-derived effect handles a strike is
// configured with. Either field may be nil.
type Effects struct {
	MaskFilter skia.MaskFilter
	PathEffect skia.PathEffect
}

// Strike is a reusable rasterization context for one normalized
// font/paint/size/effect combination. It is the value stored in a Cache
// and outlives the StrikeSpec that created it. Glyph generation itself
// is delegated to the rasterizer; the Strike carries the configuration a
// rasterizer needs to produce masks or outlines for this descriptor.
type Strike struct {
	descriptor Descriptor
	typeface   *skia.Typeface
	effects    Effects

	// mu serializes exclusive access.
	mu sync.Mutex

	// pins counts live handles. A pinned strike is never evicted.
	pins atomic.Int32

	// atime is the cache tick of the last acquisition, guarded by the
	// cache's lock.
	atime int64
}

// Descriptor returns the canonical key this strike was created for.
func (s *Strike) Descriptor() Descriptor { return s.descriptor }

// Typeface returns the typeface this strike rasterizes from.
func (s *Strike) Typeface() *skia.Typeface { return s.typeface }

// Effects returns the effect handles this strike applies.
func (s *Strike) Effects() Effects { return s.effects }

// ExclusiveStrike is a sole-access handle to a Strike: exclusive
// acquisitions of the same strike are serialized, so the holder may
// mutate the strike's rasterization state freely until Release.
type ExclusiveStrike struct {
	strike   *Strike
	released bool
}

// Strike returns the held strike. Must not be used after Release.
func (h *ExclusiveStrike) Strike() *Strike { return h.strike }

// Release returns the strike to the cache. Safe to call once; further
// calls are no-ops.
func (h *ExclusiveStrike) Release() {
	if h.released {
		return
	}
	h.released = true
	h.strike.mu.Unlock()
	h.strike.pins.Add(-1)
}

// ScopedStrike is a shareable, reference-counted handle to a Strike,
// scoped to a lexical region. Multiple concurrent holders are permitted.
type ScopedStrike struct {
	strike   *Strike
	released bool
}

// Strike returns the held strike. Must not be used after Release.
func (h *ScopedStrike) Strike() *Strike { return h.strike }

// Release drops this holder's reference. Safe to call once; further
// calls are no-ops.
func (h *ScopedStrike) Release() {
	if h.released {
		return
	}
	h.released = true
	h.strike.pins.Add(-1)
}
