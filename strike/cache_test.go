package strike

import (
	"sync"
	"testing"

	"github.com/DevendarReddyDarukumalli/skia"
)

func maskSpecAtScale(scale float64) StrikeSpec {
	return MakeMask(
		skia.DefaultFont(),
		skia.DefaultPaint(),
		skia.LegacyFontHostProps(),
		skia.ScalerFlagsFakeGammaAndBoostContrast,
		skia.Scale(scale, scale),
	)
}

func TestNewCache(t *testing.T) {
	c := NewCache(0)
	if c == nil {
		t.Fatal("NewCache should not return nil")
	}
	if c.Len() != 0 {
		t.Errorf("new cache Len() = %d, want 0", c.Len())
	}
}

func TestCacheExclusiveAcquire(t *testing.T) {
	c := NewCache(0)
	spec := maskSpecAtScale(1)

	h := spec.FindOrCreateExclusiveStrike(c)
	if h.Strike() == nil {
		t.Fatal("exclusive handle holds no strike")
	}
	if !h.Strike().Descriptor().Equal(spec.Descriptor()) {
		t.Error("strike descriptor should match the spec's")
	}
	if h.Strike().Typeface() != spec.Typeface() {
		t.Error("strike should be configured with the spec's typeface")
	}
	h.Release()
	h.Release() // second release is a no-op

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheDeduplicatesEquivalentSpecs(t *testing.T) {
	c := NewCache(0)

	a := maskSpecAtScale(2).FindOrCreateScopedStrike(c)
	defer a.Release()
	b := maskSpecAtScale(2).FindOrCreateScopedStrike(c)
	defer b.Release()

	if a.Strike() != b.Strike() {
		t.Error("equivalent specs must share one strike")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("stats = %+v, want 1 hit and 1 miss", stats)
	}
}

func TestCacheDistinctSpecsDistinctStrikes(t *testing.T) {
	c := NewCache(0)

	a := maskSpecAtScale(1).FindOrCreateScopedStrike(c)
	defer a.Release()
	b := maskSpecAtScale(3).FindOrCreateScopedStrike(c)
	defer b.Release()

	if a.Strike() == b.Strike() {
		t.Error("distinct descriptors must not share a strike")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheScopedSharedHolders(t *testing.T) {
	c := NewCache(0)
	spec := maskSpecAtScale(1)

	a := spec.FindOrCreateScopedStrike(c)
	b := spec.FindOrCreateScopedStrike(c)

	if a.Strike() != b.Strike() {
		t.Fatal("scoped holders should share the strike")
	}
	if got := a.Strike().pins.Load(); got != 2 {
		t.Errorf("pins = %d, want 2", got)
	}
	a.Release()
	b.Release()
	b.Release() // no-op
	if got := a.Strike().pins.Load(); got != 0 {
		t.Errorf("pins after release = %d, want 0", got)
	}
}

func TestCacheEviction(t *testing.T) {
	c := NewCache(2)

	for _, scale := range []float64{1, 2, 3, 4} {
		h := maskSpecAtScale(scale).FindOrCreateExclusiveStrike(c)
		h.Release()
	}

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want soft limit 2", c.Len())
	}
	if stats := c.Stats(); stats.Evictions != 2 {
		t.Errorf("Evictions = %d, want 2", stats.Evictions)
	}
}

func TestCacheEvictionSkipsPinned(t *testing.T) {
	c := NewCache(1)

	held := maskSpecAtScale(1).FindOrCreateScopedStrike(c)

	// Overflow the cache while the first strike is pinned.
	h2 := maskSpecAtScale(2).FindOrCreateExclusiveStrike(c)
	h2.Release()
	h3 := maskSpecAtScale(3).FindOrCreateExclusiveStrike(c)
	h3.Release()

	// The pinned strike must survive; re-acquiring it must hit.
	again := maskSpecAtScale(1).FindOrCreateScopedStrike(c)
	if again.Strike() != held.Strike() {
		t.Error("pinned strike was evicted")
	}
	again.Release()
	held.Release()
}

func TestCacheConcurrentDeduplication(t *testing.T) {
	c := NewCache(0)
	spec := maskSpecAtScale(2)

	const goroutines = 32
	strikes := make([]*Strike, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h := spec.FindOrCreateScopedStrike(c)
			strikes[i] = h.Strike()
			h.Release()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if strikes[i] != strikes[0] {
			t.Fatal("concurrent identical requests created distinct strikes")
		}
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	stats := c.Stats()
	if stats.Hits+stats.Misses != goroutines {
		t.Errorf("hits+misses = %d, want %d", stats.Hits+stats.Misses, goroutines)
	}
}

func TestCacheExclusiveSerializes(t *testing.T) {
	c := NewCache(0)
	spec := maskSpecAtScale(1)

	h1 := spec.FindOrCreateExclusiveStrike(c)

	acquired := make(chan *ExclusiveStrike)
	go func() {
		acquired <- spec.FindOrCreateExclusiveStrike(c)
	}()

	select {
	case <-acquired:
		t.Fatal("second exclusive acquisition succeeded while first was held")
	default:
	}

	h1.Release()
	h2 := <-acquired
	h2.Release()
}

func TestCacheStrikeRetainsEffects(t *testing.T) {
	c := NewCache(0)

	paint := skia.DefaultPaint()
	paint.MaskFilter = skia.NewBlurMaskFilter(1.5, skia.BlurStyleNormal)

	spec := MakeMask(
		skia.DefaultFont(), paint,
		skia.LegacyFontHostProps(),
		skia.ScalerFlagsNone,
		skia.Identity(),
	)

	h := spec.FindOrCreateExclusiveStrike(c)
	defer h.Release()

	if h.Strike().Effects().MaskFilter != paint.MaskFilter {
		t.Error("new strike must be configured with the spec's retained effects")
	}
}
