package strike

import (
	"sync"

	"github.com/DevendarReddyDarukumalli/skia"
)

// Cache is a descriptor-keyed LRU store of strikes with a soft entry
// limit. Lookup and insert are atomic with respect to concurrent
// identical requests: two goroutines asking for the same descriptor
// always share one Strike.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache struct {
	mu        sync.Mutex
	strikes   map[Descriptor]*Strike
	softLimit int
	tick      int64 // Monotonic access counter

	// stats, guarded by mu.
	hits      int64
	misses    int64
	evictions int64
}

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Len       int
}

// NewCache creates a strike cache with the given soft limit.
// A softLimit of 0 means unlimited.
func NewCache(softLimit int) *Cache {
	return &Cache{
		strikes:   make(map[Descriptor]*Strike),
		softLimit: softLimit,
	}
}

// Len returns the number of cached strikes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.strikes)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Len:       len(c.strikes),
	}
}

// findOrCreate returns the strike for the descriptor, creating and
// inserting one configured with the given effects and typeface on miss.
// The returned strike is pinned; the caller wraps it in a handle whose
// Release unpins it.
func (c *Cache) findOrCreate(desc Descriptor, effects Effects, typeface *skia.Typeface) *Strike {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++

	if s, ok := c.strikes[desc]; ok {
		c.hits++
		s.atime = c.tick
		s.pins.Add(1)
		return s
	}

	c.misses++
	s := &Strike{
		descriptor: desc,
		typeface:   typeface,
		effects:    effects,
		atime:      c.tick,
	}
	s.pins.Add(1)
	c.strikes[desc] = s

	skia.Logger().Debug("strike created",
		"descriptor", desc.String(),
		"typeface", typeface.Name(),
		"cached", len(c.strikes))

	c.evictLocked()
	return s
}

// evictLocked removes least recently used strikes until the soft limit
// is respected. Pinned strikes are skipped: a strike with live handles
// is never evicted. Caller must hold mu.
func (c *Cache) evictLocked() {
	if c.softLimit <= 0 {
		return
	}
	for len(c.strikes) > c.softLimit {
		var oldest Descriptor
		var oldestTick int64 = -1
		for desc, s := range c.strikes {
			if s.pins.Load() > 0 {
				continue
			}
			if oldestTick == -1 || s.atime < oldestTick {
				oldest = desc
				oldestTick = s.atime
			}
		}
		if oldestTick == -1 {
			// Everything live is pinned; over-limit until handles drop.
			return
		}
		delete(c.strikes, oldest)
		c.evictions++
		skia.Logger().Debug("strike evicted",
			"descriptor", oldest.String(),
			"cached", len(c.strikes))
	}
}

// findOrCreateExclusive acquires sole access to the strike for desc.
// Blocks while another exclusive holder has it.
func (c *Cache) findOrCreateExclusive(desc Descriptor, effects Effects, typeface *skia.Typeface) *ExclusiveStrike {
	s := c.findOrCreate(desc, effects, typeface)
	// Lock outside the cache lock so a held strike cannot stall
	// unrelated lookups.
	s.mu.Lock()
	return &ExclusiveStrike{strike: s}
}

// findOrCreateScoped acquires a shared handle to the strike for desc.
func (c *Cache) findOrCreateScoped(desc Descriptor, effects Effects, typeface *skia.Typeface) *ScopedStrike {
	s := c.findOrCreate(desc, effects, typeface)
	return &ScopedStrike{strike: s}
}
