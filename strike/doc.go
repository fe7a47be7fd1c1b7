// Package strike builds canonical, hashable strike specifications that
// decide cache-key equivalence between text-rendering requests.
//
// A strike is a cached rasterization context for one normalized
// font/paint/size/effect combination. Many superficially different
// requests should resolve to the same strike whenever their
// rendering-relevant parameters coincide after normalization; the Make
// functions in this package encode those equivalence rules, one per
// rendering strategy:
//
//   - MakeMask: direct mask rendering at device resolution
//   - MakePath: vector outlines at a canonical size
//   - MakeSourceFallback: oversized glyphs scaled to fit the atlas
//   - MakeCanonicalized / MakeDefault: transform-independent matching
//   - MakeSDFT: signed-distance fields valid over a scale window
//   - MakePDFVector: vector export at font-unit resolution
//
// Each constructor normalizes its inputs, builds the descriptor (the
// binary cache key), and records the strike-to-source ratio converting
// strike-space measurements back to the caller's units. The resulting
// StrikeSpec is cheap: use it once against a Cache, then discard it.
//
// Construction is pure and safe to run concurrently. The Cache is the
// shared-resource boundary; its lookup/insert is atomic so equivalent
// concurrent requests deduplicate onto one strike.
package strike
