// The cache subpackage provides a bounded glyph mask cache.
//
// Rasterizing glyph outlines is the most expensive step when drawing
// text, and the same few dozen glyphs are drawn over and over on every
// screen, so masks are kept in a [DefaultCache] shared by all the
// drawing code. Access goes through a [DefaultCacheHandler], which
// tracks the active face and rasterizer so callers only need to pass
// glyph indices around.
//
// Sizing is application dependent. A body font glyph at the usual
// display sizes is around 12x16 pixels, that is, roughly 250 bytes
// per mask. Two or three fonts at a few sizes, plus the supersampled
// variants at twice the size, fit comfortably in 1MiB.
// [DefaultCache.PeakSize]() can be used to check the real usage.
package cache
