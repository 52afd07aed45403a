// The mask subpackage turns glyph outlines into alpha masks.
//
// Fonts give us glyphs as outlines (lines and curves). Before they
// can be composed into a bitmap, they have to be rasterized into a
// grid of coverage values. The [Rasterizer] interface is the boundary
// to that process and [DefaultRasterizer] is the implementation used
// everywhere, a thin wrapper over [golang.org/x/image/vector].
//
// The same machinery is used for the rounded rectangles of buttons,
// through [RoundedRect].
package mask
