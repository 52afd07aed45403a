package cache

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/seedsigner/seedui/mask"

// A [GlyphCacheHandler] acts as an intermediator between a glyph cache
// and the text drawing code, giving the latter a narrow interface to
// conform to while abstracting the details of the underlying cache.
//
// Glyph cache handlers can't be used concurrently unless the concrete
// implementation explicitly says otherwise.
type GlyphCacheHandler interface {
	// Notifies that the face in use has changed. The value must be
	// comparable and identify the face and its size.
	NotifyFaceChange(face any)

	// Notifies that the rasterizer has changed.
	NotifyRasterizerChange(mask.Rasterizer)

	// Notifies that the fractional drawing position has changed.
	// Only the 6 bits corresponding to the non-integer part of the
	// coordinate are considered.
	NotifyFractChange(fixed.Int26_6)

	// Gets the mask image for the given glyph index and current configuration.
	// The bool indicates whether the mask has been found (as it may be nil).
	GetMask(sfnt.GlyphIndex) (GlyphMask, bool)

	// Passes a mask image for the given glyph index and current
	// configuration to the underlying cache. PassMask should only
	// be called after GetMask() fails. Masks passed for an already
	// cached configuration may be ignored.
	PassMask(sfnt.GlyphIndex, GlyphMask)
}
