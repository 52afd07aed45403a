package cache

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/seedsigner/seedui/mask"

var _ GlyphCacheHandler = (*DefaultCacheHandler)(nil)

// Subpixel positions are quantized to this many steps per pixel.
const FractSteps = 4

// A default implementation of [GlyphCacheHandler].
type DefaultCacheHandler struct {
	cache *DefaultCache
	activeKey Key
}

// Implements [GlyphCacheHandler].NotifyFaceChange(...)
func (self *DefaultCacheHandler) NotifyFaceChange(face any) {
	self.activeKey.Face = face
}

// Implements [GlyphCacheHandler].NotifyRasterizerChange(...)
func (self *DefaultCacheHandler) NotifyRasterizerChange(rasterizer mask.Rasterizer) {
	self.activeKey.Rasterizer = rasterizer.Signature()
}

// Implements [GlyphCacheHandler].NotifyFractChange(...)
func (self *DefaultCacheHandler) NotifyFractChange(x fixed.Int26_6) {
	self.activeKey.Fract = QuantizeFract(x)
}

// Returns the quantization step for the fractional part of x, in
// [0, FractSteps).
func QuantizeFract(x fixed.Int26_6) uint8 {
	return uint8((x & 0x3F) / (64/FractSteps))
}

// Returns the fractional offset that corresponds to the given
// quantization step.
func FractOffset(step uint8) fixed.Int26_6 {
	return fixed.Int26_6(step)*(64/FractSteps)
}

// Implements [GlyphCacheHandler].GetMask(...)
func (self *DefaultCacheHandler) GetMask(index sfnt.GlyphIndex) (GlyphMask, bool) {
	self.activeKey.Index = index
	return self.cache.GetMask(self.activeKey)
}

// Implements [GlyphCacheHandler].PassMask(...)
func (self *DefaultCacheHandler) PassMask(index sfnt.GlyphIndex, mask GlyphMask) {
	self.activeKey.Index = index
	self.cache.PassMask(self.activeKey, mask)
}

// Returns the quantized fractional step currently active.
func (self *DefaultCacheHandler) Fract() uint8 { return self.activeKey.Fract }

// Provides access to [DefaultCache.ApproxByteSize]().
func (self *DefaultCacheHandler) ApproxCacheByteSize() int {
	return self.cache.ApproxByteSize()
}

// Provides access to [DefaultCache.PeakSize]().
func (self *DefaultCacheHandler) PeakCacheSize() int {
	return self.cache.PeakSize()
}

// Provides access to the underlying [DefaultCache].
func (self *DefaultCacheHandler) Cache() *DefaultCache {
	return self.cache
}
