package cache

import "container/list"
import "sync"

import "golang.org/x/image/font/sfnt"

// Identifies a glyph mask. Face must be comparable (typically the
// pointer to the face that produced the outline); Fract is the
// quantized subpixel x position the mask was rasterized at.
type Key struct {
	Face any
	Rasterizer uint64
	Index sfnt.GlyphIndex
	Fract uint8
}

type cacheEntry struct {
	key Key
	mask GlyphMask
	byteSize int
}

// The default glyph mask cache. It is concurrent-safe and bounded by
// a byte size; when full, the least recently used masks are evicted
// first.
type DefaultCache struct {
	mutex sync.Mutex
	entries map[Key]*list.Element
	recency *list.List // front is the most recently used
	byteSize int
	peakByteSize int
	byteSizeLimit int
}

// Creates a new cache bounded by the given size. Negative values
// will panic.
//
// Values below 32*1024 (32KiB) are not recommended. For more concrete
// size estimations, see the package overview.
func NewDefaultCache(maxByteSize int) *DefaultCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") } // likely a dev mistake
	return &DefaultCache{
		entries: make(map[Key]*list.Element, 128),
		recency: list.New(),
		byteSizeLimit: maxByteSize,
	}
}

// Stores the given mask with the given key. Masks bigger than the
// whole cache are not stored.
func (self *DefaultCache) PassMask(key Key, mask GlyphMask) {
	byteSize := int(GlyphMaskByteSize(mask))
	if byteSize > self.byteSizeLimit { return }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.entries[key]; found { return }
	for self.byteSize + byteSize > self.byteSizeLimit {
		self.evictOldest()
	}
	entry := &cacheEntry{ key: key, mask: mask, byteSize: byteSize }
	self.entries[key] = self.recency.PushFront(entry)
	self.byteSize += byteSize
	self.peakByteSize = max(self.peakByteSize, self.byteSize)
}

// Must be called with the mutex held.
func (self *DefaultCache) evictOldest() {
	oldest := self.recency.Back()
	entry := self.recency.Remove(oldest).(*cacheEntry)
	delete(self.entries, entry.key)
	self.byteSize -= entry.byteSize
}

// Gets the mask associated to the given key.
func (self *DefaultCache) GetMask(key Key) (GlyphMask, bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	element, found := self.entries[key]
	if !found { return nil, false }
	self.recency.MoveToFront(element)
	return element.Value.(*cacheEntry).mask, true
}

// Returns the number of bytes taken by the glyph masks currently
// stored in the cache. Approximate, as it counts a fixed header size
// per mask.
func (self *DefaultCache) ApproxByteSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.byteSize
}

// Returns the maximum amount of bytes that the cache has been filled
// with at any point of its life.
//
// This method can be useful to determine the actual usage of a cache
// within your application and set its capacity to a reasonable value.
func (self *DefaultCache) PeakSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.peakByteSize
}

// Returns a new cache handler for the current cache. While DefaultCache
// is concurrent-safe, handlers can only be used non-concurrently. Each
// drawing goroutine should use its own handler.
func (self *DefaultCache) NewHandler() *DefaultCacheHandler {
	return &DefaultCacheHandler{ cache: self }
}
