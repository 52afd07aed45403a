package metrics

import "sync"

import "github.com/pkg/errors"

import "github.com/seedsigner/seedui/font"

var _ Source = (*Cache)(nil)

type cacheKey struct {
	name string
	size int
	kind font.Kind
}

type cacheEntry struct {
	once sync.Once
	face *Face
	err error
}

// Process-wide store of faces keyed by font name, size and kind.
// Each face is created once, on first request, and never evicted:
// fonts don't change at runtime. Failures are remembered too, so a
// missing font keeps failing the same way without retrying the
// library lookup.
type Cache struct {
	library *font.Library
	entries map[cacheKey]*cacheEntry
	mutex sync.Mutex
}

// Creates a cache loading fonts from the given library.
func NewCache(library *font.Library) *Cache {
	if library == nil { panic("nil font library") }
	return &Cache{
		library: library,
		entries: make(map[cacheKey]*cacheEntry, 8),
	}
}

// Returns the underlying font library.
func (self *Cache) Library() *font.Library { return self.library }

// Returns the face for the given font and size. If the font is not
// in the library, the error wraps [font.ErrMissing].
func (self *Cache) Face(name string, size int, kind font.Kind) (Outliner, error) {
	face, err := self.SfntFace(name, size, kind)
	if err != nil { return nil, err }
	return face, nil
}

// Same as [Cache.Face], but returns the concrete type.
func (self *Cache) SfntFace(name string, size int, kind font.Kind) (*Face, error) {
	key := cacheKey{ name: name, size: size, kind: kind }
	self.mutex.Lock()
	entry, found := self.entries[key]
	if !found {
		entry = &cacheEntry{}
		self.entries[key] = entry
	}
	self.mutex.Unlock()

	entry.once.Do(func() {
		sfntFont, err := self.library.Load(name, kind)
		if err != nil { entry.err = err ; return }
		entry.face, entry.err = NewFace(sfntFont, size)
		if entry.err != nil {
			entry.err = errors.Wrapf(entry.err, "font %s.%s size %d", name, kind, size)
		}
	})
	return entry.face, entry.err
}

// Returns the number of (name, size, kind) entries requested so far.
func (self *Cache) Len() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.entries)
}
