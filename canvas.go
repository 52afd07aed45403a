package seedui

import "image"
import "image/draw"
import "sync"
import "sync/atomic"

import "github.com/pkg/errors"

// The shared drawing surface. Components draw on Image() while the
// caller holds the lock; scrollers take the lock themselves because
// they draw from their own goroutines. Show() pushes the current
// contents to the physical screen and must also be called with the
// lock held.
type Canvas interface {
	sync.Locker
	Image() draw.Image
	Show() error
}

var _ Canvas = (*ImageCanvas)(nil)

// An in-memory [Canvas] backed by an *image.RGBA. The show function
// receives the canvas image on each Show() call (it may be nil).
type ImageCanvas struct {
	mutex sync.Mutex
	image *image.RGBA
	show func(*image.RGBA) error
	shows atomic.Int64
}

func NewImageCanvas(width, height int, show func(*image.RGBA) error) *ImageCanvas {
	if width <= 0 || height <= 0 { panic("invalid canvas size") }
	return &ImageCanvas{
		image: image.NewRGBA(image.Rect(0, 0, width, height)),
		show: show,
	}
}

func (self *ImageCanvas) Lock()   { self.mutex.Lock() }
func (self *ImageCanvas) Unlock() { self.mutex.Unlock() }
func (self *ImageCanvas) TryLock() bool { return self.mutex.TryLock() }

func (self *ImageCanvas) Image() draw.Image { return self.image }

// Returns the backing image. Reading it while scrollers run requires
// holding the lock.
func (self *ImageCanvas) RGBA() *image.RGBA { return self.image }

func (self *ImageCanvas) Show() error {
	self.shows.Add(1)
	if self.show == nil { return nil }
	return errors.Wrap(self.show(self.image), "canvas show")
}

// Number of Show() calls so far.
func (self *ImageCanvas) ShowCount() int { return int(self.shows.Load()) }

// Returns a copy of the canvas contents, taking the lock.
func (self *ImageCanvas) Snapshot() *image.RGBA {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	snapshot := image.NewRGBA(self.image.Rect)
	copy(snapshot.Pix, self.image.Pix)
	return snapshot
}
