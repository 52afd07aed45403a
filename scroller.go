package seedui

import "context"
import "image"
import "sync"
import "sync/atomic"
import "time"

import "github.com/pkg/errors"
import xdraw "golang.org/x/image/draw"

// Default time between frames while the text moves (50 fps).
const DefaultFrameInterval = 20*time.Millisecond

// Poll interval while a scroller is stopped.
const inactivePollInterval = 100*time.Millisecond

type ScrollerConfig struct {
	// The full rendered line. Only VisibleWidth pixels of it are
	// shown at a time.
	Bitmap image.Image

	// Top-left corner of the visible window on the canvas.
	ScreenX, ScreenY int
	VisibleWidth int

	Speed int // pixels per second
	BeginHold time.Duration // pause with the text left-aligned
	EndHold time.Duration // pause with the text right-aligned
	FrameInterval time.Duration // zero means DefaultFrameInterval
}

// Animates a single line of text that is wider than its visible
// window: it holds at the left edge, scrolls until the right edge
// of the text is visible, holds again and scrolls back.
//
// Each frame the scroller takes the canvas lock, pastes its window
// and calls Show(). [Scroller.Stop] can be called from any goroutine;
// the active flag is checked again after taking the lock, so no frame
// is drawn once Stop() has returned and the lock has been acquired by
// the caller.
type Scroller struct {
	canvas Canvas
	clock Clock
	config ScrollerConfig
	maxPosition int

	active atomic.Bool
	scrollY atomic.Int64

	mutex sync.Mutex // guards the fields below
	position int
	direction int
	lastMove time.Time // zero after an edge hold

	done chan struct{}
	closeOnce sync.Once
}

// Creates a scroller. It starts active, but nothing is drawn until
// [Scroller.Run] is called.
func NewScroller(canvas Canvas, clock Clock, config ScrollerConfig) *Scroller {
	if canvas == nil { panic("nil canvas") }
	if config.Bitmap == nil { panic("nil scroller bitmap") }
	if clock == nil { clock = SystemClock{} }
	if config.FrameInterval <= 0 { config.FrameInterval = DefaultFrameInterval }
	scroller := &Scroller{
		canvas: canvas,
		clock: clock,
		config: config,
		maxPosition: max(config.Bitmap.Bounds().Dx() - config.VisibleWidth, 0),
		direction: 1,
		done: make(chan struct{}),
	}
	scroller.active.Store(true)
	return scroller
}

// Resets the text to its left edge and (re)activates the animation.
func (self *Scroller) Start() {
	self.mutex.Lock()
	self.position = 0
	self.direction = 1
	self.lastMove = time.Time{}
	self.mutex.Unlock()
	self.active.Store(true)
}

// Pauses the animation. Idempotent.
func (self *Scroller) Stop() { self.active.Store(false) }

func (self *Scroller) IsActive() bool { return self.active.Load() }

// Makes [Scroller.Run] return. The scroller can't be run again.
func (self *Scroller) Close() {
	self.Stop()
	self.closeOnce.Do(func() { close(self.done) })
}

// Current horizontal offset into the bitmap.
func (self *Scroller) Position() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.position
}

// Largest possible position.
func (self *Scroller) MaxPosition() int { return self.maxPosition }

// Vertical displacement applied to the paste position, for lists
// that scroll vertically.
func (self *Scroller) SetScrollY(scrollY int) { self.scrollY.Store(int64(scrollY)) }

// Animates until the context is canceled or the scroller is closed,
// returning nil in both cases. On any other error the scroller stops
// itself and returns it.
func (self *Scroller) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-self.done: cancel()
		case <-ctx.Done():
		}
	}()

	for {
		if ctx.Err() != nil { return nil }

		err := self.frame(ctx)
		if err != nil {
			if ctx.Err() != nil { return nil }
			self.Stop()
			return err
		}
	}
}

// Draws the current window, waits as required by the position and
// advances the animation.
func (self *Scroller) frame(ctx context.Context) error {
	if !self.active.Load() {
		return self.clock.Sleep(ctx, inactivePollInterval)
	}

	painted, err := self.paint()
	if err != nil || !painted { return err }

	self.mutex.Lock()
	position := self.position
	self.mutex.Unlock()

	switch {
	case position == 0:
		err = self.clock.Sleep(ctx, self.config.BeginHold)
		if err != nil { return err }
		if self.maxPosition == 0 { return nil }
		self.mutex.Lock()
		self.lastMove = time.Time{}
		self.direction = 1
		self.mutex.Unlock()
	case position == self.maxPosition:
		err = self.clock.Sleep(ctx, self.config.EndHold)
		if err != nil { return err }
		self.mutex.Lock()
		self.lastMove = time.Time{}
		self.direction = -1
		self.mutex.Unlock()
	default:
		err = self.clock.Sleep(ctx, self.config.FrameInterval)
		if err != nil { return err }
	}

	self.advance(self.clock.Now())
	return nil
}

// Pastes the visible window on the canvas and shows it. Returns false
// if the scroller was stopped before the lock could be acquired.
func (self *Scroller) paint() (bool, error) {
	self.canvas.Lock()
	defer self.canvas.Unlock()
	if !self.active.Load() { return false, nil }

	bounds := self.config.Bitmap.Bounds()
	position := self.Position()
	window := image.Rect(position, 0, position + self.config.VisibleWidth, bounds.Dy())
	window = window.Add(bounds.Min)
	if !window.In(bounds) {
		return false, errors.Wrapf(ErrScrollState, "window %v, bitmap %v", window, bounds)
	}

	at := image.Pt(self.config.ScreenX, self.config.ScreenY - int(self.scrollY.Load()))
	target := image.Rectangle{ Min: at, Max: at.Add(window.Size()) }
	xdraw.Draw(self.canvas.Image(), target, self.config.Bitmap, window.Min, xdraw.Src)
	return true, self.canvas.Show()
}

func (self *Scroller) advance(now time.Time) {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	if self.lastMove.IsZero() {
		self.position = min(max(self.position + self.direction, 0), self.maxPosition) // first move off an edge
		self.lastMove = now
		return
	}

	elapsed := now.Sub(self.lastMove)
	pixels := int64(self.config.Speed)*int64(elapsed)/int64(time.Second)
	if pixels == 0 { return } // accumulate more time

	// only the time spent on whole pixels is consumed, the rest
	// carries over to the next frame
	self.position = min(max(self.position + int(pixels)*self.direction, 0), self.maxPosition)
	self.lastMove = self.lastMove.Add(time.Duration(pixels*int64(time.Second)/int64(self.config.Speed)))
}
