package seedui

import "bytes"
import "context"
import "log"
import "sync"
import "testing"
import "time"

import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/gomonobold"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/seedsigner/seedui/font"
import "github.com/seedsigner/seedui/metrics"
import "github.com/seedsigner/seedui/metrics/metricstest"

// Log output shared with scroller goroutines.
type syncBuffer struct {
	mutex sync.Mutex
	buffer bytes.Buffer
}

func (self *syncBuffer) Write(data []byte) (int, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.buffer.Write(data)
}

func (self *syncBuffer) String() string {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.buffer.String()
}

// A clock where sleeping advances the time instantly.
type fakeClock struct {
	mutex sync.Mutex
	now time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{ now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
}

func (self *fakeClock) Now() time.Time {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.now
}

func (self *fakeClock) Sleep(ctx context.Context, duration time.Duration) error {
	if err := ctx.Err(); err != nil { return err }
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.now = self.now.Add(duration)
	self.sleeps = append(self.sleeps, duration)
	return nil
}

func (self *fakeClock) lastSleep() time.Duration {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if len(self.sleeps) == 0 { return 0 }
	return self.sleeps[len(self.sleeps) - 1]
}

// Display with fixed advance fonts: at size s every rune advances
// s/2 pixels, rises s pixels and descends s/4 ("gjpqy" only).
func newTestDisplay(t *testing.T, width, height int) (*Display, *ImageCanvas, *syncBuffer) {
	return newTestDisplayWith(t, width, height, metricstest.Source{})
}

func newTestDisplayWith(t *testing.T, width, height int, fonts metrics.Source) (*Display, *ImageCanvas, *syncBuffer) {
	t.Helper()
	canvas := NewImageCanvas(width, height, nil)
	display := NewDisplay(canvas, fonts, NewTheme("default"))
	logs := &syncBuffer{}
	display.Logger = log.New(logs, "", 0)
	display.Clock = newFakeClock()
	return display, canvas, logs
}

// Display with the Go fonts registered under the theme font names.
func newGoFontDisplay(t *testing.T, width, height int) (*Display, *ImageCanvas, *syncBuffer) {
	t.Helper()
	theme := NewTheme("default")
	library := font.NewLibrary()
	register := func(name string, kind font.Kind, data []byte) {
		err := library.Register(name, kind, data)
		if err != nil { t.Fatalf("register %s: %v", name, err) }
	}
	register(theme.BodyFontName, font.TTF, goregular.TTF)
	register(theme.ButtonFontName, font.TTF, gobold.TTF)
	register(theme.FixedWidthFontName, font.TTF, gomono.TTF)
	register(theme.FixedWidthEmphasisFontName, font.TTF, gomonobold.TTF)
	register(theme.IconFontNameFontAwesome, font.OTF, goregular.TTF)
	register(theme.IconFontNameSeedSigner, font.OTF, goregular.TTF)
	return newTestDisplayWith(t, width, height, metrics.NewCache(library))
}
