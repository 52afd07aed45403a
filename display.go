package seedui

import "log"
import "os"
import "sync"

import "github.com/pkg/errors"

import "github.com/seedsigner/seedui/cache"
import "github.com/seedsigner/seedui/font"
import "github.com/seedsigner/seedui/metrics"
import "github.com/seedsigner/seedui/reflow"

// How a text block taller than its target rect is handled.
type OverflowPolicy uint8

const (
	OverflowWarn OverflowPolicy = iota // log and render past the bottom edge
	OverflowFail                       // fail with ErrSoftOverflow
)

// Size of the glyph mask cache shared by all components of a display.
const DefaultGlyphCacheSize = 4*1024*1024

// The environment that components are created for: the canvas, the
// theme and the fonts. Fields can be adjusted after [NewDisplay] and
// before creating components, but not while components render.
type Display struct {
	Canvas Canvas
	Theme Theme
	Fonts metrics.Source
	Logger *log.Logger
	OverflowPolicy OverflowPolicy
	Clock Clock

	// Passed to reflow for measurers that are not shaping-aware.
	// Zero means reflow.DefaultWidthFudge.
	WidthFudge float64

	glyphs *cache.DefaultCache
	drawers sync.Pool
	threads *Threads
}

// Creates a display. Panics if canvas or fonts are nil.
func NewDisplay(canvas Canvas, fonts metrics.Source, theme Theme) *Display {
	if canvas == nil { panic("nil canvas") }
	if fonts == nil { panic("nil font source") }
	logger := log.New(os.Stderr, "seedui: ", log.LstdFlags)
	display := &Display{
		Canvas: canvas,
		Theme: theme,
		Fonts: fonts,
		Logger: logger,
		Clock: SystemClock{},
		glyphs: cache.NewDefaultCache(DefaultGlyphCacheSize),
	}
	display.drawers.New = func() any {
		return &textDrawer{ handler: display.glyphs.NewHandler() }
	}
	display.threads = NewThreads(display.logf)
	return display
}

// Canvas width in pixels.
func (self *Display) Width() int { return self.Canvas.Image().Bounds().Dx() }

// Canvas height in pixels.
func (self *Display) Height() int { return self.Canvas.Image().Bounds().Dy() }

// The goroutine group where scrollers are registered.
func (self *Display) Threads() *Threads { return self.threads }

// Returns the glyph mask cache.
func (self *Display) GlyphCache() *cache.DefaultCache { return self.glyphs }

// Returns the face for a text font of the theme (TrueType files).
func (self *Display) TextFace(name string, size int) (metrics.Outliner, error) {
	face, err := self.Fonts.Face(name, size, font.TTF)
	return face, errors.WithStack(err)
}

// Returns the face of one of the icon fonts (OpenType files).
func (self *Display) IconFace(name string, size int) (metrics.Outliner, error) {
	face, err := self.Fonts.Face(name, size, font.OTF)
	return face, errors.WithStack(err)
}

// Reflow options for the display settings.
func (self *Display) ReflowOptions(allowOverflow bool) reflow.Options {
	return reflow.Options{ AllowOverflow: allowOverflow, WidthFudge: self.WidthFudge }
}

// Breaks text into lines that fit the given width with the given
// theme font.
func (self *Display) ReflowText(text string, width int, fontName string, fontSize int, allowOverflow bool) ([]reflow.Line, error) {
	face, err := self.TextFace(fontName, fontSize)
	if err != nil { return nil, err }
	return reflow.Lines(prepareText(text), width, face, self.ReflowOptions(allowOverflow))
}

// Splits text into pages that fit the given rect with the given theme
// font, using the theme's body line spacing.
func (self *Display) ReflowTextIntoPages(text string, width, height int, fontName string, fontSize int, allowOverflow bool) ([]string, error) {
	face, err := self.TextFace(fontName, fontSize)
	if err != nil { return nil, err }
	spacing := self.Theme.BodyLineSpacing
	return reflow.Paginate(prepareText(text), width, height, face, spacing, self.ReflowOptions(allowOverflow))
}

// Returns the position to draw the given text with [AnchorLeftAscender]
// so that its inked pixels are vertically centered in the given box
// and, if centered is true, horizontally centered too. Non-centered
// text starts at the theme's component padding.
func (self *Display) CalcTextCentering(face metrics.Provider, text string, centered bool, totalWidth, totalHeight, startX, startY int) (int, int) {
	box := face.BBox(text, metrics.LeftTop)
	ascent, _ := face.Metrics()
	offsetX, offsetY := box.Left, box.Top

	textX := self.Theme.ComponentPadding
	if centered {
		textX = (totalWidth - (box.Right - offsetX))/2 - offsetX
	}
	textY := (totalHeight - (ascent - offsetY))/2 - offsetY
	return startX + textX, startY + textY
}

func (self *Display) logf(format string, args ...any) {
	if self.Logger == nil { return }
	self.Logger.Printf(format, args...)
}

// Applies the overflow policy to a text block of the given height
// that doesn't fit the target height.
func (self *Display) softOverflow(textHeight, height int) error {
	if self.OverflowPolicy == OverflowFail {
		return errors.Wrapf(ErrSoftOverflow, "text height %d, rect height %d", textHeight, height)
	}
	self.logf("text cannot fit in target rect with this font/size (text height %d, rect height %d)", textHeight, height)
	return nil
}

func (self *Display) getDrawer() *textDrawer {
	return self.drawers.Get().(*textDrawer)
}

func (self *Display) putDrawer(drawer *textDrawer) {
	self.drawers.Put(drawer)
}
