package seedui

import "image"
import "image/color"
import "strings"
import "time"

import "github.com/pkg/errors"

import "github.com/seedsigner/seedui/metrics"
import "github.com/seedsigner/seedui/reflow"

// Characters that make the last line of a multi-line block count its
// pixels below the baseline.
const descenders = "gjpqy"

// Input for [Display.NewTextArea]. Start from [Display.TextAreaConfig]
// to get the theme defaults: zero values are taken literally, except
// where noted.
type TextAreaConfig struct {
	Text string
	Width int  // 0 means up to the right edge of the canvas
	Height int // 0 means as tall as the text
	ScreenX, ScreenY int
	ScrollY int
	MinTextX int // text never starts left of this x

	BackgroundColor color.Color // nil means the theme background
	FontName string // "" means the theme body font
	FontSize int    // 0 means the theme body size
	FontColor color.Color // nil means the theme body color
	EdgePadding int
	Centered bool

	// Render at this multiple of the final size and scale down.
	// 1 (or 0) disables it. Ignored for fonts of size 20 or more.
	SupersamplingFactor int

	AutoLineBreak bool
	AllowOverflow bool

	// Single line that scrolls horizontally when it doesn't fit.
	// Can't be combined with AutoLineBreak.
	HorizontalScroll bool
	ScrollSpeed int // pixels per second
	ScrollBeginHold time.Duration
	ScrollEndHold time.Duration

	// Ignore the pixels below the baseline (like in "pqgy") when
	// computing the height. They are still drawn.
	HeightIgnoresBelowBaseline bool
}

// Returns the default text area configuration for the given text.
func (self *Display) TextAreaConfig(text string) TextAreaConfig {
	return TextAreaConfig{
		Text: text,
		BackgroundColor: self.Theme.BackgroundColor,
		FontName: self.Theme.BodyFontName,
		FontSize: self.Theme.BodyFontSize,
		FontColor: self.Theme.BodyFontColor,
		EdgePadding: self.Theme.EdgePadding,
		Centered: true,
		SupersamplingFactor: 2,
		AutoLineBreak: true,
		ScrollSpeed: 40,
		ScrollBeginHold: 2*time.Second,
		ScrollEndHold: time.Second,
	}
}

// The geometry computed for a [TextArea]. Positions are relative to
// the text area's screen position.
type TextLayout struct {
	Lines []reflow.Line
	TextWidth int // widest line

	// Pixels above and below the baseline, measured on the whole text.
	AboveBaseline int
	BelowBaseline int

	TotalHeight int // height of the text block
	Width int
	Height int
	OffsetY int // vertical centering offset
	TextY int   // baseline of the first line

	// Width of the window that shows a scrolling line.
	VisibleWidth int

	Centered bool
	Scrolling bool
	Overflowing bool // TotalHeight > Height
	SupersamplingFactor int
}

// A rect-delimited block of text. The layout and the bitmap are
// computed once, on creation; changing the text means creating a
// new text area.
type TextArea struct {
	display *Display
	config TextAreaConfig
	layout TextLayout
	bitmap *image.RGBA
	scrollY int
	scroller *Scroller
}

// Lays out and renders the text to an off-screen bitmap. Fails with
// [ErrConflictingLayout] for auto line breaks with horizontal scroll,
// with [reflow.ErrUnbreakableOverflow] when a single word can't fit,
// with [ErrFontMissing] for unknown fonts and, if the display policy
// is [OverflowFail], with [ErrSoftOverflow] when the text is taller
// than the requested height.
func (self *Display) NewTextArea(config TextAreaConfig) (*TextArea, error) {
	area, face, err := self.layoutTextArea(config)
	if err != nil { return nil, err }
	err = area.renderBitmap(face)
	if err != nil { return nil, err }

	config = area.config
	if area.layout.Scrolling {
		area.scroller = NewScroller(self.Canvas, self.Clock, ScrollerConfig{
			Bitmap: area.bitmap,
			ScreenX: config.ScreenX + config.MinTextX,
			ScreenY: config.ScreenY + area.layout.TextY - area.layout.AboveBaseline,
			VisibleWidth: area.layout.VisibleWidth,
			Speed: config.ScrollSpeed,
			BeginHold: config.ScrollBeginHold,
			EndHold: config.ScrollEndHold,
		})
		area.scroller.SetScrollY(area.scrollY)
	}
	return area, nil
}

// Returns the layout [Display.NewTextArea] would compute for the
// given configuration, without rendering anything.
func (self *Display) MeasureTextArea(config TextAreaConfig) (TextLayout, error) {
	area, _, err := self.layoutTextArea(config)
	if err != nil { return TextLayout{}, err }
	return area.layout, nil
}

func (self *Display) layoutTextArea(config TextAreaConfig) (*TextArea, metrics.Outliner, error) {
	if config.HorizontalScroll && config.AutoLineBreak {
		return nil, nil, errors.Wrap(ErrConflictingLayout, "text area: auto line break with horizontal scroll")
	}
	if config.HorizontalScroll && !config.AllowOverflow {
		config.AllowOverflow = true
		self.logf("text area: horizontal scroll forces text overflow")
	}
	if config.FontName == "" { config.FontName = self.Theme.BodyFontName }
	if config.FontSize == 0 { config.FontSize = self.Theme.BodyFontSize }
	if config.SupersamplingFactor <= 0 { config.SupersamplingFactor = 1 }
	if config.FontColor == nil { config.FontColor = self.Theme.BodyFontColor }
	if config.BackgroundColor == nil { config.BackgroundColor = self.Theme.BackgroundColor }

	canvasWidth := self.Width()
	if config.Width == 0 { config.Width = canvasWidth }
	if config.ScreenX + config.Width > canvasWidth {
		config.Width = canvasWidth - config.ScreenX
	}

	face, err := self.TextFace(config.FontName, config.FontSize)
	if err != nil { return nil, nil, err }

	area := &TextArea{ display: self, config: config, scrollY: config.ScrollY }
	err = area.computeLayout(face)
	if err != nil { return nil, nil, err }
	return area, face, nil
}

// Creates a single line text area that scrolls horizontally when it
// doesn't fit its width.
func (self *Display) NewScrollableTextLine(config TextAreaConfig) (*TextArea, error) {
	config.AutoLineBreak = false
	config.HorizontalScroll = true
	config.AllowOverflow = true
	return self.NewTextArea(config)
}

func (self *TextArea) widthFudge(face metrics.Provider) float64 {
	if metrics.IsShapingAware(face) { return 1 }
	if self.display.WidthFudge != 0 { return self.display.WidthFudge }
	return reflow.DefaultWidthFudge
}

func (self *TextArea) computeLayout(face metrics.Outliner) error {
	config := &self.config
	layout := &self.layout
	text := prepareText(config.Text)

	box := face.BBox(text, metrics.LeftBaseline)
	layout.AboveBaseline = -box.Top
	layout.BelowBaseline = box.Bottom
	layout.TextY = layout.AboveBaseline
	layout.Width = config.Width
	layout.Centered = config.Centered
	layout.Scrolling = config.HorizontalScroll

	visibleWidth := config.Width - max(config.EdgePadding, config.MinTextX) - config.EdgePadding
	layout.VisibleWidth = visibleWidth
	fudge := self.widthFudge(face)
	fullWidth := int(float64(box.Right)*fudge)
	fudgedVisible := int(float64(visibleWidth)*fudge)

	if config.HorizontalScroll || !config.AutoLineBreak {
		layout.Lines = []reflow.Line{ { Text: text, Width: fullWidth } }
		layout.TextWidth = fullWidth
		if fullWidth > fudgedVisible {
			layout.Centered = false // left aligned, then scrolled or clipped
		} else {
			layout.Scrolling = false
		}
	} else {
		opts := self.display.ReflowOptions(config.AllowOverflow)
		lines, err := reflow.Lines(text, config.Width - 2*config.EdgePadding, face, opts)
		if err != nil { return err }
		layout.Lines = lines
		for _, line := range lines {
			layout.TextWidth = max(layout.TextWidth, line.Width)
		}
	}

	// block height
	numLines := len(layout.Lines)
	spacing := self.display.Theme.BodyLineSpacing
	if numLines == 1 {
		layout.TotalHeight = layout.AboveBaseline
		if !config.HeightIgnoresBelowBaseline {
			layout.TotalHeight += layout.BelowBaseline
		}
	} else {
		layout.TotalHeight = layout.AboveBaseline*numLines + spacing*(numLines - 1)
		lastLine := layout.Lines[numLines - 1].Text
		if !config.HeightIgnoresBelowBaseline && strings.ContainsAny(lastLine, descenders) {
			layout.TotalHeight += layout.BelowBaseline
		}
	}

	if config.Height == 0 {
		layout.Height = layout.TotalHeight
	} else {
		layout.Height = config.Height
		if layout.TotalHeight > layout.Height {
			layout.Overflowing = true
			if !config.AllowOverflow {
				err := self.display.softOverflow(layout.TotalHeight, layout.Height)
				if err != nil { return err }
			}
		} else {
			layout.OffsetY = (layout.Height - layout.TotalHeight)/2
			layout.TextY += layout.OffsetY
		}
	}

	layout.SupersamplingFactor = config.SupersamplingFactor
	if config.FontSize >= supersamplingMaxFontSize && layout.SupersamplingFactor != 1 {
		layout.SupersamplingFactor = 1
		self.display.logf("supersampling disabled for large font size: %d", config.FontSize)
	}
	return nil
}

// Renders all lines to the off-screen bitmap.
func (self *TextArea) renderBitmap(face metrics.Outliner) error {
	config, layout := &self.config, &self.layout
	factor := layout.SupersamplingFactor

	renderHeight := layout.TotalHeight
	if config.HeightIgnoresBelowBaseline {
		renderHeight += layout.BelowBaseline // drawn, even if not counted
	}
	padding := 0
	if factor > 1 { padding = resamplePadding }

	imageWidth := config.Width - config.EdgePadding
	if layout.Scrolling { imageWidth = layout.TextWidth }
	imageWidth = max(imageWidth, 0)

	renderFace := face
	if factor > 1 {
		var err error
		renderFace, err = self.display.TextFace(config.FontName, config.FontSize*factor)
		if err != nil { return err }
	}

	img := image.NewRGBA(image.Rect(0, 0, imageWidth*factor, (renderHeight + 2*padding)*factor))
	FillRect(img, img.Bounds(), config.BackgroundColor)

	drawer := self.display.getDrawer()
	defer self.display.putDrawer(drawer)

	anchor := AnchorLeftBaseline
	if layout.Centered { anchor = AnchorMiddleBaseline }
	textX := max(config.EdgePadding, config.MinTextX)
	curY := (padding + layout.AboveBaseline)*factor
	for _, line := range layout.Lines {
		if layout.Centered {
			textX = config.Width/2
			if textX - line.Width/2 < config.MinTextX {
				textX = config.MinTextX + line.Width/2 // nudge right
			}
		} else if layout.Scrolling {
			textX = 0
		}
		if line.Text != "" {
			err := drawer.draw(img, renderFace, visualOrder(line.Text), textX*factor, curY, anchor, config.FontColor)
			if err != nil { return errors.Wrapf(err, "rendering %q", line.Text) }
		}
		curY += (layout.AboveBaseline + self.display.Theme.BodyLineSpacing)*factor
	}

	if factor > 1 {
		scaled := downsample(img, imageWidth, renderHeight + 2*padding)
		img = cropRGBA(scaled, image.Rect(0, padding, imageWidth, padding + renderHeight))
	}
	self.bitmap = img
	return nil
}

// Copies the given area of src to a new image with its origin at (0, 0).
func cropRGBA(src *image.RGBA, area image.Rectangle) *image.RGBA {
	area = area.Intersect(src.Bounds())
	dst := image.NewRGBA(image.Rect(0, 0, area.Dx(), area.Dy()))
	Paste(dst, src.SubImage(area), image.Point{})
	return dst
}

// Pastes the text on the canvas. Scrolling text is cropped to its
// visible width; the scroller animates it from there. The caller
// must hold the canvas lock. The error is always nil; it's there so
// all components render through the same signature.
func (self *TextArea) Render() error {
	x := self.config.ScreenX
	var img image.Image = self.bitmap
	if self.layout.Scrolling {
		x += self.config.MinTextX
		bounds := self.bitmap.Bounds()
		img = self.bitmap.SubImage(image.Rect(0, 0, min(self.layout.VisibleWidth, bounds.Dx()), bounds.Dy()))
	}
	y := self.config.ScreenY + self.layout.TextY - self.layout.AboveBaseline - self.scrollY
	Paste(self.display.Canvas.Image(), img, image.Pt(x, y))
	return nil
}

// Sets the vertical scroll offset, used by lists that scroll their
// content. Also applies to the scroller, if any.
func (self *TextArea) SetScrollY(scrollY int) {
	self.scrollY = scrollY
	if self.scroller != nil { self.scroller.SetScrollY(scrollY) }
}

// Whether the text is wider than its window and has a scroller.
func (self *TextArea) NeedsScroll() bool { return self.scroller != nil }

// The scroller animating this text area, or nil.
func (self *TextArea) Scroller() *Scroller { return self.scroller }

func (self *TextArea) Layout() TextLayout { return self.layout }
func (self *TextArea) Config() TextAreaConfig { return self.config }

// The rendered text, before cropping for the visible width.
func (self *TextArea) Bitmap() *image.RGBA { return self.bitmap }

// Closes the scroller, if any.
func (self *TextArea) Close() {
	if self.scroller != nil { self.scroller.Close() }
}
