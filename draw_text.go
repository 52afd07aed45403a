package seedui

import "image"
import "image/color"
import "image/draw"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import xdraw "golang.org/x/image/draw"
import "golang.org/x/text/unicode/bidi"
import "golang.org/x/text/unicode/norm"

import "github.com/seedsigner/seedui/cache"
import "github.com/seedsigner/seedui/mask"
import "github.com/seedsigner/seedui/metrics"

// Reference point for [Display.DrawText].
type TextAnchor uint8

const (
	AnchorLeftBaseline TextAnchor = iota // x at the pen start, y at the baseline
	AnchorMiddleBaseline // x at the middle of the pen advance, y at the baseline
	AnchorLeftAscender // x at the pen start, y at the ascender line
)

// Draws a single line of text on the target. Text is normalized to
// NFC and right-to-left runs are put in visual order before drawing.
//
// The face must be comparable (as all the faces in this module are),
// as it's used to key the glyph mask cache. Glyphs that can't be
// outlined or rasterized are reported as errors, after drawing any
// glyphs before them.
func (self *Display) DrawText(target draw.Image, face metrics.Outliner, text string, x, y int, anchor TextAnchor, textColor color.Color) error {
	text = visualOrder(prepareText(text))
	if text == "" { return nil }
	drawer := self.getDrawer()
	defer self.putDrawer(drawer)
	return drawer.draw(target, face, text, x, y, anchor, textColor)
}

// Normalization applied to all text before measuring.
func prepareText(text string) string {
	return norm.NFC.String(text)
}

// Reorders right-to-left runs for display. Text without any strong
// right-to-left characters is returned as is.
func visualOrder(text string) string {
	if !hasRightToLeft(text) { return text }

	var paragraph bidi.Paragraph
	_, err := paragraph.SetString(text)
	if err != nil { return text }
	ordering, err := paragraph.Order()
	if err != nil { return text }

	visual := make([]byte, 0, len(text))
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			visual = append(visual, bidi.ReverseString(run.String())...)
		} else {
			visual = append(visual, run.String()...)
		}
	}
	return string(visual)
}

func hasRightToLeft(text string) bool {
	for _, codePoint := range text {
		props, _ := bidi.LookupRune(codePoint)
		switch props.Class() {
		case bidi.R, bidi.AL: return true
		}
	}
	return false
}

// Per goroutine drawing state. Cache handlers and rasterizers can't
// be shared, so the display keeps a pool of these.
type textDrawer struct {
	handler *cache.DefaultCacheHandler
	rasterizer mask.DefaultRasterizer
	uniform image.Uniform
}

func (self *textDrawer) draw(target draw.Image, face metrics.Outliner, text string, x, y int, anchor TextAnchor, textColor color.Color) error {
	glyphs, advance := face.Layout(text)
	penX := fixed.I(x)
	switch anchor {
	case AnchorLeftBaseline:
		// nothing to adjust
	case AnchorMiddleBaseline:
		penX -= advance/2
	case AnchorLeftAscender:
		ascent, _ := face.Metrics()
		y += ascent
	default:
		panic("unexpected text anchor")
	}

	self.handler.NotifyFaceChange(face)
	self.handler.NotifyRasterizerChange(&self.rasterizer)
	self.uniform.C = textColor
	for _, glyph := range glyphs {
		dotX := penX + glyph.X
		self.handler.NotifyFractChange(dotX)
		glyphMask, err := self.loadMask(face, glyph.Index)
		if err != nil { return err }
		if glyphMask == nil { continue }
		rect := glyphMask.Rect.Add(image.Pt(dotX.Floor(), y))
		xdraw.DrawMask(target, rect, &self.uniform, image.Point{}, glyphMask, glyphMask.Rect.Min, xdraw.Over)
	}
	return nil
}

func (self *textDrawer) loadMask(face metrics.Outliner, index sfnt.GlyphIndex) (cache.GlyphMask, error) {
	glyphMask, found := self.handler.GetMask(index)
	if found { return glyphMask, nil }

	outline, err := face.Outline(index)
	if err != nil { return nil, errors.Wrapf(err, "outline for glyph %d", index) }
	origin := fixed.Point26_6{ X: cache.FractOffset(self.handler.Fract()) }
	glyphMask, err = mask.Rasterize(outline, &self.rasterizer, origin)
	if err != nil { return nil, errors.Wrapf(err, "rasterizing glyph %d", index) }
	self.handler.PassMask(index, glyphMask)
	return glyphMask, nil
}

// Fills the outline on the target with the given color. The outline
// is in target coordinates.
func (self *textDrawer) fill(target draw.Image, outline sfnt.Segments, fillColor color.Color) error {
	alpha, err := mask.Rasterize(outline, &self.rasterizer, fixed.Point26_6{})
	if err != nil { return errors.Wrap(err, "rasterizing shape") }
	if alpha == nil { return nil }
	self.uniform.C = fillColor
	xdraw.DrawMask(target, alpha.Rect, &self.uniform, image.Point{}, alpha, alpha.Rect.Min, xdraw.Over)
	return nil
}
