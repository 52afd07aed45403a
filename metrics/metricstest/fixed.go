// Package metricstest provides a deterministic metrics provider for
// tests. Every rune is a solid box with the same advance, so widths
// and heights can be computed by hand.
package metricstest

import "strings"
import "unicode"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/seedsigner/seedui/font"
import "github.com/seedsigner/seedui/metrics"

var _ metrics.Outliner = Fixed{}
var _ metrics.ShapingAware = Fixed{}

// Runes that reach below the baseline.
const Descenders = "gjpqy"

// A provider where every rune advances the pen by Advance pixels.
// Non-space runes are drawn as boxes Advance - 1 pixels wide that
// go from the ascent line down to the baseline, or down to Descent
// for the runes in [Descenders].
type Fixed struct {
	Advance int
	Ascent int
	Descent int
}

// Returns the provider that [Source] creates for the given size:
// advance size/2, ascent size and descent size/4 (at least 1).
func ForSize(size int) Fixed {
	descent := size/4
	if descent < 1 { descent = 1 }
	advance := size/2
	if advance < 1 { advance = 1 }
	return Fixed{ Advance: advance, Ascent: size, Descent: descent }
}

// Widths are exact, no corrections are needed.
func (self Fixed) ShapingAware() bool { return true }

func (self Fixed) Metrics() (ascent, descent int) {
	return self.Ascent, self.Descent
}

func (self Fixed) Width(text string) int {
	return self.BBox(text, metrics.LeftBaseline).Width()
}

func (self Fixed) BBox(text string, anchor metrics.Anchor) metrics.Box {
	var box metrics.Box
	box.Right = self.Advance*len([]rune(text))
	if strings.TrimSpace(text) != "" {
		box.Top = -self.Ascent
		if strings.ContainsAny(text, Descenders) { box.Bottom = self.Descent }
	}
	if anchor == metrics.LeftTop {
		box.Top    += self.Ascent
		box.Bottom += self.Ascent
	}
	return box
}

// Glyph indices are the runes themselves, truncated to 16 bits.
func (self Fixed) Layout(text string) ([]metrics.Glyph, fixed.Int26_6) {
	glyphs := make([]metrics.Glyph, 0, len(text))
	var x fixed.Int26_6
	for _, codePoint := range text {
		glyphs = append(glyphs, metrics.Glyph{ Index: sfnt.GlyphIndex(codePoint), X: x })
		x += fixed.I(self.Advance)
	}
	return glyphs, x
}

func (self Fixed) Outline(index sfnt.GlyphIndex) (sfnt.Segments, error) {
	codePoint := rune(index)
	if unicode.IsSpace(codePoint) || self.Advance <= 1 { return nil, nil }
	bottom := 0
	if strings.ContainsRune(Descenders, codePoint) { bottom = self.Descent }

	minX, maxX := fixed.I(0), fixed.I(self.Advance - 1)
	minY, maxY := fixed.I(-self.Ascent), fixed.I(bottom)
	return sfnt.Segments{
		segment(sfnt.SegmentOpMoveTo, minX, minY),
		segment(sfnt.SegmentOpLineTo, maxX, minY),
		segment(sfnt.SegmentOpLineTo, maxX, maxY),
		segment(sfnt.SegmentOpLineTo, minX, maxY),
		segment(sfnt.SegmentOpLineTo, minX, minY),
	}, nil
}

func segment(op sfnt.SegmentOp, x, y fixed.Int26_6) sfnt.Segment {
	return sfnt.Segment{ Op: op, Args: [3]fixed.Point26_6{ { X: x, Y: y } } }
}

// A [metrics.Source] handing out [Fixed] providers. Names listed in
// Missing fail with [font.ErrMissing].
type Source struct {
	Missing []string
}

func (self Source) Face(name string, size int, kind font.Kind) (metrics.Outliner, error) {
	for _, missing := range self.Missing {
		if missing == name { return nil, font.ErrMissing }
	}
	return ForSize(size), nil
}
