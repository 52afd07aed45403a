package metrics

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

import "github.com/seedsigner/seedui/font"

// Reference point from which a [Box] is measured.
type Anchor uint8

const (
	LeftBaseline Anchor = iota // "ls": x at the pen start, y at the baseline
	LeftTop                    // "lt": x at the pen start, y at the ascender line
)

// Integer pixel bounds of a run of text, relative to the [Anchor]
// used to measure it. With [LeftBaseline], Top is negative (pixels
// above the baseline) and Bottom is the number of pixels that the
// text goes below the baseline.
type Box struct {
	Left, Top, Right, Bottom int
}

func (self Box) Width() int { return self.Right - self.Left }
func (self Box) Height() int { return self.Bottom - self.Top }

// Measures text for a single font at a single size. Implementations
// must be safe for concurrent use.
type Provider interface {
	// Returns the ascent and descent of the font, as positive
	// pixel values.
	Metrics() (ascent, descent int)

	// Returns the bounding box of the given text. The right edge is
	// the larger of the pen advance and the rightmost ink.
	BBox(text string, anchor Anchor) Box

	// Returns the pixel width of the text (the width of the
	// [LeftBaseline] box).
	Width(text string) int
}

// Providers that apply complex script shaping when measuring can
// implement this interface to opt out of width corrections.
type ShapingAware interface {
	ShapingAware() bool
}

// Reports whether the given provider claims shaping-aware widths.
func IsShapingAware(provider Provider) bool {
	aware, ok := provider.(ShapingAware)
	return ok && aware.ShapingAware()
}

// A glyph positioned along a text run.
type Glyph struct {
	Index sfnt.GlyphIndex
	X fixed.Int26_6 // pen position relative to the run start
}

// Providers that can also be drawn. The glyph outlines use the
// same coordinates as the layout: y grows downwards and the pen
// starts at (0, 0) on the baseline.
type Outliner interface {
	Provider

	// Returns the positioned glyphs for the text and the total
	// pen advance.
	Layout(text string) ([]Glyph, fixed.Int26_6)

	// Returns the outline of the given glyph. The returned segments
	// are owned by the caller.
	Outline(index sfnt.GlyphIndex) (sfnt.Segments, error)
}

// Anything that can produce providers by font name, pixel size and
// kind. [Cache] is the real implementation.
type Source interface {
	Face(name string, size int, kind font.Kind) (Outliner, error)
}
