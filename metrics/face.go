package metrics

import "sync"
import "strconv"

import "github.com/pkg/errors"
import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Outliner = (*Face)(nil)

// An sfnt font at a fixed pixel size. Faces are immutable and safe
// for concurrent use; the sfnt buffer they need internally is
// guarded by a mutex.
type Face struct {
	font *sfnt.Font
	size fixed.Int26_6
	ascent int
	descent int
	lineHeight int

	buffer sfnt.Buffer
	mutex sync.Mutex
}

// Creates a face for the given font at the given size in pixels.
func NewFace(sfntFont *sfnt.Font, size int) (*Face, error) {
	if sfntFont == nil { panic("nil font") }
	if size <= 0 { return nil, errors.Errorf("invalid font size %d", size) }

	face := &Face{ font: sfntFont, size: fixed.I(size) }
	metrics, err := sfntFont.Metrics(&face.buffer, face.size, font.HintingNone)
	if err != nil { return nil, errors.Wrap(err, "reading font metrics") }
	face.ascent  = metrics.Ascent.Ceil()
	face.descent = metrics.Descent.Ceil()
	face.lineHeight = metrics.Height.Ceil()
	return face, nil
}

func (self *Face) Font() *sfnt.Font { return self.font }
func (self *Face) Size() int { return self.size.Floor() }

// Satisfies the [Provider] interface.
func (self *Face) Metrics() (ascent, descent int) {
	return self.ascent, self.descent
}

// Returns the recommended distance between consecutive baselines.
func (self *Face) LineHeight() int { return self.lineHeight }

// Satisfies the [Outliner] interface.
func (self *Face) Layout(text string) ([]Glyph, fixed.Int26_6) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.layout(text)
}

// Satisfies the [Outliner] interface.
func (self *Face) Outline(index sfnt.GlyphIndex) (sfnt.Segments, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	segments, err := self.font.LoadGlyph(&self.buffer, index, self.size, nil)
	if err != nil { return nil, err }

	// segments point into the shared buffer
	outline := make(sfnt.Segments, len(segments))
	copy(outline, segments)
	return outline, nil
}

// Satisfies the [Provider] interface.
func (self *Face) BBox(text string, anchor Anchor) Box {
	ink, hasInk, advance := self.inkBounds(text)
	var box Box
	box.Right = advance.Ceil()
	if hasInk {
		// vertical edges round to the nearest pixel: round glyphs
		// overshoot the baseline and cap height by a fraction of a
		// pixel, which must not add a row to single line heights
		box.Left   = ink.Min.X.Floor()
		box.Top    = ink.Min.Y.Round()
		box.Bottom = ink.Max.Y.Round()
		if right := ink.Max.X.Ceil(); right > box.Right { box.Right = right }
	}
	if anchor == LeftTop {
		box.Top    += self.ascent
		box.Bottom += self.ascent
	}
	return box
}

// Satisfies the [Provider] interface.
func (self *Face) Width(text string) int {
	return self.BBox(text, LeftBaseline).Width()
}

func (self *Face) inkBounds(text string) (fixed.Rectangle26_6, bool, fixed.Int26_6) {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	glyphs, advance := self.layout(text)
	var ink fixed.Rectangle26_6
	hasInk := false
	for _, glyph := range glyphs {
		bounds, _, err := self.font.GlyphBounds(&self.buffer, glyph.Index, self.size, font.HintingNone)
		if err != nil { panic(glyphErrorMsg("GlyphBounds", glyph.Index, err)) }
		if bounds.Empty() { continue } // spaces
		bounds = bounds.Add(fixed.Point26_6{ X: glyph.X })
		if !hasInk {
			ink, hasInk = bounds, true
		} else {
			ink = ink.Union(bounds)
		}
	}
	return ink, hasInk, advance
}

func (self *Face) layout(text string) ([]Glyph, fixed.Int26_6) {
	glyphs := make([]Glyph, 0, len(text))
	var x fixed.Int26_6
	var prev sfnt.GlyphIndex
	for i, codePoint := range text {
		index := self.glyphIndex(codePoint)
		if i > 0 { x += self.kern(prev, index) }
		glyphs = append(glyphs, Glyph{ Index: index, X: x })
		x += self.advance(index)
		prev = index
	}
	return glyphs, x
}

// Missing runes map to the notdef glyph (index 0).
func (self *Face) glyphIndex(codePoint rune) sfnt.GlyphIndex {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil { panic("font.GlyphIndex(" + strconv.QuoteRune(codePoint) + ") error: " + err.Error()) }
	return index
}

func (self *Face) advance(index sfnt.GlyphIndex) fixed.Int26_6 {
	advance, err := self.font.GlyphAdvance(&self.buffer, index, self.size, font.HintingNone)
	if err == nil { return advance }
	panic(glyphErrorMsg("GlyphAdvance", index, err))
}

func (self *Face) kern(prev, curr sfnt.GlyphIndex) fixed.Int26_6 {
	kern, err := self.font.Kern(&self.buffer, prev, curr, self.size, font.HintingNone)
	if err == nil { return kern }
	if err == sfnt.ErrNotFound { return 0 }

	msg := "font.Kern failed for glyphs with indices "
	msg += strconv.Itoa(int(prev)) + " and "
	msg += strconv.Itoa(int(curr)) + ": " + err.Error()
	panic(msg)
}

func glyphErrorMsg(method string, index sfnt.GlyphIndex, err error) string {
	return "font." + method + "(index = " + strconv.Itoa(int(index)) + ") error: " + err.Error()
}
