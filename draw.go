package seedui

import "image"
import "image/color"
import "image/draw"

import xdraw "golang.org/x/image/draw"

import "github.com/seedsigner/seedui/mask"

// Copies src onto dst with the top-left corner of src at the given
// point. Pixels outside dst are clipped.
func Paste(dst draw.Image, src image.Image, at image.Point) {
	bounds := src.Bounds()
	xdraw.Draw(dst, image.Rectangle{ Min: at, Max: at.Add(bounds.Size()) }, src, bounds.Min, xdraw.Src)
}

// Fills the area with a solid color.
func FillRect(dst draw.Image, rect image.Rectangle, fillColor color.Color) {
	xdraw.Draw(dst, rect, image.NewUniform(fillColor), image.Point{}, xdraw.Src)
}

// Draws an antialiased rectangle with rounded corners. If outline is
// not nil, the outer band of outlineWidth pixels is drawn with that
// color and the fill goes on the inset rect, with a radius reduced
// by the same width.
func (self *Display) DrawRoundedRectangle(dst draw.Image, rect image.Rectangle, radius int, fill, outline color.Color, outlineWidth int) error {
	drawer := self.getDrawer()
	defer self.putDrawer(drawer)

	if outline == nil || outlineWidth <= 0 {
		return drawer.fill(dst, mask.RoundedRect(rect, radius), fill)
	}

	err := drawer.fill(dst, mask.RoundedRect(rect, radius), outline)
	if err != nil { return err }
	inner := rect.Inset(outlineWidth)
	if inner.Empty() { return nil }
	return drawer.fill(dst, mask.RoundedRect(inner, max(radius - outlineWidth, 0)), fill)
}
