package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The DefaultRasterizer is a wrapper to make [golang.org/x/image/vector.Rasterizer]
// conform to the [Rasterizer] interface.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
	normOffset fixed.Point26_6 // offset to normalize points to the positive
	                           // quadrant starting from the fractional coords

	// The x/image/vector rasterizer expects coords in the positive
	// quadrant, which is why we need the offsets here.
}

// Satisfies the [Rasterizer] interface. The signature for the
// default rasterizer is always zero.
func (self *DefaultRasterizer) Signature() uint64 { return 0 }

func (self *DefaultRasterizer) MoveTo(point fixed.Point26_6) {
	x, y := self.toFloat32s(point)
	self.rasterizer.MoveTo(x, y)
}

func (self *DefaultRasterizer) LineTo(point fixed.Point26_6) {
	x, y := self.toFloat32s(point)
	self.rasterizer.LineTo(x, y)
}

func (self *DefaultRasterizer) QuadTo(control, target fixed.Point26_6) {
	cx, cy := self.toFloat32s(control)
	tx, ty := self.toFloat32s(target)
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

func (self *DefaultRasterizer) CubeTo(controlA, controlB, target fixed.Point26_6) {
	cax, cay := self.toFloat32s(controlA)
	cbx, cby := self.toFloat32s(controlB)
	tx , ty  := self.toFloat32s(target)
	self.rasterizer.CubeTo(cax, cay, cbx, cby, tx, ty)
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, origin fixed.Point26_6) (*image.Alpha, error) {
	// prepare rasterizer
	var width, height int
	var rectOffset image.Point
	width, height, self.normOffset, rectOffset = figureOutBounds(outline.Bounds(), origin)
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	// allocate glyph mask
	mask := image.NewAlpha(self.rasterizer.Bounds())

	processOutline(self, outline)

	// the source is uniform, so the sampling start point is irrelevant
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// translate the mask to its final position
	mask.Rect = mask.Rect.Add(rectOffset)
	return mask, nil
}

func (self *DefaultRasterizer) toFloat32s(point fixed.Point26_6) (float32, float32) {
	point = point.Add(self.normOffset)
	return float32(point.X)/64, float32(point.Y)/64
}
