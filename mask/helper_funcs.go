package mask

import "image"

import "golang.org/x/image/math/fixed"

// Given the outline bounds and an origin position indicating the subpixel
// positioning (only lowest bits will be taken into account), it returns
// the bounding integer width and heights, the normalization offset to be
// applied to keep the coordinates in the positive plane, and the final
// offset to be applied on the final mask to align its bounds to the glyph
// origin.
func figureOutBounds(bounds fixed.Rectangle26_6, origin fixed.Point26_6) (int, int, fixed.Point26_6, image.Point) {
	floorMinX := bounds.Min.X.Floor()
	floorMinY := bounds.Min.Y.Floor()
	maskCorrection := image.Pt(floorMinX, floorMinY)

	var normOffset fixed.Point26_6
	normOffset.X = -fixed.I(floorMinX) + (origin.X & 0x3F)
	normOffset.Y = -fixed.I(floorMinY) + (origin.Y & 0x3F)
	width  := (bounds.Max.X + normOffset.X).Ceil()
	height := (bounds.Max.Y + normOffset.Y).Ceil()
	return width, height, normOffset, maskCorrection
}
