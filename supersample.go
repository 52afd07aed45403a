package seedui

import "image"

import xdraw "golang.org/x/image/draw"

// Rows added above and below supersampled text so the resampling
// filter doesn't dim glyphs touching the image edges.
const resamplePadding = 10

// Supersampling is skipped from this font size on.
const supersamplingMaxFontSize = 20

// Scales src down to the given size with Catmull-Rom and sharpens
// the result.
func downsample(src *image.RGBA, width, height int) *image.RGBA {
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return sharpen(scaled)
}

// 3x3 sharpen kernel (center 32, neighbors -2, divided by 16). The
// alpha channel and the one pixel border are left unchanged.
func sharpen(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	copy(dst.Pix, src.Pix)
	if bounds.Dx() < 3 || bounds.Dy() < 3 { return dst }

	for y := bounds.Min.Y + 1; y < bounds.Max.Y - 1; y++ {
		for x := bounds.Min.X + 1; x < bounds.Max.X - 1; x++ {
			offset := src.PixOffset(x, y)
			for channel := 0; channel < 3; channel++ {
				var neighbors int
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 { continue }
						neighbors += int(src.Pix[src.PixOffset(x + dx, y + dy) + channel])
					}
				}
				value := 32*int(src.Pix[offset + channel]) - 2*neighbors
				dst.Pix[offset + channel] = clampChannel((value + 8)/16)
			}
		}
	}
	return dst
}

func clampChannel(value int) uint8 {
	if value < 0 { return 0 }
	if value > 255 { return 255 }
	return uint8(value)
}
