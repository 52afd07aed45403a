package seedui

import "image"
import "image/color"
import "testing"

func TestSharpenKeepsFlatAreas(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	FillRect(img, img.Bounds(), color.RGBA{ 90, 120, 200, 255 })
	sharp := sharpen(img)
	for i := range img.Pix {
		if sharp.Pix[i] != img.Pix[i] { t.Fatalf("flat image changed at byte %d", i) }
	}
}

func TestSharpenBoostsEdges(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	FillRect(img, img.Bounds(), color.RGBA{ 0, 0, 0, 255 })
	FillRect(img, image.Rect(3, 0, 6, 6), color.RGBA{ 100, 100, 100, 255 })
	sharp := sharpen(img)

	// bright side of the edge gets brighter, dark side stays clamped
	if sharp.RGBAAt(3, 2).R <= 100 { t.Fatalf("expected boosted edge, got %v", sharp.RGBAAt(3, 2)) }
	if sharp.RGBAAt(2, 2).R != 0 { t.Fatalf("expected clamped dark side, got %v", sharp.RGBAAt(2, 2)) }
	if sharp.RGBAAt(5, 2) != img.RGBAAt(5, 2) { t.Fatal("borders must be left unchanged") }
	if sharp.RGBAAt(3, 2).A != 255 { t.Fatal("alpha must be left unchanged") }
}

func TestDownsample(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	FillRect(img, img.Bounds(), color.RGBA{ 40, 80, 160, 255 })
	small := downsample(img, 4, 4)
	if small.Bounds() != image.Rect(0, 0, 4, 4) { t.Fatalf("unexpected bounds %v", small.Bounds()) }
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if small.RGBAAt(x, y) != (color.RGBA{ 40, 80, 160, 255 }) {
				t.Fatalf("unexpected color at (%d, %d): %v", x, y, small.RGBAAt(x, y))
			}
		}
	}
}
