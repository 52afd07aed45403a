package seedui

import "testing"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"

import "github.com/seedsigner/seedui/metrics/metricstest"

func TestPrepareText(t *testing.T) {
	decomposed := "Cafe\u0301"
	if prepareText(decomposed) != "Caf\u00e9" { t.Fatalf("expected NFC text, got %q", prepareText(decomposed)) }
}

func TestVisualOrder(t *testing.T) {
	if visualOrder("plain text") != "plain text" { t.Fatal("left-to-right text must not change") }
	if hasRightToLeft("plain") { t.Fatal("unexpected right-to-left detection") }
	if !hasRightToLeft("abc אב") { t.Fatal("expected hebrew to be right-to-left") }
	if !hasRightToLeft("مرحبا") { t.Fatal("expected arabic to be right-to-left") }
}

func TestDrawTextAnchors(t *testing.T) {
	display, canvas, _ := newTestDisplay(t, 100, 100)
	face := metricstest.ForSize(20) // 10px advance, 20px ascent
	white := display.Theme.BodyFontColor
	img := canvas.RGBA()

	err := display.DrawText(img, face, "AB", 50, 30, AnchorMiddleBaseline, white)
	if err != nil { t.Fatal(err) }
	if img.RGBAAt(44, 20) != white || img.RGBAAt(54, 20) != white || img.RGBAAt(38, 20).A != 0 {
		t.Fatal("middle anchor must center the advance on x")
	}
	err = display.DrawText(img, face, "A", 0, 60, AnchorLeftAscender, white)
	if err != nil { t.Fatal(err) }
	if img.RGBAAt(5, 60) != white || img.RGBAAt(5, 59).A != 0 {
		t.Fatal("ascender anchor must start the glyph at y")
	}
	if display.GlyphCache().ApproxByteSize() == 0 { t.Fatal("expected cached glyph masks") }
}

var errBrokenGlyph = errors.New("broken glyph")

// Lays text out like its embedded face but fails to outline glyphs.
type brokenFace struct {
	metricstest.Fixed
}

func (self brokenFace) Outline(index sfnt.GlyphIndex) (sfnt.Segments, error) {
	return nil, errBrokenGlyph
}

func TestDrawTextOutlineError(t *testing.T) {
	display, canvas, _ := newTestDisplay(t, 100, 100)
	face := brokenFace{ metricstest.ForSize(20) }
	err := display.DrawText(canvas.RGBA(), face, "AB", 0, 30, AnchorLeftBaseline, display.Theme.BodyFontColor)
	if errors.Cause(err) != errBrokenGlyph { t.Fatalf("expected the outline error, got %v", err) }

	// the drawer goes back to the pool in a usable state
	err = display.DrawText(canvas.RGBA(), metricstest.ForSize(20), "AB", 0, 30, AnchorLeftBaseline, display.Theme.BodyFontColor)
	if err != nil { t.Fatal(err) }
}
