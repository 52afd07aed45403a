package seedui

import "strings"
import "testing"

import "github.com/pkg/errors"
import "github.com/davecgh/go-spew/spew"

import "github.com/seedsigner/seedui/metrics/metricstest"
import "github.com/seedsigner/seedui/reflow"

func TestTextAreaConflict(t *testing.T) {
	display, _, _ := newTestDisplay(t, 240, 240)
	config := display.TextAreaConfig("hello")
	config.HorizontalScroll = true
	_, err := display.NewTextArea(config)
	if !errors.Is(err, ErrConflictingLayout) {
		t.Fatalf("expected ErrConflictingLayout, got %v", err)
	}
}

func TestTextAreaScrollForcesOverflow(t *testing.T) {
	display, _, logs := newTestDisplay(t, 240, 240)
	config := display.TextAreaConfig("hello")
	config.AutoLineBreak = false
	config.HorizontalScroll = true
	area, err := display.NewTextArea(config)
	if err != nil { t.Fatal(err) }
	if !area.Config().AllowOverflow { t.Fatal("expected overflow to be forced") }
	if !strings.Contains(logs.String(), "forces text overflow") {
		t.Fatalf("missing warning, logs: %q", logs.String())
	}
}

func TestTextAreaMissingFont(t *testing.T) {
	source := metricstest.Source{ Missing: []string{ "OpenSans-Regular" } }
	display, _, _ := newTestDisplayWith(t, 240, 240, source)
	_, err := display.NewTextArea(display.TextAreaConfig("hello"))
	if !errors.Is(err, ErrFontMissing) {
		t.Fatalf("expected ErrFontMissing, got %v", err)
	}
}

func TestTextAreaVerticalCentering(t *testing.T) {
	display, _, _ := newTestDisplay(t, 240, 240)
	config := display.TextAreaConfig("Hello") // size 17: advance 8, ascent 17
	config.Height = 60
	area, err := display.NewTextArea(config)
	if err != nil { t.Fatal(err) }

	layout := area.Layout()
	if layout.AboveBaseline != 17 || layout.BelowBaseline != 0 || layout.TotalHeight != 17 {
		t.Fatalf("unexpected heights: %s", spew.Sdump(layout))
	}
	if layout.OffsetY != 21 || layout.TextY != 38 || layout.Height != 60 {
		t.Fatalf("unexpected centering: %s", spew.Sdump(layout))
	}
	if layout.TextWidth != 40 || !layout.Centered || layout.Overflowing {
		t.Fatalf("unexpected layout: %s", spew.Sdump(layout))
	}
}

func TestTextAreaMultiLineHeight(t *testing.T) {
	display, _, _ := newTestDisplay(t, 240, 240)

	// 224px wide budget fits 5 four letter words per line
	config := display.TextAreaConfig(strings.Repeat("abcd ", 11) + "abcd")
	area, err := display.NewTextArea(config)
	if err != nil { t.Fatal(err) }
	layout := area.Layout()
	if len(layout.Lines) != 3 { t.Fatalf("expected 3 lines: %s", spew.Sdump(layout.Lines)) }
	if layout.TotalHeight != 17*3 + 8*2 || layout.Height != layout.TotalHeight {
		t.Fatalf("unexpected height: %s", spew.Sdump(layout))
	}
	if layout.TextWidth != 8*24 { t.Fatalf("unexpected text width %d", layout.TextWidth) }

	// descenders only count when they are on the last line
	config.Text = strings.Repeat("abcd ", 6) + "yy"
	area, err = display.NewTextArea(config)
	if err != nil { t.Fatal(err) }
	layout = area.Layout()
	if len(layout.Lines) != 2 || layout.Lines[1].Text != "abcd yy" {
		t.Fatalf("unexpected lines: %s", spew.Sdump(layout.Lines))
	}
	if layout.TotalHeight != 17*2 + 8 + 4 { t.Fatalf("unexpected height %d", layout.TotalHeight) }

	config.Text = "yy " + strings.Repeat("abcd ", 6) + "abcd"
	area, err = display.NewTextArea(config)
	if err != nil { t.Fatal(err) }
	if area.Layout().TotalHeight != 17*2 + 8 {
		t.Fatalf("unexpected height %d", area.Layout().TotalHeight)
	}

	config.Text = strings.Repeat("abcd ", 6) + "yy"
	config.HeightIgnoresBelowBaseline = true
	area, err = display.NewTextArea(config)
	if err != nil { t.Fatal(err) }
	layout = area.Layout()
	if layout.TotalHeight != 17*2 + 8 { t.Fatalf("unexpected height %d", layout.TotalHeight) }
	if area.Bitmap().Bounds().Dy() != layout.TotalHeight + 4 {
		t.Fatalf("descenders must still be rendered, bitmap %v", area.Bitmap().Bounds())
	}
}

func TestTextAreaSoftOverflow(t *testing.T) {
	display, _, logs := newTestDisplay(t, 240, 240)
	config := display.TextAreaConfig("Hello")
	config.Height = 10

	area, err := display.NewTextArea(config)
	if err != nil { t.Fatal(err) }
	layout := area.Layout()
	if !layout.Overflowing || layout.OffsetY != 0 || layout.Height != 10 {
		t.Fatalf("unexpected layout: %s", spew.Sdump(layout))
	}
	if !strings.Contains(logs.String(), "cannot fit") {
		t.Fatalf("missing warning, logs: %q", logs.String())
	}

	display.OverflowPolicy = OverflowFail
	_, err = display.NewTextArea(config)
	if !errors.Is(err, ErrSoftOverflow) {
		t.Fatalf("expected ErrSoftOverflow, got %v", err)
	}

	config.AllowOverflow = true
	_, err = display.NewTextArea(config)
	if err != nil { t.Fatalf("overflow allowed, got %v", err) }
}

func TestTextAreaUnbreakable(t *testing.T) {
	display, _, _ := newTestDisplay(t, 100, 100)
	_, err := display.NewTextArea(display.TextAreaConfig(strings.Repeat("x", 20)))
	if !errors.Is(err, reflow.ErrUnbreakableOverflow) {
		t.Fatalf("expected ErrUnbreakableOverflow, got %v", err)
	}
}

func TestTextAreaSupersampling(t *testing.T) {
	display, _, logs := newTestDisplay(t, 240, 240)
	config := display.TextAreaConfig("Hello")
	area, err := display.NewTextArea(config)
	if err != nil { t.Fatal(err) }
	if area.Layout().SupersamplingFactor != 2 {
		t.Fatalf("expected supersampling, got %d", area.Layout().SupersamplingFactor)
	}
	bounds := area.Bitmap().Bounds()
	if bounds.Dx() != 240 - 8 || bounds.Dy() != 17 || bounds.Min.X != 0 || bounds.Min.Y != 0 {
		t.Fatalf("unexpected bitmap bounds %v", bounds)
	}

	config.FontSize = 20
	area, err = display.NewTextArea(config)
	if err != nil { t.Fatal(err) }
	if area.Layout().SupersamplingFactor != 1 {
		t.Fatalf("expected supersampling to be disabled")
	}
	if !strings.Contains(logs.String(), "supersampling disabled") {
		t.Fatalf("missing warning, logs: %q", logs.String())
	}
}

func TestTextAreaRender(t *testing.T) {
	display, canvas, _ := newTestDisplay(t, 240, 240)
	config := display.TextAreaConfig("A")
	config.SupersamplingFactor = 1
	config.ScreenY = 50
	area, err := display.NewTextArea(config)
	if err != nil { t.Fatal(err) }

	canvas.Lock()
	err = area.Render()
	canvas.Unlock()
	if err != nil { t.Fatal(err) }

	// centered at x = 120, glyph box from 116 to 123, baseline at 50 + 17
	img := canvas.RGBA()
	if img.RGBAAt(119, 58).R < 250 { t.Fatalf("expected ink at (119, 58), got %v", img.RGBAAt(119, 58)) }
	if img.RGBAAt(100, 58).R != 0 { t.Fatalf("expected background at (100, 58), got %v", img.RGBAAt(100, 58)) }
	if img.RGBAAt(119, 45).R != 0 { t.Fatalf("expected nothing above the area, got %v", img.RGBAAt(119, 45)) }

	// scrolled up by 10 pixels
	area.SetScrollY(10)
	canvas.Lock()
	FillRect(img, img.Bounds(), display.Theme.BackgroundColor)
	area.Render()
	canvas.Unlock()
	if img.RGBAAt(119, 48).R < 250 { t.Fatalf("expected ink at (119, 48), got %v", img.RGBAAt(119, 48)) }
}

func TestScrollableTextLine(t *testing.T) {
	display, canvas, _ := newTestDisplay(t, 100, 100)
	config := display.TextAreaConfig(strings.Repeat("a", 20)) // 160px
	config.SupersamplingFactor = 1
	area, err := display.NewScrollableTextLine(config)
	if err != nil { t.Fatal(err) }

	layout := area.Layout()
	if !area.NeedsScroll() || !layout.Scrolling || layout.Centered {
		t.Fatalf("expected a left aligned scrolling line: %s", spew.Sdump(layout))
	}
	if layout.VisibleWidth != 100 - 8 - 8 || area.Bitmap().Bounds().Dx() != 160 {
		t.Fatalf("unexpected widths: %s, bitmap %v", spew.Sdump(layout), area.Bitmap().Bounds())
	}
	if area.Scroller().MaxPosition() != 160 - 84 {
		t.Fatalf("unexpected max scroll %d", area.Scroller().MaxPosition())
	}

	// the static frame is cropped to the visible width
	canvas.Lock()
	err = area.Render()
	canvas.Unlock()
	if err != nil { t.Fatal(err) }
	img := canvas.RGBA()
	if img.RGBAAt(83, 10).R < 250 { t.Fatalf("expected ink at (83, 10), got %v", img.RGBAAt(83, 10)) }
	if img.RGBAAt(86, 10).R != 0 { t.Fatalf("expected no ink at (86, 10), got %v", img.RGBAAt(86, 10)) }

	config.Text = "abc"
	area, err = display.NewScrollableTextLine(config)
	if err != nil { t.Fatal(err) }
	if area.NeedsScroll() || area.Scroller() != nil || !area.Layout().Centered {
		t.Fatalf("short line should be centered and static: %s", spew.Sdump(area.Layout()))
	}
}

func TestTextAreaGoFonts(t *testing.T) {
	display, _, _ := newGoFontDisplay(t, 240, 240)
	for size := 12; size <= 30; size += 3 {
		config := display.TextAreaConfig("Typography")
		config.FontSize = size
		config.Height = 100
		area, err := display.NewTextArea(config)
		if err != nil { t.Fatalf("size %d: %v", size, err) }

		layout := area.Layout()
		if layout.AboveBaseline <= 0 || layout.BelowBaseline <= 0 {
			t.Fatalf("size %d: unexpected baseline metrics: %s", size, spew.Sdump(layout))
		}
		if layout.TotalHeight != layout.AboveBaseline + layout.BelowBaseline {
			t.Fatalf("size %d: unexpected total height: %s", size, spew.Sdump(layout))
		}
		if layout.OffsetY != (100 - layout.TotalHeight)/2 {
			t.Fatalf("size %d: not centered: %s", size, spew.Sdump(layout))
		}

		bitmap := area.Bitmap()
		inked := false
		for i := 0; i < len(bitmap.Pix); i += 4 {
			if bitmap.Pix[i] > 128 { inked = true ; break }
		}
		if !inked { t.Fatalf("size %d: nothing drawn", size) }
	}
}
