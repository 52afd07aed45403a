package metrics

import "sync"
import "testing"

import "github.com/pkg/errors"
import "github.com/davecgh/go-spew/spew"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/seedsigner/seedui/font"

func newTestLibrary(t *testing.T) *font.Library {
	lib := font.NewLibrary()
	err := lib.Register("OpenSans-Regular", font.TTF, goregular.TTF)
	if err != nil { t.Fatal(err) }
	return lib
}

func TestFaceBBox(t *testing.T) {
	cache := NewCache(newTestLibrary(t))
	face, err := cache.SfntFace("OpenSans-Regular", 17, font.TTF)
	if err != nil { t.Fatal(err) }

	ascent, descent := face.Metrics()
	if ascent <= 0 || descent <= 0 { t.Fatalf("bad metrics %d %d", ascent, descent) }
	if ascent + descent > face.LineHeight() + 1 {
		t.Fatalf("line height %d below ascent %d + descent %d", face.LineHeight(), ascent, descent)
	}

	box := face.BBox("Agjpqy", LeftBaseline)
	if box.Top >= 0 || -box.Top > ascent { t.Fatalf("unexpected top: %s", spew.Sdump(box)) }
	if box.Bottom <= 0 || box.Bottom > descent + 1 { t.Fatalf("unexpected bottom: %s", spew.Sdump(box)) }

	for _, text := range []string{ "ABC", "O", "COS", "Hello" } {
		noDescenders := face.BBox(text, LeftBaseline)
		if noDescenders.Bottom != 0 { t.Fatalf("unexpected descent for %q: %s", text, spew.Sdump(noDescenders)) }
	}

	top := face.BBox("Agjpqy", LeftTop)
	if top.Top != box.Top + ascent || top.Bottom != box.Bottom + ascent {
		t.Fatalf("anchor mismatch: %s vs %s", spew.Sdump(box), spew.Sdump(top))
	}

	// widths grow with content, spaces included
	prev := 0
	for _, text := range []string{ "a", "ab", "ab ", "ab c", "ab cd" } {
		width := face.Width(text)
		if width <= prev { t.Fatalf("width(%q) = %d, expected > %d", text, width, prev) }
		prev = width
	}

	empty := face.BBox("", LeftBaseline)
	if empty != (Box{}) { t.Fatalf("expected empty box, got %s", spew.Sdump(empty)) }
}

func TestFaceOutline(t *testing.T) {
	cache := NewCache(newTestLibrary(t))
	face, err := cache.SfntFace("OpenSans-Regular", 20, font.TTF)
	if err != nil { t.Fatal(err) }

	glyphs, advance := face.Layout("Hi")
	if len(glyphs) != 2 { t.Fatalf("expected 2 glyphs, got %d", len(glyphs)) }
	if glyphs[0].X != 0 || glyphs[1].X <= 0 || advance <= glyphs[1].X {
		t.Fatalf("unexpected layout: %s", spew.Sdump(glyphs))
	}

	outline, err := face.Outline(glyphs[0].Index)
	if err != nil { t.Fatal(err) }
	if len(outline) == 0 { t.Fatal("expected segments for 'H'") }

	// the copy must survive further buffer use
	first := outline[0]
	_, _ = face.Outline(glyphs[1].Index)
	if outline[0] != first { t.Fatal("outline was overwritten") }
}

func TestCache(t *testing.T) {
	cache := NewCache(newTestLibrary(t))

	var wg sync.WaitGroup
	faces := make([]Outliner, 8)
	for i := range faces {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			face, err := cache.Face("OpenSans-Regular", 15, font.TTF)
			if err != nil { panic(err) }
			faces[i] = face
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(faces); i++ {
		if faces[i] != faces[0] { t.Fatal("expected a single face per key") }
	}

	other, err := cache.Face("OpenSans-Regular", 16, font.TTF)
	if err != nil { t.Fatal(err) }
	if other == faces[0] { t.Fatal("sizes must not share faces") }
	if cache.Len() != 2 { t.Fatalf("expected 2 entries, got %d", cache.Len()) }

	_, err = cache.Face("OpenSans-Regular", 15, font.OTF)
	if !errors.Is(err, font.ErrMissing) { t.Fatalf("expected ErrMissing, got %v", err) }
	_, err = cache.Face("Missing", 15, font.TTF)
	if !errors.Is(err, font.ErrMissing) { t.Fatalf("expected ErrMissing, got %v", err) }

	_, err = cache.Face("OpenSans-Regular", 0, font.TTF)
	if err == nil { t.Fatal("expected size error") }
}
