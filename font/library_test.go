package font

import "testing"
import "testing/fstest"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/gofont/gomono"

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"fonts/OpenSans-Regular.ttf": &fstest.MapFile{ Data: goregular.TTF },
		"fonts/Inconsolata-Regular.otf": &fstest.MapFile{ Data: gomono.TTF },
		"fonts/readme.txt": &fstest.MapFile{ Data: []byte("not a font") },
		"fonts/nested/Other.ttf": &fstest.MapFile{ Data: goregular.TTF },
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in string
		name string
		kind Kind
		ok bool
	}{
		{ "OpenSans-Regular.ttf", "OpenSans-Regular", TTF, true },
		{ "a/b/seedsigner-icons.OTF", "seedsigner-icons", OTF, true },
		{ `c:\fonts\x.ttf`, "x", TTF, true },
		{ ".ttf", "", TTF, false },
		{ "font.woff", "", TTF, false },
	}
	for i, test := range tests {
		name, kind, ok := SplitPath(test.in)
		if name != test.name || kind != test.kind || ok != test.ok {
			t.Fatalf("test#%d: SplitPath(%q) = (%q, %s, %t)", i, test.in, name, kind, ok)
		}
	}
}

func TestLibraryFS(t *testing.T) {
	lib := NewLibrary()
	added, skipped, err := lib.ParseAllFromFS(testFS(), "fonts")
	if err != nil { t.Fatal(err) }
	if added != 2 || skipped != 0 { t.Fatalf("added %d, skipped %d", added, skipped) }
	if lib.Size() != 2 { t.Fatalf("expected 2 fonts, got %d", lib.Size()) }

	added, skipped, err = lib.ParseAllFromFS(testFS(), "fonts")
	if err != nil { t.Fatal(err) }
	if added != 0 || skipped != 2 { t.Fatalf("added %d, skipped %d", added, skipped) }

	if !lib.HasFont("Inconsolata-Regular", OTF) { t.Fatal("expected otf font") }
	if lib.HasFont("Inconsolata-Regular", TTF) { t.Fatal("kinds must not be mixed") }

	font, err := lib.Load("OpenSans-Regular", TTF)
	if err != nil || font == nil { t.Fatalf("load failed: %v", err) }
	name, err := GetFamily(font)
	if err != nil { t.Fatal(err) }
	if name != "Go" { t.Fatalf("unexpected family %q", name) }
}

func TestLibraryMissing(t *testing.T) {
	lib := NewLibrary()
	_, err := lib.Load("OpenSans-Regular", TTF)
	if !errors.Is(err, ErrMissing) { t.Fatalf("expected ErrMissing, got %v", err) }

	err = lib.Register("OpenSans-Regular", TTF, goregular.TTF)
	if err != nil { t.Fatal(err) }
	err = lib.Register("OpenSans-Regular", TTF, goregular.TTF)
	if !errors.Is(err, ErrAlreadyPresent) { t.Fatalf("expected ErrAlreadyPresent, got %v", err) }

	err = lib.Register("Broken", TTF, []byte("garbage"))
	if err == nil { t.Fatal("expected parse error") }

	if !lib.RemoveFont("OpenSans-Regular", TTF) { t.Fatal("expected removal") }
	if lib.RemoveFont("OpenSans-Regular", TTF) { t.Fatal("unexpected second removal") }
	_, err = lib.Load("OpenSans-Regular", TTF)
	if !errors.Is(err, ErrMissing) { t.Fatalf("expected ErrMissing, got %v", err) }
}

func TestEachFont(t *testing.T) {
	lib := NewLibrary()
	_, _, err := lib.ParseAllFromFS(testFS(), "fonts")
	if err != nil { t.Fatal(err) }

	count := 0
	err = lib.EachFont(func(key Key, font *sfnt.Font) error {
		count += 1
		return ErrBreakEach
	})
	if err != nil { t.Fatal(err) }
	if count != 1 { t.Fatalf("expected early break, got %d calls", count) }

	keys := make(map[string]bool)
	err = lib.EachFont(func(key Key, font *sfnt.Font) error {
		keys[key.String()] = true
		return nil
	})
	if err != nil { t.Fatal(err) }
	if !keys["OpenSans-Regular.ttf"] || !keys["Inconsolata-Regular.otf"] {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestMissingRunes(t *testing.T) {
	font, err := ParseFromBytes(goregular.TTF)
	if err != nil { t.Fatal(err) }
	missing, err := GetMissingRunes(font, "Hello \ue900 world \ue900")
	if err != nil { t.Fatal(err) }
	if len(missing) != 1 || missing[0] != '\ue900' {
		t.Fatalf("unexpected missing runes %q", missing)
	}
}
