package reflow

import "strings"
import "testing"
import "math/rand"

import "github.com/pkg/errors"
import "github.com/davecgh/go-spew/spew"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/seedsigner/seedui/font"
import "github.com/seedsigner/seedui/metrics"
import "github.com/seedsigner/seedui/metrics/metricstest"

// a measurer without shaping guarantees, so fudge factors apply
type plainMeasurer struct{ fixed metricstest.Fixed }

func (self plainMeasurer) Width(text string) int { return self.fixed.Width(text) }
func (self plainMeasurer) BBox(text string, anchor metrics.Anchor) metrics.Box {
	return self.fixed.BBox(text, anchor)
}

func joinLines(lines []Line) string {
	texts := make([]string, len(lines))
	for i, line := range lines { texts[i] = line.Text }
	return strings.Join(texts, " ")
}

func TestAlphabetReflow(t *testing.T) {
	const alphabet = "a b c d e f g h i j k l m n o p q r s t u v w x y z"
	lines, err := Lines(alphabet, 100, metricstest.ForSize(12), Options{})
	if err != nil { t.Fatal(err) }
	if len(lines) != 4 { t.Fatalf("expected 4 lines, got %s", spew.Sdump(lines)) }
	for _, line := range lines {
		if line.Width > 100 { t.Fatalf("line too wide: %s", spew.Sdump(line)) }
	}
	if joinLines(lines) != alphabet { t.Fatalf("lost text: %s", spew.Sdump(lines)) }

	// same with a real font, fudge factor included
	lib := font.NewLibrary()
	err = lib.Register("OpenSans-Regular", font.TTF, goregular.TTF)
	if err != nil { t.Fatal(err) }
	face, err := metrics.NewCache(lib).Face("OpenSans-Regular", 12, font.TTF)
	if err != nil { t.Fatal(err) }
	lines, err = Lines(alphabet, 100, face, Options{})
	if err != nil { t.Fatal(err) }
	if len(lines) < 2 { t.Fatalf("expected several lines, got %s", spew.Sdump(lines)) }
	for _, line := range lines {
		if line.Width > 100 { t.Fatalf("line too wide: %s", spew.Sdump(line)) }
		if float64(face.Width(line.Text))*DefaultWidthFudge > 101 {
			t.Fatalf("reported width doesn't match the fudged measure: %s", spew.Sdump(line))
		}
	}
	if joinLines(lines) != alphabet { t.Fatalf("lost text: %s", spew.Sdump(lines)) }
}

func TestUnbreakable(t *testing.T) {
	const word = "Supercalifragilisticexpialidocious"
	measurer := metricstest.ForSize(12)
	_, err := Lines(word, 50, measurer, Options{})
	if !errors.Is(err, ErrUnbreakableOverflow) {
		t.Fatalf("expected ErrUnbreakableOverflow, got %v", err)
	}

	lines, err := Lines(word, 50, measurer, Options{ AllowOverflow: true })
	if err != nil { t.Fatal(err) }
	if len(lines) != 1 || lines[0].Text != word || lines[0].Width <= 50 {
		t.Fatalf("unexpected lines: %s", spew.Sdump(lines))
	}

	// overlong words among others are accepted as their own line
	lines, err = Lines("a " + word + " b", 50, measurer, Options{})
	if err != nil { t.Fatal(err) }
	if len(lines) != 3 || lines[1].Text != word {
		t.Fatalf("unexpected lines: %s", spew.Sdump(lines))
	}
}

func TestExactFit(t *testing.T) {
	measurer := metricstest.Fixed{ Advance: 10, Ascent: 10, Descent: 2 }
	lines, err := Lines("ab cd", 50, measurer, Options{})
	if err != nil { t.Fatal(err) }
	if len(lines) != 1 || lines[0].Width != 50 { t.Fatalf("unexpected lines: %s", spew.Sdump(lines)) }

	lines, err = Lines("ab cd", 49, measurer, Options{})
	if err != nil { t.Fatal(err) }
	if len(lines) != 2 || lines[0].Text != "ab" || lines[1].Text != "cd" {
		t.Fatalf("unexpected lines: %s", spew.Sdump(lines))
	}
}

func TestExplicitBreaks(t *testing.T) {
	measurer := metricstest.Fixed{ Advance: 10, Ascent: 10, Descent: 2 }
	lines, err := Lines("one two\n\nthree  four five", 100, measurer, Options{})
	if err != nil { t.Fatal(err) }
	expected := []Line{
		{ Text: "one two", Width: 70 },
		{ Text: "", Width: 0 },
		{ Text: "three four", Width: 100 },
		{ Text: "five", Width: 40 },
	}
	if len(lines) != len(expected) { t.Fatalf("unexpected lines: %s", spew.Sdump(lines)) }
	for i := range expected {
		if lines[i] != expected[i] { t.Fatalf("line #%d: expected %+v, got %+v", i, expected[i], lines[i]) }
	}
}

func TestWidthFudge(t *testing.T) {
	measurer := plainMeasurer{ metricstest.Fixed{ Advance: 10, Ascent: 10, Descent: 2 } }
	lines, err := Lines("aaaa bbbb", 100, measurer, Options{})
	if err != nil { t.Fatal(err) }
	if len(lines) != 1 || lines[0].Width != 94 { t.Fatalf("unexpected lines: %s", spew.Sdump(lines)) }

	lines, err = Lines("aaaaa bbbb", 100, measurer, Options{})
	if err != nil { t.Fatal(err) }
	if len(lines) != 2 { t.Fatalf("expected fudged wrap, got %s", spew.Sdump(lines)) }

	lines, err = Lines("aaaaa bbbb", 100, measurer, Options{ WidthFudge: 1 })
	if err != nil { t.Fatal(err) }
	if len(lines) != 1 || lines[0].Width != 100 { t.Fatalf("unexpected lines: %s", spew.Sdump(lines)) }
}

func randomText(rng *rand.Rand, extraSpaces bool) string {
	var builder strings.Builder
	words := 1 + rng.Intn(30)
	for i := 0; i < words; i++ {
		if i > 0 {
			builder.WriteByte(' ')
			if extraSpaces && rng.Intn(4) == 0 { builder.WriteByte(' ') }
		}
		letters := 1 + rng.Intn(12)
		for j := 0; j < letters; j++ {
			builder.WriteByte(byte('a' + rng.Intn(26)))
		}
	}
	return builder.String()
}

func TestReflowProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	measurer := metricstest.Fixed{ Advance: 7, Ascent: 14, Descent: 4 }
	for i := 0; i < 500; i++ {
		text  := randomText(rng, i % 2 == 1)
		width := 10 + rng.Intn(200)
		lines, err := Lines(text, width, measurer, Options{ AllowOverflow: true })
		if err != nil { t.Fatal(err) }

		for _, line := range lines {
			if line.Width > width && strings.Contains(line.Text, " ") {
				t.Fatalf("text %q width %d: line too wide %s", text, width, spew.Sdump(line))
			}
			if line.Width != measurer.Width(line.Text) {
				t.Fatalf("text %q width %d: bad line width %s", text, width, spew.Sdump(line))
			}
		}

		// idempotence
		again, err := Lines(joinLines(lines), width, measurer, Options{ AllowOverflow: true })
		if err != nil { t.Fatal(err) }
		if len(again) != len(lines) { t.Fatalf("text %q width %d: reflow not idempotent", text, width) }
		for j := range lines {
			if again[j].Text != lines[j].Text {
				t.Fatalf("text %q width %d: line #%d changed on reflow", text, width, j)
			}
		}

		// paging round trip, for single space texts
		if i % 2 == 1 { continue }
		pages, err := Paginate(text, width, 60, measurer, 4, Options{ AllowOverflow: true })
		if err != nil { t.Fatal(err) }
		rejoined := strings.ReplaceAll(strings.Join(pages, "\n"), "\n", " ")
		if rejoined != text { t.Fatalf("paging lost text: %q vs %q", rejoined, text) }
	}
}
