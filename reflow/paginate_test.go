package reflow

import "testing"

import "github.com/pkg/errors"
import "github.com/davecgh/go-spew/spew"

import "github.com/seedsigner/seedui/metrics/metricstest"

func TestLinesPerPage(t *testing.T) {
	tests := []struct{ ascent, descent, spacing, height, expected int }{
		{ 12, 3, 8, 100, 5 },
		{ 12, 3, 8, 95, 5 },
		{ 12, 3, 8, 94, 4 },
		{ 12, 3, 8, 15, 1 },
		{ 12, 3, 8, 14, 0 },
		{ 12, 3, 0, 0, 0 },
		{ 0, 0, 0, 10, 0 },
	}
	for i, test := range tests {
		got := LinesPerPage(test.ascent, test.descent, test.spacing, test.height)
		if got != test.expected { t.Fatalf("test#%d: expected %d, got %d", i, test.expected, got) }
	}
}

func TestPaginate(t *testing.T) {
	// "Agjpqy": 10px above the baseline, 2px below
	measurer := metricstest.Fixed{ Advance: 10, Ascent: 10, Descent: 2 }
	text := "aa bb cc dd ee ff gg"
	// 2 words per line, 2 lines per page (10*2 + 4 + 2 = 26 <= 30)
	pages, err := Paginate(text, 50, 30, measurer, 4, Options{})
	if err != nil { t.Fatal(err) }
	expected := []string{ "aa bb\ncc dd", "ee ff\ngg" }
	if len(pages) != len(expected) { t.Fatalf("unexpected pages: %s", spew.Sdump(pages)) }
	for i := range expected {
		if pages[i] != expected[i] { t.Fatalf("page #%d: expected %q, got %q", i, expected[i], pages[i]) }
	}

	_, err = Paginate(text, 50, 11, measurer, 4, Options{})
	if !errors.Is(err, ErrZeroLinesPerPage) { t.Fatalf("expected ErrZeroLinesPerPage, got %v", err) }

	_, err = Paginate("unbreakable", 50, 30, measurer, 4, Options{})
	if !errors.Is(err, ErrUnbreakableOverflow) { t.Fatalf("expected ErrUnbreakableOverflow, got %v", err) }
}
