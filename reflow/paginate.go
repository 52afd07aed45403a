package reflow

import "strings"

import "github.com/pkg/errors"

import "github.com/seedsigner/seedui/metrics"

// Returned when not even a single line fits in the page height.
var ErrZeroLinesPerPage = errors.New("page height can't fit a single line")

// Reference text for the vertical extent of a line: a capital for
// the height above the baseline and the common descenders.
const PagingReference = "Agjpqy"

// Returns the maximum number of lines k such that
// ascent*k + spacing*(k - 1) + descent <= height.
func LinesPerPage(ascent, descent, spacing, height int) int {
	step := ascent + spacing
	if step <= 0 { return 0 }
	k := (height - descent + spacing)/step
	if k < 0 { return 0 }
	return k
}

// Groups the lines in pages of linesPerPage lines each, joined with
// "\n". The last page may be shorter.
func Group(lines []Line, linesPerPage int) []string {
	if linesPerPage <= 0 { panic("linesPerPage <= 0") }
	pages := make([]string, 0, (len(lines) + linesPerPage - 1)/linesPerPage)
	var builder strings.Builder
	for i := 0; i < len(lines); i += linesPerPage {
		builder.Reset()
		end := min(i + linesPerPage, len(lines))
		for j := i; j < end; j++ {
			if j > i { builder.WriteByte('\n') }
			builder.WriteString(lines[j].Text)
		}
		pages = append(pages, builder.String())
	}
	return pages
}

// Reflows the text for the given width and splits the result into
// pages that fit the given height. The line height is measured from
// [PagingReference]. Fails with [ErrZeroLinesPerPage] when the height
// is too short for a single line.
func Paginate(text string, width, height int, measurer Measurer, spacing int, opts Options) ([]string, error) {
	lines, err := Lines(text, width, measurer, opts)
	if err != nil { return nil, err }

	box := measurer.BBox(PagingReference, metrics.LeftBaseline)
	linesPerPage := LinesPerPage(-box.Top, box.Bottom, spacing, height)
	if linesPerPage == 0 {
		return nil, errors.Wrapf(ErrZeroLinesPerPage, "%dpx tall page, %dpx line", height, box.Height())
	}
	return Group(lines, linesPerPage), nil
}
