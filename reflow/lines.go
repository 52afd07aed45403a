package reflow

import "strings"

import "github.com/pkg/errors"

import "github.com/seedsigner/seedui/metrics"

// Multiplier applied to measured widths when the measurer can't
// guarantee shaping-aware results. Underestimating widths makes
// lines wrap too late, so the correction errs on the wide side.
const DefaultWidthFudge = 1.05

// Returned when the text is a single whitespace-free token wider
// than the width budget and overflow is not allowed.
var ErrUnbreakableOverflow = errors.New("text cannot fit in target width with this font and size")

// Measures text. metrics.Provider implementations satisfy it.
type Measurer interface {
	Width(text string) int
	BBox(text string, anchor metrics.Anchor) metrics.Box
}

type Options struct {
	// Accept a single overlong token as its own line instead of
	// failing with ErrUnbreakableOverflow.
	AllowOverflow bool

	// Width correction for measurers that are not shaping-aware.
	// Zero means DefaultWidthFudge; 1 disables the correction.
	WidthFudge float64
}

func (self Options) widthFunc(measurer Measurer) func(string) int {
	fudge := self.WidthFudge
	if fudge == 0 { fudge = DefaultWidthFudge }
	if aware, ok := measurer.(metrics.ShapingAware); ok && aware.ShapingAware() {
		fudge = 1
	}
	if fudge == 1 { return measurer.Width }
	return func(text string) int {
		return int(float64(measurer.Width(text))*fudge)
	}
}

// A reflowed line and its measured width in pixels.
type Line struct {
	Text string
	Width int
}

// Breaks the given text into lines no wider than the given width.
//
// Text without explicit line breaks that already fits is returned
// as a single line. Otherwise each "\n" separated segment is wrapped
// independently. A single word wider than the width is accepted as
// an overflowing line of its own, unless it is the only word in the
// whole text and opts.AllowOverflow is false, in which case the
// returned error wraps [ErrUnbreakableOverflow].
func Lines(text string, width int, measurer Measurer, opts Options) ([]Line, error) {
	measure := opts.widthFunc(measurer)
	if !strings.Contains(text, "\n") {
		textWidth := measure(text)
		if textWidth <= width {
			return []Line{ { Text: text, Width: textWidth } }, nil
		}
	}

	if !opts.AllowOverflow {
		words := strings.Fields(text)
		if len(words) == 1 && measure(words[0]) > width {
			return nil, errors.Wrapf(ErrUnbreakableOverflow, "%q in %dpx", words[0], width)
		}
	}

	var lines []Line
	for _, segment := range strings.Split(text, "\n") {
		words := strings.Fields(segment)
		if len(words) == 0 {
			lines = append(lines, Line{})
			continue
		}
		for len(words) > 0 {
			count, lineWidth := fitWords(words, width, measure)
			lines = append(lines, Line{ Text: strings.Join(words[ : count], " "), Width: lineWidth })
			words = words[count : ]
		}
	}
	return lines, nil
}

// Binary search for the largest number of leading words that fit in
// the given width. Always takes at least one word.
func fitWords(words []string, width int, measure func(string) int) (int, int) {
	count, countWidth := 1, measure(words[0])
	if countWidth > width { return count, countWidth }

	low, high := 2, len(words)
	for low <= high {
		mid := (low + high)/2
		midWidth := measure(strings.Join(words[ : mid], " "))
		if midWidth <= width {
			count, countWidth = mid, midWidth
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	return count, countWidth
}
