package seedui

import "github.com/pkg/errors"

import "github.com/seedsigner/seedui/font"

// Returned when a component configuration combines options that
// can't work together, like automatic line breaks with horizontal
// scrolling.
var ErrConflictingLayout = errors.New("conflicting layout options")

// Text taller than its target rect. Only returned when the display
// uses [OverflowFail]; with [OverflowWarn] the condition is logged.
var ErrSoftOverflow = errors.New("text cannot fit in target rect with this font/size")

// Returned by [Scroller.Run] when the crop window falls outside the
// rendered bitmap.
var ErrScrollState = errors.New("scroll window outside rendered text")

// Same as [font.ErrMissing].
var ErrFontMissing = font.ErrMissing
