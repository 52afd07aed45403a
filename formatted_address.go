package seedui

import "image/color"
import "strings"

import "github.com/pkg/errors"

import "github.com/seedsigner/seedui/metrics"

// Number of leading and trailing address characters that are
// highlighted.
const addressAccentChars = 7

// Input for [Display.NewFormattedAddress]. Start from
// [Display.FormattedAddressConfig].
type FormattedAddressConfig struct {
	Address string
	Width int // 0 means the canvas width
	ScreenX, ScreenY int
	MaxLines int // 0 means as many as needed
	FontName string
	AccentFontName string
	FontSize int
	AccentColor color.Color
	BaseColor color.Color
}

func (self *Display) FormattedAddressConfig(address string) FormattedAddressConfig {
	theme := &self.Theme
	return FormattedAddressConfig{
		Address: address,
		FontName: theme.FixedWidthFontName,
		AccentFontName: theme.FixedWidthEmphasisFontName,
		FontSize: 24,
		AccentColor: theme.AccentColor,
		BaseColor: theme.LabelFontColor,
	}
}

// A run of address characters drawn with the same font and color.
// X is absolute, Y is relative to the component's ScreenY.
type AddressRun struct {
	X, Y int
	Text string
	Accent bool
}

// An address shown as "{first 7} {middle} {last 7}" in a fixed width
// font, with the ends highlighted. The text is split in lines of the
// same length, truncating with "..." if MaxLines is reached. With
// MaxLines == 1 only the ends are shown.
type FormattedAddress struct {
	display *Display
	config FormattedAddressConfig
	face metrics.Outliner
	accentFace metrics.Outliner
	runs []AddressRun
	originX int // left edge of the lines

	CharWidth, CharHeight int
	Width, Height int
}

func (self *Display) NewFormattedAddress(config FormattedAddressConfig) (*FormattedAddress, error) {
	const n = addressAccentChars
	if len(config.Address) < 2*n {
		return nil, errors.Errorf("address %q is shorter than %d characters", config.Address, 2*n)
	}
	if config.Width == 0 { config.Width = self.Width() }
	theme := &self.Theme
	if config.FontName == "" { config.FontName = theme.FixedWidthFontName }
	if config.AccentFontName == "" { config.AccentFontName = theme.FixedWidthEmphasisFontName }
	if config.FontSize == 0 { config.FontSize = 24 }
	if config.AccentColor == nil { config.AccentColor = theme.AccentColor }
	if config.BaseColor == nil { config.BaseColor = theme.LabelFontColor }

	face, err := self.TextFace(config.FontName, config.FontSize)
	if err != nil { return nil, err }
	accentFace, err := self.TextFace(config.AccentFontName, config.FontSize)
	if err != nil { return nil, err }

	// fixed width: a single tall character gives the cell size
	box := face.BBox("Q", metrics.LeftTop)
	address := &FormattedAddress{
		display: self,
		config: config,
		face: face,
		accentFace: accentFace,
		CharWidth: box.Width(),
		CharHeight: box.Height(),
		Width: config.Width,
	}
	if address.CharWidth <= 0 {
		return nil, errors.Errorf("font %s has no width for 'Q'", config.FontName)
	}
	if config.MaxLines == 1 {
		address.layoutEnds()
	} else {
		address.layoutLines()
	}
	return address, nil
}

// Single line: first and last characters around an ellipsis.
func (self *FormattedAddress) layoutEnds() {
	const n = addressAccentChars
	text, cw := self.config.Address, self.CharWidth
	x := self.config.ScreenX + (self.config.Width - cw*(2*n + 3))/2
	self.originX = x
	self.runs = append(self.runs,
		AddressRun{ X: x, Text: text[ : n], Accent: true },
		AddressRun{ X: x + cw*n, Text: "..." },
		AddressRun{ X: x + cw*(n + 3), Text: text[len(text) - n : ], Accent: true },
	)
	self.Height = self.CharHeight
}

func (self *FormattedAddress) layoutLines() {
	const n = addressAccentChars
	address, cw := self.config.Address, self.CharWidth
	display := address[ : n] + " " + address[n : len(address) - n] + " " + address[len(address) - n : ]
	accentFrom := len(display) - n

	charsPerLine := max(self.config.Width/cw, 1)
	numLines := (len(display) + charsPerLine - 1)/charsPerLine
	charsPerLine = (len(display) + numLines - 1)/numLines // even out the lines
	x := self.config.ScreenX + (self.config.Width - cw*charsPerLine)/2
	self.originX = x

	y := 0
	spacing := self.display.Theme.BodyLineSpacing
	for i := 0; i < numLines; i++ {
		start := i*charsPerLine
		end := min(start + charsPerLine, len(display))
		line := display[start : end]
		accent := func(col int) bool {
			index := start + col
			return index < n || index >= accentFrom
		}

		if self.config.MaxLines > 0 && i == self.config.MaxLines - 1 && i != numLines - 1 {
			keep := max(len(line) - n - 3, 0)
			truncated := line[ : keep] + "..."
			self.addRuns(x, y, truncated, func(col int) bool { return false })
			self.runs = append(self.runs, AddressRun{
				X: x + cw*len(truncated), Y: y, Text: address[len(address) - n : ], Accent: true,
			})
			y += self.CharHeight
			self.Height = y
			return
		}

		self.addRuns(x, y, line, accent)
		y += self.CharHeight + spacing
	}
	self.Height = y
}

// Splits the line at spaces and accent changes.
func (self *FormattedAddress) addRuns(x, y int, line string, accent func(int) bool) {
	start := -1
	flush := func(end int) {
		if start == -1 { return }
		self.runs = append(self.runs, AddressRun{
			X: x + self.CharWidth*start, Y: y, Text: line[start : end], Accent: accent(start),
		})
		start = -1
	}
	for col := 0; col < len(line); col++ {
		if line[col] == ' ' {
			flush(col)
			continue
		}
		if start != -1 && accent(col) != accent(start) { flush(col) }
		if start == -1 { start = col }
	}
	flush(len(line))
}

// The laid out runs, in drawing order.
func (self *FormattedAddress) Runs() []AddressRun { return self.runs }

// The text of each line as displayed, with spaces in the gaps.
func (self *FormattedAddress) Lines() []string {
	var lines []string
	var builder strings.Builder
	lastY, col := -1, 0
	for _, run := range self.runs {
		if run.Y != lastY {
			if lastY != -1 { lines = append(lines, builder.String()) }
			builder.Reset()
			lastY, col = run.Y, 0
		}
		runCol := (run.X - self.originX)/self.CharWidth
		for ; col < runCol; col++ { builder.WriteByte(' ') }
		builder.WriteString(run.Text)
		col += len(run.Text)
	}
	if lastY != -1 { lines = append(lines, builder.String()) }
	return lines
}

// Draws the address. The caller must hold the canvas lock.
func (self *FormattedAddress) Render() error {
	canvas := self.display.Canvas.Image()
	for _, run := range self.runs {
		face, textColor := self.face, self.config.BaseColor
		if run.Accent { face, textColor = self.accentFace, self.config.AccentColor }
		err := self.display.DrawText(canvas, face, run.Text, run.X, self.config.ScreenY + run.Y, AnchorLeftAscender, textColor)
		if err != nil { return err }
	}
	return nil
}
