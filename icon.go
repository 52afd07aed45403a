package seedui

import "image/color"
import "image/draw"
import "unicode/utf8"

import "github.com/seedsigner/seedui/metrics"

// A single icon glyph. ScreenX and ScreenY give the top-left corner
// of the inked area above the baseline; they can be changed freely
// between renders.
type Icon struct {
	display *Display
	face metrics.Outliner
	name string
	color color.Color

	ScreenX, ScreenY int
	Width int  // right edge of the glyph
	Height int // pixels above the baseline
}

// Creates an icon from one of the icon code points. Code points in
// the SeedSigner icon range use that font, any other one uses Font
// Awesome. A nil color means the theme body color.
func (self *Display) NewIcon(name string, size int, iconColor color.Color) (*Icon, error) {
	fontName := self.Theme.IconFontNameFontAwesome
	if IsSeedSignerIcon(name) { fontName = self.Theme.IconFontNameSeedSigner }
	face, err := self.IconFace(fontName, size)
	if err != nil { return nil, err }

	if iconColor == nil { iconColor = self.Theme.BodyFontColor }
	box := face.BBox(name, metrics.LeftBaseline)
	return &Icon{
		display: self,
		face: face,
		name: name,
		color: iconColor,
		Width: box.Right,
		Height: -box.Top,
	}, nil
}

// Reports whether the icon belongs to the SeedSigner icon font.
func IsSeedSignerIcon(name string) bool {
	codePoint, _ := utf8.DecodeRuneInString(name)
	return codePoint >= SeedSignerIconMin && codePoint <= SeedSignerIconMax
}

func (self *Icon) Name() string { return self.name }

// Draws the icon on the canvas. The caller must hold the canvas lock.
func (self *Icon) Render() error {
	return self.drawOn(self.display.Canvas.Image())
}

func (self *Icon) drawOn(target draw.Image) error {
	return self.display.DrawText(target, self.face, self.name, self.ScreenX, self.ScreenY + self.Height, AnchorLeftBaseline, self.color)
}
