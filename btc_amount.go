package seedui

import "image"
import "strconv"

import "github.com/pkg/errors"
import "golang.org/x/text/language"
import "golang.org/x/text/message"

import "github.com/seedsigner/seedui/metrics"

// How [BtcAmount] shows a value.
type Denomination uint8

const (
	DenominationBTC Denomination = iota // up to 8 decimals, zero groups trimmed
	DenominationSats // comma grouped sats
	DenominationThreshold // btc from 0.01 btc up, sats below
	DenominationHybrid // btc with 2 decimals, a pipe and the remaining sats
)

// The bitcoin network an amount belongs to. It picks the units and
// the icon color.
type Network uint8

const (
	NetworkMainnet Network = iota
	NetworkTestnet
	NetworkRegtest
)

const (
	satsPerBtc = 100_000_000
	satsPerCentiBtc = 1_000_000

	// amounts above this are always shown in btc
	maxSatsShown = 10_000_000_000

	// btc texts this long drop all but two decimals
	maxBtcTextLen = 12

	btcAmountIconSize = 34
	btcAmountFontSize = 24
)

// Input for [Display.NewBtcAmount].
type BtcAmountConfig struct {
	TotalSats int64
	Denomination Denomination
	Network Network
	IconSize int // 0 means 34
	FontSize int // 0 means 24
	ScreenY int
}

func (self *Display) BtcAmountConfig(totalSats int64) BtcAmountConfig {
	return BtcAmountConfig{
		TotalSats: totalSats,
		IconSize: btcAmountIconSize,
		FontSize: btcAmountFontSize,
	}
}

// A bitcoin amount: the bitcoin icon, the digits and the unit, drawn
// once to an off-screen image and centered horizontally on render.
type BtcAmount struct {
	display *Display
	config BtcAmountConfig
	image *image.RGBA
	x int
	style Denomination
	amountText string
	unit string

	Width int // always the canvas width
	Height int
}

// Lays out and draws the amount off-screen. Negative amounts fail.
func (self *Display) NewBtcAmount(config BtcAmountConfig) (*BtcAmount, error) {
	if config.TotalSats < 0 {
		return nil, errors.Errorf("btc amount: negative value %d", config.TotalSats)
	}
	if config.IconSize == 0 { config.IconSize = btcAmountIconSize }
	if config.FontSize == 0 { config.FontSize = btcAmountFontSize }
	theme := &self.Theme
	padding := theme.ComponentPadding

	btcUnit, satsUnit, networkColor := "tBtc", "tSats", theme.TestnetColor
	switch config.Network {
	case NetworkMainnet:
		btcUnit, satsUnit, networkColor = "btc", "sats", theme.AccentColor
	case NetworkRegtest:
		networkColor = theme.RegtestColor
	}

	digitFace, err := self.TextFace(theme.BodyFontName, config.FontSize)
	if err != nil { return nil, err }
	smallFace, err := self.TextFace(theme.BodyFontName, config.FontSize - 2)
	if err != nil { return nil, err }

	canvasWidth := self.Width()
	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, config.IconSize))
	FillRect(img, img.Bounds(), theme.BackgroundColor)

	icon, err := self.NewIcon(IconBitcoinAlt, config.IconSize, networkColor)
	if err != nil { return nil, err }
	err = icon.drawOn(img)
	if err != nil { return nil, err }
	curX := icon.Width + padding/4

	amount := &BtcAmount{
		display: self,
		config: config,
		style: resolveDenomination(config.Denomination, config.TotalSats),
		Width: canvasWidth,
		Height: config.IconSize,
	}

	// draws the digits from curX and moves it past them
	drawDigits := func(face metrics.Outliner, text string, y int) error {
		err := self.DrawText(img, face, text, curX, y, AnchorLeftBaseline, theme.BodyFontColor)
		if err != nil { return err }
		curX += face.BBox(text, metrics.LeftBaseline).Right
		return nil
	}

	var textY int
	switch amount.style {
	case DenominationBTC:
		amount.amountText, amount.unit = formatBtc(config.TotalSats), btcUnit
		textY = centeredBaseline(digitFace, amount.amountText, config.IconSize)
		err = drawDigits(digitFace, amount.amountText, textY)
		if err != nil { return nil, err }
	case DenominationSats:
		amount.amountText, amount.unit = groupDigits(config.TotalSats), satsUnit
		face := digitFace
		if config.TotalSats > 1_000_000_000 { face = smallFace }
		textY = centeredBaseline(face, amount.amountText, config.IconSize)
		err = drawDigits(face, amount.amountText, textY)
		if err != nil { return nil, err }
	default:
		btcText, satsText := formatHybrid(config.TotalSats)
		amount.amountText, amount.unit = btcText + "|" + satsText, satsUnit
		textY = centeredBaseline(smallFace, btcText, config.IconSize)
		err = drawDigits(smallFace, btcText, textY)
		if err != nil { return nil, err }
		curX -= padding/2

		pipeFace, err := self.TextFace(theme.BodyFontName, config.IconSize - 4)
		if err != nil { return nil, err }
		err = self.DrawText(img, pipeFace, "|", curX, textY, AnchorLeftBaseline, networkColor)
		if err != nil { return nil, err }
		curX += pipeFace.BBox("|", metrics.LeftBaseline).Right - padding/2

		err = drawDigits(smallFace, satsText, textY)
		if err != nil { return nil, err }
	}

	// the unit goes through a supersampled text area, as it's the
	// only lowercase text and looks too thin otherwise
	unitSize := theme.ButtonFontSize + 2
	unitFace, err := self.TextFace(theme.BodyFontName, unitSize)
	if err != nil { return nil, err }
	unitBox := unitFace.BBox(amount.unit, metrics.LeftBaseline)
	unitConfig := self.TextAreaConfig(" " + amount.unit)
	unitConfig.FontSize = unitSize
	unitConfig.Centered = false
	unitConfig.AutoLineBreak = false
	unitConfig.EdgePadding = 0
	unitConfig.SupersamplingFactor = 2
	unitConfig.ScreenX = curX
	unitConfig.ScreenY = textY + unitBox.Top
	unitArea, err := self.NewTextArea(unitConfig)
	if err != nil { return nil, err }
	unitLayout := unitArea.Layout()
	Paste(img, unitArea.Bitmap(), image.Pt(curX, unitConfig.ScreenY + unitLayout.TextY - unitLayout.AboveBaseline))

	finalX := curX + padding + unitBox.Right
	amount.image = cropRGBA(img, image.Rect(0, 0, finalX, config.IconSize))
	amount.x = (canvasWidth - finalX)/2
	return amount, nil
}

// Baseline that centers the text's ink vertically in the given height.
func centeredBaseline(face metrics.Provider, text string, height int) int {
	box := face.BBox(text, metrics.LeftBaseline)
	textHeight := box.Bottom - box.Top
	return height - (height - textHeight)/2
}

// Resolves the denomination setting to the style actually drawn for
// the amount: btc, sats or hybrid.
func resolveDenomination(denomination Denomination, sats int64) Denomination {
	switch {
	case denomination == DenominationBTC,
		denomination == DenominationThreshold && sats >= satsPerCentiBtc,
		denomination == DenominationHybrid && sats >= satsPerCentiBtc && sats%satsPerCentiBtc == 0,
		sats > maxSatsShown:
		return DenominationBTC
	case denomination == DenominationSats, sats < satsPerCentiBtc:
		return DenominationSats
	default:
		return DenominationHybrid
	}
}

// Formats sats as btc with 8 decimals, or 1 decimal for whole
// amounts, or 2 when the last six digits are zero. Long texts keep
// only two decimals followed by "...".
func formatBtc(sats int64) string {
	whole, fraction := sats/satsPerBtc, sats%satsPerBtc
	decimals := padDigits(fraction, 8)
	switch {
	case fraction == 0:
		decimals = "0"
	case fraction%satsPerCentiBtc == 0:
		decimals = decimals[:2]
	}

	text := groupDigits(whole) + "." + decimals
	if len(text) >= maxBtcTextLen {
		text = groupDigits(whole) + "." + decimals[:min(2, len(decimals))] + "..."
	}
	return text
}

// Splits sats in a btc part truncated to 2 decimals and the
// remaining sats below 0.01 btc, without leading zeros.
func formatHybrid(sats int64) (btcText, satsText string) {
	whole, fraction := sats/satsPerBtc, sats%satsPerBtc
	btcText = groupDigits(whole) + "." + padDigits(fraction/satsPerCentiBtc, 2)
	satsText = groupDigits(sats%satsPerCentiBtc)
	return btcText, satsText
}

// Amounts use comma grouping whatever the display locale.
func groupDigits(value int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", value)
}

func padDigits(value int64, digits int) string {
	text := strconv.FormatInt(value, 10)
	for len(text) < digits { text = "0" + text }
	return text
}

// The digits as drawn, with hybrid amounts joined by "|".
func (self *BtcAmount) AmountText() string { return self.amountText }
func (self *BtcAmount) Unit() string { return self.unit }

// The style used after resolving [DenominationThreshold] and the
// fallbacks for large and small amounts.
func (self *BtcAmount) Style() Denomination { return self.style }

// Top-left corner of the pasted image on the canvas.
func (self *BtcAmount) Position() image.Point { return image.Pt(self.x, self.config.ScreenY) }

// The off-screen image, cropped to the drawn content.
func (self *BtcAmount) Image() *image.RGBA { return self.image }

// Pastes the amount on the canvas. The caller must hold the canvas
// lock.
func (self *BtcAmount) Render() error {
	Paste(self.display.Canvas.Image(), self.image, self.Position())
	return nil
}
