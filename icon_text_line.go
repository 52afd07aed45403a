package seedui

import "image/color"

import "github.com/pkg/errors"

// Input for [Display.NewIconTextLine]. Start from
// [Display.IconTextLineConfig] to get the theme defaults.
type IconTextLineConfig struct {
	Height int // 0 means auto; can't be combined with a label
	IconName string // "" means no icon
	IconSize int
	IconColor color.Color
	LabelText string // "" means no label
	ValueText string
	FontName string
	FontSize int
	Centered bool
	AutoLineBreak bool
	AllowOverflow bool
	ScreenX, ScreenY int
}

// Returns the default configuration for a row showing the given value.
func (self *Display) IconTextLineConfig(value string) IconTextLineConfig {
	return IconTextLineConfig{
		IconSize: self.Theme.IconFontSize,
		IconColor: self.Theme.BodyFontColor,
		ValueText: value,
		FontName: self.Theme.BodyFontName,
		FontSize: self.Theme.BodyFontSize,
		AllowOverflow: true,
	}
}

// A value with an optional label above it and an optional icon to
// the left of both, vertically centered against the text stack.
// IconTextLine always spans the canvas width.
type IconTextLine struct {
	icon *Icon
	label *TextArea
	value *TextArea

	Width int
	Height int
}

func (self *Display) NewIconTextLine(config IconTextLineConfig) (*IconTextLine, error) {
	if config.Height != 0 && config.LabelText != "" {
		return nil, errors.Wrap(ErrConflictingLayout, "icon text line: explicit height with label text")
	}
	if config.FontName == "" { config.FontName = self.Theme.BodyFontName }
	if config.FontSize == 0 { config.FontSize = self.Theme.BodyFontSize }

	line := &IconTextLine{ Width: self.Width() }
	textX := config.ScreenX
	spacer := self.Theme.ComponentPadding/2
	textCentered := config.Centered
	if config.IconName != "" {
		icon, err := self.NewIcon(config.IconName, config.IconSize, config.IconColor)
		if err != nil { return nil, err }
		icon.ScreenX = config.ScreenX
		line.icon = icon
		textX += icon.Width + spacer
		textCentered = false
	}

	labelConfig := self.TextAreaConfig(config.LabelText)
	labelConfig.FontSize = self.Theme.BodyFontSize - 2
	labelConfig.FontColor = self.Theme.LabelFontColor
	labelConfig.EdgePadding = 0
	labelConfig.Centered = textCentered
	labelConfig.AutoLineBreak = false
	labelConfig.ScreenY = config.ScreenY

	valueConfig := self.TextAreaConfig(config.ValueText)
	valueConfig.Height = config.Height
	valueConfig.FontName = config.FontName
	valueConfig.FontSize = config.FontSize
	valueConfig.EdgePadding = 0
	valueConfig.Centered = textCentered
	valueConfig.AutoLineBreak = config.AutoLineBreak
	valueConfig.AllowOverflow = config.AllowOverflow

	// a centered icon moves with the text block, so measure the
	// text first and place everything from there
	if line.icon != nil && config.Centered {
		labelConfig.ScreenX, valueConfig.ScreenX = textX, textX
		valueLayout, err := self.MeasureTextArea(valueConfig)
		if err != nil { return nil, err }
		maxTextWidth := valueLayout.TextWidth
		if config.LabelText != "" {
			labelLayout, err := self.MeasureTextArea(labelConfig)
			if err != nil { return nil, err }
			maxTextWidth = max(maxTextWidth, labelLayout.TextWidth)
		}
		totalWidth := maxTextWidth + line.icon.Width + spacer
		line.icon.ScreenX = config.ScreenX + (line.Width - config.ScreenX - totalWidth)/2
		textX = line.icon.ScreenX + line.icon.Width + spacer
	}
	labelConfig.ScreenX, valueConfig.ScreenX = textX, textX

	valueY := config.ScreenY
	labelPadding := self.Theme.ComponentPadding/2
	if config.LabelText != "" {
		label, err := self.NewTextArea(labelConfig)
		if err != nil { return nil, err }
		line.label = label
		valueY += label.layout.Height + labelPadding
	}

	valueConfig.ScreenY = valueY
	value, err := self.NewTextArea(valueConfig)
	if err != nil { return nil, err }
	line.value = value

	line.Height = config.Height
	if line.label != nil {
		line.Height = line.label.layout.Height + labelPadding + value.layout.Height
	} else if line.Height == 0 {
		line.Height = value.layout.Height
	}

	if line.icon != nil {
		line.icon.ScreenY = config.ScreenY + (line.Height - line.icon.Height)/2
		line.Height = max(line.icon.Height, line.Height)
	}
	return line, nil
}

// Draws the row. The caller must hold the canvas lock.
func (self *IconTextLine) Render() error {
	if self.label != nil { self.label.Render() }
	self.value.Render()
	if self.icon == nil { return nil }
	return self.icon.Render()
}

func (self *IconTextLine) Icon() *Icon { return self.icon }
func (self *IconTextLine) Label() *TextArea { return self.label }
func (self *IconTextLine) Value() *TextArea { return self.value }
