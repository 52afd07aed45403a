package seedui

import "image"
import "image/color"
import "time"

import "github.com/seedsigner/seedui/metrics"

// Corner radius and outline width of button backgrounds.
const (
	buttonRadius = 8
	buttonOutlineWidth = 2
)

// Input for [Display.NewButton]. Start from [Display.ButtonConfig] or
// one of the preset constructors. Zero sizes and nil colors (except
// the outlines) take the theme values.
type ButtonConfig struct {
	Text string // "" means an icon-only button
	ActiveText string // replaces Text while selected, if not empty
	ScreenX, ScreenY int
	ScrollY int
	Width int  // 0 means the canvas width minus the edge paddings
	Height int // 0 means the theme button height

	IconName string
	IconSize int
	IconColor color.Color
	SelectedIconColor color.Color
	IconYOffset int
	IconInline bool // next to the text, instead of above it

	// Lay the text out as if the icon was there, but don't draw it.
	HideIcon bool

	RightIconName string
	RightIconSize int
	RightIconColor color.Color

	TextYOffset int
	BackgroundColor color.Color
	SelectedColor color.Color
	FontName string
	FontSize int
	FontColor color.Color
	SelectedFontColor color.Color
	OutlineColor color.Color // nil means no outline
	SelectedOutlineColor color.Color
	Centered bool
	Selected bool

	// Render the label once into off-screen bitmaps and scroll it
	// while selected if it doesn't fit. When false the text is drawn
	// on every render and never scrolls, which suits labels that
	// change often.
	ScrollableText bool
}

// Returns the default button configuration for the given label.
func (self *Display) ButtonConfig(text string) ButtonConfig {
	theme := &self.Theme
	return ButtonConfig{
		Text: text,
		IconSize: theme.IconInlineFontSize,
		IconColor: theme.ButtonFontColor,
		SelectedIconColor: theme.ButtonSelectedIconColor,
		IconInline: true,
		RightIconSize: theme.IconInlineFontSize,
		RightIconColor: theme.ButtonFontColor,
		BackgroundColor: theme.ButtonBackgroundColor,
		SelectedColor: theme.AccentColor,
		FontName: theme.ButtonFontName,
		FontSize: theme.ButtonFontSize,
		FontColor: theme.ButtonFontColor,
		SelectedFontColor: theme.ButtonSelectedFontColor,
		Centered: true,
		ScrollableText: true,
	}
}

// A list item that shows a check mark to the left of the text when
// checked. Unchecked items keep the text where the check would push it.
func (self *Display) CheckedSelectionButtonConfig(text string, checked bool) ButtonConfig {
	config := self.ButtonConfig(text)
	config.Centered = false
	config.IconName = IconCheck
	config.IconColor = self.Theme.SuccessColor
	config.HideIcon = !checked
	return config
}

// A list item with a checkbox icon to the left of the text.
func (self *Display) CheckboxButtonConfig(text string, checked bool) ButtonConfig {
	config := self.ButtonConfig(text)
	config.Centered = false
	if checked {
		config.IconName = IconCheckboxSelected
		config.IconColor = self.Theme.SuccessColor
	} else {
		config.IconName = IconCheckbox
		config.IconColor = self.Theme.BodyFontColor
	}
	return config
}

// A button that is just an icon, like the back arrow.
func (self *Display) IconButtonConfig(iconName string) ButtonConfig {
	config := self.ButtonConfig("")
	config.IconName = iconName
	config.IconInline = false
	config.ScrollableText = false
	return config
}

// A big icon with the label below it.
func (self *Display) LargeIconButtonConfig(text, iconName string) ButtonConfig {
	config := self.IconButtonConfig(iconName)
	config.Text = text
	config.IconSize = self.Theme.IconLargeButtonSize
	config.IconYOffset = self.Theme.ComponentPadding
	config.ScrollableText = true
	return config
}

// A rounded rectangle with text and up to two icons, drawn with the
// selected or unselected colors. Scrollable buttons create their
// label bitmaps on first use.
type Button struct {
	display *Display
	config ButtonConfig
	face metrics.Outliner

	textWidth int
	textHeight int
	visibleTextWidth int
	textX, textY int
	centered bool

	icon, iconSelected *Icon
	iconX, iconY int
	rightIcon, rightIconSelected *Icon
	rightIconX, rightIconY int

	activeLabelConfig TextAreaConfig
	inactiveLabelConfig TextAreaConfig
	activeLabel *TextArea
	inactiveLabel *TextArea

	selected bool
	scrollY int
}

func (self *Display) NewButton(config ButtonConfig) (*Button, error) {
	theme := &self.Theme
	if config.FontName == "" { config.FontName = theme.ButtonFontName }
	if config.FontSize == 0 { config.FontSize = theme.ButtonFontSize }
	if config.Width == 0 { config.Width = self.Width() - 2*theme.EdgePadding }
	if config.Height == 0 { config.Height = theme.ButtonHeight }
	if config.IconSize == 0 { config.IconSize = theme.IconInlineFontSize }
	if config.RightIconSize == 0 { config.RightIconSize = theme.IconInlineFontSize }
	if config.IconColor == nil { config.IconColor = theme.ButtonFontColor }
	if config.SelectedIconColor == nil { config.SelectedIconColor = theme.ButtonSelectedIconColor }
	if config.RightIconColor == nil { config.RightIconColor = theme.ButtonFontColor }
	if config.BackgroundColor == nil { config.BackgroundColor = theme.ButtonBackgroundColor }
	if config.SelectedColor == nil { config.SelectedColor = theme.AccentColor }
	if config.FontColor == nil { config.FontColor = theme.ButtonFontColor }
	if config.SelectedFontColor == nil { config.SelectedFontColor = theme.ButtonSelectedFontColor }
	padding := theme.ComponentPadding

	button := &Button{
		display: self,
		config: config,
		centered: config.Centered,
		selected: config.Selected,
		scrollY: config.ScrollY,
	}

	hasText := config.Text != ""
	if hasText {
		face, err := self.TextFace(config.FontName, config.FontSize)
		if err != nil { return nil, err }
		button.face = face

		// below the baseline pixels are ignored so that all labels
		// sit at the same height
		box := face.BBox(prepareText(config.Text), metrics.LeftBaseline)
		button.textWidth = box.Right
		button.textHeight = -box.Top
		button.visibleTextWidth = config.Width - 2*padding
		if button.textWidth > button.visibleTextWidth && !config.ScrollableText {
			self.logf("button label %q will not fit but scrollable text is off", config.Text)
		}

		if button.centered && button.textWidth < button.visibleTextWidth {
			button.textX = (config.Width - button.textWidth)/2
		} else {
			button.centered = false
			button.textX = padding
		}

		if config.TextYOffset != 0 {
			button.textY = config.TextYOffset + button.textHeight
		} else {
			button.textY = config.Height - (config.Height - button.textHeight)/2
		}
	}

	if config.IconName != "" {
		var err error
		button.icon, err = self.NewIcon(config.IconName, config.IconSize, config.IconColor)
		if err != nil { return nil, err }
		button.iconSelected, err = self.NewIcon(config.IconName, config.IconSize, config.SelectedIconColor)
		if err != nil { return nil, err }

		iconWidth, iconHeight := button.icon.Width, button.icon.Height
		if config.IconYOffset != 0 {
			button.iconY = config.IconYOffset
		} else {
			button.iconY = ceilHalf(config.Height - iconHeight)
		}

		if config.IconInline {
			button.visibleTextWidth -= iconWidth + padding
			if button.textWidth > button.visibleTextWidth {
				button.centered = false
				button.textX = padding
				if !config.ScrollableText {
					self.logf("button label %q with inline icon will not fit but scrollable text is off", config.Text)
				}
			}

			switch {
			case button.centered && hasText:
				button.textX += (iconWidth + padding)/2
				button.iconX = button.textX - (iconWidth + padding)
			case button.centered:
				button.iconX = ceilHalf(config.Width - iconWidth)
			default:
				if hasText { button.textX += iconWidth + padding }
				button.iconX = padding
			}
		} else {
			button.iconX = (config.Width - iconWidth)/2
			if hasText {
				button.textY = button.iconY + iconHeight + padding
			}
		}
	}

	if config.RightIconName != "" {
		var err error
		button.rightIcon, err = self.NewIcon(config.RightIconName, config.RightIconSize, config.RightIconColor)
		if err != nil { return nil, err }
		button.rightIconSelected, err = self.NewIcon(config.RightIconName, config.RightIconSize, config.SelectedIconColor)
		if err != nil { return nil, err }

		button.visibleTextWidth -= button.rightIcon.Width + padding
		if button.textWidth > button.visibleTextWidth {
			button.centered = false
			if !config.ScrollableText {
				self.logf("button label %q with right icon will not fit but scrollable text is off", config.Text)
			}
		}
		button.rightIconX = config.Width - button.rightIcon.Width - padding
		button.rightIconY = ceilHalf(config.Height - button.rightIcon.Height)
	}

	if config.HideIcon {
		button.icon, button.iconSelected = nil, nil
	}

	if hasText && config.ScrollableText {
		button.prepareLabelConfigs()
	}
	return button, nil
}

func (self *Button) prepareLabelConfigs() {
	config := &self.config
	hasIcon := config.IconName != ""

	active := self.display.TextAreaConfig(config.Text)
	if config.ActiveText != "" { active.Text = config.ActiveText }
	active.FontName = config.FontName
	active.FontSize = config.FontSize
	active.SupersamplingFactor = 1 // dark text on the accent color supersamples poorly
	active.FontColor = config.SelectedFontColor
	active.BackgroundColor = config.SelectedColor
	active.ScreenX = config.ScreenX
	active.ScreenY = config.ScreenY + config.TextYOffset
	active.Width = config.Width
	active.Height = config.Height
	if hasIcon && !config.IconInline {
		// the label goes on the text row, below the icon
		active.Height = self.textHeight
		if config.TextYOffset == 0 {
			active.ScreenY = config.ScreenY + self.textY - self.textHeight
		}
	}
	active.MinTextX = self.display.Theme.ComponentPadding
	if hasIcon && config.IconInline { active.MinTextX = self.textX }
	active.Centered = self.centered
	active.HeightIgnoresBelowBaseline = true
	active.ScrollSpeed = 30
	active.ScrollBeginHold = 500*time.Millisecond
	active.ScrollEndHold = 500*time.Millisecond
	self.activeLabelConfig = active

	inactive := active
	inactive.Text = config.Text
	inactive.FontColor = config.FontColor
	inactive.BackgroundColor = config.BackgroundColor
	inactive.AllowOverflow = true
	inactive.AutoLineBreak = false
	inactive.ScrollBeginHold = 2*time.Second
	inactive.ScrollEndHold = time.Second
	self.inactiveLabelConfig = inactive
}

func (self *Button) IsSelected() bool { return self.selected }

// Sets the selection state used by the next Render. Deselecting a
// button stops its label scroller right away.
func (self *Button) SetSelected(selected bool) {
	self.selected = selected
	if !selected && self.activeLabel != nil && self.activeLabel.NeedsScroll() {
		self.activeLabel.Scroller().Stop()
	}
}

// Sets the vertical scroll offset, used by lists that scroll their
// content.
func (self *Button) SetScrollY(scrollY int) { self.scrollY = scrollY }

func (self *Button) Config() ButtonConfig { return self.config }

// Position of the label baseline and icons, relative to the button.
func (self *Button) TextPosition() image.Point { return image.Pt(self.textX, self.textY) }
func (self *Button) IconPosition() image.Point { return image.Pt(self.iconX, self.iconY) }
func (self *Button) RightIconPosition() image.Point { return image.Pt(self.rightIconX, self.rightIconY) }

// Whether the label is centered after fitting it with the icons.
func (self *Button) IsTextCentered() bool { return self.centered }

// The label bitmap used while selected, nil until first rendered
// in that state.
func (self *Button) ActiveLabel() *TextArea { return self.activeLabel }

// Draws the button. Selected scrollable labels that don't fit get a
// scroller registered in the display threads and started. The caller
// must hold the canvas lock.
func (self *Button) Render() error {
	config := &self.config
	display := self.display
	canvas := display.Canvas.Image()

	background, fontColor, outline := config.BackgroundColor, config.FontColor, config.OutlineColor
	if self.selected {
		background, fontColor, outline = config.SelectedColor, config.SelectedFontColor, config.SelectedOutlineColor
	}
	x, y := config.ScreenX, config.ScreenY - self.scrollY
	rect := image.Rect(x, y, x + config.Width, y + config.Height)
	err := display.DrawRoundedRectangle(canvas, rect, buttonRadius, background, outline, buttonOutlineWidth)
	if err != nil { return err }

	if config.Text != "" {
		if !config.ScrollableText {
			err := display.DrawText(canvas, self.face, config.Text, x + self.textX, y + self.textY, AnchorLeftBaseline, fontColor)
			if err != nil { return err }
		} else if self.selected {
			err := self.renderActiveLabel()
			if err != nil { return err }
		} else {
			err := self.renderInactiveLabel()
			if err != nil { return err }
		}
	}

	icon, rightIcon := self.icon, self.rightIcon
	if self.selected { icon, rightIcon = self.iconSelected, self.rightIconSelected }
	if icon != nil {
		icon.ScreenX, icon.ScreenY = x + self.iconX, y + self.iconY
		err := icon.Render()
		if err != nil { return err }
	}
	if rightIcon != nil {
		rightIcon.ScreenX, rightIcon.ScreenY = x + self.rightIconX, y + self.rightIconY
		return rightIcon.Render()
	}
	return nil
}

func (self *Button) renderActiveLabel() error {
	if self.activeLabel == nil {
		label, err := self.display.NewScrollableTextLine(self.activeLabelConfig)
		if err != nil { return err }
		self.activeLabel = label
		if label.NeedsScroll() {
			self.display.Threads().Add(label.Scroller())
		}
	}
	self.activeLabel.SetScrollY(self.scrollY)
	err := self.activeLabel.Render()
	if err != nil { return err }
	if self.activeLabel.NeedsScroll() {
		self.activeLabel.Scroller().Start()
	}
	return nil
}

func (self *Button) renderInactiveLabel() error {
	if self.activeLabel != nil && self.activeLabel.NeedsScroll() {
		self.activeLabel.Scroller().Stop()
	}
	if self.inactiveLabel == nil {
		label, err := self.display.NewTextArea(self.inactiveLabelConfig)
		if err != nil { return err }
		self.inactiveLabel = label
	}
	self.inactiveLabel.SetScrollY(self.scrollY)
	return self.inactiveLabel.Render()
}

// Closes the label scroller, if any.
func (self *Button) Close() {
	if self.activeLabel != nil { self.activeLabel.Close() }
}

// ceil(n/2) for non-negative and negative n alike.
func ceilHalf(n int) int {
	if n >= 0 { return (n + 1)/2 }
	return n/2
}
