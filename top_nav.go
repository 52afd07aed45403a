package seedui

import "image/color"

// The top nav button that a selected [TopNav] refers to.
type NavButton uint8

const (
	NavNone NavButton = iota
	NavBack
	NavPower
)

func (self NavButton) String() string {
	switch self {
	case NavNone: return "none"
	case NavBack: return "back"
	case NavPower: return "power"
	default:
		panic("unexpected nav button")
	}
}

// Input for [Display.NewTopNav]. Start from [Display.TopNavConfig].
type TopNavConfig struct {
	Text string
	Width int // 0 means the canvas width
	Height int
	BackgroundColor color.Color
	IconName string // optional icon before the title
	IconColor color.Color
	FontName string
	FontSize int
	FontColor color.Color
	ShowBackButton bool
	ShowPowerButton bool
	Selected bool
}

// Returns the default top nav configuration for the given title.
func (self *Display) TopNavConfig(title string) TopNavConfig {
	theme := &self.Theme
	return TopNavConfig{
		Text: title,
		Height: theme.TopNavHeight,
		BackgroundColor: theme.BackgroundColor,
		IconColor: theme.BodyFontColor,
		FontName: theme.TopNavTitleFontName,
		FontSize: theme.TopNavTitleFontSize,
		FontColor: theme.BodyFontColor,
		ShowBackButton: true,
	}
}

// The screen title bar: an optional back button on the left, an
// optional power button on the right and a centered title that
// scrolls when it's too long.
type TopNav struct {
	config TopNavConfig
	back *Button
	power *Button
	title interface{ Render() error }
	titleArea *TextArea // nil for icon titles
	selected bool
}

// Creates the top nav. Scrolling titles register their scroller in
// the display threads.
func (self *Display) NewTopNav(config TopNavConfig) (*TopNav, error) {
	theme := &self.Theme
	if config.Width == 0 { config.Width = self.Width() }
	if config.Height == 0 { config.Height = theme.TopNavHeight }
	if config.FontName == "" { config.FontName = theme.TopNavTitleFontName }
	if config.FontSize == 0 { config.FontSize = theme.TopNavTitleFontSize }
	nav := &TopNav{ config: config, selected: config.Selected }

	if config.ShowBackButton {
		backConfig := self.IconButtonConfig(IconBack)
		backConfig.ScreenX = theme.EdgePadding
		backConfig.ScreenY = theme.EdgePadding - 1 // looks better centered against the title
		backConfig.Width = theme.TopNavButtonSize
		backConfig.Height = theme.TopNavButtonSize
		back, err := self.NewButton(backConfig)
		if err != nil { return nil, err }
		nav.back = back
	}

	if config.ShowPowerButton {
		powerConfig := self.IconButtonConfig(IconPower)
		powerConfig.ScreenX = config.Width - theme.TopNavButtonSize - theme.EdgePadding
		powerConfig.ScreenY = theme.EdgePadding
		powerConfig.Width = theme.TopNavButtonSize
		powerConfig.Height = theme.TopNavButtonSize
		power, err := self.NewButton(powerConfig)
		if err != nil { return nil, err }
		nav.power = power
	}

	minTextX := theme.EdgePadding
	if nav.back != nil {
		minTextX = nav.back.config.ScreenX + nav.back.config.Width + theme.ComponentPadding
	}

	if config.IconName != "" {
		titleConfig := self.IconTextLineConfig(config.Text)
		titleConfig.Height = config.Height
		titleConfig.IconName = config.IconName
		titleConfig.IconColor = config.IconColor
		titleConfig.IconSize = theme.IconFontSize + 4
		titleConfig.Centered = true
		titleConfig.FontName = config.FontName
		titleConfig.FontSize = config.FontSize
		title, err := self.NewIconTextLine(titleConfig)
		if err != nil { return nil, err }
		nav.title = title
		return nav, nil
	}

	titleConfig := self.TextAreaConfig(config.Text)
	titleConfig.MinTextX = minTextX
	titleConfig.Width = config.Width
	if nav.power != nil {
		// same margin on both sides keeps the title centered on the
		// nav and its scroll window clear of both buttons
		margin := max(minTextX, config.Width - nav.power.config.ScreenX + theme.ComponentPadding)
		titleConfig.ScreenX = margin
		titleConfig.Width = config.Width - 2*margin
		titleConfig.MinTextX = 0
		titleConfig.EdgePadding = 0
	}
	titleConfig.Height = config.Height
	titleConfig.Centered = true
	titleConfig.FontName = config.FontName
	titleConfig.FontSize = config.FontSize
	if config.FontColor != nil { titleConfig.FontColor = config.FontColor }
	if config.BackgroundColor != nil { titleConfig.BackgroundColor = config.BackgroundColor }
	titleConfig.HeightIgnoresBelowBaseline = true
	title, err := self.NewScrollableTextLine(titleConfig)
	if err != nil { return nil, err }
	nav.title, nav.titleArea = title, title
	if title.NeedsScroll() {
		self.Threads().Add(title.Scroller())
	}
	return nav, nil
}

func (self *TopNav) SetSelected(selected bool) { self.selected = selected }
func (self *TopNav) IsSelected() bool { return self.selected }

// Returns the button that is selected: none if the nav isn't selected,
// otherwise the back button if shown, else the power button if shown.
func (self *TopNav) SelectedButton() NavButton {
	if !self.selected { return NavNone }
	if self.back != nil { return NavBack }
	if self.power != nil { return NavPower }
	return NavNone
}

// The scrollable title, or nil when the title has an icon.
func (self *TopNav) Title() *TextArea { return self.titleArea }

func (self *TopNav) BackButton() *Button { return self.back }
func (self *TopNav) PowerButton() *Button { return self.power }

// Draws the title and the buttons. The caller must hold the canvas lock.
func (self *TopNav) Render() error {
	err := self.title.Render()
	if err != nil { return err }
	for _, button := range []*Button{ self.back, self.power } {
		if button == nil { continue }
		button.SetSelected(self.selected)
		err := button.Render()
		if err != nil { return err }
	}
	return nil
}

// Closes the title scroller, if any.
func (self *TopNav) Close() {
	if self.titleArea != nil { self.titleArea.Close() }
}
