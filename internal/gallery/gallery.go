// Package gallery builds the demo screens shown by the screenshot
// generator and the preview window.
package gallery

import "image"
import "image/color"

import "github.com/pkg/errors"
import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/gomonobold"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/seedsigner/seedui"
import "github.com/seedsigner/seedui/font"

// Returned by [LoadFonts] when the directory has no font files.
var ErrNoFonts = errors.New("no fonts found")

// Creates the font library for the given theme. With goFonts set the
// Go fonts are registered under the theme font names (icons will show
// as missing glyph boxes); otherwise every .ttf and .otf file in dir
// is loaded, named after its file.
func LoadFonts(dir string, theme seedui.Theme, goFonts bool) (*font.Library, error) {
	library := font.NewLibrary()
	if goFonts {
		fonts := []struct {
			name string
			kind font.Kind
			data []byte
		}{
			{ theme.BodyFontName, font.TTF, goregular.TTF },
			{ theme.ButtonFontName, font.TTF, gobold.TTF },
			{ theme.TopNavTitleFontName, font.TTF, gobold.TTF },
			{ theme.FixedWidthFontName, font.TTF, gomono.TTF },
			{ theme.FixedWidthEmphasisFontName, font.TTF, gomonobold.TTF },
			{ theme.IconFontNameFontAwesome, font.OTF, goregular.TTF },
			{ theme.IconFontNameSeedSigner, font.OTF, goregular.TTF },
		}
		for _, entry := range fonts {
			if library.HasFont(entry.name, entry.kind) { continue }
			err := library.Register(entry.name, entry.kind, entry.data)
			if err != nil { return nil, err }
		}
		return library, nil
	}

	added, _, err := library.ParseAllFromPath(dir)
	if err != nil { return nil, errors.Wrapf(err, "loading fonts from %s", dir) }
	if added == 0 { return nil, errors.Wrap(ErrNoFonts, dir) }
	return library, nil
}

// Anything that can be highlighted by the preview cursor.
type selectable interface {
	SetSelected(selected bool)
}

// A set of components drawn together. Screens own the scrollers of
// their components through the display threads.
type Screen struct {
	Name string
	display *seedui.Display
	renders []func() error
	closers []func()
	items []selectable
	selected int
}

func newScreen(name string, display *seedui.Display) *Screen {
	return &Screen{ Name: name, display: display }
}

func (self *Screen) addButton(button *seedui.Button) {
	self.renders = append(self.renders, button.Render)
	self.closers = append(self.closers, button.Close)
	self.items = append(self.items, button)
}

func (self *Screen) addTopNav(nav *seedui.TopNav) {
	self.renders = append(self.renders, nav.Render)
	self.closers = append(self.closers, nav.Close)
	self.items = append(self.items, nav)
}

func (self *Screen) addStatic(render func() error) {
	self.renders = append(self.renders, render)
}

// Moves the selection by delta items, wrapping around.
func (self *Screen) Select(delta int) {
	if len(self.items) == 0 { return }
	self.items[self.selected].SetSelected(false)
	self.selected = (self.selected + delta) % len(self.items)
	if self.selected < 0 { self.selected += len(self.items) }
	self.items[self.selected].SetSelected(true)
}

// Clears the canvas, draws all the components and shows the result.
func (self *Screen) Render() error {
	canvas := self.display.Canvas
	canvas.Lock()
	defer canvas.Unlock()
	img := canvas.Image()
	seedui.FillRect(img, img.Bounds(), self.display.Theme.BackgroundColor)
	for _, render := range self.renders {
		err := render()
		if err != nil { return errors.Wrapf(err, "screen %s", self.Name) }
	}
	return canvas.Show()
}

// Stops the screen scrollers and returns the first scroller error.
func (self *Screen) Close() error {
	for _, closer := range self.closers { closer() }
	return self.display.Threads().Stop()
}

// A named screen constructor.
type Builder struct {
	Name string
	New func(display *seedui.Display) (*Screen, error)
}

// All the demo screens, in presentation order.
var Builders = []Builder{
	{ "menu", newMenuScreen },
	{ "home", newHomeScreen },
	{ "warning", newWarningScreen },
	{ "address", newAddressScreen },
	{ "amount", newAmountScreen },
	{ "shapes", newShapesScreen },
}

func newMenuScreen(display *seedui.Display) (*Screen, error) {
	screen := newScreen("menu", display)
	theme := &display.Theme
	navConfig := display.TopNavConfig("Settings")
	navConfig.ShowPowerButton = true
	nav, err := display.NewTopNav(navConfig)
	if err != nil { return nil, err }
	screen.addTopNav(nav)

	english := display.ButtonConfig("English")
	english.RightIconName = seedui.IconChevronRight
	configs := []seedui.ButtonConfig{
		english,
		display.CheckedSelectionButtonConfig("Native Segwit", true),
		display.CheckedSelectionButtonConfig("Taproot", false),
		display.CheckboxButtonConfig("Testnet", true),
		display.ButtonConfig("Advanced settings for multisig descriptors"),
	}
	y := theme.TopNavHeight
	for _, config := range configs {
		config.ScreenX, config.ScreenY = theme.EdgePadding, y
		button, err := display.NewButton(config)
		if err != nil { return nil, err }
		screen.addButton(button)
		y += theme.ButtonHeight + theme.ListItemPadding
	}
	screen.Select(1) // first button
	return screen, nil
}

func newHomeScreen(display *seedui.Display) (*Screen, error) {
	screen := newScreen("home", display)
	theme := &display.Theme
	navConfig := display.TopNavConfig("Home")
	navConfig.ShowBackButton = false
	navConfig.ShowPowerButton = true
	nav, err := display.NewTopNav(navConfig)
	if err != nil { return nil, err }
	screen.addTopNav(nav)

	entries := []struct{ text, icon string }{
		{ "Scan", seedui.IconScan },
		{ "Seeds", seedui.IconSeeds },
		{ "Tools", seedui.IconTools },
		{ "Settings", seedui.IconSettings },
	}
	padding := theme.ComponentPadding
	width := (display.Width() - 2*theme.EdgePadding - padding)/2
	height := (display.Height() - theme.TopNavHeight - theme.EdgePadding - padding)/2
	for i, entry := range entries {
		config := display.LargeIconButtonConfig(entry.text, entry.icon)
		config.Width, config.Height = width, height
		config.ScreenX = theme.EdgePadding + (i % 2)*(width + padding)
		config.ScreenY = theme.TopNavHeight + (i / 2)*(height + padding)
		button, err := display.NewButton(config)
		if err != nil { return nil, err }
		screen.addButton(button)
	}
	screen.Select(1)
	return screen, nil
}

func newWarningScreen(display *seedui.Display) (*Screen, error) {
	screen := newScreen("warning", display)
	theme := &display.Theme
	navConfig := display.TopNavConfig("Caution")
	navConfig.IconName = seedui.IconWarning
	navConfig.IconColor = theme.WarningColor
	nav, err := display.NewTopNav(navConfig)
	if err != nil { return nil, err }
	screen.addTopNav(nav)

	buttonY := display.Height() - theme.EdgePadding - theme.ButtonHeight
	bodyConfig := display.TextAreaConfig(
		"Anyone who knows your seed phrase can take your funds. " +
		"Never photograph it or type it into a connected device.")
	bodyConfig.ScreenY = theme.TopNavHeight
	bodyConfig.Height = buttonY - theme.ComponentPadding - bodyConfig.ScreenY
	body, err := display.NewTextArea(bodyConfig)
	if err != nil { return nil, err }
	screen.addStatic(body.Render)

	buttonConfig := display.ButtonConfig("I Understand")
	buttonConfig.ScreenX, buttonConfig.ScreenY = theme.EdgePadding, buttonY
	buttonConfig.SelectedColor = theme.WarningColor
	button, err := display.NewButton(buttonConfig)
	if err != nil { return nil, err }
	screen.addButton(button)
	screen.Select(1)
	return screen, nil
}

const demoAddress = "bc1q9h7garjtsqsqdcxhzdl2ajsm3jz4cmyhvtt5dmk8rv7w2fnxs0fsvdpqdd"

func newAddressScreen(display *seedui.Display) (*Screen, error) {
	screen := newScreen("address", display)
	theme := &display.Theme
	nav, err := display.NewTopNav(display.TopNavConfig("Receive Address"))
	if err != nil { return nil, err }
	screen.addTopNav(nav)

	lineConfig := display.IconTextLineConfig("m/84'/0'/0'/0/5")
	lineConfig.IconName = seedui.IconDerivation
	lineConfig.LabelText = "Derivation"
	lineConfig.Centered = true
	lineConfig.ScreenY = theme.TopNavHeight
	line, err := display.NewIconTextLine(lineConfig)
	if err != nil { return nil, err }
	screen.addStatic(line.Render)

	addressConfig := display.FormattedAddressConfig(demoAddress)
	addressConfig.ScreenY = lineConfig.ScreenY + line.Height + theme.ComponentPadding
	addressConfig.MaxLines = 3
	address, err := display.NewFormattedAddress(addressConfig)
	if err != nil { return nil, err }
	screen.addStatic(address.Render)
	return screen, nil
}

// The same amounts in each denomination, one network per row.
func newAmountScreen(display *seedui.Display) (*Screen, error) {
	screen := newScreen("amount", display)
	theme := &display.Theme
	nav, err := display.NewTopNav(display.TopNavConfig("Review"))
	if err != nil { return nil, err }
	screen.addTopNav(nav)

	rows := []struct {
		sats int64
		denomination seedui.Denomination
		network seedui.Network
	}{
		{ 12_345_678, seedui.DenominationBTC, seedui.NetworkMainnet },
		{ 123_456, seedui.DenominationSats, seedui.NetworkMainnet },
		{ 12_345_678, seedui.DenominationHybrid, seedui.NetworkTestnet },
		{ 5_000_000, seedui.DenominationThreshold, seedui.NetworkRegtest },
	}
	y := theme.TopNavHeight
	for _, row := range rows {
		config := display.BtcAmountConfig(row.sats)
		config.Denomination = row.denomination
		config.Network = row.network
		config.ScreenY = y
		amount, err := display.NewBtcAmount(config)
		if err != nil { return nil, err }
		screen.addStatic(amount.Render)
		y += amount.Height + theme.ComponentPadding
	}
	return screen, nil
}

// Rounded rectangles and a curve drawn with the geometry helpers.
func newShapesScreen(display *seedui.Display) (*Screen, error) {
	screen := newScreen("shapes", display)
	theme := display.Theme
	nav, err := display.NewTopNav(display.TopNavConfig("Shapes"))
	if err != nil { return nil, err }
	screen.addTopNav(nav)

	width, height := display.Width(), display.Height()
	screen.addStatic(func() error {
		img := display.Canvas.Image()
		frame := image.Rect(theme.EdgePadding, theme.TopNavHeight, width - theme.EdgePadding, height - theme.EdgePadding)
		err := display.DrawRoundedRectangle(img, frame, 12, theme.ButtonBackgroundColor, theme.InfoColor, 2)
		if err != nil { return err }

		p1 := image.Pt(frame.Min.X + 16, frame.Max.Y - 16)
		p2 := image.Pt(frame.Min.X + frame.Dx()/2, frame.Min.Y - frame.Dy()/2)
		p3 := image.Pt(frame.Max.X - 16, frame.Max.Y - 16)
		for _, point := range seedui.BezierCurve(p1, p2, p3, 48) {
			dot := image.Rect(point.X - 2, point.Y - 2, point.X + 2, point.Y + 2)
			err := display.DrawRoundedRectangle(img, dot, 2, theme.AccentColor, nil, 0)
			if err != nil { return err }
		}
		for _, point := range []image.Point{ p1, p2, p3 } {
			marker := image.Rect(point.X - 3, point.Y - 3, point.X + 3, point.Y + 3).Intersect(frame)
			seedui.FillRect(img, marker, color.RGBA{ 255, 255, 255, 255 })
		}
		return nil
	})
	return screen, nil
}
