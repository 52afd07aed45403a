package seedui

import "image/color"

import "golang.org/x/image/colornames"

// Per-locale font settings. Locales without an entry use the
// "default" row.
type localeFonts struct {
	TopNavTitleName string
	TopNavTitleSize int
	BodyName string
	BodySize int
	ButtonName string
	ButtonSize int
}

var localeFontTable = map[string]localeFonts{
	"default": {
		TopNavTitleName: "OpenSans-SemiBold",
		TopNavTitleSize: 20,
		BodyName: "OpenSans-Regular",
		BodySize: 17,
		ButtonName: "OpenSans-SemiBold",
		ButtonSize: 18,
	},
}

// Static look and feel values: paddings, palette, font names and
// sizes. Build one with [NewTheme] and adjust fields as needed before
// creating the [Display].
type Theme struct {
	EdgePadding int
	ComponentPadding int
	ListItemPadding int

	BackgroundColor color.RGBA
	InactiveColor color.RGBA
	AccentColor color.RGBA
	WarningColor color.RGBA
	DireWarningColor color.RGBA
	ErrorColor color.RGBA
	SuccessColor color.RGBA
	InfoColor color.RGBA
	BitcoinOrange color.RGBA
	TestnetColor color.RGBA
	RegtestColor color.RGBA
	GreenIndicatorColor color.RGBA
	NotificationColor color.RGBA

	IconFontNameFontAwesome string
	IconFontNameSeedSigner string
	IconFontSize int
	IconInlineFontSize int
	IconLargeButtonSize int
	IconToastFontSize int
	IconPrimaryScreenSize int

	TopNavTitleFontName string
	TopNavTitleFontSize int
	TopNavHeight int
	TopNavButtonSize int

	BodyFontName string
	BodyFontSize int
	BodyFontMaxSize int
	BodyFontMinSize int
	BodyFontColor color.RGBA
	BodyLineSpacing int

	FixedWidthFontName string
	FixedWidthEmphasisFontName string

	LabelFontSize int
	LabelFontColor color.RGBA

	ButtonFontName string
	ButtonFontSize int
	ButtonFontColor color.RGBA
	ButtonBackgroundColor color.RGBA
	ButtonHeight int
	ButtonSelectedFontColor color.RGBA
	ButtonSelectedIconColor color.RGBA
}

// Returns the theme for the given locale. Unknown locales get the
// default fonts.
func NewTheme(locale string) Theme {
	fonts, found := localeFontTable[locale]
	if !found { fonts = localeFontTable["default"] }

	const padding = 8
	background := hexColor("#000000")
	return Theme{
		EdgePadding: padding,
		ComponentPadding: padding,
		ListItemPadding: 4,

		BackgroundColor: background,
		InactiveColor: hexColor("#414141"),
		AccentColor: hexColor("#FF9F0A"),
		WarningColor: hexColor("#FFD60A"),
		DireWarningColor: hexColor("#FF5700"),
		ErrorColor: hexColor("#FF1B0A"),
		SuccessColor: hexColor("#30D158"),
		InfoColor: hexColor("#409CFF"),
		BitcoinOrange: hexColor("#FF9416"),
		TestnetColor: hexColor("#00F100"),
		RegtestColor: hexColor("#00CAF1"),
		GreenIndicatorColor: hexColor("#00FF00"),
		NotificationColor: hexColor("#00F100"),

		IconFontNameFontAwesome: "Font_Awesome_6_Free-Solid-900",
		IconFontNameSeedSigner: "seedsigner-icons",
		IconFontSize: 22,
		IconInlineFontSize: 24,
		IconLargeButtonSize: 48,
		IconToastFontSize: 30,
		IconPrimaryScreenSize: 50,

		TopNavTitleFontName: fonts.TopNavTitleName,
		TopNavTitleFontSize: fonts.TopNavTitleSize,
		TopNavHeight: 48,
		TopNavButtonSize: 32,

		BodyFontName: fonts.BodyName,
		BodyFontSize: fonts.BodySize,
		BodyFontMaxSize: localeFontTable["default"].TopNavTitleSize,
		BodyFontMinSize: 15,
		BodyFontColor: hexColor("#FCFCFC"),
		BodyLineSpacing: padding,

		FixedWidthFontName: "Inconsolata-Regular",
		FixedWidthEmphasisFontName: "Inconsolata-SemiBold",

		LabelFontSize: 15,
		LabelFontColor: hexColor("#777777"),

		ButtonFontName: fonts.ButtonName,
		ButtonFontSize: fonts.ButtonSize,
		ButtonFontColor: hexColor("#FCFCFC"),
		ButtonBackgroundColor: hexColor("#2C2C2C"),
		ButtonHeight: 32,
		ButtonSelectedFontColor: background,
		ButtonSelectedIconColor: colornames.Black,
	}
}

// Parses "#RRGGBB". Malformed values panic: themes are static.
func hexColor(hex string) color.RGBA {
	if len(hex) != 7 || hex[0] != '#' { panic("invalid color '" + hex + "'") }
	return color.RGBA{
		R: hexByte(hex[1], hex[2]),
		G: hexByte(hex[3], hex[4]),
		B: hexByte(hex[5], hex[6]),
		A: 255,
	}
}

func hexByte(hi, lo byte) byte {
	return hexDigit(hi) << 4 | hexDigit(lo)
}

func hexDigit(digit byte) byte {
	switch {
	case digit >= '0' && digit <= '9': return digit - '0'
	case digit >= 'a' && digit <= 'f': return digit - 'a' + 10
	case digit >= 'A' && digit <= 'F': return digit - 'A' + 10
	default:
		panic("invalid hex digit '" + string(digit) + "'")
	}
}
