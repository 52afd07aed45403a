package seedui

// Font Awesome 6 Free (solid) code points.
const (
	FAAngleDown          = ""
	FAAngleLeft          = ""
	FAAngleRight         = ""
	FAAngleUp            = ""
	FACamera             = ""
	FAChevronUp          = ""
	FAChevronDown        = ""
	FACircle             = ""
	FACircleChevronRight = ""
	FADice               = ""
	FADiceOne            = ""
	FADiceTwo            = ""
	FADiceThree          = ""
	FADiceFour           = ""
	FADiceFive           = ""
	FADiceSix            = ""
	FAKeyboard           = ""
	FALock               = ""
	FAMap                = ""
	FAPaperPlane         = ""
	FAPen                = ""
	FASquareCaretDown    = ""
	FASquareCaretLeft    = ""
	FASquareCaretRight   = ""
	FASquareCaretUp      = ""
	FAUnlock             = ""
	FAX                  = "X"
)

// SeedSigner icon font code points.
const (
	// menu
	IconScan     = ""
	IconSeeds    = ""
	IconSettings = ""
	IconTools    = ""

	// utility
	IconBack             = ""
	IconCheck            = ""
	IconCheckbox         = ""
	IconCheckboxSelected = ""
	IconChevronDown      = ""
	IconChevronLeft      = ""
	IconChevronRight     = ""
	IconChevronUp        = ""
	IconClose            = ""
	IconPageDown         = ""
	IconPageUp           = ""
	IconPlus             = ""
	IconPower            = ""
	IconRestart          = ""

	// messaging
	IconInfo    = ""
	IconError   = ""
	IconSuccess = ""
	IconWarning = ""

	// informational
	IconAddress     = ""
	IconChange      = ""
	IconDerivation  = ""
	IconFee         = ""
	IconFingerprint = ""
	IconPassphrase  = ""

	// misc
	IconBitcoin    = ""
	IconBitcoinAlt = ""
	IconBrightness = ""
	IconMicroSD    = ""
	IconQRCode     = ""
	IconSign       = ""

	// input
	IconDelete = ""
	IconSpace  = ""
)

// Code points in [SeedSignerIconMin, SeedSignerIconMax] are looked up
// in the SeedSigner icon font, everything else in Font Awesome.
const (
	SeedSignerIconMin = ''
	SeedSignerIconMax = ''
)
