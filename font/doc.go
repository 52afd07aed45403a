// The font subpackage keeps the font files used by the display,
// indexed by the name of the file they were parsed from (without
// the extension) and their [Kind].
//
// Fonts never change at runtime, so a [Library] is typically
// filled once at startup from the device's font directory and then
// only read. A font that was never registered is a configuration
// error: [Library.Load] reports it with [ErrMissing] and there is
// no fallback font.
package font
