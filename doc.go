// seedui is the presentation layer for small, fixed-size embedded
// screens: themed text blocks, buttons, title bars and icons drawn
// into a shared canvas, with long single lines scrolled horizontally
// from background goroutines.
//
// Everything starts with a [Display], which binds the canvas, the
// theme and the fonts:
//   library := font.NewLibrary()
//   _, _, err := library.ParseAllFromPath("path/to/fonts")
//   if err != nil { ... }
//   display := seedui.NewDisplay(canvas, metrics.NewCache(library), seedui.NewTheme("default"))
//
// Components are created from configuration structs with theme
// defaults, laid out once and then rendered while holding the canvas
// lock:
//   nav, err := display.NewTopNav(display.TopNavConfig("Settings"))
//   if err != nil { ... }
//   display.Canvas.Lock()
//   err = nav.Render()
//   display.Canvas.Unlock()
//
// Text that doesn't fit its width gets a [Scroller]. Components that
// create scrollers register them in [Display.Threads], which the
// caller starts and stops along with the screen.
package seedui
