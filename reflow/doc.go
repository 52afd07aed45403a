// The reflow subpackage breaks text into lines that fit a pixel
// width and groups those lines into pages that fit a pixel height.
//
// Measuring is delegated to a [Measurer], usually a metrics.Face.
// Words are separated by whitespace and always rejoined with a single
// space; explicit line breaks are kept, and blank lines survive as
// empty lines so vertical spacing is preserved.
package reflow
