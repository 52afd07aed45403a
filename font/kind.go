package font

import "strings"

// The file kind of a font. Fonts with the same name but different
// kinds are different entries in a [Library].
type Kind uint8

const (
	TTF Kind = iota
	OTF
)

// Returns the file extension for the kind, without the dot.
func (self Kind) String() string {
	switch self {
	case TTF: return "ttf"
	case OTF: return "otf"
	default:
		panic("unexpected font kind")
	}
}

// Splits a font file path into the name and kind that a [Library]
// will use to index it. The returned bool is false if the path doesn't
// end in .ttf or .otf (case-insensitive).
func SplitPath(path string) (string, Kind, bool) {
	if slash := strings.LastIndexAny(path, `/\`); slash != -1 {
		path = path[slash + 1 : ]
	}
	if len(path) < 5 { return "", TTF, false } // need at least "x.ttf"
	ext := strings.ToLower(path[len(path) - 4 : ])
	name := path[ : len(path) - 4]
	switch ext {
	case ".ttf": return name, TTF, true
	case ".otf": return name, OTF, true
	default:
		return "", TTF, false
	}
}
