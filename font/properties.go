package font

import "sync"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// Property lookups are rare (diagnostics and startup checks), so a
// single shared buffer behind a mutex is enough.
var propertyBuffer sfnt.Buffer
var propertyMutex sync.Mutex

// Returns the requested font property for the given font.
// The returned property string might be empty even when error is nil.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	propertyMutex.Lock()
	str, err := font.Name(&propertyBuffer, property)
	propertyMutex.Unlock()
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font.
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the full name of the given font.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the runes in the given text that can't be represented by the
// font. Repeated runes are reported once, in order of appearance.
// Whitespace and control characters are never reported.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	var buffer sfnt.Buffer
	var missing []rune
	seen := make(map[rune]struct{})
	for _, codePoint := range text {
		if codePoint <= ' ' { continue }
		if _, done := seen[codePoint]; done { continue }
		seen[codePoint] = struct{}{}
		index, err := font.GlyphIndex(&buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
