package font

import "os"
import "io"
import "io/fs"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"

// Parses the given font bytes. The bytes must not be modified while
// the font is in use.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, errors.Wrap(err, "parsing font") }
	return newFont, nil
}

// Parses the font at the given path and returns it along the name
// and kind derived from the path (see [SplitPath]).
func ParseFromPath(path string) (*sfnt.Font, Key, error) {
	key, err := keyFromPath(path)
	if err != nil { return nil, key, err }

	file, err := os.Open(path)
	if err != nil { return nil, key, err }
	font, err := parseFontFileAndClose(file)
	return font, key, err
}

// Same as [ParseFromPath](), but for embedded or in-memory
// filesystems.
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, Key, error) {
	key, err := keyFromPath(path)
	if err != nil { return nil, key, err }

	file, err := filesys.Open(path)
	if err != nil { return nil, key, err }
	font, err := parseFontFileAndClose(file)
	return font, key, err
}

// ---- helpers ----

func keyFromPath(path string) (Key, error) {
	name, kind, ok := SplitPath(path)
	if !ok { return Key{}, errors.New("invalid font path '" + path + "'") }
	return Key{ Name: name, Kind: kind }, nil
}

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	err = file.Close()
	if err != nil { return nil, err }
	return ParseFromBytes(fontBytes)
}
