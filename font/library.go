package font

import "io/fs"
import "sync"
import "path/filepath"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"

// Identifies a font within a [Library].
type Key struct {
	Name string // file name without extension, e.g. "OpenSans-Regular"
	Kind Kind
}

// Returns the file name for the key (e.g. "OpenSans-Regular.ttf").
func (self Key) String() string {
	return self.Name + "." + self.Kind.String()
}

// Returned by [Library.Load] (wrapped) when the requested font
// was never registered.
var ErrMissing = errors.New("font not found")

// Returned by the registration methods when a font with the same
// [Key] is already present in the [Library].
var ErrAlreadyPresent = errors.New("font already present in the library")

// Special error that can be used with [Library.EachFont]() to
// break early. When used, the function will return early but still
// return a nil error.
var ErrBreakEach = errors.New("EachFont() early break")

// A collection of fonts accessible by name and kind. Safe for
// concurrent use.
type Library struct {
	fonts map[Key]*sfnt.Font
	mutex sync.RWMutex
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library {
		fonts: make(map[Key]*sfnt.Font),
	}
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.fonts)
}

// Finds out whether a font with the given name and kind exists in
// the library.
func (self *Library) HasFont(name string, kind Kind) bool {
	self.mutex.RLock()
	_, found := self.fonts[Key{ Name: name, Kind: kind }]
	self.mutex.RUnlock()
	return found
}

// Returns the font with the given name and kind. If the font is not
// present, the returned error wraps [ErrMissing].
func (self *Library) Load(name string, kind Kind) (*sfnt.Font, error) {
	key := Key{ Name: name, Kind: kind }
	self.mutex.RLock()
	font, found := self.fonts[key]
	self.mutex.RUnlock()
	if !found { return nil, errors.Wrapf(ErrMissing, "font %s", key) }
	return font, nil
}

// Adds an already parsed font to the library. Nil fonts panic.
func (self *Library) AddFont(name string, kind Kind, font *sfnt.Font) error {
	if font == nil { panic("nil font") }
	return self.addNewFont(Key{ Name: name, Kind: kind }, font)
}

// Parses the given bytes and registers the result under the given
// name and kind. The bytes must not be modified while the font is
// in use.
func (self *Library) Register(name string, kind Kind, fontBytes []byte) error {
	font, err := ParseFromBytes(fontBytes)
	if err != nil { return errors.Wrapf(err, "font %s.%s", name, kind) }
	return self.addNewFont(Key{ Name: name, Kind: kind }, font)
}

// Returns false if the font can't be removed due to not being found.
func (self *Library) RemoveFont(name string, kind Kind) bool {
	key := Key{ Name: name, Kind: kind }
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, found := self.fonts[key]
	if !found { return false }
	delete(self.fonts, key)
	return true
}

// Parses the font at the given path and registers it under the name
// and kind derived from the file name.
func (self *Library) ParseFromPath(path string) (Key, error) {
	font, key, err := ParseFromPath(path)
	if err != nil { return key, err }
	return key, self.addNewFont(key, font)
}

// The equivalent of [Library.ParseFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (Key, error) {
	font, key, err := ParseFromFS(filesys, path)
	if err != nil { return key, err }
	return key, self.addNewFont(key, font)
}

func (self *Library) addNewFont(key Key, font *sfnt.Font) error {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.fonts[key]; found {
		return errors.Wrapf(ErrAlreadyPresent, "font %s", key)
	}
	self.fonts[key] = font
	return nil
}

// Calls the given function for each font in the library, in
// pseudo-random order.
//
// If the given function returns a non-nil error, the method will immediately
// stop and return that error, with the only exception of [ErrBreakEach].
// The function must not register or remove fonts.
func (self *Library) EachFont(fontFunc func(Key, *sfnt.Font) error) error {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	for key, font := range self.fonts {
		err := fontFunc(key, font)
		if err != nil {
			if errors.Is(err, ErrBreakEach) { return nil }
			return err
		}
	}
	return nil
}

// Walks the given directory non-recursively and adds all the .ttf and .otf
// fonts in it. Returns the number of fonts added, the number of fonts skipped
// (when a font with the same key already exists in the Library) and any error
// that might happen during the process.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }

	err = filepath.WalkDir(absDirPath,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}

			if _, _, valid := SplitPath(path); !valid { return nil }
			_, err = self.ParseFromPath(path)
			if errors.Is(err, ErrAlreadyPresent) {
				skipped += 1
				return nil
			}
			if err == nil { added += 1 }
			return err
		})
	return added, skipped, err
}

// The equivalent of [Library.ParseAllFromPath]() for filesystems.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }

	if dirName == "." {
		dirName = ""
	} else if len(dirName) == 0 || dirName[len(dirName) - 1] != '/' {
		dirName += "/"
	}

	for _, entry := range entries {
		if entry.IsDir() { continue }
		if _, _, valid := SplitPath(entry.Name()); !valid { continue }
		_, err = self.ParseFromFS(filesys, dirName + entry.Name())
		if errors.Is(err, ErrAlreadyPresent) {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}
