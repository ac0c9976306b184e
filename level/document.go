package level

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a level.
type Document struct {
	// Name is the display name.
	Name string `toml:"name" yaml:"name"`
	// Symbols maps a one-character key to a glyph pattern.
	Symbols map[string]string `toml:"symbols" yaml:"symbols"`
	// Layout draws the board with symbol keys.
	Layout string `toml:"layout" yaml:"layout"`
}

// Build checks that every key is one character and calls Build.
func (d Document) Build(id string, opts ...Option) (*Level, error) {
	key := make(map[rune]string, len(d.Symbols))
	for k, pattern := range d.Symbols {
		if utf8.RuneCountInString(k) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrKeyLength, k)
		}
		r, _ := utf8.DecodeRuneInString(k)
		key[r] = pattern
	}
	return Build(id, d.Name, key, d.Layout, opts...)
}

// Extensions lists the document extensions Decode understands, in the
// order a loader should probe them.
var Extensions = []string{".toml", ".yaml", ".yml"}

// Decode parses data as a Document, picking the decoder from the extension
// of filename.
func Decode(filename string, data []byte) (Document, error) {
	var doc Document
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("%w: %s: %w", ErrDecode, filename, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("%w: %s: %w", ErrDecode, filename, err)
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return doc, nil
}
