package symbol

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Sentinel errors for pattern parsing.
var (
	// ErrTooManyLines indicates a pattern with more than Side lines.
	ErrTooManyLines = errors.New("symbol: too many lines")
	// ErrLineTooLong indicates a pattern line with more than Side characters.
	ErrLineTooLong = errors.New("symbol: line has too many characters")
)

const (
	// Side is the width and height of a glyph bitmap.
	Side = 5
	// Cells is the number of cells in a glyph bitmap.
	Cells = Side * Side
	// Mask keeps the low Cells bits of a code.
	Mask uint32 = 1<<Cells - 1

	// StartCode is the hollow square that opens a sentence.
	StartCode uint32 = 0b11111_10001_10001_10001_11111
	// CollateCode is the hollow square with a center dot that closes a list.
	CollateCode uint32 = 0b11111_10001_10101_10001_11111
)

// Symbol is a glyph together with its derived category.
// Two symbols with the same Code are interchangeable.
type Symbol struct {
	Code     uint32
	Category Category
}

// New classifies code and returns the resulting Symbol.
func New(code uint32) Symbol {
	code &= Mask
	return Symbol{Code: code, Category: Classify(code)}
}

// IsBlank reports whether r denotes an empty cell: '.', '_' or whitespace.
func IsBlank(r rune) bool {
	return r == '.' || r == '_' || unicode.IsSpace(r)
}

// Parse reads up to Side lines of up to Side characters each. Blank runes
// (see IsBlank) are empty cells, anything else is filled. Missing lines and
// short lines are empty. A single trailing newline is ignored.
func Parse(pattern string) (Symbol, error) {
	pattern = strings.ReplaceAll(pattern, "\r\n", "\n")
	pattern = strings.TrimSuffix(pattern, "\n")
	if pattern == "" {
		return New(0), nil
	}
	lines := strings.Split(pattern, "\n")
	if len(lines) > Side {
		return Symbol{}, fmt.Errorf("%w: got %d, want at most %d", ErrTooManyLines, len(lines), Side)
	}

	var code uint32
	for y, line := range lines {
		x := 0
		for _, r := range line {
			if x >= Side {
				return Symbol{}, fmt.Errorf("%w: line %d %q", ErrLineTooLong, y, line)
			}
			if !IsBlank(r) {
				code |= 1 << (y*Side + x)
			}
			x++
		}
	}

	return New(code), nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(pattern string) Symbol {
	s, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// Filled reports whether the cell at column x, row y is set.
func (s Symbol) Filled(x, y int) bool {
	if x < 0 || x >= Side || y < 0 || y >= Side {
		return false
	}
	return s.Code&(1<<(y*Side+x)) != 0
}

// String renders the bitmap as Side lines of '#' and '.'.
func (s Symbol) String() string {
	var b strings.Builder
	for y := 0; y < Side; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < Side; x++ {
			if s.Filled(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
