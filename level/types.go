package level

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lexigrid/board"
)

// Sentinel errors for level loading. All of them wrap ErrFormat.
var (
	// ErrFormat is the common kind of every load-time error.
	ErrFormat = errors.New("level: format error")

	// ErrAmbiguousKey indicates a symbol key that reads as an empty cell.
	ErrAmbiguousKey = fmt.Errorf("%w: ambiguous symbol key", ErrFormat)
	// ErrKeyLength indicates a symbol key that is not exactly one character.
	ErrKeyLength = fmt.Errorf("%w: symbol key must be one character", ErrFormat)
	// ErrUnknownSymbol indicates a layout character with no symbol.
	ErrUnknownSymbol = fmt.Errorf("%w: layout character has no symbol", ErrFormat)
	// ErrBadPattern indicates a symbol pattern that failed to parse.
	ErrBadPattern = fmt.Errorf("%w: bad symbol pattern", ErrFormat)
	// ErrOutOfBounds indicates a layout larger than the playable bounds.
	ErrOutOfBounds = fmt.Errorf("%w: layout exceeds playable bounds", ErrFormat)
	// ErrUnsupportedFormat indicates a document extension with no decoder.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported document format", ErrFormat)
	// ErrDecode indicates a document that its decoder rejected.
	ErrDecode = fmt.Errorf("%w: cannot decode document", ErrFormat)
)

// Option configures Build.
type Option func(*options)

type options struct {
	bounds board.Bounds
}

func defaultOptions() options {
	return options{bounds: board.DefaultBounds()}
}

// WithBounds sets the playable rectangle the layout must fit in.
// Non-positive dimensions are ignored.
func WithBounds(b board.Bounds) Option {
	return func(o *options) {
		if b.Width > 0 && b.Height > 0 {
			o.bounds = b
		}
	}
}

// Level is a named, immutable starting board.
type Level struct {
	// ID identifies the level in its catalog, typically the file stem.
	ID string
	// Name is the display name.
	Name string

	grid *board.Grid
}

// NewGrid returns a fresh working copy of the starting board.
func (l *Level) NewGrid() *board.Grid {
	return l.grid.Clone()
}
