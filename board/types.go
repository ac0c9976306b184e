package board

import (
	"errors"

	"github.com/katalvlaran/lexigrid/coord"
	"github.com/katalvlaran/lexigrid/symbol"
)

// Sentinel errors for board construction.
var (
	// ErrPartition indicates fragments that do not partition the occupied cells.
	ErrPartition = errors.New("board: fragments do not partition the occupied cells")
	// ErrOutOfBounds indicates a symbol outside the playable bounds.
	ErrOutOfBounds = errors.New("board: cell outside playable bounds")
)

const (
	// DefaultWidth is the number of playable columns.
	DefaultWidth = 13
	// DefaultHeight is the number of playable rows.
	DefaultHeight = 13
)

// Bounds is the playable rectangle [0,Width)×[0,Height).
type Bounds struct {
	Width, Height int
}

// DefaultBounds returns a DefaultWidth×DefaultHeight rectangle.
func DefaultBounds() Bounds {
	return Bounds{Width: DefaultWidth, Height: DefaultHeight}
}

// Contains reports whether c lies inside b.
func (b Bounds) Contains(c coord.Coord) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Cell pairs a position with the symbol on it. Cells returned by Lift carry
// board positions; cells passed to CanPlace and Place carry offsets from
// the drop anchor.
type Cell struct {
	At     coord.Coord
	Symbol symbol.Symbol
}

// Relative rebases cells so that origin becomes (0,0).
func Relative(cells []Cell, origin coord.Coord) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{At: c.At.Sub(origin), Symbol: c.Symbol}
	}
	return out
}
