package board

import (
	"fmt"

	"github.com/katalvlaran/lexigrid/coord"
	"github.com/katalvlaran/lexigrid/symbol"
)

// Grid maps cells to symbols and groups them into fragments.
type Grid struct {
	symbols   map[coord.Coord]symbol.Symbol
	fragments [][]coord.Coord
	bounds    Bounds
}

// New builds a Grid from copies of symbols and fragments.
// Returns ErrOutOfBounds if a symbol lies outside bounds and ErrPartition
// if fragments do not partition the keys of symbols.
// Complexity: O(N).
func New(symbols map[coord.Coord]symbol.Symbol, fragments [][]coord.Coord, bounds Bounds) (*Grid, error) {
	g := &Grid{
		symbols:   make(map[coord.Coord]symbol.Symbol, len(symbols)),
		fragments: make([][]coord.Coord, 0, len(fragments)),
		bounds:    bounds,
	}
	for c, s := range symbols {
		if !bounds.Contains(c) {
			return nil, fmt.Errorf("%w: %v not in %dx%d", ErrOutOfBounds, c, bounds.Width, bounds.Height)
		}
		g.symbols[c] = s
	}
	for _, f := range fragments {
		g.fragments = append(g.fragments, append([]coord.Coord(nil), f...))
	}
	if err := g.CheckPartition(); err != nil {
		return nil, err
	}

	return g, nil
}

// CheckPartition verifies the fragment invariant.
// Complexity: O(N).
func (g *Grid) CheckPartition() error {
	owner := make(map[coord.Coord]int, len(g.symbols))
	for i, f := range g.fragments {
		if len(f) == 0 {
			return fmt.Errorf("%w: fragment %d is empty", ErrPartition, i)
		}
		for _, c := range f {
			if _, ok := g.symbols[c]; !ok {
				return fmt.Errorf("%w: fragment %d names empty cell %v", ErrPartition, i, c)
			}
			if prev, dup := owner[c]; dup {
				return fmt.Errorf("%w: %v is in fragments %d and %d", ErrPartition, c, prev, i)
			}
			owner[c] = i
		}
	}
	if len(owner) != len(g.symbols) {
		for c := range g.symbols {
			if _, ok := owner[c]; !ok {
				return fmt.Errorf("%w: %v is in no fragment", ErrPartition, c)
			}
		}
	}

	return nil
}

// Bounds returns the playable rectangle.
func (g *Grid) Bounds() Bounds {
	return g.bounds
}

// At returns the symbol at c, if any.
func (g *Grid) At(c coord.Coord) (symbol.Symbol, bool) {
	s, ok := g.symbols[c]
	return s, ok
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return len(g.symbols)
}

// Occupied returns every occupied cell in row-major order.
func (g *Grid) Occupied() []coord.Coord {
	out := make([]coord.Coord, 0, len(g.symbols))
	for c := range g.symbols {
		out = append(out, c)
	}
	coord.Sort(out)
	return out
}

// Cells returns every occupied cell with its symbol, in row-major order.
func (g *Grid) Cells() []Cell {
	occ := g.Occupied()
	out := make([]Cell, len(occ))
	for i, c := range occ {
		out[i] = Cell{At: c, Symbol: g.symbols[c]}
	}
	return out
}

// Fragments returns a deep copy of the fragment list.
func (g *Grid) Fragments() [][]coord.Coord {
	out := make([][]coord.Coord, len(g.fragments))
	for i, f := range g.fragments {
		out[i] = append([]coord.Coord(nil), f...)
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		symbols:   make(map[coord.Coord]symbol.Symbol, len(g.symbols)),
		fragments: g.Fragments(),
		bounds:    g.bounds,
	}
	for k, v := range g.symbols {
		c.symbols[k] = v
	}
	return c
}
