package board

import (
	"fmt"

	"github.com/katalvlaran/lexigrid/coord"
)

// FragmentAt returns the index of the fragment containing c.
// Complexity: O(N).
func (g *Grid) FragmentAt(c coord.Coord) (int, bool) {
	for i, f := range g.fragments {
		for _, p := range f {
			if p == c {
				return i, true
			}
		}
	}
	return -1, false
}

// Lift removes fragment idx and its symbols from the board and returns the
// removed cells at their original positions, in fragment order.
// An invalid idx removes nothing and returns nil.
func (g *Grid) Lift(idx int) []Cell {
	if idx < 0 || idx >= len(g.fragments) {
		return nil
	}
	frag := g.fragments[idx]
	out := make([]Cell, 0, len(frag))
	for _, c := range frag {
		s, ok := g.symbols[c]
		if !ok {
			panic(fmt.Sprintf("board: fragment %d names empty cell %v", idx, c))
		}
		out = append(out, Cell{At: c, Symbol: s})
	}
	for _, c := range frag {
		delete(g.symbols, c)
	}
	g.fragments = append(g.fragments[:idx], g.fragments[idx+1:]...)

	return out
}

// CanPlace reports whether every anchor+offset target is inside the bounds,
// unoccupied, and distinct from the others. An empty cells slice cannot be
// placed.
func (g *Grid) CanPlace(cells []Cell, anchor coord.Coord) bool {
	if len(cells) == 0 {
		return false
	}
	targets := make(map[coord.Coord]struct{}, len(cells))
	for _, c := range cells {
		t := anchor.Add(c.At)
		if !g.bounds.Contains(t) {
			return false
		}
		if _, taken := g.symbols[t]; taken {
			return false
		}
		if _, dup := targets[t]; dup {
			return false
		}
		targets[t] = struct{}{}
	}
	return true
}

// Place puts cells down at anchor+offset and records them as one fragment.
// It panics unless CanPlace(cells, anchor) holds.
func (g *Grid) Place(cells []Cell, anchor coord.Coord) {
	if !g.CanPlace(cells, anchor) {
		panic(fmt.Sprintf("board: cannot place %d cells at %v", len(cells), anchor))
	}
	frag := make([]coord.Coord, len(cells))
	for i, c := range cells {
		t := anchor.Add(c.At)
		g.symbols[t] = c.Symbol
		frag[i] = t
	}
	g.fragments = append(g.fragments, frag)
}
