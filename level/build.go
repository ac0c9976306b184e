package level

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lexigrid/board"
	"github.com/katalvlaran/lexigrid/coord"
	"github.com/katalvlaran/lexigrid/gridgraph"
	"github.com/katalvlaran/lexigrid/symbol"
)

// Build compiles key into symbols, lays them out per layout and groups the
// occupied cells into 4-connected fragments.
//
// Layout rows are lines, columns are runes; blank runes (see symbol.IsBlank)
// leave a cell empty. A single trailing newline is ignored.
//
// Complexity: O(K + L) for K key entries and L layout runes.
func Build(id, name string, key map[rune]string, layout string, opts ...Option) (*Level, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	palette := make(map[rune]symbol.Symbol, len(key))
	for r, pattern := range key {
		if symbol.IsBlank(r) {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousKey, r)
		}
		sym, err := symbol.Parse(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrBadPattern, r, err)
		}
		palette[r] = sym
	}

	layout = strings.ReplaceAll(layout, "\r\n", "\n")
	layout = strings.TrimSuffix(layout, "\n")

	cells := make(map[coord.Coord]symbol.Symbol)
	for y, line := range strings.Split(layout, "\n") {
		x := 0
		for _, r := range line {
			at := coord.New(x, y)
			x++
			if symbol.IsBlank(r) {
				continue
			}
			sym, ok := palette[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownSymbol, r, at)
			}
			if !o.bounds.Contains(at) {
				return nil, fmt.Errorf("%w: %q at %v, bounds %dx%d", ErrOutOfBounds, r, at, o.bounds.Width, o.bounds.Height)
			}
			cells[at] = sym
		}
	}

	occupied := make([]coord.Coord, 0, len(cells))
	for c := range cells {
		occupied = append(occupied, c)
	}
	fragments := gridgraph.Components(occupied, gridgraph.Conn4)

	grid, err := board.New(cells, fragments, o.bounds)
	if err != nil {
		// Components always partitions its input; this is a bug.
		panic(fmt.Sprintf("level: %v", err))
	}

	return &Level{ID: id, Name: name, grid: grid}, nil
}
