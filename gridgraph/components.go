package gridgraph

import (
	"github.com/katalvlaran/lexigrid/coord"
)

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major). Components are ordered by their first cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int
	offsets := gg.Conn.Offsets()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue // water
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsLand(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Components partitions a sparse set of cells into connected components.
// Duplicates in cells are ignored. Seeds are taken in row-major order, so
// the result is deterministic for a given set regardless of input order;
// within a component, cells appear in BFS order from the seed.
//
// Time:   O(N·d), Memory: O(N).
func Components(cells []coord.Coord, conn Connectivity) [][]coord.Coord {
	if len(cells) == 0 {
		return nil
	}
	present := make(map[coord.Coord]struct{}, len(cells))
	for _, c := range cells {
		present[c] = struct{}{}
	}
	seeds := make([]coord.Coord, 0, len(present))
	for c := range present {
		seeds = append(seeds, c)
	}
	coord.Sort(seeds)

	offsets := conn.Offsets()
	seen := make(map[coord.Coord]struct{}, len(present))
	var comps [][]coord.Coord

	for _, seed := range seeds {
		if _, ok := seen[seed]; ok {
			continue
		}
		seen[seed] = struct{}{}
		queue := []coord.Coord{seed}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range offsets {
				v := coord.Coord{X: u.X + d[0], Y: u.Y + d[1]}
				if _, ok := present[v]; !ok {
					continue
				}
				if _, ok := seen[v]; ok {
					continue
				}
				seen[v] = struct{}{}
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
