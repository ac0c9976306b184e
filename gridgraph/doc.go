// Package gridgraph treats cells of a 2D grid as graph vertices and finds
// their connected components by flood fill.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold;
//     ConnectedComponents returns the "islands" of cells whose value is at
//     least the threshold. The symbol classifier runs it over a 5×5 bitmap.
//   - Components does the same over a sparse set of coordinates on an
//     unbounded lattice. The level builder runs it over the occupied cells of
//     a layout to obtain fragments.
//
// Both use an explicit worklist and a visited set; no recursion.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbors).
//   - Components:          O(N×d),   Memory: O(N)      (N = number of cells).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
