package coord

import (
	"fmt"
	"sort"
)

// Coord is a cell address on an unbounded 2D lattice.
type Coord struct {
	X, Y int
}

// New is shorthand for Coord{X: x, Y: y}.
func New(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c translated by o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the offset that takes o to c.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Step returns c moved n cells along d.
func (c Coord) Step(d Direction, n int) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx*n, Y: c.Y + dy*n}
}

// Neighbors returns the four orthogonal neighbors of c in Directions order.
func (c Coord) Neighbors() [4]Coord {
	var out [4]Coord
	for i, d := range Directions {
		out[i] = c.Step(d, 1)
	}
	return out
}

// Less orders coordinates row-major: by Y, then by X.
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// String formats c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Sort orders cs in place, row-major.
func Sort(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
}
