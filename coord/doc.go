// Package coord defines the integer lattice every other lexigrid package
// works on: a Coord is a cell address, a Direction is one of the four
// orthogonal unit steps, and Rotation turns a Direction by a quarter.
//
// Orientation:
//
//	x grows to the right (East), y grows downward (South), matching the
//	row/column order in which layouts and bitmap patterns are written.
//
//	        North (0,-1)
//	West (-1,0) ┼ East (1,0)
//	        South (0,1)
//
// Coord is a comparable struct, so it is used directly as a map key;
// equality and hashing are structural.
package coord
