// Package board holds the playfield: which symbol sits on which cell, and
// which cells move together as one rigid fragment.
//
// Invariant: the fragments partition the occupied cells exactly. Every
// occupied cell is in one fragment, fragments are disjoint and non-empty,
// and no fragment names an empty cell. New verifies it; every mutation
// keeps it.
//
// Moving a fragment is a two-phase protocol:
//
//	idx, ok := g.FragmentAt(grab)     // which fragment is under the pointer
//	held := g.Lift(idx)               // cells leave the board
//	offs := board.Relative(held, grab)
//	if g.CanPlace(offs, drop) {
//		g.Place(offs, drop)           // cells return as one new fragment
//	}
//
// Place without a successful CanPlace is a programming error and panics.
// A Grid is not safe for concurrent use.
package board
