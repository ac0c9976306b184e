// Package session plays one level: it owns a working copy of the level's
// board, lets the player carry one fragment at a time, and checks the
// board against the grammar on request.
//
// A typical turn:
//
//	s := session.New(lv)
//	_ = s.Pick(coord.New(2, 2))  // lift the fragment under (2,2)
//	_ = s.Drop(coord.New(2, 0))  // put it down with the grabbed cell on (2,0)
//	res, _ := s.Check()
//	if res.Solved() { ... }
//
// Cancel returns a held fragment to where it was picked up. It is the only
// undo. Check refuses to run while a fragment is held.
//
// A Session is not safe for concurrent use.
package session
