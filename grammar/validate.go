package grammar

import (
	"fmt"

	"github.com/katalvlaran/lexigrid/coord"
	"github.com/katalvlaran/lexigrid/symbol"
)

// Validate finds every sentence on b and reports what is wrong with the rest.
// Start particles are visited in row-major order, so the result is
// deterministic for a given board.
//
// Complexity: O(N) per start particle for N occupied cells.
func Validate(b Board) Result {
	var res Result
	occupied := b.Occupied()
	covered := make(map[coord.Coord]struct{}, len(occupied))

	for _, c := range occupied {
		sym, _ := b.At(c)
		if sym.Category.Kind != symbol.ParticleStart {
			continue
		}
		sent, err := parseSentence(b, c)
		if err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}
		res.Sentences = append(res.Sentences, sent)
		for _, p := range sent.Cells() {
			covered[p] = struct{}{}
		}
	}

	var leftover []coord.Coord
	for _, c := range occupied {
		if _, ok := covered[c]; ok {
			res.Valid = append(res.Valid, c)
		} else {
			leftover = append(leftover, c)
		}
	}
	if len(leftover) > 0 {
		res.Errors = append(res.Errors, &StructuralError{Err: ErrLeftover, At: leftover})
	}

	return res
}

// parseSentence reads the sentence opened by the start particle at origin.
func parseSentence(b Board, origin coord.Coord) (Sentence, *StructuralError) {
	dir, err := direction(b, origin)
	if err != nil {
		return Sentence{}, err
	}
	spine, err := walkSpine(b, origin, dir)
	if err != nil {
		return Sentence{}, err
	}
	mods, err := attachModifiers(b, origin, dir, spine)
	if err != nil {
		return Sentence{}, err
	}

	return Sentence{Start: origin, Dir: dir, Spine: spine, Modifiers: mods}, nil
}

// direction returns the direction of the only occupied neighbor of origin.
func direction(b Board, origin coord.Coord) (coord.Direction, *StructuralError) {
	var found []coord.Direction
	for _, d := range coord.Directions {
		if _, ok := b.At(origin.Step(d, 1)); ok {
			found = append(found, d)
		}
	}
	if len(found) == 1 {
		return found[0], nil
	}

	at := []coord.Coord{origin}
	for _, d := range found {
		at = append(at, origin.Step(d, 1))
	}
	return 0, &StructuralError{
		Err:    ErrNoDirection,
		Start:  origin,
		At:     at,
		Detail: fmt.Sprintf("want exactly 1 occupied neighbor, got %d", len(found)),
	}
}

// walkSpine drives the automaton from origin along dir until it is
// satisfied. The empty cell that ends the sentence is not returned.
func walkSpine(b Board, origin coord.Coord, dir coord.Direction) ([]coord.Coord, *StructuralError) {
	var spine []coord.Coord
	st := stOrigin
	for i := 0; ; i++ {
		at := origin.Step(dir, i)
		sym, occupied := b.At(at)
		tok, ok := tokenOf(sym, occupied)
		if !ok {
			return nil, &StructuralError{
				Err:    ErrModifierOnSpine,
				Start:  origin,
				At:     []coord.Coord{at},
				Detail: fmt.Sprintf("%v has depth %d", sym.Category, sym.Category.Depth),
			}
		}
		nxt, ok := st.next(tok)
		if !ok {
			return nil, &StructuralError{
				Err:    ErrUnexpectedToken,
				Start:  origin,
				At:     []coord.Coord{at},
				Detail: fmt.Sprintf("%s does not accept %s", st, tok),
			}
		}
		if nxt == stSatisfied {
			return spine, nil
		}
		st = nxt
		spine = append(spine, at)
	}
}

// attachModifiers collects the modifier runs beside every Noun and Verb of
// the spine. The clockwise side holds adjectives, the other adverbs.
func attachModifiers(b Board, origin coord.Coord, dir coord.Direction, spine []coord.Coord) ([]coord.Coord, *StructuralError) {
	var mods []coord.Coord
	for _, base := range spine {
		sym, _ := b.At(base)
		switch sym.Category.Kind {
		case symbol.Noun, symbol.Verb:
		case symbol.ParticleStart, symbol.ParticleCollate:
			continue
		}
		for _, side := range [2]coord.Rotation{coord.Clockwise, coord.CounterClockwise} {
			run, err := modifierRun(b, origin, base, sym.Category, dir.Rotate(side), side)
			if err != nil {
				return nil, err
			}
			mods = append(mods, run...)
		}
	}
	return mods, nil
}

// modifierRun walks outward from base along look until an empty cell or a
// particle, checking every symbol against want.
func modifierRun(b Board, origin, base coord.Coord, want symbol.Category, look coord.Direction, side coord.Rotation) ([]coord.Coord, *StructuralError) {
	role := "adjective"
	if side == coord.CounterClockwise {
		role = "adverb"
	}

	var run []coord.Coord
	for n := 1; ; n++ {
		at := base.Step(look, n)
		sym, ok := b.At(at)
		if !ok || sym.Category.IsParticle() {
			return run, nil
		}
		got := sym.Category
		var problem string
		switch {
		case got.Kind != want.Kind:
			problem = fmt.Sprintf("%s %v modifies a %s", role, got, want.Kind)
		case got.Depth != 1:
			problem = fmt.Sprintf("%s %v has depth %d, want 1", role, got, got.Depth)
		case got.Islands != want.Islands:
			problem = fmt.Sprintf("%s %v has %d islands, want %d", role, got, got.Islands, want.Islands)
		}
		if problem != "" {
			return nil, &StructuralError{
				Err:    ErrModifierMismatch,
				Start:  origin,
				At:     []coord.Coord{base, at},
				Detail: problem,
			}
		}
		run = append(run, at)
	}
}
