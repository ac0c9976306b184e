package grammar

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lexigrid/coord"
	"github.com/katalvlaran/lexigrid/symbol"
)

// Sentinel errors carried by StructuralError.
var (
	// ErrNoDirection indicates a start particle without exactly one occupied neighbor.
	ErrNoDirection = errors.New("grammar: ambiguous or missing reading direction")
	// ErrUnexpectedToken indicates a spine cell the automaton cannot accept.
	ErrUnexpectedToken = errors.New("grammar: unexpected token in sentence")
	// ErrModifierOnSpine indicates a Noun or Verb of non-zero depth on the spine.
	ErrModifierOnSpine = errors.New("grammar: modifier on sentence spine")
	// ErrModifierMismatch indicates a modifier of the wrong kind, depth or island count.
	ErrModifierMismatch = errors.New("grammar: mismatched modifier")
	// ErrLeftover indicates symbols that belong to no sentence.
	ErrLeftover = errors.New("grammar: leftover ungrammatical symbols")
)

// Board is the read-only view Validate needs. *board.Grid satisfies it.
type Board interface {
	At(c coord.Coord) (symbol.Symbol, bool)
	Occupied() []coord.Coord
}

// StructuralError describes one grammar problem and where it is.
type StructuralError struct {
	// Err is one of the package sentinels.
	Err error
	// Start is the start particle of the failing sentence.
	// It is unset for ErrLeftover.
	Start coord.Coord
	// At lists the offending cells.
	At []coord.Coord
	// Detail explains the problem.
	Detail string
}

// Error implements error.
func (e *StructuralError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Err != ErrLeftover {
		fmt.Fprintf(&b, " (sentence at %v)", e.Start)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if len(e.At) > 0 {
		b.WriteString(" at:")
		for _, c := range e.At {
			b.WriteByte(' ')
			b.WriteString(c.String())
		}
	}
	return b.String()
}

// Unwrap returns the sentinel.
func (e *StructuralError) Unwrap() error {
	return e.Err
}

// Sentence is one grammatical sentence found on the board.
type Sentence struct {
	// Start is the start particle.
	Start coord.Coord
	// Dir is the reading direction.
	Dir coord.Direction
	// Spine lists the spine cells in reading order, Start first.
	Spine []coord.Coord
	// Modifiers lists the attached modifier cells.
	Modifiers []coord.Coord
}

// Cells returns the spine followed by the modifiers.
func (s Sentence) Cells() []coord.Coord {
	out := make([]coord.Coord, 0, len(s.Spine)+len(s.Modifiers))
	out = append(out, s.Spine...)
	return append(out, s.Modifiers...)
}

// Result is the verdict of Validate.
type Result struct {
	// Sentences lists the valid sentences by start particle, row-major.
	Sentences []Sentence
	// Valid holds every cell of every valid sentence, row-major, without duplicates.
	Valid []coord.Coord
	// Errors holds every structural problem found.
	Errors []error
}

// Solved reports whether the board has no structural errors. Because
// uncovered symbols are an error, this also means Valid covers every
// occupied cell.
func (r Result) Solved() bool {
	return len(r.Errors) == 0
}

// Covers reports whether c belongs to a valid sentence.
func (r Result) Covers(c coord.Coord) bool {
	i := sort.Search(len(r.Valid), func(i int) bool { return !r.Valid[i].Less(c) })
	return i < len(r.Valid) && r.Valid[i] == c
}
