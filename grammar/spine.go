package grammar

import (
	"fmt"

	"github.com/katalvlaran/lexigrid/symbol"
)

// token is the reduced kind of a spine cell.
type token uint8

const (
	tokStart token = iota
	tokCollator
	tokNoun
	tokVerb
	tokEOF
)

func (t token) String() string {
	switch t {
	case tokStart:
		return "start"
	case tokCollator:
		return "collator"
	case tokNoun:
		return "noun"
	case tokVerb:
		return "verb"
	default:
		return "end of sentence"
	}
}

// tokenOf reduces a cell to a token. ok is false for a Noun or Verb of
// non-zero depth, which can never sit on a spine.
func tokenOf(sym symbol.Symbol, occupied bool) (tok token, ok bool) {
	if !occupied {
		return tokEOF, true
	}
	switch sym.Category.Kind {
	case symbol.ParticleStart:
		return tokStart, true
	case symbol.ParticleCollate:
		return tokCollator, true
	case symbol.Noun:
		return tokNoun, sym.Category.Depth == 0
	case symbol.Verb:
		return tokVerb, sym.Category.Depth == 0
	default:
		panic(fmt.Sprintf("grammar: unknown symbol kind %v", sym.Category.Kind))
	}
}

// state is what the spine expects next.
type state uint8

const (
	// stOrigin expects the start particle itself.
	stOrigin state = iota
	// stStart has read the start particle and wants a noun.
	stStart
	// stSubject1 has read one subject noun; a verb or another noun may follow.
	stSubject1
	// stSubjectN has read two or more subject nouns; it needs a collator.
	stSubjectN
	// stSubjectCollator has closed the subject list and wants a verb.
	stSubjectCollator
	// stVerb has read the verb; the sentence may end or take an object.
	stVerb
	// stObject1 has read one object noun.
	stObject1
	// stObjectN has read two or more object nouns; it needs a collator.
	stObjectN
	// stObjectCollator has closed the object list and wants the end.
	stObjectCollator
	// stSatisfied halts the walk.
	stSatisfied
)

var stateNames = [...]string{
	stOrigin:          "origin",
	stStart:           "start",
	stSubject1:        "subject",
	stSubjectN:        "subject list",
	stSubjectCollator: "collated subject",
	stVerb:            "verb",
	stObject1:         "object",
	stObjectN:         "object list",
	stObjectCollator:  "collated object",
	stSatisfied:       "satisfied",
}

func (s state) String() string {
	return stateNames[s]
}

type edge struct {
	on token
	to state
}

// transitions is indexed by state; a token with no edge is a parse error.
var transitions = [...][]edge{
	stOrigin:          {{tokStart, stStart}},
	stStart:           {{tokNoun, stSubject1}},
	stSubject1:        {{tokNoun, stSubjectN}, {tokVerb, stVerb}},
	stSubjectN:        {{tokNoun, stSubjectN}, {tokCollator, stSubjectCollator}},
	stSubjectCollator: {{tokVerb, stVerb}},
	stVerb:            {{tokNoun, stObject1}, {tokEOF, stSatisfied}},
	stObject1:         {{tokNoun, stObjectN}, {tokEOF, stSatisfied}},
	stObjectN:         {{tokNoun, stObjectN}, {tokCollator, stObjectCollator}},
	stObjectCollator:  {{tokEOF, stSatisfied}},
	stSatisfied:       nil,
}

// next returns the state reached from s on t.
func (s state) next(t token) (state, bool) {
	for _, e := range transitions[s] {
		if e.on == t {
			return e.to, true
		}
	}
	return s, false
}
