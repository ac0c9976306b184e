// Package grammar decides whether the symbols on a board form sentences.
//
// A sentence starts at a ParticleStart symbol and is read in the direction
// of its only occupied neighbor. The cells along that line form the spine,
// which must match
//
//	Start Noun [Noun+ Collate] Verb [Noun | Noun Noun+ Collate]
//
// and end at the first empty cell. The automaton driving the spine:
//
//	state            Noun       Verb   Collate           EOF
//	origin           -          -      -                 -          (Start → start)
//	start            subject1   -      -                 -
//	subject1         subjectN   verb   -                 -
//	subjectN         subjectN   -      subjectCollator   -
//	subjectCollator  -          verb   -                 -
//	verb             object1    -      -                 satisfied
//	object1          objectN    -      -                 satisfied
//	objectN          objectN    -      objectCollator    -
//	objectCollator   -          -      -                 satisfied
//
// Every spine Noun or Verb may carry modifiers on the two sides
// perpendicular to the reading direction: a run of cells, starting next to
// the base and going outward, each holding a depth-1 symbol of the base's
// kind and island count. An empty cell or a particle ends the run.
//
// Validate never stops at the first problem. Each start particle yields
// either a Sentence or one *StructuralError; symbols covered by no sentence
// are reported together at the end.
package grammar
