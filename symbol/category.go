package symbol

import "fmt"

// Kind tags the variant held by a Category.
type Kind uint8

const (
	// ParticleStart opens every sentence.
	ParticleStart Kind = iota
	// ParticleCollate closes a list of two or more nouns.
	ParticleCollate
	// Noun is a noun or a noun modifier.
	Noun
	// Verb is a verb or a verb modifier.
	Verb
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case ParticleStart:
		return "ParticleStart"
	case ParticleCollate:
		return "ParticleCollate"
	case Noun:
		return "Noun"
	case Verb:
		return "Verb"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Category is the part of speech of a glyph. Islands and Depth are only
// meaningful for Noun and Verb and are zero for particles.
type Category struct {
	Kind    Kind
	Islands uint8
	Depth   uint8
}

// IsParticle reports whether c is ParticleStart or ParticleCollate.
func (c Category) IsParticle() bool {
	return c.Kind == ParticleStart || c.Kind == ParticleCollate
}

// String formats c as e.g. "Noun{islands:2, depth:0}".
func (c Category) String() string {
	switch c.Kind {
	case Noun, Verb:
		return fmt.Sprintf("%s{islands:%d, depth:%d}", c.Kind, c.Islands, c.Depth)
	default:
		return c.Kind.String()
	}
}
