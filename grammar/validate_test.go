package grammar_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexigrid/board"
	"github.com/katalvlaran/lexigrid/coord"
	"github.com/katalvlaran/lexigrid/grammar"
	"github.com/katalvlaran/lexigrid/level"
)

// glyphs maps layout characters to patterns:
//
//	S start, C collate,
//	n Noun{2,0}, N Noun{1,0}, v Verb{2,0},
//	a Noun{2,1}, b Noun{1,1}, d Verb{2,1}, m Noun{2,2}.
var glyphs = map[rune]string{
	'S': "#####\n#...#\n#...#\n#...#\n#####",
	'C': "#####\n#...#\n#.#.#\n#...#\n#####",
	'n': "#####\n..#.#\n#...#\n#.#..\n#####",
	'N': "##.##\n#...#\n#####\n#...#\n##.##",
	'v': "#.###\n#....\n#.###\n#...#\n#####",
	'a': ".####\n##..#\n#.#.#\n#..##\n####.",
	'b': ".....\n.....\n..#..\n.....\n.....",
	'd': "#####\n#...#\n#.#.#\n....#\n#####",
	'm': "#....\n.....\n.....\n.....\n....#",
}

func grid(t *testing.T, layout string) *board.Grid {
	t.Helper()
	lv, err := level.Build("test", "test", glyphs, layout)
	require.NoError(t, err)
	return lv.NewGrid()
}

func TestValidate_Cases(t *testing.T) {
	var (
		unexpected = grammar.ErrUnexpectedToken
		noDir      = grammar.ErrNoDirection
		onSpine    = grammar.ErrModifierOnSpine
		mismatch   = grammar.ErrModifierMismatch
		leftover   = grammar.ErrLeftover
	)
	cases := []struct {
		name   string
		layout string
		errs   []error
		valid  int
	}{
		{"Intransitive", "Snv", nil, 3},
		{"Transitive", "Snvn", nil, 4},
		{"SubjectList", "SnnCv", nil, 5},
		{"ObjectList", "SnvnnC", nil, 6},
		{"BothLists", "SnNnCvnNC", nil, 9},
		{"Westward", "vnS", nil, 3},
		{"Southward", "S\nn\nv", nil, 3},
		{"Northward", "v\nn\nS", nil, 3},
		{"Empty", "", nil, 0},
		{"MissingVerb", "Sn", []error{unexpected, leftover}, 0},
		{"UncollatedSubjects", "Snnv", []error{unexpected, leftover}, 0},
		{"EarlyCollator", "SnCv", []error{unexpected, leftover}, 0},
		{"UncollatedObjects", "Snvnn", []error{unexpected, leftover}, 0},
		{"VerbFirst", "Sv", []error{unexpected, leftover}, 0},
		{"StartMidSpine", "SnSv", []error{unexpected, noDir, leftover}, 0},
		{"LoneStart", "S", []error{noDir, leftover}, 0},
		{"TwoNeighbors", "nSv", []error{noDir, leftover}, 0},
		{"NoStart", "nv", []error{leftover}, 0},
		{"ModifierOnSpine", "Sav", []error{onSpine, leftover}, 0},
		{"DeepSymbolOnSpine", "Snvm", []error{onSpine, leftover}, 0},
		{"Adjective", "Snv\n.a.", nil, 4},
		{"AdverbAbove", "..d\nSnv", nil, 4},
		{"ChainsOnBothSides", ".a.\n.ad\nSnv\n.a.", nil, 7},
		{"VerbModifierOnNoun", "Snv\n.d.", []error{mismatch, leftover}, 0},
		{"IslandMismatch", "Snv\n.b.", []error{mismatch, leftover}, 0},
		{"DepthTwoModifier", "Snv\n.m.", []error{mismatch, leftover}, 0},
		{"SpineGlyphAsModifier", "Snv\n.n.", []error{mismatch, leftover}, 0},
		{"NounModifierOnIslandOne", "SNv\n.b.", nil, 4},
		{"GapEndsRun", "Snv\n...\n.a.", []error{leftover}, 3},
		{"ParticleEndsRun", "Snv\n.C.", []error{leftover}, 3},
		{"TwoSentences", "Snv\n...\nSnvn", nil, 7},
		{"OneGoodOneBad", "Snv\n...\nSn", []error{unexpected, leftover}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := grid(t, tc.layout)
			res := grammar.Validate(g)

			require.Len(t, res.Errors, len(tc.errs), "errors: %v", res.Errors)
			for i, want := range tc.errs {
				if !errors.Is(res.Errors[i], want) {
					t.Errorf("error %d = %v; want %v", i, res.Errors[i], want)
				}
			}
			assert.Len(t, res.Valid, tc.valid)
			assert.Equal(t, len(tc.errs) == 0, res.Solved())
			if res.Solved() {
				if diff := cmp.Diff(g.Occupied(), res.Valid, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("solved board not fully covered (-occupied +valid):\n%s", diff)
				}
			}
		})
	}
}

func TestValidate_SentenceShape(t *testing.T) {
	g := grid(t, ".a.\n.ad\nSnv\n.a.")
	res := grammar.Validate(g)
	require.True(t, res.Solved(), "errors: %v", res.Errors)
	require.Len(t, res.Sentences, 1)

	s := res.Sentences[0]
	assert.Equal(t, coord.New(0, 2), s.Start)
	assert.Equal(t, coord.East, s.Dir)
	assert.Equal(t, []coord.Coord{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}, s.Spine)
	// Per base: clockwise (south) run first, then counter-clockwise (north).
	assert.Equal(t, []coord.Coord{{X: 1, Y: 3}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 1}}, s.Modifiers)
	assert.Len(t, s.Cells(), 7)
}

func TestValidate_ErrorLocations(t *testing.T) {
	res := grammar.Validate(grid(t, "Snv\n.d.\n\nnSv"))
	require.Len(t, res.Errors, 3)

	var se *grammar.StructuralError
	require.ErrorAs(t, res.Errors[0], &se)
	assert.ErrorIs(t, se, grammar.ErrModifierMismatch)
	assert.Equal(t, coord.New(0, 0), se.Start)
	assert.Equal(t, []coord.Coord{{X: 1, Y: 0}, {X: 1, Y: 1}}, se.At)

	require.ErrorAs(t, res.Errors[1], &se)
	assert.ErrorIs(t, se, grammar.ErrNoDirection)
	assert.Equal(t, []coord.Coord{{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 0, Y: 3}}, se.At)

	require.ErrorAs(t, res.Errors[2], &se)
	assert.ErrorIs(t, se, grammar.ErrLeftover)
	assert.Equal(t, []coord.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}}, se.At)
}

func TestValidate_MovingFixesSentence(t *testing.T) {
	// The verb sits apart from its sentence; dragging it into place solves the board.
	g := grid(t, "Sn.\n...\n..v")
	require.False(t, grammar.Validate(g).Solved())

	idx, ok := g.FragmentAt(coord.New(2, 2))
	require.True(t, ok)
	held := board.Relative(g.Lift(idx), coord.New(2, 2))
	require.True(t, g.CanPlace(held, coord.New(2, 0)))
	g.Place(held, coord.New(2, 0))

	res := grammar.Validate(g)
	assert.True(t, res.Solved(), "errors: %v", res.Errors)
	assert.True(t, res.Covers(coord.New(2, 0)))
	assert.False(t, res.Covers(coord.New(2, 2)))
}

func TestStructuralError_Message(t *testing.T) {
	res := grammar.Validate(grid(t, "Sn"))
	require.Len(t, res.Errors, 2)
	assert.Equal(t,
		"grammar: unexpected token in sentence (sentence at (0,0)): subject does not accept end of sentence at: (2,0)",
		res.Errors[0].Error())
	assert.Equal(t,
		"grammar: leftover ungrammatical symbols at: (0,0) (1,0)",
		res.Errors[1].Error())
}
