package level_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexigrid/level"
)

const tomlDoc = `
name = "Cats chase"
layout = """
Sn.
.v.
.n.
"""

[symbols]
S = """
#####
#...#
#...#
#...#
#####
"""
n = """
#####
..#.#
#...#
#.#..
#####
"""
v = """
#.###
#....
#.###
#...#
#####
"""
`

const yamlDoc = `
name: Cats chase
layout: |
  Sn.
  .v.
  .n.
symbols:
  S: |
    #####
    #...#
    #...#
    #...#
    #####
  n: |
    #####
    ..#.#
    #...#
    #.#..
    #####
  v: |
    #.###
    #....
    #.###
    #...#
    #####
`

func TestDecode_TOMLAndYAMLAgree(t *testing.T) {
	fromTOML, err := level.Decode("cats.toml", []byte(tomlDoc))
	require.NoError(t, err)
	fromYAML, err := level.Decode("cats.yaml", []byte(yamlDoc))
	require.NoError(t, err)

	assert.Equal(t, "Cats chase", fromTOML.Name)
	assert.Len(t, fromTOML.Symbols, 3)

	a, err := fromTOML.Build("cats")
	require.NoError(t, err)
	b, err := fromYAML.Build("cats")
	require.NoError(t, err)

	if diff := cmp.Diff(a.NewGrid().Cells(), b.NewGrid().Cells()); diff != "" {
		t.Errorf("TOML and YAML boards differ (-toml +yaml):\n%s", diff)
	}
	assert.Equal(t, a.NewGrid().Fragments(), b.NewGrid().Fragments())
	assert.Equal(t, 4, a.NewGrid().Len())
}

func TestDecode_Errors(t *testing.T) {
	_, err := level.Decode("cats.json", []byte("{}"))
	assert.ErrorIs(t, err, level.ErrUnsupportedFormat)

	_, err = level.Decode("cats.toml", []byte("name = "))
	assert.ErrorIs(t, err, level.ErrDecode)

	_, err = level.Decode("cats.yml", []byte("name: [unterminated"))
	assert.ErrorIs(t, err, level.ErrDecode)
	assert.ErrorIs(t, err, level.ErrFormat)
}

func TestDocument_KeyLength(t *testing.T) {
	cases := map[string]level.Document{
		"Empty": {Symbols: map[string]string{"": "#"}},
		"Long":  {Symbols: map[string]string{"ab": "#"}},
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := doc.Build("x")
			if !errors.Is(err, level.ErrKeyLength) {
				t.Errorf("Build error = %v; want ErrKeyLength", err)
			}
		})
	}

	// A multi-byte key is still one character.
	doc := level.Document{Symbols: map[string]string{"é": "#"}, Layout: "é"}
	lv, err := doc.Build("x")
	require.NoError(t, err)
	assert.Equal(t, 1, lv.NewGrid().Len())
}
