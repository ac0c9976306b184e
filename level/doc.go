// Package level turns a level document into an immutable Level.
//
// A document names the level, maps single characters to 5×5 glyph patterns
// and draws the board as text, one character per cell:
//
//	name = "Cats chase"
//	layout = """
//	S.c
//	..v
//	..d
//	"""
//	[symbols]
//	c = """..."""
//
// Build compiles every pattern with symbol.Parse, places one symbol per
// non-blank layout character, and splits the occupied cells into fragments:
// every maximal 4-connected region of symbols moves as one rigid piece.
//
// Documents decode from TOML (github.com/BurntSushi/toml) or YAML
// (gopkg.in/yaml.v3), chosen by file extension.
//
// Every error returned by this package wraps ErrFormat.
package level
