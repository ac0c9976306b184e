// Package lexigrid is a puzzle engine for a visual language written in
// 5×5 pixel glyphs on a square grid.
//
// Every glyph is classified from its pixels alone: two sentinels are
// particles, any other glyph is a noun (left/right mirror symmetric) or a
// verb, and its island and single-pixel counts decide what it may modify.
// A level is solved when every glyph on the board belongs to a sentence
// that reads from a start particle in a straight line and obeys the
// grammar, with modifiers stacked beside the words they describe.
//
// Packages, bottom-up:
//
//	coord/      integer cell coordinates, directions and rotations
//	gridgraph/  4/8-connected grids and flood-fill components
//	symbol/     glyph patterns, classification and the glyph atlas
//	board/      the grid of placed glyphs, partitioned into fragments
//	level/      level documents (TOML or YAML) and board construction
//	grammar/    sentence recognition and structural errors
//	catalog/    loading a manifest of levels from a directory
//	session/    picking, dropping and checking on a working board
//	config/     environment and .env settings
//
// The pure packages (coord, gridgraph, symbol, board, grammar) do no I/O
// and do not log. catalog, session and config log through zerolog.
package lexigrid
