// Package symbol classifies 5×5 glyph bitmaps into parts of speech.
//
// A glyph is stored as a 25-bit code: bit (row*5 + column) is set when that
// cell is filled, rows and columns counted from the top-left of the pattern
// as written. Classify maps a code to a Category:
//
//   - two reserved codes are particles: StartCode (hollow square) and
//     CollateCode (hollow square with a center dot);
//   - any other bitmap that is unchanged by a 180° rotation is a Noun,
//     every other bitmap is a Verb;
//   - Islands counts the 4-connected components of filled cells and Depth
//     counts the components made of a single cell.
//
// Depth 0 glyphs may sit on a sentence spine; depth 1 glyphs are modifiers
// of a spine glyph with the same kind and island count. Deeper glyphs can be
// drawn but never fit the grammar.
//
// Errors:
//
//   - ErrTooManyLines: a pattern has more than 5 lines.
//   - ErrLineTooLong: a pattern line has more than 5 characters.
package symbol
