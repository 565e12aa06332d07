// Package glyph decodes the 3x3 seven-segment style glyphs produced by the
// bank's scanning machine into decimal digit characters.
//
// A glyph is drawn with three symbols only: space, underscore and pipe.
// Patterns that are not in the dictionary decode to Illegible rather than
// failing, so damaged scans surface as '?' in the account number.
package glyph

import "strings"

// Size is the width and height of one glyph cell.
const Size = 3

// Illegible marks a glyph that does not match any dictionary pattern.
const Illegible byte = '?'

// Glyph is one digit cell: three rows, each nominally Size characters wide.
// Rows taken from short input lines may be narrower; such glyphs never match.
type Glyph [Size]string

// Key flattens the glyph row-major into the dictionary lookup key.
func (g Glyph) Key() string {
	return g[0] + g[1] + g[2]
}

// String renders the glyph as three newline separated rows.
func (g Glyph) String() string {
	return strings.Join(g[:], "\n")
}

// Decode returns the digit character for g, or Illegible when the pattern
// is unknown.
func Decode(g Glyph) byte {
	if d, ok := dictionary[g.Key()]; ok {
		return d
	}
	return Illegible
}

// Render returns the canonical glyph for a digit character.
func Render(digit byte) (Glyph, bool) {
	key, ok := reverse[digit]
	if !ok {
		return Glyph{}, false
	}
	return Glyph{key[0:3], key[3:6], key[6:9]}, true
}
