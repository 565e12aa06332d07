// Package account rebuilds account numbers from bands of OCR glyph rows.
package account

import (
	"fmt"
	"strings"

	"bankocr/internal/glyph"
)

const (
	// Digits is the number of digit cells in one account band.
	Digits = 9
	// Width is the expected width of every glyph row.
	Width = Digits * glyph.Size
	// BandRows is the number of glyph rows per account.
	BandRows = glyph.Size
	// GroupRows is BandRows plus the separator row.
	GroupRows = BandRows + 1
)

// Account is a 9 character account number. Each character is a digit or
// glyph.Illegible.
type Account string

// Legible reports whether every digit of the account was recognised.
func (a Account) Legible() bool {
	return strings.IndexByte(string(a), glyph.Illegible) < 0
}

// Parse decodes one band of three glyph rows into an account number.
// Rows shorter than Width yield Illegible for the cells they cannot fill.
func Parse(rows [BandRows]string) Account {
	var b strings.Builder
	b.Grow(Digits)
	for i := 0; i < Digits; i++ {
		start := i * glyph.Size
		var g glyph.Glyph
		for r := range rows {
			g[r] = cell(rows[r], start)
		}
		b.WriteByte(glyph.Decode(g))
	}
	return Account(b.String())
}

// cell returns row[start:start+glyph.Size] clipped to the row length.
func cell(row string, start int) string {
	if start >= len(row) {
		return ""
	}
	end := min(start+glyph.Size, len(row))
	return row[start:end]
}

// Encode renders a digit string as three glyph rows, the inverse of Parse.
func Encode(number string) ([BandRows]string, error) {
	var rows [BandRows]strings.Builder
	for i := 0; i < len(number); i++ {
		g, ok := glyph.Render(number[i])
		if !ok {
			return [BandRows]string{}, fmt.Errorf("cannot encode %q at position %d", number[i], i)
		}
		for r := range rows {
			rows[r].WriteString(g[r])
		}
	}
	return [BandRows]string{rows[0].String(), rows[1].String(), rows[2].String()}, nil
}
