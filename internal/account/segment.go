package account

import "strings"

// Lines splits raw input on '\n'. A trailing '\r' is dropped from each line
// so CRLF files segment like LF files.
func Lines(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Segment splits raw input into groups of GroupRows lines and parses the
// first BandRows lines of each group. The separator row is discarded
// without inspection. A trailing group with fewer than BandRows lines is
// dropped.
func Segment(raw string) []Account {
	bands := Bands(raw)
	accounts := make([]Account, 0, len(bands))
	for _, band := range bands {
		accounts = append(accounts, Parse(band))
	}
	return accounts
}

// Bands returns the glyph row bands of raw in input order.
func Bands(raw string) [][BandRows]string {
	lines := Lines(raw)
	var bands [][BandRows]string
	for i := 0; i+BandRows <= len(lines); i += GroupRows {
		bands = append(bands, [BandRows]string{lines[i], lines[i+1], lines[i+2]})
	}
	return bands
}

// Format renders accounts as an input file: each band followed by a blank
// separator row.
func Format(numbers ...string) (string, error) {
	var b strings.Builder
	for _, n := range numbers {
		rows, err := Encode(n)
		if err != nil {
			return "", err
		}
		for _, r := range rows {
			b.WriteString(r)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
