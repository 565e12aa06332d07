package account

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zeros = "" +
	" _  _  _  _  _  _  _  _  _ \n" +
	"| || || || || || || || || |\n" +
	"|_||_||_||_||_||_||_||_||_|\n" +
	"\n"

func band(t *testing.T, number string) [BandRows]string {
	t.Helper()
	rows, err := Encode(number)
	require.NoError(t, err)
	return rows
}

func TestParse_AllDigits(t *testing.T) {
	for _, n := range []string{"000000000", "123456789", "345882865", "333393193", "490067715"} {
		assert.Equal(t, Account(n), Parse(band(t, n)), n)
	}
}

func TestParse_LiteralZeros(t *testing.T) {
	lines := strings.Split(zeros, "\n")
	got := Parse([BandRows]string{lines[0], lines[1], lines[2]})
	assert.Equal(t, Account("000000000"), got)
	assert.True(t, got.Legible())
}

func TestParse_ShortLines(t *testing.T) {
	rows := band(t, "123456789")
	for r := range rows {
		rows[r] = rows[r][:20]
	}

	got := Parse(rows)
	require.Len(t, string(got), Digits)
	assert.Equal(t, Account("123456???"), got)
	assert.False(t, got.Legible())
}

func TestParse_EmptyLines(t *testing.T) {
	assert.Equal(t, Account("?????????"), Parse([BandRows]string{}))
}

func TestParse_LongLinesIgnoreTail(t *testing.T) {
	rows := band(t, "111111111")
	for r := range rows {
		rows[r] += " | junk"
	}
	assert.Equal(t, Account("111111111"), Parse(rows))
}

func TestParse_DamagedCell(t *testing.T) {
	rows := band(t, "888888888")
	mid := []byte(rows[1])
	mid[3] = ' '
	rows[1] = string(mid)
	assert.Equal(t, Account("8?8888888"), Parse(rows))
}

func TestSegment_ZerosWithSeparator(t *testing.T) {
	assert.Equal(t, []Account{"000000000"}, Segment(zeros))
}

func TestSegment_PreservesOrder(t *testing.T) {
	raw, err := Format("345882865", "333393193", "000000000")
	require.NoError(t, err)

	want := []Account{"345882865", "333393193", "000000000"}
	if diff := cmp.Diff(want, Segment(raw)); diff != "" {
		t.Errorf("Segment() mismatch (-want +got):\n%s", diff)
	}
}

func TestSegment_Idempotent(t *testing.T) {
	raw, err := Format("123456789", "490067715")
	require.NoError(t, err)
	if diff := cmp.Diff(Segment(raw), Segment(raw)); diff != "" {
		t.Errorf("second run differs:\n%s", diff)
	}
}

func TestSegment_TrailingPartialGroup(t *testing.T) {
	full, err := Format("123456789")
	require.NoError(t, err)
	rows := band(t, "987654321")

	tests := []struct {
		name string
		raw  string
		want []Account
	}{
		{"empty", "", []Account{}},
		{"one dangling row", full + rows[0], []Account{"123456789"}},
		{"two dangling rows", full + rows[0] + "\n" + rows[1], []Account{"123456789"}},
		{"band without separator", full + strings.Join(rows[:], "\n"), []Account{"123456789", "987654321"}},
		{"no trailing newline", strings.TrimSuffix(full, "\n\n"), []Account{"123456789"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segment(tt.raw))
		})
	}
}

func TestSegment_SeparatorNotInspected(t *testing.T) {
	rows := band(t, "345882865")
	raw := strings.Join(rows[:], "\n") + "\nnot blank at all\n" + strings.Join(rows[:], "\n")
	assert.Equal(t, []Account{"345882865", "345882865"}, Segment(raw))
}

func TestSegment_CRLF(t *testing.T) {
	raw := strings.ReplaceAll(zeros, "\n", "\r\n")
	assert.Equal(t, []Account{"000000000"}, Segment(raw))
}

func TestEncode_RejectsUnknown(t *testing.T) {
	_, err := Encode("12a")
	assert.Error(t, err)
	_, err = Format("000000000", "?")
	assert.Error(t, err)
}
