package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bankocr/internal/account"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		account account.Account
		want    Status
		line    string
	}{
		{"345882865", OK, "345882865 OK"},
		{"000000000", OK, "000000000 OK"},
		{"333393193", ERR, "333393193 ERR"},
		{"490067715", ERR, "490067715 ERR"},
		{"86110??36", ILL, "86110??36 ILL"},
		{"?????????", ILL, "????????? ILL"},
		// Would pass the checksum if '?' were read as zero.
		{"?00000000", ILL, "?00000000 ILL"},
	}

	for _, tt := range tests {
		t.Run(string(tt.account), func(t *testing.T) {
			got := Classify(tt.account)
			assert.Equal(t, tt.account, got.Account)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, tt.line, got.String())
		})
	}
}

func TestAllAndLines_PreserveOrder(t *testing.T) {
	results := All([]account.Account{"333393193", "345882865", "1234?6789"})
	assert.Equal(t, []string{"333393193 ERR", "345882865 OK", "1234?6789 ILL"}, Lines(results))
}

func TestTally(t *testing.T) {
	tally := Count(All([]account.Account{"345882865", "000000000", "333393193", "12345678?"}))
	assert.Equal(t, Tally{OK: 2, ERR: 1, ILL: 1}, tally)
	assert.Equal(t, 4, tally.Total())
	assert.Equal(t, "4 accounts: 2 OK, 1 ERR, 1 ILL", tally.String())
	assert.Zero(t, Count(nil).Total())
}
