// Package classify labels decoded account numbers as OK, ERR or ILL.
package classify

import (
	"fmt"

	"bankocr/internal/account"
	"bankocr/internal/checksum"
)

// Status is the outcome label for one account.
type Status string

const (
	OK  Status = "OK"  // all digits legible and checksum valid
	ERR Status = "ERR" // all digits legible, checksum invalid
	ILL Status = "ILL" // at least one digit illegible
)

// Result pairs an account with its status.
type Result struct {
	Account account.Account
	Status  Status
}

// String formats the result as an output line: "<account> <status>".
func (r Result) String() string {
	return fmt.Sprintf("%s %s", r.Account, r.Status)
}

// Classify checks legibility first and only then the checksum, so the
// checksum is never computed over an illegible digit.
func Classify(a account.Account) Result {
	switch {
	case !a.Legible():
		return Result{Account: a, Status: ILL}
	case checksum.Valid(string(a)):
		return Result{Account: a, Status: OK}
	default:
		return Result{Account: a, Status: ERR}
	}
}

// All classifies accounts in order.
func All(accounts []account.Account) []Result {
	results := make([]Result, len(accounts))
	for i, a := range accounts {
		results[i] = Classify(a)
	}
	return results
}

// Lines formats results as output lines.
func Lines(results []Result) []string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = r.String()
	}
	return lines
}
