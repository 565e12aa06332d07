package classify

import "fmt"

// Tally counts results per status.
type Tally struct {
	OK  int `json:"ok"`
	ERR int `json:"err"`
	ILL int `json:"ill"`
}

// Add records one result.
func (t *Tally) Add(r Result) {
	switch r.Status {
	case OK:
		t.OK++
	case ERR:
		t.ERR++
	case ILL:
		t.ILL++
	}
}

// Total returns the number of results recorded.
func (t Tally) Total() int {
	return t.OK + t.ERR + t.ILL
}

func (t Tally) String() string {
	return fmt.Sprintf("%d accounts: %d OK, %d ERR, %d ILL", t.Total(), t.OK, t.ERR, t.ILL)
}

// Count builds a Tally over results.
func Count(results []Result) Tally {
	var t Tally
	for _, r := range results {
		t.Add(r)
	}
	return t
}
