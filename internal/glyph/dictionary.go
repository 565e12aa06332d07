package glyph

// dictionary maps flattened patterns (row1+row2+row3) to digits.
// The one is drawn with a centred stroke, matching the scanner output.
var dictionary = map[string]byte{
	" _ | ||_|": '0',
	"    |  | ": '1',
	" _  _||_ ": '2',
	" _  _| _|": '3',
	"   |_|  |": '4',
	" _ |_  _|": '5',
	" _ |_ |_|": '6',
	" _   |  |": '7',
	" _ |_||_|": '8',
	" _ |_| _|": '9',
}

var reverse = func() map[byte]string {
	m := make(map[byte]string, len(dictionary))
	for key, d := range dictionary {
		m[d] = key
	}
	return m
}()

// Patterns returns a copy of the dictionary keyed by flattened pattern.
func Patterns() map[string]byte {
	out := make(map[string]byte, len(dictionary))
	for k, v := range dictionary {
		out[k] = v
	}
	return out
}
