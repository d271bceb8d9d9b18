// Package roman encodes and decodes Roman numerals in [1, 3999], and
// builds the lazily-initialized table of all such encodings used by the
// Roman substitution generator. The table is derived algorithmically, not
// loaded from an embedded asset: there are only 3999 of them and encoding
// is cheap, so there is nothing to gain from shipping a data file.
package roman

import (
	"strings"
	"sync"

	"github.com/slugkit/slugkit-generator/errors"
)

// Min and Max bound the encodable range.
const (
	Min = 1
	Max = 3999
)

var symbols = []struct {
	value  int
	letter string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Encode returns the upper-case Roman numeral for n. n must be in
// [Min, Max].
func Encode(n int) (string, error) {
	if n < Min || n > Max {
		return "", errors.Errorf("roman: %d is out of range [%d, %d]", n, Min, Max)
	}

	var b strings.Builder
	for _, s := range symbols {
		for n >= s.value {
			b.WriteString(s.letter)
			n -= s.value
		}
	}
	return b.String(), nil
}

// Decode parses a Roman numeral (case-insensitive) and returns its
// integer value. It validates that the input is the canonical encoding
// of that value: malformed or non-canonical numerals are rejected.
func Decode(s string) (int, error) {
	if s == "" {
		return 0, errors.New("roman: empty input")
	}

	upper := strings.ToUpper(s)

	n := 0
	i := 0
	for _, sym := range symbols {
		for i+len(sym.letter) <= len(upper) && upper[i:i+len(sym.letter)] == sym.letter {
			n += sym.value
			i += len(sym.letter)
		}
	}

	if i != len(upper) {
		return 0, errors.Errorf("roman: %q is not a valid Roman numeral", s)
	}

	// Canonicalize: re-encoding n must reproduce upper exactly, which
	// rejects non-canonical forms like "IIII" that this greedy scan
	// would otherwise accept piecewise.
	canon, err := Encode(n)
	if err != nil || canon != upper {
		return 0, errors.Errorf("roman: %q is not a valid Roman numeral", s)
	}

	return n, nil
}

var (
	tableOnce sync.Once
	table     []string
)

// Table returns all Roman numerals for [Min, Max], in ascending numeric
// order, computed once per process.
func Table() []string {
	tableOnce.Do(func() {
		table = make([]string, 0, Max-Min+1)
		for n := Min; n <= Max; n++ {
			s, err := Encode(n)
			if err != nil {
				// unreachable: n is always in range by construction.
				panic(err)
			}
			table = append(table, s)
		}
	})
	return table
}

// FilterByMaxLength returns the subset of [Table] whose string length is
// <= maxLength, preserving ascending numeric order.
func FilterByMaxLength(maxLength int) []string {
	full := Table()
	out := make([]string, 0, len(full))
	for _, s := range full {
		if len(s) <= maxLength {
			out = append(out, s)
		}
	}
	return out
}
