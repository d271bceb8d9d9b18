package substitution

import (
	"math/big"
	"strings"

	"github.com/slugkit/slugkit-generator/permute"
	"github.com/slugkit/slugkit-generator/roman"
)

// RomanGenerator emits a Roman numeral drawn from the subset of
// [roman.Table] whose rendered length fits maxLength, per §4.4.3.
type RomanGenerator struct {
	table     []string
	lowercase bool
}

// NewRomanGenerator returns a RomanGenerator over the numerals of
// [roman.Table] no longer than maxLength. lowercase selects the
// lowercase rendering (base "roman" rather than "ROMAN").
func NewRomanGenerator(maxLength int, lowercase bool) *RomanGenerator {
	return &RomanGenerator{table: roman.FilterByMaxLength(maxLength), lowercase: lowercase}
}

// Generate implements [Generator].
func (g *RomanGenerator) Generate(seed32 uint32, seq uint64) string {
	i := permute.Permute(uint64(len(g.table)), seed32, seq)
	numeral := g.table[i]
	if g.lowercase {
		return strings.ToLower(numeral)
	}
	return numeral
}

// Capacity implements [Generator].
func (g *RomanGenerator) Capacity() *big.Int {
	return big.NewInt(int64(len(g.table)))
}

// MaxLength implements [Generator].
func (g *RomanGenerator) MaxLength() int {
	maxLen := 0
	for _, s := range g.table {
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}
	return maxLen
}
