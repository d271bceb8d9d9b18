package substitution

import (
	"math/big"

	"github.com/slugkit/slugkit-generator/permute"
)

// alphabet is the fixed 32-symbol special-character set (§4.4.4). It
// contains two '?' entries by design: the table was kept as-is for
// compatibility with the reference implementation it was ported from,
// which doubles '?'s selection probability relative to every other
// symbol.
const alphabet = `!@#$%^&*()_+-=[]{}|;:,.<>?'"~/\?`

const alphabetBits = 5 // len(alphabet) == 32 == 1<<5.

// SpecialGenerator emits a run of characters drawn from [alphabet], per
// §4.4.4.
type SpecialGenerator struct {
	minLength, maxLength int
	cumulative           []*big.Int
}

// NewSpecialGenerator returns a SpecialGenerator whose output length
// ranges over [minLength, maxLength].
func NewSpecialGenerator(minLength, maxLength int) *SpecialGenerator {
	return &SpecialGenerator{
		minLength:  minLength,
		maxLength:  maxLength,
		cumulative: buildCumulative(minLength, maxLength, alphabetBits),
	}
}

// buildCumulative returns cumulative[k] = 2^(unitBits*(min+k)) for
// k in [0, max-min], the special-char generator's length-selection table
// (§4.4.4). The emoji generator builds its own table from permutation
// counts; both are read by [selectFromCumulative].
func buildCumulative(min, max, unitBits int) []*big.Int {
	out := make([]*big.Int, max-min+1)
	for k := range out {
		out[k] = new(big.Int).Lsh(big.NewInt(1), uint(unitBits*(min+k)))
	}
	return out
}

// selectFromCumulative permutes seq through the range [0,
// cumulative[last]) and returns the smallest index k such that the
// permuted value is less than cumulative[k].
func selectFromCumulative(cumulative []*big.Int, seed32 uint32, seq uint64) int {
	last := cumulative[len(cumulative)-1]

	var p *big.Int
	if last.IsUint64() {
		p = new(big.Int).SetUint64(permute.Permute(last.Uint64(), seed32, seq))
	} else {
		// Domain too large for a 64-bit permutation; reduce directly.
		p = new(big.Int).Mod(new(big.Int).SetUint64(seq), last)
	}

	for k, c := range cumulative {
		if p.Cmp(c) < 0 {
			return k
		}
	}
	return len(cumulative) - 1
}

func sumBig(vs []*big.Int) *big.Int {
	sum := new(big.Int)
	for _, v := range vs {
		sum.Add(sum, v)
	}
	return sum
}

// Generate implements [Generator].
func (g *SpecialGenerator) Generate(seed32 uint32, seq uint64) string {
	length := g.minLength
	if g.minLength != g.maxLength {
		length = g.minLength + selectFromCumulative(g.cumulative, seed32, seq)
	}

	domain := uint64(1) << uint(alphabetBits*length)
	value := permute.Permute(domain, seed32, seq)

	out := make([]byte, length)
	for i := 0; i < length; i++ {
		idx := (value >> uint(alphabetBits*i)) & 0x1f
		out[i] = alphabet[idx]
	}
	return string(out)
}

// Capacity implements [Generator].
func (g *SpecialGenerator) Capacity() *big.Int {
	return sumBig(g.cumulative)
}

// MaxLength implements [Generator].
func (g *SpecialGenerator) MaxLength() int { return g.maxLength }
