package substitution

import (
	"math/big"
	"strings"

	"github.com/slugkit/slugkit-generator/dictionary"
	"github.com/slugkit/slugkit-generator/permute"
)

// EmojiGenerator emits a run of emoji drawn from a filtered emoji
// dictionary, per §4.4.5.
type EmojiGenerator struct {
	filtered           *dictionary.FilteredDictionary
	minCount, maxCount int
	unique             bool
	cumulative         []*big.Int
}

// NewEmojiGenerator returns an EmojiGenerator over filtered, producing
// between minCount and maxCount emoji per call. If unique, maxCount (and
// minCount, if it would otherwise exceed the clamped maxCount) is
// clamped to filtered.Len(), since a unique tuple can't be longer than
// the dictionary it's drawn from.
func NewEmojiGenerator(filtered *dictionary.FilteredDictionary, minCount, maxCount int, unique bool) *EmojiGenerator {
	if unique && maxCount > filtered.Len() {
		maxCount = filtered.Len()
	}
	if unique && minCount > maxCount {
		minCount = maxCount
	}

	g := &EmojiGenerator{filtered: filtered, minCount: minCount, maxCount: maxCount, unique: unique}

	cumulative := make([]*big.Int, maxCount-minCount+1)
	for k := range cumulative {
		count := minCount + k
		if unique {
			cumulative[k] = permute.UniquePermutationCount(filtered.Len(), count)
		} else {
			cumulative[k] = permute.PermutationCount(filtered.Len(), count)
		}
	}
	g.cumulative = cumulative

	return g
}

// Generate implements [Generator].
func (g *EmojiGenerator) Generate(seed32 uint32, seq uint64) string {
	count := g.minCount
	if g.minCount != g.maxCount {
		count = g.minCount + selectFromCumulative(g.cumulative, seed32, seq)
	}

	var indices []int
	if g.unique {
		indices = permute.SeededUniquePermutation(g.filtered.Len(), count, seed32, seq)
	} else {
		indices = permute.SeededNonUniquePermutation(g.filtered.Len(), count, seed32, seq)
	}

	var b strings.Builder
	for _, idx := range indices {
		b.WriteString(g.filtered.At(idx).Text())
	}
	return b.String()
}

// Capacity implements [Generator].
func (g *EmojiGenerator) Capacity() *big.Int {
	return sumBig(g.cumulative)
}

// MaxLength implements [Generator].
func (g *EmojiGenerator) MaxLength() int {
	return g.maxCount * g.filtered.MaxLength()
}
