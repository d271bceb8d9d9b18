package substitution

import (
	"math/big"
	"unicode/utf8"

	"github.com/slugkit/slugkit-generator/casing"
	"github.com/slugkit/slugkit-generator/dictionary"
	"github.com/slugkit/slugkit-generator/permute"
)

// SelectorGenerator draws a word from a filtered dictionary view, per
// §4.4.1. selectedSize is normally the view's length, but the pattern
// composer may substitute the largest prime below it (a "prime
// downshift") when doing so raises the pattern's overall capacity.
// Generate draws positions from [0, selectedSize) only, so after a
// downshift the words at positions selectedSize and above are never
// selected.
type SelectorGenerator struct {
	filtered     *dictionary.FilteredDictionary
	selectedSize uint64
}

// NewSelectorGenerator returns a SelectorGenerator over filtered, using
// selectedSize as the operative permutation domain.
func NewSelectorGenerator(filtered *dictionary.FilteredDictionary, selectedSize uint64) *SelectorGenerator {
	return &SelectorGenerator{filtered: filtered, selectedSize: selectedSize}
}

// Generate implements [Generator].
func (g *SelectorGenerator) Generate(seed32 uint32, seq uint64) string {
	i := permute.Permute(g.selectedSize, seed32, seq)
	word := g.filtered.At(int(i) % g.filtered.Len())

	switch g.filtered.CaseMode() {
	case casing.Upper:
		return casing.Apply(casing.Upper, word.Text())
	case casing.Title:
		return casing.Apply(casing.Title, word.Text())
	case casing.Mixed:
		return g.applyMixedCase(word.Text(), seed32, seq)
	default: // Lower, None: returned exactly as stored.
		return word.Text()
	}
}

// applyMixedCase computes the case mask over the filtered view's
// maximum word length, not word's own length, so that a word's case
// pattern depends only on (seed32, seq), never on which word happened
// to be selected.
func (g *SelectorGenerator) applyMixedCase(word string, seed32 uint32, seq uint64) string {
	l := g.filtered.MaxLength()
	if l < 2 {
		l = 2
	}

	var mask uint64
	if l >= 64 {
		mask = permute.PermutePowerOf2(0, seed32, seq)
	} else {
		mask = permute.PermutePowerOf2(uint64(1)<<uint(l), seed32, seq)
	}

	return casing.ApplyMixed(mask, word)
}

// Capacity implements [Generator].
func (g *SelectorGenerator) Capacity() *big.Int {
	return new(big.Int).SetUint64(g.selectedSize)
}

// MaxLength implements [Generator]. Upper/title/mixed casing can widen
// a word's UTF-8 encoding relative to its rune count (e.g. 'ß' -> "SS"
// under some casers), so the rune-count bound is scaled by the maximum
// UTF-8 sequence length to stay a safe upper bound.
func (g *SelectorGenerator) MaxLength() int {
	return g.filtered.MaxLength() * utf8.UTFMax
}
