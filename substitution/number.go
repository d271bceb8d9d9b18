package substitution

import (
	"fmt"
	"math/big"

	"github.com/slugkit/slugkit-generator/permute"
)

// NumberBase selects the rendering of a [NumberGenerator]'s output.
// Roman rendering is handled by [RomanGenerator], not this type — see
// §4.4.3.
type NumberBase int

// The bases NumberGenerator renders directly: decimal, and hexadecimal in
// lower or upper case.
const (
	Dec NumberBase = iota
	Hex
	HexUpper
)

// NumberGenerator emits a zero-padded decimal or hexadecimal number, per
// §4.4.2.
type NumberGenerator struct {
	maxLength int
	base      NumberBase
	capacity  *big.Int
}

// NewNumberGenerator returns a NumberGenerator of maxLength digits in
// base.
func NewNumberGenerator(maxLength int, base NumberBase) *NumberGenerator {
	var capacity *big.Int
	switch base {
	case Hex, HexUpper:
		if maxLength == 16 {
			capacity = new(big.Int).Lsh(big.NewInt(1), 64)
		} else {
			capacity = new(big.Int).Lsh(big.NewInt(1), uint(4*maxLength))
		}
	default:
		capacity = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(maxLength)), nil)
	}

	return &NumberGenerator{maxLength: maxLength, base: base, capacity: capacity}
}

// Generate implements [Generator].
func (g *NumberGenerator) Generate(seed32 uint32, seq uint64) string {
	n := g.permuteValue(seed32, seq)

	switch g.base {
	case Hex:
		return fmt.Sprintf("%0*x", g.maxLength, n)
	case HexUpper:
		return fmt.Sprintf("%0*X", g.maxLength, n)
	default:
		return fmt.Sprintf("%0*d", g.maxLength, n)
	}
}

// permuteValue permutes seq through g.capacity, falling back to
// [permute.Permute]'s full 64-bit domain (n == 0) when the capacity
// doesn't fit in a uint64 (16-digit hex, the 2^64 case).
func (g *NumberGenerator) permuteValue(seed32 uint32, seq uint64) uint64 {
	if g.capacity.IsUint64() {
		return permute.Permute(g.capacity.Uint64(), seed32, seq)
	}
	return permute.Permute(0, seed32, seq)
}

// Capacity implements [Generator].
func (g *NumberGenerator) Capacity() *big.Int { return new(big.Int).Set(g.capacity) }

// MaxLength implements [Generator].
func (g *NumberGenerator) MaxLength() int { return g.maxLength }
