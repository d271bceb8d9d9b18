// Package substitution implements the five placeholder-variant
// generators the pattern composer assembles into a full slug generator:
// selector (dictionary word), number, Roman numeral, special-character,
// and emoji. Every generator implements the same small [Generator]
// interface so the composer can treat them uniformly.
//
// The special-character alphabet is a fixed 32-symbol ASCII set with a
// deliberately duplicated '?' (kept for compatibility with the
// reference table this module's alphabet was ported from; it doubles
// '?'s selection probability relative to every other symbol).
package substitution

import "math/big"

// Generator is a stateless placeholder-variant generator: given a
// 32-bit per-call seed and a sequence number, it deterministically
// produces one substitution string. Capacity and MaxLength are fixed at
// construction time.
type Generator interface {
	// Generate returns the substitution for (seed32, seq).
	Generate(seed32 uint32, seq uint64) string
	// Capacity returns the period of Generate over seq, for a fixed
	// seed32.
	Capacity() *big.Int
	// MaxLength returns a safe upper bound, in bytes, on the length of
	// any string Generate can return.
	MaxLength() int
}
