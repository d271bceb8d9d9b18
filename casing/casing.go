// Package casing applies Unicode-aware case transforms to generated
// words, using [golang.org/x/text/cases] rather than hand-rolled rune
// arithmetic. It was already a transitive dependency of the reference
// toolkit this module is built from; this package promotes it to a
// direct one and gives it a real job: selector substitution's
// upper/title rendering, and mixed-case bit-masking.
package casing

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mode is the case mode applied to a selected word.
type Mode int

const (
	// None leaves the word exactly as stored in the dictionary.
	None Mode = iota
	// Lower lowercases the word.
	Lower
	// Upper uppercases the word.
	Upper
	// Title capitalizes the word (first letter of each word uppercase,
	// the rest lowercase).
	Title
	// Mixed applies a per-character bitmask: see [ApplyMixed].
	Mixed
)

var (
	lowerCaser = cases.Lower(language.AmericanEnglish)
	upperCaser = cases.Upper(language.AmericanEnglish)
	titleCaser = cases.Title(language.AmericanEnglish)
)

// Apply applies mode to s. Mixed is not handled here: it needs a mask,
// see [ApplyMixed].
func Apply(mode Mode, s string) string {
	switch mode {
	case Lower:
		return lowerCaser.String(s)
	case Upper:
		return upperCaser.String(s)
	case Title:
		return titleCaser.String(s)
	default:
		return s
	}
}

// ApplyMixed applies mask bit-by-bit to s: bit k of mask selects the case
// of rune index k (0 = lowercase, 1 = uppercase). Runes beyond the
// mask's width keep their original case.
func ApplyMixed(mask uint64, s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i, r := range []rune(s) {
		if i >= 64 {
			b.WriteRune(r)
			continue
		}
		bit := (mask >> uint(i)) & 1
		if bit == 1 {
			b.WriteString(upperCaser.String(string(r)))
		} else {
			b.WriteString(lowerCaser.String(string(r)))
		}
	}

	return b.String()
}

// Infer derives the case_type of kind (a selector's dictionary-kind
// token) from its capitalization, using [golang.org/x/text/cases]
// comparisons rather than hand-rolled ASCII arithmetic: all lowercase ->
// Lower; all uppercase -> Upper; Title-cased -> Title; anything else ->
// Mixed.
func Infer(kind string) Mode {
	if kind == "" {
		return Lower
	}

	switch {
	case kind == lowerCaser.String(kind):
		return Lower
	case kind == upperCaser.String(kind):
		return Upper
	case kind == titleCaser.String(kind):
		return Title
	default:
		return Mixed
	}
}
