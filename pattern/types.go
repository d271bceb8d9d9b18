// Package pattern lexes and parses the slug pattern DSL into a sequence
// of placeholders interleaved with literal text, and provides the
// canonical string form and complexity cost of a parsed pattern.
package pattern

import (
	"github.com/slugkit/slugkit-generator/dictionary"
)

// NumberBase is the numeral base a {number:...} placeholder renders in.
type NumberBase int

// The number placeholder's supported bases.
const (
	BaseDec NumberBase = iota
	BaseHex
	BaseHexUpper
	BaseRoman
	BaseRomanUpper
)

// NumberGen is the parsed form of a {number:...} / {num:...} placeholder.
type NumberGen struct {
	MaxLength int
	Base      NumberBase
}

// SpecialCharGen is the parsed form of a {special:...} / {spec:...}
// placeholder.
type SpecialCharGen struct {
	MinLength int
	MaxLength int
}

// EmojiGen is the parsed form of an {emoji...} placeholder.
type EmojiGen struct {
	IncludeTags []string
	ExcludeTags []string
	MinCount    int
	MaxCount    int
	Unique      bool
	Tone        string
	Gender      string
}

// PlaceholderKind discriminates which variant a [Placeholder] holds.
type PlaceholderKind int

// The four placeholder variants the grammar supports.
const (
	KindSelector PlaceholderKind = iota
	KindNumber
	KindSpecial
	KindEmoji
)

// Placeholder is one parsed `{...}` term. Exactly one of the typed
// fields is meaningful, selected by Kind.
type Placeholder struct {
	Kind     PlaceholderKind
	Selector dictionary.Selector
	Number   NumberGen
	Special  SpecialCharGen
	Emoji    EmojiGen
}

// GlobalSettings is the parsed form of a trailing `[...]` section. It is
// applied only to selector placeholders that are missing the
// corresponding aspect.
type GlobalSettings struct {
	Language    string
	IncludeTags []string
	ExcludeTags []string
	SizeLimit   *dictionary.SizeLimit
}

// Pattern is an immutable parsed pattern: a sequence of placeholders
// interleaved with the literal text chunks that surround them, such that
// len(Chunks) == len(Placeholders)+1.
type Pattern struct {
	source       string
	Chunks       []string
	Placeholders []Placeholder
	Global       *GlobalSettings
}

// Source returns the original pattern text the Pattern was parsed from.
func (p *Pattern) Source() string { return p.source }
