// Package dictionary owns the word lists a pattern's selectors draw from:
// words grouped by kind and language, indexed by length and by tag, with
// a cache of filtered sub-dictionaries keyed by selector.
package dictionary

// Word is a single dictionary entry. It is immutable once constructed;
// Tags is never mutated after [NewWord] returns.
type Word struct {
	text     string
	kind     string
	language string
	tags     []string
}

// NewWord returns a new Word. tags is copied so the caller's slice can be
// reused or mutated afterwards.
func NewWord(text, kind, language string, tags []string) Word {
	cp := make([]string, len(tags))
	copy(cp, tags)
	return Word{text: text, kind: kind, language: language, tags: cp}
}

// Text returns the word's literal text.
func (w Word) Text() string { return w.text }

// Kind returns the word's dictionary kind (e.g. "noun", "adjective").
func (w Word) Kind() string { return w.kind }

// Language returns the word's language code (e.g. "en").
func (w Word) Language() string { return w.language }

// Tags returns the word's tags in insertion order, not sorted. Callers
// that need a canonical order (e.g. for serialization) must sort the
// result themselves; this method preserves the order the original
// implementation's tag lists are iterated in, since other parts of this
// module depend on that order being stable and documented.
func (w Word) Tags() []string {
	cp := make([]string, len(w.tags))
	copy(cp, w.tags)
	return cp
}

// HasTag reports whether w carries tag.
func (w Word) HasTag(tag string) bool {
	for _, t := range w.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Len returns the length of the word's text, in runes.
func (w Word) Len() int {
	return len([]rune(w.text))
}
