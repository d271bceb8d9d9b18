package dictionary

import (
	"sort"
	"strings"

	"github.com/slugkit/slugkit-generator/casing"
	"github.com/slugkit/slugkit-generator/errors"
)

// Dictionary is an immutable container of [Word]s of a single
// (kind, language), carrying a length index and a tag index built once
// at construction time, and an optional filtered-view cache.
type Dictionary struct {
	kind     string
	language string
	words    []Word

	// lengthIndex maps a word length to the sorted positions (into
	// words) of words of that length.
	lengthIndex map[int][]int
	lengths     []int // sorted ascending, for range queries.

	// tagIndex maps a tag to the positions (into words) of words
	// carrying that tag, in insertion order over the backing container.
	tagIndex map[string][]int
	allWords []int

	cache *filteredCache
}

// New builds a Dictionary of kind/language from words. If useCache is
// true, the dictionary keeps a striped filtered-view LRU (see
// [NewFilteredCache]); otherwise [Dictionary.Filter] recomputes on every
// call.
func New(kind, language string, words []Word, useCache bool) *Dictionary {
	d := &Dictionary{
		kind:        strings.ToLower(kind),
		language:    language,
		words:       words,
		lengthIndex: make(map[int][]int),
		tagIndex:    make(map[string][]int),
		allWords:    make([]int, len(words)),
	}

	for i, w := range words {
		d.allWords[i] = i

		l := w.Len()
		d.lengthIndex[l] = append(d.lengthIndex[l], i)

		for _, tag := range w.tags {
			d.tagIndex[tag] = append(d.tagIndex[tag], i)
		}
	}

	d.lengths = make([]int, 0, len(d.lengthIndex))
	for l := range d.lengthIndex {
		d.lengths = append(d.lengths, l)
	}
	sort.Ints(d.lengths)

	if useCache {
		d.cache = NewFilteredCache(0, 0)
	}

	return d
}

// Kind returns the dictionary's kind, lowercased.
func (d *Dictionary) Kind() string { return d.kind }

// Language returns the dictionary's language code.
func (d *Dictionary) Language() string { return d.language }

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int { return len(d.words) }

// MaxLength returns the length (in runes) of the longest word in the
// dictionary, or 0 if the dictionary is empty.
func (d *Dictionary) MaxLength() int {
	if len(d.lengths) == 0 {
		return 0
	}
	return d.lengths[len(d.lengths)-1]
}

// Filter returns the [FilteredDictionary] matching selector, consulting
// the cache if one is configured. The second return value is false if
// the selector's kind/language don't match this dictionary.
func (d *Dictionary) Filter(selector Selector) (*FilteredDictionary, bool) {
	if strings.ToLower(selector.Kind) != d.kind {
		return nil, false
	}
	if selector.Language != "" && selector.Language != d.language {
		return nil, false
	}

	if d.cache != nil {
		key := selector.Hash()
		if fd, ok := d.cache.Get(key); ok {
			return fd, true
		}
		fd := d.computeFilter(selector)
		d.cache.Add(key, fd)
		return fd, true
	}

	return d.computeFilter(selector), true
}

func (d *Dictionary) computeFilter(selector Selector) *FilteredDictionary {
	var positions []int

	switch {
	case len(selector.IncludeTags) == 0 && len(selector.ExcludeTags) == 0 && selector.SizeLimit == nil:
		positions = append([]int(nil), d.allWords...)

	case selector.SizeLimit == nil:
		positions = d.queryTags(selector.IncludeTags, selector.ExcludeTags)

	case len(selector.IncludeTags) == 0 && len(selector.ExcludeTags) == 0:
		positions = d.queryLength(*selector.SizeLimit)

	default:
		candidates := d.queryTags(selector.IncludeTags, selector.ExcludeTags)
		positions = make([]int, 0, len(candidates))
		for _, pos := range candidates {
			if selector.SizeLimit.Matches(d.words[pos].Len()) {
				positions = append(positions, pos)
			}
		}
	}

	maxLen := 0
	for _, pos := range positions {
		if l := d.words[pos].Len(); l > maxLen {
			maxLen = l
		}
	}

	return &FilteredDictionary{
		words:     d.words,
		positions: positions,
		caseMode:  selector.CaseType(),
		maxLength: maxLen,
	}
}

// queryTags intersects the include posting lists (smallest first) then
// subtracts the exclude posting lists, all via linear merge since every
// posting list is kept sorted by position.
func (d *Dictionary) queryTags(include, exclude []string) []int {
	if len(include) == 0 {
		result := append([]int(nil), d.allWords...)
		for _, tag := range exclude {
			result = setDifference(result, d.tagIndex[tag])
		}
		return result
	}

	lists := make([][]int, len(include))
	for i, tag := range include {
		lists[i] = d.tagIndex[tag]
	}
	sort.Slice(lists, func(i, j int) bool { return len(lists[i]) < len(lists[j]) })

	result := lists[0]
	for _, l := range lists[1:] {
		result = setIntersect(result, l)
	}

	for _, tag := range exclude {
		result = setDifference(result, d.tagIndex[tag])
	}

	return result
}

// queryLength returns the sorted positions of words whose length
// satisfies limit.
func (d *Dictionary) queryLength(limit SizeLimit) []int {
	var out []int
	for _, l := range d.lengths {
		if limit.Matches(l) {
			out = append(out, d.lengthIndex[l]...)
		}
	}
	sort.Ints(out)
	return out
}

func setIntersect(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

func setDifference(a, b []int) []int {
	out := make([]int, 0, len(a))
	i, j := 0, 0
	for i < len(a) {
		if j >= len(b) || a[i] < b[j] {
			out = append(out, a[i])
			i++
			continue
		}
		if a[i] == b[j] {
			i++
			j++
			continue
		}
		j++
	}
	return out
}

// FilteredDictionary is an immutable projection of a [Dictionary]: a
// shared reference to the parent's word slice, the positions selected
// from it, the effective case mode, and the maximum word length among
// the selected words.
type FilteredDictionary struct {
	words     []Word
	positions []int
	caseMode  casing.Mode
	maxLength int
}

// Len returns the number of words in the filtered view.
func (f *FilteredDictionary) Len() int { return len(f.positions) }

// MaxLength returns the maximum word length (in runes) among the
// filtered words.
func (f *FilteredDictionary) MaxLength() int { return f.maxLength }

// CaseMode returns the case mode that should be applied to words drawn
// from this view.
func (f *FilteredDictionary) CaseMode() casing.Mode { return f.caseMode }

// At returns the i-th word in the filtered view (i must be in
// [0, Len())).
func (f *FilteredDictionary) At(i int) Word {
	return f.words[f.positions[i]]
}

// Contains reports whether a word whose text is text is part of this
// filtered view. Used by this package's filter tests.
func (f *FilteredDictionary) Contains(text string) bool {
	for _, pos := range f.positions {
		if f.words[pos].text == text {
			return true
		}
	}
	return false
}

// Empty reports whether the filtered view contains no words.
func (f *FilteredDictionary) Empty() bool { return len(f.positions) == 0 }

// EmptyFilterError returns a pattern syntax error reporting that no
// words matched kind, mirroring the wording used by the reference
// suite's own error.
func EmptyFilterError(kind string) error {
	return errors.NewPatternSyntaxError(0, "No matching words found for: %s", kind)
}
