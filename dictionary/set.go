package dictionary

import (
	"context"
	"strings"

	"github.com/slugkit/slugkit-generator/config"
	"github.com/slugkit/slugkit-generator/xcontext"
)

// Set maps "kind[-language]" to a [Dictionary], and tracks which kinds
// are declared language-agnostic (keyed by kind alone).
type Set struct {
	byKey        map[string]*Dictionary
	languageless map[string]*Dictionary
	defaultLang  string
}

// NewSet returns a new Set from dictionaries, using defaultLanguage as
// the language assumed for a selector that doesn't name one explicitly.
// If defaultLanguage is empty, [config.DefaultLanguage] is used.
func NewSet(defaultLanguage string, dictionaries ...*Dictionary) *Set {
	if defaultLanguage == "" {
		defaultLanguage = config.DefaultLanguage
	}

	s := &Set{
		byKey:        make(map[string]*Dictionary),
		languageless: make(map[string]*Dictionary),
		defaultLang:  defaultLanguage,
	}
	for _, d := range dictionaries {
		s.Add(d)
	}
	return s
}

// Add registers d into the set, keyed by its kind and language. A
// dictionary whose language is empty is treated as language-agnostic: it
// is keyed by kind alone and served for any requested language that has
// no more specific dictionary.
func (s *Set) Add(d *Dictionary) {
	if d.language == "" {
		s.languageless[d.kind] = d
		return
	}
	s.byKey[compositeKey(d.kind, d.language)] = d
}

func compositeKey(kind, language string) string {
	return strings.ToLower(kind) + "-" + language
}

// Filter resolves selector against the set: if a language-specific
// dictionary exists for selector's (kind, language-or-default), it is
// preferred; otherwise the kind's language-agnostic dictionary, if any,
// is used.
func (s *Set) Filter(selector Selector) (*FilteredDictionary, bool) {
	lang := selector.Language
	if lang == "" {
		lang = s.defaultLang
	}

	kind := strings.ToLower(selector.Kind)

	if d, ok := s.byKey[compositeKey(kind, lang)]; ok {
		return d.Filter(selector)
	}
	if d, ok := s.languageless[kind]; ok {
		return d.Filter(selector)
	}
	return nil, false
}

// WarmAsync walks every dictionary known to the set and, for each,
// primes its filtered-view cache for selector, running in a background
// goroutine whose context is detached from ctx via [xcontext.Detach] so
// the caller canceling ctx immediately after calling WarmAsync does not
// abort work already in flight.
func (s *Set) WarmAsync(ctx context.Context, selector Selector) {
	_ = xcontext.Detach(ctx) // keeps any request-scoped values reachable; never cancels.
	go func() {
		for _, d := range s.byKey {
			d.Filter(selector)
		}
		for _, d := range s.languageless {
			d.Filter(selector)
		}
	}()
}
