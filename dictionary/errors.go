package dictionary

import "github.com/slugkit/slugkit-generator/errors"

// NewEmptyKindError reports that a structured loader entry had an empty
// kind name.
func NewEmptyKindError(language string) error {
	return errors.NewDictionaryError("", language, "kind name must not be empty")
}

// NewEmptyDictionaryError reports that kind/language had no words.
func NewEmptyDictionaryError(kind, language string) error {
	return errors.NewDictionaryError(kind, language, "dictionary has no words")
}

// NewDuplicateWordError reports that word appears twice within
// kind/language.
func NewDuplicateWordError(kind, language, word string) error {
	return errors.NewDictionaryError(kind, language, "duplicate word %q", word)
}
