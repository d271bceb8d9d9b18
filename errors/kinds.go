package errors

import "fmt"

// GeneratorError is implemented by every error kind this module returns.
// Callers that want to branch on "any error produced by this module" without
// enumerating PatternSyntaxError, SlugFormatError and DictionaryError can
// type-switch or errors.As against this interface instead.
type GeneratorError interface {
	error

	// generatorError is unexported so that only the types in this package
	// can implement GeneratorError.
	generatorError()
}

// PatternSyntaxError reports a malformed pattern source: an unknown token, an
// out-of-range numeric constant, conflicting include/exclude tags, an empty
// filtered dictionary for a selector, or an option conflict.
//
// Column is a 1-based character offset into the pattern source, or 0 when the
// error is not tied to a specific column (e.g. an empty-dictionary error
// raised during capacity planning rather than lexing).
type PatternSyntaxError struct {
	*stackError
	Column int
}

func (e *PatternSyntaxError) generatorError() {}

// NewPatternSyntaxError returns a PatternSyntaxError positioned at column.
func NewPatternSyntaxError(column int, format string, a ...any) *PatternSyntaxError {
	return &PatternSyntaxError{
		stackError: wrap(fmt.Sprintf(format, a...), nil, 3),
		Column:     column,
	}
}

func (e *PatternSyntaxError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("pattern syntax error at column %d: %s", e.Column, e.stackError.Error())
	}
	return fmt.Sprintf("pattern syntax error: %s", e.stackError.Error())
}

func (e *PatternSyntaxError) Unwrap() error {
	return e.stackError
}

// SlugFormatError reports that a formatter was handed a substitution count
// that does not match the pattern's placeholder count.
type SlugFormatError struct {
	*stackError
	Want, Got int
}

func (e *SlugFormatError) generatorError() {}

// NewSlugFormatError returns a SlugFormatError for a want/got count mismatch.
func NewSlugFormatError(want, got int) *SlugFormatError {
	return &SlugFormatError{
		stackError: wrap(fmt.Sprintf("expected %d substitutions, got %d", want, got), nil, 3),
		Want:       want,
		Got:        got,
	}
}

func (e *SlugFormatError) Error() string {
	return fmt.Sprintf("slug format error: %s", e.stackError.Error())
}

func (e *SlugFormatError) Unwrap() error {
	return e.stackError
}

// DictionaryError reports a problem detected by a dictionary loader or by the
// generator at runtime: a missing kind/language, a malformed word table, or
// an emoji dictionary too small to satisfy a `unique` selector.
type DictionaryError struct {
	*stackError
	Kind, Language string
}

func (e *DictionaryError) generatorError() {}

// NewDictionaryError returns a DictionaryError for the given kind/language.
func NewDictionaryError(kind, language, format string, a ...any) *DictionaryError {
	return &DictionaryError{
		stackError: wrap(fmt.Sprintf(format, a...), nil, 3),
		Kind:       kind,
		Language:   language,
	}
}

func (e *DictionaryError) Error() string {
	if e.Language != "" {
		return fmt.Sprintf("dictionary error (%s@%s): %s", e.Kind, e.Language, e.stackError.Error())
	}
	return fmt.Sprintf("dictionary error (%s): %s", e.Kind, e.stackError.Error())
}

func (e *DictionaryError) Unwrap() error {
	return e.stackError
}
