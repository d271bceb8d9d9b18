package errors

import (
	"testing"

	"go.akshayshah.org/attest"
)

func TestPatternSyntaxError(t *testing.T) {
	t.Parallel()

	t.Run("column is reported", func(t *testing.T) {
		t.Parallel()

		err := NewPatternSyntaxError(7, "unexpected token %q", "}")
		attest.Equal(t, err.Error(), `pattern syntax error at column 7: unexpected token "}"`)

		var gerr GeneratorError
		attest.True(t, As(err, &gerr))
	})

	t.Run("zero column is omitted", func(t *testing.T) {
		t.Parallel()

		err := NewPatternSyntaxError(0, "No matching words found for: %s", "noun")
		attest.Equal(t, err.Error(), "pattern syntax error: No matching words found for: noun")
	})
}

func TestSlugFormatError(t *testing.T) {
	t.Parallel()

	err := NewSlugFormatError(3, 2)
	attest.Equal(t, err.Want, 3)
	attest.Equal(t, err.Got, 2)
	attest.Equal(t, err.Error(), "slug format error: expected 3 substitutions, got 2")
}

func TestDictionaryError(t *testing.T) {
	t.Parallel()

	t.Run("with language", func(t *testing.T) {
		t.Parallel()

		err := NewDictionaryError("noun", "en", "empty word table")
		attest.Equal(t, err.Error(), "dictionary error (noun@en): empty word table")
	})

	t.Run("without language", func(t *testing.T) {
		t.Parallel()

		err := NewDictionaryError("emoji", "", "only %d words, need %d unique", 3, 5)
		attest.Equal(t, err.Error(), "dictionary error (emoji): only 3 words, need 5 unique")
	})
}
