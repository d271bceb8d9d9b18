package casing

import (
	"testing"

	"go.akshayshah.org/attest"
)

func TestApply(t *testing.T) {
	t.Parallel()

	attest.Equal(t, Apply(None, "Noun"), "Noun")
	attest.Equal(t, Apply(Lower, "Noun"), "noun")
	attest.Equal(t, Apply(Upper, "noun"), "NOUN")
	attest.Equal(t, Apply(Title, "noun phrase"), "Noun Phrase")
}

func TestApplyMixed(t *testing.T) {
	t.Parallel()

	// bit 0 = 'n' -> upper, bit 1 = 'o' -> lower, bit 2 = 'u' -> upper, bit 3 = 'n' -> lower
	got := ApplyMixed(0b0101, "noun")
	attest.Equal(t, got, "NoUn")
}

func TestInfer(t *testing.T) {
	t.Parallel()

	attest.Equal(t, Infer("noun"), Lower)
	attest.Equal(t, Infer("NOUN"), Upper)
	attest.Equal(t, Infer("Noun"), Title)
	attest.Equal(t, Infer("nOun"), Mixed)
	attest.Equal(t, Infer(""), Lower)
}
