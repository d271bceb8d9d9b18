package substitution

import (
	"testing"

	"github.com/slugkit/slugkit-generator/dictionary"
	"go.akshayshah.org/attest"
)

func testFiltered(t *testing.T, kind string, words ...string) *dictionary.FilteredDictionary {
	t.Helper()

	ws := make([]dictionary.Word, len(words))
	for i, w := range words {
		ws[i] = dictionary.NewWord(w, kind, "en", nil)
	}
	d := dictionary.New(kind, "en", ws, false)
	sel, err := dictionary.NewSelector(kind, "en", nil, nil, nil, nil)
	attest.Ok(t, err)

	fd, ok := d.Filter(sel)
	attest.True(t, ok)
	return fd
}

func TestSelectorGeneratorDeterministic(t *testing.T) {
	t.Parallel()

	fd := testFiltered(t, "noun", "noun1", "noun2", "noun3", "noun4", "noun5")
	g := NewSelectorGenerator(fd, uint64(fd.Len()))

	a := g.Generate(42, 7)
	b := g.Generate(42, 7)
	attest.Equal(t, a, b)
}

func TestSelectorGeneratorBijective(t *testing.T) {
	t.Parallel()

	fd := testFiltered(t, "noun", "noun1", "noun2", "noun3", "noun4", "noun5")
	g := NewSelectorGenerator(fd, uint64(fd.Len()))

	seen := make(map[string]bool)
	for seq := uint64(0); seq < uint64(fd.Len()); seq++ {
		seen[g.Generate(123, seq)] = true
	}
	attest.Equal(t, len(seen), fd.Len())
}

func TestSelectorGeneratorCapacity(t *testing.T) {
	t.Parallel()

	fd := testFiltered(t, "noun", "a", "b", "c")
	g := NewSelectorGenerator(fd, uint64(fd.Len()))
	attest.Equal(t, g.Capacity().Int64(), int64(3))
}
