package dictionary

// KindData is the already-decoded shape of one dictionary kind, matching
// the input-format contract a JSON or YAML loader would produce:
// {language, words: {word: [tag...]}}. Serialization is out of scope for
// this package (§4.3.2): callers decode their own documents with
// whichever library they choose and hand the result to [LoadKindMap].
type KindData struct {
	Language string
	Words    map[string][]string
}

// LoadKindMap builds a [Set] from an already-decoded kind -> KindData
// map. It returns a [DictionaryError] on any structural problem: an
// empty kind name, a kind with no words, or a duplicate word within one
// kind/language pair.
func LoadKindMap(data map[string]KindData, useCache bool) (*Set, error) {
	set := NewSet("")

	for kind, kd := range data {
		if kind == "" {
			return nil, NewEmptyKindError(kd.Language)
		}
		if len(kd.Words) == 0 {
			return nil, NewEmptyDictionaryError(kind, kd.Language)
		}

		words := make([]Word, 0, len(kd.Words))
		seen := make(map[string]bool, len(kd.Words))
		for text, tags := range kd.Words {
			if seen[text] {
				return nil, NewDuplicateWordError(kind, kd.Language, text)
			}
			seen[text] = true
			words = append(words, NewWord(text, kind, kd.Language, tags))
		}

		set.Add(New(kind, kd.Language, words, useCache))
	}

	return set, nil
}
