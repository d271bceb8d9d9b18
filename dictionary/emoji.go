package dictionary

import (
	"fmt"

	"github.com/slugkit/slugkit-generator/internal/emojidata"
)

// LoadEmojiDictionary builds the language-agnostic "emoji" dictionary
// from the curated emoji table (see [internal/emojidata]). Tone and
// gender facets are folded into the word's tag set as "tone:<value>"/
// "gender:<value>" so they can be filtered through the same tag index as
// every other dictionary, rather than needing bespoke filtering code.
func LoadEmojiDictionary(useCache bool) *Dictionary {
	entries := emojidata.Entries()
	words := make([]Word, 0, len(entries))

	for _, e := range entries {
		tags := append([]string(nil), e.Tags...)
		if e.Tone != "" {
			tags = append(tags, fmt.Sprintf("tone:%s", e.Tone))
		}
		if e.Gender != "" {
			tags = append(tags, fmt.Sprintf("gender:%s", e.Gender))
		}
		words = append(words, NewWord(e.Char, "emoji", "", tags))
	}

	return New("emoji", "", words, useCache)
}
