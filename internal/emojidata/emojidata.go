// Package emojidata is the curated emoji word list the emoji substitution
// generator filters. It is a Go literal rather than an embedded YAML or
// JSON asset: loading a serialized emoji table would pull in an
// out-of-scope parser for a few dozen fixed entries that never change at
// runtime.
package emojidata

import "sync"

// Entry is one emoji dictionary word: its glyph, the tags a selector can
// filter on, and the optional tone/gender facets some people-emoji
// support.
type Entry struct {
	Char   string
	Tags   []string
	Tone   string
	Gender string
}

var (
	once    sync.Once
	entries []Entry
)

// Entries returns the full curated emoji table, built once per process.
func Entries() []Entry {
	once.Do(func() {
		entries = []Entry{
			{Char: "🙂", Tags: []string{"face", "happy"}},
			{Char: "😀", Tags: []string{"face", "happy"}},
			{Char: "😂", Tags: []string{"face", "happy"}},
			{Char: "😍", Tags: []string{"face", "happy", "love"}},
			{Char: "😎", Tags: []string{"face", "cool"}},
			{Char: "😢", Tags: []string{"face", "sad"}},
			{Char: "😡", Tags: []string{"face", "angry"}},
			{Char: "🤔", Tags: []string{"face", "thinking"}},
			{Char: "😴", Tags: []string{"face", "sleepy"}},
			{Char: "🥳", Tags: []string{"face", "happy", "party"}},
			{Char: "👍", Tags: []string{"hand", "gesture", "positive"}},
			{Char: "👎", Tags: []string{"hand", "gesture", "negative"}},
			{Char: "👋", Tags: []string{"hand", "gesture"}},
			{Char: "🙌", Tags: []string{"hand", "gesture", "positive"}},
			{Char: "🤝", Tags: []string{"hand", "gesture"}},
			{Char: "🧑", Tags: []string{"person"}, Tone: "medium", Gender: "neutral"},
			{Char: "👩", Tags: []string{"person"}, Tone: "medium", Gender: "female"},
			{Char: "👨", Tags: []string{"person"}, Tone: "medium", Gender: "male"},
			{Char: "👧", Tags: []string{"person", "child"}, Tone: "medium", Gender: "female"},
			{Char: "👦", Tags: []string{"person", "child"}, Tone: "medium", Gender: "male"},
			{Char: "🐶", Tags: []string{"animal"}},
			{Char: "🐱", Tags: []string{"animal"}},
			{Char: "🦊", Tags: []string{"animal"}},
			{Char: "🦁", Tags: []string{"animal"}},
			{Char: "🐼", Tags: []string{"animal"}},
			{Char: "🐸", Tags: []string{"animal"}},
			{Char: "🦉", Tags: []string{"animal", "bird"}},
			{Char: "🐳", Tags: []string{"animal", "ocean"}},
			{Char: "🌲", Tags: []string{"nature", "plant"}},
			{Char: "🌵", Tags: []string{"nature", "plant"}},
			{Char: "🌻", Tags: []string{"nature", "plant", "flower"}},
			{Char: "🌙", Tags: []string{"nature", "sky"}},
			{Char: "⭐", Tags: []string{"nature", "sky"}},
			{Char: "🔥", Tags: []string{"nature", "element"}},
			{Char: "🍎", Tags: []string{"food", "fruit"}},
			{Char: "🍕", Tags: []string{"food"}},
			{Char: "🍔", Tags: []string{"food"}},
			{Char: "🍩", Tags: []string{"food", "dessert"}},
			{Char: "☕", Tags: []string{"food", "drink"}},
			{Char: "🎉", Tags: []string{"object", "party"}},
			{Char: "🎈", Tags: []string{"object", "party"}},
			{Char: "🎁", Tags: []string{"object", "party"}},
			{Char: "📚", Tags: []string{"object"}},
			{Char: "💡", Tags: []string{"object"}},
			{Char: "🔑", Tags: []string{"object"}},
			{Char: "⚽", Tags: []string{"object", "sport"}},
			{Char: "🎵", Tags: []string{"symbol", "music"}},
			{Char: "❤️", Tags: []string{"symbol", "love"}},
			{Char: "✨", Tags: []string{"symbol"}},
			{Char: "🚀", Tags: []string{"object", "vehicle"}},
		}
	})
	return entries
}
