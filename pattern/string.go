package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// String returns the canonical textual form of p: literal text escaped,
// tags sorted within each placeholder, and numeric bases rendered with
// their canonical suffix character. Re-parsing String's output produces
// a Pattern equal in meaning to p, though not necessarily identical in
// Source.
func (p *Pattern) String() string {
	var b strings.Builder

	for i, chunk := range p.Chunks {
		b.WriteString(escapeLiteral(chunk))
		if i < len(p.Placeholders) {
			b.WriteByte('{')
			writePlaceholder(&b, p.Placeholders[i])
			b.WriteByte('}')
		}
	}

	if p.Global != nil {
		b.WriteByte('[')
		writeGlobal(&b, p.Global)
		b.WriteByte(']')
	}

	return b.String()
}

func escapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\{}[]`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func writeTags(b *strings.Builder, include, exclude []string) {
	sorted := append([]string(nil), include...)
	sort.Strings(sorted)
	for _, t := range sorted {
		fmt.Fprintf(b, "+%s", t)
	}
	sorted = append([]string(nil), exclude...)
	sort.Strings(sorted)
	for _, t := range sorted {
		fmt.Fprintf(b, "-%s", t)
	}
}

func writePlaceholder(b *strings.Builder, ph Placeholder) {
	switch ph.Kind {
	case KindSelector:
		sel := ph.Selector
		b.WriteString(sel.Kind)
		if sel.Language != "" {
			fmt.Fprintf(b, "@%s", sel.Language)
		}
		if len(sel.IncludeTags) > 0 || len(sel.ExcludeTags) > 0 || sel.SizeLimit != nil {
			b.WriteByte(':')
			writeTags(b, sel.IncludeTags, sel.ExcludeTags)
			if sel.SizeLimit != nil {
				b.WriteString(sel.SizeLimit.String())
			}
		}

	case KindNumber:
		fmt.Fprintf(b, "number:%d%s", ph.Number.MaxLength, numberBaseSuffix(ph.Number.Base))

	case KindSpecial:
		sp := ph.Special
		if sp.MinLength == sp.MaxLength {
			fmt.Fprintf(b, "special:%d", sp.MaxLength)
		} else {
			fmt.Fprintf(b, "special:%d-%d", sp.MinLength, sp.MaxLength)
		}

	case KindEmoji:
		em := ph.Emoji
		b.WriteString("emoji")
		if len(em.IncludeTags) > 0 || len(em.ExcludeTags) > 0 || em.MinCount != defaultEmojiCount || em.MaxCount != defaultEmojiCount || em.Unique || em.Tone != "" || em.Gender != "" {
			b.WriteByte(':')
			writeTags(b, em.IncludeTags, em.ExcludeTags)
			if em.MinCount == em.MaxCount {
				fmt.Fprintf(b, " count=%d", em.MaxCount)
			} else {
				fmt.Fprintf(b, " count=%d-%d", em.MinCount, em.MaxCount)
			}
			if em.Unique {
				b.WriteString(" unique=true")
			}
			if em.Tone != "" {
				fmt.Fprintf(b, " tone=%s", em.Tone)
			}
			if em.Gender != "" {
				fmt.Fprintf(b, " gender=%s", em.Gender)
			}
		}
	}
}

func numberBaseSuffix(base NumberBase) string {
	switch base {
	case BaseHex:
		return "x"
	case BaseHexUpper:
		return "X"
	case BaseRoman:
		return "r"
	case BaseRomanUpper:
		return "R"
	default:
		return "d"
	}
}

func writeGlobal(b *strings.Builder, g *GlobalSettings) {
	if g.Language != "" {
		fmt.Fprintf(b, "@%s", g.Language)
	}
	writeTags(b, g.IncludeTags, g.ExcludeTags)
	if g.SizeLimit != nil {
		b.WriteString(g.SizeLimit.String())
	}
}
