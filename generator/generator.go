// Package generator composes a parsed [pattern.Pattern] and a
// [dictionary.Set] into substitution generators, and renders slugs from
// them, per §4.5.
package generator

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/slugkit/slugkit-generator/bigcap"
	"github.com/slugkit/slugkit-generator/config"
	"github.com/slugkit/slugkit-generator/dictionary"
	"github.com/slugkit/slugkit-generator/errors"
	"github.com/slugkit/slugkit-generator/id"
	"github.com/slugkit/slugkit-generator/log"
	"github.com/slugkit/slugkit-generator/pattern"
	"github.com/slugkit/slugkit-generator/substitution"
)

// perPlaceholderSeedStride is the fixed per-placeholder seed stride from
// §4.5 step 2, used to decorrelate permutations across placeholders
// sharing one base seed.
const perPlaceholderSeedStride = 2083

// Generator compiles patterns against a fixed dictionary set and
// renders slugs from them. It holds no mutable state beyond its
// memoized-GCD cache, which is safe for concurrent use.
type Generator struct {
	set      *dictionary.Set
	opts     config.Opts
	gcdCache *bigcap.GCDCache
}

// New returns a Generator over set, using [config.WithOpts]'s defaults.
func New(set *dictionary.Set) *Generator {
	return NewWithOpts(set, config.WithOpts(slog.Default()))
}

// NewWithOpts returns a Generator over set, configured by opts.
func NewWithOpts(set *dictionary.Set, opts config.Opts) *Generator {
	return &Generator{set: set, opts: opts, gcdCache: bigcap.NewGCDCache()}
}

// SelectorSettings is the operative size a selector placeholder was
// compiled against, possibly a prime downshift of its filtered
// dictionary's natural size (§4.4.1's "selected-size choice").
type SelectorSettings struct {
	SelectedSize uint64
}

// PatternSettings is the result of compiling a pattern: its overall
// capacity and maximum rendered length, plus the per-selector sizes
// chosen, in placeholder order. Passing a PatternSettings back into
// [Generator.Generate]/[Generator.GenerateBatch] skips the
// prime-downshift search and reuses these exact sizes.
type PatternSettings struct {
	Capacity  *big.Int
	MaxLength int
	Selectors []SelectorSettings
}

// Capacity compiles p and returns its settings, without rendering
// anything.
func (g *Generator) Capacity(p *pattern.Pattern) (*PatternSettings, error) {
	_, settings, err := g.compile(context.Background(), p, nil)
	return settings, err
}

// logger returns a logger scoped to this call: g.opts.Logger cloned so its
// logID can be stamped via [log.WithID] without mutating the shared logger
// a concurrent call might be using at the same time.
func (g *Generator) logger(ctx context.Context) *slog.Logger {
	return log.WithID(ctx, g.opts.Logger.With("component", "generator"))
}

// compile builds one substitution.Generator per placeholder in p, in
// order. If explicit is non-nil, its SelectorSettings are trusted
// verbatim for selector placeholders (by position among selectors) and
// no prime-downshift search is performed; capacity and max length are
// still recomputed either way, per §4.5.
func (g *Generator) compile(ctx context.Context, p *pattern.Pattern, explicit *PatternSettings) ([]substitution.Generator, *PatternSettings, error) {
	gens := make([]substitution.Generator, 0, len(p.Placeholders))
	selectors := make([]SelectorSettings, 0)
	capacity := big.NewInt(1)
	maxLength := 0
	selectorIdx := 0

	for _, ph := range p.Placeholders {
		var gen substitution.Generator
		var err error

		switch ph.Kind {
		case pattern.KindSelector:
			gen, err = g.compileSelector(ctx, ph.Selector, explicit, &selectors, &selectorIdx, capacity)
		case pattern.KindNumber:
			gen = g.compileNumber(ph.Number)
		case pattern.KindSpecial:
			gen = substitution.NewSpecialGenerator(ph.Special.MinLength, ph.Special.MaxLength)
		case pattern.KindEmoji:
			gen, err = g.compileEmoji(ctx, ph.Emoji)
		}
		if err != nil {
			g.logger(ctx).ErrorContext(ctx, "failed to compile placeholder", "kind", ph.Kind, "error", err)
			return nil, nil, err
		}

		gens = append(gens, gen)
		capacity = bigcap.LCM(capacity, gen.Capacity())
		maxLength += gen.MaxLength()
	}

	return gens, &PatternSettings{Capacity: capacity, MaxLength: maxLength, Selectors: selectors}, nil
}

func (g *Generator) compileSelector(ctx context.Context, sel dictionary.Selector, explicit *PatternSettings, selectors *[]SelectorSettings, selectorIdx *int, runningCapacity *big.Int) (substitution.Generator, error) {
	fd, ok := g.set.Filter(sel)
	if !ok || fd.Empty() {
		g.logger(ctx).WarnContext(ctx, "dictionary filter returned no words", "kind", sel.Kind, "language", sel.Language)
		return nil, dictionary.EmptyFilterError(sel.Kind)
	}

	originalSize := uint64(fd.Len())

	var selectedSize uint64
	if explicit != nil && *selectorIdx < len(explicit.Selectors) {
		selectedSize = explicit.Selectors[*selectorIdx].SelectedSize
	} else {
		selectedSize = g.bestSelectorSize(runningCapacity, originalSize)
	}
	*selectorIdx++

	*selectors = append(*selectors, SelectorSettings{SelectedSize: selectedSize})
	return substitution.NewSelectorGenerator(fd, selectedSize), nil
}

// bestSelectorSize returns originalSize, or the largest prime below it
// if that downshift raises the LCM of running with the selected size,
// per §4.4.1/§4.5.
func (g *Generator) bestSelectorSize(running *big.Int, originalSize uint64) uint64 {
	candidate := bigcap.PrevPrime(int(originalSize))
	if candidate <= 0 {
		return originalSize
	}

	originalLCM := g.lcmWithCache(running, originalSize)
	candidateLCM := g.lcmWithCache(running, uint64(candidate))
	if candidateLCM.Cmp(originalLCM) > 0 {
		return uint64(candidate)
	}
	return originalSize
}

func (g *Generator) lcmWithCache(running *big.Int, v uint64) *big.Int {
	if running.IsUint64() {
		return new(big.Int).SetUint64(g.gcdCache.LCM(running.Uint64(), v))
	}
	return bigcap.LCM(running, new(big.Int).SetUint64(v))
}

func (g *Generator) compileNumber(n pattern.NumberGen) substitution.Generator {
	switch n.Base {
	case pattern.BaseHex:
		return substitution.NewNumberGenerator(n.MaxLength, substitution.Hex)
	case pattern.BaseHexUpper:
		return substitution.NewNumberGenerator(n.MaxLength, substitution.HexUpper)
	case pattern.BaseRoman:
		return substitution.NewRomanGenerator(n.MaxLength, true)
	case pattern.BaseRomanUpper:
		return substitution.NewRomanGenerator(n.MaxLength, false)
	default:
		return substitution.NewNumberGenerator(n.MaxLength, substitution.Dec)
	}
}

func (g *Generator) compileEmoji(ctx context.Context, em pattern.EmojiGen) (substitution.Generator, error) {
	include := append([]string(nil), em.IncludeTags...)
	if em.Tone != "" {
		include = append(include, "tone:"+em.Tone)
	}
	if em.Gender != "" {
		include = append(include, "gender:"+em.Gender)
	}

	sel, err := dictionary.NewSelector("emoji", "", include, em.ExcludeTags, nil, nil)
	if err != nil {
		return nil, err
	}

	fd, ok := g.set.Filter(sel)
	if !ok || fd.Empty() {
		g.logger(ctx).WarnContext(ctx, "dictionary filter returned no words", "kind", "emoji")
		return nil, dictionary.EmptyFilterError("emoji")
	}

	return substitution.NewEmojiGenerator(fd, em.MinCount, em.MaxCount, em.Unique), nil
}

// RandomSeed returns 8 lowercase hex characters from a non-deterministic
// source, suitable as a fresh seed for a caller that doesn't care about
// reproducing a particular slug stream.
func RandomSeed() string {
	return id.RandomSeed()
}

// formatChunks interleaves chunks with subs, the slugformat boundary
// described in §7: a mismatch between the placeholder count a pattern
// declares and the substitution count it's handed is a [errors.SlugFormatError],
// not a panic.
func formatChunks(chunks []string, subs []string) (string, error) {
	if len(subs) != len(chunks)-1 {
		return "", errors.NewSlugFormatError(len(chunks)-1, len(subs))
	}

	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	for _, s := range subs {
		total += len(s)
	}

	out := make([]byte, 0, total)
	for i, c := range chunks {
		out = append(out, c...)
		if i < len(subs) {
			out = append(out, subs[i]...)
		}
	}
	return string(out), nil
}
