package generator

import (
	"context"

	"github.com/slugkit/slugkit-generator/pattern"
	"github.com/slugkit/slugkit-generator/permute"
	"github.com/slugkit/slugkit-generator/substitution"
	gosync "github.com/slugkit/slugkit-generator/sync"
)

// Generate renders one slug for (p, seed, seq). If settings is nil, p is
// compiled fresh (including the prime-downshift search); otherwise
// settings' selector sizes are trusted, per §4.5.
func (g *Generator) Generate(p *pattern.Pattern, settings *PatternSettings, seed string, seq uint64) (string, error) {
	ctx := context.Background()
	gens, _, err := g.compile(ctx, p, settings)
	if err != nil {
		return "", err
	}
	return render(p, gens, permute.FNV1a(seed), seq)
}

// GenerateBatch invokes callback(i, slug) for seq, seq+1, ..., seq+count-1
// in order, checking ctx for cancellation between outputs.
func (g *Generator) GenerateBatch(ctx context.Context, p *pattern.Pattern, settings *PatternSettings, seed string, seq uint64, count int, callback func(i int, slug string) error) error {
	gens, _, err := g.compile(ctx, p, settings)
	if err != nil {
		return err
	}

	logger := g.logger(ctx)
	logger.DebugContext(ctx, "starting batch generation", "count", count, "seq", seq)

	base := permute.FNV1a(seed)
	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			logger.WarnContext(ctx, "batch generation canceled", "completed", i, "count", count)
			return ctx.Err()
		default:
		}

		s, err := render(p, gens, base, seq+uint64(i))
		if err != nil {
			return err
		}
		if err := callback(i, s); err != nil {
			return err
		}
	}

	logger.DebugContext(ctx, "batch generation complete", "count", count)
	return nil
}

// GenerateBatchConcurrent has the same contract as [Generator.GenerateBatch],
// but fans the range out across [sync.Go]'s worker pool (bounded by
// [config.Opts.BatchConcurrency]) and delivers results through callback
// in order once every output has been computed. Since each output is a
// pure function of its own seq, computing them out of order is safe.
func (g *Generator) GenerateBatchConcurrent(ctx context.Context, p *pattern.Pattern, settings *PatternSettings, seed string, seq uint64, count int, callback func(i int, slug string) error) error {
	gens, _, err := g.compile(ctx, p, settings)
	if err != nil {
		return err
	}

	logger := g.logger(ctx)
	logger.DebugContext(ctx, "starting concurrent batch generation", "count", count, "seq", seq, "concurrency", g.opts.BatchConcurrency)

	base := permute.FNV1a(seed)
	results := make([]string, count)
	errs := make([]error, count)

	funcs := make([]func() error, count)
	for i := 0; i < count; i++ {
		i := i
		funcs[i] = func() error {
			s, err := render(p, gens, base, seq+uint64(i))
			results[i], errs[i] = s, err
			return err
		}
	}

	if err := gosync.Go(ctx, g.opts.BatchConcurrency, funcs...); err != nil {
		return err
	}

	for i, s := range results {
		if errs[i] != nil {
			return errs[i]
		}
		if err := callback(i, s); err != nil {
			return err
		}
	}

	logger.DebugContext(ctx, "concurrent batch generation complete", "count", count)
	return nil
}

// render computes every placeholder's substitution for seq, stepping
// the per-placeholder seed by [perPlaceholderSeedStride] before each
// one, then interleaves them with p's literal chunks.
func render(p *pattern.Pattern, gens []substitution.Generator, baseSeed32 uint32, seq uint64) (string, error) {
	seed32 := baseSeed32
	subs := make([]string, len(gens))
	for i, gen := range gens {
		seed32 += perPlaceholderSeedStride
		subs[i] = gen.Generate(seed32, seq)
	}
	return formatChunks(p.Chunks, subs)
}
