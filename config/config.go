// Package config provides the various parameters(configuration optionals)
// that can be used to configure a [generator.Generator].
package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/slugkit/slugkit-generator/errors"
	"github.com/slugkit/slugkit-generator/log"
)

// cache
const (
	// DefaultCacheWays is the number of stripes in the filtered-dictionary
	// cache, by default. Each stripe guards its own LRU and its own mutex,
	// so concurrent lookups for different selectors rarely contend.
	DefaultCacheWays = 16
	// DefaultCacheShardSize is the number of filtered views held per cache
	// stripe, by default, before the stripe's LRU starts evicting.
	DefaultCacheShardSize = 1024
)

// dictionary
const (
	// DefaultLanguage is the dictionary language used when a pattern's
	// selector does not name one explicitly.
	DefaultLanguage = "en"
)

// pattern
const (
	// DefaultMaxPatternLength is the maximum number of rendered characters
	// a single slug may contain, by default.
	DefaultMaxPatternLength = 256
	// DefaultMaxPlaceholders is the maximum number of placeholders a
	// pattern may contain, by default.
	DefaultMaxPlaceholders = 64
)

// batch generation
const (
	// DefaultBatchConcurrency is the maximum number of goroutines used by
	// [generator.Generator.GenerateBatchConcurrent], by default. A value
	// <=0 tells [sync.Go] to use [runtime.NumCPU] instead.
	DefaultBatchConcurrency = 0
)

// Opts are the various parameters(optionals) that can be used to configure
// a generator.
//
// Use either [New] or [WithOpts] to get a valid Opts.
//
// [generator.Generator] reads only Logger and BatchConcurrency. Language,
// CacheWays, CacheShardSize, MaxPatternLength and MaxPlaceholders are
// validated and stored but not applied by it: the default language is
// the one the [dictionary.Set] was built with, a dictionary's
// filtered-view cache always uses [DefaultCacheWays] and
// [DefaultCacheShardSize], and patterns are not checked against either
// pattern ceiling.
type Opts struct {
	// Language is the default dictionary language used by selectors that
	// don't name one explicitly.
	Language string
	// Logger is used for diagnostic logging emitted while compiling
	// patterns against dictionaries and generating batches.
	Logger *slog.Logger

	// CacheWays is the number of stripes in the filtered-dictionary cache.
	CacheWays int
	// CacheShardSize is the number of filtered views held per cache
	// stripe.
	CacheShardSize int

	// MaxPatternLength is the maximum number of rendered characters a
	// single slug may contain.
	MaxPatternLength int
	// MaxPlaceholders is the maximum number of placeholders a pattern may
	// contain.
	MaxPlaceholders int

	// BatchConcurrency is the maximum number of goroutines used when
	// generating a batch of slugs concurrently. A value <=0 means
	// [runtime.NumCPU].
	BatchConcurrency int
}

// String implements [fmt.Stringer]
func (o Opts) String() string {
	return fmt.Sprintf(`Opts{
  language: %s
  logger: %v
  cacheWays: %d
  cacheShardSize: %d
  maxPatternLength: %d
  maxPlaceholders: %d
  batchConcurrency: %d
}`,
		o.Language,
		o.Logger,
		o.CacheWays,
		o.CacheShardSize,
		o.MaxPatternLength,
		o.MaxPlaceholders,
		o.BatchConcurrency,
	)
}

// GoString implements [fmt.GoStringer]
func (o Opts) GoString() string {
	return o.String()
}

// New returns a new validated Opts.
// It panics on error.
//
// language is the default dictionary language used by selectors that don't
// name one explicitly. It must not be empty.
//
// logger is the [slog.Logger] that will be used for diagnostic logging.
//
// cacheWays & cacheShardSize set the filtered-dictionary cache shape
// recorded in Opts; see [DefaultCacheWays] & [DefaultCacheShardSize]. If
// either is less than 1, the corresponding default is used instead.
//
// maxPatternLength & maxPlaceholders set the pattern ceilings recorded in
// Opts; see [DefaultMaxPatternLength] & [DefaultMaxPlaceholders]. If
// either is less than 1, the corresponding default is used instead.
//
// See [Opts] for which fields a generator applies.
//
// batchConcurrency bounds the number of goroutines used for concurrent
// batch generation; see [DefaultBatchConcurrency].
//
// Also see [WithOpts].
func New(
	language string,
	logger *slog.Logger,
	cacheWays int,
	cacheShardSize int,
	maxPatternLength int,
	maxPlaceholders int,
	batchConcurrency int,
) Opts {
	if language == "" {
		panic(errors.New("config: language should not be empty"))
	}
	if logger == nil {
		panic(errors.New("config: logger should not be nil"))
	}

	if cacheWays < 1 {
		cacheWays = DefaultCacheWays
	}
	if cacheShardSize < 1 {
		cacheShardSize = DefaultCacheShardSize
	}
	if maxPatternLength < 1 {
		maxPatternLength = DefaultMaxPatternLength
	}
	if maxPlaceholders < 1 {
		maxPlaceholders = DefaultMaxPlaceholders
	}
	if batchConcurrency <= 0 {
		batchConcurrency = runtime.NumCPU()
	}

	return Opts{
		Language:         language,
		Logger:           logger,
		CacheWays:        cacheWays,
		CacheShardSize:   cacheShardSize,
		MaxPatternLength: maxPatternLength,
		MaxPlaceholders:  maxPlaceholders,
		BatchConcurrency: batchConcurrency,
	}
}

// WithOpts returns a new Opts that has sensible defaults.
// It panics on error.
//
// See [New] for extra documentation.
func WithOpts(logger *slog.Logger) Opts {
	return New(
		DefaultLanguage,
		logger,
		DefaultCacheWays,
		DefaultCacheShardSize,
		DefaultMaxPatternLength,
		DefaultMaxPlaceholders,
		DefaultBatchConcurrency,
	)
}

// NewLogger returns an [slog.Logger] suitable for [Opts.Logger]: one backed
// by [log.New]'s buffering handler, which holds events in a ring buffer and
// only flushes to w once an event at [slog.LevelError] or above is logged,
// tagging every flushed record with a logID correlating it to ctx (or a
// freshly generated one if ctx carries none).
//
// Passing a logger built this way, rather than a bare [slog.NewTextHandler]/
// [slog.NewJSONHandler] logger, is what lets a [generator.Generator] attach
// a correlation id to the log events it emits while compiling a pattern's
// placeholders and running batch generation.
func NewLogger(ctx context.Context, w io.Writer, maxSize int) *slog.Logger {
	return log.New(ctx, w, maxSize)
}
