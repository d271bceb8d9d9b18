package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"go.akshayshah.org/attest"
)

func TestNew(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	t.Run("sensible defaults fill in zero values", func(t *testing.T) {
		t.Parallel()

		o := New("en", logger, 0, 0, 0, 0, 0)
		attest.Equal(t, o.CacheWays, DefaultCacheWays)
		attest.Equal(t, o.CacheShardSize, DefaultCacheShardSize)
		attest.Equal(t, o.MaxPatternLength, DefaultMaxPatternLength)
		attest.Equal(t, o.MaxPlaceholders, DefaultMaxPlaceholders)
		attest.True(t, o.BatchConcurrency > 0)
	})

	t.Run("explicit values are preserved", func(t *testing.T) {
		t.Parallel()

		o := New("fr", logger, 4, 32, 10, 2, 3)
		attest.Equal(t, o.Language, "fr")
		attest.Equal(t, o.CacheWays, 4)
		attest.Equal(t, o.CacheShardSize, 32)
		attest.Equal(t, o.MaxPatternLength, 10)
		attest.Equal(t, o.MaxPlaceholders, 2)
		attest.Equal(t, o.BatchConcurrency, 3)
	})

	t.Run("empty language panics", func(t *testing.T) {
		t.Parallel()

		defer func() {
			r := recover()
			attest.NotZero(t, r)
		}()
		_ = New("", logger, 0, 0, 0, 0, 0)
	})

	t.Run("nil logger panics", func(t *testing.T) {
		t.Parallel()

		defer func() {
			r := recover()
			attest.NotZero(t, r)
		}()
		_ = New("en", nil, 0, 0, 0, 0, 0)
	})
}

func TestNewLoggerBuffersUntilError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(context.Background(), &buf, 16)

	logger.Info("this stays buffered")
	attest.Zero(t, buf.Len())

	logger.Error("this forces a flush")
	attest.NotZero(t, buf.Len())
	attest.Subsequence(t, buf.String(), "this stays buffered")
	attest.Subsequence(t, buf.String(), "this forces a flush")
}

func TestWithOpts(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	o := WithOpts(logger)

	attest.Equal(t, o.Language, DefaultLanguage)
	attest.Equal(t, o.CacheWays, DefaultCacheWays)
	attest.Equal(t, o.CacheShardSize, DefaultCacheShardSize)
	attest.Equal(t, o.MaxPatternLength, DefaultMaxPatternLength)
	attest.Equal(t, o.MaxPlaceholders, DefaultMaxPlaceholders)

	attest.Subsequence(t, o.String(), "language: en")
	attest.Subsequence(t, o.GoString(), "language: en")
}
