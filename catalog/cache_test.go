package catalog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	calls  int
	movies []Movie
	err    error
}

func (f *countingFetcher) FetchGenre(_ context.Context, genre string) ([]Movie, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.movies, nil
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]Movie, bool, error) {
	return nil, false, errors.New("cache down")
}

func (brokenCache) Set(context.Context, string, []Movie) error {
	return errors.New("cache down")
}

func TestMemoryCache_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryCache(time.Minute)
	cache.now = func() time.Time { return now }
	ctx := context.Background()
	movies := []Movie{{ID: 1, Title: "Up", Genre: "animation"}}

	_, ok, err := cache.Get(ctx, "animation")
	require.NoError(t, err)
	assert.False(t, ok, "empty cache should miss")

	require.NoError(t, cache.Set(ctx, "animation", movies))

	got, ok, err := cache.Get(ctx, "animation")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, movies, got)

	now = now.Add(59 * time.Second)
	_, ok, _ = cache.Get(ctx, "animation")
	assert.True(t, ok, "entry should live until the ttl elapses")

	now = now.Add(time.Second)
	_, ok, _ = cache.Get(ctx, "animation")
	assert.False(t, ok, "entry should expire at the ttl")
}

func TestMemoryCache_KeyedByGenre(t *testing.T) {
	cache := NewMemoryCache(0)
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "drama", []Movie{{ID: 1}}))

	_, ok, _ := cache.Get(ctx, "comedy")

	assert.False(t, ok)
	assert.Equal(t, DefaultCacheTTL, cache.ttl)
}

func TestCachedFetcher(t *testing.T) {
	ctx := context.Background()

	t.Run("second fetch is served from cache", func(t *testing.T) {
		next := &countingFetcher{movies: []Movie{{ID: 1, Title: "Psycho", Genre: "horror"}}}
		f := NewCachedFetcher(next, NewMemoryCache(time.Minute), nil)

		first, err := f.FetchGenre(ctx, "horror")
		require.NoError(t, err)
		second, err := f.FetchGenre(ctx, "horror")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, next.calls)
	})

	t.Run("upstream errors are not cached", func(t *testing.T) {
		next := &countingFetcher{err: errors.New("upstream down")}
		f := NewCachedFetcher(next, NewMemoryCache(time.Minute), nil)

		_, err := f.FetchGenre(ctx, "western")
		assert.Error(t, err)
		_, err = f.FetchGenre(ctx, "western")
		assert.Error(t, err)

		assert.Equal(t, 2, next.calls)
	})

	t.Run("cache failures fall through to upstream", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		next := &countingFetcher{movies: []Movie{{ID: 9}}}
		f := NewCachedFetcher(next, brokenCache{}, logger)

		movies, err := f.FetchGenre(ctx, "family")

		require.NoError(t, err)
		assert.Equal(t, []Movie{{ID: 9}}, movies)
		assert.Contains(t, buf.String(), "catalog cache read failed")
		assert.Contains(t, buf.String(), "catalog cache write failed")
	})
}
