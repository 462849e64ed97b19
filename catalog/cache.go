package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultCacheTTL bounds how long a genre list is served without refetching.
const DefaultCacheTTL = 10 * time.Minute

// Cache stores genre lists. Implementations expire entries on their own.
type Cache interface {
	Get(ctx context.Context, genre string) ([]Movie, bool, error)
	Set(ctx context.Context, genre string, movies []Movie) error
}

type memoryEntry struct {
	movies    []Movie
	expiresAt time.Time
}

// MemoryCache is an in-process Cache with a fixed TTL.
type MemoryCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &MemoryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryCache) Get(_ context.Context, genre string) ([]Movie, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[genre]
	c.mu.RUnlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.movies, true, nil
}

func (c *MemoryCache) Set(_ context.Context, genre string, movies []Movie) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[genre] = memoryEntry{
		movies:    movies,
		expiresAt: c.now().Add(c.ttl),
	}
	return nil
}

// CachedFetcher serves genre lists from a Cache and falls back to the
// wrapped Fetcher on a miss. Cache failures are logged, never returned.
type CachedFetcher struct {
	next   Fetcher
	cache  Cache
	logger *slog.Logger
}

func NewCachedFetcher(next Fetcher, cache Cache, logger *slog.Logger) *CachedFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedFetcher{next: next, cache: cache, logger: logger}
}

func (f *CachedFetcher) FetchGenre(ctx context.Context, genre string) ([]Movie, error) {
	movies, ok, err := f.cache.Get(ctx, genre)
	if err != nil {
		f.logger.WarnContext(ctx, "catalog cache read failed", "genre", genre, "error", err)
	} else if ok {
		return movies, nil
	}

	movies, err = f.next.FetchGenre(ctx, genre)
	if err != nil {
		return nil, err
	}

	if err := f.cache.Set(ctx, genre, movies); err != nil {
		f.logger.WarnContext(ctx, "catalog cache write failed", "genre", genre, "error", err)
	}
	return movies, nil
}
