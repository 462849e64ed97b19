package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"moviecatalog/catalog"

	goredis "github.com/redis/go-redis/v9"
)

const catalogKeyPrefix = "catalog:genre:"

// CatalogCache implements catalog.Cache. Each genre list is stored as one
// JSON value that Redis expires after ttl.
type CatalogCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *goredis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = catalog.DefaultCacheTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) Get(ctx context.Context, genre string) ([]catalog.Movie, bool, error) {
	raw, err := c.client.Get(ctx, catalogKeyPrefix+genre).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var movies []catalog.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, false, err
	}
	return movies, true, nil
}

func (c *CatalogCache) Set(ctx context.Context, genre string, movies []catalog.Movie) error {
	raw, err := json.Marshal(movies)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogKeyPrefix+genre, raw, c.ttl).Err()
}
