package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/boardhub/board-api/internal/core/domain"
)

const articleCacheTTL = 5 * time.Minute

// ArticleCache is a read-through cache for single-article lookups.
// Key format: article:<id>
type ArticleCache struct {
	client *redis.Client
}

// NewArticleCache creates an ArticleCache wrapping the given Redis client.
func NewArticleCache(client *redis.Client) *ArticleCache {
	return &ArticleCache{client: client}
}

// Get returns the cached article, or (nil, nil) on a miss.
func (c *ArticleCache) Get(ctx context.Context, id string) (*domain.Article, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var article domain.Article
	if err := json.Unmarshal(raw, &article); err != nil {
		// Stale or corrupted entry; treat as a miss.
		return nil, nil
	}
	return &article, nil
}

// Set stores the article for articleCacheTTL.
func (c *ArticleCache) Set(ctx context.Context, article *domain.Article) error {
	raw, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(article.ID), raw, articleCacheTTL).Err()
}

// Invalidate drops the cached entry after a mutation.
func (c *ArticleCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *ArticleCache) key(id string) string {
	return "article:" + id
}
