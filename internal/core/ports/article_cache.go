package ports

import (
	"context"

	"github.com/boardhub/board-api/internal/core/domain"
)

// ArticleCache is a read-through cache for single-article lookups. Get
// returns (nil, nil) on a miss. Cache failures are advisory; callers fall
// back to the repository.
type ArticleCache interface {
	Get(ctx context.Context, id string) (*domain.Article, error)
	Set(ctx context.Context, article *domain.Article) error
	Invalidate(ctx context.Context, id string) error
}
