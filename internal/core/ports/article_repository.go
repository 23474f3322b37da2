package ports

import (
	"context"

	"github.com/boardhub/board-api/internal/core/domain"
)

// ArticleRepository defines persistence for board articles.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
	FindAll(ctx context.Context) ([]*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	FindByAuthorID(ctx context.Context, authorID string) ([]*domain.Article, error)
	// FindByAuthorName returns articles whose author display name matches
	// the keyword exactly.
	FindByAuthorName(ctx context.Context, author string) ([]*domain.Article, error)
	Update(ctx context.Context, id, title, contents string) (*domain.Article, error)
	UpdateStatus(ctx context.Context, id string, status domain.ArticleStatus) error
	Delete(ctx context.Context, id string) error
}
