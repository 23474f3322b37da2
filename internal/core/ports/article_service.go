package ports

import (
	"context"

	"github.com/boardhub/board-api/internal/core/domain"
)

// CreateArticleInput carries the fields for a new article. The author is
// always the authenticated identity, never caller-supplied.
type CreateArticleInput struct {
	Title    string
	Contents string
}

// UpdateArticleInput carries the replacement fields for an existing article.
type UpdateArticleInput struct {
	Title    string
	Contents string
}

// ArticleService defines the board use-cases. Operations taking an identity
// run ownership checks against the stored record's author.
type ArticleService interface {
	Create(ctx context.Context, identity domain.Identity, input CreateArticleInput) (*domain.Article, error)
	List(ctx context.Context) ([]*domain.Article, error)
	ListMine(ctx context.Context, identity domain.Identity) ([]*domain.Article, error)
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	SearchByAuthor(ctx context.Context, author string) ([]*domain.Article, error)
	Update(ctx context.Context, identity domain.Identity, id string, input UpdateArticleInput) (*domain.Article, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, identity domain.Identity, id string) error
}
