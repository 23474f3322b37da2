package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/boardhub/board-api/internal/core/domain"
	"github.com/boardhub/board-api/internal/core/ports"
)

// mutateRequirement gates article update and delete: the record's owner may
// always act on it, admins may act on any record.
var mutateRequirement = domain.AnyOfOrOwner(domain.RoleAdmin)

// ArticleService implements the board use-cases on top of the repository,
// with a read-through cache for single-article lookups.
type ArticleService struct {
	repo   ports.ArticleRepository
	cache  ports.ArticleCache
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewArticleService(repo ports.ArticleRepository, cache ports.ArticleCache, audit ports.AuditSink, logger zerolog.Logger) *ArticleService {
	return &ArticleService{repo: repo, cache: cache, audit: audit, logger: logger}
}

// Create persists a new article authored by identity. Status always starts
// PUBLIC; the author fields come from the verified identity, never the body.
func (s *ArticleService) Create(ctx context.Context, identity domain.Identity, input ports.CreateArticleInput) (*domain.Article, error) {
	if input.Title == "" || input.Contents == "" {
		return nil, fmt.Errorf("title and contents are required: %w", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	article := &domain.Article{
		Author:    identity.Username,
		Title:     input.Title,
		Contents:  input.Contents,
		Status:    domain.StatusPublic,
		AuthorID:  identity.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, article)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("article_id", created.ID).Str("author_id", identity.UserID).Msg("article created")
	s.record(identity, domain.AuditArticleCreated, created.ID)
	return created, nil
}

func (s *ArticleService) List(ctx context.Context) ([]*domain.Article, error) {
	return s.repo.FindAll(ctx)
}

func (s *ArticleService) ListMine(ctx context.Context, identity domain.Identity) ([]*domain.Article, error) {
	return s.repo.FindByAuthorID(ctx, identity.UserID)
}

// GetByID serves from the cache when possible. Cache failures are logged and
// ignored; the repository remains the source of truth.
func (s *ArticleService) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Debug().Err(err).Str("article_id", id).Msg("article cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, article); err != nil {
			s.logger.Debug().Err(err).Str("article_id", id).Msg("article cache write failed")
		}
	}
	return article, nil
}

func (s *ArticleService) SearchByAuthor(ctx context.Context, author string) ([]*domain.Article, error) {
	if author == "" {
		return nil, fmt.Errorf("author keyword is required: %w", domain.ErrInvalidInput)
	}
	return s.repo.FindByAuthorName(ctx, author)
}

// Update replaces title and contents. Only the owner or an admin may update.
func (s *ArticleService) Update(ctx context.Context, identity domain.Identity, id string, input ports.UpdateArticleInput) (*domain.Article, error) {
	if input.Title == "" || input.Contents == "" {
		return nil, fmt.Errorf("title and contents are required: %w", domain.ErrInvalidInput)
	}

	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.Permits(&identity, mutateRequirement, article.AuthorID) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.Update(ctx, id, input.Title, input.Contents)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.record(identity, domain.AuditArticleUpdated, id)
	return updated, nil
}

// UpdateStatus flips an article's visibility. Role gating (admin only) is
// enforced at the route; the service validates the value itself.
func (s *ArticleService) UpdateStatus(ctx context.Context, id string, status string) error {
	next := domain.ArticleStatus(status)
	if !next.Valid() {
		return fmt.Errorf("status must be PUBLIC or PRIVATE: %w", domain.ErrInvalidInput)
	}
	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// Delete removes an article. Only the owner or an admin may delete.
func (s *ArticleService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.Permits(&identity, mutateRequirement, article.AuthorID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.logger.Info().Str("article_id", id).Str("actor_id", identity.UserID).Msg("article deleted")
	s.record(identity, domain.AuditArticleDeleted, id)
	return nil
}

func (s *ArticleService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Debug().Err(err).Str("article_id", id).Msg("article cache invalidation failed")
	}
}

func (s *ArticleService) record(identity domain.Identity, action, subject string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditRecord{
		ID:        uuid.NewString(),
		ActorID:   identity.UserID,
		Actor:     identity.Username,
		Action:    action,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
	})
}
