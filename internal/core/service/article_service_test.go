package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/boardhub/board-api/internal/core/domain"
	"github.com/boardhub/board-api/internal/core/ports"
)

type stubArticleRepo struct {
	articles map[string]*domain.Article
	nextID   int
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{articles: make(map[string]*domain.Article)}
}

func (r *stubArticleRepo) Create(_ context.Context, article *domain.Article) (*domain.Article, error) {
	r.nextID++
	clone := *article
	clone.ID = "article-" + strconv.Itoa(r.nextID)
	r.articles[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubArticleRepo) FindAll(_ context.Context) ([]*domain.Article, error) {
	out := make([]*domain.Article, 0, len(r.articles))
	for _, a := range r.articles {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubArticleRepo) FindByID(_ context.Context, id string) (*domain.Article, error) {
	if a, ok := r.articles[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrArticleNotFound
}

func (r *stubArticleRepo) FindByAuthorID(_ context.Context, authorID string) ([]*domain.Article, error) {
	var out []*domain.Article
	for _, a := range r.articles {
		if a.AuthorID == authorID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubArticleRepo) FindByAuthorName(_ context.Context, author string) ([]*domain.Article, error) {
	var out []*domain.Article
	for _, a := range r.articles {
		if a.Author == author {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubArticleRepo) Update(_ context.Context, id, title, contents string) (*domain.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	a.Title = title
	a.Contents = contents
	a.UpdatedAt = time.Now().UTC()
	clone := *a
	return &clone, nil
}

func (r *stubArticleRepo) UpdateStatus(_ context.Context, id string, status domain.ArticleStatus) error {
	a, ok := r.articles[id]
	if !ok {
		return domain.ErrArticleNotFound
	}
	a.Status = status
	return nil
}

func (r *stubArticleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.articles[id]; !ok {
		return domain.ErrArticleNotFound
	}
	delete(r.articles, id)
	return nil
}

type stubCache struct {
	entries     map[string]*domain.Article
	invalidated []string
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*domain.Article)}
}

func (c *stubCache) Get(_ context.Context, id string) (*domain.Article, error) {
	if a, ok := c.entries[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, nil
}

func (c *stubCache) Set(_ context.Context, article *domain.Article) error {
	clone := *article
	c.entries[clone.ID] = &clone
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, id string) error {
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}

var (
	alice = domain.Identity{UserID: "u-alice", Username: "alice", Role: domain.RoleUser}
	bob   = domain.Identity{UserID: "u-bob", Username: "bob", Role: domain.RoleUser}
	root  = domain.Identity{UserID: "u-root", Username: "root", Role: domain.RoleAdmin}
)

func newArticleService(repo ports.ArticleRepository, cache ports.ArticleCache) *ArticleService {
	return NewArticleService(repo, cache, &recordingSink{}, zerolog.Nop())
}

func TestArticleService_Create(t *testing.T) {
	repo := newStubArticleRepo()
	svc := newArticleService(repo, newStubCache())

	article, err := svc.Create(context.Background(), alice, ports.CreateArticleInput{
		Title:    "hello",
		Contents: "first post",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if article.Author != "alice" || article.AuthorID != "u-alice" {
		t.Fatalf("author must come from the identity: %+v", article)
	}
	if article.Status != domain.StatusPublic {
		t.Fatalf("new articles start PUBLIC, got %s", article.Status)
	}
}

func TestArticleService_Create_MissingFields(t *testing.T) {
	svc := newArticleService(newStubArticleRepo(), newStubCache())

	if _, err := svc.Create(context.Background(), alice, ports.CreateArticleInput{Title: "only title"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestArticleService_GetByID_CachesResult(t *testing.T) {
	repo := newStubArticleRepo()
	cache := newStubCache()
	svc := newArticleService(repo, cache)

	created, err := svc.Create(context.Background(), alice, ports.CreateArticleInput{Title: "t", Contents: "c"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.GetByID(context.Background(), created.ID); err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if _, ok := cache.entries[created.ID]; !ok {
		t.Fatalf("article must be cached after first read")
	}

	// Remove from the repo; the cached copy must still serve.
	delete(repo.articles, created.ID)
	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("cached read failed: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("unexpected cached article: %+v", got)
	}
}

func TestArticleService_GetByID_NotFound(t *testing.T) {
	svc := newArticleService(newStubArticleRepo(), newStubCache())
	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestArticleService_Update_Ownership(t *testing.T) {
	repo := newStubArticleRepo()
	svc := newArticleService(repo, newStubCache())

	created, err := svc.Create(context.Background(), alice, ports.CreateArticleInput{Title: "t", Contents: "c"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	input := ports.UpdateArticleInput{Title: "t2", Contents: "c2"}

	if _, err := svc.Update(context.Background(), bob, created.ID, input); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-owner must be forbidden, got %v", err)
	}
	if _, err := svc.Update(context.Background(), alice, created.ID, input); err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if _, err := svc.Update(context.Background(), root, created.ID, input); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestArticleService_Delete_Ownership(t *testing.T) {
	repo := newStubArticleRepo()
	cache := newStubCache()
	svc := newArticleService(repo, cache)

	mine, err := svc.Create(context.Background(), alice, ports.CreateArticleInput{Title: "mine", Contents: "c"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	theirs, err := svc.Create(context.Background(), bob, ports.CreateArticleInput{Title: "theirs", Contents: "c"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), alice, theirs.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("deleting another user's article must be forbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), alice, mine.ID); err != nil {
		t.Fatalf("deleting own article failed: %v", err)
	}
	if err := svc.Delete(context.Background(), root, theirs.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}

	if len(cache.invalidated) != 2 {
		t.Fatalf("expected 2 cache invalidations, got %d", len(cache.invalidated))
	}
}

func TestArticleService_UpdateStatus(t *testing.T) {
	repo := newStubArticleRepo()
	svc := newArticleService(repo, newStubCache())

	created, err := svc.Create(context.Background(), alice, ports.CreateArticleInput{Title: "t", Contents: "c"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), created.ID, "DRAFT"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("invalid status must be rejected, got %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), created.ID, "PRIVATE"); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if repo.articles[created.ID].Status != domain.StatusPrivate {
		t.Fatalf("status not persisted")
	}
	if err := svc.UpdateStatus(context.Background(), "missing", "PUBLIC"); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestArticleService_ListMineAndSearch(t *testing.T) {
	repo := newStubArticleRepo()
	svc := newArticleService(repo, newStubCache())

	if _, err := svc.Create(context.Background(), alice, ports.CreateArticleInput{Title: "a", Contents: "c"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), bob, ports.CreateArticleInput{Title: "b", Contents: "c"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	mine, err := svc.ListMine(context.Background(), alice)
	if err != nil {
		t.Fatalf("ListMine returned error: %v", err)
	}
	if len(mine) != 1 || mine[0].AuthorID != "u-alice" {
		t.Fatalf("unexpected ListMine result: %+v", mine)
	}

	found, err := svc.SearchByAuthor(context.Background(), "bob")
	if err != nil {
		t.Fatalf("SearchByAuthor returned error: %v", err)
	}
	if len(found) != 1 || found[0].Author != "bob" {
		t.Fatalf("unexpected search result: %+v", found)
	}

	if _, err := svc.SearchByAuthor(context.Background(), ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("empty keyword must be rejected, got %v", err)
	}
}
