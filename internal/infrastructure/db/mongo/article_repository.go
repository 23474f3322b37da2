package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/boardhub/board-api/internal/core/domain"
)

const articlesCollection = "articles"

// ArticleRepository persists board articles in MongoDB.
type ArticleRepository struct {
	coll *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{coll: db.Collection(articlesCollection)}
}

type mongoArticle struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Author    string             `bson:"author"`
	Title     string             `bson:"title"`
	Contents  string             `bson:"contents"`
	Status    string             `bson:"status"`
	AuthorID  string             `bson:"author_id"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoArticle(article)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}

	created := *article
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ArticleRepository) FindAll(ctx context.Context) ([]*domain.Article, error) {
	return r.find(ctx, bson.M{})
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArticleNotFound
	}

	var ma mongoArticle
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return fromMongoArticle(&ma), nil
}

func (r *ArticleRepository) FindByAuthorID(ctx context.Context, authorID string) ([]*domain.Article, error) {
	return r.find(ctx, bson.M{"author_id": authorID})
}

func (r *ArticleRepository) FindByAuthorName(ctx context.Context, author string) ([]*domain.Article, error) {
	return r.find(ctx, bson.M{"author": author})
}

func (r *ArticleRepository) Update(ctx context.Context, id, title, contents string) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArticleNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":      title,
		"contents":   contents,
		"updated_at": time.Now().UTC().Unix(),
	}}

	var ma mongoArticle
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return fromMongoArticle(&ma), nil
}

func (r *ArticleRepository) UpdateStatus(ctx context.Context, id string, status domain.ArticleStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrArticleNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update article status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrArticleNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes the list and search queries rely on.
func (r *ArticleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ArticleRepository) find(ctx context.Context, filter bson.M) ([]*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	defer cursor.Close(ctx)

	var articles []*domain.Article
	for cursor.Next(ctx) {
		var ma mongoArticle
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode article: %w", err)
		}
		articles = append(articles, fromMongoArticle(&ma))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

func toMongoArticle(a *domain.Article) mongoArticle {
	return mongoArticle{
		Author:    a.Author,
		Title:     a.Title,
		Contents:  a.Contents,
		Status:    string(a.Status),
		AuthorID:  a.AuthorID,
		CreatedAt: a.CreatedAt.Unix(),
		UpdatedAt: a.UpdatedAt.Unix(),
	}
}

func fromMongoArticle(ma *mongoArticle) *domain.Article {
	return &domain.Article{
		ID:        ma.ID.Hex(),
		Author:    ma.Author,
		Title:     ma.Title,
		Contents:  ma.Contents,
		Status:    domain.ArticleStatus(ma.Status),
		AuthorID:  ma.AuthorID,
		CreatedAt: unixToTime(ma.CreatedAt),
		UpdatedAt: unixToTime(ma.UpdatedAt),
	}
}
