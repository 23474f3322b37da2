package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/boardhub/board-api/internal/core/domain"
)

const auditCollection = "audit_log"

// AuditRepository appends activity-trail records.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) Insert(ctx context.Context, record *domain.AuditRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}
