package ports

import (
	"context"

	"github.com/boardhub/board-api/internal/core/domain"
)

// AuditSink accepts audit records for asynchronous persistence. Record must
// not block request handling beyond the sink's buffer capacity.
type AuditSink interface {
	Record(record domain.AuditRecord)
}

// AuditRepository persists audit records.
type AuditRepository interface {
	Insert(ctx context.Context, record *domain.AuditRecord) error
}

// AuditService processes records dequeued by the dispatcher workers.
type AuditService interface {
	Process(ctx context.Context, record domain.AuditRecord) error
}
