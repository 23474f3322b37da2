package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/boardhub/board-api/internal/core/domain"
	"github.com/boardhub/board-api/internal/core/ports"
)

// AuditTrailService persists records handed off by the dispatcher workers.
type AuditTrailService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditTrailService(repo ports.AuditRepository, logger zerolog.Logger) *AuditTrailService {
	return &AuditTrailService{repo: repo, logger: logger}
}

func (s *AuditTrailService) Process(ctx context.Context, record domain.AuditRecord) error {
	if record.Action == "" {
		return fmt.Errorf("audit record without action: %w", domain.ErrInvalidInput)
	}
	if err := s.repo.Insert(ctx, &record); err != nil {
		return fmt.Errorf("persist audit record: %w", err)
	}
	s.logger.Debug().Str("action", record.Action).Str("actor_id", record.ActorID).Msg("audit record stored")
	return nil
}
