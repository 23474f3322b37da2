package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/boardhub/board-api/internal/core/domain"
)

type stubAuditRepo struct {
	inserted []domain.AuditRecord
	err      error
}

func (r *stubAuditRepo) Insert(_ context.Context, record *domain.AuditRecord) error {
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, *record)
	return nil
}

func TestAuditTrailService_Process(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditTrailService(repo, zerolog.Nop())

	record := domain.AuditRecord{ID: "r-1", ActorID: "u-1", Action: domain.AuditSignIn}
	if err := svc.Process(context.Background(), record); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].ID != "r-1" {
		t.Fatalf("record not persisted: %+v", repo.inserted)
	}
}

func TestAuditTrailService_RejectsEmptyAction(t *testing.T) {
	svc := NewAuditTrailService(&stubAuditRepo{}, zerolog.Nop())

	if err := svc.Process(context.Background(), domain.AuditRecord{ID: "r-1"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuditTrailService_WrapsRepoFailure(t *testing.T) {
	repo := &stubAuditRepo{err: errors.New("mongo down")}
	svc := NewAuditTrailService(repo, zerolog.Nop())

	if err := svc.Process(context.Background(), domain.AuditRecord{Action: domain.AuditSignIn}); err == nil {
		t.Fatalf("expected error when repository fails")
	}
}
