package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/boardhub/board-api/internal/core/domain"
)

type collectingService struct {
	mu      sync.Mutex
	records []domain.AuditRecord
}

func (s *collectingService) Process(_ context.Context, record domain.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

func (s *collectingService) byActor(actorID string) []domain.AuditRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.AuditRecord
	for _, r := range s.records {
		if r.ActorID == actorID {
			out = append(out, r)
		}
	}
	return out
}

func (s *collectingService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func TestDispatcher_ProcessesAllRecords(t *testing.T) {
	svc := &collectingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 20; i++ {
		d.Record(domain.AuditRecord{ActorID: "u-1", Action: domain.AuditArticleCreated})
	}

	deadline := time.After(2 * time.Second)
	for svc.count() < 20 {
		select {
		case <-deadline:
			t.Fatalf("expected 20 records, got %d", svc.count())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcher_PerActorOrdering(t *testing.T) {
	svc := &collectingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Record(domain.AuditRecord{ActorID: "u-1", Subject: string(rune('a' + i)), Action: domain.AuditArticleUpdated})
	}

	deadline := time.After(2 * time.Second)
	for svc.count() < 10 {
		select {
		case <-deadline:
			t.Fatalf("expected 10 records, got %d", svc.count())
		case <-time.After(10 * time.Millisecond):
		}
	}

	got := svc.byActor("u-1")
	for i, r := range got {
		if r.Subject != string(rune('a'+i)) {
			t.Fatalf("per-actor order broken at %d: %q", i, r.Subject)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &collectingService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
