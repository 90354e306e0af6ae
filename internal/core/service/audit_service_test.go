package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayora/booking-platform/internal/core/domain"
	"github.com/stayora/booking-platform/internal/core/ports"
)

type stubAuditRepo struct {
	inserted  []*domain.AuthEvent
	insertErr error
	listed    []domain.AuthEvent
	lastLimit int
}

func (r *stubAuditRepo) Insert(_ context.Context, event *domain.AuthEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, event)
	return nil
}

func (r *stubAuditRepo) ListRecent(_ context.Context, limit int) ([]domain.AuthEvent, error) {
	r.lastLimit = limit
	return r.listed, nil
}

func TestAuditService_RecordPersistsEvent(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	in := ports.AuthEventInput{
		Email:     "a@b.com",
		Action:    domain.AuditActionLogin,
		Outcome:   domain.AuditOutcomeSuccess,
		Timestamp: time.Now().UTC(),
	}
	if err := svc.Record(context.Background(), in); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}
	if got := repo.inserted[0]; got.Email != in.Email || got.Action != in.Action || got.Outcome != in.Outcome {
		t.Fatalf("stored event differs from input: %+v", got)
	}
}

func TestAuditService_RecordWrapsRepositoryError(t *testing.T) {
	repo := &stubAuditRepo{insertErr: errors.New("disk full")}
	svc := NewAuditService(repo, zerolog.Nop())

	err := svc.Record(context.Background(), ports.AuthEventInput{Email: "a@b.com"})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestAuditService_RecentDefaultsLimit(t *testing.T) {
	repo := &stubAuditRepo{listed: []domain.AuthEvent{{Email: "a@b.com"}}}
	svc := NewAuditService(repo, zerolog.Nop())

	events, err := svc.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if repo.lastLimit != defaultRecentLimit {
		t.Fatalf("expected default limit %d, got %d", defaultRecentLimit, repo.lastLimit)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}
