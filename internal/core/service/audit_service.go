package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stayora/booking-platform/internal/core/domain"
	"github.com/stayora/booking-platform/internal/core/ports"
)

const defaultRecentLimit = 50

// AuditService persists authentication activity and serves the admin
// listing. Recording is best-effort from the caller's point of view: the
// dispatcher logs failures, clients never see them.
type AuditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, log: log}
}

// Record writes one audit event.
func (s *AuditService) Record(ctx context.Context, in ports.AuthEventInput) error {
	event := &domain.AuthEvent{
		Email:      in.Email,
		Action:     in.Action,
		Outcome:    in.Outcome,
		RemoteAddr: in.RemoteAddr,
		Timestamp:  in.Timestamp,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record auth event: %w", err)
	}
	return nil
}

// Recent returns the newest audit events, capped at limit. Non-positive
// limits fall back to a sane default.
func (s *AuditService) Recent(ctx context.Context, limit int) ([]domain.AuthEvent, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	events, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list auth events: %w", err)
	}
	return events, nil
}
