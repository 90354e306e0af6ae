package ports

import (
	"context"
	"time"

	"github.com/stayora/booking-platform/internal/core/domain"
)

// AuthEventInput is the DTO handed from the auth flow to the audit pipeline.
type AuthEventInput struct {
	Email      string
	Action     string
	Outcome    string
	RemoteAddr string
	Timestamp  time.Time
}

// AuditSink accepts audit events for asynchronous recording. Enqueueing is
// best-effort; the auth flow never blocks on it.
type AuditSink interface {
	Enqueue(event AuthEventInput)
}

// AuditService records authentication activity.
type AuditService interface {
	Record(ctx context.Context, event AuthEventInput) error
	Recent(ctx context.Context, limit int) ([]domain.AuthEvent, error)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuthEvent, error)
}
