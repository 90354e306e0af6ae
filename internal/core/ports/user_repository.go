package ports

import (
	"context"

	"github.com/stayora/booking-platform/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
//
// FindByEmail returns domain.ErrUserNotFound when no account matches.
// Create returns the stored user (id and timestamps populated) and must
// return domain.ErrEmailTaken on a uniqueness violation, so callers never
// have to inspect driver error text.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
