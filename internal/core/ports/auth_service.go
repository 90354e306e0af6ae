package ports

import (
	"context"

	"github.com/stayora/booking-platform/internal/core/domain"
)

// RegisterInput carries registration data from the transport layer.
// The validate tags back the required-fields rule; email shape and password
// length are checked separately so the rules fail in a fixed order.
type RegisterInput struct {
	Email     string `validate:"required"`
	Password  string `validate:"required"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Phone     string
	Role      string
}

// AuthService is the credential issuance and verification core.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
