package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/stayora/booking-platform/internal/core/domain"
	"github.com/stayora/booking-platform/internal/core/ports"
)

const minPasswordLength = 8

// AuthService implements registration and login on top of the user
// repository, password hasher, and token issuer. It holds no mutable state
// and is safe for concurrent use.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	issuer   ports.TokenIssuer
	audit    ports.AuditSink
	validate *validator.Validate
	log      zerolog.Logger
}

// NewAuthService wires the credential core. audit may be nil, in which case
// no audit events are emitted.
func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	audit ports.AuditSink,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		issuer:   issuer,
		audit:    audit,
		validate: validator.New(),
		log:      log,
	}
}

// Register creates a user account and returns a session token alongside the
// stored user. Validation rules run in a fixed order: required fields, email
// shape, password length — the first failing rule wins.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	if err := s.validateRegister(in); err != nil {
		return "", nil, err
	}

	// Pre-check gives the common case a clean conflict without burning a
	// bcrypt round; the unique index still backstops concurrent registrations.
	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		s.emitAudit(in.Email, domain.AuditActionRegister, domain.AuditOutcomeConflict)
		return "", nil, domain.ErrEmailTaken
	case errors.Is(err, domain.ErrUserNotFound):
		// free to register
	default:
		s.log.Error().Err(err).Str("email", in.Email).Msg("uniqueness check failed")
		return "", nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.log.Error().Err(err).Msg("password hashing failed")
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Role:         domain.ParseRole(in.Role),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			// Lost a race against a concurrent registration for the same
			// email; same outcome as the pre-check.
			s.emitAudit(in.Email, domain.AuditActionRegister, domain.AuditOutcomeConflict)
			return "", nil, domain.ErrEmailTaken
		}
		s.log.Error().Err(err).Str("email", in.Email).Msg("user insert failed")
		s.emitAudit(in.Email, domain.AuditActionRegister, domain.AuditOutcomeError)
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.issuer.Issue(created.ID, created.Email, created.Role.Wire())
	if err != nil {
		s.log.Error().Err(err).Str("user_id", created.ID).Msg("token issuance failed")
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().
		Str("user_id", created.ID).
		Str("email", created.Email).
		Str("role", created.Role.Wire()).
		Msg("user registered")
	s.emitAudit(created.Email, domain.AuditActionRegister, domain.AuditOutcomeSuccess)

	return token, created, nil
}

// Login verifies credentials and returns a fresh session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.emitAudit(email, domain.AuditActionLogin, domain.AuditOutcomeUnauthorized)
			return "", nil, domain.ErrInvalidCredentials
		}
		s.log.Error().Err(err).Str("email", email).Msg("user lookup failed")
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("stored password hash is malformed")
		return "", nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.log.Warn().Str("user_id", user.ID).Msg("login with wrong password")
		s.emitAudit(email, domain.AuditActionLogin, domain.AuditOutcomeUnauthorized)
		return "", nil, domain.ErrInvalidCredentials
	}

	// Stored role strings may predate the current enumeration; normalise
	// rather than trusting foreign data.
	user.Role = domain.ParseRole(user.Role.Wire())

	token, err := s.issuer.Issue(user.ID, user.Email, user.Role.Wire())
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("token issuance failed")
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user logged in")
	s.emitAudit(email, domain.AuditActionLogin, domain.AuditOutcomeSuccess)

	return token, user, nil
}

func (s *AuthService) validateRegister(in ports.RegisterInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: email, password, first name and last name are required", domain.ErrInvalidInput)
	}
	if !strings.Contains(in.Email, "@") || !strings.Contains(in.Email, ".") {
		return fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}
	return nil
}

func (s *AuthService) emitAudit(email, action, outcome string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuthEventInput{
		Email:     email,
		Action:    action,
		Outcome:   outcome,
		Timestamp: time.Now().UTC(),
	})
}
