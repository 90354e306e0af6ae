package ports

import (
	"context"
	"time"
)

// PasswordHasher computes and verifies one-way salted password hashes.
//
// Verify returns (false, nil) on a plain mismatch. A non-nil error means the
// stored hash itself is malformed, which is a data-integrity problem and is
// never conflated with a wrong password.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// TokenIssuer mints signed, time-bounded session tokens. Any signing error
// is fatal for the request; an unsigned token is never issued.
type TokenIssuer interface {
	Issue(userID, email, role string) (string, error)
}

// TokenDenylist revokes tokens ahead of their natural expiry. Entries only
// need to survive until expiresAt, after which the token is dead anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
