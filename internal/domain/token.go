package domain

import (
	"context"
	"time"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Identity is the subject a token is issued for.
type Identity struct {
	UserID  int64
	IsAdmin bool
}

// Claims are the facts embedded in a validated token.
type Claims struct {
	UserID    int64
	JTI       string
	Type      string
	Fresh     bool
	IsAdmin   bool
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and validates signed bearer tokens.
type TokenService interface {
	// Issue returns a signed access token for identity.
	Issue(identity Identity, fresh bool) (string, *Claims, error)
	// IssueRefresh returns a signed refresh token for identity. Refresh tokens are never fresh.
	IssueRefresh(identity Identity) (string, *Claims, error)
	// Validate checks signature, format and expiry. It does not consult revocation.
	Validate(raw string) (*Claims, error)
	// RequireFresh returns ErrFreshTokenRequired unless claims are fresh.
	RequireFresh(claims *Claims) error
}

// RevocationRegistry records token identifiers invalidated before their natural expiry.
// Implementations must be safe for concurrent use.
type RevocationRegistry interface {
	// Revoke records jti. Revoking an already revoked jti is a no-op.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
