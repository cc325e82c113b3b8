package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "storesapi/internal/delivery/http/helpers"
	"storesapi/internal/domain"
)

type contextKey string

const claimsKey contextKey = "claims"

// SetClaims returns a context carrying the validated token claims. Used by auth middleware.
func SetClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the validated token claims from the context, if present.
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*domain.Claims)
	return claims, ok && claims != nil
}

// Authenticator guards handlers according to an AuthorizationPolicy.
type Authenticator struct {
	tokens      domain.TokenService
	revocations domain.RevocationRegistry
	policy      domain.AuthorizationPolicy
	logger      *slog.Logger
}

// NewAuthenticator returns an Authenticator that validates tokens with tokens, checks them
// against revocations, and authorizes them with policy.
func NewAuthenticator(tokens domain.TokenService, revocations domain.RevocationRegistry, policy domain.AuthorizationPolicy, logger *slog.Logger) *Authenticator {
	return &Authenticator{tokens: tokens, revocations: revocations, policy: policy, logger: logger}
}

// Require returns a wrapper that enforces op. Operations the policy leaves open pass
// through untouched. Otherwise the Bearer token is validated, checked for revocation and
// authorized; on success its claims are set in the request context. Failures respond
// with 401 and do not call next.
func (a *Authenticator) Require(op domain.Operation) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if a.policy.TokenType(op) == "" {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				h.WriteTokenError(w, nil)
				return
			}
			claims, err := a.authenticate(r.Context(), raw, op)
			if err != nil {
				a.logger.DebugContext(r.Context(), "auth rejected", "op", string(op), "path", r.URL.Path, "err", err)
				if !isTokenError(err) {
					h.WriteServiceError(w, r, a.logger, err)
					return
				}
				h.WriteTokenError(w, err)
				return
			}
			next(w, r.WithContext(SetClaims(r.Context(), claims)))
		}
	}
}

func (a *Authenticator) authenticate(ctx context.Context, raw string, op domain.Operation) (*domain.Claims, error) {
	claims, err := a.tokens.Validate(raw)
	if err != nil {
		return nil, err
	}
	revoked, err := a.revocations.IsRevoked(ctx, claims.JTI)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}
	if err := a.policy.Authorize(claims, op); err != nil {
		return nil, err
	}
	return claims, nil
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(auth[len(prefix):])
	return token, token != ""
}

func isTokenError(err error) bool {
	for _, target := range []error{
		domain.ErrTokenExpired,
		domain.ErrTokenInvalid,
		domain.ErrTokenRevoked,
		domain.ErrFreshTokenRequired,
		domain.ErrAdminRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
