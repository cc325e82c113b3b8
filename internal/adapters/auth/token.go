package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"storesapi/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Type    string `json:"type"`
	Fresh   bool   `json:"fresh"`
	IsAdmin bool   `json:"is_admin"`
}

type jwtService struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
}

// NewJWTService returns a TokenService that signs HS256 JWTs with the given secret.
// Every token carries a random jti so it can be revoked individually.
func NewJWTService(secret string, accessExpiry, refreshExpiry time.Duration) domain.TokenService {
	return &jwtService{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
		now:           time.Now,
	}
}

func (s *jwtService) Issue(identity domain.Identity, fresh bool) (string, *domain.Claims, error) {
	return s.sign(identity, domain.TokenTypeAccess, fresh, s.accessExpiry)
}

func (s *jwtService) IssueRefresh(identity domain.Identity) (string, *domain.Claims, error) {
	return s.sign(identity, domain.TokenTypeRefresh, false, s.refreshExpiry)
}

func (s *jwtService) sign(identity domain.Identity, tokenType string, fresh bool, expiry time.Duration) (string, *domain.Claims, error) {
	now := s.now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(identity.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Type:    tokenType,
		Fresh:   fresh,
		IsAdmin: identity.IsAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, toDomainClaims(identity.UserID, &claims), nil
}

func (s *jwtService) Validate(raw string) (*domain.Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("%w: missing jti", domain.ErrTokenInvalid)
	}
	if claims.Type != domain.TokenTypeAccess && claims.Type != domain.TokenTypeRefresh {
		return nil, fmt.Errorf("%w: unknown token type %q", domain.ErrTokenInvalid, claims.Type)
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", domain.ErrTokenInvalid)
	}
	return toDomainClaims(userID, claims), nil
}

func (s *jwtService) RequireFresh(claims *domain.Claims) error {
	if claims == nil || !claims.Fresh {
		return domain.ErrFreshTokenRequired
	}
	return nil
}

func toDomainClaims(userID int64, c *jwtClaims) *domain.Claims {
	out := &domain.Claims{
		UserID:  userID,
		JTI:     c.ID,
		Type:    c.Type,
		Fresh:   c.Fresh,
		IsAdmin: c.IsAdmin,
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}
