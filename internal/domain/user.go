package domain

import (
	"context"
	"time"
)

// User represents a registered user. IsAdmin is the role flag granting admin-only operations.
// swagger:model User
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(username, passwordHash, salt string, isAdmin bool, createdAt time.Time) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Salt:         salt,
		IsAdmin:      isAdmin,
		CreatedAt:    createdAt,
	}
}

// Identity returns the token subject for this user.
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, IsAdmin: u.IsAdmin}
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	// Create inserts the user and sets its ID. Returns ErrDuplicateUsername on a clash.
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	SetAdmin(ctx context.Context, id int64, isAdmin bool) error
	Delete(ctx context.Context, id int64) error
}

// TokenPair is returned by a successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserService defines registration, authentication and user management.
type UserService interface {
	Register(ctx context.Context, username, password string) (*User, error)
	// Login verifies credentials and returns a fresh access token and a refresh token.
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	// Refresh issues a non-fresh access token for the refresh token's subject.
	Refresh(ctx context.Context, claims *Claims) (string, error)
	// Logout revokes the presented token.
	Logout(ctx context.Context, claims *Claims) error
	// EnsureAdmin creates the user if missing and grants it the admin flag.
	EnsureAdmin(ctx context.Context, username, password string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Delete(ctx context.Context, id int64) error
}
