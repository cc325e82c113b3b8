package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storesapi/internal/domain"
)

const minPasswordLen = 8

type userService struct {
	userRepo    domain.UserRepository
	hasher      domain.PasswordHasher
	tokens      domain.TokenService
	revocations domain.RevocationRegistry
	now         func() time.Time
}

// NewUserService creates a UserService with the given repository and auth ports.
func NewUserService(userRepo domain.UserRepository, hasher domain.PasswordHasher, tokens domain.TokenService, revocations domain.RevocationRegistry) domain.UserService {
	return &userService{
		userRepo:    userRepo,
		hasher:      hasher,
		tokens:      tokens,
		revocations: revocations,
		now:         time.Now,
	}
}

func normalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if len([]rune(username)) > maxNameLen {
		return "", fmt.Errorf("%w: username must not exceed %d characters", domain.ErrValidation, maxNameLen)
	}
	return username, nil
}

func (s *userService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.create(ctx, username, password, false)
}

func (s *userService) create(ctx context.Context, username, password string, isAdmin bool) (*domain.User, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}
	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, err
	}
	user := domain.NewUser(username, hash, salt, isAdmin, s.now())
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	access, _, err := s.tokens.Issue(user.Identity(), true)
	if err != nil {
		return nil, err
	}
	refresh, _, err := s.tokens.IssueRefresh(user.Identity())
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh reloads the user so the new token reflects its current admin flag.
func (s *userService) Refresh(ctx context.Context, claims *domain.Claims) (string, error) {
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrTokenInvalid
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	access, _, err := s.tokens.Issue(user.Identity(), false)
	if err != nil {
		return "", err
	}
	return access, nil
}

func (s *userService) Logout(ctx context.Context, claims *domain.Claims) error {
	if err := s.revocations.Revoke(ctx, claims.JTI, claims.ExpiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *userService) EnsureAdmin(ctx context.Context, username, password string) (*domain.User, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return s.create(ctx, username, password, true)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsAdmin {
		if err := s.userRepo.SetAdmin(ctx, user.ID, true); err != nil {
			return nil, fmt.Errorf("failed to grant admin: %w", err)
		}
		user.IsAdmin = true
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
