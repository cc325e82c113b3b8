package domain

import (
	"errors"
	"fmt"
)

// Generic sentinel errors. Entity-specific errors wrap these so callers can
// match either the specific or the generic form with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// Resource errors.
var (
	ErrStoreNotFound = fmt.Errorf("store %w", ErrNotFound)
	ErrItemNotFound  = fmt.Errorf("item %w", ErrNotFound)
	ErrTagNotFound   = fmt.Errorf("tag %w", ErrNotFound)
	ErrUserNotFound  = fmt.Errorf("user %w", ErrNotFound)
	ErrLinkNotFound  = fmt.Errorf("item tag link %w", ErrNotFound)

	ErrDuplicateStoreName = fmt.Errorf("%w: store name already exists", ErrConflict)
	ErrDuplicateTagName   = fmt.Errorf("%w: tag name already exists", ErrConflict)
	ErrDuplicateUsername  = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrTagAlreadyLinked   = fmt.Errorf("%w: item already has this tag", ErrConflict)
	ErrTagInUse           = fmt.Errorf("%w: tag is still associated with items", ErrConflict)

	ErrStoreMismatch = fmt.Errorf("%w: item and tag belong to different stores", ErrValidation)
)

// Token and authorization errors.
var (
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrFreshTokenRequired = errors.New("fresh token required")
	ErrAdminRequired      = errors.New("admin privilege required")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownOperation means an operation has no authorization rule. It is a
	// wiring fault rather than a client error.
	ErrUnknownOperation = errors.New("unknown operation")
)
