package domain

// Operation names an action an endpoint performs, for authorization decisions.
type Operation string

const (
	OpStoreList   Operation = "store:list"
	OpStoreCreate Operation = "store:create"
	OpStoreRead   Operation = "store:read"
	OpStoreDelete Operation = "store:delete"

	OpItemList   Operation = "item:list"
	OpItemCreate Operation = "item:create"
	OpItemRead   Operation = "item:read"
	OpItemUpdate Operation = "item:update"
	OpItemDelete Operation = "item:delete"

	OpTagList   Operation = "tag:list"
	OpTagCreate Operation = "tag:create"
	OpTagRead   Operation = "tag:read"
	OpTagDelete Operation = "tag:delete"
	OpTagLink   Operation = "tag:link"
	OpTagUnlink Operation = "tag:unlink"

	OpUserRead   Operation = "user:read"
	OpUserDelete Operation = "user:delete"

	OpAuthRefresh Operation = "auth:refresh"
	OpAuthLogout  Operation = "auth:logout"
)

// AuthorizationPolicy maps validated, non-revoked claims to permitted operations.
type AuthorizationPolicy interface {
	// TokenType returns the token type op requires, or "" if op is open to anonymous callers.
	TokenType(op Operation) string
	// Authorize returns nil if claims permit op. Ops without a rule fail with ErrUnknownOperation.
	Authorize(claims *Claims, op Operation) error
}
