package services

import (
	"fmt"

	"storesapi/internal/domain"
)

type requirement struct {
	tokenType string
	fresh     bool
	admin     bool
}

var (
	open        = requirement{}
	accessToken = requirement{tokenType: domain.TokenTypeAccess}
)

// Operations absent from this table are denied.
var defaultRules = map[domain.Operation]requirement{
	domain.OpStoreList:   open,
	domain.OpStoreCreate: open,
	domain.OpStoreRead:   open,
	domain.OpStoreDelete: open,

	domain.OpItemList:   open,
	domain.OpItemCreate: {tokenType: domain.TokenTypeAccess, fresh: true},
	domain.OpItemRead:   accessToken,
	domain.OpItemUpdate: open,
	domain.OpItemDelete: {tokenType: domain.TokenTypeAccess, admin: true},

	domain.OpTagList:   open,
	domain.OpTagCreate: open,
	domain.OpTagRead:   open,
	domain.OpTagDelete: open,
	domain.OpTagLink:   open,
	domain.OpTagUnlink: open,

	domain.OpUserRead:   accessToken,
	domain.OpUserDelete: {tokenType: domain.TokenTypeAccess, admin: true},

	domain.OpAuthRefresh: {tokenType: domain.TokenTypeRefresh},
	domain.OpAuthLogout:  accessToken,
}

type policy struct {
	tokens domain.TokenService
	rules  map[domain.Operation]requirement
}

// NewPolicy returns the AuthorizationPolicy for the API. Freshness is checked through tokens.
func NewPolicy(tokens domain.TokenService) domain.AuthorizationPolicy {
	return &policy{tokens: tokens, rules: defaultRules}
}

func (p *policy) TokenType(op domain.Operation) string {
	rule, ok := p.rules[op]
	if !ok {
		return domain.TokenTypeAccess
	}
	return rule.tokenType
}

func (p *policy) Authorize(claims *domain.Claims, op domain.Operation) error {
	rule, ok := p.rules[op]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownOperation, op)
	}
	if rule.tokenType == "" {
		return nil
	}
	if claims == nil || claims.Type != rule.tokenType {
		return domain.ErrTokenInvalid
	}
	if rule.fresh {
		if err := p.tokens.RequireFresh(claims); err != nil {
			return err
		}
	}
	if rule.admin && !claims.IsAdmin {
		return domain.ErrAdminRequired
	}
	return nil
}
