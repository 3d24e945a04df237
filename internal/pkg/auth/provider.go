package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/pkg/auth"
)

type (
	// Token carries the principal asserted by the API gateway headers.
	Token struct {
		principal Principal
	}

	provider struct{}
)

func NewUserToken(userID uuid.UUID) Token {
	return Token{principal: Principal{UserID: &userID}}
}

func NewAdminUserToken(adminUserID string) Token {
	return Token{principal: Principal{AdminUserID: &adminUserID}}
}

func NewServiceToken(name ServiceName) Token {
	return Token{principal: Principal{ServiceName: &name}}
}

func (t Token) Type() auth.PrincipalType {
	return t.principal.Type()
}

func NewProvider() auth.Provider[Principal] {
	return provider{}
}

func (provider) Authenticate(_ context.Context, token auth.Token) (Authentication, error) {
	t, ok := token.(Token)
	if !ok || t.principal.ID() == nil {
		return nil, fmt.Errorf("unknown token with type %s", token.Type())
	}

	return auth.NewAuthentication(t.principal), nil
}
