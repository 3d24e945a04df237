package auth

import (
	"context"
	"errors"
)

var (
	ErrUnauthenticated        = errors.New("not authenticated")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrAuthenticationNotFound = errors.New("authentication not found")
)

type (
	PrincipalType string

	Principal interface {
		Type() PrincipalType
		ID() *string
	}

	// Token is the caller credential extracted from a request, Provider resolves it to a principal.
	Token interface {
		Type() PrincipalType
	}

	Provider[T Principal] interface {
		Authenticate(context.Context, Token) (Authentication[T], error)
	}

	// Authentication has a nil principal for an anonymous caller.
	Authentication[T Principal] interface {
		Principal() *T
	}

	authentication[T Principal] struct {
		principal *T
	}
)

func NewAuthentication[T Principal](principal T) Authentication[T] {
	return authentication[T]{principal: &principal}
}

func Anonymous[T Principal]() Authentication[T] {
	return authentication[T]{}
}

func (a authentication[T]) Principal() *T {
	return a.principal
}
