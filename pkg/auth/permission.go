package auth

import "context"

type (
	// Permission is consulted for authenticated principals only.
	Permission[T Principal] func(principal T) bool

	PermissionService[T Principal] interface {
		Check(context.Context, Permission[T]) error
	}

	permissionService[T Principal] struct{}
)

func NewPermissionService[T Principal]() PermissionService[T] {
	return permissionService[T]{}
}

// Check denies anonymous callers with ErrPermissionDenied.
func (permissionService[T]) Check(ctx context.Context, permission Permission[T]) error {
	authentication, ok := GetAuthentication[T](ctx)
	if !ok {
		return ErrAuthenticationNotFound
	}

	principal := authentication.Principal()
	if principal == nil || !permission(*principal) {
		return ErrPermissionDenied
	}

	return nil
}

func AnyPrincipal[T Principal]() Permission[T] {
	return func(T) bool {
		return true
	}
}

func AnyOf[T Principal](permissions ...Permission[T]) Permission[T] {
	return func(principal T) bool {
		for _, permission := range permissions {
			if permission(principal) {
				return true
			}
		}
		return false
	}
}
