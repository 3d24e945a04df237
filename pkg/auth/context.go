package auth

import "context"

type (
	contextKey struct{}

	// storedAuthentication keeps the principal untyped, readers assert it to their own principal type.
	storedAuthentication struct {
		principal Principal
	}
)

func WithAuthentication[T Principal](ctx context.Context, authentication Authentication[T]) context.Context {
	var stored storedAuthentication
	if principal := authentication.Principal(); principal != nil {
		stored.principal = *principal
	}

	return context.WithValue(ctx, contextKey{}, stored)
}

// GetAuthentication returns false when ctx carries no authentication or its principal is not a T.
func GetAuthentication[T Principal](ctx context.Context) (Authentication[T], bool) {
	stored, ok := ctx.Value(contextKey{}).(storedAuthentication)
	if !ok {
		return nil, false
	}
	if stored.principal == nil {
		return Anonymous[T](), true
	}

	principal, ok := stored.principal.(T)
	if !ok {
		return nil, false
	}

	return NewAuthentication(principal), true
}

func GetPrincipal[T Principal](ctx context.Context) (T, bool) {
	authentication, ok := GetAuthentication[T](ctx)
	if !ok || authentication.Principal() == nil {
		var empty T
		return empty, false
	}

	return *authentication.Principal(), true
}

func IsAuthenticated(ctx context.Context) (bool, error) {
	stored, ok := ctx.Value(contextKey{}).(storedAuthentication)
	if !ok {
		return false, ErrAuthenticationNotFound
	}

	return stored.principal != nil, nil
}
