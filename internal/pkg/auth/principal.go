package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/pkg/auth"
)

const (
	PrincipalTypeUser      auth.PrincipalType = "user"
	PrincipalTypeAdminUser auth.PrincipalType = "adminUser"
	PrincipalTypeService   auth.PrincipalType = "service"
)

const (
	ServiceNameProfileService ServiceName = "social-profile-service"
	ServiceNameProfileWorker  ServiceName = "social-profile-worker"
)

type (
	// Principal has exactly one of its fields set.
	Principal struct {
		UserID      *uuid.UUID
		AdminUserID *string
		ServiceName *ServiceName
	}

	ServiceName string

	PermissionService = auth.PermissionService[Principal]
	Permission        = auth.Permission[Principal]
	Authentication    = auth.Authentication[Principal]
)

func NewPermissionService() PermissionService {
	return auth.NewPermissionService[Principal]()
}

func Authenticated() Permission {
	return auth.AnyPrincipal[Principal]()
}

func Privileged() Permission {
	return Principal.IsPrivileged
}

// CanActAsUser allows the user itself and privileged principals.
func CanActAsUser(userID uuid.UUID) Permission {
	return auth.AnyOf(
		func(p Principal) bool { return p.IsUser(userID) },
		Privileged(),
	)
}

// CallerUserID returns the user on whose behalf the request is made.
func CallerUserID(ctx context.Context) (uuid.UUID, bool) {
	principal, ok := auth.GetPrincipal[Principal](ctx)
	if !ok || principal.UserID == nil {
		return uuid.Nil, false
	}

	return *principal.UserID, true
}

func WithUserAuthentication(ctx context.Context, userID uuid.UUID) context.Context {
	return withPrincipal(ctx, Principal{UserID: &userID})
}

// WithServiceAuthentication authenticates background processing, e.g. message handlers, as the given service.
func WithServiceAuthentication(ctx context.Context, name ServiceName) context.Context {
	return withPrincipal(ctx, Principal{ServiceName: &name})
}

func withPrincipal(ctx context.Context, principal Principal) context.Context {
	return auth.WithAuthentication(ctx, auth.NewAuthentication(principal))
}

func (p Principal) Type() auth.PrincipalType {
	switch {
	case p.UserID != nil:
		return PrincipalTypeUser
	case p.AdminUserID != nil:
		return PrincipalTypeAdminUser
	case p.ServiceName != nil:
		return PrincipalTypeService
	default:
		return "unknown"
	}
}

func (p Principal) ID() *string {
	switch {
	case p.UserID != nil:
		v := p.UserID.String()
		return &v
	case p.AdminUserID != nil:
		return p.AdminUserID
	case p.ServiceName != nil:
		return (*string)(p.ServiceName)
	default:
		return nil
	}
}

func (p Principal) IsUser(id uuid.UUID) bool {
	return p.UserID != nil && *p.UserID == id
}

// IsPrivileged reports whether the principal may act on behalf of any user.
func (p Principal) IsPrivileged() bool {
	return p.AdminUserID != nil || p.ServiceName != nil
}
