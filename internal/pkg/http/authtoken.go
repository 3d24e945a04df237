package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/social-profile-service/pkg/auth"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

const (
	HeaderAuthUserID      = "X-Auth-User-ID"
	HeaderAuthAdminUserID = "X-Auth-AdminUser-ID"
	HeaderAuthServiceName = "X-Auth-Service-Name"
)

// WithAuth trusts the identity headers set by the API gateway, the first present header wins.
func WithAuth() pkghttp.ServerOption {
	return pkghttp.WithAuth(
		auth.NewProvider(),
		headerToken(HeaderAuthUserID, auth.NewUserToken),
		headerToken(HeaderAuthAdminUserID, auth.NewAdminUserToken),
		headerToken(HeaderAuthServiceName, func(name string) auth.Token {
			return auth.NewServiceToken(auth.ServiceName(name))
		}),
	)
}

func WithServiceNameAuth(serviceName auth.ServiceName) pkghttp.ClientOption {
	return func(c *pkghttp.ClientImpl) {
		c.RESTClient.SetHeader(HeaderAuthServiceName, string(serviceName))
	}
}

func headerToken[T string | uuid.UUID](header string, newToken func(T) auth.Token) pkghttp.AuthTokenProvider {
	return func(r *http.Request) (pkgauth.Token, bool) {
		var empty T
		value, err := pkghttp.ParseRequest(r, pkghttp.Header[T](header), nil)
		if err != nil || value == empty {
			return nil, false
		}

		return newToken(value), true
	}
}
