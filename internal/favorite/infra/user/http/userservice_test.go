package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/social-profile-service/internal/favorite/app/user"
	"github.com/klwxsrx/social-profile-service/internal/favorite/domain"
	userhttp "github.com/klwxsrx/social-profile-service/internal/favorite/infra/user/http"
	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
	internalhttp "github.com/klwxsrx/social-profile-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

func TestUserService_Get(t *testing.T) {
	t.Parallel()
	deletedID := uuid.New()

	tests := []struct {
		name    string
		status  int
		body    string
		err     error
		deleted bool
	}{
		{
			name:    "deleted user",
			status:  http.StatusOK,
			body:    `{"id":"` + deletedID.String() + `","deletedAt":"2024-06-01T12:00:00Z"}`,
			deleted: true,
		},
		{
			name:   "missing user",
			status: http.StatusNotFound,
			body:   `{"error":"Not Found"}`,
			err:    user.ErrUserNotFound,
		},
		{
			name:   "unavailable",
			status: http.StatusServiceUnavailable,
			body:   `{"error":"Service Unavailable"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/"+deletedID.String(), r.URL.Path)
				assert.Equal(t, string(auth.ServiceNameProfileWorker), r.Header.Get(internalhttp.HeaderAuthServiceName))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			client := pkghttp.NewClientFactory().InitClient(
				userhttp.Destination,
				server.URL,
				internalhttp.WithServiceNameAuth(auth.ServiceNameProfileWorker),
			)

			data, err := userhttp.NewUserService(client).Get(context.Background(), domain.UserID{UUID: deletedID})
			switch {
			case tt.err != nil:
				require.ErrorIs(t, err, tt.err)
			case tt.status != http.StatusOK:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.deleted, data.IsDeleted())
			}
		})
	}
}
