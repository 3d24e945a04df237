package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
	internalhttp "github.com/klwxsrx/social-profile-service/internal/pkg/http"
	"github.com/klwxsrx/social-profile-service/internal/profile/app/user"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	userhttp "github.com/klwxsrx/social-profile-service/internal/profile/infra/user/http"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

func TestUserService_Get(t *testing.T) {
	t.Parallel()
	existingID := uuid.New()
	deletedID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, string(auth.ServiceNameProfileService), r.Header.Get(internalhttp.HeaderAuthServiceName))
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/users/" + existingID.String():
			_, _ = w.Write([]byte(`{"id":"` + existingID.String() + `","deletedAt":null}`))
		case "/users/" + deletedID.String():
			_, _ = w.Write([]byte(`{"id":"` + deletedID.String() + `","deletedAt":"2024-06-01T12:00:00Z"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Not Found"}`))
		}
	}))
	t.Cleanup(server.Close)

	client := pkghttp.NewClientFactory().InitClient(
		userhttp.Destination,
		server.URL,
		internalhttp.WithServiceNameAuth(auth.ServiceNameProfileService),
	)
	service := userhttp.NewUserService(client)

	data, err := service.Get(context.Background(), domain.UserID{UUID: existingID})
	require.NoError(t, err)
	assert.Equal(t, existingID, data.ID.UUID)
	assert.False(t, data.IsDeleted())

	data, err = service.Get(context.Background(), domain.UserID{UUID: deletedID})
	require.NoError(t, err)
	assert.True(t, data.IsDeleted())

	_, err = service.Get(context.Background(), domain.UserID{UUID: uuid.New()})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
