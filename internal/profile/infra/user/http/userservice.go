package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/klwxsrx/social-profile-service/internal/profile/app/user"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

const (
	Destination pkghttp.Destination = "user"

	getUserByIDPath = "/users/{userID}"
)

type (
	userService struct {
		client pkghttp.Client
	}

	userOut struct {
		ID        domain.UserID `json:"id"`
		DeletedAt *time.Time    `json:"deletedAt"`
	}
)

func NewUserService(client pkghttp.Client) user.Service {
	return userService{client: client}
}

func (s userService) Get(ctx context.Context, userID domain.UserID) (*user.Data, error) {
	var out userOut
	resp, err := s.client.NewRequest(ctx).
		SetPathParam("userID", userID.String()).
		SetResult(&out).
		Get(getUserByIDPath)
	if err != nil {
		return nil, fmt.Errorf("request user.getUserByID: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, user.ErrUserNotFound
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("request user.getUserByID: invalid status code %d", resp.StatusCode())
	}

	return &user.Data{
		ID:        out.ID,
		DeletedAt: out.DeletedAt,
	}, nil
}
