package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/profile/app/service"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

type (
	ProfileOut struct {
		Msg        string    `json:"msg,omitempty"`
		ID         uuid.UUID `json:"id"`
		OwnerID    uuid.UUID `json:"ownerID"`
		PictureRef *string   `json:"pictureRef"`
		Posts      []string  `json:"posts"`
		Reviews    []string  `json:"reviews"`
		Favorites  []string  `json:"favorites"`
		CreatedAt  time.Time `json:"createdAt"`
		UpdatedAt  time.Time `json:"updatedAt"`
	}

	MessageOut struct {
		Msg string `json:"msg"`
	}
)

func toProfileOut(msg string, data *service.ProfileData) ProfileOut {
	return ProfileOut{
		Msg:        msg,
		ID:         data.ID.UUID,
		OwnerID:    data.OwnerID.UUID,
		PictureRef: data.PictureRef,
		Posts:      data.Posts,
		Reviews:    data.Reviews,
		Favorites:  data.Favorites,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func setErrorStatusCode(w pkghttp.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrReferenceNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, domain.ErrUnknownReferenceKind):
		w.SetStatusCode(http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidProfileUpdate):
		w.SetStatusCode(http.StatusForbidden)
	case errors.Is(err, service.ErrProfileAlreadyExists),
		errors.Is(err, service.ErrProfileConcurrentUpdate):
		w.SetStatusCode(http.StatusConflict)
	}
}
