package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/favorite/app/service"
	"github.com/klwxsrx/social-profile-service/internal/favorite/domain"
	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/social-profile-service/pkg/auth"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

type (
	FavoriteOut struct {
		Msg       string    `json:"msg,omitempty"`
		ID        uuid.UUID `json:"id"`
		UserID    uuid.UUID `json:"userID"`
		ItemID    string    `json:"item"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	FavoritesOut struct {
		Favorites []FavoriteOut `json:"favorites"`
	}

	MessageOut struct {
		Msg string `json:"msg"`
	}
)

func toFavoriteOut(msg string, data *service.FavoriteData) FavoriteOut {
	return FavoriteOut{
		Msg:       msg,
		ID:        data.ID.UUID,
		UserID:    data.UserID.UUID,
		ItemID:    data.ItemID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toFavoritesOut(favorites []service.FavoriteData) FavoritesOut {
	result := make([]FavoriteOut, 0, len(favorites))
	for i := range favorites {
		result = append(result, toFavoriteOut("", &favorites[i]))
	}

	return FavoritesOut{Favorites: result}
}

func callerUserID(r *http.Request) (domain.UserID, error) {
	userID, ok := auth.CallerUserID(r.Context())
	if !ok {
		return domain.UserID{}, fmt.Errorf("%w: request must be made on behalf of a user", pkgauth.ErrPermissionDenied)
	}

	return domain.UserID{UUID: userID}, nil
}

func setErrorStatusCode(w pkghttp.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrFavoriteNotFound):
		w.SetStatusCode(http.StatusNotFound)
	case errors.Is(err, service.ErrFavoriteForbidden):
		w.SetStatusCode(http.StatusForbidden)
	case errors.Is(err, service.ErrFavoriteAlreadyExists):
		w.SetStatusCode(http.StatusConflict)
	}
}
