package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/favorite/app/service"
	"github.com/klwxsrx/social-profile-service/internal/favorite/domain"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

type (
	UnsaveFavoriteHandler struct {
		favoriteService service.Favorite
	}

	VerifyFavoriteOwnershipHandler struct {
		favoriteService service.Favorite
	}

	ownershipOut struct {
		FavoriteID uuid.UUID `json:"favoriteID"`
		UserID     uuid.UUID `json:"userID"`
	}
)

func NewUnsaveFavoriteHandler(favoriteService service.Favorite) UnsaveFavoriteHandler {
	return UnsaveFavoriteHandler{favoriteService: favoriteService}
}

func (h UnsaveFavoriteHandler) Method() string {
	return http.MethodDelete
}

func (h UnsaveFavoriteHandler) Path() string {
	return "/favorites/{favoriteID}"
}

func (h UnsaveFavoriteHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	favoriteID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("favoriteID"), err)
	if err != nil {
		return err
	}

	userID, err := callerUserID(r)
	if err != nil {
		return err
	}

	err = h.favoriteService.UnsaveOwned(r.Context(), userID, domain.FavoriteID{UUID: favoriteID})
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(MessageOut{Msg: "Post deleted successfully from favorites!"})
	return nil
}

func NewVerifyFavoriteOwnershipHandler(favoriteService service.Favorite) VerifyFavoriteOwnershipHandler {
	return VerifyFavoriteOwnershipHandler{favoriteService: favoriteService}
}

func (h VerifyFavoriteOwnershipHandler) Method() string {
	return http.MethodGet
}

func (h VerifyFavoriteOwnershipHandler) Path() string {
	return "/favorites/{favoriteID}/ownership"
}

func (h VerifyFavoriteOwnershipHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	favoriteID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("favoriteID"), err)
	if err != nil {
		return err
	}

	userID, err := callerUserID(r)
	if err != nil {
		return err
	}

	err = h.favoriteService.VerifyOwnership(r.Context(), userID, domain.FavoriteID{UUID: favoriteID})
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(ownershipOut{FavoriteID: favoriteID, UserID: userID.UUID})
	return nil
}
