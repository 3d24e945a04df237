package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/klwxsrx/social-profile-service/internal/favorite/app/service"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

type SaveFavoriteHandler struct {
	favoriteService service.Favorite
}

func NewSaveFavoriteHandler(favoriteService service.Favorite) SaveFavoriteHandler {
	return SaveFavoriteHandler{favoriteService: favoriteService}
}

func (h SaveFavoriteHandler) Method() string {
	return http.MethodPost
}

func (h SaveFavoriteHandler) Path() string {
	return "/favorites"
}

func (h SaveFavoriteHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[saveFavoriteIn](), err)
	if err != nil {
		return err
	}

	in.ItemID = strings.TrimSpace(in.ItemID)
	if in.ItemID == "" {
		return fmt.Errorf("%w: item must be not empty", pkghttp.ErrParsingError)
	}

	userID, err := callerUserID(r)
	if err != nil {
		return err
	}

	favorite, err := h.favoriteService.Save(r.Context(), userID, in.ItemID)
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(toFavoriteOut("Post successfully added to favorites!", favorite))
	w.SetStatusCode(http.StatusCreated)
	return nil
}

type saveFavoriteIn struct {
	ItemID string `json:"item"`
}
