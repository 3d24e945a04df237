package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/favorite/app/service"
	"github.com/klwxsrx/social-profile-service/internal/favorite/domain"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

type (
	ListFavoritesHandler struct {
		favoriteService service.Favorite
	}

	ListUserFavoritesHandler struct {
		favoriteService service.Favorite
	}

	ListItemFavoritesHandler struct {
		favoriteService service.Favorite
	}

	CountItemFavoritesHandler struct {
		favoriteService service.Favorite
	}

	countOut struct {
		Count int `json:"count"`
	}
)

func NewListFavoritesHandler(favoriteService service.Favorite) ListFavoritesHandler {
	return ListFavoritesHandler{favoriteService: favoriteService}
}

func (h ListFavoritesHandler) Method() string {
	return http.MethodGet
}

func (h ListFavoritesHandler) Path() string {
	return "/favorites"
}

// Handle filters by the optional userID and itemID query parameters, each may be repeated.
func (h ListFavoritesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	var spec domain.FindFavoriteSpecification
	query := r.URL.Query()
	if query.Has("userID") {
		var userIDs []uuid.UUID
		userIDs, err = pkghttp.ParseRequest(r, pkghttp.QueryParameters[uuid.UUID]("userID"), err)
		for _, userID := range userIDs {
			spec.UserIDs = append(spec.UserIDs, domain.UserID{UUID: userID})
		}
	}
	if query.Has("itemID") {
		spec.ItemIDs, err = pkghttp.ParseRequest(r, pkghttp.QueryParameters[string]("itemID"), err)
	}
	if err != nil {
		return err
	}

	favorites, err := h.favoriteService.Find(r.Context(), spec)
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(toFavoritesOut(favorites))
	return nil
}

func NewListUserFavoritesHandler(favoriteService service.Favorite) ListUserFavoritesHandler {
	return ListUserFavoritesHandler{favoriteService: favoriteService}
}

func (h ListUserFavoritesHandler) Method() string {
	return http.MethodGet
}

func (h ListUserFavoritesHandler) Path() string {
	return "/users/{userID}/favorites"
}

func (h ListUserFavoritesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	userID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("userID"), err)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteService.ListByUser(r.Context(), domain.UserID{UUID: userID})
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(toFavoritesOut(favorites))
	return nil
}

func NewListItemFavoritesHandler(favoriteService service.Favorite) ListItemFavoritesHandler {
	return ListItemFavoritesHandler{favoriteService: favoriteService}
}

func (h ListItemFavoritesHandler) Method() string {
	return http.MethodGet
}

func (h ListItemFavoritesHandler) Path() string {
	return "/items/{itemID}/favorites"
}

func (h ListItemFavoritesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	itemID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("itemID"), err)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteService.ListByItem(r.Context(), itemID)
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(toFavoritesOut(favorites))
	return nil
}

func NewCountItemFavoritesHandler(favoriteService service.Favorite) CountItemFavoritesHandler {
	return CountItemFavoritesHandler{favoriteService: favoriteService}
}

func (h CountItemFavoritesHandler) Method() string {
	return http.MethodGet
}

func (h CountItemFavoritesHandler) Path() string {
	return "/items/{itemID}/favorites/count"
}

func (h CountItemFavoritesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	itemID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("itemID"), err)
	if err != nil {
		return err
	}

	count, err := h.favoriteService.CountByItem(r.Context(), itemID)
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(countOut{Count: count})
	return nil
}
