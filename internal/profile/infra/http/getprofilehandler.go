package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/profile/app/service"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

type GetProfileHandler struct {
	profileService service.Profile
}

func NewGetProfileHandler(profileService service.Profile) GetProfileHandler {
	return GetProfileHandler{profileService: profileService}
}

func (h GetProfileHandler) Method() string {
	return http.MethodGet
}

func (h GetProfileHandler) Path() string {
	return "/profiles/{ownerID}"
}

func (h GetProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	ownerID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("ownerID"), err)
	if err != nil {
		return err
	}

	profile, err := h.profileService.GetByOwner(r.Context(), domain.UserID{UUID: ownerID})
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(toProfileOut("", profile))
	return nil
}
