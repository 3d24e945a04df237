package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/profile/app/service"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

type UpdateProfileHandler struct {
	profileService service.Profile
}

func NewUpdateProfileHandler(profileService service.Profile) UpdateProfileHandler {
	return UpdateProfileHandler{profileService: profileService}
}

func (h UpdateProfileHandler) Method() string {
	return http.MethodPatch
}

func (h UpdateProfileHandler) Path() string {
	return "/profiles/id/{profileID}"
}

func (h UpdateProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	profileID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("profileID"), err)
	fields, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[map[string]any](), err)
	if err != nil {
		return err
	}

	err = h.profileService.Update(r.Context(), domain.ProfileID{UUID: profileID}, fields)
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(MessageOut{Msg: "Profile successfully updated!"})
	return nil
}
