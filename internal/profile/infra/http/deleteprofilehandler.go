package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/profile/app/service"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

type DeleteProfileHandler struct {
	profileService service.Profile
}

func NewDeleteProfileHandler(profileService service.Profile) DeleteProfileHandler {
	return DeleteProfileHandler{profileService: profileService}
}

func (h DeleteProfileHandler) Method() string {
	return http.MethodDelete
}

func (h DeleteProfileHandler) Path() string {
	return "/profiles/id/{profileID}"
}

func (h DeleteProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	profileID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("profileID"), err)
	if err != nil {
		return err
	}

	err = h.profileService.Delete(r.Context(), domain.ProfileID{UUID: profileID})
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(MessageOut{Msg: "Profile deleted successfully!"})
	return nil
}
