package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
	"github.com/klwxsrx/social-profile-service/internal/profile/app/service"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

type CreateProfileHandler struct {
	profileService service.Profile
}

func NewCreateProfileHandler(profileService service.Profile) CreateProfileHandler {
	return CreateProfileHandler{profileService: profileService}
}

func (h CreateProfileHandler) Method() string {
	return http.MethodPost
}

func (h CreateProfileHandler) Path() string {
	return "/profiles"
}

func (h CreateProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[createProfileIn](), err)
	if err != nil {
		return err
	}

	ownerID := in.OwnerID
	if ownerID == nil {
		callerID, ok := auth.CallerUserID(r.Context())
		if !ok {
			return fmt.Errorf("%w: ownerID is required", pkghttp.ErrParsingError)
		}
		ownerID = &callerID
	}

	profile, err := h.profileService.Create(r.Context(), domain.UserID{UUID: *ownerID}, in.PictureRef)
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(toProfileOut("Profile successfully created!", profile))
	w.SetStatusCode(http.StatusCreated)
	return nil
}

type createProfileIn struct {
	OwnerID    *uuid.UUID `json:"ownerID"`
	PictureRef *string    `json:"pictureRef"`
}
