package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/profile/app/service"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
)

type (
	ListReferencesHandler struct {
		profileService service.Profile
	}

	AddReferenceHandler struct {
		profileService service.Profile
	}

	RemoveReferenceHandler struct {
		profileService service.Profile
	}

	addReferenceIn struct {
		ID string `json:"id"`
	}
)

func NewListReferencesHandler(profileService service.Profile) ListReferencesHandler {
	return ListReferencesHandler{profileService: profileService}
}

func (h ListReferencesHandler) Method() string {
	return http.MethodGet
}

func (h ListReferencesHandler) Path() string {
	return "/profiles/{ownerID}/{kind}"
}

func (h ListReferencesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	ownerID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("ownerID"), err)
	kind, err := parseReferenceKind(w, r, err)
	if err != nil {
		return err
	}

	refs, err := h.profileService.ListReferences(r.Context(), domain.UserID{UUID: ownerID}, kind)
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(map[string][]string{kind.Plural(): refs})
	return nil
}

func NewAddReferenceHandler(profileService service.Profile) AddReferenceHandler {
	return AddReferenceHandler{profileService: profileService}
}

func (h AddReferenceHandler) Method() string {
	return http.MethodPost
}

func (h AddReferenceHandler) Path() string {
	return "/profiles/{ownerID}/{kind}"
}

func (h AddReferenceHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	ownerID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("ownerID"), err)
	kind, err := parseReferenceKind(w, r, err)
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[addReferenceIn](), err)
	if err != nil {
		return err
	}

	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return fmt.Errorf("%w: id must be not empty", pkghttp.ErrParsingError)
	}
	// The id has to fit in a single path segment of the remove route.
	if strings.Contains(in.ID, "/") {
		return fmt.Errorf("%w: id must not contain /", pkghttp.ErrParsingError)
	}

	err = h.profileService.AddReference(r.Context(), domain.UserID{UUID: ownerID}, kind, in.ID)
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(MessageOut{Msg: fmt.Sprintf("Successfully added %s to profile!", kind)})
	return nil
}

func NewRemoveReferenceHandler(profileService service.Profile) RemoveReferenceHandler {
	return RemoveReferenceHandler{profileService: profileService}
}

func (h RemoveReferenceHandler) Method() string {
	return http.MethodDelete
}

func (h RemoveReferenceHandler) Path() string {
	return "/profiles/{ownerID}/{kind}/{id}"
}

func (h RemoveReferenceHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	ownerID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[uuid.UUID]("ownerID"), err)
	kind, err := parseReferenceKind(w, r, err)
	refID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("id"), err)
	if err != nil {
		return err
	}

	err = h.profileService.RemoveReference(r.Context(), domain.UserID{UUID: ownerID}, kind, refID)
	setErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(MessageOut{Msg: fmt.Sprintf("Successfully deleted %s from profile!", kind)})
	return nil
}

func parseReferenceKind(w pkghttp.ResponseWriter, r *http.Request, lastErr error) (domain.ReferenceKind, error) {
	plural, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("kind"), lastErr)
	if err != nil {
		return "", err
	}

	kind, err := domain.ParseReferenceKind(plural)
	if err != nil {
		w.SetStatusCode(http.StatusNotFound)
		return "", fmt.Errorf("%w: %s", err, plural)
	}

	return kind, nil
}
