package service

import (
	"errors"
	"fmt"

	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
)

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrProfileNotFound         = errors.New("profile not found")
	ErrProfileAlreadyExists    = errors.New("profile already exists")
	ErrProfileConcurrentUpdate = errors.New("profile is being updated concurrently, try again later")
	ErrInvalidProfileUpdate    = errors.New("invalid profile update")
	ErrReferenceNotFound       = errors.New("reference not found")
)

type (
	InvalidProfileUpdateError struct {
		Field  string
		Reason string
	}

	ReferenceNotFoundError struct {
		Kind domain.ReferenceKind
		ID   string
	}
)

func (e *InvalidProfileUpdateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot update '%s' field: %s", e.Field, e.Reason)
	}

	return fmt.Sprintf("cannot update '%s' field", e.Field)
}

func (e *InvalidProfileUpdateError) Is(target error) bool {
	return target == ErrInvalidProfileUpdate
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s with the given id: %s is not associated with this profile", e.Kind, e.ID)
}

func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrReferenceNotFound
}
