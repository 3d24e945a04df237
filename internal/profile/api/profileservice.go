package api

import (
	"github.com/klwxsrx/social-profile-service/internal/profile/app/service"
)

var (
	ErrUserNotFound            = service.ErrUserNotFound
	ErrProfileNotFound         = service.ErrProfileNotFound
	ErrProfileAlreadyExists    = service.ErrProfileAlreadyExists
	ErrProfileConcurrentUpdate = service.ErrProfileConcurrentUpdate
	ErrInvalidProfileUpdate    = service.ErrInvalidProfileUpdate
	ErrReferenceNotFound       = service.ErrReferenceNotFound
)

type (
	ProfileService = service.Profile
	ProfileData    = service.ProfileData
	ProfileUpdate  = service.ProfileUpdate
)
