package permission

import (
	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
)

func CanReadProfile() auth.Permission {
	return auth.Authenticated()
}

func CanCreateProfile(ownerID domain.UserID) auth.Permission {
	return auth.CanActAsUser(ownerID.UUID)
}

func CanModifyProfile(ownerID domain.UserID) auth.Permission {
	return auth.CanActAsUser(ownerID.UUID)
}
