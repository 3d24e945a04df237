package permission

import (
	"github.com/klwxsrx/social-profile-service/internal/favorite/domain"
	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
)

func CanReadFavorites() auth.Permission {
	return auth.Authenticated()
}

func CanManageFavorites(userID domain.UserID) auth.Permission {
	return auth.CanActAsUser(userID.UUID)
}

// CanManageAnyFavorite allows deleting a favorite without knowing who saved it.
func CanManageAnyFavorite() auth.Permission {
	return auth.Privileged()
}
