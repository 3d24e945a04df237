package service

import (
	"errors"
	"fmt"

	"github.com/klwxsrx/social-profile-service/internal/favorite/domain"
)

var (
	ErrFavoriteNotFound      = errors.New("favorite not found")
	ErrFavoriteAlreadyExists = errors.New("favorite already exists")
	ErrFavoriteForbidden     = errors.New("favorite belongs to another user")
)

type (
	FavoriteNotFoundError struct {
		FavoriteID domain.FavoriteID
	}

	FavoriteOwnershipError struct {
		UserID     domain.UserID
		FavoriteID domain.FavoriteID
	}
)

func (e *FavoriteNotFoundError) Error() string {
	return fmt.Sprintf("favorite %s does not exist", e.FavoriteID)
}

func (e *FavoriteNotFoundError) Is(target error) bool {
	return target == ErrFavoriteNotFound
}

func (e *FavoriteOwnershipError) Error() string {
	return fmt.Sprintf("%s is not the user associated with favorite %s", e.UserID, e.FavoriteID)
}

func (e *FavoriteOwnershipError) Is(target error) bool {
	return target == ErrFavoriteForbidden
}
