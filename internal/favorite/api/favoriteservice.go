package api

import (
	"github.com/klwxsrx/social-profile-service/internal/favorite/app/service"
)

var (
	ErrFavoriteNotFound      = service.ErrFavoriteNotFound
	ErrFavoriteAlreadyExists = service.ErrFavoriteAlreadyExists
	ErrFavoriteForbidden     = service.ErrFavoriteForbidden
)

type (
	FavoriteService = service.Favorite
	FavoriteData    = service.FavoriteData
)
