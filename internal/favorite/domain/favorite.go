//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "FavoriteRepository=FavoriteRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	Name                  = "favorite"
	AggregateNameFavorite = "favorite"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type (
	FavoriteID struct{ uuid.UUID }
	UserID     struct{ uuid.UUID }

	// Favorite is a single save of an item by a user, the same item may be saved several times.
	Favorite struct {
		ID        FavoriteID
		UserID    UserID
		ItemID    string
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	// FindFavoriteSpecification matches favorites satisfying every non-empty filter.
	FindFavoriteSpecification struct {
		IDs     []FavoriteID
		UserIDs []UserID
		ItemIDs []string
	}

	FavoriteRepository interface {
		NextID() FavoriteID
		Store(context.Context, *Favorite) error
		// Find returns favorites ordered by the last update, most recent first.
		Find(context.Context, FindFavoriteSpecification) ([]Favorite, error)
		FindOne(context.Context, FindFavoriteSpecification) (*Favorite, error)
		Count(context.Context, FindFavoriteSpecification) (int, error)
		// Delete removes the favorite only if it belongs to ownerID when ownerID is set.
		Delete(ctx context.Context, id FavoriteID, ownerID *UserID) error
	}
)

func NewFavorite(id FavoriteID, userID UserID, itemID string) *Favorite {
	return &Favorite{
		ID:     id,
		UserID: userID,
		ItemID: itemID,
	}
}

func (f *Favorite) IsOwnedBy(userID UserID) bool {
	return f.UserID == userID
}
