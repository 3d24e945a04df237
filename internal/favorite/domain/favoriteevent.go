package domain

import (
	"github.com/google/uuid"
)

type (
	EventFavoriteSaved struct {
		EventID    uuid.UUID  `json:"eventID"`
		FavoriteID FavoriteID `json:"favoriteID"`
		UserID     UserID     `json:"userID"`
		ItemID     string     `json:"item"`
	}

	EventFavoriteUnsaved struct {
		EventID    uuid.UUID  `json:"eventID"`
		FavoriteID FavoriteID `json:"favoriteID"`
		UserID     UserID     `json:"userID"`
		ItemID     string     `json:"item"`
	}
)

func NewEventFavoriteSaved(favorite *Favorite) EventFavoriteSaved {
	return EventFavoriteSaved{
		EventID:    uuid.New(),
		FavoriteID: favorite.ID,
		UserID:     favorite.UserID,
		ItemID:     favorite.ItemID,
	}
}

func NewEventFavoriteUnsaved(favorite *Favorite) EventFavoriteUnsaved {
	return EventFavoriteUnsaved{
		EventID:    uuid.New(),
		FavoriteID: favorite.ID,
		UserID:     favorite.UserID,
		ItemID:     favorite.ItemID,
	}
}

func (e EventFavoriteSaved) ID() uuid.UUID {
	return e.EventID
}

func (e EventFavoriteSaved) Type() string {
	return "favorite.saved"
}

func (e EventFavoriteSaved) AggregateID() uuid.UUID {
	return e.FavoriteID.UUID
}

func (e EventFavoriteUnsaved) ID() uuid.UUID {
	return e.EventID
}

func (e EventFavoriteUnsaved) Type() string {
	return "favorite.unsaved"
}

func (e EventFavoriteUnsaved) AggregateID() uuid.UUID {
	return e.FavoriteID.UUID
}
