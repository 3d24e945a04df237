package favorite

import (
	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	"github.com/klwxsrx/social-profile-service/pkg/message"
)

var TopicDomainEventFavorite = message.NewDomainEventTopic("favorite", "favorite")

type (
	EventFavoriteSaved struct {
		EventID    uuid.UUID     `json:"eventID"`
		FavoriteID uuid.UUID     `json:"favoriteID"`
		UserID     domain.UserID `json:"userID"`
		ItemID     string        `json:"item"`
	}

	EventFavoriteUnsaved struct {
		EventID    uuid.UUID     `json:"eventID"`
		FavoriteID uuid.UUID     `json:"favoriteID"`
		UserID     domain.UserID `json:"userID"`
		ItemID     string        `json:"item"`
	}
)

func (e EventFavoriteSaved) ID() uuid.UUID {
	return e.EventID
}

func (e EventFavoriteSaved) Type() string {
	return "favorite.saved"
}

func (e EventFavoriteSaved) AggregateID() uuid.UUID {
	return e.FavoriteID
}

func (e EventFavoriteUnsaved) ID() uuid.UUID {
	return e.EventID
}

func (e EventFavoriteUnsaved) Type() string {
	return "favorite.unsaved"
}

func (e EventFavoriteUnsaved) AggregateID() uuid.UUID {
	return e.FavoriteID
}
