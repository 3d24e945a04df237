package user

import (
	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/favorite/domain"
	"github.com/klwxsrx/social-profile-service/pkg/message"
)

var TopicDomainEventUser = message.NewDomainEventTopic("user", "user")

type EventUserDeleted struct {
	EventID uuid.UUID     `json:"eventID"`
	UserID  domain.UserID `json:"userID"`
}

func (e EventUserDeleted) ID() uuid.UUID {
	return e.EventID
}

func (e EventUserDeleted) Type() string {
	return "user.deleted"
}

func (e EventUserDeleted) AggregateID() uuid.UUID {
	return e.UserID.UUID
}
