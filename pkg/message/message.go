package message

import (
	"context"

	"github.com/google/uuid"
)

const MetadataRequestID = "requestID"

type (
	Message struct {
		ID    uuid.UUID
		Topic Topic
		// Key is used for topic partitioning, messages with the same key fall into the same partition
		Key      string
		Payload  []byte
		Metadata Metadata
	}

	Metadata map[string]string

	Handler func(ctx context.Context, msg *Message) error
)
