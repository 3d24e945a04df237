package sql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/pkg/message"
)

type (
	messageOutboxStorage struct {
		db Database
	}

	sqlxMessage struct {
		ID       uuid.UUID `db:"id"`
		Topic    string    `db:"topic"`
		Key      string    `db:"key"`
		Payload  string    `db:"payload"`
		Metadata string    `db:"metadata"`
	}
)

func NewMessageOutboxStorage(db Database) message.OutboxStorage {
	return messageOutboxStorage{db: db}
}

// Find skips rows locked by another outbox worker on postgres.
func (s messageOutboxStorage) Find(ctx context.Context, scheduledBefore time.Time, limit int) ([]message.Message, error) {
	insertionOrder := "seq"
	if s.db.Dialect() == DriverSQLite {
		insertionOrder = "rowid"
	}

	builder := s.db.Builder().
		Select("id", "topic", "key", "payload", "metadata").
		From("message_outbox").
		Where(sq.LtOrEq{"scheduled_at": scheduledBefore.UnixMilli()}).
		OrderBy("scheduled_at", insertionOrder).
		Limit(uint64(limit))

	query, args, err := ForUpdate(s.db, builder, "skip locked").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var sqlxResult []sqlxMessage
	err = s.db.SelectContext(ctx, &sqlxResult, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}

	result := make([]message.Message, 0, len(sqlxResult))
	for _, sqlxMsg := range sqlxResult {
		var metadata message.Metadata
		if sqlxMsg.Metadata != "" {
			err = json.Unmarshal([]byte(sqlxMsg.Metadata), &metadata)
			if err != nil {
				return nil, fmt.Errorf("decode message %v metadata: %w", sqlxMsg.ID, err)
			}
		}

		result = append(result, message.Message{
			ID:       sqlxMsg.ID,
			Topic:    message.Topic(sqlxMsg.Topic),
			Key:      sqlxMsg.Key,
			Payload:  []byte(sqlxMsg.Payload),
			Metadata: metadata,
		})
	}

	return result, nil
}

func (s messageOutboxStorage) Store(ctx context.Context, scheduledAt time.Time, msgs ...message.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	qb := s.db.Builder().
		Insert("message_outbox").
		Columns("id", "topic", "key", "payload", "metadata", "scheduled_at")
	for _, msg := range msgs {
		metadata, err := json.Marshal(msg.Metadata)
		if err != nil {
			return fmt.Errorf("encode message %v metadata: %w", msg.ID, err)
		}

		qb = qb.Values(msg.ID.String(), string(msg.Topic), msg.Key, string(msg.Payload), string(metadata), scheduledAt.UnixMilli())
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert messages: %w", err)
	}

	return nil
}

func (s messageOutboxStorage) Delete(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, id.String())
	}

	query, args, err := s.db.Builder().
		Delete("message_outbox").
		Where(sq.Eq{"id": strIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}

	return nil
}

func MessageOutboxMigrations() ([]Migration, error) {
	return []Migration{
		{
			ID: "0000-00-00-002-create-message-outbox-table.sql",
			SQL: `
				create table if not exists message_outbox (
					seq          bigserial,
					id           text primary key,
					topic        text   not null,
					key          text   not null,
					payload      text   not null,
					metadata     text   not null,
					scheduled_at bigint not null
				);

				create index if not exists message_outbox_scheduled_at on message_outbox(scheduled_at)
			`,
		},
	}, nil
}
