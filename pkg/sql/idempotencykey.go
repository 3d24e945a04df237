package sql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/pkg/idk"
	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

type idempotencyKeyStorage struct {
	db    Database
	clock pkgtime.Clock
}

func NewIdempotencyKeyStorage(db Database, clock pkgtime.Clock) idk.Storage {
	return idempotencyKeyStorage{db: db, clock: clock}
}

func (s idempotencyKeyStorage) Insert(ctx context.Context, key uuid.UUID, extraKey string) error {
	query, args, err := s.db.Builder().
		Insert("idempotency_key").
		Columns("key", "extra_key", "created_at").
		Values(key.String(), extraKey, s.clock.Now(ctx).UnixMilli()).
		Suffix("on conflict do nothing").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert key: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return idk.ErrAlreadyInserted
	}

	return nil
}

func (s idempotencyKeyStorage) Delete(ctx context.Context, createdAtBefore time.Time) error {
	query, args, err := s.db.Builder().
		Delete("idempotency_key").
		Where(sq.Lt{"created_at": createdAtBefore.UnixMilli()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}

	return nil
}

func IdempotencyKeyMigrations() ([]Migration, error) {
	return []Migration{
		{
			ID: "0000-00-00-001-create-idempotency-key-table.sql",
			SQL: `
				create table if not exists idempotency_key (
					key        text   not null,
					extra_key  text   not null,
					created_at bigint not null,
					primary key (key, extra_key)
				);

				create index if not exists idempotency_key_created_at on idempotency_key(created_at)
			`,
		},
	}, nil
}
