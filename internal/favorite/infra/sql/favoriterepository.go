package sql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/favorite/domain"
	pkgsql "github.com/klwxsrx/social-profile-service/pkg/sql"
	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

const favoriteTable = "favorite"

var favoriteColumns = []string{
	"id",
	"user_id",
	"item_id",
	"created_at",
	"updated_at",
}

type (
	favoriteRepository struct {
		db    pkgsql.Database
		clock pkgtime.Clock
	}

	sqlxFavorite struct {
		ID        domain.FavoriteID `db:"id"`
		UserID    domain.UserID     `db:"user_id"`
		ItemID    string            `db:"item_id"`
		CreatedAt int64             `db:"created_at"`
		UpdatedAt int64             `db:"updated_at"`
	}
)

func NewFavoriteRepository(db pkgsql.Database, clock pkgtime.Clock) domain.FavoriteRepository {
	return favoriteRepository{db: db, clock: clock}
}

func (r favoriteRepository) NextID() domain.FavoriteID {
	return domain.FavoriteID{UUID: uuid.New()}
}

func (r favoriteRepository) Store(ctx context.Context, favorite *domain.Favorite) error {
	now := pkgtime.Millis(r.clock.Now(ctx))
	query, args, err := r.db.Builder().
		Insert(favoriteTable).
		Columns(favoriteColumns...).
		Values(
			favorite.ID,
			favorite.UserID,
			favorite.ItemID,
			now.UnixMilli(),
			now.UnixMilli(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	favorite.CreatedAt = now
	favorite.UpdatedAt = now
	return nil
}

func (r favoriteRepository) Find(ctx context.Context, spec domain.FindFavoriteSpecification) ([]domain.Favorite, error) {
	orderBy := []string{"updated_at desc", "created_at desc"}
	if r.db.Dialect() == pkgsql.DriverSQLite {
		orderBy = append(orderBy, "rowid desc")
	}

	builder := r.db.Builder().
		Select(favoriteColumns...).
		From(favoriteTable).
		OrderBy(orderBy...)
	query, args, err := applySpecification(builder, spec).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxFavorite
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Favorite, 0, len(rows))
	for i := range rows {
		result = append(result, toDomainFavorite(&rows[i]))
	}

	return result, nil
}

func (r favoriteRepository) FindOne(ctx context.Context, spec domain.FindFavoriteSpecification) (*domain.Favorite, error) {
	builder := r.db.Builder().
		Select(favoriteColumns...).
		From(favoriteTable).
		Limit(1)
	builder = pkgsql.ForUpdate(r.db, applySpecification(builder, spec))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxFavorite
	err = r.db.GetContext(ctx, &row, query, args...)
	if pkgsql.IsNotFound(err) {
		return nil, domain.ErrFavoriteNotFound
	}
	if err != nil {
		return nil, err
	}

	favorite := toDomainFavorite(&row)
	return &favorite, nil
}

func (r favoriteRepository) Count(ctx context.Context, spec domain.FindFavoriteSpecification) (int, error) {
	builder := r.db.Builder().
		Select("count(*)").
		From(favoriteTable)
	query, args, err := applySpecification(builder, spec).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	err = r.db.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r favoriteRepository) Delete(ctx context.Context, id domain.FavoriteID, ownerID *domain.UserID) error {
	where := sq.Eq{"id": id}
	if ownerID != nil {
		where["user_id"] = *ownerID
	}

	query, args, err := r.db.Builder().
		Delete(favoriteTable).
		Where(where).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrFavoriteNotFound
	}

	return nil
}

func applySpecification(builder sq.SelectBuilder, spec domain.FindFavoriteSpecification) sq.SelectBuilder {
	if len(spec.IDs) > 0 {
		builder = builder.Where(sq.Eq{"id": spec.IDs})
	}
	if len(spec.UserIDs) > 0 {
		builder = builder.Where(sq.Eq{"user_id": spec.UserIDs})
	}
	if len(spec.ItemIDs) > 0 {
		builder = builder.Where(sq.Eq{"item_id": spec.ItemIDs})
	}

	return builder
}

func toDomainFavorite(row *sqlxFavorite) domain.Favorite {
	return domain.Favorite{
		ID:        row.ID,
		UserID:    row.UserID,
		ItemID:    row.ItemID,
		CreatedAt: time.UnixMilli(row.CreatedAt),
		UpdatedAt: time.UnixMilli(row.UpdatedAt),
	}
}
