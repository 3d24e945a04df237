package sql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	pkgsql "github.com/klwxsrx/social-profile-service/pkg/sql"
	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

const profileTable = "profile"

var profileColumns = []string{
	"id",
	"owner_id",
	"picture_ref",
	"posts",
	"reviews",
	"favorites",
	"version",
	"created_at",
	"updated_at",
}

type (
	profileRepository struct {
		db    pkgsql.Database
		clock pkgtime.Clock
	}

	sqlxProfile struct {
		ID         domain.ProfileID `db:"id"`
		OwnerID    domain.UserID    `db:"owner_id"`
		PictureRef *string          `db:"picture_ref"`
		Posts      string           `db:"posts"`
		Reviews    string           `db:"reviews"`
		Favorites  string           `db:"favorites"`
		Version    int              `db:"version"`
		CreatedAt  int64            `db:"created_at"`
		UpdatedAt  int64            `db:"updated_at"`
	}
)

func NewProfileRepository(db pkgsql.Database, clock pkgtime.Clock) domain.ProfileRepository {
	return profileRepository{db: db, clock: clock}
}

func (r profileRepository) NextID() domain.ProfileID {
	return domain.ProfileID{UUID: uuid.New()}
}

func (r profileRepository) Store(ctx context.Context, profile *domain.Profile) error {
	now := pkgtime.Millis(r.clock.Now(ctx))
	row, err := toSqlxProfile(profile)
	if err != nil {
		return err
	}

	query, args, err := r.db.Builder().
		Insert(profileTable).
		Columns(profileColumns...).
		Values(
			row.ID,
			row.OwnerID,
			row.PictureRef,
			row.Posts,
			row.Reviews,
			row.Favorites,
			1,
			now.UnixMilli(),
			now.UnixMilli(),
		).
		Suffix("on conflict (owner_id) do nothing").
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
		return domain.ErrProfileAlreadyExists
	}

	profile.Version = 1
	profile.CreatedAt = now
	profile.UpdatedAt = now
	return nil
}

func (r profileRepository) FindOne(ctx context.Context, spec domain.FindProfileSpecification) (*domain.Profile, error) {
	builder := r.db.Builder().
		Select(profileColumns...).
		From(profileTable)
	if spec.ID != nil {
		builder = builder.Where(sq.Eq{"id": *spec.ID})
	}
	if spec.OwnerID != nil {
		builder = builder.Where(sq.Eq{"owner_id": *spec.OwnerID})
	}

	query, args, err := builder.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxProfile
	err = r.db.GetContext(ctx, &row, query, args...)
	if pkgsql.IsNotFound(err) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return toDomainProfile(&row)
}

func (r profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	now := pkgtime.Millis(r.clock.Now(ctx))
	row, err := toSqlxProfile(profile)
	if err != nil {
		return err
	}

	query, args, err := r.db.Builder().
		Update(profileTable).
		SetMap(map[string]any{
			"picture_ref": row.PictureRef,
			"posts":       row.Posts,
			"reviews":     row.Reviews,
			"favorites":   row.Favorites,
			"version":     sq.Expr("version + 1"),
			"updated_at":  now.UnixMilli(),
		}).
		Where(sq.Eq{"id": row.ID, "version": profile.Version}).
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
		return domain.ErrProfileVersionConflict
	}

	profile.Version++
	profile.UpdatedAt = now
	return nil
}

func (r profileRepository) Delete(ctx context.Context, id domain.ProfileID) error {
	query, args, err := r.db.Builder().
		Delete(profileTable).
		Where(sq.Eq{"id": id}).
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
		return domain.ErrProfileNotFound
	}

	return nil
}

func toSqlxProfile(profile *domain.Profile) (*sqlxProfile, error) {
	posts, err := encodeReferences(profile.Posts)
	if err != nil {
		return nil, fmt.Errorf("encode posts: %w", err)
	}
	reviews, err := encodeReferences(profile.Reviews)
	if err != nil {
		return nil, fmt.Errorf("encode reviews: %w", err)
	}
	favorites, err := encodeReferences(profile.Favorites)
	if err != nil {
		return nil, fmt.Errorf("encode favorites: %w", err)
	}

	return &sqlxProfile{
		ID:         profile.ID,
		OwnerID:    profile.OwnerID,
		PictureRef: profile.PictureRef,
		Posts:      posts,
		Reviews:    reviews,
		Favorites:  favorites,
		Version:    profile.Version,
	}, nil
}

func toDomainProfile(row *sqlxProfile) (*domain.Profile, error) {
	profile := &domain.Profile{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		PictureRef: row.PictureRef,
		Version:    row.Version,
		CreatedAt:  time.UnixMilli(row.CreatedAt),
		UpdatedAt:  time.UnixMilli(row.UpdatedAt),
	}

	for _, refs := range []struct {
		encoded string
		target  *[]string
	}{
		{row.Posts, &profile.Posts},
		{row.Reviews, &profile.Reviews},
		{row.Favorites, &profile.Favorites},
	} {
		if err := json.Unmarshal([]byte(refs.encoded), refs.target); err != nil {
			return nil, fmt.Errorf("decode profile %v references: %w", row.ID, err)
		}
		if *refs.target == nil {
			*refs.target = []string{}
		}
	}

	return profile, nil
}

func encodeReferences(refs []string) (string, error) {
	if refs == nil {
		refs = []string{}
	}

	encoded, err := json.Marshal(refs)
	return string(encoded), err
}
