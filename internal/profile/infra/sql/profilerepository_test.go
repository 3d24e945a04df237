package sql_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlprofile "github.com/klwxsrx/social-profile-service/data/sql/profile"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	"github.com/klwxsrx/social-profile-service/internal/profile/infra/sql"
	"github.com/klwxsrx/social-profile-service/pkg/log"
	pkgsql "github.com/klwxsrx/social-profile-service/pkg/sql"
	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

func newTestRepository(t *testing.T) domain.ProfileRepository {
	t.Helper()

	db, err := pkgsql.NewDatabase(&pkgsql.Config{
		Driver:     pkgsql.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "profile.db"),
	}, log.NewStub())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(context.Background()) })

	require.NoError(t, pkgsql.NewMigrator(db, log.NewStub()).Execute(context.Background(), sqlprofile.Migrations))
	return sql.NewProfileRepository(db, pkgtime.NewClock())
}

func storeProfile(t *testing.T, repo domain.ProfileRepository) *domain.Profile {
	t.Helper()

	pictureRef := "pic-1"
	profile := domain.NewProfile(repo.NextID(), domain.UserID{UUID: uuid.New()}, &pictureRef)
	require.NoError(t, repo.Store(context.Background(), profile))
	return profile
}

func TestProfileRepository_StoreAndFind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepository(t)
	profile := storeProfile(t, repo)

	assert.Equal(t, 1, profile.Version)
	assert.False(t, profile.CreatedAt.IsZero())

	byOwner, err := repo.FindOne(ctx, domain.FindProfileSpecification{OwnerID: &profile.OwnerID})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, byOwner.ID)
	assert.Equal(t, profile.OwnerID, byOwner.OwnerID)
	assert.Equal(t, "pic-1", *byOwner.PictureRef)
	assert.Equal(t, []string{}, byOwner.Posts)
	assert.Equal(t, []string{}, byOwner.Reviews)
	assert.Equal(t, []string{}, byOwner.Favorites)
	assert.Equal(t, 1, byOwner.Version)
	assert.True(t, profile.CreatedAt.Equal(byOwner.CreatedAt))

	byID, err := repo.FindOne(ctx, domain.FindProfileSpecification{ID: &profile.ID})
	require.NoError(t, err)
	assert.Equal(t, profile.OwnerID, byID.OwnerID)
}

func TestProfileRepository_StoreDuplicateOwner(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)
	profile := storeProfile(t, repo)

	duplicate := domain.NewProfile(repo.NextID(), profile.OwnerID, nil)
	err := repo.Store(context.Background(), duplicate)
	assert.ErrorIs(t, err, domain.ErrProfileAlreadyExists)
}

func TestProfileRepository_FindOneNotFound(t *testing.T) {
	t.Parallel()
	repo := newTestRepository(t)
	ownerID := domain.UserID{UUID: uuid.New()}

	_, err := repo.FindOne(context.Background(), domain.FindProfileSpecification{OwnerID: &ownerID})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileRepository_UpdateComparesVersion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepository(t)
	profile := storeProfile(t, repo)

	first, err := repo.FindOne(ctx, domain.FindProfileSpecification{ID: &profile.ID})
	require.NoError(t, err)
	second, err := repo.FindOne(ctx, domain.FindProfileSpecification{ID: &profile.ID})
	require.NoError(t, err)

	require.NoError(t, first.AddReference(domain.ReferenceKindPost, "p1"))
	first.PictureRef = nil
	require.NoError(t, repo.Update(ctx, first))
	assert.Equal(t, 2, first.Version)

	require.NoError(t, second.AddReference(domain.ReferenceKindPost, "p2"))
	assert.ErrorIs(t, repo.Update(ctx, second), domain.ErrProfileVersionConflict)

	stored, err := repo.FindOne(ctx, domain.FindProfileSpecification{ID: &profile.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, stored.Posts)
	assert.Nil(t, stored.PictureRef)
	assert.Equal(t, 2, stored.Version)
}

func TestProfileRepository_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newTestRepository(t)
	profile := storeProfile(t, repo)

	require.NoError(t, repo.Delete(ctx, profile.ID))

	_, err := repo.FindOne(ctx, domain.FindProfileSpecification{ID: &profile.ID})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, profile.ID), domain.ErrProfileNotFound)
}

func TestProfileRepository_UsesClock(t *testing.T) {
	t.Parallel()
	ctx := pkgtime.WithNow(context.Background(), time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	repo := newTestRepository(t)

	profile := domain.NewProfile(repo.NextID(), domain.UserID{UUID: uuid.New()}, nil)
	require.NoError(t, repo.Store(ctx, profile))

	stored, err := repo.FindOne(ctx, domain.FindProfileSpecification{ID: &profile.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1717243200000), stored.CreatedAt.UnixMilli())
	assert.Equal(t, stored.CreatedAt.UnixMilli(), stored.UpdatedAt.UnixMilli())
}
