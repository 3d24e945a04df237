package favorite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	sqlfavorite "github.com/klwxsrx/social-profile-service/data/sql/favorite"
	sqlprofile "github.com/klwxsrx/social-profile-service/data/sql/profile"
	"github.com/klwxsrx/social-profile-service/internal/favorite"
	favoriteservice "github.com/klwxsrx/social-profile-service/internal/favorite/app/service"
	favoriteappusermock "github.com/klwxsrx/social-profile-service/internal/favorite/app/user/mock"
	favoritedomain "github.com/klwxsrx/social-profile-service/internal/favorite/domain"
	favoriteinfrasql "github.com/klwxsrx/social-profile-service/internal/favorite/infra/sql"
	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
	profileappfavorite "github.com/klwxsrx/social-profile-service/internal/profile/app/favorite"
	profileservice "github.com/klwxsrx/social-profile-service/internal/profile/app/service"
	"github.com/klwxsrx/social-profile-service/internal/profile/app/user"
	profileappusermock "github.com/klwxsrx/social-profile-service/internal/profile/app/user/mock"
	profiledomain "github.com/klwxsrx/social-profile-service/internal/profile/domain"
	profileinfrasql "github.com/klwxsrx/social-profile-service/internal/profile/infra/sql"
	pkgauth "github.com/klwxsrx/social-profile-service/pkg/auth"
	"github.com/klwxsrx/social-profile-service/pkg/idk"
	"github.com/klwxsrx/social-profile-service/pkg/log"
	"github.com/klwxsrx/social-profile-service/pkg/message"
	"github.com/klwxsrx/social-profile-service/pkg/metric"
	"github.com/klwxsrx/social-profile-service/pkg/observability"
	pkgsql "github.com/klwxsrx/social-profile-service/pkg/sql"
	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

type scenario struct {
	profiles  profileservice.Profile
	favorites favoriteservice.Favorite
	outbox    message.OutboxStorage
	deliver   message.Handler
}

func newScenario(t *testing.T) scenario {
	t.Helper()
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	db, err := pkgsql.NewDatabase(&pkgsql.Config{
		Driver:     pkgsql.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "social.db"),
	}, log.NewStub())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(ctx) })

	err = pkgsql.NewMigrator(db, log.NewStub()).Execute(
		ctx,
		pkgsql.IdempotencyKeyMigrations,
		pkgsql.MessageOutboxMigrations,
		sqlprofile.Migrations,
		sqlfavorite.Migrations,
	)
	require.NoError(t, err)

	profileUsers := profileappusermock.NewService(ctrl)
	profileUsers.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id profiledomain.UserID) (*user.Data, error) {
			return &user.Data{ID: id}, nil
		}).
		AnyTimes()

	clock := pkgtime.NewClock()
	transaction := pkgsql.NewTransaction(db)
	idkService := idk.NewService(pkgsql.NewIdempotencyKeyStorage(db, clock), clock, idk.DefaultKeyTTL)
	outbox := pkgsql.NewMessageOutboxStorage(db)

	profiles := profileservice.NewProfile(
		profileservice.ProfileConfig{},
		profileUsers,
		profileinfrasql.NewProfileRepository(db, clock),
		auth.NewPermissionService(),
		idkService,
		transaction,
		metric.NewMetricsStub(),
		log.NewStub(),
	)

	favorites := favoriteservice.NewFavorite(
		favoriteservice.FavoriteConfig{AllowDuplicates: true},
		favoriteappusermock.NewService(ctrl),
		favoriteinfrasql.NewFavoriteRepository(db, clock),
		auth.NewPermissionService(),
		idkService,
		transaction,
		message.NewEventDispatcher(favorite.TopicDomainEventFavorite, outbox, observability.New(), clock),
	)

	deliver, err := message.NewEventHandler(
		message.RegisterEventHandler(auth.WithServiceHandler[profileappfavorite.EventFavoriteSaved](
			auth.ServiceNameProfileWorker,
			profiles.HandleFavoriteSaved,
		)),
		message.RegisterEventHandler(auth.WithServiceHandler[profileappfavorite.EventFavoriteUnsaved](
			auth.ServiceNameProfileWorker,
			profiles.HandleFavoriteUnsaved,
		)),
	)
	require.NoError(t, err)

	return scenario{
		profiles:  profiles,
		favorites: favorites,
		outbox:    outbox,
		deliver:   deliver,
	}
}

func (s scenario) deliverOutbox(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	msgs, err := s.outbox.Find(ctx, time.Now().Add(time.Minute), 100)
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(msgs))
	for i := range msgs {
		assert.Equal(t, profileappfavorite.TopicDomainEventFavorite, msgs[i].Topic)
		require.NoError(t, s.deliver(ctx, &msgs[i]))
		ids = append(ids, msgs[i].ID)
	}
	if len(ids) > 0 {
		require.NoError(t, s.outbox.Delete(ctx, ids...))
	}
}

func TestScenario_ProfileFavoritesRoundTrip(t *testing.T) {
	t.Parallel()
	s := newScenario(t)
	alice := profiledomain.UserID{UUID: uuid.New()}
	ctx := auth.WithUserAuthentication(context.Background(), alice.UUID)

	_, err := s.profiles.Create(ctx, alice, nil)
	require.NoError(t, err)

	require.NoError(t, s.profiles.AddReference(ctx, alice, profiledomain.ReferenceKindFavorite, "item-1"))
	favorites, err := s.profiles.ListReferences(ctx, alice, profiledomain.ReferenceKindFavorite)
	require.NoError(t, err)
	assert.Equal(t, []string{"item-1"}, favorites)

	require.NoError(t, s.profiles.RemoveReference(ctx, alice, profiledomain.ReferenceKindFavorite, "item-1"))
	favorites, err = s.profiles.ListReferences(ctx, alice, profiledomain.ReferenceKindFavorite)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestScenario_SavedFavoritesReachProfile(t *testing.T) {
	t.Parallel()
	s := newScenario(t)
	alice := uuid.New()
	ctx := auth.WithUserAuthentication(context.Background(), alice)

	_, err := s.profiles.Create(ctx, profiledomain.UserID{UUID: alice}, nil)
	require.NoError(t, err)

	first, err := s.favorites.Save(ctx, favoritedomain.UserID{UUID: alice}, "item-1")
	require.NoError(t, err)
	second, err := s.favorites.Save(ctx, favoritedomain.UserID{UUID: alice}, "item-1")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	count, err := s.favorites.CountByItem(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	s.deliverOutbox(t)
	favorites, err := s.profiles.ListReferences(ctx, profiledomain.UserID{UUID: alice}, profiledomain.ReferenceKindFavorite)
	require.NoError(t, err)
	assert.Equal(t, []string{"item-1", "item-1"}, favorites)

	err = s.favorites.UnsaveOwned(auth.WithUserAuthentication(context.Background(), uuid.New()), favoritedomain.UserID{UUID: alice}, first.ID)
	require.ErrorIs(t, err, pkgauth.ErrPermissionDenied)

	require.NoError(t, s.favorites.UnsaveOwned(ctx, favoritedomain.UserID{UUID: alice}, first.ID))
	s.deliverOutbox(t)

	favorites, err = s.profiles.ListReferences(ctx, profiledomain.UserID{UUID: alice}, profiledomain.ReferenceKindFavorite)
	require.NoError(t, err)
	assert.Equal(t, []string{"item-1"}, favorites)

	remaining, err := s.favorites.ListByUser(ctx, favoritedomain.UserID{UUID: alice})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)

	err = s.favorites.VerifyOwnership(ctx, favoritedomain.UserID{UUID: uuid.New()}, second.ID)
	assert.ErrorIs(t, err, favoriteservice.ErrFavoriteForbidden)
	err = s.favorites.VerifyOwnership(ctx, favoritedomain.UserID{UUID: alice}, first.ID)
	assert.ErrorIs(t, err, favoriteservice.ErrFavoriteNotFound)
}
