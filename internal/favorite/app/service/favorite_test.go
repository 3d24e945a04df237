package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/social-profile-service/internal/favorite/app/service"
	"github.com/klwxsrx/social-profile-service/internal/favorite/app/user"
	favoriteappusermock "github.com/klwxsrx/social-profile-service/internal/favorite/app/user/mock"
	"github.com/klwxsrx/social-profile-service/internal/favorite/domain"
	favoritedomainmock "github.com/klwxsrx/social-profile-service/internal/favorite/domain/mock"
	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/social-profile-service/pkg/auth"
	"github.com/klwxsrx/social-profile-service/pkg/event"
	pkgeventmock "github.com/klwxsrx/social-profile-service/pkg/event/mock"
	"github.com/klwxsrx/social-profile-service/pkg/idk"
	pkgidkmock "github.com/klwxsrx/social-profile-service/pkg/idk/mock"
	pkgpersistencestub "github.com/klwxsrx/social-profile-service/pkg/persistence/stub"
)

type serviceDeps struct {
	users      *favoriteappusermock.Service
	repo       *favoritedomainmock.FavoriteRepository
	idk        *pkgidkmock.Service
	dispatcher *pkgeventmock.Dispatcher
}

func newFavoriteService(ctrl *gomock.Controller, allowDuplicates bool) (service.Favorite, serviceDeps) {
	deps := serviceDeps{
		users:      favoriteappusermock.NewService(ctrl),
		repo:       favoritedomainmock.NewFavoriteRepository(ctrl),
		idk:        pkgidkmock.NewService(ctrl),
		dispatcher: pkgeventmock.NewDispatcher(ctrl),
	}

	return service.NewFavorite(
		service.FavoriteConfig{AllowDuplicates: allowDuplicates},
		deps.users,
		deps.repo,
		auth.NewPermissionService(),
		deps.idk,
		pkgpersistencestub.NewTransaction(),
		deps.dispatcher,
	), deps
}

func anonymousContext() context.Context {
	return pkgauth.WithAuthentication(context.Background(), pkgauth.Anonymous[auth.Principal]())
}

func newFavorite(userID domain.UserID, itemID string) *domain.Favorite {
	return domain.NewFavorite(domain.FavoriteID{UUID: uuid.New()}, userID, itemID)
}

func TestFavoriteService_Save(t *testing.T) {
	t.Parallel()
	userID := domain.UserID{UUID: uuid.New()}
	itemID := uuid.NewString()

	tests := []struct {
		name            string
		ctx             context.Context
		allowDuplicates bool
		prepare         func(deps serviceDeps)
		err             error
	}{
		{
			name: "success",
			ctx:  auth.WithUserAuthentication(context.Background(), userID.UUID),
			prepare: func(deps serviceDeps) {
				deps.repo.EXPECT().Count(gomock.Any(), domain.FindFavoriteSpecification{
					UserIDs: []domain.UserID{userID},
					ItemIDs: []string{itemID},
				}).Return(0, nil)
				deps.repo.EXPECT().NextID().Return(domain.FavoriteID{UUID: uuid.New()})
				deps.repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
				deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, events ...event.Event) {
						require.Len(t, events, 1)
						evt, ok := events[0].(domain.EventFavoriteSaved)
						require.True(t, ok)
						assert.Equal(t, userID, evt.UserID)
						assert.Equal(t, itemID, evt.ItemID)
					}).
					Return(nil)
			},
		},
		{
			name:            "duplicates allowed skips count",
			ctx:             auth.WithUserAuthentication(context.Background(), userID.UUID),
			allowDuplicates: true,
			prepare: func(deps serviceDeps) {
				deps.repo.EXPECT().NextID().Return(domain.FavoriteID{UUID: uuid.New()})
				deps.repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
				deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "duplicate",
			ctx:  auth.WithUserAuthentication(context.Background(), userID.UUID),
			prepare: func(deps serviceDeps) {
				deps.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			err: service.ErrFavoriteAlreadyExists,
		},
		{
			name:    "another user is denied",
			ctx:     auth.WithUserAuthentication(context.Background(), uuid.New()),
			prepare: func(serviceDeps) {},
			err:     pkgauth.ErrPermissionDenied,
		},
		{
			name:    "anonymous is denied",
			ctx:     anonymousContext(),
			prepare: func(serviceDeps) {},
			err:     pkgauth.ErrPermissionDenied,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			favoriteService, deps := newFavoriteService(ctrl, tt.allowDuplicates)
			tt.prepare(deps)

			data, err := favoriteService.Save(tt.ctx, userID, itemID)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, data.UserID)
			assert.Equal(t, itemID, data.ItemID)
		})
	}
}

func TestFavoriteService_ReadRequiresAuthentication(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	favoriteService, _ := newFavoriteService(ctrl, false)

	_, err := favoriteService.ListByItem(anonymousContext(), uuid.NewString())
	require.ErrorIs(t, err, pkgauth.ErrPermissionDenied)

	_, err = favoriteService.CountByItem(anonymousContext(), uuid.NewString())
	require.ErrorIs(t, err, pkgauth.ErrPermissionDenied)
}

func TestFavoriteService_ListByUser(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	favoriteService, deps := newFavoriteService(ctrl, false)
	userID := domain.UserID{UUID: uuid.New()}
	first, second := newFavorite(userID, "1"), newFavorite(userID, "2")

	deps.repo.EXPECT().Find(gomock.Any(), domain.FindFavoriteSpecification{UserIDs: []domain.UserID{userID}}).
		Return([]domain.Favorite{*second, *first}, nil)

	result, err := favoriteService.ListByUser(auth.WithUserAuthentication(context.Background(), uuid.New()), userID)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, second.ID, result[0].ID)
	assert.Equal(t, first.ID, result[1].ID)
}

func TestFavoriteService_UnsaveOwned(t *testing.T) {
	t.Parallel()
	userID := domain.UserID{UUID: uuid.New()}
	favorite := newFavorite(userID, uuid.NewString())

	tests := []struct {
		name    string
		prepare func(deps serviceDeps)
		err     error
		message string
	}{
		{
			name: "success",
			prepare: func(deps serviceDeps) {
				deps.repo.EXPECT().FindOne(gomock.Any(), domain.FindFavoriteSpecification{
					IDs: []domain.FavoriteID{favorite.ID},
				}).Return(favorite, nil)
				deps.repo.EXPECT().Delete(gomock.Any(), favorite.ID, &userID).Return(nil)
				deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.AssignableToTypeOf(domain.EventFavoriteUnsaved{})).
					Return(nil)
			},
		},
		{
			name: "not found",
			prepare: func(deps serviceDeps) {
				deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrFavoriteNotFound)
			},
			err:     service.ErrFavoriteNotFound,
			message: "favorite " + favorite.ID.String() + " does not exist",
		},
		{
			name: "owned by another user",
			prepare: func(deps serviceDeps) {
				deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(favorite, nil)
				deps.repo.EXPECT().Delete(gomock.Any(), favorite.ID, &userID).Return(domain.ErrFavoriteNotFound)
			},
			err:     service.ErrFavoriteForbidden,
			message: userID.String() + " is not the user associated with favorite " + favorite.ID.String(),
		},
		{
			name: "dispatch failure",
			prepare: func(deps serviceDeps) {
				deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(favorite, nil)
				deps.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("broken"))
			},
			message: "broken",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			favoriteService, deps := newFavoriteService(ctrl, false)
			tt.prepare(deps)

			err := favoriteService.UnsaveOwned(auth.WithUserAuthentication(context.Background(), userID.UUID), userID, favorite.ID)
			if tt.message == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			}
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestFavoriteService_Unsave_RequiresPrivilegedPrincipal(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	favoriteService, deps := newFavoriteService(ctrl, false)
	favorite := newFavorite(domain.UserID{UUID: uuid.New()}, uuid.NewString())

	err := favoriteService.Unsave(auth.WithUserAuthentication(context.Background(), favorite.UserID.UUID), favorite.ID)
	require.ErrorIs(t, err, pkgauth.ErrPermissionDenied)

	deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(favorite, nil)
	deps.repo.EXPECT().Delete(gomock.Any(), favorite.ID, nil).Return(nil)
	deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)

	err = favoriteService.Unsave(auth.WithServiceAuthentication(context.Background(), auth.ServiceNameProfileWorker), favorite.ID)
	require.NoError(t, err)
}

func TestFavoriteService_VerifyOwnership(t *testing.T) {
	t.Parallel()
	ownerID := domain.UserID{UUID: uuid.New()}
	favorite := newFavorite(ownerID, uuid.NewString())
	ctx := auth.WithUserAuthentication(context.Background(), uuid.New())

	tests := []struct {
		name     string
		userID   domain.UserID
		found    bool
		expected error
	}{
		{name: "owner", userID: ownerID, found: true},
		{name: "another user", userID: domain.UserID{UUID: uuid.New()}, found: true, expected: service.ErrFavoriteForbidden},
		{name: "missing favorite", userID: ownerID, expected: service.ErrFavoriteNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			favoriteService, deps := newFavoriteService(ctrl, false)
			if tt.found {
				deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(favorite, nil)
			} else {
				deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrFavoriteNotFound)
			}

			err := favoriteService.VerifyOwnership(ctx, tt.userID, favorite.ID)
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestFavoriteService_HandleUserDeleted(t *testing.T) {
	t.Parallel()
	userID := domain.UserID{UUID: uuid.New()}
	deletedAt := time.Now()
	evt := user.EventUserDeleted{EventID: uuid.New(), UserID: userID}

	tests := []struct {
		name    string
		prepare func(deps serviceDeps)
	}{
		{
			name: "removes every favorite",
			prepare: func(deps serviceDeps) {
				first, second := newFavorite(userID, "1"), newFavorite(userID, "2")
				deps.users.EXPECT().Get(gomock.Any(), userID).Return(&user.Data{ID: userID, DeletedAt: &deletedAt}, nil)
				deps.idk.EXPECT().Insert(gomock.Any(), evt.EventID, "handle_user_deleted").Return(nil)
				deps.repo.EXPECT().Find(gomock.Any(), domain.FindFavoriteSpecification{UserIDs: []domain.UserID{userID}}).
					Return([]domain.Favorite{*first, *second}, nil)
				deps.repo.EXPECT().Delete(gomock.Any(), first.ID, &userID).Return(nil)
				deps.repo.EXPECT().Delete(gomock.Any(), second.ID, &userID).Return(nil)
				deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "already handled",
			prepare: func(deps serviceDeps) {
				deps.users.EXPECT().Get(gomock.Any(), userID).Return(&user.Data{ID: userID, DeletedAt: &deletedAt}, nil)
				deps.idk.EXPECT().Insert(gomock.Any(), evt.EventID, "handle_user_deleted").Return(idk.ErrAlreadyInserted)
			},
		},
		{
			name: "user is not deleted",
			prepare: func(deps serviceDeps) {
				deps.users.EXPECT().Get(gomock.Any(), userID).Return(&user.Data{ID: userID}, nil)
			},
		},
		{
			name: "unknown user",
			prepare: func(deps serviceDeps) {
				deps.users.EXPECT().Get(gomock.Any(), userID).Return(nil, user.ErrUserNotFound)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			favoriteService, deps := newFavoriteService(ctrl, false)
			tt.prepare(deps)

			err := favoriteService.HandleUserDeleted(context.Background(), evt)
			require.NoError(t, err)
		})
	}
}
