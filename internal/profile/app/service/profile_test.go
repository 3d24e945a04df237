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

	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
	"github.com/klwxsrx/social-profile-service/internal/profile/app/favorite"
	"github.com/klwxsrx/social-profile-service/internal/profile/app/service"
	"github.com/klwxsrx/social-profile-service/internal/profile/app/user"
	profileappusermock "github.com/klwxsrx/social-profile-service/internal/profile/app/user/mock"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	profiledomainmock "github.com/klwxsrx/social-profile-service/internal/profile/domain/mock"
	pkgauth "github.com/klwxsrx/social-profile-service/pkg/auth"
	"github.com/klwxsrx/social-profile-service/pkg/idk"
	pkgidkmock "github.com/klwxsrx/social-profile-service/pkg/idk/mock"
	"github.com/klwxsrx/social-profile-service/pkg/log"
	"github.com/klwxsrx/social-profile-service/pkg/metric"
	pkgpersistencestub "github.com/klwxsrx/social-profile-service/pkg/persistence/stub"
)

type serviceDeps struct {
	users *profileappusermock.Service
	repo  *profiledomainmock.ProfileRepository
	idk   *pkgidkmock.Service
}

func newProfileService(ctrl *gomock.Controller, maxAttempts int) (service.Profile, serviceDeps) {
	deps := serviceDeps{
		users: profileappusermock.NewService(ctrl),
		repo:  profiledomainmock.NewProfileRepository(ctrl),
		idk:   pkgidkmock.NewService(ctrl),
	}

	return service.NewProfile(
		service.ProfileConfig{UpdateMaxAttempts: maxAttempts},
		deps.users,
		deps.repo,
		auth.NewPermissionService(),
		deps.idk,
		pkgpersistencestub.NewTransaction(),
		metric.NewMetricsStub(),
		log.NewStub(),
	), deps
}

func newProfile(ownerID domain.UserID, posts ...string) *domain.Profile {
	profile := domain.NewProfile(domain.ProfileID{UUID: uuid.New()}, ownerID, nil)
	profile.Posts = append(profile.Posts, posts...)
	profile.Version = 1
	return profile
}

func TestProfileService_Create(t *testing.T) {
	t.Parallel()
	ownerID := domain.UserID{UUID: uuid.New()}
	deletedAt := time.Now()

	tests := []struct {
		name    string
		ctx     context.Context
		prepare func(deps serviceDeps)
		err     error
	}{
		{
			name: "success",
			ctx:  auth.WithUserAuthentication(context.Background(), ownerID.UUID),
			prepare: func(deps serviceDeps) {
				deps.users.EXPECT().Get(gomock.Any(), ownerID).Return(&user.Data{ID: ownerID}, nil)
				deps.repo.EXPECT().FindOne(gomock.Any(), domain.FindProfileSpecification{OwnerID: &ownerID}).
					Return(nil, domain.ErrProfileNotFound)
				deps.repo.EXPECT().NextID().Return(domain.ProfileID{UUID: uuid.New()})
				deps.repo.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, profile *domain.Profile) {
						assert.Equal(t, ownerID, profile.OwnerID)
						assert.Empty(t, profile.Posts)
					}).
					Return(nil)
			},
		},
		{
			name: "service creates on behalf of user",
			ctx:  auth.WithServiceAuthentication(context.Background(), auth.ServiceNameProfileWorker),
			prepare: func(deps serviceDeps) {
				deps.users.EXPECT().Get(gomock.Any(), ownerID).Return(&user.Data{ID: ownerID}, nil)
				deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrProfileNotFound)
				deps.repo.EXPECT().NextID().Return(domain.ProfileID{UUID: uuid.New()})
				deps.repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "another user is denied",
			ctx:     auth.WithUserAuthentication(context.Background(), uuid.New()),
			prepare: func(serviceDeps) {},
			err:     pkgauth.ErrPermissionDenied,
		},
		{
			name: "unknown user",
			ctx:  auth.WithUserAuthentication(context.Background(), ownerID.UUID),
			prepare: func(deps serviceDeps) {
				deps.users.EXPECT().Get(gomock.Any(), ownerID).Return(nil, user.ErrUserNotFound)
			},
			err: service.ErrUserNotFound,
		},
		{
			name: "deleted user",
			ctx:  auth.WithUserAuthentication(context.Background(), ownerID.UUID),
			prepare: func(deps serviceDeps) {
				deps.users.EXPECT().Get(gomock.Any(), ownerID).Return(&user.Data{ID: ownerID, DeletedAt: &deletedAt}, nil)
			},
			err: service.ErrUserNotFound,
		},
		{
			name: "existing profile",
			ctx:  auth.WithUserAuthentication(context.Background(), ownerID.UUID),
			prepare: func(deps serviceDeps) {
				deps.users.EXPECT().Get(gomock.Any(), ownerID).Return(&user.Data{ID: ownerID}, nil)
				deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(newProfile(ownerID), nil)
			},
			err: service.ErrProfileAlreadyExists,
		},
		{
			name: "profile created concurrently",
			ctx:  auth.WithUserAuthentication(context.Background(), ownerID.UUID),
			prepare: func(deps serviceDeps) {
				deps.users.EXPECT().Get(gomock.Any(), ownerID).Return(&user.Data{ID: ownerID}, nil)
				deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrProfileNotFound)
				deps.repo.EXPECT().NextID().Return(domain.ProfileID{UUID: uuid.New()})
				deps.repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(domain.ErrProfileAlreadyExists)
			},
			err: service.ErrProfileAlreadyExists,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			srv, deps := newProfileService(ctrl, 0)
			tt.prepare(deps)

			data, err := srv.Create(tt.ctx, ownerID, nil)
			assert.ErrorIs(t, err, tt.err)
			if tt.err == nil {
				require.NotNil(t, data)
				assert.Equal(t, ownerID, data.OwnerID)
			}
		})
	}
}

func TestProfileService_Update_RejectsFieldsBeforeStorage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		fields  service.ProfileUpdate
		message string
	}{
		{name: "posts", fields: service.ProfileUpdate{"posts": []any{"p1"}}, message: "cannot update 'posts' field"},
		{name: "reviews", fields: service.ProfileUpdate{"reviews": nil}, message: "cannot update 'reviews' field"},
		{name: "favorites", fields: service.ProfileUpdate{"favorites": nil}, message: "cannot update 'favorites' field"},
		{name: "owner", fields: service.ProfileUpdate{"owner": "u1"}, message: "cannot update 'owner' field"},
		{name: "unknown", fields: service.ProfileUpdate{"nickname": "bob"}, message: "cannot update 'nickname' field"},
		{
			name:    "mixed with allowed field",
			fields:  service.ProfileUpdate{"pictureRef": "pic", "favorites": nil},
			message: "cannot update 'favorites' field",
		},
		{
			name:    "picture of wrong type",
			fields:  service.ProfileUpdate{"pictureRef": 42.0},
			message: "cannot update 'pictureRef' field: must be a string or null",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			srv, _ := newProfileService(ctrl, 0)

			err := srv.Update(context.Background(), domain.ProfileID{UUID: uuid.New()}, tt.fields)
			assert.ErrorIs(t, err, service.ErrInvalidProfileUpdate)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestProfileService_Update_SetsPicture(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	srv, deps := newProfileService(ctrl, 0)
	ownerID := domain.UserID{UUID: uuid.New()}
	profile := newProfile(ownerID)
	ctx := auth.WithUserAuthentication(context.Background(), ownerID.UUID)

	deps.repo.EXPECT().FindOne(gomock.Any(), domain.FindProfileSpecification{ID: &profile.ID}).Return(profile, nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updated *domain.Profile) {
			require.NotNil(t, updated.PictureRef)
			assert.Equal(t, "pic-2", *updated.PictureRef)
		}).
		Return(nil)

	require.NoError(t, srv.Update(ctx, profile.ID, service.ProfileUpdate{"pictureRef": "pic-2"}))
}

func TestProfileService_Update_DeniesOtherUser(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	srv, deps := newProfileService(ctrl, 0)
	profile := newProfile(domain.UserID{UUID: uuid.New()})
	ctx := auth.WithUserAuthentication(context.Background(), uuid.New())

	deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(profile, nil)

	err := srv.Update(ctx, profile.ID, service.ProfileUpdate{"pictureRef": nil})
	assert.ErrorIs(t, err, pkgauth.ErrPermissionDenied)
}

func TestProfileService_AddReference_RetriesOnVersionConflict(t *testing.T) {
	t.Parallel()
	ownerID := domain.UserID{UUID: uuid.New()}
	ctx := auth.WithUserAuthentication(context.Background(), ownerID.UUID)

	tests := []struct {
		name        string
		maxAttempts int
		conflicts   int
		err         error
	}{
		{name: "no conflict", maxAttempts: 3, conflicts: 0},
		{name: "resolved after conflicts", maxAttempts: 3, conflicts: 2},
		{name: "attempts exhausted", maxAttempts: 3, conflicts: 3, err: service.ErrProfileConcurrentUpdate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			srv, deps := newProfileService(ctrl, tt.maxAttempts)

			attempts := min(tt.conflicts+1, tt.maxAttempts)
			deps.repo.EXPECT().FindOne(gomock.Any(), domain.FindProfileSpecification{OwnerID: &ownerID}).
				DoAndReturn(func(context.Context, domain.FindProfileSpecification) (*domain.Profile, error) {
					return newProfile(ownerID, "p1"), nil
				}).
				Times(attempts)

			conflicts := tt.conflicts
			deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, profile *domain.Profile) error {
					assert.Equal(t, []string{"p1", "p2"}, profile.Posts)
					if conflicts > 0 {
						conflicts--
						return domain.ErrProfileVersionConflict
					}
					return nil
				}).
				Times(attempts)

			err := srv.AddReference(ctx, ownerID, domain.ReferenceKindPost, "p2")
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestProfileService_RemoveReference_NotFound(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	srv, deps := newProfileService(ctrl, 0)
	ownerID := domain.UserID{UUID: uuid.New()}
	ctx := auth.WithUserAuthentication(context.Background(), ownerID.UUID)

	deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(newProfile(ownerID, "p1"), nil)

	err := srv.RemoveReference(ctx, ownerID, domain.ReferenceKindReview, "r9")
	assert.ErrorIs(t, err, service.ErrReferenceNotFound)
	assert.EqualError(t, err, "review with the given id: r9 is not associated with this profile")
}

func TestProfileService_UnknownOwner(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	srv, deps := newProfileService(ctrl, 0)
	ownerID := domain.UserID{UUID: uuid.New()}
	ctx := auth.WithUserAuthentication(context.Background(), ownerID.UUID)

	deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrProfileNotFound).Times(4)

	_, err := srv.GetByOwner(ctx, ownerID)
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
	_, err = srv.ListReferences(ctx, ownerID, domain.ReferenceKindPost)
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
	assert.ErrorIs(t, srv.AddReference(ctx, ownerID, domain.ReferenceKindPost, "p1"), service.ErrProfileNotFound)
	assert.ErrorIs(t, srv.RemoveReference(ctx, ownerID, domain.ReferenceKindPost, "p1"), service.ErrProfileNotFound)
}

func TestProfileService_ReadRequiresAuthentication(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	srv, _ := newProfileService(ctrl, 0)
	ctx := pkgauth.WithAuthentication(context.Background(), pkgauth.Anonymous[auth.Principal]())

	_, err := srv.GetByOwner(ctx, domain.UserID{UUID: uuid.New()})
	assert.ErrorIs(t, err, pkgauth.ErrPermissionDenied)
}

func TestProfileService_HandleFavoriteSaved(t *testing.T) {
	t.Parallel()
	ownerID := domain.UserID{UUID: uuid.New()}
	event := favorite.EventFavoriteSaved{
		EventID:    uuid.New(),
		FavoriteID: uuid.New(),
		UserID:     ownerID,
		ItemID:     "item-1",
	}
	ctx := auth.WithServiceAuthentication(context.Background(), auth.ServiceNameProfileWorker)

	tests := []struct {
		name    string
		prepare func(deps serviceDeps)
		err     error
	}{
		{
			name: "adds favorite",
			prepare: func(deps serviceDeps) {
				deps.idk.EXPECT().Insert(gomock.Any(), event.EventID, "handle_favorite_saved").Return(nil)
				deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(newProfile(ownerID), nil)
				deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, profile *domain.Profile) {
						assert.Equal(t, []string{"item-1"}, profile.Favorites)
					}).
					Return(nil)
			},
		},
		{
			name: "skips already handled event",
			prepare: func(deps serviceDeps) {
				deps.idk.EXPECT().Insert(gomock.Any(), event.EventID, "handle_favorite_saved").Return(idk.ErrAlreadyInserted)
			},
		},
		{
			name: "skips missing profile",
			prepare: func(deps serviceDeps) {
				deps.idk.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrProfileNotFound)
			},
		},
		{
			name: "fails on storage error",
			prepare: func(deps serviceDeps) {
				deps.idk.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, errors.New("unexpected"))
			},
			err: errors.New("find profile: unexpected"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			srv, deps := newProfileService(ctrl, 0)
			tt.prepare(deps)

			err := srv.HandleFavoriteSaved(ctx, event)
			if tt.err != nil {
				assert.EqualError(t, err, tt.err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfileService_HandleFavoriteUnsaved_SkipsMissingElement(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	srv, deps := newProfileService(ctrl, 0)
	ownerID := domain.UserID{UUID: uuid.New()}
	ctx := auth.WithServiceAuthentication(context.Background(), auth.ServiceNameProfileWorker)

	deps.idk.EXPECT().Insert(gomock.Any(), gomock.Any(), "handle_favorite_unsaved").Return(nil)
	deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(newProfile(ownerID), nil)

	err := srv.HandleFavoriteUnsaved(ctx, favorite.EventFavoriteUnsaved{
		EventID:    uuid.New(),
		FavoriteID: uuid.New(),
		UserID:     ownerID,
		ItemID:     "item-1",
	})
	assert.NoError(t, err)
}

func TestProfileService_HandleUserDeleted(t *testing.T) {
	t.Parallel()
	ownerID := domain.UserID{UUID: uuid.New()}
	deletedAt := time.Now()
	event := user.EventUserDeleted{EventID: uuid.New(), UserID: ownerID}

	tests := []struct {
		name    string
		prepare func(deps serviceDeps)
	}{
		{
			name: "deletes profile",
			prepare: func(deps serviceDeps) {
				profile := newProfile(ownerID)
				deps.users.EXPECT().Get(gomock.Any(), ownerID).Return(&user.Data{ID: ownerID, DeletedAt: &deletedAt}, nil)
				deps.idk.EXPECT().Insert(gomock.Any(), event.EventID, "handle_user_deleted").Return(nil)
				deps.repo.EXPECT().FindOne(gomock.Any(), domain.FindProfileSpecification{OwnerID: &ownerID}).Return(profile, nil)
				deps.repo.EXPECT().Delete(gomock.Any(), profile.ID).Return(nil)
			},
		},
		{
			name: "ignores user that is not deleted",
			prepare: func(deps serviceDeps) {
				deps.users.EXPECT().Get(gomock.Any(), ownerID).Return(&user.Data{ID: ownerID}, nil)
			},
		},
		{
			name: "ignores user without profile",
			prepare: func(deps serviceDeps) {
				deps.users.EXPECT().Get(gomock.Any(), ownerID).Return(&user.Data{ID: ownerID, DeletedAt: &deletedAt}, nil)
				deps.idk.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				deps.repo.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrProfileNotFound)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			srv, deps := newProfileService(ctrl, 0)
			tt.prepare(deps)

			assert.NoError(t, srv.HandleUserDeleted(context.Background(), event))
		})
	}
}
