//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Profile=Profile"
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
	"github.com/klwxsrx/social-profile-service/internal/profile/app/favorite"
	"github.com/klwxsrx/social-profile-service/internal/profile/app/permission"
	"github.com/klwxsrx/social-profile-service/internal/profile/app/user"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	"github.com/klwxsrx/social-profile-service/pkg/idk"
	"github.com/klwxsrx/social-profile-service/pkg/log"
	"github.com/klwxsrx/social-profile-service/pkg/metric"
	"github.com/klwxsrx/social-profile-service/pkg/persistence"
)

const (
	DefaultUpdateMaxAttempts = 10

	FieldPictureRef = "pictureRef"

	metricUpdateConflicts = "profile_update_conflicts_total"
)

type (
	Profile interface {
		Create(ctx context.Context, ownerID domain.UserID, pictureRef *string) (*ProfileData, error)
		GetByOwner(ctx context.Context, ownerID domain.UserID) (*ProfileData, error)
		Update(ctx context.Context, id domain.ProfileID, fields ProfileUpdate) error
		Delete(ctx context.Context, id domain.ProfileID) error
		ListReferences(ctx context.Context, ownerID domain.UserID, kind domain.ReferenceKind) ([]string, error)
		AddReference(ctx context.Context, ownerID domain.UserID, kind domain.ReferenceKind, refID string) error
		RemoveReference(ctx context.Context, ownerID domain.UserID, kind domain.ReferenceKind, refID string) error
		HandleFavoriteSaved(context.Context, favorite.EventFavoriteSaved) error
		HandleFavoriteUnsaved(context.Context, favorite.EventFavoriteUnsaved) error
		HandleUserDeleted(context.Context, user.EventUserDeleted) error
	}

	// ProfileUpdate holds decoded JSON fields of a partial update, only pictureRef may be changed.
	ProfileUpdate map[string]any

	ProfileData struct {
		ID         domain.ProfileID
		OwnerID    domain.UserID
		PictureRef *string
		Posts      []string
		Reviews    []string
		Favorites  []string
		CreatedAt  time.Time
		UpdatedAt  time.Time
	}

	ProfileConfig struct {
		UpdateMaxAttempts int
	}

	profileService struct {
		config      ProfileConfig
		userService user.Service
		profileRepo domain.ProfileRepository
		permissions auth.PermissionService
		idkService  idk.Service
		transaction persistence.Transaction
		metrics     metric.Metrics
		logger      log.Logger
	}
)

func NewProfile(
	config ProfileConfig,
	userService user.Service,
	profileRepo domain.ProfileRepository,
	permissions auth.PermissionService,
	idkService idk.Service,
	transaction persistence.Transaction,
	metrics metric.Metrics,
	logger log.Logger,
) Profile {
	if config.UpdateMaxAttempts <= 0 {
		config.UpdateMaxAttempts = DefaultUpdateMaxAttempts
	}

	return &profileService{
		config:      config,
		userService: userService,
		profileRepo: profileRepo,
		permissions: permissions,
		idkService:  idkService,
		transaction: transaction,
		metrics:     metrics,
		logger:      logger,
	}
}

func (s *profileService) Create(ctx context.Context, ownerID domain.UserID, pictureRef *string) (*ProfileData, error) {
	if err := s.permissions.Check(ctx, permission.CanCreateProfile(ownerID)); err != nil {
		return nil, err
	}

	userData, err := s.userService.Get(ctx, ownerID)
	if errors.Is(err, user.ErrUserNotFound) || err == nil && userData.IsDeleted() {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user from userservice: %w", err)
	}

	_, err = s.profileRepo.FindOne(ctx, domain.FindProfileSpecification{OwnerID: &ownerID})
	if err == nil {
		return nil, ErrProfileAlreadyExists
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, fmt.Errorf("find profile by owner: %w", err)
	}

	profile := domain.NewProfile(s.profileRepo.NextID(), ownerID, pictureRef)
	err = s.profileRepo.Store(ctx, profile)
	if errors.Is(err, domain.ErrProfileAlreadyExists) {
		return nil, ErrProfileAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("store profile: %w", err)
	}

	return toProfileData(profile), nil
}

func (s *profileService) GetByOwner(ctx context.Context, ownerID domain.UserID) (*ProfileData, error) {
	if err := s.permissions.Check(ctx, permission.CanReadProfile()); err != nil {
		return nil, err
	}

	profile, err := s.findByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return toProfileData(profile), nil
}

func (s *profileService) Update(ctx context.Context, id domain.ProfileID, fields ProfileUpdate) error {
	pictureRef, err := fields.pictureRef()
	if err != nil {
		return err
	}

	return s.modify(ctx, domain.FindProfileSpecification{ID: &id}, func(profile *domain.Profile) error {
		if err := s.permissions.Check(ctx, permission.CanModifyProfile(profile.OwnerID)); err != nil {
			return err
		}

		if pictureRef != nil {
			profile.PictureRef = *pictureRef
		}
		return nil
	})
}

func (s *profileService) Delete(ctx context.Context, id domain.ProfileID) error {
	profile, err := s.profileRepo.FindOne(ctx, domain.FindProfileSpecification{ID: &id})
	if errors.Is(err, domain.ErrProfileNotFound) {
		return ErrProfileNotFound
	}
	if err != nil {
		return fmt.Errorf("find profile by id: %w", err)
	}

	if err = s.permissions.Check(ctx, permission.CanModifyProfile(profile.OwnerID)); err != nil {
		return err
	}

	err = s.profileRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return ErrProfileNotFound
	}
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	return nil
}

func (s *profileService) ListReferences(
	ctx context.Context,
	ownerID domain.UserID,
	kind domain.ReferenceKind,
) ([]string, error) {
	if err := s.permissions.Check(ctx, permission.CanReadProfile()); err != nil {
		return nil, err
	}

	profile, err := s.findByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return slices.Clone(profile.References(kind)), nil
}

func (s *profileService) AddReference(
	ctx context.Context,
	ownerID domain.UserID,
	kind domain.ReferenceKind,
	refID string,
) error {
	if err := s.permissions.Check(ctx, permission.CanModifyProfile(ownerID)); err != nil {
		return err
	}

	return s.modify(ctx, domain.FindProfileSpecification{OwnerID: &ownerID}, func(profile *domain.Profile) error {
		return profile.AddReference(kind, refID)
	})
}

func (s *profileService) RemoveReference(
	ctx context.Context,
	ownerID domain.UserID,
	kind domain.ReferenceKind,
	refID string,
) error {
	if err := s.permissions.Check(ctx, permission.CanModifyProfile(ownerID)); err != nil {
		return err
	}

	return s.modify(ctx, domain.FindProfileSpecification{OwnerID: &ownerID}, func(profile *domain.Profile) error {
		err := profile.RemoveReference(kind, refID)
		if errors.Is(err, domain.ErrReferenceNotFound) {
			return &ReferenceNotFoundError{Kind: kind, ID: refID}
		}

		return err
	})
}

func (s *profileService) HandleFavoriteSaved(ctx context.Context, event favorite.EventFavoriteSaved) error {
	return s.handleEventOnce(ctx, event.EventID, "handle_favorite_saved", func(ctx context.Context) error {
		err := s.AddReference(ctx, event.UserID, domain.ReferenceKindFavorite, event.ItemID)
		if errors.Is(err, ErrProfileNotFound) {
			s.logger.
				WithField("ownerID", event.UserID.String()).
				WithField("favoriteID", event.FavoriteID.String()).
				Warn(ctx, "profile for saved favorite not found, skipped")
			return nil
		}

		return err
	})
}

func (s *profileService) HandleFavoriteUnsaved(ctx context.Context, event favorite.EventFavoriteUnsaved) error {
	return s.handleEventOnce(ctx, event.EventID, "handle_favorite_unsaved", func(ctx context.Context) error {
		err := s.RemoveReference(ctx, event.UserID, domain.ReferenceKindFavorite, event.ItemID)
		if errors.Is(err, ErrProfileNotFound) || errors.Is(err, ErrReferenceNotFound) {
			s.logger.
				WithError(err).
				WithField("ownerID", event.UserID.String()).
				WithField("favoriteID", event.FavoriteID.String()).
				Warn(ctx, "unsaved favorite not found in profile, skipped")
			return nil
		}

		return err
	})
}

func (s *profileService) HandleUserDeleted(ctx context.Context, event user.EventUserDeleted) error {
	userData, err := s.userService.Get(ctx, event.UserID)
	if errors.Is(err, user.ErrUserNotFound) || err == nil && !userData.IsDeleted() {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find user from userservice: %w", err)
	}

	return s.handleEventOnce(ctx, event.EventID, "handle_user_deleted", func(ctx context.Context) error {
		profile, err := s.profileRepo.FindOne(ctx, domain.FindProfileSpecification{OwnerID: &event.UserID})
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("find profile by owner: %w", err)
		}

		err = s.profileRepo.Delete(ctx, profile.ID)
		if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
			return fmt.Errorf("delete profile: %w", err)
		}

		return nil
	})
}

func (s *profileService) findByOwner(ctx context.Context, ownerID domain.UserID) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindOne(ctx, domain.FindProfileSpecification{OwnerID: &ownerID})
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile by owner: %w", err)
	}

	return profile, nil
}

// modify reads the profile, applies fn and writes it back if nobody has changed it in between, otherwise repeats.
func (s *profileService) modify(
	ctx context.Context,
	spec domain.FindProfileSpecification,
	fn func(*domain.Profile) error,
) error {
	attempt := func() error {
		profile, err := s.profileRepo.FindOne(ctx, spec)
		if errors.Is(err, domain.ErrProfileNotFound) {
			return backoff.Permanent(ErrProfileNotFound)
		}
		if err != nil {
			return backoff.Permanent(fmt.Errorf("find profile: %w", err))
		}

		if err = fn(profile); err != nil {
			return backoff.Permanent(err)
		}

		err = s.profileRepo.Update(ctx, profile)
		if errors.Is(err, domain.ErrProfileVersionConflict) {
			s.metrics.Increment(metricUpdateConflicts)
			return err
		}
		if err != nil {
			return backoff.Permanent(fmt.Errorf("update profile: %w", err))
		}

		return nil
	}

	err := backoff.Retry(attempt, backoff.WithContext(s.updateBackOff(), ctx))
	if errors.Is(err, domain.ErrProfileVersionConflict) {
		return ErrProfileConcurrentUpdate
	}

	return err
}

func (s *profileService) updateBackOff() backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = 5 * time.Millisecond
	eb.MaxInterval = 200 * time.Millisecond
	eb.MaxElapsedTime = 0

	return backoff.WithMaxRetries(eb, uint64(s.config.UpdateMaxAttempts-1))
}

func (s *profileService) handleEventOnce(
	ctx context.Context,
	eventID uuid.UUID,
	handlerName string,
	fn func(context.Context) error,
) error {
	err := s.transaction.Execute(ctx, func(ctx context.Context) error {
		if err := s.idkService.Insert(ctx, eventID, handlerName); err != nil {
			return err
		}

		return fn(ctx)
	})
	if errors.Is(err, idk.ErrAlreadyInserted) {
		return nil
	}

	return err
}

func (u ProfileUpdate) pictureRef() (**string, error) {
	keys := make([]string, 0, len(u))
	for key := range u {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var result **string
	for _, key := range keys {
		if key != FieldPictureRef {
			return nil, &InvalidProfileUpdateError{Field: key}
		}

		switch value := u[key].(type) {
		case nil:
			var ref *string
			result = &ref
		case string:
			ref := &value
			result = &ref
		default:
			return nil, &InvalidProfileUpdateError{Field: key, Reason: "must be a string or null"}
		}
	}

	return result, nil
}

func toProfileData(profile *domain.Profile) *ProfileData {
	return &ProfileData{
		ID:         profile.ID,
		OwnerID:    profile.OwnerID,
		PictureRef: profile.PictureRef,
		Posts:      slices.Clone(profile.Posts),
		Reviews:    slices.Clone(profile.Reviews),
		Favorites:  slices.Clone(profile.Favorites),
		CreatedAt:  profile.CreatedAt,
		UpdatedAt:  profile.UpdatedAt,
	}
}
