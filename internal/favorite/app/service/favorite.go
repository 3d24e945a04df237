//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Favorite=Favorite"
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/klwxsrx/social-profile-service/internal/favorite/app/permission"
	"github.com/klwxsrx/social-profile-service/internal/favorite/app/user"
	"github.com/klwxsrx/social-profile-service/internal/favorite/domain"
	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
	"github.com/klwxsrx/social-profile-service/pkg/event"
	"github.com/klwxsrx/social-profile-service/pkg/idk"
	"github.com/klwxsrx/social-profile-service/pkg/persistence"
)

type (
	Favorite interface {
		Save(ctx context.Context, userID domain.UserID, itemID string) (*FavoriteData, error)
		Find(ctx context.Context, spec domain.FindFavoriteSpecification) ([]FavoriteData, error)
		ListByUser(ctx context.Context, userID domain.UserID) ([]FavoriteData, error)
		ListByItem(ctx context.Context, itemID string) ([]FavoriteData, error)
		CountByItem(ctx context.Context, itemID string) (int, error)
		Unsave(ctx context.Context, id domain.FavoriteID) error
		UnsaveOwned(ctx context.Context, userID domain.UserID, id domain.FavoriteID) error
		VerifyOwnership(ctx context.Context, userID domain.UserID, id domain.FavoriteID) error
		HandleUserDeleted(context.Context, user.EventUserDeleted) error
	}

	FavoriteData struct {
		ID        domain.FavoriteID
		UserID    domain.UserID
		ItemID    string
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	FavoriteConfig struct {
		AllowDuplicates bool
	}

	favoriteService struct {
		config          FavoriteConfig
		userService     user.Service
		favoriteRepo    domain.FavoriteRepository
		permissions     auth.PermissionService
		idkService      idk.Service
		transaction     persistence.Transaction
		eventDispatcher event.Dispatcher
	}
)

func NewFavorite(
	config FavoriteConfig,
	userService user.Service,
	favoriteRepo domain.FavoriteRepository,
	permissions auth.PermissionService,
	idkService idk.Service,
	transaction persistence.Transaction,
	eventDispatcher event.Dispatcher,
) Favorite {
	return &favoriteService{
		config:          config,
		userService:     userService,
		favoriteRepo:    favoriteRepo,
		permissions:     permissions,
		idkService:      idkService,
		transaction:     transaction,
		eventDispatcher: eventDispatcher,
	}
}

func (s *favoriteService) Save(ctx context.Context, userID domain.UserID, itemID string) (*FavoriteData, error) {
	if err := s.permissions.Check(ctx, permission.CanManageFavorites(userID)); err != nil {
		return nil, err
	}

	var favorite *domain.Favorite
	err := s.transaction.Execute(ctx, func(ctx context.Context) error {
		if !s.config.AllowDuplicates {
			count, err := s.favoriteRepo.Count(ctx, domain.FindFavoriteSpecification{
				UserIDs: []domain.UserID{userID},
				ItemIDs: []string{itemID},
			})
			if err != nil {
				return fmt.Errorf("count favorites: %w", err)
			}
			if count > 0 {
				return ErrFavoriteAlreadyExists
			}
		}

		favorite = domain.NewFavorite(s.favoriteRepo.NextID(), userID, itemID)
		if err := s.favoriteRepo.Store(ctx, favorite); err != nil {
			return fmt.Errorf("store favorite: %w", err)
		}

		return s.eventDispatcher.Dispatch(ctx, domain.NewEventFavoriteSaved(favorite))
	}, saveLockName(userID, itemID))
	if err != nil {
		return nil, err
	}

	return toFavoriteData(favorite), nil
}

func (s *favoriteService) Find(ctx context.Context, spec domain.FindFavoriteSpecification) ([]FavoriteData, error) {
	if err := s.permissions.Check(ctx, permission.CanReadFavorites()); err != nil {
		return nil, err
	}

	favorites, err := s.favoriteRepo.Find(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("find favorites: %w", err)
	}

	result := make([]FavoriteData, 0, len(favorites))
	for i := range favorites {
		result = append(result, *toFavoriteData(&favorites[i]))
	}

	return result, nil
}

func (s *favoriteService) ListByUser(ctx context.Context, userID domain.UserID) ([]FavoriteData, error) {
	return s.Find(ctx, domain.FindFavoriteSpecification{UserIDs: []domain.UserID{userID}})
}

func (s *favoriteService) ListByItem(ctx context.Context, itemID string) ([]FavoriteData, error) {
	return s.Find(ctx, domain.FindFavoriteSpecification{ItemIDs: []string{itemID}})
}

func (s *favoriteService) CountByItem(ctx context.Context, itemID string) (int, error) {
	if err := s.permissions.Check(ctx, permission.CanReadFavorites()); err != nil {
		return 0, err
	}

	count, err := s.favoriteRepo.Count(ctx, domain.FindFavoriteSpecification{ItemIDs: []string{itemID}})
	if err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}

	return count, nil
}

func (s *favoriteService) Unsave(ctx context.Context, id domain.FavoriteID) error {
	if err := s.permissions.Check(ctx, permission.CanManageAnyFavorite()); err != nil {
		return err
	}

	return s.transaction.Execute(ctx, func(ctx context.Context) error {
		favorite, err := s.findOne(ctx, id)
		if err != nil {
			return err
		}

		err = s.favoriteRepo.Delete(ctx, id, nil)
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			return &FavoriteNotFoundError{FavoriteID: id}
		}
		if err != nil {
			return fmt.Errorf("delete favorite: %w", err)
		}

		return s.eventDispatcher.Dispatch(ctx, domain.NewEventFavoriteUnsaved(favorite))
	})
}

func (s *favoriteService) UnsaveOwned(ctx context.Context, userID domain.UserID, id domain.FavoriteID) error {
	if err := s.permissions.Check(ctx, permission.CanManageFavorites(userID)); err != nil {
		return err
	}

	return s.transaction.Execute(ctx, func(ctx context.Context) error {
		favorite, err := s.findOne(ctx, id)
		if err != nil {
			return err
		}

		err = s.favoriteRepo.Delete(ctx, id, &userID)
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			return &FavoriteOwnershipError{UserID: userID, FavoriteID: id}
		}
		if err != nil {
			return fmt.Errorf("delete favorite: %w", err)
		}

		return s.eventDispatcher.Dispatch(ctx, domain.NewEventFavoriteUnsaved(favorite))
	})
}

func (s *favoriteService) VerifyOwnership(ctx context.Context, userID domain.UserID, id domain.FavoriteID) error {
	if err := s.permissions.Check(ctx, permission.CanReadFavorites()); err != nil {
		return err
	}

	favorite, err := s.findOne(ctx, id)
	if err != nil {
		return err
	}
	if !favorite.IsOwnedBy(userID) {
		return &FavoriteOwnershipError{UserID: userID, FavoriteID: id}
	}

	return nil
}

func (s *favoriteService) HandleUserDeleted(ctx context.Context, evt user.EventUserDeleted) error {
	userData, err := s.userService.Get(ctx, evt.UserID)
	if errors.Is(err, user.ErrUserNotFound) || err == nil && !userData.IsDeleted() {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find user from userservice: %w", err)
	}

	err = s.transaction.Execute(ctx, func(ctx context.Context) error {
		if err := s.idkService.Insert(ctx, evt.EventID, "handle_user_deleted"); err != nil {
			return err
		}

		favorites, err := s.favoriteRepo.Find(ctx, domain.FindFavoriteSpecification{
			UserIDs: []domain.UserID{evt.UserID},
		})
		if err != nil {
			return fmt.Errorf("find user favorites: %w", err)
		}

		events := make([]event.Event, 0, len(favorites))
		for i := range favorites {
			err = s.favoriteRepo.Delete(ctx, favorites[i].ID, &evt.UserID)
			if errors.Is(err, domain.ErrFavoriteNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("delete favorite: %w", err)
			}

			events = append(events, domain.NewEventFavoriteUnsaved(&favorites[i]))
		}
		if len(events) == 0 {
			return nil
		}

		return s.eventDispatcher.Dispatch(ctx, events...)
	})
	if errors.Is(err, idk.ErrAlreadyInserted) {
		return nil
	}

	return err
}

func (s *favoriteService) findOne(ctx context.Context, id domain.FavoriteID) (*domain.Favorite, error) {
	favorite, err := s.favoriteRepo.FindOne(ctx, domain.FindFavoriteSpecification{
		IDs: []domain.FavoriteID{id},
	})
	if errors.Is(err, domain.ErrFavoriteNotFound) {
		return nil, &FavoriteNotFoundError{FavoriteID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("find favorite: %w", err)
	}

	return favorite, nil
}

func saveLockName(userID domain.UserID, itemID string) string {
	return fmt.Sprintf("favorite_save_%s_%s", userID, itemID)
}

func toFavoriteData(favorite *domain.Favorite) *FavoriteData {
	return &FavoriteData{
		ID:        favorite.ID,
		UserID:    favorite.UserID,
		ItemID:    favorite.ItemID,
		CreatedAt: favorite.CreatedAt,
		UpdatedAt: favorite.UpdatedAt,
	}
}
