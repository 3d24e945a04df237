package favorite

import (
	"fmt"

	"github.com/klwxsrx/social-profile-service/internal/favorite/api"
	"github.com/klwxsrx/social-profile-service/internal/favorite/app/service"
	"github.com/klwxsrx/social-profile-service/internal/favorite/app/user"
	"github.com/klwxsrx/social-profile-service/internal/favorite/domain"
	"github.com/klwxsrx/social-profile-service/internal/favorite/infra"
	"github.com/klwxsrx/social-profile-service/internal/favorite/infra/http"
	favoriteinfrauserhttp "github.com/klwxsrx/social-profile-service/internal/favorite/infra/user/http"
	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
	"github.com/klwxsrx/social-profile-service/internal/pkg/cmd"
	internalhttp "github.com/klwxsrx/social-profile-service/internal/pkg/http"
	"github.com/klwxsrx/social-profile-service/pkg/env"
	"github.com/klwxsrx/social-profile-service/pkg/event"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
	"github.com/klwxsrx/social-profile-service/pkg/idk"
	"github.com/klwxsrx/social-profile-service/pkg/lazy"
	"github.com/klwxsrx/social-profile-service/pkg/message"
	"github.com/klwxsrx/social-profile-service/pkg/persistence"
	"github.com/klwxsrx/social-profile-service/pkg/sql"
	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

var TopicDomainEventFavorite = message.NewDomainEventTopic(domain.Name, domain.AggregateNameFavorite)

type (
	EventDispatcherFactory func(message.Topic) event.Dispatcher

	DependencyContainer struct {
		FavoriteService lazy.Loader[api.FavoriteService]

		saveFavoriteHandler            lazy.Loader[http.SaveFavoriteHandler]
		listFavoritesHandler           lazy.Loader[http.ListFavoritesHandler]
		listUserFavoritesHandler       lazy.Loader[http.ListUserFavoritesHandler]
		listItemFavoritesHandler       lazy.Loader[http.ListItemFavoritesHandler]
		countItemFavoritesHandler      lazy.Loader[http.CountItemFavoritesHandler]
		unsaveFavoriteHandler          lazy.Loader[http.UnsaveFavoriteHandler]
		verifyFavoriteOwnershipHandler lazy.Loader[http.VerifyFavoriteOwnershipHandler]
	}
)

func NewDependencyContainer(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	transaction lazy.Loader[persistence.Transaction],
	httpClientFactory lazy.Loader[cmd.HTTPClientFactory],
	idkService lazy.Loader[idk.ServiceImpl],
	eventDispatcherFactory EventDispatcherFactory,
	clock lazy.Loader[pkgtime.Clock],
) DependencyContainer {
	sqlContainer := infra.NewSQLContainer(db, dbMigrations, clock)
	permissionService := lazy.New(func() (auth.PermissionService, error) {
		return auth.NewPermissionService(), nil
	})
	userService := userServiceProvider(httpClientFactory)
	eventDispatcher := lazy.New(func() (event.Dispatcher, error) {
		return eventDispatcherFactory(TopicDomainEventFavorite), nil
	})

	favoriteService := favoriteServiceProvider(
		userService,
		permissionService,
		idkService,
		sqlContainer,
		transaction,
		eventDispatcher,
	)

	return DependencyContainer{
		FavoriteService: lazy.New(func() (api.FavoriteService, error) {
			return favoriteService.Load()
		}),
		saveFavoriteHandler: lazy.New(func() (http.SaveFavoriteHandler, error) {
			return http.NewSaveFavoriteHandler(favoriteService.MustLoad()), nil
		}),
		listFavoritesHandler: lazy.New(func() (http.ListFavoritesHandler, error) {
			return http.NewListFavoritesHandler(favoriteService.MustLoad()), nil
		}),
		listUserFavoritesHandler: lazy.New(func() (http.ListUserFavoritesHandler, error) {
			return http.NewListUserFavoritesHandler(favoriteService.MustLoad()), nil
		}),
		listItemFavoritesHandler: lazy.New(func() (http.ListItemFavoritesHandler, error) {
			return http.NewListItemFavoritesHandler(favoriteService.MustLoad()), nil
		}),
		countItemFavoritesHandler: lazy.New(func() (http.CountItemFavoritesHandler, error) {
			return http.NewCountItemFavoritesHandler(favoriteService.MustLoad()), nil
		}),
		unsaveFavoriteHandler: lazy.New(func() (http.UnsaveFavoriteHandler, error) {
			return http.NewUnsaveFavoriteHandler(favoriteService.MustLoad()), nil
		}),
		verifyFavoriteOwnershipHandler: lazy.New(func() (http.VerifyFavoriteOwnershipHandler, error) {
			return http.NewVerifyFavoriteOwnershipHandler(favoriteService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	options := []pkghttp.ServerOption{
		pkghttp.WithAuthenticationRequirement(),
	}

	registry.Register(c.saveFavoriteHandler.MustLoad(), options...)
	registry.Register(c.listFavoritesHandler.MustLoad(), options...)
	registry.Register(c.listUserFavoritesHandler.MustLoad(), options...)
	registry.Register(c.listItemFavoritesHandler.MustLoad(), options...)
	registry.Register(c.countItemFavoritesHandler.MustLoad(), options...)
	registry.Register(c.unsaveFavoriteHandler.MustLoad(), options...)
	registry.Register(c.verifyFavoriteOwnershipHandler.MustLoad(), options...)
}

func (c *DependencyContainer) MustRegisterMessageHandlers(registry message.HandlerRegistry) {
	favoriteService := c.FavoriteService.MustLoad()

	err := registry.RegisterEventHandlers(
		message.NewSubscriberName(domain.Name),
		user.TopicDomainEventUser,
		message.ConsumptionTypeSingle,
		message.RegisterEventHandler(auth.WithServiceHandler[user.EventUserDeleted](
			auth.ServiceNameProfileWorker,
			favoriteService.HandleUserDeleted,
		)),
	)
	if err != nil {
		panic(fmt.Errorf("register %s message handlers: %w", domain.Name, err))
	}
}

func userServiceProvider(
	httpClientFactory lazy.Loader[cmd.HTTPClientFactory],
) lazy.Loader[user.Service] {
	return lazy.New(func() (user.Service, error) {
		httpClient := httpClientFactory.MustLoad().MustInitClient(
			favoriteinfrauserhttp.Destination,
			internalhttp.WithServiceNameAuth(auth.ServiceNameProfileService),
		)
		return favoriteinfrauserhttp.NewUserService(httpClient), nil
	})
}

func favoriteServiceProvider(
	userService lazy.Loader[user.Service],
	permissionService lazy.Loader[auth.PermissionService],
	idkService lazy.Loader[idk.ServiceImpl],
	sqlContainer lazy.Loader[infra.SQLContainer],
	transaction lazy.Loader[persistence.Transaction],
	eventDispatcher lazy.Loader[event.Dispatcher],
) lazy.Loader[service.Favorite] {
	return lazy.New(func() (service.Favorite, error) {
		config := service.FavoriteConfig{
			AllowDuplicates: env.Must(env.ParseWithDefault("FAVORITE_ALLOW_DUPLICATES", true)),
		}

		return service.NewFavorite(
			config,
			userService.MustLoad(),
			sqlContainer.MustLoad().FavoriteRepo.MustLoad(),
			permissionService.MustLoad(),
			idkService.MustLoad(),
			transaction.MustLoad(),
			eventDispatcher.MustLoad(),
		), nil
	})
}
