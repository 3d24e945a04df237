package profile

import (
	"fmt"

	"github.com/klwxsrx/social-profile-service/internal/pkg/auth"
	"github.com/klwxsrx/social-profile-service/internal/pkg/cmd"
	internalhttp "github.com/klwxsrx/social-profile-service/internal/pkg/http"
	"github.com/klwxsrx/social-profile-service/internal/profile/api"
	"github.com/klwxsrx/social-profile-service/internal/profile/app/favorite"
	"github.com/klwxsrx/social-profile-service/internal/profile/app/service"
	"github.com/klwxsrx/social-profile-service/internal/profile/app/user"
	"github.com/klwxsrx/social-profile-service/internal/profile/domain"
	"github.com/klwxsrx/social-profile-service/internal/profile/infra"
	"github.com/klwxsrx/social-profile-service/internal/profile/infra/http"
	profileinfrauserhttp "github.com/klwxsrx/social-profile-service/internal/profile/infra/user/http"
	"github.com/klwxsrx/social-profile-service/pkg/env"
	pkghttp "github.com/klwxsrx/social-profile-service/pkg/http"
	"github.com/klwxsrx/social-profile-service/pkg/idk"
	"github.com/klwxsrx/social-profile-service/pkg/lazy"
	"github.com/klwxsrx/social-profile-service/pkg/log"
	"github.com/klwxsrx/social-profile-service/pkg/message"
	"github.com/klwxsrx/social-profile-service/pkg/metric"
	"github.com/klwxsrx/social-profile-service/pkg/persistence"
	"github.com/klwxsrx/social-profile-service/pkg/sql"
	pkgtime "github.com/klwxsrx/social-profile-service/pkg/time"
)

type DependencyContainer struct {
	ProfileService lazy.Loader[api.ProfileService]

	createProfileHandler   lazy.Loader[http.CreateProfileHandler]
	getProfileHandler      lazy.Loader[http.GetProfileHandler]
	updateProfileHandler   lazy.Loader[http.UpdateProfileHandler]
	deleteProfileHandler   lazy.Loader[http.DeleteProfileHandler]
	listReferencesHandler  lazy.Loader[http.ListReferencesHandler]
	addReferenceHandler    lazy.Loader[http.AddReferenceHandler]
	removeReferenceHandler lazy.Loader[http.RemoveReferenceHandler]
}

func NewDependencyContainer(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	transaction lazy.Loader[persistence.Transaction],
	httpClientFactory lazy.Loader[cmd.HTTPClientFactory],
	idkService lazy.Loader[idk.ServiceImpl],
	clock lazy.Loader[pkgtime.Clock],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) DependencyContainer {
	sqlContainer := infra.NewSQLContainer(db, dbMigrations, clock)
	permissionService := permissionServiceProvider()
	userService := userServiceProvider(httpClientFactory)

	profileService := profileServiceProvider(
		userService,
		permissionService,
		idkService,
		sqlContainer,
		transaction,
		metrics,
		logger,
	)

	return DependencyContainer{
		ProfileService: lazy.New(func() (api.ProfileService, error) {
			return profileService.Load()
		}),
		createProfileHandler: lazy.New(func() (http.CreateProfileHandler, error) {
			return http.NewCreateProfileHandler(profileService.MustLoad()), nil
		}),
		getProfileHandler: lazy.New(func() (http.GetProfileHandler, error) {
			return http.NewGetProfileHandler(profileService.MustLoad()), nil
		}),
		updateProfileHandler: lazy.New(func() (http.UpdateProfileHandler, error) {
			return http.NewUpdateProfileHandler(profileService.MustLoad()), nil
		}),
		deleteProfileHandler: lazy.New(func() (http.DeleteProfileHandler, error) {
			return http.NewDeleteProfileHandler(profileService.MustLoad()), nil
		}),
		listReferencesHandler: lazy.New(func() (http.ListReferencesHandler, error) {
			return http.NewListReferencesHandler(profileService.MustLoad()), nil
		}),
		addReferenceHandler: lazy.New(func() (http.AddReferenceHandler, error) {
			return http.NewAddReferenceHandler(profileService.MustLoad()), nil
		}),
		removeReferenceHandler: lazy.New(func() (http.RemoveReferenceHandler, error) {
			return http.NewRemoveReferenceHandler(profileService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	options := []pkghttp.ServerOption{
		pkghttp.WithAuthenticationRequirement(),
	}

	registry.Register(c.createProfileHandler.MustLoad(), options...)
	registry.Register(c.getProfileHandler.MustLoad(), options...)
	registry.Register(c.updateProfileHandler.MustLoad(), options...)
	registry.Register(c.deleteProfileHandler.MustLoad(), options...)
	registry.Register(c.listReferencesHandler.MustLoad(), options...)
	registry.Register(c.addReferenceHandler.MustLoad(), options...)
	registry.Register(c.removeReferenceHandler.MustLoad(), options...)
}

func (c *DependencyContainer) MustRegisterMessageHandlers(registry message.HandlerRegistry) {
	profileService := c.ProfileService.MustLoad()
	subscriber := message.NewSubscriberName(domain.Name)

	err := registry.RegisterEventHandlers(
		subscriber,
		favorite.TopicDomainEventFavorite,
		message.ConsumptionTypeSingle,
		message.RegisterEventHandler(auth.WithServiceHandler[favorite.EventFavoriteSaved](
			auth.ServiceNameProfileWorker,
			profileService.HandleFavoriteSaved,
		)),
		message.RegisterEventHandler(auth.WithServiceHandler[favorite.EventFavoriteUnsaved](
			auth.ServiceNameProfileWorker,
			profileService.HandleFavoriteUnsaved,
		)),
	)
	if err != nil {
		panic(fmt.Errorf("register %s message handlers: %w", domain.Name, err))
	}

	err = registry.RegisterEventHandlers(
		subscriber,
		user.TopicDomainEventUser,
		message.ConsumptionTypeSingle,
		message.RegisterEventHandler(auth.WithServiceHandler[user.EventUserDeleted](
			auth.ServiceNameProfileWorker,
			profileService.HandleUserDeleted,
		)),
	)
	if err != nil {
		panic(fmt.Errorf("register %s message handlers: %w", domain.Name, err))
	}
}

func permissionServiceProvider() lazy.Loader[auth.PermissionService] {
	return lazy.New(func() (auth.PermissionService, error) {
		return auth.NewPermissionService(), nil
	})
}

func userServiceProvider(
	httpClientFactory lazy.Loader[cmd.HTTPClientFactory],
) lazy.Loader[user.Service] {
	return lazy.New(func() (user.Service, error) {
		httpClient := httpClientFactory.MustLoad().MustInitClient(
			profileinfrauserhttp.Destination,
			internalhttp.WithServiceNameAuth(auth.ServiceNameProfileService),
		)
		return profileinfrauserhttp.NewUserService(httpClient), nil
	})
}

func profileServiceProvider(
	userService lazy.Loader[user.Service],
	permissionService lazy.Loader[auth.PermissionService],
	idkService lazy.Loader[idk.ServiceImpl],
	sqlContainer lazy.Loader[infra.SQLContainer],
	transaction lazy.Loader[persistence.Transaction],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[service.Profile] {
	return lazy.New(func() (service.Profile, error) {
		config := service.ProfileConfig{
			UpdateMaxAttempts: env.Must(env.ParseWithDefault("PROFILE_UPDATE_MAX_ATTEMPTS", service.DefaultUpdateMaxAttempts)),
		}

		return service.NewProfile(
			config,
			userService.MustLoad(),
			sqlContainer.MustLoad().ProfileRepo.MustLoad(),
			permissionService.MustLoad(),
			idkService.MustLoad(),
			transaction.MustLoad(),
			metrics.MustLoad().With(metric.Labels{"domain": domain.Name}),
			logger.MustLoad().WithField("domain", domain.Name),
		), nil
	})
}
