package main

import (
	"context"

	"github.com/klwxsrx/social-profile-service/internal/favorite"
	"github.com/klwxsrx/social-profile-service/internal/pkg/cmd"
	"github.com/klwxsrx/social-profile-service/internal/profile"
	pkgcmd "github.com/klwxsrx/social-profile-service/pkg/cmd"
	"github.com/klwxsrx/social-profile-service/pkg/worker"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	profileContainer := profile.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
		infra.Transaction,
		infra.HTTPClientFactory,
		infra.IdempotencyKeys,
		infra.Clock,
		infra.Metrics,
		infra.Logger,
	)
	favoriteContainer := favorite.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
		infra.Transaction,
		infra.HTTPClientFactory,
		infra.IdempotencyKeys,
		infra.EventDispatcher,
		infra.Clock,
	)

	httpServer := infra.HTTPServer.MustLoad()
	profileContainer.MustRegisterHTTPHandlers(httpServer)
	favoriteContainer.MustRegisterHTTPHandlers(httpServer)

	worker.MustRunHub(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
