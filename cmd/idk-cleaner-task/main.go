package main

import (
	"context"
	"time"

	"github.com/klwxsrx/social-profile-service/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/social-profile-service/pkg/cmd"
	"github.com/klwxsrx/social-profile-service/pkg/env"
	"github.com/klwxsrx/social-profile-service/pkg/worker"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	logger := infra.Logger.MustLoad()
	interval := env.Must(env.ParseWithDefault("IDK_CLEANER_INTERVAL", time.Hour))

	worker.MustRunHub(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		worker.PeriodicJob(infra.IdempotencyKeys.MustLoad().DeleteOutdated, interval, logger),
	)
}
