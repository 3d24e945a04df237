package main

import (
	"context"

	"github.com/klwxsrx/social-profile-service/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/social-profile-service/pkg/cmd"
	"github.com/klwxsrx/social-profile-service/pkg/worker"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	worker.MustRunHub(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		infra.MessageOutbox.MustLoad().Worker,
	)
}
