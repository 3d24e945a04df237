package cmd

import (
	"context"
	"os/signal"
	"syscall"
)

// TermSignalAwaiter returns nil once SIGTERM or SIGINT is received, so the hub running it stops gracefully.
func TermSignalAwaiter(ctx context.Context) error {
	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	<-signalCtx.Done()
	return ctx.Err()
}
