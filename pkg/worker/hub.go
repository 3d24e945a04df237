package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/social-profile-service/pkg/log"
)

var errProcessCompleted = errors.New("process completed")

func MustRunHub(ctx context.Context, logger log.Logger, process ErrorJob, processes ...ErrorJob) {
	if err := RunHub(ctx, logger, process, processes...); err != nil {
		panic(fmt.Errorf("process completed with error: %w", err))
	}
}

// RunHub runs the processes until ctx is done or any of them returns.
// A process returning nil stops the rest without an error, a process failure is returned.
func RunHub(ctx context.Context, logger log.Logger, process ErrorJob, processes ...ErrorJob) error {
	group := NewFailFastGroup(ctx)
	for _, p := range append([]ErrorJob{process}, processes...) {
		group.Do(stopHubOnReturn(p, logger))
	}

	err := group.Wait()
	if errors.Is(err, errProcessCompleted) {
		return nil
	}
	return err
}

func stopHubOnReturn(process ErrorJob, logger log.Logger) ErrorJob {
	return func(ctx context.Context) error {
		err := process(ctx)
		switch {
		case err == nil:
			return errProcessCompleted
		case ctx.Err() != nil && errors.Is(err, context.Canceled):
			return nil
		default:
			logger.WithError(err).Error(ctx, "process completed with error")
			return err
		}
	}
}
