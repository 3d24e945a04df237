package worker

import (
	"context"
	"time"

	"github.com/klwxsrx/social-profile-service/pkg/log"
)

// PeriodicJob runs job every interval until ctx is done, logging failures instead of stopping.
func PeriodicJob(job ErrorJob, every time.Duration, logger log.Logger) ErrorJob {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := job(ctx); err != nil {
					logger.WithError(err).Error(ctx, "periodic job completed with error")
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
