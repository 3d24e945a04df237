package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/social-profile-service/pkg/log"
	"github.com/klwxsrx/social-profile-service/pkg/worker"
)

func TestFailFastGroup_CancelsOnError(t *testing.T) {
	t.Parallel()
	expectedErr := errors.New("failed")

	group := worker.NewFailFastGroup(context.Background())
	group.Do(func(context.Context) error {
		return expectedErr
	})
	group.Do(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	assert.ErrorIs(t, group.Wait(), expectedErr)
}

func TestRunHub_StopsWhenProcessCompletes(t *testing.T) {
	t.Parallel()

	err := worker.RunHub(context.Background(), log.NewStub(),
		func(context.Context) error { return nil },
		func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	)
	assert.NoError(t, err)
}

func TestRunHub_ReturnsProcessFailure(t *testing.T) {
	t.Parallel()
	expectedErr := errors.New("listener failed")

	err := worker.RunHub(context.Background(), log.NewStub(),
		func(context.Context) error { return expectedErr },
		func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	)
	assert.ErrorIs(t, err, expectedErr)
}

func TestRunHub_StopsOnContextCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	result := make(chan error, 1)
	go func() {
		result <- worker.RunHub(ctx, log.NewStub(), func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		})
	}()

	<-started
	cancel()
	assert.NoError(t, <-result)
}

func TestRunHub_TreatsOwnCancellationAsFailure(t *testing.T) {
	t.Parallel()

	err := worker.RunHub(context.Background(), log.NewStub(), func(context.Context) error {
		inner, cancel := context.WithCancel(context.Background())
		cancel()
		return inner.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPeriodicJob_RunsUntilCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	var calls int32
	job := worker.PeriodicJob(func(context.Context) error {
		if atomic.AddInt32(&calls, 1) == 3 {
			cancel()
		}
		return errors.New("logged and ignored")
	}, time.Millisecond, log.NewStub())

	assert.ErrorIs(t, job(ctx), context.Canceled)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(3))
}
