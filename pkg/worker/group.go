package worker

import (
	"context"
	"sync"
)

type ErrorJob func(context.Context) error

type Group interface {
	Do(ErrorJob)
	Wait() error
}

type failFastGroup struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	errOnce sync.Once
	err     error
}

// NewFailFastGroup cancels the context of the remaining jobs once any job returns an error.
// Wait returns the first error.
func NewFailFastGroup(ctx context.Context) Group {
	ctx, cancel := context.WithCancel(ctx)
	return &failFastGroup{
		ctx:    ctx,
		cancel: cancel,
	}
}

func (g *failFastGroup) Do(job ErrorJob) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		err := job(g.ctx)
		if err == nil {
			return
		}

		g.errOnce.Do(func() {
			g.err = err
			g.cancel()
		})
	}()
}

func (g *failFastGroup) Wait() error {
	g.wg.Wait()
	g.cancel()
	return g.err
}
