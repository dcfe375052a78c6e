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

type group struct {
	ctx       context.Context
	ctxCancel context.CancelFunc

	errChan   chan error
	errResult error
	pool      Pool
	wg        *sync.WaitGroup

	onceCloser *sync.Once
}

// NewFailSafeGroup runs every job to completion even when some of them fail.
func NewFailSafeGroup(ctx context.Context) Group {
	ctx, ctxCancel := context.WithCancel(ctx)
	return &group{
		ctx:        ctx,
		ctxCancel:  ctxCancel,
		errChan:    make(chan error, 1),
		errResult:  nil,
		pool:       NewPool(MaxWorkersCountUnlimited),
		wg:         &sync.WaitGroup{},
		onceCloser: &sync.Once{},
	}
}

func (g *group) Do(job ErrorJob) {
	handleErr := func(err error) {
		if err == nil {
			return
		}

		select {
		case g.errChan <- err:
		default:
		}
	}

	g.wg.Add(1)
	g.pool.Do(func() {
		defer g.wg.Done()
		handleErr(job(g.ctx))
	})
}

// Wait returns the first error reported by a job.
func (g *group) Wait() error {
	g.wg.Wait()
	g.onceCloser.Do(func() {
		g.ctxCancel()

		select {
		case g.errResult = <-g.errChan:
		default:
		}
	})

	return g.errResult
}
