package baseworker

import (
	"context"
	"runtime/debug"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

// BaseImpl drives a named recurring task. Ticks never overlap: the loop itself
// is sequential and the inProgress guard additionally rejects a re-entrant
// run, so a slow tick is skipped rather than doubled.
type BaseImpl struct {
	WorkerName    string
	firstRunDelay time.Duration
	runInterval   time.Duration
	inProgress    atomic.Bool
	stop          context.CancelFunc
}

func NewInstance(WorkerName string, firstRunDelay, runInterval time.Duration) *BaseImpl {
	return &BaseImpl{
		WorkerName:    WorkerName,
		firstRunDelay: firstRunDelay,
		runInterval:   runInterval,
	}
}

func (i *BaseImpl) GetLogger() *log.Entry {
	logger := log.
		WithField("worker_name", i.WorkerName)
	return logger
}

// Start launches the worker loop in its own goroutine. The loop ends when ctx
// is cancelled or Stop is called.
func (i *BaseImpl) Start(ctx context.Context, jobFunc func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(ctx)
	i.stop = cancel
	go i.Run(ctx, jobFunc)
}

func (i *BaseImpl) Stop() {
	if i.stop != nil {
		i.stop()
	}
}

func (i *BaseImpl) Run(ctx context.Context, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			i.GetLogger().
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	period := i.firstRunDelay
	logger := i.GetLogger()
	for {
		select {
		// exit if the context is already finished
		case <-ctx.Done():
			logger.Info("task stopped")
			return
		case <-time.After(period):
			i.runOnce(ctx, logger, jobFunc)
		}
		period = i.runInterval
	}
}

func (i *BaseImpl) runOnce(ctx context.Context, logger *log.Entry, jobFunc func(ctx context.Context)) {
	if !i.inProgress.CompareAndSwap(false, true) {
		logger.Warn("previous run still in progress, skipping this one")
		return
	}
	defer i.inProgress.Store(false)
	logger.Info("task started")
	jobFunc(ctx)
	logger.Info("task finished")
}
