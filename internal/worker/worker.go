// Package worker runs the pool of goroutines consuming notify jobs.
package worker

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/licensure/licensure/internal/rabbitmq/queue"
)

type notifyQueue interface {
	Consume(out chan<- queue.NotifyJob, strategy retry.Strategy) error
}

type jobHandler interface {
	HandleJob(ctx context.Context, job queue.NotifyJob)
}

// Notifier consumes notify jobs and hands them to the job handler.
type Notifier struct {
	queue   notifyQueue
	handler jobHandler
}

// NewNotifier creates a worker pool front-end over the queue.
func NewNotifier(q notifyQueue, h jobHandler) *Notifier {
	return &Notifier{queue: q, handler: h}
}

// Run consumes jobs with workerCount goroutines until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	jobChan := make(chan queue.NotifyJob)

	go func() {
		if err := n.queue.Consume(jobChan, strategy); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume notify jobs")
		}
	}()

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case job := <-jobChan:
					n.handler.HandleJob(ctx, job)
				}
			}
		}(i)
	}

	<-ctx.Done()
	zlog.Logger.Print("notify worker stopped")
}
