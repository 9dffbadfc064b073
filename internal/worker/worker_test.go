package worker

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/licensure/licensure/internal/mocks/worker"
	"github.com/licensure/licensure/internal/rabbitmq/queue"
)

func TestNotifier_Run_HandlesJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := mocks.NewMocknotifyQueue(ctrl)
	mockHandler := mocks.NewMockjobHandler(ctrl)

	n := NewNotifier(mockQueue, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	job := queue.NotifyJob{
		LicenseID: uuid.New(),
		Reason:    "SIX_MONTH",
	}

	mockQueue.EXPECT().Consume(gomock.Any(), strategy).DoAndReturn(
		func(out chan<- queue.NotifyJob, _ retry.Strategy) error {
			out <- job
			return nil
		},
	)

	mockHandler.EXPECT().HandleJob(gomock.Any(), job)

	go n.Run(ctx, strategy, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestNotifier_Run_FansOutAcrossWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := mocks.NewMocknotifyQueue(ctrl)
	mockHandler := mocks.NewMockjobHandler(ctrl)

	n := NewNotifier(mockQueue, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	first := queue.NotifyJob{LicenseID: uuid.New(), Reason: "DAILY_LAST_30"}
	second := queue.NotifyJob{LicenseID: uuid.New(), Reason: "MONTHLY"}

	mockQueue.EXPECT().Consume(gomock.Any(), strategy).DoAndReturn(
		func(out chan<- queue.NotifyJob, _ retry.Strategy) error {
			out <- first
			out <- second
			return nil
		},
	)

	mockHandler.EXPECT().HandleJob(gomock.Any(), first)
	mockHandler.EXPECT().HandleJob(gomock.Any(), second)

	go n.Run(ctx, strategy, 3)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestNotifier_Run_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := mocks.NewMocknotifyQueue(ctrl)
	mockHandler := mocks.NewMockjobHandler(ctrl)

	n := NewNotifier(mockQueue, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	done := make(chan struct{})

	mockQueue.EXPECT().Consume(gomock.Any(), strategy).DoAndReturn(
		func(out chan<- queue.NotifyJob, _ retry.Strategy) error {
			<-done
			return nil
		},
	)

	go func() {
		n.Run(ctx, strategy, 2)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notifier did not stop after cancel")
	}
}
