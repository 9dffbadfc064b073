// Package queue declares the RabbitMQ topology carrying expiry
// notification jobs from the scheduler and the immediate-send path to
// the dispatch workers.
package queue

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

const (
	ExchangeName   = "license-notify-exchange"
	MainQueueName  = "license-notify-queue"
	RetryQueueName = "license-notify-retry"
	DLQName        = "license-notify-dlq"
	RoutingKey     = "license-notify"
)

// NotifyJob asks a worker to dispatch reminders for one license.
// MarkSixMonthSent tells the worker to claim the six-month one-shot
// before sending.
type NotifyJob struct {
	LicenseID        uuid.UUID `json:"license_id"`
	Reason           string    `json:"reason"`
	MarkSixMonthSent bool      `json:"mark_six_month_sent"`
}

// NotifyQueue wraps the publisher and consumer bound to the notify-job
// topology.
type NotifyQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewNotifyQueue declares the exchange, main queue, retry queue and DLQ
// and returns a queue handle bound to them.
func NewNotifyQueue(ch *rabbitmq.Channel) (*NotifyQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": MainQueueName,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(RetryQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &NotifyQueue{Publisher: pub, Consumer: cons}, nil
}

// Publish enqueues one notify job.
func (q *NotifyQueue) Publish(job NotifyJob, strategy retry.Strategy) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}

// Consume decodes incoming jobs onto out until the consumer stops.
func (q *NotifyQueue) Consume(out chan<- NotifyJob, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var job NotifyJob
			if err := json.Unmarshal(m, &job); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal notify job")
				continue
			}

			out <- job
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
