package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotel/config"
	"hotel/shared/constant"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

type Publisher interface {
	Publish(ctx context.Context, queue string, payload any) (err error)
}

type publisherImpl struct {
	url   string
	queue string
}

// New returns a publisher that dials per publish, so a broker outage never blocks startup.
func New(config *config.Config) Publisher {
	log.Info().Str("queue", config.RabbitMQ.Queue).Msg("RabbitMQ publisher initialized")

	return &publisherImpl{
		url:   config.RabbitMQ.URL,
		queue: config.RabbitMQ.Queue,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, queue string, payload any) (err error) {
	if queue == constant.Empty {
		queue = p.queue
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal rabbitmq payload: %w", err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Error().Err(err).Msg("Failed to dial RabbitMQ")

		return fmt.Errorf("failed to dial rabbitmq: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open RabbitMQ channel")

		return fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to declare RabbitMQ queue")

		return fmt.Errorf("failed to declare rabbitmq queue: %w", err)
	}

	err = ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to publish to RabbitMQ")

		return fmt.Errorf("failed to publish to rabbitmq: %w", err)
	}

	return nil
}
