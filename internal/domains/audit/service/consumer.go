package service

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/audit/model"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer replays booking events from the Kafka topic into a sink.
type Consumer struct {
	client kafka.Client
	sink   Sink
	cfg    *config.Config
	otel   otel.Otel
}

func NewConsumer(client kafka.Client, sink Sink, cfg *config.Config, otel otel.Otel) *Consumer {
	return &Consumer{
		client: client,
		sink:   sink,
		cfg:    cfg,
		otel:   otel,
	}
}

// Run blocks until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	log.Info().
		Str("topic", c.cfg.Event.Topic).
		Str("group", c.cfg.Kafka.ConsumerGroup).
		Str("sink", c.sink.Name()).
		Msg("Booking event consumer started")

	if err := c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Event.Topic, c.Handle); err != nil {
		return fmt.Errorf("failed to consume booking events: %w", err)
	}

	return nil
}

// Handle decodes one message. Undecodable messages are logged and acknowledged.
func (c *Consumer) Handle(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Consume")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[model.Event](message)
	if err != nil {
		log.Warn().Err(err).Int64("offset", message.Offset).Msg("skipping undecodable booking event")

		return nil
	}

	scope.SetAttribute("event.action", string(event.Action))

	if err = c.sink.Write(ctx, event); err != nil {
		return fmt.Errorf("failed to write booking event %s: %w", event.ID, err)
	}

	return nil
}
