package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/nats"
	"hotel/infras/rabbitmq"
	"hotel/infras/s3"
	"hotel/internal/domains/audit/model"
	"hotel/shared/constant"
	"hotel/shared/logger"
	"hotel/shared/timezone"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	SinkLog      = "log"
	SinkKafka    = "kafka"
	SinkRabbitMQ = "rabbitmq"
	SinkNATS     = "nats"
	SinkS3       = "s3"
)

type LogSink struct {
	logger zerolog.Logger
}

func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string { return SinkLog }

func (s *LogSink) Write(_ context.Context, event model.Event) error {
	s.logger.Info().
		Str("id", event.ID).
		Str("action", string(event.Action)).
		Str("bookingId", event.BookingID).
		Str("userId", event.ActorID).
		Str("roomId", event.RoomID).
		Str("roomNumber", event.RoomNumber).
		Int("guests", event.Guests).
		Str("email", event.Email).
		Str("status", event.Status).
		Str("checkIn", event.CheckIn).
		Str("checkOut", event.CheckOut).
		Time("occurredAt", event.Timestamp).
		Send()

	return nil
}

type KafkaSink struct {
	client kafka.Client
	topic  string
}

func NewKafkaSink(client kafka.Client, topic string) *KafkaSink {
	return &KafkaSink{client: client, topic: topic}
}

func (s *KafkaSink) Name() string { return SinkKafka }

// Write keys by booking so the transitions of one booking stay ordered.
func (s *KafkaSink) Write(ctx context.Context, event model.Event) error {
	return s.client.SendMessages(ctx, s.topic, kafka.Message{Key: event.BookingID, Value: event}) //nolint:wrapcheck
}

type RabbitMQSink struct {
	publisher rabbitmq.Publisher
	queue     string
}

func NewRabbitMQSink(publisher rabbitmq.Publisher, queue string) *RabbitMQSink {
	return &RabbitMQSink{publisher: publisher, queue: queue}
}

func (s *RabbitMQSink) Name() string { return SinkRabbitMQ }

func (s *RabbitMQSink) Write(ctx context.Context, event model.Event) error {
	return s.publisher.Publish(ctx, s.queue, event) //nolint:wrapcheck
}

type NATSSink struct {
	broker  nats.Broker
	subject string
}

func NewNATSSink(broker nats.Broker, subject string) *NATSSink {
	return &NATSSink{broker: broker, subject: subject}
}

func (s *NATSSink) Name() string { return SinkNATS }

// Write publishes on <subject>.<action>, e.g. booking.events.CREATE_BOOKING.
func (s *NATSSink) Write(_ context.Context, event model.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	return s.broker.Publish(s.subject+"."+string(event.Action), data) //nolint:wrapcheck
}

type S3Sink struct {
	storage s3.S3
	prefix  string
}

func NewS3Sink(storage s3.S3, prefix string) *S3Sink {
	return &S3Sink{storage: storage, prefix: prefix}
}

func (s *S3Sink) Name() string { return SinkS3 }

// Write archives one object per event under <prefix>/<yyyy-mm-dd>/<event id>.json.
func (s *S3Sink) Write(ctx context.Context, event model.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	directory := path.Join(s.prefix, timezone.Format(event.Timestamp, constant.DateOnlyFormat))

	_, err = s.storage.UploadFileBytes(ctx, constant.Empty, directory, event.ID+".json", constant.ContentTypeJSON, data)
	if err != nil {
		return fmt.Errorf("failed to archive booking event: %w", err)
	}

	return nil
}

// NewSinks builds the sinks named in EVENT_SINKS. The returned cleanup closes the audit log file.
func NewSinks(cfg *config.Config, kafkaClient kafka.Client, publisher rabbitmq.Publisher, broker nats.Broker, storage s3.S3) ([]Sink, func(), error) {
	sinks := []Sink{}
	closers := []io.Closer{}

	cleanup := func() {
		for _, closer := range closers {
			if err := closer.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close booking event sink")
			}
		}
	}

	for _, name := range cfg.Event.Sinks {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case SinkLog:
			fileLogger, closer, err := logger.NewFileLogger(cfg.Audit.LogFile)
			if err != nil {
				cleanup()

				return nil, nil, fmt.Errorf("failed to open audit log: %w", err)
			}

			closers = append(closers, closer)
			sinks = append(sinks, NewLogSink(fileLogger))
		case SinkKafka:
			sinks = append(sinks, NewKafkaSink(kafkaClient, cfg.Event.Topic))
		case SinkRabbitMQ:
			sinks = append(sinks, NewRabbitMQSink(publisher, cfg.RabbitMQ.Queue))
		case SinkNATS:
			sinks = append(sinks, NewNATSSink(broker, cfg.NATS.Subject))
		case SinkS3:
			sinks = append(sinks, NewS3Sink(storage, cfg.External.S3.ArchivePrefix))
		case constant.Empty:
		default:
			log.Warn().Str("sink", name).Msg("Unknown booking event sink ignored")
		}
	}

	return sinks, cleanup, nil
}
