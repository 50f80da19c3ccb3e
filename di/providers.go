package di

import (
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/nats"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	auditService "hotel/internal/domains/audit/service"
	"hotel/shared/logger"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func provideDatabase(cfg *config.Config) (*postgres.Connection, func(), error) {
	db, err := postgres.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return db, db.Close, nil
}

func provideRedis(cfg *config.Config) (*goRedis.Client, func(), error) {
	client, err := redis.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}, nil
}

func provideKafka(cfg *config.Config) (kafka.Client, func()) {
	client := kafka.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}
	}
}

func provideNATS(cfg *config.Config) (nats.Broker, func()) {
	broker := nats.New(cfg)

	return broker, broker.Close
}

// provideAuditLogSink backs the auditor process with the file log sink regardless of EVENT_SINKS.
func provideAuditLogSink(cfg *config.Config) (auditService.Sink, func(), error) {
	fileLogger, closer, err := logger.NewFileLogger(cfg.Audit.LogFile)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return auditService.NewLogSink(fileLogger), func() {
		if err := closer.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close audit log")
		}
	}, nil
}
