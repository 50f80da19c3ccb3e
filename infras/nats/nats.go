package nats

//go:generate go run go.uber.org/mock/mockgen -source=./nats.go -destination=./mocks/nats_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"hotel/config"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

var ErrNotConnected = errors.New("nats connection is not available")

type Broker interface {
	Publish(subject string, data []byte) (err error)
	Close()
}

type brokerImpl struct {
	url     string
	timeout time.Duration

	mu   sync.Mutex
	conn *nats.Conn
}

func New(config *config.Config) Broker {
	return &brokerImpl{
		url:     config.NATS.URL,
		timeout: time.Duration(config.Event.TimeoutSeconds) * time.Second,
	}
}

// connection dials lazily and redials after the previous connection closed.
func (b *brokerImpl) connection() (*nats.Conn, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn != nil && !b.conn.IsClosed() {
		return b.conn, nil
	}

	conn, err := nats.Connect(b.url,
		nats.Name("hotel-booking"),
		nats.Timeout(b.timeout),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("NATS disconnected")
			}
		}),
	)
	if err != nil {
		log.Error().Err(err).Str("url", b.url).Msg("Failed to connect to NATS")

		return nil, fmt.Errorf("%w: %w", ErrNotConnected, err)
	}

	log.Info().Str("url", b.url).Msg("Connected to NATS")

	b.conn = conn

	return conn, nil
}

func (b *brokerImpl) Publish(subject string, data []byte) (err error) {
	conn, err := b.connection()
	if err != nil {
		return err
	}

	err = conn.Publish(subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish to nats: %w", err)
	}

	return nil
}

func (b *brokerImpl) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn != nil {
		b.conn.Close()
		b.conn = nil
	}
}
