package service

//go:generate go run go.uber.org/mock/mockgen -source=./emitter.go -destination=../mocks/emitter_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/audit/model"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

const defaultDeliveryTimeout = 5 * time.Second

// Sink ships events to one destination.
type Sink interface {
	Name() string
	Write(ctx context.Context, event model.Event) error
}

// Emitter publishes booking events without blocking or failing the caller.
type Emitter interface {
	Emit(ctx context.Context, event model.Event)
	Close(ctx context.Context) error
}

type emitterImpl struct {
	sinks   []Sink
	timeout time.Duration
	otel    otel.Otel
	wg      sync.WaitGroup
}

func New(sinks []Sink, cfg *config.Config, otel otel.Otel) Emitter {
	timeout := time.Duration(cfg.Event.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultDeliveryTimeout
	}

	names := make([]string, len(sinks))
	for i, sink := range sinks {
		names[i] = sink.Name()
	}

	log.Info().Strs("sinks", names).Msg("Booking event emitter initialized")

	return &emitterImpl{
		sinks:   sinks,
		timeout: timeout,
		otel:    otel,
	}
}

// Emit returns immediately; each sink gets its own bounded delivery detached from ctx.
func (e *emitterImpl) Emit(ctx context.Context, event model.Event) {
	detached := context.WithoutCancel(ctx)

	for _, sink := range e.sinks {
		e.wg.Add(1)

		go func(sink Sink) {
			defer e.wg.Done()

			e.deliver(detached, sink, event)
		}(sink)
	}
}

func (e *emitterImpl) deliver(ctx context.Context, sink Sink, event model.Event) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+sink.Name())
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"action":     string(event.Action),
		"booking_id": event.BookingID,
	})

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("sink", sink.Name()).Msg("booking event sink panicked")
		}
	}()

	if err := sink.Write(ctx, event); err != nil {
		scope.TraceError(err)

		log.Error().
			Err(err).
			Str("sink", sink.Name()).
			Str("action", string(event.Action)).
			Str("booking_id", event.BookingID).
			Msg("failed to deliver booking event")
	}
}

// Close waits for in-flight deliveries until ctx is done.
func (e *emitterImpl) Close(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("pending booking events dropped: %w", ctx.Err())
	}
}
