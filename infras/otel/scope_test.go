package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"hotel/infras/otel"
	"hotel/shared/failure"
)

func recordSpan(t *testing.T, fn func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "span")
	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func attributeValue(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestScope_TraceError(t *testing.T) {
	t.Run("server error marks span failed", func(t *testing.T) {
		span := recordSpan(t, func(scope otel.Scope) {
			scope.TraceIfError(errors.New("connection reset"))
		})

		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, "connection reset", span.Status().Description)
		assert.Len(t, span.Events(), 1)
	})

	t.Run("client failure keeps status unset", func(t *testing.T) {
		span := recordSpan(t, func(scope otel.Scope) {
			scope.TraceIfError(failure.Conflict("room already booked"))
		})

		assert.Equal(t, codes.Unset, span.Status().Code)

		code, ok := attributeValue(span, "failure.code")
		require.True(t, ok)
		assert.Equal(t, int64(409), code.AsInt64())
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		span := recordSpan(t, func(scope otel.Scope) {
			scope.TraceIfError(nil)
		})

		assert.Equal(t, codes.Unset, span.Status().Code)
		assert.Empty(t, span.Events())
	})
}

func TestScope_SetAttributes(t *testing.T) {
	checkIn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	span := recordSpan(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"room.id":   int64(42),
			"guests":    2,
			"price":     120.5,
			"paid":      true,
			"check_in":  checkIn,
			"amenities": []string{"wifi", "pool"},
		})
	})

	roomID, _ := attributeValue(span, "room.id")
	assert.Equal(t, int64(42), roomID.AsInt64())

	guests, _ := attributeValue(span, "guests")
	assert.Equal(t, int64(2), guests.AsInt64())

	price, _ := attributeValue(span, "price")
	assert.InDelta(t, 120.5, price.AsFloat64(), 0.0001)

	paid, _ := attributeValue(span, "paid")
	assert.True(t, paid.AsBool())

	date, _ := attributeValue(span, "check_in")
	assert.Equal(t, "2026-03-01T00:00:00Z", date.AsString())

	amenities, _ := attributeValue(span, "amenities")
	assert.Equal(t, []string{"wifi", "pool"}, amenities.AsStringSlice())
}
