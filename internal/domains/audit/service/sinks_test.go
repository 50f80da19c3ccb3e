package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	natsMocks "hotel/infras/nats/mocks"
	rabbitMocks "hotel/infras/rabbitmq/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	"hotel/internal/domains/audit/model"
	"hotel/internal/domains/audit/service"
)

func sampleEvent() model.Event {
	return model.Event{
		ID:         "e1",
		Action:     model.ActionCancelBooking,
		BookingID:  "b1",
		ActorID:    "c1",
		RoomID:     "r1",
		RoomNumber: "101",
		Email:      "guest@hotel.test",
		Status:     "cancelled",
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-05",
		Timestamp:  time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestLogSink_Write(t *testing.T) {
	var buf bytes.Buffer

	sink := service.NewLogSink(zerolog.New(&buf))
	require.NoError(t, sink.Write(context.Background(), sampleEvent()))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "CANCEL_BOOKING", line["action"])
	assert.Equal(t, "b1", line["bookingId"])
	assert.Equal(t, "c1", line["userId"])
	assert.Equal(t, "101", line["roomNumber"])
	assert.Equal(t, "cancelled", line["status"])
	assert.Equal(t, "log", sink.Name())
}

func TestKafkaSink_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	event := sampleEvent()
	client.EXPECT().SendMessages(gomock.Any(), "booking.events", kafka.Message{Key: "b1", Value: event}).Return(nil)

	sink := service.NewKafkaSink(client, "booking.events")
	assert.NoError(t, sink.Write(context.Background(), event))
}

func TestRabbitMQSink_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := rabbitMocks.NewMockPublisher(ctrl)

	event := sampleEvent()
	publisher.EXPECT().Publish(gomock.Any(), "booking.events", event).Return(nil)

	sink := service.NewRabbitMQSink(publisher, "booking.events")
	assert.NoError(t, sink.Write(context.Background(), event))
}

func TestNATSSink_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	broker := natsMocks.NewMockBroker(ctrl)

	broker.EXPECT().
		Publish("booking.events.CANCEL_BOOKING", gomock.Any()).
		DoAndReturn(func(_ string, data []byte) error {
			var event model.Event
			require.NoError(t, json.Unmarshal(data, &event))
			assert.Equal(t, "b1", event.BookingID)

			return nil
		})

	sink := service.NewNATSSink(broker, "booking.events")
	assert.NoError(t, sink.Write(context.Background(), sampleEvent()))
}

func TestS3Sink_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := s3Mocks.NewMockS3(ctrl)

	storage.EXPECT().
		UploadFileBytes(gomock.Any(), "", gomock.Any(), "e1.json", "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, directory, _, _ string, _ []byte) (string, error) {
			assert.Contains(t, directory, "booking-events/2024-05-")

			return "https://cdn/booking-events/e1.json", nil
		})

	sink := service.NewS3Sink(storage, "booking-events")
	assert.NoError(t, sink.Write(context.Background(), sampleEvent()))
}

func TestNewSinks(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Event.Sinks = []string{"log", " Kafka ", "nats", "rabbitmq", "s3", "carrier-pigeon"}
	cfg.Audit.LogFile = filepath.Join(t.TempDir(), "logs", "booking.log")

	sinks, cleanup, err := service.NewSinks(
		cfg,
		kafkaMocks.NewMockClient(ctrl),
		rabbitMocks.NewMockPublisher(ctrl),
		natsMocks.NewMockBroker(ctrl),
		s3Mocks.NewMockS3(ctrl),
	)
	require.NoError(t, err)

	names := []string{}
	for _, sink := range sinks {
		names = append(names, sink.Name())
	}

	assert.Equal(t, []string{"log", "kafka", "nats", "rabbitmq", "s3"}, names)

	require.NoError(t, sinks[0].Write(context.Background(), sampleEvent()))
	cleanup()

	content, err := os.ReadFile(cfg.Audit.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "CANCEL_BOOKING")
}
