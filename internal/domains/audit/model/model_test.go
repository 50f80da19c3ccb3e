package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel/internal/domains/audit/model"
	bookingModel "hotel/internal/domains/booking/model"
)

func TestNewEvent(t *testing.T) {
	booking := bookingModel.Booking{
		ID:         "b1",
		CustomerID: "c1",
		RoomID:     "r1",
		RoomNumber: "101",
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		Email:      "guest@hotel.test",
		Status:     bookingModel.StatusReserved,
	}

	event := model.NewEvent(model.ActionCreateBooking, "c1", booking)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, model.ActionCreateBooking, event.Action)
	assert.Equal(t, "b1", event.BookingID)
	assert.Equal(t, "c1", event.ActorID)
	assert.Equal(t, "r1", event.RoomID)
	assert.Equal(t, "101", event.RoomNumber)
	assert.Equal(t, 2, event.Guests)
	assert.Equal(t, "reserved", event.Status)
	assert.Equal(t, "2024-06-01", event.CheckIn)
	assert.Equal(t, "2024-06-05", event.CheckOut)
	assert.False(t, event.Timestamp.IsZero())
}

func TestAdminAction(t *testing.T) {
	assert.Equal(t, model.ActionAdminConfirmBooking, model.AdminAction(bookingModel.DirectionConfirm))
	assert.Equal(t, model.ActionAdminCancelBooking, model.AdminAction(bookingModel.DirectionCancel))
}
