package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	roomModel "hotel/internal/domains/room/model"
)

func TestCreateBookingRequest_Stay(t *testing.T) {
	req := dto.CreateBookingRequest{CheckIn: "2024-06-01", CheckOut: "2024-06-05T10:00:00Z"}

	checkIn, checkOut, err := req.Stay()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), checkIn)
	assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), checkOut)

	req.CheckOut = "next tuesday"
	_, _, err = req.Stay()
	assert.Error(t, err)
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{RoomNumber: "101", Guests: 2, Email: "guest@hotel.test"}
	room := roomModel.Room{ID: "room-1", Number: "101"}
	checkIn := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	booking := req.ToModel("customer-1", room, checkIn, checkOut)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "customer-1", booking.CustomerID)
	assert.Equal(t, "room-1", booking.RoomID)
	assert.Equal(t, "101", booking.RoomNumber)
	assert.Equal(t, model.StatusReserved, booking.Status)
	assert.Equal(t, 2, booking.Guests)
	assert.Equal(t, "customer-1", booking.CreatedBy)
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:         "b1",
		RoomNumber: "101",
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		Status:     model.StatusConfirmed,
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "2024-06-01", res.CheckIn)
	assert.Equal(t, "2024-06-05", res.CheckOut)
	assert.Equal(t, "confirmed", res.Status)

	var list dto.GetBookingsResponse
	list.FromModels([]model.Booking{booking}, 1, 10)

	assert.Equal(t, 1, list.TotalPage)
	assert.Len(t, list.Bookings, 1)
}
