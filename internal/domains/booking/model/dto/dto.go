package dto

import (
	"time"

	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

// CreateBookingRequest names the room either by id or by room number.
type CreateBookingRequest struct {
	RoomID     string `json:"room_id"     validate:"required_without=RoomNumber,omitempty,uuid"`
	RoomNumber string `json:"room_number" validate:"required_without=RoomID,omitempty,max=32"`
	CheckIn    string `json:"check_in"    validate:"required,date"`
	CheckOut   string `json:"check_out"   validate:"required,date"`
	Guests     int    `json:"guests"      validate:"required,gte=1"`
	Email      string `json:"email"       validate:"required,email,max=255"`
}

// Stay returns the requested [check-in, check-out) dates.
func (c *CreateBookingRequest) Stay() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.ParseDate(c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.ParseDate(c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToModel(customerID string, room roomModel.Room, checkIn, checkOut time.Time) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		RoomID:     room.ID,
		RoomNumber: room.Number,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     c.Guests,
		Email:      c.Email,
		Status:     model.StatusReserved,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}
}

type BookingResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	RoomID     string `json:"room_id"`
	RoomNumber string `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     int    `json:"guests"`
	Email      string `json:"email"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.CheckIn = timezone.FormatDate(model.CheckIn)
	r.CheckOut = timezone.FormatDate(model.CheckOut)
	r.Guests = model.Guests
	r.Email = model.Email
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
