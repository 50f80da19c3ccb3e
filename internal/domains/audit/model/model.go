package model

import (
	"time"

	bookingModel "hotel/internal/domains/booking/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCreateBooking       Action = "CREATE_BOOKING"
	ActionCancelBooking       Action = "CANCEL_BOOKING"
	ActionConfirmBooking      Action = "CONFIRM_BOOKING"
	ActionAdminCancelBooking  Action = "ADMIN_CANCEL_BOOKING"
	ActionAdminConfirmBooking Action = "ADMIN_CONFIRM_BOOKING"
)

// Event records one committed booking transition. ActorID is the customer, or the admin for overrides.
type Event struct {
	ID         string    `json:"id"`
	Action     Action    `json:"action"`
	BookingID  string    `json:"booking_id"`
	ActorID    string    `json:"actor_id"`
	RoomID     string    `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	Guests     int       `json:"guests,omitempty"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewEvent(action Action, actorID string, booking bookingModel.Booking) Event {
	return Event{
		ID:         uuid.NewString(),
		Action:     action,
		BookingID:  booking.ID,
		ActorID:    actorID,
		RoomID:     booking.RoomID,
		RoomNumber: booking.RoomNumber,
		Guests:     booking.Guests,
		Email:      booking.Email,
		Status:     string(booking.Status),
		CheckIn:    timezone.FormatDate(booking.CheckIn),
		CheckOut:   timezone.FormatDate(booking.CheckOut),
		Timestamp:  timezone.Now(),
	}
}

// AdminAction maps an override direction to its event action.
func AdminAction(direction bookingModel.Direction) Action {
	if direction == bookingModel.DirectionConfirm {
		return ActionAdminConfirmBooking
	}

	return ActionAdminCancelBooking
}
