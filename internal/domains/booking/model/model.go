package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldCustomerID = "customer_id"
	FieldRoomID     = "room_id"
	FieldRoomNumber = "room_number"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldGuests     = "guests"
	FieldEmail      = "email"
	FieldStatus     = "status"
)

// Booking covers the stay [CheckIn, CheckOut). RoomNumber is captured when the booking is made.
type Booking struct {
	ID         string    `db:"id"`
	CustomerID string    `db:"customer_id"`
	RoomID     string    `db:"room_id"`
	RoomNumber string    `db:"room_number"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	Guests     int       `db:"guests"`
	Email      string    `db:"email"`
	Status     Status    `db:"status"`
	model.Metadata
}

func (b Booking) OwnedBy(customerID string) bool {
	return customerID != "" && b.CustomerID == customerID
}
