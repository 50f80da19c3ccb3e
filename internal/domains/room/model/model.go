package model

import "hotel/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomType   = "room_type"
	FieldPrice      = "price"
	FieldStatus     = "status"
)

type Type string

const (
	TypeStandard  Type = "Standard"
	TypeDeluxe    Type = "Deluxe"
	TypeSuite     Type = "Suite"
	TypeFamily    Type = "Family"
	TypeHoneymoon Type = "Honeymoon"
)

var Types = []Type{TypeStandard, TypeDeluxe, TypeSuite, TypeFamily, TypeHoneymoon}

func (t Type) IsValid() bool {
	switch t {
	case TypeStandard, TypeDeluxe, TypeSuite, TypeFamily, TypeHoneymoon:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusReserved    Status = "reserved"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
	StatusClosed      Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusOccupied, StatusMaintenance, StatusClosed:
		return true
	default:
		return false
	}
}

// Bookable reports whether a new stay may be placed on the room. Reserved rooms
// stay bookable so a later, non-overlapping stay can follow the current one; the
// date-overlap check on active bookings is what refuses a clash, not the status.
func (s Status) Bookable() bool {
	return s == StatusAvailable || s == StatusReserved
}

type Room struct {
	ID       string  `db:"id"`
	Number   string  `db:"room_number"`
	Type     Type    `db:"room_type"`
	Price    float64 `db:"price"`
	Status   Status  `db:"status"`
	model.Metadata
}
