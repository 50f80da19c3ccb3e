package model

import "slices"

type Status string

const (
	StatusPending   Status = "pending"
	StatusReserved  Status = "reserved"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ActiveStatuses occupy the room and take part in overlap checks.
var ActiveStatuses = []Status{StatusReserved, StatusConfirmed}

var transitions = map[Status][]Status{
	StatusPending:   {StatusCancelled},
	StatusReserved:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusReserved, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	return slices.Contains(ActiveStatuses, s)
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// ActiveStatusValues is ActiveStatuses as plain strings for query arguments.
func ActiveStatusValues() []string {
	values := make([]string, len(ActiveStatuses))
	for i, status := range ActiveStatuses {
		values[i] = string(status)
	}

	return values
}

// Direction selects the forced transition of an admin override.
type Direction string

const (
	DirectionConfirm Direction = "confirm"
	DirectionCancel  Direction = "cancel"
)

func (d Direction) IsValid() bool {
	return d == DirectionConfirm || d == DirectionCancel
}

func (d Direction) Target() Status {
	if d == DirectionConfirm {
		return StatusConfirmed
	}

	return StatusCancelled
}
