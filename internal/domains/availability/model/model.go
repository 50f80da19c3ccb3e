package model

import (
	"time"

	bookingModel "hotel/internal/domains/booking/model"
	gDto "hotel/shared/dto"
)

const (
	argRangeStart = "range_start"
	argRangeEnd   = "range_end"
	argStatuses   = "active_status"
	argExcludeID  = "exclude_id"
)

// Overlaps applies the half-open test to [aIn, aOut) and [bIn, bOut).
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// ValidRange reports whether checkIn strictly precedes checkOut.
func ValidRange(checkIn, checkOut time.Time) bool {
	return checkIn.Before(checkOut)
}

// ActiveOverlapFilter matches active bookings whose stay overlaps [checkIn, checkOut).
func ActiveOverlapFilter(checkIn, checkOut time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Table:    bookingModel.TableName,
				Operator: gDto.FilterOperatorIn,
				Value:    bookingModel.ActiveStatusValues(),
				ArgName:  argStatuses,
			},
			gDto.Filter{
				Field:    bookingModel.FieldCheckIn,
				Table:    bookingModel.TableName,
				Operator: gDto.FilterOperatorLess,
				Value:    checkOut,
				ArgName:  argRangeEnd,
			},
			gDto.Filter{
				Field:    bookingModel.FieldCheckOut,
				Table:    bookingModel.TableName,
				Operator: gDto.FilterOperatorGreater,
				Value:    checkIn,
				ArgName:  argRangeStart,
			},
		},
	}
}

// RoomConflictFilter narrows ActiveOverlapFilter to one room, optionally ignoring one booking.
func RoomConflictFilter(roomID string, checkIn, checkOut time.Time, excludeBookingID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    bookingModel.FieldRoomID,
			Table:    bookingModel.TableName,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
		},
	}

	if excludeBookingID != "" {
		filters = append(filters, gDto.Filter{
			Field:    bookingModel.FieldID,
			Table:    bookingModel.TableName,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeBookingID,
			ArgName:  argExcludeID,
		})
	}

	return ActiveOverlapFilter(checkIn, checkOut).And(filters...)
}
