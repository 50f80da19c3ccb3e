package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel/internal/domains/availability/model"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name       string
		aIn, aOut  time.Time
		bIn, bOut  time.Time
		wantResult bool
	}{
		{name: "same range", aIn: day(1), aOut: day(5), bIn: day(1), bOut: day(5), wantResult: true},
		{name: "partial overlap", aIn: day(1), aOut: day(5), bIn: day(3), bOut: day(6), wantResult: true},
		{name: "contained", aIn: day(1), aOut: day(10), bIn: day(3), bOut: day(4), wantResult: true},
		{name: "checkout equals checkin", aIn: day(1), aOut: day(5), bIn: day(5), bOut: day(8), wantResult: false},
		{name: "checkin equals checkout", aIn: day(5), aOut: day(8), bIn: day(1), bOut: day(5), wantResult: false},
		{name: "disjoint", aIn: day(1), aOut: day(2), bIn: day(7), bOut: day(9), wantResult: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantResult, model.Overlaps(tt.aIn, tt.aOut, tt.bIn, tt.bOut))
			assert.Equal(t, tt.wantResult, model.Overlaps(tt.bIn, tt.bOut, tt.aIn, tt.aOut))
		})
	}
}

func TestValidRange(t *testing.T) {
	assert.True(t, model.ValidRange(day(1), day(2)))
	assert.False(t, model.ValidRange(day(2), day(2)))
	assert.False(t, model.ValidRange(day(3), day(2)))
}

func TestRoomConflictFilter(t *testing.T) {
	filter := model.RoomConflictFilter("room-1", day(1), day(5), "booking-1")

	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "room_bookings.status IN (:active_status_0, :active_status_1)")
	assert.Contains(t, where, "room_bookings.check_in < :range_end")
	assert.Contains(t, where, "room_bookings.check_out > :range_start")
	assert.Contains(t, where, "room_bookings.room_id = :room_id")
	assert.Contains(t, where, "room_bookings.id != :exclude_id")
	assert.Equal(t, "reserved", args["active_status_0"])
	assert.Equal(t, "confirmed", args["active_status_1"])
	assert.Equal(t, day(5), args["range_end"])
	assert.Equal(t, day(1), args["range_start"])
	assert.Equal(t, "room-1", args["room_id"])
	assert.Equal(t, "booking-1", args["exclude_id"])

	unexcluded := model.RoomConflictFilter("room-1", day(1), day(5), "")
	where, args = unexcluded.GetWhereClause()
	assert.NotContains(t, where, "exclude_id")
	assert.NotContains(t, args, "exclude_id")
}
