package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/infras/otel"
	"hotel/internal/domains/availability/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Resolver answers whether a room is free for a stay.
type Resolver interface {
	HasConflict(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error)
	BookedRoomIDs(ctx context.Context, from, to time.Time) ([]string, error)
}

type resolverImpl struct {
	bookings bookingRepo.Booking
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, otel otel.Otel) Resolver {
	return &resolverImpl{
		bookings: bookings,
		otel:     otel,
	}
}

// HasConflict must run inside the transaction that will write the booking.
func (r *resolverImpl) HasConflict(ctx context.Context, sqltx *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (conflict bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.HasConflict")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"room_id":   roomID,
		"check_in":  checkIn.Format(constant.DateOnlyFormat),
		"check_out": checkOut.Format(constant.DateOnlyFormat),
	})

	conflict, err = r.bookings.ExistTx(ctx, sqltx, model.RoomConflictFilter(roomID, checkIn, checkOut, excludeBookingID))
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to check booking conflict")

		return false, fmt.Errorf("failed to check booking conflict: %w", err)
	}

	return conflict, nil
}

func (r *resolverImpl) BookedRoomIDs(ctx context.Context, from, to time.Time) (ids []string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.BookedRoomIDs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ids, err = r.bookings.BookedRoomIDs(ctx, model.ActiveOverlapFilter(from, to))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked rooms")

		return nil, fmt.Errorf("failed to get booked rooms: %w", err)
	}

	return ids, nil
}
