package service_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"hotel/infras/postgres"
	auditModel "hotel/internal/domains/audit/model"
	availabilityModel "hotel/internal/domains/availability/model"
	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	gDto "hotel/shared/dto"
)

var errInjected = errors.New("injected failure")

// memStore is a serialisable in-memory stand-in for the rooms and room_bookings tables.
// Transactions run one at a time and are rolled back to a snapshot on error.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	rooms    map[string]roomModel.Room
	bookings map[string]model.Booking

	failRoomUpdate bool
}

func newMemStore(rooms ...roomModel.Room) *memStore {
	s := &memStore{
		rooms:    map[string]roomModel.Room{},
		bookings: map[string]model.Booking{},
	}

	for _, room := range rooms {
		s.rooms[room.ID] = room
	}

	return s
}

func (s *memStore) room(id string) roomModel.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rooms[id]
}

func (s *memStore) booking(id string) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bookings[id]
}

func (s *memStore) activeBookings(roomID string) []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []model.Booking

	for _, booking := range s.bookings {
		if booking.RoomID == roomID && booking.Status.IsActive() {
			res = append(res, booking)
		}
	}

	return res
}

// WithTransaction implements postgres.Transactor.
func (s *memStore) WithTransaction(ctx context.Context, fn postgres.TxFunc) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	rooms := maps.Clone(s.rooms)
	bookings := maps.Clone(s.bookings)
	s.mu.Unlock()

	if err := fn(ctx, nil); err != nil {
		s.mu.Lock()
		s.rooms = rooms
		s.bookings = bookings
		s.mu.Unlock()

		return err
	}

	return nil
}

func filterValue(filter gDto.FilterGroup) (field, value string) {
	for _, f := range filter.Filters {
		if eq, ok := f.(gDto.Filter); ok {
			value, _ := eq.Value.(string)

			return eq.Field, value
		}
	}

	return "", ""
}

func applyFields[T any](target *T, fields map[string]any, set func(*T, string, any)) {
	for key, value := range fields {
		set(target, key, value)
	}
}

type memRooms struct{ s *memStore }

func (r memRooms) Insert(_ context.Context, room roomModel.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.rooms[room.ID] = room

	return nil
}

func (r memRooms) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (roomModel.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	field, value := filterValue(filter)

	for _, room := range r.s.rooms {
		if (field == roomModel.FieldID && room.ID == value) || (field == roomModel.FieldRoomNumber && room.Number == value) {
			return room, nil
		}
	}

	return roomModel.Room{}, nil
}

func (r memRooms) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]roomModel.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return slices.Collect(maps.Values(r.s.rooms)), nil
}

func (r memRooms) Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	room, err := r.Get(ctx, filter)

	return room.ID != "", err
}

func (r memRooms) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return len(r.s.rooms), nil
}

func (r memRooms) GetForUpdateTx(ctx context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, _ ...string) (roomModel.Room, error) {
	return r.Get(ctx, filter)
}

func (r memRooms) UpdateTx(_ context.Context, _ *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.failRoomUpdate {
		return errInjected
	}

	_, id := filterValue(filter)

	room, ok := r.s.rooms[id]
	if !ok {
		return nil
	}

	applyFields(&room, fields, func(room *roomModel.Room, key string, value any) {
		if key == roomModel.FieldStatus {
			room.Status = roomModel.Status(value.(string))
		}
	})

	r.s.rooms[id] = room

	return nil
}

type memBookings struct{ s *memStore }

func (b memBookings) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
	r := b.s
	r.mu.Lock()
	defer r.mu.Unlock()

	_, id := filterValue(filter)

	return r.bookings[id], nil
}

func (b memBookings) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	return slices.Collect(maps.Values(b.s.bookings)), nil
}

func (b memBookings) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	return len(b.s.bookings), nil
}

func (b memBookings) GetForUpdateTx(ctx context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
	return b.Get(ctx, filter)
}

func (b memBookings) InsertTx(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	b.s.bookings[booking.ID] = booking

	return nil
}

func (b memBookings) UpdateTx(_ context.Context, _ *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	_, id := filterValue(filter)

	booking, ok := b.s.bookings[id]
	if !ok {
		return nil
	}

	applyFields(&booking, fields, func(booking *model.Booking, key string, value any) {
		if key == model.FieldStatus {
			booking.Status = model.Status(value.(string))
		}
	})

	b.s.bookings[id] = booking

	return nil
}

func (b memBookings) ExistTx(_ context.Context, _ *sqlx.Tx, _ gDto.FilterGroup) (bool, error) {
	return false, nil
}

func (b memBookings) BookedRoomIDs(_ context.Context, _ gDto.FilterGroup) ([]string, error) {
	return nil, nil
}

// memResolver applies the half-open overlap predicate to the store's active bookings.
type memResolver struct{ s *memStore }

func (r memResolver) HasConflict(_ context.Context, _ *sqlx.Tx, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error) {
	for _, booking := range r.s.activeBookings(roomID) {
		if booking.ID == excludeBookingID {
			continue
		}

		if availabilityModel.Overlaps(booking.CheckIn, booking.CheckOut, checkIn, checkOut) {
			return true, nil
		}
	}

	return false, nil
}

func (r memResolver) BookedRoomIDs(_ context.Context, from, to time.Time) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := map[string]bool{}

	var ids []string

	for _, booking := range r.s.bookings {
		if booking.Status.IsActive() && availabilityModel.Overlaps(booking.CheckIn, booking.CheckOut, from, to) && !seen[booking.RoomID] {
			seen[booking.RoomID] = true
			ids = append(ids, booking.RoomID)
		}
	}

	return ids, nil
}

type recordingEmitter struct {
	mu     sync.Mutex
	events []auditModel.Event
}

func (e *recordingEmitter) Emit(_ context.Context, event auditModel.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.events = append(e.events, event)
}

func (e *recordingEmitter) Close(_ context.Context) error {
	return nil
}

func (e *recordingEmitter) actions() []auditModel.Action {
	e.mu.Lock()
	defer e.mu.Unlock()

	actions := make([]auditModel.Action, len(e.events))
	for i, event := range e.events {
		actions[i] = event.Action
	}

	return actions
}
