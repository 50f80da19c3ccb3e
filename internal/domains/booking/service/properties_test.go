package service_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	auditModel "hotel/internal/domains/audit/model"
	availabilityModel "hotel/internal/domains/availability/model"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	roomModel "hotel/internal/domains/room/model"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
)

type memHarness struct {
	store   *memStore
	emitter *recordingEmitter
	svc     service.Booking
}

func newMemHarness(t *testing.T) memHarness {
	ctrl := gomock.NewController(t)

	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Booking.ConfirmRoomStatus = string(roomModel.StatusMaintenance)

	h := memHarness{
		store:   newMemStore(sampleRoom(roomModel.StatusAvailable)),
		emitter: &recordingEmitter{},
	}

	h.svc = service.New(
		memBookings{h.store},
		memRooms{h.store},
		memResolver{h.store},
		h.store,
		h.emitter,
		cfg,
		cache,
		otelMocks.NewOtel(),
	)

	return h
}

func stay(checkIn, checkOut string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomNumber: "101",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     2,
		Email:      "guest@example.com",
	}
}

func TestBookingStateMachine_NoDoubleBooking(t *testing.T) {
	h := newMemHarness(t)

	const requests = 24

	base := date("2025-03-10")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		codes   []int
	)

	for i := range requests {
		// every range covers 2025-03-10, so any two of them overlap
		in := base.AddDate(0, 0, -rand.IntN(4))
		out := base.AddDate(0, 0, 1+rand.IntN(4))

		wg.Add(1)

		go func() {
			defer wg.Done()

			ctx := userContext("user-"+string(rune('a'+i)), constant.RoleUser)

			_, err := h.svc.Create(ctx, stay(timezone.FormatDate(in), timezone.FormatDate(out)))

			mu.Lock()
			defer mu.Unlock()

			if err == nil {
				created++

				return
			}

			codes = append(codes, failure.GetCode(err))
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, created)

	for _, code := range codes {
		assert.Contains(t, []int{http.StatusConflict, http.StatusUnprocessableEntity}, code)
	}

	active := h.store.activeBookings("room-1")
	require.Len(t, active, 1)
	assert.Equal(t, roomModel.StatusReserved, h.store.room("room-1").Status)
}

func TestBookingStateMachine_ActiveBookingsNeverOverlap(t *testing.T) {
	h := newMemHarness(t)

	var wg sync.WaitGroup

	base := date("2025-05-01")

	for i := range 40 {
		in := base.AddDate(0, 0, rand.IntN(20))
		out := in.AddDate(0, 0, 1+rand.IntN(3))

		wg.Add(1)

		go func() {
			defer wg.Done()

			ctx := userContext("user-1", constant.RoleUser)

			res, err := h.svc.Create(ctx, stay(timezone.FormatDate(in), timezone.FormatDate(out)))
			if err == nil && i%3 == 0 {
				_, _ = h.svc.Cancel(ctx, res.ID)
			}
		}()
	}

	wg.Wait()

	active := h.store.activeBookings("room-1")
	for i := range active {
		for j := i + 1; j < len(active); j++ {
			assert.False(t,
				availabilityModel.Overlaps(active[i].CheckIn, active[i].CheckOut, active[j].CheckIn, active[j].CheckOut),
				"%s and %s overlap", active[i].ID, active[j].ID,
			)
		}
	}
}

func TestBookingStateMachine_HalfOpenBoundary(t *testing.T) {
	h := newMemHarness(t)
	ctx := userContext("user-1", constant.RoleUser)

	first, err := h.svc.Create(ctx, stay("2024-06-01", "2024-06-05"))
	require.NoError(t, err)

	second, err := h.svc.Create(ctx, stay("2024-06-05", "2024-06-08"))
	require.NoError(t, err)

	assert.Equal(t, string(model.StatusReserved), first.Status)
	assert.Equal(t, string(model.StatusReserved), second.Status)

	_, err = h.svc.Create(ctx, stay("2024-06-04", "2024-06-06"))
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	assert.Len(t, h.store.activeBookings("room-1"), 2)
}

func TestBookingStateMachine_Example(t *testing.T) {
	h := newMemHarness(t)
	ctx := userContext("user-1", constant.RoleUser)

	first, err := h.svc.Create(ctx, stay("2024-06-01", "2024-06-05"))
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusReserved), first.Status)
	assert.Equal(t, roomModel.StatusReserved, h.store.room("room-1").Status)

	_, err = h.svc.Create(ctx, stay("2024-06-03", "2024-06-06"))
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	cancelled, err := h.svc.Cancel(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusCancelled), cancelled.Status)
	assert.Equal(t, roomModel.StatusAvailable, h.store.room("room-1").Status)

	second, err := h.svc.Create(ctx, stay("2024-06-03", "2024-06-06"))
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusReserved), second.Status)

	assert.Equal(t, []auditModel.Action{
		auditModel.ActionCreateBooking,
		auditModel.ActionCancelBooking,
		auditModel.ActionCreateBooking,
	}, h.emitter.actions())
}

func TestBookingStateMachine_Closure(t *testing.T) {
	h := newMemHarness(t)
	ctx := userContext("user-1", constant.RoleUser)

	booking, err := h.svc.Create(ctx, stay("2024-07-01", "2024-07-03"))
	require.NoError(t, err)

	_, err = h.svc.Cancel(ctx, booking.ID)
	require.NoError(t, err)

	before := h.store.booking(booking.ID)
	room := h.store.room("room-1")

	_, err = h.svc.Confirm(ctx, booking.ID)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))

	_, err = h.svc.Cancel(ctx, booking.ID)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))

	assert.Equal(t, before, h.store.booking(booking.ID))
	assert.Equal(t, room, h.store.room("room-1"))

	// only the admin override leaves a terminal state
	admin := userContext("admin-1", constant.RoleAdmin)

	res, err := h.svc.AdminOverride(admin, booking.ID, model.DirectionConfirm)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusConfirmed), res.Status)
	assert.Equal(t, roomModel.StatusReserved, h.store.room("room-1").Status)
}

func TestBookingStateMachine_ConfirmMovesRoom(t *testing.T) {
	h := newMemHarness(t)
	ctx := userContext("user-1", constant.RoleUser)

	booking, err := h.svc.Create(ctx, stay("2024-08-01", "2024-08-03"))
	require.NoError(t, err)

	res, err := h.svc.Confirm(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusConfirmed), res.Status)
	assert.Equal(t, roomModel.StatusMaintenance, h.store.room("room-1").Status)

	_, err = h.svc.Create(ctx, stay("2024-09-01", "2024-09-03"))
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
}

func TestBookingStateMachine_Atomicity(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		h := newMemHarness(t)
		h.store.failRoomUpdate = true

		_, err := h.svc.Create(userContext("user-1", constant.RoleUser), stay("2024-06-01", "2024-06-05"))

		require.ErrorIs(t, err, errInjected)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.Empty(t, h.store.activeBookings("room-1"))
		assert.Equal(t, roomModel.StatusAvailable, h.store.room("room-1").Status)
		assert.Empty(t, h.emitter.actions())
	})

	t.Run("cancel", func(t *testing.T) {
		h := newMemHarness(t)
		ctx := userContext("user-1", constant.RoleUser)

		booking, err := h.svc.Create(ctx, stay("2024-06-01", "2024-06-05"))
		require.NoError(t, err)

		h.store.mu.Lock()
		h.store.failRoomUpdate = true
		h.store.mu.Unlock()

		_, err = h.svc.Cancel(ctx, booking.ID)
		require.ErrorIs(t, err, errInjected)

		assert.Equal(t, model.StatusReserved, h.store.booking(booking.ID).Status)
		assert.Equal(t, roomModel.StatusReserved, h.store.room("room-1").Status)
	})
}

func TestBookingStateMachine_Visibility(t *testing.T) {
	h := newMemHarness(t)

	booking, err := h.svc.Create(userContext("user-1", constant.RoleUser), stay("2024-06-01", "2024-06-05"))
	require.NoError(t, err)

	_, err = h.svc.Get(userContext("user-2", constant.RoleUser), booking.ID)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = h.svc.Cancel(userContext("user-2", constant.RoleUser), booking.ID)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	res, err := h.svc.Get(context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleAdmin), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, res.ID)
}
