package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	auditModel "hotel/internal/domains/audit/model"
	audit "hotel/internal/domains/audit/service"
	availabilityModel "hotel/internal/domains/availability/model"
	availability "hotel/internal/domains/availability/service"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

const (
	msgBookingNotFound = "booking not found"
	msgRoomNotFound    = "room not found"
	msgRoomUnavailable = "room not available"
	msgRoomBooked      = "room already booked in that period"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id string) (dto.BookingResponse, error)
	AdminOverride(ctx context.Context, id string, direction model.Direction) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetByEmail(ctx context.Context, email string, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	availability availability.Resolver
	transactor   postgres.Transactor
	emitter      audit.Emitter
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	availability availability.Resolver,
	transactor postgres.Transactor,
	emitter audit.Emitter,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		availability: availability,
		transactor:   transactor,
		emitter:      emitter,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// transition describes one booking status change and the room status that follows it.
// A nil guard means the change is forced.
type transition struct {
	action     auditModel.Action
	target     model.Status
	roomStatus roomModel.Status
	guard      func(booking model.Booking) error
}

func actor(ctx context.Context) (id string, admin bool) {
	id, _ = ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return id, role == constant.RoleAdmin || role == constant.RoleSuperAdmin
}

func (s *serviceImpl) confirmRoomStatus() roomModel.Status {
	status := roomModel.Status(s.cfg.Booking.ConfirmRoomStatus)
	if !status.IsValid() {
		return roomModel.StatusMaintenance
	}

	return status
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customerID, _ := actor(ctx)
	if customerID == constant.Empty {
		return res, failure.Unauthorized("login required") // nolint:wrapcheck
	}

	checkIn, checkOut, err := req.Stay()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !availabilityModel.ValidRange(checkIn, checkOut) {
		return res, failure.InvalidRange("invalid check-in/check-out dates") // nolint:wrapcheck
	}

	room, err := s.resolveRoom(ctx, req)
	if err != nil {
		return res, err
	}

	var booking model.Booking

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
		}

		if !current.Status.Bookable() {
			return failure.InvalidState(fmt.Sprintf("%s (status %s)", msgRoomUnavailable, current.Status)) // nolint:wrapcheck
		}

		conflict, err := s.availability.HasConflict(ctx, tx, current.ID, checkIn, checkOut, constant.Empty)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if conflict {
			return failure.Conflict(msgRoomBooked) // nolint:wrapcheck
		}

		booking = req.ToModel(customerID, current, checkIn, checkOut)

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		return s.setRoomStatus(ctx, tx, current.ID, roomModel.StatusReserved, customerID)
	})
	if err != nil {
		return res, s.transactionError(err, "create booking")
	}

	s.afterCommit(ctx, auditModel.ActionCreateBooking, customerID, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) resolveRoom(ctx context.Context, req dto.CreateBookingRequest) (roomModel.Room, error) {
	filter := shared.FilterByID(req.RoomNumber, roomModel.FieldRoomNumber, roomModel.TableName)
	if req.RoomID != constant.Empty {
		filter = shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName)
	}

	room, err := s.roomRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customerID, _ := actor(ctx)

	return s.apply(ctx, id, customerID, transition{
		action:     auditModel.ActionCancelBooking,
		target:     model.StatusCancelled,
		roomStatus: roomModel.StatusAvailable,
		guard: func(booking model.Booking) error {
			if !booking.OwnedBy(customerID) {
				return failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
			}

			if !booking.Status.CanTransitionTo(model.StatusCancelled) {
				return failure.InvalidState("cannot cancel a " + string(booking.Status) + " booking") // nolint:wrapcheck
			}

			return nil
		},
	})
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actorID, admin := actor(ctx)

	return s.apply(ctx, id, actorID, transition{
		action:     auditModel.ActionConfirmBooking,
		target:     model.StatusConfirmed,
		roomStatus: s.confirmRoomStatus(),
		guard: func(booking model.Booking) error {
			if !admin && !booking.OwnedBy(actorID) {
				return failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
			}

			if booking.Status != model.StatusReserved {
				return failure.InvalidState("only reserved bookings can be confirmed") // nolint:wrapcheck
			}

			return nil
		},
	})
}

// AdminOverride forces a booking into the direction's status regardless of its current one.
func (s *serviceImpl) AdminOverride(ctx context.Context, id string, direction model.Direction) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminOverride")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !direction.IsValid() {
		return res, failure.BadRequestFromString("direction must be confirm or cancel") // nolint:wrapcheck
	}

	adminID, _ := actor(ctx)

	roomStatus := roomModel.StatusAvailable
	if direction == model.DirectionConfirm {
		roomStatus = roomModel.StatusReserved
	}

	return s.apply(ctx, id, adminID, transition{
		action:     auditModel.AdminAction(direction),
		target:     direction.Target(),
		roomStatus: roomStatus,
	})
}

// apply writes the booking status and its room status in one transaction.
func (s *serviceImpl) apply(ctx context.Context, id, actorID string, t transition) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".apply")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"booking_id": id,
		"action":     string(t.action),
	})

	var booking model.Booking

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
		}

		if t.guard != nil {
			if err := t.guard(current); err != nil {
				return err
			}
		}

		now := timezone.Now()

		fields := map[string]any{
			model.FieldStatus:         string(t.target),
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actorID,
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		if err := s.setRoomStatus(ctx, tx, current.RoomID, t.roomStatus, actorID); err != nil {
			return err
		}

		current.Status = t.target
		current.ModifiedAt = now
		current.ModifiedBy = actorID
		booking = current

		return nil
	})
	if err != nil {
		return res, s.transactionError(err, string(t.action))
	}

	s.afterCommit(ctx, t.action, actorID, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) setRoomStatus(ctx context.Context, tx *sqlx.Tx, roomID string, status roomModel.Status, actorID string) error {
	fields := map[string]any{
		roomModel.FieldStatus:    string(status),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actorID,
	}

	err := s.roomRepo.UpdateTx(ctx, tx, fields, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}

// transactionError keeps client failures, reports storage races as Conflict and hides the rest.
func (s *serviceImpl) transactionError(err error, operation string) error {
	if failure.IsFailure(err) {
		return err
	}

	if postgres.IsConflict(err) {
		log.Warn().Err(err).Str("operation", operation).Msg("booking rejected by storage constraint")

		return failure.Conflict(msgRoomBooked) // nolint:wrapcheck
	}

	log.Error().Err(err).Str("operation", operation).Msg("booking transaction failed")

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// afterCommit drops the listings the transaction made stale before the caller
// sees the result, then emits the audit event.
func (s *serviceImpl) afterCommit(ctx context.Context, action auditModel.Action, actorID string, booking model.Booking) {
	c := context.WithoutCancel(ctx)

	shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	roomService.InvalidateCaches(c, s.cache)

	s.emitter.Emit(ctx, auditModel.NewEvent(action, actorID, booking))
}

// Get returns a booking visible to its owner or an admin.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actorID, admin := actor(ctx)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	res.FromModel(booking)

	if !admin && res.CustomerID != actorID {
		return dto.BookingResponse{}, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customerID, _ := actor(ctx)
	if customerID == constant.Empty {
		return res, failure.Unauthorized("login required") // nolint:wrapcheck
	}

	return s.GetAll(ctx, req, shared.FilterByID(customerID, model.FieldCustomerID, model.TableName))
}

func (s *serviceImpl) GetByEmail(ctx context.Context, email string, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByEmail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.GetAll(ctx, req, shared.FilterByID(email, model.FieldEmail, model.TableName))
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}
