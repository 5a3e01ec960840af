package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"royalpalace/config"
	"royalpalace/infras/otel"
	"royalpalace/internal/domains/booking/model"
	"royalpalace/internal/domains/booking/model/dto"
	"royalpalace/internal/domains/booking/pricing"
	"royalpalace/internal/domains/booking/repository"
	roomModel "royalpalace/internal/domains/room/model"
	roomRepo "royalpalace/internal/domains/room/repository"
	"royalpalace/internal/events"
	"royalpalace/shared"
	"royalpalace/shared/cache"
	"royalpalace/shared/constant"
	gDto "royalpalace/shared/dto"
	"royalpalace/shared/failure"
	"royalpalace/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, publisher events.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create books a room for the authenticated guest. The total is always
// recomputed from catalog rates; amounts sent by the client never reach the
// database.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	userEmail, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, failure.BadRequestFromString("invalid check-in or check-out date")
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for booking")

		return res, fmt.Errorf("failed to get room for booking: %w", err)
	}

	if room.ID == "" {
		return res, failure.NotFound("room")
	}

	if room.Status != roomModel.StatusAvailable {
		return res, failure.Conflict("room is not available")
	}

	quote, err := pricing.Calculate(checkIn, checkOut, room.SingleRate, room.DoubleRate, req.Occupancy, req.ExtraBed, s.cfg.Hotel.ExtraBedCharge)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(userID, model.NewReferenceCode(s.cfg.Hotel.ReferencePrefix), userEmail, checkIn, checkOut, quote)

	if err = s.repo.CreateWithRoomStatus(ctx, booking, roomModel.StatusOccupied); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	// Re-read through the joins so the response and the confirmation email
	// carry the guest's name and the room details.
	created, err := s.repo.Get(ctx, shared.FilterByID(booking.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get created booking")

		return res, fmt.Errorf("failed to get created booking: %w", err)
	}

	res.FromModel(created)

	s.publish(ctx, events.TypeBookingConfirmed, created)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter = s.scopeToOwner(ctx, filter)

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

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.count(ctx, req, s.scopeToOwner(ctx, filter))
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
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

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, s.authorizeOwner(ctx, res.UserID)
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return res, failure.NotFound("booking")
	}

	if err = s.authorizeOwner(ctx, booking.UserID); err != nil {
		return dto.BookingResponse{}, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// UpdateStatus moves a booking to a terminal state. Admins may finalize any
// confirmed booking; guests may only cancel their own. Either terminal state
// frees the room.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	userEmail, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return failure.NotFound("booking")
	}

	if role != constant.RoleAdmin {
		if booking.UserID != userID {
			return failure.Forbidden("access denied")
		}

		if req.Status != model.StatusCancelled {
			return failure.Forbidden("guests may only cancel their bookings")
		}
	}

	if !model.CanTransition(booking.Status, req.Status) {
		return failure.Conflict(fmt.Sprintf("booking is already %s", booking.Status))
	}

	fields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userEmail,
	}

	if err = s.repo.UpdateStatusWithRoom(ctx, fields, booking.ID, booking.RoomID, roomModel.StatusAvailable); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status

	eventType := events.TypeBookingCancelled
	if req.Status == model.StatusCompleted {
		eventType = events.TypeBookingCompleted
	}

	s.publish(ctx, eventType, booking)
	s.invalidate(ctx)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}()

	return nil
}

// scopeToOwner narrows list queries to the caller's own bookings unless the
// caller is an admin.
func (s *serviceImpl) scopeToOwner(ctx context.Context, filter gDto.FilterGroup) gDto.FilterGroup {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleAdmin {
		return filter
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldUserID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    model.TableName,
	})

	return filter
}

func (s *serviceImpl) authorizeOwner(ctx context.Context, ownerID string) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleAdmin {
		return nil
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if ownerID != userID {
		return failure.Forbidden("access denied")
	}

	return nil
}

// publish sends the notification event without holding up the request; a
// broker outage loses the email, never the booking.
func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking) {
	event := events.BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		ReferenceCode: booking.ReferenceCode,
		GuestName:     booking.GuestName,
		GuestEmail:    booking.GuestEmail,
		RoomNumber:    booking.RoomNumber,
		RoomTypeName:  booking.RoomTypeName,
		CheckIn:       timezone.Format(booking.CheckIn, constant.DateOnlyFormat),
		CheckOut:      timezone.Format(booking.CheckOut, constant.DateOnlyFormat),
		TotalAmount:   booking.TotalAmount,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish booking event")
		}
	}()
}

// invalidate drops booking listings and the room caches, which go stale
// together because every booking write moves a room status.
func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetRoom)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()
}
