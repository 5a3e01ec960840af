package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"royalpalace/config"
	"royalpalace/infras/otel"
	bookingModel "royalpalace/internal/domains/booking/model"
	bookingRepo "royalpalace/internal/domains/booking/repository"
	"royalpalace/internal/domains/payment/model"
	"royalpalace/internal/domains/payment/model/dto"
	"royalpalace/internal/domains/payment/repository"
	"royalpalace/internal/events"
	"royalpalace/shared"
	"royalpalace/shared/cache"
	"royalpalace/shared/constant"
	gDto "royalpalace/shared/dto"
	"royalpalace/shared/failure"
)

const cacheGetAllPayment = "payment:gets"

type Payment interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest, bookingID string) (dto.PaymentResponse, error)
	GetAllByBooking(ctx context.Context, bookingID string) (dto.GetPaymentsResponse, error)
}

type serviceImpl struct {
	repo        repository.Payment
	bookingRepo bookingRepo.Booking
	publisher   events.Publisher
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Payment, bookingRepo bookingRepo.Booking, publisher events.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		publisher:   publisher,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create appends a payment against a booking. It records money received and
// nothing else: booking and room status stay untouched.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest, bookingID string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userEmail, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	booking, err := s.authorizedBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	payment := req.ToModel(bookingID, userEmail)

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to create payment")

		return res, fmt.Errorf("failed to create payment: %w", err)
	}

	res.FromModel(payment)

	go func() {
		c := context.WithoutCancel(ctx)

		event := events.BookingEvent{
			Type:          events.TypePaymentRecorded,
			BookingID:     booking.ID,
			ReferenceCode: booking.ReferenceCode,
			GuestName:     booking.GuestName,
			GuestEmail:    booking.GuestEmail,
			TotalAmount:   payment.Amount,
			TransactionID: payment.TransactionID,
			Method:        payment.Method,
		}

		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Msg("failed to publish payment event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
	}()

	return res, nil
}

func (s *serviceImpl) GetAllByBooking(ctx context.Context, bookingID string) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.authorizedBooking(ctx, bookingID); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetAllPayment, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	// A booking accumulates at most a handful of payments; one page covers
	// the whole ledger.
	params := gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   100,
		SortBy:  constant.FieldCreatedAt,
		SortDir: "ASC",
	}

	models, err := s.repo.GetAll(ctx, params, s.bookingFilter(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

// authorizedBooking loads the booking and enforces that only its owner or an
// admin may see or extend its payment ledger.
func (s *serviceImpl) authorizedBooking(ctx context.Context, bookingID string) (bookingModel.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for payment")

		return booking, fmt.Errorf("failed to get booking for payment: %w", err)
	}

	if booking.ID == "" {
		return booking, failure.NotFound("booking")
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if role != constant.RoleAdmin && booking.UserID != userID {
		return booking, failure.Forbidden("access denied")
	}

	return booking, nil
}

func (s *serviceImpl) bookingFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
		},
	}
}
