package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"royalpalace/config"
	"royalpalace/infras/otel"
	"royalpalace/internal/domains/contact/model"
	"royalpalace/internal/domains/contact/model/dto"
	"royalpalace/internal/domains/contact/repository"
	"royalpalace/internal/events"
	"royalpalace/shared"
	"royalpalace/shared/cache"
	"royalpalace/shared/constant"
	gDto "royalpalace/shared/dto"
	"royalpalace/shared/failure"
	"royalpalace/shared/timezone"
)

const (
	cacheGetAllContact = "contact:gets"
	cacheCountContact  = "contact:count"
)

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactMessageRequest) (dto.ContactMessageResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContactMessagesResponse, error)
	MarkRead(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Contact
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Contact, publisher events.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Contact {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create stores a contact-form submission. The endpoint is public, so the
// audit columns carry the system actor rather than a session identity.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactMessageRequest) (res dto.ContactMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	message := req.ToModel()

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to create contact message")

		return res, fmt.Errorf("failed to create contact message: %w", err)
	}

	res.FromModel(message)

	go func() {
		c := context.WithoutCancel(ctx)

		event := events.BookingEvent{
			Type:       events.TypeContactReceived,
			GuestName:  message.Name,
			GuestEmail: message.Email,
			Subject:    message.Subject,
			Message:    message.Message,
		}

		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Msg("failed to publish contact event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllContact)
		shared.InvalidateCaches(c, s.cache, cacheCountContact)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContactMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllContact, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contact messages")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contact messages")

		return res, fmt.Errorf("failed to count contact messages: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact messages")

		return res, fmt.Errorf("failed to get contact messages: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contact messages to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	message, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact message")

		return fmt.Errorf("failed to get contact message: %w", err)
	}

	if message.ID == "" {
		return failure.NotFound("contact message")
	}

	fields := map[string]any{
		model.FieldRead:          true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark contact message read")

		return fmt.Errorf("failed to mark contact message read: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllContact)
	}()

	return nil
}
