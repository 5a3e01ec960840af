package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"royalpalace/infras/otel"
	"royalpalace/internal/domains/contact/model"
	"royalpalace/internal/domains/contact/model/dto"
	"royalpalace/internal/domains/contact/service"
	"royalpalace/shared/constant"
	gDto "royalpalace/shared/dto"
	"royalpalace/shared/validator"
	"royalpalace/transport/http/response"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateContactMessage)
		routerGroup.Get("/", handler.GetContactMessages)
		routerGroup.Patch("/{id}/read", handler.MarkContactMessageRead)
	})
}

// CreateContactMessage accepts a message from the public contact form.
// @Summary Submit a contact message
// @Description Submit a contact form message. No authentication required.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactMessageRequest true "Contact message"
// @Success 201 {object} response.Data[dto.ContactMessageResponse] "Message received"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact [post]
func (handler *Handler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContactMessage")
	defer scope.End()

	var req dto.CreateContactMessageRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	message, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact message")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact message created successfully")

	response.WithJSON(w, http.StatusCreated, message)
}

// GetContactMessages lists contact form submissions.
// @Summary Get contact messages
// @Description Retrieve contact messages with optional read filter. Admin only.
// @Tags Contact
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param read query string false "Filter by read flag"
// @Success 200 {object} response.Data[dto.GetContactMessagesResponse] "List of contact messages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact [get]
// @Security BearerAuth
func (handler *Handler) GetContactMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactMessages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if read := r.URL.Query().Get(model.FieldRead); read != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRead,
			Operator: gDto.FilterOperatorEq,
			Value:    read,
			Table:    model.TableName,
		})
	}

	messages, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact messages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact messages retrieved successfully")

	response.WithJSON(w, http.StatusOK, messages)
}

// MarkContactMessageRead flags a contact message as handled.
// @Summary Mark a contact message as read
// @Description Mark a contact message as read. Admin only.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact Message ID"
// @Success 200 {object} response.Message "Contact message marked as read"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact/{id}/read [patch]
// @Security BearerAuth
func (handler *Handler) MarkContactMessageRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkContactMessageRead")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkRead(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark contact message as read")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact message marked as read")

	response.WithMessage(w, http.StatusOK, "Contact message marked as read")
}
