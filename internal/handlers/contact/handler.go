package contact

import (
	"hospitality/infras/otel"
	"hospitality/internal/domains/contact/model/dto"
	"hospitality/internal/domains/contact/service"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/validator"
	"hospitality/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
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
		routerGroup.Post("/", handler.CreateContact)
		routerGroup.Get("/", handler.GetContacts)
	})
}

// CreateContact stores a contact form submission.
// @Summary Submit the contact form
// @Description Store a contact message and send a confirmation email.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Create Contact Request"
// @Success 200 {object} dto.CreateContactResponse "Message sent successfully"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /contact [post]
func (handler *Handler) CreateContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	req := dto.CreateContactRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact message")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contact message created successfully")

	response.WithPayload(writer, http.StatusOK, res)
}

// GetContacts retrieves all contact messages, newest first.
// @Summary Get all contact messages
// @Description Retrieve all contact messages with pagination.
// @Tags Contact
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetContactsResponse "List of contact messages"
// @Failure 500 {object} response.Message
// @Router /contact [get]
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
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
