package message

import (
	"hospitality/infras/otel"
	"hospitality/internal/domains/message/model/dto"
	"hospitality/internal/domains/message/service"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/validator"
	"hospitality/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Message
	otel    otel.Otel
}

func New(service service.Message, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/send_message", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMessage)
		routerGroup.Get("/", handler.GetMessages)
	})
}

// CreateMessage stores a message form submission.
// @Summary Send a message
// @Description Store a message and notify both the sender and the admin inbox.
// @Tags Message
// @Accept json
// @Produce json
// @Param request body dto.CreateMessageRequest true "Create Message Request"
// @Success 200 {object} dto.CreateMessageResponse "Message received successfully."
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /send_message [post]
func (handler *Handler) CreateMessage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMessage")
	defer scope.End()

	req := dto.CreateMessageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create message")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Message created successfully")

	response.WithPayload(writer, http.StatusOK, res)
}

// GetMessages retrieves all messages, newest first.
// @Summary Get all messages
// @Description Retrieve all sent messages with pagination.
// @Tags Message
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetMessagesResponse "List of messages"
// @Failure 500 {object} response.Message
// @Router /send_message [get]
func (handler *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMessages")
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
		log.Error().Err(err).Msg("failed to get messages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Messages retrieved successfully")

	response.WithJSON(w, http.StatusOK, messages)
}
