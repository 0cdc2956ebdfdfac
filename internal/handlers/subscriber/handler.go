package subscriber

import (
	"hospitality/infras/otel"
	"hospitality/internal/domains/subscriber/model"
	"hospitality/internal/domains/subscriber/model/dto"
	"hospitality/internal/domains/subscriber/service"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/validator"
	"hospitality/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Subscriber
	otel    otel.Otel
}

func New(service service.Subscriber, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/subscribe", handler.Subscribe)
	router.Get("/subscribers", handler.GetSubscribers)
}

// Subscribe adds an email address to the newsletter list.
// @Summary Subscribe to the newsletter
// @Description Store a newsletter subscription and send a welcome email.
// @Tags Subscriber
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscribe Request"
// @Success 200 {object} dto.SubscribeResponse "Subscribed successfully"
// @Failure 400 {object} response.Message
// @Failure 409 {object} response.Message "Email already subscribed"
// @Failure 500 {object} response.Message
// @Router /subscribe [post]
func (handler *Handler) Subscribe(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	req := dto.SubscribeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Subscribe(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to subscribe")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Subscriber created successfully")

	response.WithPayload(writer, http.StatusOK, res)
}

// GetSubscribers retrieves the newsletter list, newest first.
// @Summary Get all subscribers
// @Description Retrieve all newsletter subscribers with pagination.
// @Tags Subscriber
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetSubscribersResponse "List of subscribers"
// @Failure 500 {object} response.Message
// @Router /subscribers [get]
func (handler *Handler) GetSubscribers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubscribers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.SortBy = model.FieldSubscribedAt

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	subscribers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get subscribers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Subscribers retrieved successfully")

	response.WithJSON(w, http.StatusOK, subscribers)
}
