package registration

import (
	"hospitality/infras/otel"
	"hospitality/internal/domains/registration/model/dto"
	"hospitality/internal/domains/registration/service"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/validator"
	"hospitality/transport/http/middleware"
	"hospitality/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Registration
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Registration, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/register", handler.CreateRegistration)
	router.With(handler.middleware.Auth).Get("/admin/registrations", handler.GetRegistrations)
}

// CreateRegistration stores a profile registration.
// @Summary Register a profile
// @Description Store a registration and send a confirmation email.
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body dto.CreateRegistrationRequest true "Create Registration Request"
// @Success 200 {object} dto.CreateRegistrationResponse "Registration successful"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /register [post]
func (handler *Handler) CreateRegistration(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRegistration")
	defer scope.End()

	req := dto.CreateRegistrationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create registration")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Registration created successfully")

	response.WithPayload(writer, http.StatusOK, res)
}

// GetRegistrations retrieves all registrations, newest first.
// @Summary Get all registrations
// @Description Retrieve all registrations for the admin dashboard.
// @Tags Registration
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetRegistrationsResponse "List of registrations"
// @Failure 401 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /admin/registrations [get]
// @Security BearerAuth
func (handler *Handler) GetRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRegistrations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	registrations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get registrations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Registrations retrieved successfully")

	response.WithJSON(w, http.StatusOK, registrations)
}
