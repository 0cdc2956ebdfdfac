package preschool

import (
	"hospitality/infras/otel"
	"hospitality/internal/domains/preschool/model/dto"
	"hospitality/internal/domains/preschool/service"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/validator"
	"hospitality/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Lead
	otel    otel.Otel
}

func New(service service.Lead, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/preschool", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateLead)
		routerGroup.Get("/", handler.GetLeads)
	})
}

// CreateLead stores a preschool enrollment lead.
// @Summary Submit the preschool form
// @Description Store a preschool enrollment lead.
// @Tags Preschool
// @Accept json
// @Produce json
// @Param request body dto.CreateLeadRequest true "Create Lead Request"
// @Success 200 {object} response.Message "Form submitted successfully"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /preschool [post]
func (handler *Handler) CreateLead(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLead")
	defer scope.End()

	req := dto.CreateLeadRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create preschool lead")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Preschool lead created successfully")

	response.WithMessage(writer, http.StatusOK, "Form submitted successfully")
}

// GetLeads retrieves all preschool leads, newest first.
// @Summary Get all preschool leads
// @Description Retrieve all preschool enrollment leads with pagination.
// @Tags Preschool
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetLeadsResponse "List of leads"
// @Failure 500 {object} response.Message
// @Router /preschool [get]
func (handler *Handler) GetLeads(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLeads")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	leads, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get preschool leads")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Preschool leads retrieved successfully")

	response.WithJSON(w, http.StatusOK, leads)
}
