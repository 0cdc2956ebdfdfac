package hotellocation

import (
	"hospitality/infras/otel"
	"hospitality/internal/domains/hotellocation/model"
	"hospitality/internal/domains/hotellocation/model/dto"
	"hospitality/internal/domains/hotellocation/service"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/validator"
	"hospitality/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.HotelLocation
	otel    otel.Otel
}

func New(service service.HotelLocation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotel-locations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateLocation)
		routerGroup.Get("/", handler.GetLocations)
	})
}

// CreateLocation stores a hotel location entry with its regions.
// @Summary Add a hotel location
// @Description Store a hotel location with its list of regions.
// @Tags HotelLocation
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelLocationRequest true "Create Hotel Location Request"
// @Success 200 {object} response.Message "Location Added Successfully"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /hotel-locations [post]
func (handler *Handler) CreateLocation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLocation")
	defer scope.End()

	req := dto.CreateHotelLocationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel location")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Hotel location created successfully")

	response.WithMessage(writer, http.StatusOK, "Location Added Successfully")
}

// GetLocations retrieves all hotel locations, newest first.
// @Summary Get all hotel locations
// @Description Retrieve all hotel locations with optional country filter and pagination.
// @Tags HotelLocation
// @Accept json
// @Produce json
// @Param country query string false "Filter by country"
// @Success 200 {object} dto.GetHotelLocationsResponse "List of hotel locations"
// @Failure 500 {object} response.Message
// @Router /hotel-locations [get]
func (handler *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	country := r.URL.Query().Get(model.FieldCountry)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if country != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCountry,
			Operator: gDto.FilterOperatorEq,
			Value:    country,
			Table:    model.TableName,
		})
	}

	locations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel locations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel locations retrieved successfully")

	response.WithJSON(w, http.StatusOK, locations)
}
