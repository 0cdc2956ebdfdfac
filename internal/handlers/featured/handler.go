package featured

import (
	"errors"
	"hospitality/infras/otel"
	"hospitality/internal/domains/featured/model"
	"hospitality/internal/domains/featured/model/dto"
	"hospitality/internal/domains/featured/service"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/failure"
	"hospitality/shared/validator"
	"hospitality/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.FeaturedLocation
	otel    otel.Otel
}

func New(service service.FeaturedLocation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/featured-locations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateLocation)
		routerGroup.Get("/", handler.GetLocations)
	})
}

// CreateLocation stores a featured location with its image.
// @Summary Add a featured location
// @Description Store a featured location from a multipart form, including its image.
// @Tags Featured
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} response.Message "Location added successfully"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /featured-locations [post]
func (handler *Handler) CreateLocation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLocation")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.CreateFeaturedLocationRequest{
		Title:       request.FormValue("title"),
		Description: request.FormValue("description"),
		Region:      request.FormValue("region"),
	}

	file, fileHeader, err := request.FormFile(constant.FormFileImage)
	if err == nil {
		defer file.Close()

		req.Image = fileHeader
		req.ImageFile = file
	} else if !errors.Is(err, http.ErrMissingFile) {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate featured location form")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create featured location")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Featured location created successfully")

	response.WithMessage(writer, http.StatusOK, "Location added successfully")
}

// GetLocations retrieves all featured locations, newest first.
// @Summary Get all featured locations
// @Description Retrieve all featured locations with optional region filter and pagination.
// @Tags Featured
// @Accept json
// @Produce json
// @Param region query string false "Filter by region"
// @Success 200 {object} dto.GetFeaturedLocationsResponse "List of featured locations"
// @Failure 500 {object} response.Message
// @Router /featured-locations [get]
func (handler *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	region := r.URL.Query().Get(model.FieldRegion)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if region != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRegion,
			Operator: gDto.FilterOperatorEq,
			Value:    region,
			Table:    model.TableName,
		})
	}

	locations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured locations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Featured locations retrieved successfully")

	response.WithJSON(w, http.StatusOK, locations)
}
