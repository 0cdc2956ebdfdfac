package officelocation

import (
	"errors"
	"hospitality/infras/otel"
	"hospitality/internal/domains/officelocation/model/dto"
	"hospitality/internal/domains/officelocation/service"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/failure"
	"hospitality/shared/validator"
	"hospitality/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.OfficeLocation
	otel    otel.Otel
}

func New(service service.OfficeLocation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/office-locations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateLocation)
		routerGroup.Get("/", handler.GetLocations)
		routerGroup.Put("/{id}", handler.UpdateLocation)
		routerGroup.Delete("/{id}", handler.DeleteLocation)
	})
}

// CreateLocation stores an office location with its image.
// @Summary Add an office location
// @Description Store an office location from a multipart form, including its image.
// @Tags OfficeLocation
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} response.Message "Location added"
// @Failure 400 {object} response.Message "Image file is required"
// @Failure 500 {object} response.Message
// @Router /office-locations [post]
func (handler *Handler) CreateLocation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLocation")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.CreateOfficeLocationRequest{
		Title:       request.FormValue("title"),
		Description: request.FormValue("description"),
	}

	file, fileHeader, err := request.FormFile(constant.FormFileImage)
	if err != nil {
		scope.TraceError(err)

		if errors.Is(err, http.ErrMissingFile) {
			response.WithError(writer, failure.BadRequestFromString("Image file is required"))

			return
		}

		response.WithError(writer, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req.Image = fileHeader
	req.ImageFile = file

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate office location form")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create office location")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Office location created successfully")

	response.WithMessage(writer, http.StatusOK, "Location added")
}

// GetLocations retrieves all office locations, newest first.
// @Summary Get all office locations
// @Description Retrieve all office locations with pagination.
// @Tags OfficeLocation
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetOfficeLocationsResponse "List of office locations"
// @Failure 500 {object} response.Message
// @Router /office-locations [get]
func (handler *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	locations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get office locations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Office locations retrieved successfully")

	response.WithJSON(w, http.StatusOK, locations)
}

// UpdateLocation updates an office location, optionally replacing its image.
// @Summary Update an office location
// @Description Update an office location from a multipart form. A new image replaces the stored one.
// @Tags OfficeLocation
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} response.Message "Location updated"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message "Location not found"
// @Failure 500 {object} response.Message
// @Router /office-locations/{id} [put]
func (handler *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLocation")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("Invalid id"))

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UpdateOfficeLocationRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}

	file, fileHeader, err := r.FormFile(constant.FormFileImage)
	if err == nil {
		defer file.Close()

		req.Image = fileHeader
		req.ImageFile = file
	} else if !errors.Is(err, http.ErrMissingFile) {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequest(err))

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate office location form")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update office location")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Office location updated successfully")

	response.WithMessage(w, http.StatusOK, "Location updated")
}

// DeleteLocation deletes an office location and its stored image.
// @Summary Delete an office location
// @Description Delete an office location by its ID, removing the stored image as well.
// @Tags OfficeLocation
// @Accept json
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} response.Message "Location deleted"
// @Failure 404 {object} response.Message "Location not found"
// @Failure 500 {object} response.Message
// @Router /office-locations/{id} [delete]
func (handler *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteLocation")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("Invalid id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete office location")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Office location deleted successfully")

	response.WithMessage(w, http.StatusOK, "Location deleted")
}
