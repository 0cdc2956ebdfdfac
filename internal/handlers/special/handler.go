package special

import (
	"errors"
	"hospitality/infras/otel"
	"hospitality/internal/domains/special/model"
	"hospitality/internal/domains/special/model/dto"
	"hospitality/internal/domains/special/service"
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
	service service.Special
	otel    otel.Otel
}

func New(service service.Special, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/specials", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSpecial)
		routerGroup.Get("/", handler.GetSpecials)
		routerGroup.Put("/{id}", handler.UpdateSpecial)
		routerGroup.Delete("/{id}", handler.DeleteSpecial)
	})
}

// CreateSpecial stores a special with its image.
// @Summary Add a special
// @Description Store a special from a multipart form, including its image.
// @Tags Special
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.CreateSpecialResponse "Special added successfully"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /specials [post]
func (handler *Handler) CreateSpecial(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSpecial")
	defer scope.End()

	req, err := createRequestFromForm(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse special form")

		response.WithError(writer, err)

		return
	}

	if req.ImageFile != nil {
		defer req.ImageFile.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate special form")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create special")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Special created successfully")

	response.WithPayload(writer, http.StatusCreated, res)
}

// GetSpecials retrieves all specials, newest first.
// @Summary Get all specials
// @Description Retrieve all specials with optional cuisine filter and pagination.
// @Tags Special
// @Accept json
// @Produce json
// @Param cuisine query string false "Filter by cuisine"
// @Success 200 {object} dto.GetSpecialsResponse "List of specials"
// @Failure 500 {object} response.Message
// @Router /specials [get]
func (handler *Handler) GetSpecials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpecials")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	cuisine := r.URL.Query().Get(model.FieldCuisine)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if cuisine != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCuisine,
			Operator: gDto.FilterOperatorLike,
			Value:    cuisine,
			Table:    model.TableName,
		})
	}

	specials, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get specials")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Specials retrieved successfully")

	response.WithJSON(w, http.StatusOK, specials)
}

// UpdateSpecial updates a special, optionally replacing its image.
// @Summary Update a special
// @Description Update a special from a multipart form. A new image replaces the stored one.
// @Tags Special
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Special ID"
// @Success 200 {object} response.Message "Special updated successfully"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message "Special not found"
// @Failure 500 {object} response.Message
// @Router /specials/{id} [put]
func (handler *Handler) UpdateSpecial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSpecial")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("Invalid id"))

		return
	}

	req, err := updateRequestFromForm(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse special form")

		response.WithError(w, err)

		return
	}

	if req.ImageFile != nil {
		defer req.ImageFile.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate special form")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update special")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Special updated successfully")

	response.WithMessage(w, http.StatusOK, "Special updated successfully")
}

// DeleteSpecial deletes a special and its stored image.
// @Summary Delete a special
// @Description Delete a special by its ID, removing the stored image as well.
// @Tags Special
// @Accept json
// @Produce json
// @Param id path int true "Special ID"
// @Success 200 {object} response.Message "Special deleted successfully"
// @Failure 404 {object} response.Message "Special not found"
// @Failure 500 {object} response.Message
// @Router /specials/{id} [delete]
func (handler *Handler) DeleteSpecial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSpecial")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("Invalid id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete special")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Special deleted successfully")

	response.WithMessage(w, http.StatusOK, "Special deleted successfully")
}

func createRequestFromForm(r *http.Request) (req dto.CreateSpecialRequest, err error) {
	if err = r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, failure.BadRequest(err)
	}

	req.Name = r.FormValue("name")
	req.Special = r.FormValue("special")
	req.Description = r.FormValue("description")
	req.Cuisine = r.FormValue("cuisine")
	req.Offer = r.FormValue("offer")
	req.SearchTerms = r.FormValue("searchTerms")

	if req.Price, err = parseFloatField(r, "price"); err != nil {
		return req, err
	}

	if req.OriginalPrice, err = parseFloatField(r, "originalPrice"); err != nil {
		return req, err
	}

	if req.Rating, err = parseFloatField(r, "rating"); err != nil {
		return req, err
	}

	file, fileHeader, err := r.FormFile(constant.FormFileImage)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return req, nil
		}

		return req, failure.BadRequest(err)
	}

	req.Image = fileHeader
	req.ImageFile = file

	return req, nil
}

func updateRequestFromForm(r *http.Request) (req dto.UpdateSpecialRequest, err error) {
	if err = r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, failure.BadRequest(err)
	}

	req.Name = r.FormValue("name")
	req.Special = r.FormValue("special")
	req.Description = r.FormValue("description")
	req.Cuisine = r.FormValue("cuisine")
	req.Offer = r.FormValue("offer")
	req.SearchTerms = r.FormValue("searchTerms")

	if req.Price, err = parseFloatField(r, "price"); err != nil {
		return req, err
	}

	if req.OriginalPrice, err = parseFloatField(r, "originalPrice"); err != nil {
		return req, err
	}

	if req.Rating, err = parseFloatField(r, "rating"); err != nil {
		return req, err
	}

	file, fileHeader, err := r.FormFile(constant.FormFileImage)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return req, nil
		}

		return req, failure.BadRequest(err)
	}

	req.Image = fileHeader
	req.ImageFile = file

	return req, nil
}

func parseFloatField(r *http.Request, field string) (float64, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, failure.BadRequestFromString(field + " must be a number")
	}

	return value, nil
}
