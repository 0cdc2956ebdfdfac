package hotelitem

import (
	"hospitality/infras/otel"
	"hospitality/internal/domains/hotelitem/model"
	"hospitality/internal/domains/hotelitem/model/dto"
	"hospitality/internal/domains/hotelitem/service"
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
	service service.HotelItem
	otel    otel.Otel
}

func New(service service.HotelItem, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels-items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Get("/category/{category}", handler.GetItemsByCategory)
		routerGroup.Put("/{id}", handler.UpdateItem)
		routerGroup.Delete("/{id}", handler.DeleteItem)
	})
}

// CreateItem stores a hotel catalog item.
// @Summary Add a hotel item
// @Description Store a hotel catalog item.
// @Tags HotelItem
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelItemRequest true "Create Hotel Item Request"
// @Success 200 {object} dto.CreateHotelItemResponse
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /hotels-items [post]
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateHotelItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel item")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Hotel item created successfully")

	response.WithPayload(writer, http.StatusOK, res)
}

// GetItems retrieves all hotel items, newest first.
// @Summary Get all hotel items
// @Description Retrieve all hotel catalog items with pagination.
// @Tags HotelItem
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetHotelItemsResponse "List of hotel items"
// @Failure 500 {object} response.Message
// @Router /hotels-items [get]
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	items, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetItemsByCategory retrieves hotel items for one category.
// @Summary Get hotel items by category
// @Description Retrieve hotel catalog items filtered by category.
// @Tags HotelItem
// @Accept json
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} dto.GetHotelItemsResponse "List of hotel items"
// @Failure 500 {object} response.Message
// @Router /hotels-items/category/{category} [get]
func (handler *Handler) GetItemsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemsByCategory")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	category := chi.URLParam(r, constant.RequestParamCategory)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCategory,
				Operator: gDto.FilterOperatorEq,
				Value:    category,
				Table:    model.TableName,
			},
		},
	}

	items, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel items by category")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// UpdateItem updates a hotel item.
// @Summary Update a hotel item
// @Description Update a hotel catalog item by its ID.
// @Tags HotelItem
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body dto.UpdateHotelItemRequest true "Update Hotel Item Request"
// @Success 200 {object} response.Message "Item updated successfully"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message "Item not found"
// @Failure 500 {object} response.Message
// @Router /hotels-items/{id} [put]
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("Invalid id"))

		return
	}

	req := dto.UpdateHotelItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel item updated successfully")

	response.WithMessage(w, http.StatusOK, "Item updated successfully")
}

// DeleteItem deletes a hotel item.
// @Summary Delete a hotel item
// @Description Delete a hotel catalog item by its ID.
// @Tags HotelItem
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} response.Message "Item deleted successfully"
// @Failure 404 {object} response.Message "Item not found"
// @Failure 500 {object} response.Message
// @Router /hotels-items/{id} [delete]
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("Invalid id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel item deleted successfully")

	response.WithMessage(w, http.StatusOK, "Item deleted successfully")
}
