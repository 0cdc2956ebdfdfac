package order

import (
	"fmt"
	"hospitality/infras/otel"
	"hospitality/internal/domains/order/model"
	"hospitality/internal/domains/order/model/dto"
	"hospitality/internal/domains/order/service"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/failure"
	"hospitality/shared/timezone"
	"hospitality/shared/validator"
	"hospitality/transport/http/middleware"
	"hospitality/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Order
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Order, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOrder)
		routerGroup.Get("/", handler.GetOrders)
		routerGroup.Put("/{id}/status", handler.UpdateOrderStatus)
		routerGroup.With(handler.middleware.Auth).Get("/export", handler.ExportOrders)
	})
}

// CreateOrder places a new order.
// @Summary Place a new order
// @Description Store an order, generate its receipt and send a confirmation email.
// @Tags Order
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Create Order Request"
// @Success 200 {object} dto.CreateOrderResponse "Order placed successfully"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /orders [post]
func (handler *Handler) CreateOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create order")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Order created successfully")

	response.WithPayload(writer, http.StatusOK, res)
}

// GetOrders retrieves all orders, newest first.
// @Summary Get all orders
// @Description Retrieve all orders with optional status filter.
// @Tags Order
// @Accept json
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetOrdersResponse "List of orders"
// @Failure 500 {object} response.Message
// @Router /orders [get]
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	orders, err := handler.service.GetAll(ctx, queryParams, statusFilter(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get orders")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Orders retrieved successfully")

	response.WithJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus moves an order between pending, accepted and rejected.
// @Summary Update an order status
// @Description Update an order status; a rejection requires a reason.
// @Tags Order
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body dto.UpdateOrderStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Order status updated."
// @Failure 400 {object} response.Message "Missing required fields."
// @Failure 404 {object} response.Message "Order not found"
// @Failure 500 {object} response.Message
// @Router /orders/{id}/status [put]
func (handler *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrderStatus")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("Invalid id"))

		return
	}

	req := dto.UpdateOrderStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update order status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order status updated successfully")

	response.WithMessage(w, http.StatusOK, "Order status updated.")
}

// ExportOrders streams all orders as a spreadsheet.
// @Summary Export orders
// @Description Export all orders to an xlsx workbook.
// @Tags Order
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Filter by status"
// @Success 200 {file} binary "Workbook"
// @Failure 401 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /orders/export [get]
// @Security BearerAuth
func (handler *Handler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportOrders")
	defer scope.End()

	data, err := handler.service.Export(ctx, statusFilter(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export orders")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Orders exported successfully")

	fileName := fmt.Sprintf("orders_%s.xlsx", timezone.Now().Format("20060102_150405"))

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		log.Error().Err(err).Msg("failed to write export response")
	}
}

func statusFilter(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
