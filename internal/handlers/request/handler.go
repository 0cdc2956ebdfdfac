package request

import (
	"hospitality/infras/otel"
	"hospitality/internal/domains/request/model"
	"hospitality/internal/domains/request/model/dto"
	"hospitality/internal/domains/request/service"
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
	service service.Request
	otel    otel.Otel
}

func New(service service.Request, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/request-information", handler.CreateRequest)
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRequests)
		routerGroup.Put("/{id}", handler.UpdateRequestStatus)
		routerGroup.Delete("/{id}", handler.DeleteRequest)
	})
}

// CreateRequest stores an information request.
// @Summary Submit an information request
// @Description Store an information request and send a confirmation email.
// @Tags Request
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestRequest true "Create Request"
// @Success 201 {object} dto.CreateRequestResponse "Request submitted"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /request-information [post]
func (handler *Handler) CreateRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	req := dto.CreateRequestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create information request")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Information request created successfully")

	response.WithPayload(writer, http.StatusCreated, res)
}

// GetRequests retrieves all information requests, newest first.
// @Summary Get all information requests
// @Description Retrieve all information requests with optional status filter.
// @Tags Request
// @Accept json
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetRequestsResponse "List of requests"
// @Failure 500 {object} response.Message
// @Router /requests [get]
func (handler *Handler) GetRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	requests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get information requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Information requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, requests)
}

// UpdateRequestStatus updates the status of an information request.
// @Summary Update a request status
// @Description Move an information request between pending, contacted, completed and rejected.
// @Tags Request
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body dto.UpdateRequestStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Status updated"
// @Failure 400 {object} response.Message "Invalid status"
// @Failure 404 {object} response.Message "Request not found"
// @Failure 500 {object} response.Message
// @Router /requests/{id} [put]
func (handler *Handler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRequestStatus")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("Invalid id"))

		return
	}

	req := dto.UpdateRequestStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update information request status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Information request status updated successfully")

	response.WithMessage(w, http.StatusOK, "Status updated")
}

// DeleteRequest deletes an information request.
// @Summary Delete an information request
// @Description Delete an information request by its ID.
// @Tags Request
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} response.Message "Request deleted"
// @Failure 404 {object} response.Message "Not found"
// @Failure 500 {object} response.Message
// @Router /requests/{id} [delete]
func (handler *Handler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRequest")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("Invalid id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete information request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Information request deleted successfully")

	response.WithMessage(w, http.StatusOK, "Request deleted")
}
