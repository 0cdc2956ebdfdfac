package testimonial

import (
	"errors"
	"hospitality/infras/otel"
	"hospitality/internal/domains/testimonial/model/dto"
	"hospitality/internal/domains/testimonial/service"
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
	service service.Testimonial
	otel    otel.Otel
}

func New(service service.Testimonial, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/testimonials", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTestimonial)
		routerGroup.Get("/", handler.GetTestimonials)
	})
}

// CreateTestimonial stores a testimonial with an optional photo.
// @Summary Submit a testimonial
// @Description Store a testimonial from a multipart form, with an optional photo.
// @Tags Testimonial
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} response.Message "Testimonial submitted successfully"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /testimonials [post]
func (handler *Handler) CreateTestimonial(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTestimonial")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.CreateTestimonialRequest{
		Text:        request.FormValue("text"),
		Name:        request.FormValue("name"),
		Designation: request.FormValue("designation"),
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
		log.Error().Err(err).Msg("failed to validate testimonial form")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create testimonial")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Testimonial created successfully")

	response.WithMessage(writer, http.StatusOK, "Testimonial submitted successfully")
}

// GetTestimonials retrieves all testimonials, newest first.
// @Summary Get all testimonials
// @Description Retrieve all testimonials with pagination.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetTestimonialsResponse "List of testimonials"
// @Failure 500 {object} response.Message
// @Router /testimonials [get]
func (handler *Handler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTestimonials")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	testimonials, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get testimonials")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Testimonials retrieved successfully")

	response.WithJSON(w, http.StatusOK, testimonials)
}
