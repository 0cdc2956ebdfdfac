package user

import (
	"hospitality/infras/otel"
	"hospitality/internal/domains/user/model/dto"
	"hospitality/internal/domains/user/service"
	"hospitality/shared/constant"
	"hospitality/shared/validator"
	"hospitality/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/register-user", handler.RegisterUser)
	router.Post("/login-user", handler.LoginUser)
	router.Post("/admin/login", handler.AdminLogin)
}

// RegisterUser creates a user account.
// @Summary Register a user account
// @Description Create a user account with a hashed password.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "Register User Request"
// @Success 200 {object} response.Message "Registration successful"
// @Failure 400 {object} response.Message "Email already registered"
// @Failure 500 {object} response.Message
// @Router /register-user [post]
func (handler *Handler) RegisterUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterUser")
	defer scope.End()

	req := dto.RegisterUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithMessage(writer, http.StatusOK, "Registration successful")
}

// LoginUser authenticates a user account.
// @Summary Log a user in
// @Description Verify credentials and issue a token pair.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.LoginUserRequest true "Login User Request"
// @Success 200 {object} dto.LoginUserResponse "Login successful"
// @Failure 401 {object} response.Message "Invalid email or password"
// @Failure 500 {object} response.Message
// @Router /login-user [post]
func (handler *Handler) LoginUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LoginUser")
	defer scope.End()

	req := dto.LoginUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login user")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithPayload(writer, http.StatusOK, res)
}

// AdminLogin authenticates the configured admin account.
// @Summary Log the admin in
// @Description Verify admin credentials and issue a token pair.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin Login Request"
// @Success 200 {object} dto.AdminLoginResponse "Login successful"
// @Failure 401 {object} response.Message "Invalid email or password"
// @Failure 500 {object} response.Message
// @Router /admin/login [post]
func (handler *Handler) AdminLogin(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminLogin")
	defer scope.End()

	req := dto.AdminLoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.AdminLogin(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login admin")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Admin logged in successfully")

	response.WithPayload(writer, http.StatusOK, res)
}
