package service

import (
	"context"
	"crypto/subtle"
	"hospitality/config"
	"hospitality/infras/jwt"
	"hospitality/infras/otel"
	"hospitality/internal/domains/user/model"
	"hospitality/internal/domains/user/model/dto"
	"hospitality/internal/domains/user/repository"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/failure"
	"hospitality/shared/password"
	gRepo "hospitality/shared/repository"

	"github.com/rs/zerolog/log"
)

type User interface {
	Register(ctx context.Context, req dto.RegisterUserRequest) error
	Login(ctx context.Context, req dto.LoginUserRequest) (dto.LoginUserResponse, error)
	AdminLogin(ctx context.Context, req dto.AdminLoginRequest) (dto.AdminLoginResponse, error)
}

type serviceImpl struct {
	repo repository.User
	cfg  *config.Config
	jwt  jwt.JWT
	otel otel.Otel
}

func New(repo repository.User, cfg *config.Config, jwtService jwt.JWT, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		jwt:  jwtService,
		otel: otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterUserRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Password != req.ConfirmPassword {
		return failure.BadRequestFromString("Passwords do not match")
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return err
	}

	if _, err = s.repo.Insert(ctx, req.ToModel(hashed)); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return failure.BadRequestFromString("Email already registered")
		}

		log.Error().Err(err).Msg("failed to insert user")

		return err
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginUserRequest) (res dto.LoginUserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorEq,
			Value:    req.Email,
			Table:    model.TableName,
		}},
	}

	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, err
	}

	if user.ID == 0 {
		return res, failure.Unauthorized("Invalid email or password")
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		return res, failure.Unauthorized("Invalid email or password")
	}

	tokens, err := s.jwt.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, err
	}

	res.Message = "Login successful"
	res.Name = user.FullName
	res.Email = user.Email
	res.Tokens = tokens

	return res, nil
}

func (s *serviceImpl) AdminLogin(ctx context.Context, req dto.AdminLoginRequest) (res dto.AdminLoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminLogin")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailMatch := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.cfg.Admin.Email))
	passwordMatch := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.Admin.Password))

	if emailMatch&passwordMatch != 1 {
		return res, failure.Unauthorized("Invalid email or password")
	}

	tokens, err := s.jwt.GenerateTokenPair(0, s.cfg.Admin.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate admin token pair")

		return res, err
	}

	res.Message = "Login successful"
	res.Tokens = tokens

	return res, nil
}
