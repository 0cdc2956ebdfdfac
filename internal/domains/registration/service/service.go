package service

import (
	"bytes"
	"context"
	"hospitality/config"
	"hospitality/infras/mail"
	"hospitality/infras/otel"
	"hospitality/internal/domains/registration/model/dto"
	"hospitality/internal/domains/registration/repository"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"html/template"

	"github.com/rs/zerolog/log"
)

const registrationSubject = "Registration Confirmation"

var confirmationTemplate = template.Must(template.New("registration_confirmation").Parse(`
<h3>Hello {{.FullName}},</h3>
<p>Thank you for registering with us.</p>
<p>We have received your profile details successfully.</p>
`))

type Registration interface {
	Create(ctx context.Context, req dto.CreateRegistrationRequest) (dto.CreateRegistrationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRegistrationsResponse, error)
}

type serviceImpl struct {
	repo   repository.Registration
	cfg    *config.Config
	mailer mail.Mailer
	otel   otel.Otel
}

func New(repo repository.Registration, cfg *config.Config, mailer mail.Mailer, otel otel.Otel) Registration {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		mailer: mailer,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRegistrationRequest) (res dto.CreateRegistrationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to insert registration")

		return res, err
	}

	res.Message = "Registration successful"
	res.ID = id

	body := bytes.Buffer{}
	if err := confirmationTemplate.Execute(&body, req); err != nil {
		log.Error().Err(err).Msg("failed to render registration confirmation email")

		res.Warnings = append(res.Warnings, "confirmation email could not be sent")

		return res, nil
	}

	if err := s.mailer.Send(ctx, []string{req.Email}, registrationSubject, body.String()); err != nil {
		log.Error().Err(err).Msg("failed to send registration confirmation email")

		res.Warnings = append(res.Warnings, "confirmation email could not be sent")
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRegistrationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count registrations")

		return res, err
	}

	registrations, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get registrations")

		return res, err
	}

	res.FromModels(registrations, total, req.Limit)

	return res, nil
}
