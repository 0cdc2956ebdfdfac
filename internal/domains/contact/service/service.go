package service

import (
	"bytes"
	"context"
	"hospitality/config"
	"hospitality/infras/mail"
	"hospitality/infras/otel"
	"hospitality/internal/domains/contact/model/dto"
	"hospitality/internal/domains/contact/repository"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"html/template"

	"github.com/rs/zerolog/log"
)

const confirmationSubject = "We received your message"

var confirmationTemplate = template.Must(template.New("contact_confirmation").Parse(`
<h2>Thank you for reaching out, {{.Name}}!</h2>
<p>We received your message and will get back to you shortly.</p>
<blockquote>{{.Message}}</blockquote>
`))

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (dto.CreateContactResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContactsResponse, error)
}

type serviceImpl struct {
	repo   repository.Contact
	cfg    *config.Config
	mailer mail.Mailer
	otel   otel.Otel
}

func New(repo repository.Contact, cfg *config.Config, mailer mail.Mailer, otel otel.Otel) Contact {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		mailer: mailer,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactRequest) (res dto.CreateContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to insert contact message")

		return res, err
	}

	res.Message = "Message sent successfully"

	body := bytes.Buffer{}
	if err := confirmationTemplate.Execute(&body, req); err != nil {
		log.Error().Err(err).Msg("failed to render contact confirmation email")

		res.Warnings = append(res.Warnings, "confirmation email could not be sent")

		return res, nil
	}

	if err := s.mailer.Send(ctx, []string{req.Email}, confirmationSubject, body.String()); err != nil {
		log.Error().Err(err).Msg("failed to send contact confirmation email")

		res.Warnings = append(res.Warnings, "confirmation email could not be sent")
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contact messages")

		return res, err
	}

	messages, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact messages")

		return res, err
	}

	res.FromModels(messages, total, req.Limit)

	return res, nil
}
