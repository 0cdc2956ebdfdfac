package service

import (
	"bytes"
	"context"
	"hospitality/config"
	"hospitality/infras/mail"
	"hospitality/infras/otel"
	"hospitality/internal/domains/message/model/dto"
	"hospitality/internal/domains/message/repository"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"html/template"

	"github.com/rs/zerolog/log"
)

var (
	userCopyTemplate = template.Must(template.New("message_user_copy").Parse(`
<h2>We received your message</h2>
<p>Hi {{.Name}},</p>
<p>Thanks for writing to us about <strong>{{.Subject}}</strong>. We will reply
as soon as we can.</p>
`))

	adminCopyTemplate = template.Must(template.New("message_admin_copy").Parse(`
<h2>New message via the website</h2>
<p><strong>From:</strong> {{.Name}} ({{.Email}}{{if .Phone}}, {{.Phone}}{{end}})</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p>{{.Message}}</p>
`))
)

type Message interface {
	Create(ctx context.Context, req dto.CreateMessageRequest) (dto.CreateMessageResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMessagesResponse, error)
}

type serviceImpl struct {
	repo   repository.Message
	cfg    *config.Config
	mailer mail.Mailer
	otel   otel.Otel
}

func New(repo repository.Message, cfg *config.Config, mailer mail.Mailer, otel otel.Otel) Message {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		mailer: mailer,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMessageRequest) (res dto.CreateMessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to insert message")

		return res, err
	}

	res.Message = "Message received successfully."

	// Both copies are attempted independently, neither blocks the other.
	if warn := s.send(ctx, userCopyTemplate, []string{req.Email}, "We received your message", req, "confirmation email could not be sent"); warn != "" {
		res.Warnings = append(res.Warnings, warn)
	}

	if warn := s.send(ctx, adminCopyTemplate, []string{s.cfg.Mail.AdminTo}, "New message: "+req.Subject, req, "admin notification could not be sent"); warn != "" {
		res.Warnings = append(res.Warnings, warn)
	}

	return res, nil
}

func (s *serviceImpl) send(ctx context.Context, tmpl *template.Template, to []string, subject string, req dto.CreateMessageRequest, warning string) string {
	body := bytes.Buffer{}
	if err := tmpl.Execute(&body, req); err != nil {
		log.Error().Err(err).Msg("failed to render message email")

		return warning
	}

	if err := s.mailer.Send(ctx, to, subject, body.String()); err != nil {
		log.Error().Err(err).Msg("failed to send message email")

		return warning
	}

	return constant.Empty
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count messages")

		return res, err
	}

	messages, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get messages")

		return res, err
	}

	res.FromModels(messages, total, req.Limit)

	return res, nil
}
