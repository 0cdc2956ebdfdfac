package service

import (
	"bytes"
	"context"
	"fmt"
	"hospitality/config"
	"hospitality/infras/mail"
	"hospitality/infras/otel"
	"hospitality/internal/domains/subscriber/model"
	"hospitality/internal/domains/subscriber/model/dto"
	"hospitality/internal/domains/subscriber/repository"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/failure"
	gRepo "hospitality/shared/repository"
	"html/template"

	"github.com/rs/zerolog/log"
)

const welcomeSubject = "Welcome to our newsletter"

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<h2>Thanks for subscribing!</h2>
<p>Hi {{.Email}},</p>
<p>You are now on our newsletter list. We will keep you posted on new specials,
events and seasonal offers.</p>
`))

type Subscriber interface {
	Subscribe(ctx context.Context, req dto.SubscribeRequest) (dto.SubscribeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSubscribersResponse, error)
}

type serviceImpl struct {
	repo   repository.Subscriber
	cfg    *config.Config
	mailer mail.Mailer
	otel   otel.Otel
}

func New(repo repository.Subscriber, cfg *config.Config, mailer mail.Mailer, otel otel.Otel) Subscriber {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		mailer: mailer,
		otel:   otel,
	}
}

func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscribeRequest) (res dto.SubscribeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subscribe")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("Email already subscribed")
		}

		log.Error().Err(err).Msg("failed to insert subscriber")

		return res, err
	}

	res.Message = "Subscribed successfully"

	body := bytes.Buffer{}
	if err := welcomeTemplate.Execute(&body, map[string]string{"Email": req.Email}); err != nil {
		log.Error().Err(err).Msg("failed to render welcome email")

		res.Warnings = append(res.Warnings, "welcome email could not be sent")

		return res, nil
	}

	if err := s.mailer.Send(ctx, []string{req.Email}, welcomeSubject, body.String()); err != nil {
		log.Error().Err(err).Str(model.FieldEmail, req.Email).Msg("failed to send welcome email")

		res.Warnings = append(res.Warnings, "welcome email could not be sent")
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSubscribersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count subscribers")

		return res, err
	}

	subscribers, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscribers")

		return res, fmt.Errorf("failed to get subscribers: %w", err)
	}

	res.FromModels(subscribers, total, req.Limit)

	return res, nil
}
