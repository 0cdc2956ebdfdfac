package service

import (
	"bytes"
	"context"
	"fmt"
	"hospitality/config"
	"hospitality/infras/mail"
	"hospitality/infras/otel"
	"hospitality/internal/domains/request/model"
	"hospitality/internal/domains/request/model/dto"
	"hospitality/internal/domains/request/repository"
	"hospitality/shared"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/failure"
	"html/template"
	"slices"

	"github.com/rs/zerolog/log"
)

const requestSubject = "We received your request"

var requestTemplate = template.Must(template.New("request_confirmation").Parse(`
<h2>Thank you, {{.Name}}!</h2>
<p>We received your information request{{if .VenueType}} about
<strong>{{.VenueType}}</strong>{{end}} and will contact you shortly.</p>
`))

var allowedStatuses = []string{
	model.StatusPending,
	model.StatusContacted,
	model.StatusCompleted,
	model.StatusRejected,
}

type Request interface {
	Create(ctx context.Context, req dto.CreateRequestRequest) (dto.CreateRequestResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRequestsResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateRequestStatusRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo   repository.Request
	cfg    *config.Config
	mailer mail.Mailer
	otel   otel.Otel
}

func New(repo repository.Request, cfg *config.Config, mailer mail.Mailer, otel otel.Otel) Request {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		mailer: mailer,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRequestRequest) (res dto.CreateRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to insert information request")

		return res, err
	}

	res.Message = "Request submitted"
	res.ID = id

	body := bytes.Buffer{}
	if err := requestTemplate.Execute(&body, req); err != nil {
		log.Error().Err(err).Msg("failed to render request confirmation email")

		res.Warnings = append(res.Warnings, "confirmation email could not be sent")

		return res, nil
	}

	if err := s.mailer.Send(ctx, []string{req.Email}, requestSubject, body.String()); err != nil {
		log.Error().Err(err).Msg("failed to send request confirmation email")

		res.Warnings = append(res.Warnings, "confirmation email could not be sent")
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count information requests")

		return res, err
	}

	requests, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get information requests")

		return res, err
	}

	res.FromModels(requests, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateRequestStatusRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !slices.Contains(allowedStatuses, req.Status) {
		return failure.BadRequestFromString("Invalid status")
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check information request existence")

		return err
	}

	if !exist {
		return failure.NotFound("Request not found")
	}

	updatedFields := map[string]any{model.FieldStatus: req.Status}
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update information request status")

		return fmt.Errorf("failed to update information request: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check information request existence")

		return err
	}

	if !exist {
		return failure.NotFound("Not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete information request")

		return fmt.Errorf("failed to delete information request: %w", err)
	}

	return nil
}
