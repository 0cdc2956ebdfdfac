package service

import (
	"bytes"
	"context"
	"hospitality/config"
	"hospitality/infras/mail"
	"hospitality/infras/otel"
	"hospitality/internal/domains/inquiry/model/dto"
	"hospitality/internal/domains/inquiry/repository"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"html/template"

	"github.com/rs/zerolog/log"
)

var (
	adminInquiryTemplate = template.Must(template.New("inquiry_admin").Parse(`
<h2>New inquiry</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
<p><strong>Interest:</strong> {{.Interest}}</p>
{{if .Location}}<p><strong>Location:</strong> {{.Location}}</p>{{end}}
<p>{{.Message}}</p>
`))

	userInquiryTemplate = template.Must(template.New("inquiry_user").Parse(`
<h2>Thanks for your inquiry, {{.Name}}!</h2>
<p>We received your inquiry about <strong>{{.Interest}}</strong> and our team
will get in touch with you soon.</p>
`))
)

type Inquiry interface {
	Create(ctx context.Context, req dto.CreateInquiryRequest) (dto.CreateInquiryResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInquiriesResponse, error)
}

type serviceImpl struct {
	repo   repository.Inquiry
	cfg    *config.Config
	mailer mail.Mailer
	otel   otel.Otel
}

func New(repo repository.Inquiry, cfg *config.Config, mailer mail.Mailer, otel otel.Otel) Inquiry {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		mailer: mailer,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInquiryRequest) (res dto.CreateInquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to insert inquiry")

		return res, err
	}

	res.Message = "Inquiry sent successfully"

	// Admin copy first, then the acknowledgement. A failed admin copy must
	// not stop the acknowledgement from being attempted.
	if warn := s.send(ctx, adminInquiryTemplate, []string{s.cfg.Mail.AdminTo}, "New inquiry: "+req.Interest, req, "admin notification could not be sent"); warn != "" {
		res.Warnings = append(res.Warnings, warn)
	}

	if warn := s.send(ctx, userInquiryTemplate, []string{req.Email}, "We received your inquiry", req, "confirmation email could not be sent"); warn != "" {
		res.Warnings = append(res.Warnings, warn)
	}

	return res, nil
}

func (s *serviceImpl) send(ctx context.Context, tmpl *template.Template, to []string, subject string, req dto.CreateInquiryRequest, warning string) string {
	body := bytes.Buffer{}
	if err := tmpl.Execute(&body, req); err != nil {
		log.Error().Err(err).Msg("failed to render inquiry email")

		return warning
	}

	if err := s.mailer.Send(ctx, to, subject, body.String()); err != nil {
		log.Error().Err(err).Msg("failed to send inquiry email")

		return warning
	}

	return constant.Empty
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInquiriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inquiries")

		return res, err
	}

	inquiries, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiries")

		return res, err
	}

	res.FromModels(inquiries, total, req.Limit)

	return res, nil
}
