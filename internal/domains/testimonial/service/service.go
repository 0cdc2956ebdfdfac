package service

import (
	"context"
	"fmt"
	"hospitality/config"
	"hospitality/infras/otel"
	"hospitality/infras/storage"
	"hospitality/internal/domains/testimonial/model/dto"
	"hospitality/internal/domains/testimonial/repository"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"

	"github.com/rs/zerolog/log"
)

type Testimonial interface {
	Create(ctx context.Context, req dto.CreateTestimonialRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTestimonialsResponse, error)
}

type serviceImpl struct {
	repo    repository.Testimonial
	cfg     *config.Config
	storage storage.Storage
	otel    otel.Otel
}

func New(repo repository.Testimonial, cfg *config.Config, storage storage.Storage, otel otel.Otel) Testimonial {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		storage: storage,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTestimonialRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	fileName := constant.Empty

	if req.Image != nil {
		fileName, err = s.storage.Save(ctx, req.ImageFile, req.Image)
		if err != nil {
			log.Error().Err(err).Msg("failed to store testimonial image")

			return fmt.Errorf("failed to store testimonial image: %w", err)
		}
	}

	if _, err = s.repo.Insert(ctx, req.ToModel(fileName)); err != nil {
		log.Error().Err(err).Msg("failed to insert testimonial")

		return err
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTestimonialsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count testimonials")

		return res, err
	}

	testimonials, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get testimonials")

		return res, err
	}

	urls := make([]string, len(testimonials))
	for i, testimonial := range testimonials {
		if testimonial.Image != constant.Empty {
			urls[i] = s.storage.URL(testimonial.Image)
		}
	}

	res.FromModels(testimonials, urls, total, req.Limit)

	return res, nil
}
