package service

import (
	"context"
	"hospitality/config"
	"hospitality/infras/otel"
	"hospitality/internal/domains/preschool/model/dto"
	"hospitality/internal/domains/preschool/repository"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"

	"github.com/rs/zerolog/log"
)

type Lead interface {
	Create(ctx context.Context, req dto.CreateLeadRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLeadsResponse, error)
}

type serviceImpl struct {
	repo repository.Lead
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Lead, cfg *config.Config, otel otel.Otel) Lead {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateLeadRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to insert preschool lead")

		return err
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetLeadsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count preschool leads")

		return res, err
	}

	leads, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get preschool leads")

		return res, err
	}

	res.FromModels(leads, total, req.Limit)

	return res, nil
}
