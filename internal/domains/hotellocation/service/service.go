package service

import (
	"context"
	"hospitality/config"
	"hospitality/infras/otel"
	"hospitality/internal/domains/hotellocation/model/dto"
	"hospitality/internal/domains/hotellocation/repository"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"

	"github.com/rs/zerolog/log"
)

type HotelLocation interface {
	Create(ctx context.Context, req dto.CreateHotelLocationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelLocationsResponse, error)
}

type serviceImpl struct {
	repo repository.HotelLocation
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.HotelLocation, cfg *config.Config, otel otel.Otel) HotelLocation {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelLocationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to insert hotel location")

		return err
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelLocationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotel locations")

		return res, err
	}

	locations, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel locations")

		return res, err
	}

	res.FromModels(locations, total, req.Limit)

	return res, nil
}
