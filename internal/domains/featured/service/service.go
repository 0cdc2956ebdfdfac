package service

import (
	"context"
	"fmt"
	"hospitality/config"
	"hospitality/infras/otel"
	"hospitality/infras/storage"
	"hospitality/internal/domains/featured/model/dto"
	"hospitality/internal/domains/featured/repository"
	"hospitality/shared"
	"hospitality/shared/cache"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllFeatured = "featured:get_all"
	cacheCountFeatured  = "featured:count"
)

type FeaturedLocation interface {
	Create(ctx context.Context, req dto.CreateFeaturedLocationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFeaturedLocationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo    repository.FeaturedLocation
	cfg     *config.Config
	cache   cache.RedisCache
	storage storage.Storage
	otel    otel.Otel
}

func New(repo repository.FeaturedLocation, cfg *config.Config, cache cache.RedisCache, storage storage.Storage, otel otel.Otel) FeaturedLocation {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		storage: storage,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFeaturedLocationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	fileName, err := s.storage.Save(ctx, req.ImageFile, req.Image)
	if err != nil {
		log.Error().Err(err).Msg("failed to store featured location image")

		return fmt.Errorf("failed to store featured location image: %w", err)
	}

	if _, err = s.repo.Insert(ctx, req.ToModel(fileName)); err != nil {
		log.Error().Err(err).Msg("failed to insert featured location")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllFeatured)
		shared.InvalidateCaches(c, s.cache, cacheCountFeatured)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFeaturedLocationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFeatured, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for featured locations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count featured locations")

		return res, err
	}

	locations, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured locations")

		return res, err
	}

	urls := make([]string, len(locations))
	for i, location := range locations {
		urls[i] = s.storage.URL(location.Image)
	}

	res.FromModels(locations, urls, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save featured locations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountFeatured, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for featured location count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count featured locations")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save featured location count to cache")
		}
	}()

	return total, nil
}
