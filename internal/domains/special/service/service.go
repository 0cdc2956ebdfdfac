package service

import (
	"context"
	"fmt"
	"hospitality/config"
	"hospitality/infras/otel"
	"hospitality/infras/storage"
	"hospitality/internal/domains/special/model"
	"hospitality/internal/domains/special/model/dto"
	"hospitality/internal/domains/special/repository"
	"hospitality/shared"
	"hospitality/shared/cache"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllSpecial = "special:get_all"
	cacheCountSpecial  = "special:count"
)

type Special interface {
	Create(ctx context.Context, req dto.CreateSpecialRequest) (dto.CreateSpecialResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSpecialsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req dto.UpdateSpecialRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo    repository.Special
	cfg     *config.Config
	cache   cache.RedisCache
	storage storage.Storage
	otel    otel.Otel
}

func New(repo repository.Special, cfg *config.Config, cache cache.RedisCache, storage storage.Storage, otel otel.Otel) Special {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		storage: storage,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSpecialRequest) (res dto.CreateSpecialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	fileName, err := s.storage.Save(ctx, req.ImageFile, req.Image)
	if err != nil {
		log.Error().Err(err).Msg("failed to store special image")

		return res, fmt.Errorf("failed to store special image: %w", err)
	}

	id, err := s.repo.Insert(ctx, req.ToModel(fileName))
	if err != nil {
		log.Error().Err(err).Msg("failed to insert special")

		return res, err
	}

	s.invalidateListCaches(ctx)

	res.Message = "Special added successfully"
	res.ID = id
	res.Image = s.storage.URL(fileName)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSpecialsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSpecial, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for specials")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count specials")

		return res, err
	}

	specials, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get specials")

		return res, err
	}

	urls := make([]string, len(specials))
	for i, special := range specials {
		urls[i] = s.storage.URL(special.Image)
	}

	res.FromModels(specials, urls, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save specials to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountSpecial, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for special count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count specials")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save special count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSpecialRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	special, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get special")

		return fmt.Errorf("failed to get special: %w", err)
	}

	if special.ID == 0 {
		return failure.NotFound("Special not found")
	}

	updatedFields := shared.TransformFields(req)

	// Image replacement is non-atomic: the old file is removed before
	// the new one is stored.
	if req.Image != nil {
		if err := s.storage.Delete(ctx, special.Image); err != nil {
			log.Warn().Err(err).Str("file", special.Image).Msg("failed to delete previous special image")
		}

		fileName, err := s.storage.Save(ctx, req.ImageFile, req.Image)
		if err != nil {
			log.Error().Err(err).Msg("failed to store replacement special image")

			return fmt.Errorf("failed to store replacement special image: %w", err)
		}

		updatedFields[model.FieldImage] = fileName
	}

	if len(updatedFields) == 0 {
		return failure.BadRequestFromString("No fields to update")
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update special")

		return fmt.Errorf("failed to update special: %w", err)
	}

	s.invalidateListCaches(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	special, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get special for deletion")

		return fmt.Errorf("failed to get special: %w", err)
	}

	if special.ID == 0 {
		return failure.NotFound("Special not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete special")

		return fmt.Errorf("failed to delete special: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if special.Image != constant.Empty {
			if err := s.storage.Delete(c, special.Image); err != nil {
				log.Error().Err(err).Str("file", special.Image).Msg("failed to delete special image")
			}
		}
	}()

	s.invalidateListCaches(ctx)

	return nil
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSpecial)
		shared.InvalidateCaches(c, s.cache, cacheCountSpecial)
	}()
}
