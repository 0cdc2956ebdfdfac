package service

import (
	"context"
	"fmt"
	"hospitality/config"
	"hospitality/infras/otel"
	"hospitality/infras/storage"
	"hospitality/internal/domains/officelocation/model"
	"hospitality/internal/domains/officelocation/model/dto"
	"hospitality/internal/domains/officelocation/repository"
	"hospitality/shared"
	"hospitality/shared/constant"
	gDto "hospitality/shared/dto"
	"hospitality/shared/failure"

	"github.com/rs/zerolog/log"
)

type OfficeLocation interface {
	Create(ctx context.Context, req dto.CreateOfficeLocationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOfficeLocationsResponse, error)
	Update(ctx context.Context, req dto.UpdateOfficeLocationRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo    repository.OfficeLocation
	cfg     *config.Config
	storage storage.Storage
	otel    otel.Otel
}

func New(repo repository.OfficeLocation, cfg *config.Config, storage storage.Storage, otel otel.Otel) OfficeLocation {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		storage: storage,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOfficeLocationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	fileName, err := s.storage.Save(ctx, req.ImageFile, req.Image)
	if err != nil {
		log.Error().Err(err).Msg("failed to store office location image")

		return fmt.Errorf("failed to store office location image: %w", err)
	}

	if _, err = s.repo.Insert(ctx, req.ToModel(fileName)); err != nil {
		log.Error().Err(err).Msg("failed to insert office location")

		return err
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOfficeLocationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count office locations")

		return res, err
	}

	locations, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get office locations")

		return res, err
	}

	urls := make([]string, len(locations))
	for i, location := range locations {
		urls[i] = s.storage.URL(location.ImagePath)
	}

	res.FromModels(locations, urls, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateOfficeLocationRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	location, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get office location")

		return fmt.Errorf("failed to get office location: %w", err)
	}

	if location.ID == 0 {
		return failure.NotFound("Location not found")
	}

	updatedFields := shared.TransformFields(req)

	if req.Image != nil {
		if err := s.storage.Delete(ctx, location.ImagePath); err != nil {
			log.Warn().Err(err).Str("file", location.ImagePath).Msg("failed to delete previous office location image")
		}

		fileName, err := s.storage.Save(ctx, req.ImageFile, req.Image)
		if err != nil {
			log.Error().Err(err).Msg("failed to store replacement office location image")

			return fmt.Errorf("failed to store replacement office location image: %w", err)
		}

		updatedFields[model.FieldImagePath] = fileName
	}

	if len(updatedFields) == 0 {
		return failure.BadRequestFromString("No fields to update")
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update office location")

		return fmt.Errorf("failed to update office location: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	location, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get office location for deletion")

		return fmt.Errorf("failed to get office location: %w", err)
	}

	if location.ID == 0 {
		return failure.NotFound("Location not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete office location")

		return fmt.Errorf("failed to delete office location: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if location.ImagePath != constant.Empty {
			if err := s.storage.Delete(c, location.ImagePath); err != nil {
				log.Error().Err(err).Str("file", location.ImagePath).Msg("failed to delete office location image")
			}
		}
	}()

	return nil
}
