package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hospitality/infras/otel"
	"hospitality/infras/postgres"
	"hospitality/internal/domains/officelocation/model"
	gDto "hospitality/shared/dto"
	gRepo "hospitality/shared/repository"
)

type OfficeLocation interface {
	Insert(ctx context.Context, model model.OfficeLocation) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.OfficeLocation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.OfficeLocation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.OfficeLocation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) OfficeLocation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.OfficeLocation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
