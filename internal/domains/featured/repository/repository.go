package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hospitality/infras/otel"
	"hospitality/infras/postgres"
	"hospitality/internal/domains/featured/model"
	gDto "hospitality/shared/dto"
	gRepo "hospitality/shared/repository"
)

type FeaturedLocation interface {
	Insert(ctx context.Context, model model.FeaturedLocation) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.FeaturedLocation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.FeaturedLocation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) FeaturedLocation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.FeaturedLocation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
