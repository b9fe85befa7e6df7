package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"staybook/infras/otel"
	"staybook/infras/postgres"
	"staybook/internal/domains/receipt/model"
	gDto "staybook/shared/dto"
	gRepo "staybook/shared/repository"
)

type Receipt interface {
	Upsert(ctx context.Context, model model.Receipt, immutable ...string) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Receipt, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Receipt, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Receipt]
}

func New(db *postgres.Connection, otel otel.Otel) Receipt {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Receipt](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
