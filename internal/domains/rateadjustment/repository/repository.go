package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hoteladmin/infras/otel"
	"hoteladmin/infras/postgres"
	"hoteladmin/internal/domains/rateadjustment/model"
	gDto "hoteladmin/shared/dto"
	gRepo "hoteladmin/shared/repository"

	"github.com/jmoiron/sqlx"
)

type RateAdjustment interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.RateAdjustment) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RateAdjustment, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RateAdjustment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RateAdjustment]
}

func New(db *postgres.Connection, otel otel.Otel) RateAdjustment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RateAdjustment](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
