package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"salon/infras/backend"
	"salon/infras/otel"
	"salon/internal/domains/stylist/model"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/validator"
)

type Stylist interface {
	GetAll(ctx context.Context) ([]model.Stylist, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Stylist {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Stylist, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, constant.PathStylists, nil, &res, true); err != nil {
		return nil, fmt.Errorf("failed to fetch stylists: %w", err)
	}

	for i := range res {
		if err = validator.ValidateStruct(&res[i]); err != nil {
			return nil, failure.MalformedResponse(fmt.Errorf("stylist at index %d: %w", i, err)) // nolint:wrapcheck
		}
	}

	return res, nil
}
